package analysis

import "time"

const (
	DefaultNightStartHour  = 0
	DefaultNightEndHour    = 5
	DefaultIdleGap         = 4 * time.Hour
	DefaultWindowFraction  = 1.0 / 3.0
	DefaultGrowthThreshold = 1.5
	DefaultDeclineFloor    = 0.3
	DefaultMinTrendVolume  = 10
	DefaultLatencyFloor    = 10 * time.Second
	DefaultLatencyCap      = 24 * time.Hour
	DefaultTopN            = 5
	DefaultMinLateNight    = 5
	DefaultMinSkewVolume   = 100
	DefaultFanFactor       = 2.0
)

// Config holds every tunable threshold of the engine. All values are
// explicit inputs so runs stay reproducible.
type Config struct {
	// NightStartHour and NightEndHour bound the late-night window as
	// [start, end) in local hours. The window may cross midnight, e.g.
	// start 22 end 2.
	NightStartHour int
	NightEndHour   int

	// IdleGap is the silence that ends a conversation session. The first
	// message after a gap longer than this opens a new session.
	IdleGap time.Duration

	// WindowFraction is the share of the global dataset span covered by
	// each of the early and late trend windows. Values above one half are
	// treated as one half so the windows never overlap; zero or below
	// falls back to the default.
	WindowFraction float64

	// GrowthThreshold marks a contact heating_up when the late count is at
	// least early*GrowthThreshold. DeclineFloor marks a contact ghosted
	// when the late count is at most early*DeclineFloor. Either check also
	// requires the driving window to exceed MinTrendVolume messages.
	GrowthThreshold float64
	DeclineFloor    float64
	MinTrendVolume  int

	// LatencyFloor and LatencyCap bound the reply delays admitted into
	// latency statistics. Delays under the floor are discarded (tapback
	// bursts, double-texts landing as flips); delays over the cap are
	// excluded from the averages but reported via LatencyStats.Capped.
	LatencyFloor time.Duration
	LatencyCap   time.Duration

	// TopN is the leaderboard length. Zero or negative means unlimited.
	TopN int

	// MinLateNight is the late-night count a contact must exceed for the
	// late_night ranking. MinSkewVolume is the total volume a contact must
	// exceed for the biggest_fan and down_bad rankings. FanFactor is how
	// lopsided received/sent traffic must be to qualify for either.
	MinLateNight  int
	MinSkewVolume int
	FanFactor     float64

	// Thresholds feed the personality rules.
	Thresholds PersonalityThresholds

	// Rules overrides the personality rule chain. Nil means DefaultRules.
	Rules []Rule
}

const (
	DefaultFastReply    = 5 * time.Minute
	DefaultSlowReply    = 2 * time.Hour
	DefaultQuietRatio   = 0.5
	DefaultLoudRatio    = 2.0
	DefaultStarterRatio = 0.65
	DefaultWaiterRatio  = 0.35
	DefaultEveningHour  = 22
)

// PersonalityThresholds are the cut points the default rule chain tests
// against.
type PersonalityThresholds struct {
	// FastReply and SlowReply bound the median reply delay.
	FastReply time.Duration
	SlowReply time.Duration

	// QuietRatio and LoudRatio bound the send/receive ratio.
	QuietRatio float64
	LoudRatio  float64

	// StarterRatio and WaiterRatio bound the session initiation share.
	StarterRatio float64
	WaiterRatio  float64

	// EveningHour is the hour after which a peak still counts as
	// nocturnal even outside the night window.
	EveningHour int
}

// DefaultThresholds returns the default personality cut points.
func DefaultThresholds() PersonalityThresholds {
	return PersonalityThresholds{
		FastReply:    DefaultFastReply,
		SlowReply:    DefaultSlowReply,
		QuietRatio:   DefaultQuietRatio,
		LoudRatio:    DefaultLoudRatio,
		StarterRatio: DefaultStarterRatio,
		WaiterRatio:  DefaultWaiterRatio,
		EveningHour:  DefaultEveningHour,
	}
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() Config {
	return Config{
		NightStartHour:  DefaultNightStartHour,
		NightEndHour:    DefaultNightEndHour,
		IdleGap:         DefaultIdleGap,
		WindowFraction:  DefaultWindowFraction,
		GrowthThreshold: DefaultGrowthThreshold,
		DeclineFloor:    DefaultDeclineFloor,
		MinTrendVolume:  DefaultMinTrendVolume,
		LatencyFloor:    DefaultLatencyFloor,
		LatencyCap:      DefaultLatencyCap,
		TopN:            DefaultTopN,
		MinLateNight:    DefaultMinLateNight,
		MinSkewVolume:   DefaultMinSkewVolume,
		FanFactor:       DefaultFanFactor,
		Thresholds:      DefaultThresholds(),
	}
}

// InNight reports whether the local hour falls inside the configured
// late-night window.
func (c Config) InNight(hour int) bool {
	start, end := c.NightStartHour, c.NightEndHour
	if start == end {
		return false
	}
	if start < end {
		return hour >= start && hour < end
	}
	// window crosses midnight
	return hour >= start || hour < end
}
