package model

import "time"

// DayFormat is the key format for per-day count maps.
const DayFormat = "2006-01-02"

// Window is the observed [Start, End] timestamp span of a dataset.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Span returns the window length. A window over a single event has zero span.
func (w Window) Span() time.Duration {
	return w.End.Sub(w.Start)
}

// ContactAggregate holds the per-contact counters folded out of one
// contact's event stream.
type ContactAggregate struct {
	ContactKey     string         `json:"contact_key"`
	TotalSent      int            `json:"total_sent"`
	TotalReceived  int            `json:"total_received"`
	PerDayCounts   map[string]int `json:"per_day_counts"`
	LateNightCount int            `json:"late_night_count"`
	SentChars      int            `json:"sent_chars"`
	SentWithEmoji  int            `json:"sent_with_emoji"`
	FirstSeen      time.Time      `json:"first_seen"`
	LastSeen       time.Time      `json:"last_seen"`
}

// Total returns sent plus received message count.
func (a *ContactAggregate) Total() int {
	return a.TotalSent + a.TotalReceived
}

// LatencySample is one reply delay: the gap between a message and the next
// message in the same conversation going the other way. ResponderDirection
// is the direction of the reply itself.
type LatencySample struct {
	ContactKey         string
	ResponderDirection Direction
	Delay              time.Duration
}

// Seconds returns the delay in seconds.
func (s LatencySample) Seconds() float64 {
	return s.Delay.Seconds()
}

// LatencyStats summarizes a set of latency samples. Samples counts the
// values inside the configured floor/cap band; Capped counts values dropped
// for exceeding the cap. All stat fields are zero when Samples is zero.
type LatencyStats struct {
	Samples       int     `json:"samples"`
	Capped        int     `json:"capped"`
	MeanSeconds   float64 `json:"mean_seconds"`
	MedianSeconds float64 `json:"median_seconds"`
	MinSeconds    float64 `json:"min_seconds"`
	MaxSeconds    float64 `json:"max_seconds"`
}

// ContactLatency splits one contact's reply stats by responder: Sent covers
// the owner's replies to the contact, Received the contact's replies back.
type ContactLatency struct {
	Sent     LatencyStats `json:"sent"`
	Received LatencyStats `json:"received"`
}

// LatencyReport is the latency section of a MetricBundle.
type LatencyReport struct {
	Overall   LatencyStats              `json:"overall"`
	Sent      LatencyStats              `json:"sent"`
	Received  LatencyStats              `json:"received"`
	ByContact map[string]ContactLatency `json:"by_contact"`
}

// TrendClass labels how a contact's volume moved between the early and late
// windows of the dataset.
type TrendClass string

const (
	TrendHeatingUp TrendClass = "heating_up"
	TrendGhosted   TrendClass = "ghosted"
	TrendStable    TrendClass = "stable"
)

// TrendResult is the early/late window comparison for one contact. Both
// windows are cut from the same global dataset span for every contact.
type TrendResult struct {
	ContactKey     string     `json:"contact_key"`
	EarlyCount     int        `json:"early_count"`
	LateCount      int        `json:"late_count"`
	Classification TrendClass `json:"classification"`
}

// SkewResult describes conversational balance with one contact.
type SkewResult struct {
	ContactKey      string    `json:"contact_key"`
	SentRatio       float64   `json:"sent_ratio"`
	OpenersSent     int       `json:"openers_sent"`
	OpenersReceived int       `json:"openers_received"`
	Initiator       Direction `json:"initiator"`
}

// PersonalityInputs are the derived features the classifier rules read.
type PersonalityInputs struct {
	TotalMessages      int     `json:"total_messages"`
	SendReceiveRatio   float64 `json:"send_receive_ratio"`
	ReplySamples       int     `json:"reply_samples"`
	MeanReplySeconds   float64 `json:"mean_reply_seconds"`
	MedianReplySeconds float64 `json:"median_reply_seconds"`
	LateNightFraction  float64 `json:"late_night_fraction"`
	InitiationRatio    float64 `json:"initiation_ratio"`
	PeakHour           int     `json:"peak_hour"`
}

// Personality is the classifier verdict plus the inputs it was judged on.
type Personality struct {
	Label   string            `json:"label"`
	Tagline string            `json:"tagline"`
	Inputs  PersonalityInputs `json:"inputs"`
}

// RankingEntry is one row of a top-N leaderboard.
type RankingEntry struct {
	ContactKey string  `json:"contact_key"`
	Value      float64 `json:"value"`
}

// Totals is the process-wide rollup across every contact.
type Totals struct {
	Messages      int            `json:"messages"`
	Sent          int            `json:"sent"`
	Received      int            `json:"received"`
	Contacts      int            `json:"contacts"`
	LateNight     int            `json:"late_night"`
	SentChars     int            `json:"sent_chars"`
	SentWithEmoji int            `json:"sent_with_emoji"`
	PerDay        map[string]int `json:"per_day"`
	ByHour        [24]int        `json:"by_hour"`
	ByWeekday     [7]int         `json:"by_weekday"`
	PeakHour      int            `json:"peak_hour"`
	PeakWeekday   time.Weekday   `json:"peak_weekday"`
	BusiestDay    string         `json:"busiest_day"`
	BusiestCount  int            `json:"busiest_count"`
	DaysObserved  int            `json:"days_observed"`
}

// MetricBundle is the complete derived output for one dataset. It is a pure
// function of the input events and configuration: no clocks, no identifiers,
// no randomness, so equal inputs marshal to equal bytes.
type MetricBundle struct {
	Window      Window                       `json:"window"`
	Totals      Totals                       `json:"totals"`
	Contacts    map[string]*ContactAggregate `json:"contacts"`
	Latency     LatencyReport                `json:"latency"`
	Trends      map[string]TrendResult       `json:"trends"`
	Skews       map[string]SkewResult        `json:"skews"`
	Personality Personality                  `json:"personality"`
	Rankings    map[string][]RankingEntry    `json:"rankings"`
}

// NewMetricBundle returns a bundle with every map initialized.
func NewMetricBundle() *MetricBundle {
	return &MetricBundle{
		Contacts: make(map[string]*ContactAggregate),
		Latency:  LatencyReport{ByContact: make(map[string]ContactLatency)},
		Trends:   make(map[string]TrendResult),
		Skews:    make(map[string]SkewResult),
		Rankings: make(map[string][]RankingEntry),
	}
}
