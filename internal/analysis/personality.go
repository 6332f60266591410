package analysis

import "github.com/rcliao/chat-wrapped/internal/model"

// FallbackLabel is the verdict when no rule matches.
const (
	FallbackLabel   = "SUSPICIOUSLY NORMAL"
	FallbackTagline = "no notes. boring but stable."
)

// Rule is one personality check. Match reads derived inputs only, never raw
// events.
type Rule struct {
	Label   string
	Tagline string
	Match   func(model.PersonalityInputs) bool
}

// DefaultRules returns the built-in chain in evaluation order. Order is the
// contract: the first match wins, so a nocturnal yapper is NOCTURNAL MENACE.
func DefaultRules(cfg Config) []Rule {
	t := cfg.Thresholds
	return []Rule{
		{
			Label:   "NOCTURNAL MENACE",
			Tagline: "terrorizes people at ungodly hours",
			Match: func(in model.PersonalityInputs) bool {
				return cfg.InNight(in.PeakHour) || in.PeakHour > t.EveningHour
			},
		},
		{
			Label:   "TERMINALLY ONLINE",
			Tagline: "has never touched grass",
			Match: func(in model.PersonalityInputs) bool {
				return in.ReplySamples > 0 && in.MedianReplySeconds < t.FastReply.Seconds()
			},
		},
		{
			Label:   "TOO COOL TO REPLY",
			Tagline: "leaves everyone on read",
			Match: func(in model.PersonalityInputs) bool {
				return in.ReplySamples > 0 && in.MedianReplySeconds > t.SlowReply.Seconds()
			},
		},
		{
			Label:   "POPULAR (ALLEGEDLY)",
			Tagline: "everyone wants a piece",
			Match: func(in model.PersonalityInputs) bool {
				return in.SendReceiveRatio < t.QuietRatio
			},
		},
		{
			Label:   "THE YAPPER",
			Tagline: "carries every conversation alone",
			Match: func(in model.PersonalityInputs) bool {
				return in.SendReceiveRatio > t.LoudRatio
			},
		},
		{
			Label:   "CONVERSATION STARTER",
			Tagline: "always making the first move",
			Match: func(in model.PersonalityInputs) bool {
				return in.InitiationRatio > t.StarterRatio
			},
		},
		{
			Label:   "THE WAITER",
			Tagline: "never texts first, ever",
			Match: func(in model.PersonalityInputs) bool {
				return in.InitiationRatio < t.WaiterRatio
			},
		},
	}
}

// Classify runs the chain top to bottom and returns the first match. Empty
// datasets skip the rules entirely so zero-valued inputs cannot misfire.
func Classify(in model.PersonalityInputs, rules []Rule) model.Personality {
	p := model.Personality{Label: FallbackLabel, Tagline: FallbackTagline, Inputs: in}
	if in.TotalMessages == 0 {
		return p
	}
	for _, r := range rules {
		if r.Match(in) {
			p.Label = r.Label
			p.Tagline = r.Tagline
			return p
		}
	}
	return p
}

// personalityInputs derives the classifier features from the already
// computed sections. The owner's reply stats come from the sent-responder
// side of the latency report. InitiationRatio defaults to neutral when no
// sessions exist.
func personalityInputs(totals model.Totals, latency model.LatencyReport, skews map[string]model.SkewResult) model.PersonalityInputs {
	in := model.PersonalityInputs{
		TotalMessages:      totals.Messages,
		SendReceiveRatio:   float64(totals.Sent) / float64(totals.Received+1),
		ReplySamples:       latency.Sent.Samples,
		MeanReplySeconds:   latency.Sent.MeanSeconds,
		MedianReplySeconds: latency.Sent.MedianSeconds,
		PeakHour:           totals.PeakHour,
		InitiationRatio:    0.5,
	}
	if totals.Messages > 0 {
		in.LateNightFraction = float64(totals.LateNight) / float64(totals.Messages)
	}
	openersSent, openersReceived := 0, 0
	for _, s := range skews {
		openersSent += s.OpenersSent
		openersReceived += s.OpenersReceived
	}
	if openersSent+openersReceived > 0 {
		in.InitiationRatio = float64(openersSent) / float64(openersSent+openersReceived)
	}
	return in
}
