// Package analysis computes chat metrics from normalized message events.
// The pipeline is pure: no clocks, no randomness, no I/O, so the same
// events and config always produce the same MetricBundle, byte for byte.
package analysis

import "github.com/rcliao/chat-wrapped/internal/model"

// Compute runs the full pipeline over an event log: per-contact aggregates,
// reply latency, trend windows, skew, personality, rankings. Events must be
// in ascending timestamp order per contact; an order violation fails the
// whole run. An empty log yields an empty bundle with the fallback
// personality.
func Compute(events model.EventLog, cfg Config) (*model.MetricBundle, error) {
	if err := ValidateEvents(events); err != nil {
		return nil, err
	}

	bundle := model.NewMetricBundle()
	if events.Total() == 0 {
		bundle.Personality = Classify(personalityInputs(bundle.Totals, bundle.Latency, bundle.Skews), nil)
		return bundle, nil
	}

	acc := NewAccumulator()
	bundle.Contacts = AggregateContacts(events, cfg, acc)
	bundle.Window = acc.Window()
	bundle.Totals = acc.Totals()
	bundle.Latency = buildLatencyReport(events, cfg)
	bundle.Trends = DetectTrends(bundle.Contacts, bundle.Window, cfg)
	bundle.Skews = analyzeSkews(events, cfg)

	rules := cfg.Rules
	if rules == nil {
		rules = DefaultRules(cfg)
	}
	bundle.Personality = Classify(personalityInputs(bundle.Totals, bundle.Latency, bundle.Skews), rules)
	bundle.Rankings = buildRankings(bundle, cfg)
	return bundle, nil
}

// ValidateEvents checks that every contact's events are in non-decreasing
// timestamp order. Equal timestamps are fine (same-second bursts);
// regressions fail fast so a half-aggregated bundle never escapes.
func ValidateEvents(events model.EventLog) error {
	for _, key := range events.ContactKeys() {
		evs := events[key]
		for i := 1; i < len(evs); i++ {
			if evs[i].Timestamp.Before(evs[i-1].Timestamp) {
				return &InvalidEventOrderError{ContactKey: key, Index: i}
			}
		}
	}
	return nil
}
