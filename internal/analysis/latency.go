package analysis

import (
	"sort"

	"github.com/rcliao/chat-wrapped/internal/model"
)

// PairLatency walks one contact's ordered events and emits a sample at every
// direction flip: the gap between the last message of a run and the first
// message going the other way. Runs of same-direction messages produce no
// samples.
func PairLatency(key string, events []model.MessageEvent) []model.LatencySample {
	var samples []model.LatencySample
	for i := 1; i < len(events); i++ {
		prev, cur := events[i-1], events[i]
		if cur.Direction == prev.Direction {
			continue
		}
		samples = append(samples, model.LatencySample{
			ContactKey:         key,
			ResponderDirection: cur.Direction,
			Delay:              cur.Timestamp.Sub(prev.Timestamp),
		})
	}
	return samples
}

// SummarizeLatency reduces samples to stats. Delays above the cap are
// counted in Capped and excluded; delays below the floor are dropped
// outright. Median is the upper median of the admitted values.
func SummarizeLatency(samples []model.LatencySample, cfg Config) model.LatencyStats {
	var stats model.LatencyStats
	var secs []float64
	for _, s := range samples {
		if s.Delay > cfg.LatencyCap {
			stats.Capped++
			continue
		}
		if s.Delay < cfg.LatencyFloor {
			continue
		}
		secs = append(secs, s.Delay.Seconds())
	}
	if len(secs) == 0 {
		return stats
	}

	sort.Float64s(secs)
	sum := 0.0
	for _, v := range secs {
		sum += v
	}
	stats.Samples = len(secs)
	stats.MeanSeconds = sum / float64(len(secs))
	stats.MedianSeconds = secs[len(secs)/2]
	stats.MinSeconds = secs[0]
	stats.MaxSeconds = secs[len(secs)-1]
	return stats
}

func splitByResponder(samples []model.LatencySample) (sent, received []model.LatencySample) {
	for _, s := range samples {
		if s.ResponderDirection == model.DirectionSent {
			sent = append(sent, s)
		} else {
			received = append(received, s)
		}
	}
	return sent, received
}

// buildLatencyReport pairs every contact's events and summarizes the samples
// overall, per responder direction, and per contact. Contacts with no flips
// get no ByContact entry.
func buildLatencyReport(events model.EventLog, cfg Config) model.LatencyReport {
	report := model.LatencyReport{ByContact: make(map[string]model.ContactLatency)}
	var all, allSent, allReceived []model.LatencySample
	for _, key := range events.ContactKeys() {
		samples := PairLatency(key, events[key])
		if len(samples) == 0 {
			continue
		}
		sent, received := splitByResponder(samples)
		report.ByContact[key] = model.ContactLatency{
			Sent:     SummarizeLatency(sent, cfg),
			Received: SummarizeLatency(received, cfg),
		}
		all = append(all, samples...)
		allSent = append(allSent, sent...)
		allReceived = append(allReceived, received...)
	}
	report.Overall = SummarizeLatency(all, cfg)
	report.Sent = SummarizeLatency(allSent, cfg)
	report.Received = SummarizeLatency(allReceived, cfg)
	return report
}
