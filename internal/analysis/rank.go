package analysis

import (
	"errors"
	"fmt"
	"sort"

	"github.com/rcliao/chat-wrapped/internal/model"
)

// Metric names a leaderboard.
type Metric string

const (
	MetricTopContacts   Metric = "top_contacts"
	MetricLateNight     Metric = "late_night"
	MetricQuickestReply Metric = "quickest_reply"
	MetricBiggestFan    Metric = "biggest_fan"
	MetricDownBad       Metric = "down_bad"
	MetricHeatingUp     Metric = "heating_up"
	MetricGhosted       Metric = "ghosted"
)

// Metrics lists every built-in ranking.
var Metrics = []Metric{
	MetricTopContacts,
	MetricLateNight,
	MetricQuickestReply,
	MetricBiggestFan,
	MetricDownBad,
	MetricHeatingUp,
	MetricGhosted,
}

// MetricValue returns one contact's value for a metric, or an
// *InsufficientDataError when the contact does not qualify. Rankings treat
// that error as an exclusion.
func MetricValue(b *model.MetricBundle, metric Metric, key string, cfg Config) (float64, error) {
	agg, ok := b.Contacts[key]
	if !ok {
		return 0, &InsufficientDataError{ContactKey: key, Metric: string(metric)}
	}
	skip := func() (float64, error) {
		return 0, &InsufficientDataError{ContactKey: key, Metric: string(metric)}
	}

	switch metric {
	case MetricTopContacts:
		return float64(agg.Total()), nil

	case MetricLateNight:
		if agg.LateNightCount <= cfg.MinLateNight {
			return skip()
		}
		return float64(agg.LateNightCount), nil

	case MetricQuickestReply:
		cl, ok := b.Latency.ByContact[key]
		if !ok || cl.Received.Samples == 0 {
			return skip()
		}
		return cl.Received.MedianSeconds, nil

	case MetricBiggestFan:
		if agg.Total() <= cfg.MinSkewVolume {
			return skip()
		}
		if float64(agg.TotalReceived) <= cfg.FanFactor*float64(agg.TotalSent) {
			return skip()
		}
		return float64(agg.TotalReceived) / float64(max(agg.TotalSent, 1)), nil

	case MetricDownBad:
		if agg.Total() <= cfg.MinSkewVolume {
			return skip()
		}
		if float64(agg.TotalSent) <= cfg.FanFactor*float64(agg.TotalReceived) {
			return skip()
		}
		return float64(agg.TotalSent) / float64(max(agg.TotalReceived, 1)), nil

	case MetricHeatingUp:
		tr, ok := b.Trends[key]
		if !ok || tr.Classification != model.TrendHeatingUp {
			return skip()
		}
		return float64(tr.LateCount - tr.EarlyCount), nil

	case MetricGhosted:
		tr, ok := b.Trends[key]
		if !ok || tr.Classification != model.TrendGhosted {
			return skip()
		}
		return float64(tr.EarlyCount), nil
	}
	return 0, fmt.Errorf("unknown ranking metric %q", metric)
}

// RankMetric builds one leaderboard: qualifying contacts sorted by value,
// ties broken by contact key, truncated to cfg.TopN. quickest_reply sorts
// ascending, everything else descending.
func RankMetric(b *model.MetricBundle, metric Metric, cfg Config) ([]model.RankingEntry, error) {
	keys := make([]string, 0, len(b.Contacts))
	for key := range b.Contacts {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	entries := make([]model.RankingEntry, 0, len(keys))
	for _, key := range keys {
		v, err := MetricValue(b, metric, key, cfg)
		if err != nil {
			var ins *InsufficientDataError
			if errors.As(err, &ins) {
				continue
			}
			return nil, err
		}
		entries = append(entries, model.RankingEntry{ContactKey: key, Value: v})
	}

	ascending := metric == MetricQuickestReply
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Value != entries[j].Value {
			if ascending {
				return entries[i].Value < entries[j].Value
			}
			return entries[i].Value > entries[j].Value
		}
		return entries[i].ContactKey < entries[j].ContactKey
	})
	if cfg.TopN > 0 && len(entries) > cfg.TopN {
		entries = entries[:cfg.TopN]
	}
	return entries, nil
}

// buildRankings assembles every built-in leaderboard. The built-in metrics
// cannot return the unknown-metric error, so failures are impossible here.
func buildRankings(b *model.MetricBundle, cfg Config) map[string][]model.RankingEntry {
	rankings := make(map[string][]model.RankingEntry, len(Metrics))
	for _, m := range Metrics {
		entries, err := RankMetric(b, m, cfg)
		if err != nil {
			continue
		}
		rankings[string(m)] = entries
	}
	return rankings
}
