package analysis

import (
	"time"

	"github.com/rcliao/chat-wrapped/internal/model"
)

// DetectTrends classifies every contact by comparing message volume in the
// early and late slices of the dataset window. The same global window is
// used for every contact, so a contact first seen in March is still judged
// against the full span.
func DetectTrends(aggs map[string]*model.ContactAggregate, window model.Window, cfg Config) map[string]model.TrendResult {
	// The early and late windows must not overlap.
	frac := cfg.WindowFraction
	if frac <= 0 {
		frac = DefaultWindowFraction
	}
	if frac > 0.5 {
		frac = 0.5
	}

	results := make(map[string]model.TrendResult, len(aggs))
	span := window.Span()
	sub := time.Duration(float64(span) * frac)
	usable := span > 0 && sub > 0
	earlyEnd := window.Start.Add(sub)
	lateStart := window.End.Add(-sub)
	loc := window.Start.Location()

	for key, agg := range aggs {
		r := model.TrendResult{ContactKey: key, Classification: model.TrendStable}
		if usable {
			for day, n := range agg.PerDayCounts {
				t, err := time.ParseInLocation(model.DayFormat, day, loc)
				if err != nil {
					continue
				}
				// Day buckets only exist inside the window, so membership
				// needs just the inner boundary. The first day's midnight
				// may precede window.Start and still belongs to the early
				// slice.
				if t.Before(earlyEnd) {
					r.EarlyCount += n
				}
				if !t.Before(lateStart) {
					r.LateCount += n
				}
			}
			r.Classification = classifyTrend(r.EarlyCount, r.LateCount, cfg)
		}
		results[key] = r
	}
	return results
}

// classifyTrend applies the volume rules. Ghosted wins outright when the
// late window is silent; otherwise growth is checked before decline. Both
// checks require the driving window to exceed MinTrendVolume.
func classifyTrend(early, late int, cfg Config) model.TrendClass {
	switch {
	case late == 0 && early > cfg.MinTrendVolume:
		return model.TrendGhosted
	case late > cfg.MinTrendVolume && float64(late) >= float64(early)*cfg.GrowthThreshold:
		return model.TrendHeatingUp
	case early > cfg.MinTrendVolume && float64(late) <= float64(early)*cfg.DeclineFloor:
		return model.TrendGhosted
	default:
		return model.TrendStable
	}
}
