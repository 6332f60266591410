package analysis

import (
	"time"

	"github.com/rcliao/chat-wrapped/internal/model"
)

// Accumulator is the process-wide rollup. It is threaded through the
// pipeline explicitly so nothing aggregates into package state.
type Accumulator struct {
	totals   model.Totals
	window   model.Window
	contacts int
	seen     bool
}

// NewAccumulator returns an empty rollup.
func NewAccumulator() *Accumulator {
	return &Accumulator{totals: model.Totals{PerDay: make(map[string]int)}}
}

// Observe folds one event into the rollup.
func (a *Accumulator) Observe(ev model.MessageEvent, cfg Config) {
	a.totals.Messages++
	switch ev.Direction {
	case model.DirectionSent:
		a.totals.Sent++
		a.totals.SentChars += ev.CharLength
		if ev.HasEmoji {
			a.totals.SentWithEmoji++
		}
	case model.DirectionReceived:
		a.totals.Received++
	}
	if cfg.InNight(ev.Timestamp.Hour()) {
		a.totals.LateNight++
	}
	a.totals.PerDay[ev.Timestamp.Format(model.DayFormat)]++
	a.totals.ByHour[ev.Timestamp.Hour()]++
	a.totals.ByWeekday[int(ev.Timestamp.Weekday())]++

	if !a.seen || ev.Timestamp.Before(a.window.Start) {
		a.window.Start = ev.Timestamp
	}
	if !a.seen || ev.Timestamp.After(a.window.End) {
		a.window.End = ev.Timestamp
	}
	a.seen = true
}

// Window returns the observed [min, max] timestamp span. Zero when nothing
// was observed.
func (a *Accumulator) Window() model.Window {
	return a.window
}

// Totals finalizes the rollup: peak hour and weekday (smallest index wins
// ties), busiest day (lexically smallest day key wins ties), and the count
// of calendar days the window spans.
func (a *Accumulator) Totals() model.Totals {
	t := a.totals
	t.Contacts = a.contacts
	if t.Messages == 0 {
		return t
	}

	for h, n := range t.ByHour {
		if n > t.ByHour[t.PeakHour] {
			t.PeakHour = h
		}
	}
	for wd, n := range t.ByWeekday {
		if n > t.ByWeekday[t.PeakWeekday] {
			t.PeakWeekday = time.Weekday(wd)
		}
	}
	for day, n := range t.PerDay {
		if n > t.BusiestCount || (n == t.BusiestCount && (t.BusiestDay == "" || day < t.BusiestDay)) {
			t.BusiestDay = day
			t.BusiestCount = n
		}
	}
	t.DaysObserved = daysSpanned(a.window.Start, a.window.End)
	return t
}

// daysSpanned counts calendar days from the first to the last timestamp,
// inclusive. Rounding absorbs DST-shortened and -lengthened days.
func daysSpanned(start, end time.Time) int {
	first := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	last := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location())
	return int(last.Sub(first).Hours()/24+0.5) + 1
}

// AggregateContacts folds every contact's events into per-contact counters
// while feeding the shared accumulator. Input slices must already be in
// ascending timestamp order.
func AggregateContacts(events model.EventLog, cfg Config, acc *Accumulator) map[string]*model.ContactAggregate {
	aggs := make(map[string]*model.ContactAggregate, len(events))
	for key, evs := range events {
		agg := &model.ContactAggregate{
			ContactKey:   key,
			PerDayCounts: make(map[string]int),
		}
		for i, ev := range evs {
			switch ev.Direction {
			case model.DirectionSent:
				agg.TotalSent++
				agg.SentChars += ev.CharLength
				if ev.HasEmoji {
					agg.SentWithEmoji++
				}
			case model.DirectionReceived:
				agg.TotalReceived++
			}
			if cfg.InNight(ev.Timestamp.Hour()) {
				agg.LateNightCount++
			}
			agg.PerDayCounts[ev.Timestamp.Format(model.DayFormat)]++
			if i == 0 {
				agg.FirstSeen = ev.Timestamp
			}
			agg.LastSeen = ev.Timestamp
			acc.Observe(ev, cfg)
		}
		aggs[key] = agg
	}
	acc.contacts = len(aggs)
	return aggs
}
