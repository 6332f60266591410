package analysis

import (
	"testing"
	"time"

	"github.com/rcliao/chat-wrapped/internal/model"
)

func TestPairLatency_SingleFlip(t *testing.T) {
	key := "imessage:alice"
	evs := []model.MessageEvent{
		ev(key, day(1), model.DirectionReceived),
		ev(key, day(1).Add(30*time.Second), model.DirectionSent),
	}
	samples := PairLatency(key, evs)
	if len(samples) != 1 {
		t.Fatalf("expected 1 sample, got %d", len(samples))
	}
	s := samples[0]
	if s.Seconds() != 30 {
		t.Errorf("expected 30s delay, got %v", s.Delay)
	}
	if s.ResponderDirection != model.DirectionSent {
		t.Errorf("expected sent responder, got %s", s.ResponderDirection)
	}
}

func TestPairLatency_DoubleTextNoSample(t *testing.T) {
	key := "imessage:alice"
	evs := []model.MessageEvent{
		ev(key, day(1), model.DirectionSent),
		ev(key, day(1).Add(time.Minute), model.DirectionSent),
		ev(key, day(1).Add(2*time.Minute), model.DirectionSent),
	}
	if samples := PairLatency(key, evs); samples != nil {
		t.Errorf("expected no samples for a one-sided run, got %d", len(samples))
	}
}

func TestPairLatency_MeasuresFromLastOfRun(t *testing.T) {
	key := "imessage:alice"
	evs := []model.MessageEvent{
		ev(key, day(1), model.DirectionReceived),
		ev(key, day(1).Add(10*time.Minute), model.DirectionReceived),
		ev(key, day(1).Add(11*time.Minute), model.DirectionSent),
	}
	samples := PairLatency(key, evs)
	if len(samples) != 1 {
		t.Fatalf("expected 1 sample, got %d", len(samples))
	}
	if samples[0].Delay != time.Minute {
		t.Errorf("expected 1m delay from end of run, got %v", samples[0].Delay)
	}
}

func TestPairLatency_CountEqualsFlips(t *testing.T) {
	key := "imessage:alice"
	dirs := []model.Direction{
		model.DirectionSent,
		model.DirectionReceived,
		model.DirectionReceived,
		model.DirectionSent,
		model.DirectionReceived,
		model.DirectionSent,
		model.DirectionSent,
	}
	evs := make([]model.MessageEvent, len(dirs))
	for i, d := range dirs {
		evs[i] = ev(key, day(1).Add(time.Duration(i)*time.Minute), d)
	}
	samples := PairLatency(key, evs)
	flips := 0
	for i := 1; i < len(dirs); i++ {
		if dirs[i] != dirs[i-1] {
			flips++
		}
	}
	if len(samples) != flips {
		t.Errorf("expected %d samples (one per flip), got %d", flips, len(samples))
	}
	if len(samples) > len(evs)-1 {
		t.Errorf("sample count %d exceeds event count minus one", len(samples))
	}
}

func TestSummarizeLatency_Stats(t *testing.T) {
	key := "imessage:alice"
	mk := func(d time.Duration) model.LatencySample {
		return model.LatencySample{ContactKey: key, ResponderDirection: model.DirectionSent, Delay: d}
	}
	samples := []model.LatencySample{
		mk(40 * time.Second),
		mk(10 * time.Second),
		mk(30 * time.Second),
		mk(20 * time.Second),
	}
	cfg := DefaultConfig()
	cfg.LatencyFloor = 0
	stats := SummarizeLatency(samples, cfg)
	if stats.Samples != 4 {
		t.Fatalf("expected 4 samples, got %d", stats.Samples)
	}
	if stats.MeanSeconds != 25 {
		t.Errorf("expected mean 25, got %v", stats.MeanSeconds)
	}
	if stats.MedianSeconds != 30 {
		t.Errorf("expected upper median 30, got %v", stats.MedianSeconds)
	}
	if stats.MinSeconds != 10 || stats.MaxSeconds != 40 {
		t.Errorf("expected min 10 max 40, got %v/%v", stats.MinSeconds, stats.MaxSeconds)
	}
}

func TestSummarizeLatency_FloorAndCap(t *testing.T) {
	key := "imessage:alice"
	mk := func(d time.Duration) model.LatencySample {
		return model.LatencySample{ContactKey: key, ResponderDirection: model.DirectionSent, Delay: d}
	}
	samples := []model.LatencySample{
		mk(2 * time.Second),  // under floor, dropped
		mk(60 * time.Second), // kept
		mk(25 * time.Hour),   // over cap
	}
	stats := SummarizeLatency(samples, DefaultConfig())
	if stats.Samples != 1 {
		t.Errorf("expected 1 admitted sample, got %d", stats.Samples)
	}
	if stats.Capped != 1 {
		t.Errorf("expected 1 capped sample, got %d", stats.Capped)
	}
	if stats.MeanSeconds != 60 {
		t.Errorf("expected mean 60, got %v", stats.MeanSeconds)
	}
}

func TestSummarizeLatency_Empty(t *testing.T) {
	stats := SummarizeLatency(nil, DefaultConfig())
	if stats.Samples != 0 || stats.MeanSeconds != 0 || stats.MedianSeconds != 0 {
		t.Errorf("expected zero stats, got %+v", stats)
	}
}

func TestBuildLatencyReport_SplitsByResponder(t *testing.T) {
	key := "imessage:alice"
	// Owner replies in 60s, then the contact replies in 30m.
	evs := []model.MessageEvent{
		ev(key, day(1), model.DirectionReceived),
		ev(key, day(1).Add(time.Minute), model.DirectionSent),
		ev(key, day(1).Add(31*time.Minute), model.DirectionReceived),
	}
	report := buildLatencyReport(model.EventLog{key: evs}, DefaultConfig())

	cl, ok := report.ByContact[key]
	if !ok {
		t.Fatal("missing by-contact latency")
	}
	if cl.Sent.Samples != 1 || cl.Sent.MedianSeconds != 60 {
		t.Errorf("expected one 60s owner reply, got %+v", cl.Sent)
	}
	if cl.Received.Samples != 1 || cl.Received.MedianSeconds != 1800 {
		t.Errorf("expected one 1800s contact reply, got %+v", cl.Received)
	}
	if report.Overall.Samples != 2 {
		t.Errorf("expected 2 overall samples, got %d", report.Overall.Samples)
	}
}

func TestBuildLatencyReport_NoFlipsNoEntry(t *testing.T) {
	key := "imessage:alice"
	evs := []model.MessageEvent{
		ev(key, day(1), model.DirectionSent),
		ev(key, day(2), model.DirectionSent),
	}
	report := buildLatencyReport(model.EventLog{key: evs}, DefaultConfig())
	if _, ok := report.ByContact[key]; ok {
		t.Error("expected no by-contact entry without direction flips")
	}
}
