package analysis

import (
	"errors"
	"testing"

	"github.com/rcliao/chat-wrapped/internal/model"
)

func rankBundle() *model.MetricBundle {
	b := model.NewMetricBundle()
	add := func(key string, sent, received, lateNight int) {
		b.Contacts[key] = &model.ContactAggregate{
			ContactKey:     key,
			TotalSent:      sent,
			TotalReceived:  received,
			LateNightCount: lateNight,
			PerDayCounts:   map[string]int{},
		}
	}
	add("alice", 60, 60, 12) // total 120
	add("bob", 10, 110, 3)   // total 120, fan profile
	add("carol", 90, 20, 8)  // total 110, down-bad profile
	add("dave", 20, 20, 6)   // total 40
	return b
}

func TestRankMetric_TopContactsTieBreak(t *testing.T) {
	b := rankBundle()
	entries, err := RankMetric(b, MetricTopContacts, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(entries))
	}
	// alice and bob tie at 120; lexical order breaks it.
	if entries[0].ContactKey != "alice" || entries[1].ContactKey != "bob" {
		t.Errorf("expected alice then bob on tie, got %s then %s", entries[0].ContactKey, entries[1].ContactKey)
	}
	if entries[2].ContactKey != "carol" || entries[3].ContactKey != "dave" {
		t.Errorf("expected carol then dave, got %s then %s", entries[2].ContactKey, entries[3].ContactKey)
	}
}

func TestRankMetric_TruncatesToTopN(t *testing.T) {
	b := rankBundle()
	cfg := DefaultConfig()
	cfg.TopN = 2
	entries, err := RankMetric(b, MetricTopContacts, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("expected 2 entries, got %d", len(entries))
	}
}

func TestRankMetric_LateNightThreshold(t *testing.T) {
	b := rankBundle()
	cfg := DefaultConfig() // MinLateNight 5, strict
	entries, err := RankMetric(b, MetricLateNight, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 qualifying contacts, got %d", len(entries))
	}
	if entries[0].ContactKey != "alice" || entries[0].Value != 12 {
		t.Errorf("expected alice first with 12, got %s with %v", entries[0].ContactKey, entries[0].Value)
	}
	for _, e := range entries {
		if e.ContactKey == "bob" {
			t.Error("bob has 3 late-night messages and must be excluded")
		}
	}
}

func TestRankMetric_QuickestReplyAscending(t *testing.T) {
	b := rankBundle()
	b.Latency.ByContact["alice"] = model.ContactLatency{Received: model.LatencyStats{Samples: 5, MedianSeconds: 90}}
	b.Latency.ByContact["bob"] = model.ContactLatency{Received: model.LatencyStats{Samples: 5, MedianSeconds: 30}}
	b.Latency.ByContact["carol"] = model.ContactLatency{Received: model.LatencyStats{Samples: 5, MedianSeconds: 600}}
	// dave never replied: no entry at all.

	entries, err := RankMetric(b, MetricQuickestReply, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].ContactKey != "bob" || entries[1].ContactKey != "alice" || entries[2].ContactKey != "carol" {
		t.Errorf("expected bob, alice, carol; got %s, %s, %s", entries[0].ContactKey, entries[1].ContactKey, entries[2].ContactKey)
	}
}

func TestRankMetric_FanAndDownBad(t *testing.T) {
	b := rankBundle()
	cfg := DefaultConfig() // MinSkewVolume 100, FanFactor 2

	fans, err := RankMetric(b, MetricBiggestFan, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fans) != 1 || fans[0].ContactKey != "bob" {
		t.Fatalf("expected only bob as fan, got %+v", fans)
	}
	if fans[0].Value != 11 {
		t.Errorf("expected fan score 110/10=11, got %v", fans[0].Value)
	}

	down, err := RankMetric(b, MetricDownBad, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(down) != 1 || down[0].ContactKey != "carol" {
		t.Fatalf("expected only carol down bad, got %+v", down)
	}
	if down[0].Value != 4.5 {
		t.Errorf("expected score 90/20=4.5, got %v", down[0].Value)
	}
}

func TestMetricValue_ZeroSentFanScore(t *testing.T) {
	b := model.NewMetricBundle()
	b.Contacts["ghostfan"] = &model.ContactAggregate{
		ContactKey:    "ghostfan",
		TotalReceived: 150,
		PerDayCounts:  map[string]int{},
	}
	v, err := MetricValue(b, MetricBiggestFan, "ghostfan", DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 150 {
		t.Errorf("expected score 150 with the zero-sent divisor pinned to 1, got %v", v)
	}
}

func TestMetricValue_InsufficientData(t *testing.T) {
	b := rankBundle()
	_, err := MetricValue(b, MetricQuickestReply, "dave", DefaultConfig())
	if err == nil {
		t.Fatal("expected insufficient-data error")
	}
	var ins *InsufficientDataError
	if !errors.As(err, &ins) {
		t.Fatalf("expected InsufficientDataError, got %T: %v", err, err)
	}
	if ins.ContactKey != "dave" || ins.Metric != string(MetricQuickestReply) {
		t.Errorf("unexpected error fields: %+v", ins)
	}
}

func TestMetricValue_UnknownMetric(t *testing.T) {
	b := rankBundle()
	if _, err := MetricValue(b, Metric("nonsense"), "alice", DefaultConfig()); err == nil {
		t.Error("expected error for unknown metric")
	}
	var ins *InsufficientDataError
	_, err := MetricValue(b, Metric("nonsense"), "alice", DefaultConfig())
	if errors.As(err, &ins) {
		t.Error("unknown metric must not read as an exclusion")
	}
}

func TestRankMetric_TrendLeaderboards(t *testing.T) {
	b := rankBundle()
	b.Trends["alice"] = model.TrendResult{ContactKey: "alice", EarlyCount: 5, LateCount: 45, Classification: model.TrendHeatingUp}
	b.Trends["bob"] = model.TrendResult{ContactKey: "bob", EarlyCount: 10, LateCount: 30, Classification: model.TrendHeatingUp}
	b.Trends["carol"] = model.TrendResult{ContactKey: "carol", EarlyCount: 80, LateCount: 2, Classification: model.TrendGhosted}
	b.Trends["dave"] = model.TrendResult{ContactKey: "dave", EarlyCount: 20, LateCount: 20, Classification: model.TrendStable}

	heating, err := RankMetric(b, MetricHeatingUp, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(heating) != 2 {
		t.Fatalf("expected 2 heating contacts, got %d", len(heating))
	}
	if heating[0].ContactKey != "alice" || heating[0].Value != 40 {
		t.Errorf("expected alice first with gain 40, got %s with %v", heating[0].ContactKey, heating[0].Value)
	}

	ghosted, err := RankMetric(b, MetricGhosted, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ghosted) != 1 || ghosted[0].ContactKey != "carol" || ghosted[0].Value != 80 {
		t.Errorf("expected carol with early count 80, got %+v", ghosted)
	}
}

func TestRankMetric_EmptyBundleEmptyEntries(t *testing.T) {
	entries, err := RankMetric(model.NewMetricBundle(), MetricTopContacts, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no entries, got %d", len(entries))
	}
}
