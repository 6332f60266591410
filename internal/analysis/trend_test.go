package analysis

import (
	"testing"

	"github.com/rcliao/chat-wrapped/internal/model"
)

// trendAgg builds an aggregate with early volume on day 5 and late volume
// on day 85 of a 90-day window.
func trendAgg(key string, early, late int) *model.ContactAggregate {
	agg := &model.ContactAggregate{ContactKey: key, PerDayCounts: map[string]int{}}
	if early > 0 {
		agg.PerDayCounts[day(5).Format(model.DayFormat)] = early
	}
	if late > 0 {
		agg.PerDayCounts[day(85).Format(model.DayFormat)] = late
	}
	return agg
}

func TestDetectTrends_Classifications(t *testing.T) {
	window := model.Window{Start: day(0), End: day(89)}
	cfg := DefaultConfig()
	aggs := map[string]*model.ContactAggregate{
		"steady":   trendAgg("steady", 25, 25),
		"warming":  trendAgg("warming", 5, 40),
		"fading":   trendAgg("fading", 40, 2),
		"vanished": trendAgg("vanished", 40, 0),
		"onesided": trendAgg("onesided", 10, 0),
	}
	results := DetectTrends(aggs, window, cfg)

	want := map[string]model.TrendClass{
		"steady":   model.TrendStable,
		"warming":  model.TrendHeatingUp,
		"fading":   model.TrendGhosted,
		"vanished": model.TrendGhosted,
		"onesided": model.TrendStable,
	}
	for key, class := range want {
		got, ok := results[key]
		if !ok {
			t.Fatalf("missing trend for %s", key)
		}
		if got.Classification != class {
			t.Errorf("%s: expected %s, got %s (early=%d late=%d)", key, class, got.Classification, got.EarlyCount, got.LateCount)
		}
	}
}

func TestDetectTrends_WindowCounts(t *testing.T) {
	window := model.Window{Start: day(0), End: day(89)}
	results := DetectTrends(map[string]*model.ContactAggregate{
		"a": trendAgg("a", 7, 9),
	}, window, DefaultConfig())
	r := results["a"]
	if r.EarlyCount != 7 || r.LateCount != 9 {
		t.Errorf("expected early 7 late 9, got %d/%d", r.EarlyCount, r.LateCount)
	}
}

func TestDetectTrends_GlobalWindowSharedAcrossContacts(t *testing.T) {
	// A contact whose entire history sits in the dataset's late third must
	// be judged against the global window, not its own first/last seen.
	window := model.Window{Start: day(0), End: day(89)}
	agg := &model.ContactAggregate{ContactKey: "newcomer", PerDayCounts: map[string]int{
		day(82).Format(model.DayFormat): 20,
		day(86).Format(model.DayFormat): 20,
	}}
	results := DetectTrends(map[string]*model.ContactAggregate{"newcomer": agg}, window, DefaultConfig())
	r := results["newcomer"]
	if r.EarlyCount != 0 || r.LateCount != 40 {
		t.Fatalf("expected early 0 late 40, got %d/%d", r.EarlyCount, r.LateCount)
	}
	if r.Classification != model.TrendHeatingUp {
		t.Errorf("expected heating_up, got %s", r.Classification)
	}
}

func TestDetectTrends_MiddleVolumeIgnored(t *testing.T) {
	window := model.Window{Start: day(0), End: day(89)}
	agg := &model.ContactAggregate{ContactKey: "midyear", PerDayCounts: map[string]int{
		day(45).Format(model.DayFormat): 500,
	}}
	results := DetectTrends(map[string]*model.ContactAggregate{"midyear": agg}, window, DefaultConfig())
	r := results["midyear"]
	if r.EarlyCount != 0 || r.LateCount != 0 {
		t.Errorf("mid-window volume leaked into trend windows: early=%d late=%d", r.EarlyCount, r.LateCount)
	}
	if r.Classification != model.TrendStable {
		t.Errorf("expected stable, got %s", r.Classification)
	}
}

func TestDetectTrends_ZeroSpanAllStable(t *testing.T) {
	window := model.Window{Start: day(1), End: day(1)}
	agg := trendAgg("a", 0, 40)
	results := DetectTrends(map[string]*model.ContactAggregate{"a": agg}, window, DefaultConfig())
	if results["a"].Classification != model.TrendStable {
		t.Errorf("expected stable for zero-span window, got %s", results["a"].Classification)
	}
}

func TestDetectTrends_OversizedFractionClamped(t *testing.T) {
	// A fraction above one half would make the windows overlap and count
	// mid-window days twice. It must behave exactly like one half.
	window := model.Window{Start: day(0), End: day(12)}
	agg := &model.ContactAggregate{ContactKey: "a", PerDayCounts: map[string]int{
		day(0).Format(model.DayFormat):  1,
		day(6).Format(model.DayFormat):  20,
		day(12).Format(model.DayFormat): 1,
	}}
	cfg := DefaultConfig()
	cfg.WindowFraction = 0.9
	results := DetectTrends(map[string]*model.ContactAggregate{"a": agg}, window, cfg)
	r := results["a"]
	if r.EarlyCount != 1 || r.LateCount != 21 {
		t.Errorf("expected early 1 late 21, got %d/%d", r.EarlyCount, r.LateCount)
	}
}

func TestDetectTrends_ZeroFractionUsesDefault(t *testing.T) {
	window := model.Window{Start: day(0), End: day(89)}
	cfg := DefaultConfig()
	cfg.WindowFraction = 0
	results := DetectTrends(map[string]*model.ContactAggregate{
		"a": trendAgg("a", 7, 9),
	}, window, cfg)
	r := results["a"]
	if r.EarlyCount != 7 || r.LateCount != 9 {
		t.Errorf("expected early 7 late 9, got %d/%d", r.EarlyCount, r.LateCount)
	}
}

func TestClassifyTrend_Thresholds(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		early, late int
		want        model.TrendClass
	}{
		{25, 25, model.TrendStable},
		{5, 40, model.TrendHeatingUp},
		{40, 2, model.TrendGhosted},
		{40, 0, model.TrendGhosted},
		{10, 0, model.TrendStable},  // volume must exceed the minimum
		{0, 10, model.TrendStable},  // same on the late side
		{0, 11, model.TrendHeatingUp},
		{11, 0, model.TrendGhosted},
		{20, 30, model.TrendHeatingUp}, // 30 >= 20*1.5
		{20, 29, model.TrendStable},
		{20, 6, model.TrendGhosted}, // 6 <= 20*0.3
		{20, 7, model.TrendStable},
	}
	for _, tt := range tests {
		if got := classifyTrend(tt.early, tt.late, cfg); got != tt.want {
			t.Errorf("classifyTrend(%d, %d) = %s, want %s", tt.early, tt.late, got, tt.want)
		}
	}
}
