package model

// GroupStats is the multi-participant chat rollup. Group traffic stays out
// of the per-contact metrics; it only decorates the rendered report.
type GroupStats struct {
	Groups   int          `json:"groups"`
	Messages int          `json:"messages"`
	Sent     int          `json:"sent"`
	Top      []GroupEntry `json:"top,omitempty"`
}

// GroupEntry is one group chat on the activity leaderboard.
type GroupEntry struct {
	Name         string `json:"name"`
	Participants int    `json:"participants"`
	Messages     int    `json:"messages"`
}
