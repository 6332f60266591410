// Package render turns computed metric bundles into output: an HTML
// slide gallery, a terminal recap, and a JSON-ready envelope.
package render

import (
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/rcliao/chat-wrapped/internal/model"
)

// Envelope stamps a metric bundle with run identity so exported reports
// can be told apart. RunID is a ULID, so reports sort by generation time.
type Envelope struct {
	RunID       string              `json:"run_id"`
	GeneratedAt time.Time           `json:"generated_at"`
	Year        int                 `json:"year"`
	Names       map[string]string   `json:"names,omitempty"`
	Groups      *model.GroupStats   `json:"groups,omitempty"`
	Metrics     *model.MetricBundle `json:"metrics"`
}

// NewEnvelope wraps a bundle for output. Names maps contact keys to
// display names; contacts without an entry render as the raw key. Groups
// is optional; group traffic never enters the bundle itself.
func NewEnvelope(bundle *model.MetricBundle, groups *model.GroupStats, names map[string]string, year int, now time.Time) Envelope {
	entropy := rand.New(rand.NewSource(now.UnixNano()))
	return Envelope{
		RunID:       ulid.MustNew(ulid.Timestamp(now), entropy).String(),
		GeneratedAt: now.UTC(),
		Year:        year,
		Names:       names,
		Groups:      groups,
		Metrics:     bundle,
	}
}

// DisplayName resolves a contact key to a human name when one is known.
func (e Envelope) DisplayName(key string) string {
	if name, ok := e.Names[key]; ok && name != "" {
		return name
	}
	return key
}
