package analysis

import (
	"time"

	"github.com/rcliao/chat-wrapped/internal/model"
)

// AnalyzeSkew computes conversational balance for one contact: the share of
// traffic the owner sent, and who opens sessions. Ties on openers go to the
// owner.
func AnalyzeSkew(key string, events []model.MessageEvent, cfg Config) model.SkewResult {
	r := model.SkewResult{ContactKey: key, Initiator: model.DirectionSent}
	sent := 0
	for _, ev := range events {
		if ev.Direction == model.DirectionSent {
			sent++
		}
	}
	if len(events) > 0 {
		r.SentRatio = float64(sent) / float64(len(events))
	}
	r.OpenersSent, r.OpenersReceived = sessionOpeners(events, cfg.IdleGap)
	if r.OpenersReceived > r.OpenersSent {
		r.Initiator = model.DirectionReceived
	}
	return r
}

// sessionOpeners counts who speaks first per session. The first event opens
// a session; any event arriving more than gap after its predecessor opens
// another.
func sessionOpeners(events []model.MessageEvent, gap time.Duration) (sent, received int) {
	for i, ev := range events {
		if i > 0 && ev.Timestamp.Sub(events[i-1].Timestamp) <= gap {
			continue
		}
		if ev.Direction == model.DirectionSent {
			sent++
		} else {
			received++
		}
	}
	return sent, received
}

func analyzeSkews(events model.EventLog, cfg Config) map[string]model.SkewResult {
	skews := make(map[string]model.SkewResult, len(events))
	for key, evs := range events {
		skews[key] = AnalyzeSkew(key, evs, cfg)
	}
	return skews
}
