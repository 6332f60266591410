package source

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rcliao/chat-wrapped/internal/model"
)

// ExtractWhatsApp reads 1:1 message rows from a WhatsApp ChatStorage.sqlite
// and normalizes them into events keyed by "whatsapp:<jid>". Sessions with
// ZSESSIONTYPE 0 are direct chats; groups and broadcasts are excluded. The
// returned names map carries each session's partner name where the store
// has one. ZMESSAGEDATE holds seconds since the Apple epoch.
func ExtractWhatsApp(ctx context.Context, dbPath string, since, until time.Time) ([]model.MessageEvent, map[string]string, error) {
	db, err := openReadOnly(dbPath)
	if err != nil {
		return nil, nil, err
	}
	defer db.Close()

	where := []string{"s.ZSESSIONTYPE = 0", "s.ZCONTACTJID IS NOT NULL"}
	var args []interface{}
	if !since.IsZero() {
		where = append(where, "m.ZMESSAGEDATE + 978307200 >= ?")
		args = append(args, since.Unix())
	}
	if !until.IsZero() {
		where = append(where, "m.ZMESSAGEDATE + 978307200 < ?")
		args = append(args, until.Unix())
	}

	query := fmt.Sprintf(`
		SELECT s.ZCONTACTJID, COALESCE(s.ZPARTNERNAME, ''), m.ZMESSAGEDATE + 978307200, m.ZISFROMME, COALESCE(m.ZTEXT, '')
		FROM ZWAMESSAGE m
		JOIN ZWACHATSESSION s ON m.ZCHATSESSION = s.Z_PK
		WHERE %s
		ORDER BY s.ZCONTACTJID, m.ZMESSAGEDATE`, strings.Join(where, " AND "))

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("query messages: %w", err)
	}
	defer rows.Close()

	var events []model.MessageEvent
	names := make(map[string]string)
	for rows.Next() {
		var jid, partner, text string
		var unix int64
		var fromMe int
		if err := rows.Scan(&jid, &partner, &unix, &fromMe, &text); err != nil {
			return nil, nil, fmt.Errorf("scan message: %w", err)
		}
		key := PrefixWhatsApp + jid
		if partner != "" {
			names[key] = partner
		}
		dir := model.DirectionReceived
		if fromMe == 1 {
			dir = model.DirectionSent
		}
		chars, emoji := Signals(text)
		events = append(events, model.MessageEvent{
			ContactKey: key,
			Timestamp:  time.Unix(unix, 0),
			Direction:  dir,
			CharLength: chars,
			HasEmoji:   emoji,
		})
	}
	return events, names, rows.Err()
}
