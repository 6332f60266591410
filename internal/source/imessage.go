package source

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/rcliao/chat-wrapped/internal/model"
)

// appleEpochOffset converts Apple's 2001-01-01 epoch to Unix seconds.
const appleEpochOffset = 978307200

// directMessagesCTE restricts message rows to 1:1 chats. Group chats have
// two or more rows in chat_handle_join.
const directMessagesCTE = `
	WITH chat_participants AS (
		SELECT chat_id, COUNT(*) AS participant_count
		FROM chat_handle_join
		GROUP BY chat_id
	),
	direct_messages AS (
		SELECT m.ROWID AS msg_id
		FROM message m
		JOIN chat_message_join cmj ON m.ROWID = cmj.message_id
		JOIN chat_participants cp ON cmj.chat_id = cp.chat_id
		WHERE cp.participant_count = 1
	)`

func openReadOnly(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", "file:"+dbPath+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	return db, nil
}

// ExtractIMessage reads 1:1 message rows from an iMessage chat.db and
// normalizes them into events keyed by "imessage:<handle>". Shortcode
// senders (5-6 digit numbers) are skipped. The message date column holds
// nanoseconds since the Apple epoch.
func ExtractIMessage(ctx context.Context, dbPath string, since, until time.Time) ([]model.MessageEvent, error) {
	db, err := openReadOnly(dbPath)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	where := []string{"m.ROWID IN (SELECT msg_id FROM direct_messages)"}
	var args []interface{}
	if !since.IsZero() {
		where = append(where, "m.date/1000000000 + 978307200 >= ?")
		args = append(args, since.Unix())
	}
	if !until.IsZero() {
		where = append(where, "m.date/1000000000 + 978307200 < ?")
		args = append(args, until.Unix())
	}

	query := fmt.Sprintf(`%s
		SELECT h.id, m.date/1000000000 + 978307200, m.is_from_me, COALESCE(m.text, '')
		FROM message m
		JOIN handle h ON m.handle_id = h.ROWID
		WHERE %s
		ORDER BY h.id, m.date`, directMessagesCTE, strings.Join(where, " AND "))

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query messages: %w", err)
	}
	defer rows.Close()

	var events []model.MessageEvent
	for rows.Next() {
		var handle, text string
		var unix int64
		var fromMe int
		if err := rows.Scan(&handle, &unix, &fromMe, &text); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		if isShortcode(handle) {
			continue
		}
		dir := model.DirectionReceived
		if fromMe == 1 {
			dir = model.DirectionSent
		}
		chars, emoji := Signals(text)
		events = append(events, model.MessageEvent{
			ContactKey: PrefixIMessage + handle,
			Timestamp:  time.Unix(unix, 0),
			Direction:  dir,
			CharLength: chars,
			HasEmoji:   emoji,
		})
	}
	return events, rows.Err()
}

// topGroupChats caps the group leaderboard.
const topGroupChats = 5

// ExtractIMessageGroups rolls up multi-participant chats from a chat.db:
// how many groups were active in the window, the message split, and the
// most active groups. Unnamed groups are labeled by their first two
// members, resolved through the address book.
func ExtractIMessageGroups(ctx context.Context, dbPath string, since, until time.Time, book *Book) (*model.GroupStats, error) {
	db, err := openReadOnly(dbPath)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	where := []string{"cp.participant_count >= 2"}
	var args []interface{}
	if !since.IsZero() {
		where = append(where, "m.date/1000000000 + 978307200 >= ?")
		args = append(args, since.Unix())
	}
	if !until.IsZero() {
		where = append(where, "m.date/1000000000 + 978307200 < ?")
		args = append(args, until.Unix())
	}

	cte := fmt.Sprintf(`
		WITH chat_participants AS (
			SELECT chat_id, COUNT(*) AS participant_count
			FROM chat_handle_join
			GROUP BY chat_id
		),
		group_messages AS (
			SELECT cmj.chat_id, m.is_from_me
			FROM message m
			JOIN chat_message_join cmj ON m.ROWID = cmj.message_id
			JOIN chat_participants cp ON cmj.chat_id = cp.chat_id
			WHERE %s
		)`, strings.Join(where, " AND "))

	stats := &model.GroupStats{}
	overview := cte + `
		SELECT COUNT(DISTINCT chat_id), COUNT(*), COALESCE(SUM(is_from_me), 0)
		FROM group_messages`
	if err := db.QueryRowContext(ctx, overview, args...).Scan(&stats.Groups, &stats.Messages, &stats.Sent); err != nil {
		return nil, fmt.Errorf("query group totals: %w", err)
	}
	if stats.Groups == 0 {
		return stats, nil
	}

	leaderboard := cte + fmt.Sprintf(`
		SELECT c.ROWID, COALESCE(c.display_name, ''), COUNT(*) AS n,
			(SELECT COUNT(*) FROM chat_handle_join WHERE chat_id = c.ROWID)
		FROM chat c
		JOIN group_messages gm ON c.ROWID = gm.chat_id
		GROUP BY c.ROWID
		ORDER BY n DESC, c.ROWID
		LIMIT %d`, topGroupChats)

	rows, err := db.QueryContext(ctx, leaderboard, args...)
	if err != nil {
		return nil, fmt.Errorf("query group leaderboard: %w", err)
	}
	defer rows.Close()

	type groupRow struct {
		chatID       int64
		displayName  string
		messages     int
		participants int
	}
	var board []groupRow
	for rows.Next() {
		var g groupRow
		if err := rows.Scan(&g.chatID, &g.displayName, &g.messages, &g.participants); err != nil {
			return nil, fmt.Errorf("scan group: %w", err)
		}
		board = append(board, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, g := range board {
		name := g.displayName
		if name == "" {
			name, err = groupFallbackName(ctx, db, g.chatID, g.participants, book)
			if err != nil {
				return nil, err
			}
		}
		stats.Top = append(stats.Top, model.GroupEntry{
			Name:         name,
			Participants: g.participants,
			Messages:     g.messages,
		})
	}
	return stats, nil
}

// groupFallbackName labels an unnamed group by its first two members, with
// a "+N" tail for the rest.
func groupFallbackName(ctx context.Context, db *sql.DB, chatID int64, participants int, book *Book) (string, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT h.id FROM chat_handle_join chj
		JOIN handle h ON chj.handle_id = h.ROWID
		WHERE chj.chat_id = ?
		ORDER BY h.ROWID
		LIMIT 2`, chatID)
	if err != nil {
		return "", fmt.Errorf("query group members: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var handle string
		if err := rows.Scan(&handle); err != nil {
			return "", fmt.Errorf("scan group member: %w", err)
		}
		names = append(names, handleName(handle, book))
	}
	if err := rows.Err(); err != nil {
		return "", err
	}

	name := strings.Join(names, ", ")
	if extra := participants - len(names); extra > 0 {
		name = fmt.Sprintf("%s +%d", name, extra)
	}
	return name, nil
}

// isShortcode matches 5-6 digit service numbers (carriers, 2FA blasts).
func isShortcode(handle string) bool {
	s := strings.NewReplacer("+", "", "-", "").Replace(handle)
	if len(s) < 5 || len(s) > 6 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
