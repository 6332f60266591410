package source

import (
	"context"
	"os"
	"time"
)

// StoreStats holds one chat store's on-disk statistics.
type StoreStats struct {
	Source      string    `json:"source"`
	Path        string    `json:"path"`
	SizeBytes   int64     `json:"size_bytes"`
	Messages    int       `json:"messages"`
	Sent        int       `json:"sent"`
	Received    int       `json:"received"`
	Contacts    int       `json:"contacts"`
	Earliest    time.Time `json:"earliest"`
	Latest      time.Time `json:"latest"`
	DirectChats int       `json:"direct_chats"`
}

// IMessageStats summarizes the 1:1 portion of an iMessage chat.db.
func IMessageStats(ctx context.Context, dbPath string) (*StoreStats, error) {
	db, err := openReadOnly(dbPath)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	st := &StoreStats{Source: "imessage", Path: dbPath}
	if info, err := os.Stat(dbPath); err == nil {
		st.SizeBytes = info.Size()
	}

	var minUnix, maxUnix int64
	err = db.QueryRowContext(ctx, directMessagesCTE+`
		SELECT COUNT(*),
		       COALESCE(SUM(CASE WHEN m.is_from_me = 1 THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN m.is_from_me = 0 THEN 1 ELSE 0 END), 0),
		       COUNT(DISTINCT m.handle_id),
		       COALESCE(MIN(m.date/1000000000 + 978307200), 0),
		       COALESCE(MAX(m.date/1000000000 + 978307200), 0)
		FROM message m
		WHERE m.ROWID IN (SELECT msg_id FROM direct_messages)`).
		Scan(&st.Messages, &st.Sent, &st.Received, &st.Contacts, &minUnix, &maxUnix)
	if err != nil {
		return nil, err
	}
	if minUnix > 0 {
		st.Earliest = time.Unix(minUnix, 0)
		st.Latest = time.Unix(maxUnix, 0)
	}

	db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM (
			SELECT chat_id FROM chat_handle_join GROUP BY chat_id HAVING COUNT(*) = 1
		)`).Scan(&st.DirectChats)
	return st, nil
}

// WhatsAppStats summarizes the 1:1 portion of a WhatsApp ChatStorage.sqlite.
func WhatsAppStats(ctx context.Context, dbPath string) (*StoreStats, error) {
	db, err := openReadOnly(dbPath)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	st := &StoreStats{Source: "whatsapp", Path: dbPath}
	if info, err := os.Stat(dbPath); err == nil {
		st.SizeBytes = info.Size()
	}

	var minUnix, maxUnix int64
	err = db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COALESCE(SUM(CASE WHEN m.ZISFROMME = 1 THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN m.ZISFROMME = 0 THEN 1 ELSE 0 END), 0),
		       COUNT(DISTINCT s.ZCONTACTJID),
		       COALESCE(MIN(m.ZMESSAGEDATE + 978307200), 0),
		       COALESCE(MAX(m.ZMESSAGEDATE + 978307200), 0)
		FROM ZWAMESSAGE m
		JOIN ZWACHATSESSION s ON m.ZCHATSESSION = s.Z_PK
		WHERE s.ZSESSIONTYPE = 0 AND s.ZCONTACTJID IS NOT NULL`).
		Scan(&st.Messages, &st.Sent, &st.Received, &st.Contacts, &minUnix, &maxUnix)
	if err != nil {
		return nil, err
	}
	if minUnix > 0 {
		st.Earliest = time.Unix(minUnix, 0)
		st.Latest = time.Unix(maxUnix, 0)
	}

	db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM ZWACHATSESSION WHERE ZSESSIONTYPE = 0 AND ZCONTACTJID IS NOT NULL`).
		Scan(&st.DirectChats)
	return st, nil
}
