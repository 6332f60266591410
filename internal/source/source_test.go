package source

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rcliao/chat-wrapped/internal/model"
)

func TestLoad_MergesStoresAndResolvesNames(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2025, 2, 14, 18, 0, 0, 0, time.UTC)

	imsgPath, imsgDB := newIMessageFixture(t)
	imsgDB.Exec(`INSERT INTO handle (ROWID, id) VALUES (1, '+15551234567'), (2, '+15553334444')`)
	imsgDB.Exec(`INSERT INTO chat_handle_join (chat_id, handle_id) VALUES (1, 1), (2, 2)`)
	seedIMessage(t, imsgDB, 100, 1, 1, base, 1, "happy valentines")
	seedIMessage(t, imsgDB, 101, 1, 1, base.Add(time.Minute), 0, "you too!")
	seedIMessage(t, imsgDB, 102, 2, 2, base.Add(time.Hour), 0, "stranger things")

	waPath, waDB := newWhatsAppFixture(t)
	waDB.Exec(`INSERT INTO ZWACHATSESSION (Z_PK, ZCONTACTJID, ZSESSIONTYPE, ZPARTNERNAME) VALUES
		(1, '15559990000@s.whatsapp.net', 0, 'Carol'),
		(2, '15558881111@s.whatsapp.net', 0, NULL)`)
	seedWhatsApp(t, waDB, 1, base.Add(2*time.Hour), 0, "feliz dia")
	seedWhatsApp(t, waDB, 2, base.Add(3*time.Hour), 1, "hey")

	bookDir := t.TempDir()
	writeAddressBook(t, filepath.Join(bookDir, "AddressBook-v22.abcddb"))

	res, err := Load(ctx, Options{
		IMessageDB:     imsgPath,
		WhatsAppDB:     waPath,
		AddressBookDir: bookDir,
	})
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if len(res.Events) != 5 {
		t.Fatalf("expected 5 events, got %d", len(res.Events))
	}
	if res.Counts["imessage"] != 3 || res.Counts["whatsapp"] != 2 {
		t.Errorf("unexpected per-store counts: %v", res.Counts)
	}

	log := model.GroupEvents(res.Events)
	for _, key := range log.ContactKeys() {
		evs := log[key]
		for i := 1; i < len(evs); i++ {
			if evs[i].Timestamp.Before(evs[i-1].Timestamp) {
				t.Errorf("%s: events out of order at %d", key, i)
			}
		}
	}

	// Address book resolves the iMessage handle; the session's partner name
	// wins for WhatsApp; unresolvable keys fall back to the identifier.
	if got := res.Names["imessage:+15551234567"]; got != "Alice Smith" {
		t.Errorf("expected Alice Smith, got %q", got)
	}
	if got := res.Names["whatsapp:15559990000@s.whatsapp.net"]; got != "Carol" {
		t.Errorf("expected Carol, got %q", got)
	}
	if got := res.Names["whatsapp:15558881111@s.whatsapp.net"]; got != "15558881111" {
		t.Errorf("expected bare number fallback, got %q", got)
	}
	if got := res.Names["imessage:+15553334444"]; got != "+15553334444" {
		t.Errorf("expected raw handle fallback, got %q", got)
	}

	// Both fixture chats are 1:1, so the rollup is present but empty.
	if res.Groups == nil || res.Groups.Groups != 0 {
		t.Errorf("expected empty group rollup, got %+v", res.Groups)
	}
}

func TestLoad_NoStoresConfigured(t *testing.T) {
	if _, err := Load(context.Background(), Options{}); err == nil {
		t.Error("expected error with no stores configured")
	}
}

func TestStripPrefix(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"imessage:+15551234567", "+15551234567"},
		{"whatsapp:15551234567@s.whatsapp.net", "15551234567@s.whatsapp.net"},
		{"bare", "bare"},
	}
	for _, tt := range tests {
		if got := StripPrefix(tt.key); got != tt.want {
			t.Errorf("StripPrefix(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}
