package source

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"
)

func writeAddressBook(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open fixture: %v", err)
	}
	defer db.Close()

	schema := `
	CREATE TABLE ZABCDRECORD (ROWID INTEGER PRIMARY KEY, ZFIRSTNAME TEXT, ZLASTNAME TEXT);
	CREATE TABLE ZABCDPHONENUMBER (ZOWNER INTEGER, ZFULLNUMBER TEXT);
	CREATE TABLE ZABCDEMAILADDRESS (ZOWNER INTEGER, ZADDRESS TEXT);
	`
	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("create schema: %v", err)
	}
	db.Exec(`INSERT INTO ZABCDRECORD (ROWID, ZFIRSTNAME, ZLASTNAME) VALUES (1, 'Alice', 'Smith'), (2, 'Bob', NULL)`)
	db.Exec(`INSERT INTO ZABCDPHONENUMBER (ZOWNER, ZFULLNUMBER) VALUES (1, '+1 (555) 123-4567'), (2, '5550001111')`)
	db.Exec(`INSERT INTO ZABCDEMAILADDRESS (ZOWNER, ZADDRESS) VALUES (1, 'Alice@Example.com')`)
}

func TestAddressBook_Lookup(t *testing.T) {
	dir := t.TempDir()
	writeAddressBook(t, filepath.Join(dir, "AddressBook-v22.abcddb"))

	book, err := LoadAddressBook(context.Background(), dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if book.Len() == 0 {
		t.Fatal("expected identifiers in the book")
	}

	tests := []struct {
		handle string
		want   string
		ok     bool
	}{
		{"+15551234567", "Alice Smith", true},
		{"5551234567", "Alice Smith", true},
		{"555-123-4567", "Alice Smith", true},
		{"1234567", "Alice Smith", true},
		{"alice@example.com", "Alice Smith", true},
		{"Alice@Example.COM", "Alice Smith", true},
		{"15551234567@s.whatsapp.net", "Alice Smith", true},
		{"+15550001111", "Bob", true},
		{"+19998887777", "", false},
		{"nobody@example.com", "", false},
	}
	for _, tt := range tests {
		got, ok := book.Lookup(tt.handle)
		if ok != tt.ok || got != tt.want {
			t.Errorf("Lookup(%q) = %q/%v, want %q/%v", tt.handle, got, ok, tt.want, tt.ok)
		}
	}
}

func TestAddressBook_MergesSourceDatabases(t *testing.T) {
	dir := t.TempDir()
	writeAddressBook(t, filepath.Join(dir, "Sources", "ABC123", "AddressBook-v22.abcddb"))

	book, err := LoadAddressBook(context.Background(), dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if name, ok := book.Lookup("+15551234567"); !ok || name != "Alice Smith" {
		t.Errorf("expected Alice Smith from source db, got %q/%v", name, ok)
	}
}

func TestAddressBook_MissingDirIsEmpty(t *testing.T) {
	book, err := LoadAddressBook(context.Background(), filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("missing dir should not fail: %v", err)
	}
	if book.Len() != 0 {
		t.Errorf("expected empty book, got %d entries", book.Len())
	}
}
