package source

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// Book maps normalized identifiers (digit strings and lowercased emails) to
// contact display names.
type Book struct {
	names map[string]string
}

func emptyBook() *Book {
	return &Book{names: make(map[string]string)}
}

// Len returns the number of registered identifiers.
func (b *Book) Len() int {
	return len(b.names)
}

// LoadAddressBook reads every AddressBook-v22.abcddb under the macOS
// AddressBook directory (per-source databases plus the main one) and builds
// a lookup table. Unreadable databases are skipped; the book is best-effort.
func LoadAddressBook(ctx context.Context, dir string) (*Book, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "Sources", "*", "AddressBook-v22.abcddb"))
	if err != nil {
		return nil, fmt.Errorf("glob address books: %w", err)
	}
	paths = append(paths, filepath.Join(dir, "AddressBook-v22.abcddb"))

	book := emptyBook()
	for _, p := range paths {
		book.loadOne(ctx, p)
	}
	return book, nil
}

func (b *Book) loadOne(ctx context.Context, dbPath string) {
	db, err := openReadOnly(dbPath)
	if err != nil {
		return
	}
	defer db.Close()

	people := make(map[int64]string)
	rows, err := db.QueryContext(ctx,
		`SELECT ROWID, COALESCE(ZFIRSTNAME, ''), COALESCE(ZLASTNAME, '')
		 FROM ZABCDRECORD
		 WHERE ZFIRSTNAME IS NOT NULL OR ZLASTNAME IS NOT NULL`)
	if err != nil {
		return
	}
	for rows.Next() {
		var id int64
		var first, last string
		if err := rows.Scan(&id, &first, &last); err != nil {
			continue
		}
		if name := strings.TrimSpace(first + " " + last); name != "" {
			people[id] = name
		}
	}
	rows.Close()

	phones, err := db.QueryContext(ctx,
		`SELECT ZOWNER, ZFULLNUMBER FROM ZABCDPHONENUMBER WHERE ZFULLNUMBER IS NOT NULL`)
	if err == nil {
		for phones.Next() {
			var owner int64
			var number string
			if err := phones.Scan(&owner, &number); err != nil {
				continue
			}
			name, ok := people[owner]
			if !ok {
				continue
			}
			b.registerPhone(number, name)
		}
		phones.Close()
	}

	emails, err := db.QueryContext(ctx,
		`SELECT ZOWNER, ZADDRESS FROM ZABCDEMAILADDRESS WHERE ZADDRESS IS NOT NULL`)
	if err == nil {
		for emails.Next() {
			var owner int64
			var addr string
			if err := emails.Scan(&owner, &addr); err != nil {
				continue
			}
			if name, ok := people[owner]; ok {
				b.names[strings.ToLower(strings.TrimSpace(addr))] = name
			}
		}
		emails.Close()
	}
}

// registerPhone indexes a number under every form a handle might use: full
// digits, last ten, last seven, and without a leading country 1.
func (b *Book) registerPhone(number, name string) {
	digits := digitsOf(number)
	if digits == "" {
		return
	}
	b.names[digits] = name
	if len(digits) >= 10 {
		b.names[digits[len(digits)-10:]] = name
	}
	if len(digits) >= 7 {
		b.names[digits[len(digits)-7:]] = name
	}
	if len(digits) == 11 && digits[0] == '1' {
		b.names[digits[1:]] = name
	}
}

// Lookup resolves a raw handle (phone number, email, or WhatsApp JID) to a
// contact name.
func (b *Book) Lookup(handle string) (string, bool) {
	if strings.Contains(handle, "@") {
		if name, ok := b.names[strings.ToLower(strings.TrimSpace(handle))]; ok {
			return name, true
		}
	}
	digits := digitsOf(handle)
	if digits == "" {
		return "", false
	}
	if name, ok := b.names[digits]; ok {
		return name, true
	}
	if len(digits) == 11 && digits[0] == '1' {
		if name, ok := b.names[digits[1:]]; ok {
			return name, true
		}
	}
	if len(digits) >= 10 {
		if name, ok := b.names[digits[len(digits)-10:]]; ok {
			return name, true
		}
	}
	if len(digits) >= 7 {
		if name, ok := b.names[digits[len(digits)-7:]]; ok {
			return name, true
		}
	}
	return "", false
}

func digitsOf(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
