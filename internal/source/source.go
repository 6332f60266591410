// Package source extracts normalized message events from local chat stores.
// Extractors read the stores read-only, reduce message text to coarse
// signals at the boundary, and never let content escape into the pipeline.
package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/rcliao/chat-wrapped/internal/model"
)

// Contact key prefixes keep identifiers from different stores disjoint.
const (
	PrefixIMessage = "imessage:"
	PrefixWhatsApp = "whatsapp:"
)

// Options selects which stores to read and the time span to keep. Empty
// paths skip that store; zero times leave that bound open.
type Options struct {
	IMessageDB     string
	WhatsAppDB     string
	AddressBookDir string
	Since          time.Time
	Until          time.Time
}

// Result is a load's combined output: events ready for analysis, a display
// name for every distinct contact key, group chat rollups, and per-store
// row counts. Groups is nil when no iMessage store was read.
type Result struct {
	Events []model.MessageEvent
	Names  map[string]string
	Groups *model.GroupStats
	Counts map[string]int
}

// Load extracts events from every configured store, sorts them per contact,
// and resolves display names. Group chat rollups ride along from the
// iMessage store. At least one store path must be set.
func Load(ctx context.Context, opts Options) (*Result, error) {
	if opts.IMessageDB == "" && opts.WhatsAppDB == "" {
		return nil, fmt.Errorf("no chat stores configured")
	}

	res := &Result{
		Names:  make(map[string]string),
		Counts: make(map[string]int),
	}
	partnerNames := make(map[string]string)

	if opts.IMessageDB != "" {
		events, err := ExtractIMessage(ctx, opts.IMessageDB, opts.Since, opts.Until)
		if err != nil {
			return nil, fmt.Errorf("imessage: %w", err)
		}
		res.Events = append(res.Events, events...)
		res.Counts["imessage"] = len(events)
	}
	if opts.WhatsAppDB != "" {
		events, names, err := ExtractWhatsApp(ctx, opts.WhatsAppDB, opts.Since, opts.Until)
		if err != nil {
			return nil, fmt.Errorf("whatsapp: %w", err)
		}
		res.Events = append(res.Events, events...)
		res.Counts["whatsapp"] = len(events)
		for key, name := range names {
			partnerNames[key] = name
		}
	}

	sort.SliceStable(res.Events, func(i, j int) bool {
		a, b := res.Events[i], res.Events[j]
		if a.ContactKey != b.ContactKey {
			return a.ContactKey < b.ContactKey
		}
		return a.Timestamp.Before(b.Timestamp)
	})

	book := emptyBook()
	if opts.AddressBookDir != "" {
		loaded, err := LoadAddressBook(ctx, opts.AddressBookDir)
		if err == nil {
			book = loaded
		}
	}
	for _, ev := range res.Events {
		if _, ok := res.Names[ev.ContactKey]; ok {
			continue
		}
		res.Names[ev.ContactKey] = displayName(ev.ContactKey, partnerNames, book)
	}

	if opts.IMessageDB != "" {
		groups, err := ExtractIMessageGroups(ctx, opts.IMessageDB, opts.Since, opts.Until, book)
		if err != nil {
			return nil, fmt.Errorf("imessage groups: %w", err)
		}
		res.Groups = groups
	}
	return res, nil
}

// displayName picks the best label for a contact key: the store's own
// partner name, then the address book, then the identifier itself with
// any @-domain (JID, email) trimmed off.
func displayName(key string, partnerNames map[string]string, book *Book) string {
	if name, ok := partnerNames[key]; ok && name != "" {
		return name
	}
	return handleName(StripPrefix(key), book)
}

// handleName labels a raw handle: the address book first, then the handle
// itself with any @-domain trimmed.
func handleName(handle string, book *Book) string {
	if name, ok := book.Lookup(handle); ok {
		return name
	}
	if i := strings.Index(handle, "@"); i > 0 {
		return handle[:i]
	}
	return handle
}

// StripPrefix removes the store prefix from a contact key.
func StripPrefix(key string) string {
	for _, p := range []string{PrefixIMessage, PrefixWhatsApp} {
		if rest, ok := strings.CutPrefix(key, p); ok {
			return rest
		}
	}
	return key
}

// DefaultIMessagePath returns the standard macOS chat.db location.
func DefaultIMessagePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, "Library", "Messages", "chat.db")
}

// DefaultWhatsAppPaths returns the known WhatsApp store locations, newest
// layout first.
func DefaultWhatsAppPaths() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	return []string{
		filepath.Join(home, "Library", "Group Containers", "group.net.whatsapp.WhatsApp.shared", "ChatStorage.sqlite"),
		filepath.Join(home, "Library", "Containers", "com.whatsapp", "Data", "Library", "Application Support", "WhatsApp", "ChatStorage.sqlite"),
	}
}

// LocateWhatsApp returns the first WhatsApp store that exists, or "".
func LocateWhatsApp() string {
	for _, p := range DefaultWhatsAppPaths() {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// DefaultAddressBookDir returns the macOS AddressBook directory.
func DefaultAddressBookDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, "Library", "Application Support", "AddressBook")
}
