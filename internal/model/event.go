// Package model defines the core message-metric data types.
package model

import (
	"sort"
	"time"
)

// Direction tells who produced a message: the account owner or the contact.
type Direction string

const (
	// DirectionSent marks a message authored by the account owner.
	DirectionSent Direction = "sent"
	// DirectionReceived marks a message authored by the contact.
	DirectionReceived Direction = "received"
)

// ValidDirections are the allowed direction values.
var ValidDirections = map[Direction]bool{
	DirectionSent:     true,
	DirectionReceived: true,
}

// Other returns the opposite direction.
func (d Direction) Other() Direction {
	if d == DirectionSent {
		return DirectionReceived
	}
	return DirectionSent
}

// MessageEvent is one normalized message in a 1:1 conversation. Message
// content never crosses this boundary; only coarse signals derived from it
// (CharLength, HasEmoji) do.
type MessageEvent struct {
	ContactKey string    `json:"contact_key"`
	Timestamp  time.Time `json:"timestamp"`
	Direction  Direction `json:"direction"`
	CharLength int       `json:"char_length"`
	HasEmoji   bool      `json:"has_emoji,omitempty"`
}

// EventLog holds per-contact event slices, each in ascending timestamp order.
type EventLog map[string][]MessageEvent

// GroupEvents splits a flat event slice into an EventLog, preserving the
// relative order of each contact's events.
func GroupEvents(events []MessageEvent) EventLog {
	log := make(EventLog)
	for _, ev := range events {
		log[ev.ContactKey] = append(log[ev.ContactKey], ev)
	}
	return log
}

// ContactKeys returns the distinct contact keys in lexical order.
func (l EventLog) ContactKeys() []string {
	keys := make([]string, 0, len(l))
	for k := range l {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Total returns the number of events across all contacts.
func (l EventLog) Total() int {
	n := 0
	for _, evs := range l {
		n += len(evs)
	}
	return n
}
