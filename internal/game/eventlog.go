package game

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Garsondee/chessjam/internal/obslog"
)

// Event categories.
const (
	CatSession   = "session"
	CatSelection = "select"
	CatMove      = "move"
	CatUI        = "ui"
)

// Event is one recorded session event.
type Event struct {
	Frame    int
	Category string
	Key      string // event name within the category
	Value    string // human-readable detail
	NumVal   float64
}

// String formats the entry as a fixed-width log line.
//
//	[F=0042] move      committed        e2-e4
func (e Event) String() string {
	return fmt.Sprintf("[F=%04d] %-9s %-16s %s", e.Frame, e.Category, e.Key, e.Value)
}

// EventLog collects structured session events. Unlike MoveLog it is
// unbounded; tests and the headless renderer query it.
type EventLog struct {
	entries []Event
}

// NewEventLog returns an empty log.
func NewEventLog() *EventLog {
	return &EventLog{}
}

// Add records an event and mirrors it to the process logger.
func (el *EventLog) Add(frame int, category, key, value string, numVal float64) {
	el.entries = append(el.entries, Event{
		Frame:    frame,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
	obslog.L().Debug("event",
		zap.Int("frame", frame),
		zap.String("category", category),
		zap.String("key", key),
		zap.String("value", value),
	)
}

// Entries returns all recorded events.
func (el *EventLog) Entries() []Event {
	return el.entries
}

// Filter returns events matching category and key. Empty strings match anything.
func (el *EventLog) Filter(category, key string) []Event {
	var out []Event
	for _, e := range el.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// CountCategory returns how many events match category and key.
func (el *EventLog) CountCategory(category, key string) int {
	return len(el.Filter(category, key))
}

// LastOf returns the most recent event matching category and key.
func (el *EventLog) LastOf(category, key string) (Event, bool) {
	entries := el.Filter(category, key)
	if len(entries) == 0 {
		return Event{}, false
	}
	return entries[len(entries)-1], true
}

// HasEntry reports whether an event matches category, key and a value substring.
func (el *EventLog) HasEntry(category, key, valueSubstr string) bool {
	for _, e := range el.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		if valueSubstr != "" && !strings.Contains(e.Value, valueSubstr) {
			continue
		}
		return true
	}
	return false
}

// Format returns the whole log, one event per line.
func (el *EventLog) Format() string {
	var sb strings.Builder
	for _, e := range el.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
