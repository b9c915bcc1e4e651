package store

import (
	"sync"

	"github.com/eventclima/eventclima/internal/climate"
)

// HistoryLog is a concurrency-safe in-memory implementation of the query
// history. Entries are append-only and live for the process lifetime; there
// is no persistence across restarts.
type HistoryLog struct {
	mu      sync.RWMutex
	entries []climate.HistoryEntry
}

// NewHistoryLog creates an empty HistoryLog.
func NewHistoryLog() *HistoryLog {
	return &HistoryLog{}
}

// Append records a new entry. Each append is atomic; relative ordering
// between concurrent appends is unspecified.
func (l *HistoryLog) Append(entry climate.HistoryEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entry)
}

// All returns a copy of the full history, most-recent-first.
func (l *HistoryLog) All() []climate.HistoryEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]climate.HistoryEntry, len(l.entries))
	for i, e := range l.entries {
		out[len(l.entries)-1-i] = e
	}
	return out
}

// Len returns the number of recorded entries.
func (l *HistoryLog) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}
