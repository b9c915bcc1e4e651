package climate

import (
	"context"
	"time"
)

// ArchiveProvider abstracts the upstream historical weather archive
// (e.g. Open-Meteo). Implementations perform a single attempt per call;
// any failure fails the whole query.
type ArchiveProvider interface {
	Name() string
	FetchDailyHistory(ctx context.Context, lat, lon float64, start, end time.Time) ([]DailyRecord, error)
}

// HistoryStore is the contract the in-memory history log (and any future
// persistent log) must satisfy: an append-only ordered sequence with a
// read-all accessor, most-recent-first.
type HistoryStore interface {
	Append(entry HistoryEntry)
	All() []HistoryEntry
}

// NameResolver turns coordinates into a human-readable place name. Used only
// when the caller did not supply a display name.
type NameResolver interface {
	ResolveName(ctx context.Context, lat, lon float64) (string, error)
}
