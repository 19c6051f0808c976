// Package repository caches normalized score tables keyed by the state
// of the workbook on disk.
package repository

import (
	"context"
	"time"

	"github.com/shopfloor/frenzy/internal/domain/scores"
)

// Stamp identifies which workbook state a table was built from.
type Stamp struct {
	Path     string
	ModTime  time.Time
	Size     int64
	LoadedAt time.Time
}

// Stats is a point-in-time snapshot of cache activity.
type Stats struct {
	Hits          uint64
	Misses        uint64
	Invalidations uint64
	CachedRows    int
	LastLoad      time.Time
}

// Store provides cached access to the normalized score table.
type Store interface {
	// Table returns the normalized table for the workbook at path,
	// reloading only when the file changed since the cached copy.
	// The returned table is the caller's to mutate.
	Table(ctx context.Context, path string) (scores.Table, Stamp, error)

	// Invalidate drops the cached table so the next read reloads.
	Invalidate(ctx context.Context)

	// Stats reports cache activity counters.
	Stats(ctx context.Context) Stats
}
