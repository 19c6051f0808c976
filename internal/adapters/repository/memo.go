package repository

import (
	"context"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shopfloor/frenzy/internal/adapters/source"
	"github.com/shopfloor/frenzy/internal/domain/scores"
	"github.com/shopfloor/frenzy/pkg/metrics"
)

// Memo is a single-entry Store. It keeps the last normalized table
// together with the (path, modtime, size) it was built from and serves
// that copy until the file changes or Invalidate drops it.
//
// The mutex is held across reloads so concurrent readers of a stale
// entry trigger exactly one load.
type Memo struct {
	loader source.Loader

	mu    sync.Mutex
	entry *entry

	hits          atomic.Uint64
	misses        atomic.Uint64
	invalidations atomic.Uint64
}

type entry struct {
	stamp Stamp
	table scores.Table
}

// NewMemo creates a Memo backed by an XLSX loader unless another loader
// is configured.
func NewMemo(opts ...Option) *Memo {
	m := &Memo{loader: source.New()}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Table implements Store.
func (m *Memo) Table(ctx context.Context, path string) (scores.Table, Stamp, error) {
	info, err := os.Stat(path)
	if err != nil {
		return scores.Table{}, Stamp{}, fmt.Errorf("%w: %w", source.ErrDataUnavailable, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if e := m.entry; e != nil && e.stamp.Path == path &&
		e.stamp.ModTime.Equal(info.ModTime()) && e.stamp.Size == info.Size() {
		m.hits.Add(1)
		metrics.RecordCacheHit()
		return e.table.Clone(), e.stamp, nil
	}

	m.misses.Add(1)
	metrics.RecordCacheMiss()

	raw, err := m.loader.Load(ctx, path)
	if err != nil {
		return scores.Table{}, Stamp{}, err
	}
	table, err := scores.Normalize(raw)
	if err != nil {
		metrics.RecordValidationFailure()
		return scores.Table{}, Stamp{}, err
	}

	now := time.Now()
	e := &entry{
		stamp: Stamp{Path: path, ModTime: info.ModTime(), Size: info.Size(), LoadedAt: now},
		table: table,
	}
	m.entry = e

	metrics.RecordCoercionFailures(table.CoercionFailures)
	metrics.UpdateRowsLoaded(table.Len())
	metrics.UpdateCacheLastLoadUnix(now.Unix())

	return e.table.Clone(), e.stamp, nil
}

// Invalidate implements Store.
func (m *Memo) Invalidate(_ context.Context) {
	m.mu.Lock()
	m.entry = nil
	m.mu.Unlock()

	m.invalidations.Add(1)
	metrics.RecordCacheInvalidation()
}

// Stats implements Store.
func (m *Memo) Stats(_ context.Context) Stats {
	st := Stats{
		Hits:          m.hits.Load(),
		Misses:        m.misses.Load(),
		Invalidations: m.invalidations.Load(),
	}

	m.mu.Lock()
	if m.entry != nil {
		st.CachedRows = m.entry.table.Len()
		st.LastLoad = m.entry.stamp.LoadedAt
	}
	m.mu.Unlock()

	return st
}
