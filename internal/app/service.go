// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/shopfloor/frenzy/internal/adapters/repository"
	"github.com/shopfloor/frenzy/internal/adapters/source"
	"github.com/shopfloor/frenzy/internal/domain/present"
	"github.com/shopfloor/frenzy/internal/domain/scores"
	"github.com/shopfloor/frenzy/internal/domain/view"
	"github.com/shopfloor/frenzy/pkg/logger"
	"github.com/shopfloor/frenzy/pkg/metrics"
)

// Render source labels used in metrics and artifact state.
const (
	SourceDefault = "default"
	SourceUpload  = "upload"
)

// Service wires the workbook cache, the view pipeline and the presenter
// into the operations the HTTP API needs.
type Service struct {
	mu sync.RWMutex

	store  repository.Store
	loader source.Loader

	scoresPath    string
	spotlightSize int
	topFloor      int

	started bool

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithScoresPath sets the workbook path served by default.
func WithScoresPath(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.scoresPath = path
		}
	}
}

// WithSpotlightSize sets how many leading teams get spotlight cards.
func WithSpotlightSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.spotlightSize = n
		}
	}
}

// WithTopFloor sets the minimum number of rows a view keeps when the
// data allows it.
func WithTopFloor(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.topFloor = n
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithStore sets the table cache, mainly for tests.
func WithStore(st repository.Store) Option {
	return func(s *Service) {
		if st != nil {
			s.store = st
		}
	}
}

// WithLoader sets the workbook loader used for uploads and, unless a
// store was injected, for the cache built at start.
func WithLoader(l source.Loader) Option {
	return func(s *Service) {
		if l != nil {
			s.loader = l
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		scoresPath:    "scores.xlsx",
		spotlightSize: 3,
		topFloor:      3,
		loader:        source.New(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}
	if s.store == nil {
		s.store = repository.NewMemo(repository.WithLoader(s.loader))
	}

	s.started = true
	s.logger.Info(ctx, "dashboard service started",
		logger.String("scoresPath", s.scoresPath),
		logger.Int("spotlightSize", s.spotlightSize),
		logger.Int("topFloor", s.topFloor),
	)

	return nil
}

// Stop shuts the service down.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.started = false
	s.logger.Info(context.Background(), "dashboard service stopped")
}

// View renders the leaderboard from the configured workbook, served
// through the table cache.
func (s *Service) View(ctx context.Context, q view.Query) (present.Artifacts, error) {
	s.mu.RLock()
	store, path := s.store, s.scoresPath
	s.mu.RUnlock()

	table, _, err := store.Table(ctx, path)
	if err != nil {
		metrics.RecordRender(SourceDefault, "error")
		metrics.RecordErrorByComponent("service", "load")
		return present.Artifacts{}, err
	}

	return s.render(ctx, table, q, SourceDefault)
}

// ViewFrom renders the leaderboard from an uploaded workbook stream,
// bypassing the cache. size is the upload length when known.
func (s *Service) ViewFrom(ctx context.Context, r io.Reader, size int64, q view.Query) (present.Artifacts, error) {
	if size > 0 {
		metrics.RecordUploadBytes(size)
	}

	raw, err := s.loader.Parse(ctx, r)
	if err != nil {
		metrics.RecordRender(SourceUpload, "error")
		metrics.RecordErrorByComponent("service", "parse")
		return present.Artifacts{}, err
	}

	table, err := scores.Normalize(raw)
	if err != nil {
		metrics.RecordValidationFailure()
		metrics.RecordRender(SourceUpload, "error")
		metrics.RecordErrorByComponent("service", "validation")
		return present.Artifacts{}, err
	}
	metrics.RecordCoercionFailures(table.CoercionFailures)

	return s.render(ctx, table, q, SourceUpload)
}

// Refresh drops the cached table so the next view reloads from disk.
func (s *Service) Refresh(ctx context.Context) {
	s.mu.RLock()
	store := s.store
	s.mu.RUnlock()

	store.Invalidate(ctx)
	s.logger.Info(ctx, "score cache invalidated")
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats(ctx context.Context) map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":       s.started,
		"scoresPath":    s.scoresPath,
		"spotlightSize": s.spotlightSize,
		"topFloor":      s.topFloor,
	}

	if s.started {
		cs := s.store.Stats(ctx)
		stats["cacheHits"] = cs.Hits
		stats["cacheMisses"] = cs.Misses
		stats["cacheInvalidations"] = cs.Invalidations
		stats["cachedRows"] = cs.CachedRows
		if !cs.LastLoad.IsZero() {
			stats["lastLoad"] = cs.LastLoad.UTC().Format(time.RFC3339)
		}
	}

	return stats
}

// render runs the view pipeline over a normalized table and shapes the
// display artifacts.
func (s *Service) render(ctx context.Context, table scores.Table, q view.Query, src string) (present.Artifacts, error) {
	start := time.Now()

	metric := scores.MetricReputation
	if key := strings.TrimSpace(q.SortKey); key != "" {
		var err error
		if metric, err = view.ParseSortKey(key); err != nil {
			metrics.RecordRender(src, "error")
			metrics.RecordErrorByComponent("service", "sort_key")
			return present.Artifacts{}, err
		}
	}

	rowCount := table.Len()
	topN := q.TopN
	if topN == 0 {
		topN = rowCount
	}
	topN = view.ApplyFloor(topN, rowCount, s.topFloor)

	v, err := view.Build(table, view.Controls{SortKey: metric, Ascending: q.Ascending, TopN: topN})
	if err != nil {
		metrics.RecordRender(src, "error")
		metrics.RecordErrorByComponent("service", "view")
		return present.Artifacts{}, err
	}

	state := present.State{
		SortKey:   metric.Column(),
		SortKeys:  view.SortKeys(),
		Ascending: q.Ascending,
		TopN:      v.Len(),
		MinTopN:   1,
		MaxTopN:   rowCount,
		RowCount:  rowCount,
		Source:    src,
	}
	artifacts := present.Compose(v, state, s.spotlightSize)

	metrics.RecordRender(src, "ok")
	metrics.RecordRenderDuration(src, float64(time.Since(start).Milliseconds()))
	s.logger.Debug(ctx, "leaderboard rendered",
		logger.String("source", src),
		logger.String("sortKey", state.SortKey),
		logger.Bool("ascending", q.Ascending),
		logger.Int("rows", v.Len()),
		logger.Int("rowCount", rowCount),
	)

	return artifacts, nil
}
