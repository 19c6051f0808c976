// Package seed generates demo score workbooks for the dashboard.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/shopfloor/frenzy/pkg/logger"
)

// Default generation settings.
const (
	defaultTeams = 12
	defaultPath  = "scores.xlsx"
)

// Config holds settings for one generation run.
type Config struct {
	Path     string  // Output workbook path
	Teams    int     // Number of team rows
	JunkRate float64 // Probability that a numeric cell becomes junk text
	Sheet    string  // Sheet name; the workbook default when empty
}

// Team is one generated scorecard row.
type Team struct {
	Name       string
	Reputation float64
	Orders     float64
	Accuracy   float64
	Budget     float64
	Badges     string
}

// Stats holds the outcome of one generation run.
type Stats struct {
	RunID     string
	Teams     int
	JunkCells int
	Bytes     int64
	Duration  time.Duration
}

// Generate builds a workbook of random team scores and writes it to
// cfg.Path. Junk cells are injected at the configured rate so the
// dashboard's placeholder handling has something to chew on.
func Generate(ctx context.Context, cfg *Config) (*Stats, error) {
	start := time.Now()
	if cfg == nil {
		cfg = &Config{}
	}
	applyDefaults(cfg)

	stats := &Stats{RunID: uuid.NewString()}
	log := logger.Get()
	log.Info(ctx, "generating scores workbook",
		logger.String("run_id", stats.RunID),
		logger.Int("teams", cfg.Teams),
		logger.String("path", cfg.Path))

	teams := make([]Team, cfg.Teams)
	for i := range teams {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("generation cancelled: %w", ctx.Err())
		default:
		}
		teams[i] = generateTeam(i)
	}
	stats.Teams = len(teams)

	size, junk, err := writeWorkbook(cfg, stats.RunID, teams)
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	stats.Bytes = size
	stats.JunkCells = junk
	stats.Duration = time.Since(start)

	log.Info(ctx, "scores workbook written",
		logger.String("run_id", stats.RunID),
		logger.Int("teams", stats.Teams),
		logger.Int("junk_cells", stats.JunkCells),
		logger.Int64("bytes", stats.Bytes))
	return stats, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Teams <= 0 {
		cfg.Teams = defaultTeams
	}
	if cfg.Path == "" {
		cfg.Path = defaultPath
	}
	if cfg.JunkRate < 0 {
		cfg.JunkRate = 0
	}
	if cfg.JunkRate > 1 {
		cfg.JunkRate = 1
	}
}
