package main

import (
	"context"
	"flag"
	"os"
	"time"

	service "github.com/shopfloor/frenzy/internal/app"
	"github.com/shopfloor/frenzy/internal/domain/view"
	"github.com/shopfloor/frenzy/pkg/logger"
)

// Default configuration constants.
const (
	defaultFile    = "scores.xlsx"
	defaultTimeout = 30 * time.Second
)

const helpText = `Frenzy Leaderboard Preview

Renders the spotlight, the full table and the score charts for a
workbook straight to the terminal, using the same pipeline as the
dashboard server.

Options:
  -file string   Path of the scores workbook (default "scores.xlsx")
  -sort string   Sort column (default "Reputation")
  -order string  Sort order, asc or desc (default "desc")
  -top int       Rows to keep after sorting (default: all)
  -help          Show this help

Examples:
  preview
  preview -file shopfloor.xlsx -sort Accuracy_% -top 5
  preview -sort Budget_Left -order asc
`

func main() {
	var (
		file    = flag.String("file", defaultFile, "Path of the scores workbook")
		sortKey = flag.String("sort", "", "Sort column (default: Reputation)")
		order   = flag.String("order", "desc", "Sort order: asc or desc")
		top     = flag.Int("top", 0, "Rows to keep after sorting (default: all)")
		help    = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		os.Stdout.WriteString(helpText)
		return
	}

	ascending := false
	switch *order {
	case "asc":
		ascending = true
	case "", "desc":
	default:
		os.Stderr.WriteString("Unknown order \"" + *order + "\": use asc or desc\n")
		return
	}

	// Log to stderr so the rendered board owns stdout.
	if err := logger.Init(logger.WithWriter(os.Stderr)); err != nil {
		os.Stderr.WriteString("Failed to initialize logging: " + err.Error() + "\n")
		return
	}

	// Create context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	svc := service.New(service.WithScoresPath(*file))
	if err := svc.Start(ctx); err != nil {
		os.Stderr.WriteString("Failed to start service: " + err.Error() + "\n")
		return
	}
	defer svc.Stop()

	artifacts, err := svc.View(ctx, view.Query{SortKey: *sortKey, Ascending: ascending, TopN: *top})
	if err != nil {
		os.Stderr.WriteString("Render failed: " + err.Error() + "\n")
		return
	}

	os.Stdout.WriteString(renderArtifacts(artifacts))
}
