package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/shopfloor/frenzy/internal/seed"
	"github.com/shopfloor/frenzy/pkg/logger"
)

// Default configuration constants.
const (
	defaultTeams    = 12
	defaultJunkRate = 0.05
	defaultTimeout  = time.Minute
)

func main() {
	var (
		out   = flag.String("out", "scores.xlsx", "Output path for the generated workbook")
		teams = flag.Int("teams", defaultTeams, "Number of teams to generate")
		junk  = flag.Float64("junk", defaultJunkRate, "Fraction of numeric cells to fill with junk (0..1)")
		sheet = flag.String("sheet", "", "Sheet name (default: keep the workbook default)")
		help  = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		seed.ShowHelp()
		return
	}

	// Setup logging
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("Failed to initialize logging: " + err.Error() + "\n")
		return
	}
	defer func() {
		if err := logger.Sync(); err != nil {
			os.Stderr.WriteString("Failed to sync logger: " + err.Error() + "\n")
		}
	}()

	// Create context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	// Create generation configuration
	config := &seed.Config{
		Path:     *out,
		Teams:    *teams,
		JunkRate: *junk,
		Sheet:    *sheet,
	}

	if _, err := seed.Generate(ctx, config); err != nil {
		os.Stderr.WriteString("Generation failed: " + err.Error() + "\n")
		return
	}
}
