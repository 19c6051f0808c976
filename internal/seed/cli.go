package seed

import (
	"os"
)

// ShowHelp prints usage information for the scores generator.
func ShowHelp() {
	os.Stdout.WriteString(`Frenzy Scores Generator
=======================

Generates a demo scores.xlsx workbook for the Factory Frenzy dashboard.

Usage:
  go run cmd/gen-scores/main.go [options]

Options:
  -out string
        Output workbook path (default "scores.xlsx")
  -teams int
        Number of team rows to generate (default 12)
  -junk float
        Probability that a numeric cell is junk text (default 0.05)
  -sheet string
        Sheet name (workbook default when empty)
  -help
        Show this help message

Examples:
  # Generate the default demo workbook
  go run cmd/gen-scores/main.go

  # A big clean league
  go run cmd/gen-scores/main.go -teams 40 -junk 0

  # Stress the placeholder handling
  go run cmd/gen-scores/main.go -teams 8 -junk 0.4 -out messy.xlsx
`)
}
