package seed

import (
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/shopfloor/frenzy/internal/domain/scores"
)

// Numeric column positions within the required header, zero-based.
const (
	firstNumericCol = 1
	lastNumericCol  = 4
)

// writeWorkbook writes the teams as one sheet with the required header,
// injecting junk cells at the configured rate. It returns the written
// file size and the number of junk cells.
func writeWorkbook(cfg *Config, runID string, teams []Team) (int64, int, error) {
	wb := excelize.NewFile()
	defer func() { _ = wb.Close() }()

	sheet := wb.GetSheetName(0)
	if cfg.Sheet != "" && cfg.Sheet != sheet {
		if err := wb.SetSheetName(sheet, cfg.Sheet); err != nil {
			return 0, 0, fmt.Errorf("rename sheet: %w", err)
		}
		sheet = cfg.Sheet
	}

	_ = wb.SetDocProps(&excelize.DocProperties{
		Title:       "Factory Frenzy scores",
		Creator:     "gen-scores",
		Description: "generated demo scores, run " + runID,
	})

	for col, name := range scores.RequiredColumns() {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return 0, 0, fmt.Errorf("header cell: %w", err)
		}
		if err := wb.SetCellValue(sheet, cell, name); err != nil {
			return 0, 0, fmt.Errorf("write header: %w", err)
		}
	}

	junk := 0
	for r, team := range teams {
		values := []interface{}{
			team.Name, team.Reputation, team.Orders, team.Accuracy, team.Budget, team.Badges,
		}
		for c, v := range values {
			if c >= firstNumericCol && c <= lastNumericCol && getRandomFloat() < cfg.JunkRate {
				v = junkPool[randomIndex(len(junkPool))]
				junk++
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return 0, 0, fmt.Errorf("data cell: %w", err)
			}
			if err := wb.SetCellValue(sheet, cell, v); err != nil {
				return 0, 0, fmt.Errorf("write row %d: %w", r+1, err)
			}
		}
	}

	if err := wb.SaveAs(cfg.Path); err != nil {
		return 0, 0, fmt.Errorf("save workbook: %w", err)
	}

	info, err := os.Stat(cfg.Path)
	if err != nil {
		return 0, junk, fmt.Errorf("stat workbook: %w", err)
	}
	return info.Size(), junk, nil
}
