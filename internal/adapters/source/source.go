// Package source reads team score workbooks into raw tables.
package source

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/shopfloor/frenzy/internal/domain/scores"
	"github.com/shopfloor/frenzy/pkg/metrics"
)

// Loader reads a score workbook from disk or from an uploaded stream.
type Loader interface {
	// Load reads the workbook at path. A missing or unreadable file
	// yields ErrDataUnavailable; a file that is not a readable workbook
	// yields ErrMalformedWorkbook.
	Load(ctx context.Context, path string) (scores.RawTable, error)

	// Parse reads a workbook from r, typically an upload body.
	Parse(ctx context.Context, r io.Reader) (scores.RawTable, error)
}

// XLSX reads .xlsx workbooks. The first row of the selected sheet is the
// header; everything below it is data. Cells come back as the sheet's
// display strings, so coercion stays a normalization concern.
type XLSX struct {
	sheetIndex int
}

// New creates an XLSX loader reading the first sheet unless configured
// otherwise.
func New(opts ...Option) *XLSX {
	x := &XLSX{}
	for _, opt := range opts {
		opt(x)
	}
	return x
}

// Load implements Loader.
func (x *XLSX) Load(ctx context.Context, path string) (scores.RawTable, error) {
	start := time.Now()
	defer func() {
		metrics.RecordWorkbookLoadDuration(float64(time.Since(start).Milliseconds()))
	}()

	f, err := os.Open(path)
	if err != nil {
		return scores.RawTable{}, fmt.Errorf("%w: %w", ErrDataUnavailable, err)
	}
	defer func() { _ = f.Close() }()

	return x.Parse(ctx, f)
}

// Parse implements Loader.
func (x *XLSX) Parse(ctx context.Context, r io.Reader) (scores.RawTable, error) {
	if err := ctx.Err(); err != nil {
		return scores.RawTable{}, err
	}

	wb, err := excelize.OpenReader(r)
	if err != nil {
		return scores.RawTable{}, fmt.Errorf("%w: %w", ErrMalformedWorkbook, err)
	}
	defer func() { _ = wb.Close() }()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return scores.RawTable{}, fmt.Errorf("%w: workbook has no sheets", ErrMalformedWorkbook)
	}
	if x.sheetIndex >= len(sheets) {
		return scores.RawTable{}, fmt.Errorf("%w: sheet index %d out of range", ErrMalformedWorkbook, x.sheetIndex)
	}

	rows, err := wb.GetRows(sheets[x.sheetIndex])
	if err != nil {
		return scores.RawTable{}, fmt.Errorf("%w: %w", ErrMalformedWorkbook, err)
	}
	if len(rows) == 0 {
		return scores.RawTable{}, nil
	}

	// GetRows trims trailing empty cells per row; pad back out so every
	// row carries one cell per header column.
	header := rows[0]
	data := rows[1:]
	for i, row := range data {
		if len(row) < len(header) {
			padded := make([]string, len(header))
			copy(padded, row)
			data[i] = padded
		}
	}

	return scores.RawTable{Header: header, Rows: data}, nil
}
