// Package scores defines the team score table and its normalization rules.
package scores

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Required column headers, case-sensitive, in display order.
const (
	ColTeam       = "Team"
	ColReputation = "Reputation"
	ColOrders     = "Orders"
	ColAccuracy   = "Accuracy_%"
	ColBudget     = "Budget_Left"
	ColBadges     = "Badges"
)

// RequiredColumns returns the required headers in display order.
func RequiredColumns() []string {
	return []string{ColTeam, ColReputation, ColOrders, ColAccuracy, ColBudget, ColBadges}
}

// Metric identifies one of the four numeric columns.
type Metric int

// Numeric metrics, in the order they appear in the table.
const (
	MetricReputation Metric = iota
	MetricOrders
	MetricAccuracy
	MetricBudget
)

// Metrics returns all numeric metrics in display order.
func Metrics() []Metric {
	return []Metric{MetricReputation, MetricOrders, MetricAccuracy, MetricBudget}
}

// Column returns the column header the metric reads from.
func (m Metric) Column() string {
	switch m {
	case MetricReputation:
		return ColReputation
	case MetricOrders:
		return ColOrders
	case MetricAccuracy:
		return ColAccuracy
	case MetricBudget:
		return ColBudget
	default:
		return ""
	}
}

// Valid reports whether the metric is one of the four numeric columns.
func (m Metric) Valid() bool {
	return m >= MetricReputation && m <= MetricBudget
}

// RawTable is the sheet content exactly as read: a header row plus data
// rows of untyped cells.
type RawTable struct {
	Header []string
	Rows   [][]string
}

// Row is one team's record. Numeric fields use NaN as the missing-numeric
// sentinel; IsMissing tests for it.
type Row struct {
	Rank       int
	Team       string
	Reputation float64
	Orders     float64
	Accuracy   float64
	Budget     float64
	Badges     string
}

// Metric returns the row's value for the given numeric column.
func (r Row) Metric(m Metric) float64 {
	switch m {
	case MetricReputation:
		return r.Reputation
	case MetricOrders:
		return r.Orders
	case MetricAccuracy:
		return r.Accuracy
	case MetricBudget:
		return r.Budget
	default:
		return math.NaN()
	}
}

// Table is an ordered sequence of rows carrying the rank assigned by the
// most recent sort. CoercionFailures counts non-empty cells that failed
// numeric coercion during normalization.
type Table struct {
	Rows             []Row
	CoercionFailures int
}

// Len returns the number of rows.
func (t Table) Len() int { return len(t.Rows) }

// Clone returns a copy whose row slice is independent of the receiver.
func (t Table) Clone() Table {
	rows := make([]Row, len(t.Rows))
	copy(rows, t.Rows)
	return Table{Rows: rows, CoercionFailures: t.CoercionFailures}
}

// IsMissing reports whether a numeric value is the missing-numeric sentinel.
func IsMissing(v float64) bool { return math.IsNaN(v) }

// Less orders two metric values for leaderboard sorting. Missing values
// sort last regardless of direction.
func Less(a, b float64, ascending bool) bool {
	switch {
	case IsMissing(a):
		return false
	case IsMissing(b):
		return true
	case ascending:
		return a < b
	default:
		return a > b
	}
}

// Normalize validates the raw table and produces a Table ready for view
// building: required columns resolved, numeric cells coerced, rows sorted
// descending by Reputation with the baseline rank assigned.
//
// All required columns must be present or the whole table is rejected
// with a *ValidationError; there is no best-effort mode. Cell-level
// coercion failures are not errors: the cell becomes the missing-numeric
// sentinel and the row stays in the table.
func Normalize(raw RawTable) (Table, error) {
	idx, missing := columnIndex(raw.Header)
	if len(missing) > 0 {
		return Table{}, &ValidationError{Missing: missing, Expected: RequiredColumns()}
	}

	t := Table{Rows: make([]Row, 0, len(raw.Rows))}
	for _, cells := range raw.Rows {
		row := Row{
			Team:   cellAt(cells, idx[ColTeam]),
			Badges: cellAt(cells, idx[ColBadges]),
		}
		row.Reputation = t.coerce(cellAt(cells, idx[ColReputation]))
		row.Orders = t.coerce(cellAt(cells, idx[ColOrders]))
		row.Accuracy = t.coerce(cellAt(cells, idx[ColAccuracy]))
		row.Budget = t.coerce(cellAt(cells, idx[ColBudget]))
		t.Rows = append(t.Rows, row)
	}

	// Baseline order: descending Reputation, missing last, ties keep the
	// original row order.
	sort.SliceStable(t.Rows, func(i, j int) bool {
		return Less(t.Rows[i].Reputation, t.Rows[j].Reputation, false)
	})
	for i := range t.Rows {
		t.Rows[i].Rank = i + 1
	}
	return t, nil
}

// columnIndex resolves each required column to its position in the header.
// The first occurrence wins; extra columns are ignored.
func columnIndex(header []string) (map[string]int, []string) {
	idx := make(map[string]int, len(RequiredColumns()))
	for i, name := range header {
		if _, dup := idx[name]; dup {
			continue
		}
		idx[name] = i
	}

	var missing []string
	for _, name := range RequiredColumns() {
		if _, ok := idx[name]; !ok {
			missing = append(missing, name)
		}
	}
	return idx, missing
}

// cellAt returns the cell at position i, tolerating short rows.
func cellAt(cells []string, i int) string {
	if i < 0 || i >= len(cells) {
		return ""
	}
	return cells[i]
}

// coerce parses a numeric cell, recording a failure when a non-empty cell
// does not parse. An empty cell is simply missing, not a failure.
func (t *Table) coerce(cell string) float64 {
	s := strings.TrimSpace(cell)
	if s == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		t.CoercionFailures++
		return math.NaN()
	}
	return v
}
