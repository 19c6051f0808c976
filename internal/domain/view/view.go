// Package view applies user-selected sorting and truncation to a score table.
package view

import (
	"fmt"
	"sort"

	"github.com/shopfloor/frenzy/internal/domain/scores"
)

// Controls carries the user-selected view parameters. They are threaded
// explicitly through the pipeline; there is no ambient widget state.
type Controls struct {
	SortKey   scores.Metric
	Ascending bool
	// TopN is the number of rows kept after sorting. Values outside
	// [1, rowCount] are clamped into range by Build.
	TopN int
}

// Query is the wire-level form of Controls, before the sort key is
// resolved. An empty SortKey means the default metric and a TopN of
// zero means every row.
type Query struct {
	SortKey   string
	Ascending bool
	TopN      int
}

// Build returns a sorted, truncated copy of the table with the display
// rank recomputed 1..N over the kept rows. The input table is not
// modified; repeated calls with equal inputs produce equal outputs.
func Build(t scores.Table, c Controls) (scores.Table, error) {
	if !c.SortKey.Valid() {
		return scores.Table{}, fmt.Errorf("%w: metric %d", ErrUnknownSortKey, int(c.SortKey))
	}
	if t.Len() == 0 {
		return scores.Table{}, ErrEmptyTable
	}

	out := t.Clone()
	sort.SliceStable(out.Rows, func(i, j int) bool {
		return scores.Less(out.Rows[i].Metric(c.SortKey), out.Rows[j].Metric(c.SortKey), c.Ascending)
	})

	out.Rows = out.Rows[:Clamp(c.TopN, t.Len())]
	for i := range out.Rows {
		out.Rows[i].Rank = i + 1
	}
	return out, nil
}

// Clamp confines topN to [1, rowCount].
func Clamp(topN, rowCount int) int {
	if topN < 1 {
		return 1
	}
	if topN > rowCount {
		return rowCount
	}
	return topN
}

// ApplyFloor raises topN to min(floor, rowCount). The floor is a
// controls-layer constraint; Build itself only clamps to [1, rowCount].
func ApplyFloor(topN, rowCount, floor int) int {
	if floor > rowCount {
		floor = rowCount
	}
	if topN < floor {
		return floor
	}
	return topN
}

// ParseSortKey resolves a column name to its metric. Only the four
// numeric columns are selectable.
func ParseSortKey(name string) (scores.Metric, error) {
	for _, m := range scores.Metrics() {
		if m.Column() == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSortKey, name)
}

// SortKeys lists the selectable sort columns in display order.
func SortKeys() []string {
	keys := make([]string, 0, len(scores.Metrics()))
	for _, m := range scores.Metrics() {
		keys = append(keys, m.Column())
	}
	return keys
}
