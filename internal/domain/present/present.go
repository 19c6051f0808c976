// Package present shapes a view table into the dashboard display artifacts:
// spotlight cards, the full leaderboard table, and the two chart series.
package present

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/shopfloor/frenzy/internal/domain/scores"
)

// Placeholder shown for missing numeric cells. A dash avoids implying a
// real score of zero.
const Placeholder = "-"

// Dashboard copy.
const (
	Title    = "Factory Frenzy Leaderboard"
	Subtitle = "Real-time bragging rights for the most efficient (and least chaotic) factory teams."

	singleTeamNotice = "Only one team found — showing that team."
)

// Fixed decorations for the spotlight positions. The decoration follows
// the card position, not the row's rank value.
var (
	ordinals = []string{"1st", "2nd", "3rd"}
	crowns   = []string{"🥇", "🥈", "🥉"}
	accents  = []string{"🔥", "⚡", "💥"}
)

// Printer for currency formatting with thousands grouping.
var rupees = message.NewPrinter(language.English)

// Card is one spotlight entry. Numeric fields are display-formatted; a
// missing value renders as the placeholder.
type Card struct {
	Position   int    `json:"position"`
	Ordinal    string `json:"ordinal"`
	Crown      string `json:"crown"`
	Accent     string `json:"accent"`
	Rank       int    `json:"rank"`
	Team       string `json:"team"`
	Reputation string `json:"reputation"`
	Orders     string `json:"orders"`
	Accuracy   string `json:"accuracy"`
	Budget     string `json:"budget"`
	Badges     string `json:"badges"`
}

// Column describes one leaderboard table column.
type Column struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Numeric bool   `json:"numeric"`
}

// TableRow is one display-formatted row of the full leaderboard, keyed by
// its display rank.
type TableRow struct {
	Rank       int    `json:"rank"`
	Team       string `json:"team"`
	Reputation string `json:"reputation"`
	Orders     string `json:"orders"`
	Accuracy   string `json:"accuracy"`
	Budget     string `json:"budget"`
	Badges     string `json:"badges"`
}

// Chart is a category-to-value series in view order. Missing values are
// nil so they serialize as JSON null and charting skips the bar.
type Chart struct {
	Title  string     `json:"title"`
	Label  string     `json:"label"`
	Labels []string   `json:"labels"`
	Values []*float64 `json:"values"`
}

// State echoes the controls and bounds that produced the artifacts, so
// the UI can render its form in the right position.
type State struct {
	SortKey   string   `json:"sort_key"`
	SortKeys  []string `json:"sort_keys"`
	Ascending bool     `json:"ascending"`
	TopN      int      `json:"top_n"`
	MinTopN   int      `json:"min_top_n"`
	MaxTopN   int      `json:"max_top_n"`
	RowCount  int      `json:"row_count"`
	Source    string   `json:"source"`
}

// Artifacts is the complete set of display artifacts for one render pass.
type Artifacts struct {
	Title      string     `json:"title"`
	Subtitle   string     `json:"subtitle"`
	Notice     string     `json:"notice,omitempty"`
	Spotlight  []Card     `json:"spotlight"`
	Columns    []Column   `json:"columns"`
	Rows       []TableRow `json:"rows"`
	Reputation Chart      `json:"reputation_chart"`
	Accuracy   Chart      `json:"accuracy_chart"`
	State      State      `json:"state"`
}

// Compose builds the display artifacts from a view table. The table is
// expected to be sorted, truncated and re-ranked already; rows appear in
// the order given. spotlight caps the number of cards and never exceeds
// the available decorations; fewer rows produce fewer cards, never
// padding.
func Compose(t scores.Table, st State, spotlight int) Artifacts {
	if spotlight > len(ordinals) {
		spotlight = len(ordinals)
	}
	if spotlight < 1 {
		spotlight = 1
	}
	if spotlight > t.Len() {
		spotlight = t.Len()
	}

	a := Artifacts{
		Title:    Title,
		Subtitle: Subtitle,
		Columns:  Columns(),
		State:    st,
	}
	if st.RowCount == 1 {
		a.Notice = singleTeamNotice
	}

	a.Spotlight = make([]Card, 0, spotlight)
	for i := 0; i < spotlight; i++ {
		row := t.Rows[i]
		a.Spotlight = append(a.Spotlight, Card{
			Position:   i + 1,
			Ordinal:    ordinals[i],
			Crown:      crowns[i],
			Accent:     accents[i],
			Rank:       row.Rank,
			Team:       row.Team,
			Reputation: FormatNumber(row.Reputation),
			Orders:     FormatNumber(row.Orders),
			Accuracy:   FormatAccuracy(row.Accuracy),
			Budget:     FormatBudget(row.Budget),
			Badges:     row.Badges,
		})
	}

	a.Rows = make([]TableRow, 0, t.Len())
	a.Reputation = Chart{Title: "Reputation distribution", Label: scores.ColReputation}
	a.Accuracy = Chart{Title: "Accuracy distribution", Label: scores.ColAccuracy}
	for _, row := range t.Rows {
		a.Rows = append(a.Rows, TableRow{
			Rank:       row.Rank,
			Team:       row.Team,
			Reputation: FormatNumber(row.Reputation),
			Orders:     FormatNumber(row.Orders),
			Accuracy:   FormatAccuracy(row.Accuracy),
			Budget:     FormatBudget(row.Budget),
			Badges:     row.Badges,
		})
		a.Reputation.Labels = append(a.Reputation.Labels, row.Team)
		a.Reputation.Values = append(a.Reputation.Values, chartValue(row.Reputation))
		a.Accuracy.Labels = append(a.Accuracy.Labels, row.Team)
		a.Accuracy.Values = append(a.Accuracy.Values, chartValue(row.Accuracy))
	}

	return a
}

// Columns returns the fixed display columns of the leaderboard table.
func Columns() []Column {
	return []Column{
		{Key: "rank", Label: "Rank", Numeric: true},
		{Key: "team", Label: scores.ColTeam},
		{Key: "reputation", Label: scores.ColReputation, Numeric: true},
		{Key: "orders", Label: scores.ColOrders, Numeric: true},
		{Key: "accuracy", Label: scores.ColAccuracy, Numeric: true},
		{Key: "budget", Label: scores.ColBudget, Numeric: true},
		{Key: "badges", Label: scores.ColBadges},
	}
}

// FormatNumber renders a numeric cell, trimming trailing zeros.
func FormatNumber(v float64) string {
	if scores.IsMissing(v) {
		return Placeholder
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatAccuracy renders an accuracy cell with a percent suffix.
func FormatAccuracy(v float64) string {
	if scores.IsMissing(v) {
		return Placeholder
	}
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}

// FormatBudget renders a budget cell as rupees with thousands grouping.
func FormatBudget(v float64) string {
	if scores.IsMissing(v) {
		return Placeholder
	}
	return rupees.Sprintf("₹%.0f", v)
}

func chartValue(v float64) *float64 {
	if scores.IsMissing(v) {
		return nil
	}
	val := v
	return &val
}
