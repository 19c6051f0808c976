package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/shopfloor/frenzy/internal/domain/present"
)

// Layout constants.
const (
	cardWidth      = 24
	cardLabelWidth = 11
	chartBarWidth  = 30
	columnGap      = 2
)

// Border colors per spotlight position.
var cardBorders = []lipgloss.Color{
	lipgloss.Color("220"), // Gold
	lipgloss.Color("250"), // Silver
	lipgloss.Color("172"), // Bronze
}

// Chart bar colors, following the web dashboard palette.
var chartColors = map[string]lipgloss.Color{
	"Reputation distribution": lipgloss.Color("208"), // Orange
	"Accuracy distribution":   lipgloss.Color("37"),  // Teal
}

// renderArtifacts renders one full board: header, spotlight cards, the
// leaderboard table, both chart series and the state footer.
func renderArtifacts(a present.Artifacts) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("214")) // Orange

	mutedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("242")) // Dark gray

	noticeStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")) // Gold

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("🏭 " + a.Title))
	sb.WriteString("\n")
	sb.WriteString(mutedStyle.Render(a.Subtitle))
	sb.WriteString("\n\n")

	if a.Notice != "" {
		sb.WriteString(noticeStyle.Render(a.Notice))
		sb.WriteString("\n\n")
	}

	sb.WriteString(renderSpotlight(a.Spotlight))
	sb.WriteString("\n\n")
	sb.WriteString(renderTable(a.Columns, a.Rows))
	sb.WriteString("\n")
	sb.WriteString(renderChart(a.Reputation))
	sb.WriteString("\n")
	sb.WriteString(renderChart(a.Accuracy))
	sb.WriteString("\n")
	sb.WriteString(mutedStyle.Render(stateLine(a.State)))
	sb.WriteString("\n")
	return sb.String()
}

// renderSpotlight renders the top cards side by side, gold to bronze.
func renderSpotlight(cards []present.Card) string {
	if len(cards) == 0 {
		return ""
	}

	nameStyle := lipgloss.NewStyle().Bold(true)

	panels := make([]string, 0, len(cards))
	for i, c := range cards {
		var b strings.Builder
		b.WriteString(c.Crown + " " + c.Ordinal + " " + c.Accent)
		b.WriteString("\n")
		b.WriteString(nameStyle.Render(c.Team))
		b.WriteString("\n\n")
		b.WriteString(cardLine("Rank", strconv.Itoa(c.Rank)))
		b.WriteString(cardLine("Reputation", c.Reputation))
		b.WriteString(cardLine("Orders", c.Orders))
		b.WriteString(cardLine("Accuracy", c.Accuracy))
		b.WriteString(cardLine("Budget", c.Budget))
		if c.Badges != "" {
			b.WriteString("\n" + c.Badges)
		}

		border := lipgloss.Color("250") // Silver
		if i < len(cardBorders) {
			border = cardBorders[i]
		}
		panel := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1).
			Width(cardWidth).
			Render(b.String())
		panels = append(panels, panel)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, panels...)
}

func cardLine(label, value string) string {
	return padRight(label, cardLabelWidth) + " " + value + "\n"
}

// renderTable renders the full leaderboard with numeric columns
// right-aligned.
func renderTable(cols []present.Column, rows []present.TableRow) string {
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")) // Bright blue

	widths := make([]int, len(cols))
	for i, col := range cols {
		widths[i] = lipgloss.Width(col.Label)
		for _, row := range rows {
			if w := lipgloss.Width(cellValue(row, col.Key)); w > widths[i] {
				widths[i] = w
			}
		}
	}

	gap := strings.Repeat(" ", columnGap)

	var sb strings.Builder
	header := make([]string, len(cols))
	for i, col := range cols {
		header[i] = pad(col.Label, widths[i], col.Numeric)
	}
	sb.WriteString(headerStyle.Render(strings.Join(header, gap)))
	sb.WriteString("\n")

	for _, row := range rows {
		cells := make([]string, len(cols))
		for i, col := range cols {
			cells[i] = pad(cellValue(row, col.Key), widths[i], col.Numeric)
		}
		sb.WriteString(strings.Join(cells, gap))
		sb.WriteString("\n")
	}
	return sb.String()
}

func cellValue(row present.TableRow, key string) string {
	switch key {
	case "rank":
		return strconv.Itoa(row.Rank)
	case "team":
		return row.Team
	case "reputation":
		return row.Reputation
	case "orders":
		return row.Orders
	case "accuracy":
		return row.Accuracy
	case "budget":
		return row.Budget
	case "badges":
		return row.Badges
	default:
		return ""
	}
}

// renderChart renders one series as horizontal bars scaled to the
// largest value. Missing values keep their row but show the placeholder
// instead of a bar.
func renderChart(c present.Chart) string {
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")) // Bright blue

	mutedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("242")) // Dark gray

	barStyle := lipgloss.NewStyle()
	if color, ok := chartColors[c.Title]; ok {
		barStyle = barStyle.Foreground(color)
	}

	var sb strings.Builder
	sb.WriteString(headerStyle.Render(c.Title))
	sb.WriteString("\n")

	maxVal := 0.0
	labelWidth := 0
	for i, label := range c.Labels {
		if w := lipgloss.Width(label); w > labelWidth {
			labelWidth = w
		}
		if v := c.Values[i]; v != nil && *v > maxVal {
			maxVal = *v
		}
	}

	for i, label := range c.Labels {
		sb.WriteString(padRight(label, labelWidth))
		sb.WriteString("  ")
		v := c.Values[i]
		if v == nil {
			sb.WriteString(mutedStyle.Render(present.Placeholder))
			sb.WriteString("\n")
			continue
		}
		if n := barLength(*v, maxVal); n > 0 {
			sb.WriteString(barStyle.Render(strings.Repeat("█", n)))
			sb.WriteString(" ")
		}
		sb.WriteString(present.FormatNumber(*v))
		sb.WriteString("\n")
	}
	return sb.String()
}

// barLength scales v against the series maximum. Positive values get at
// least one cell so small scores stay visible.
func barLength(v, maxVal float64) int {
	if v <= 0 || maxVal <= 0 {
		return 0
	}
	n := int(math.Round(v / maxVal * chartBarWidth))
	if n < 1 {
		n = 1
	}
	if n > chartBarWidth {
		n = chartBarWidth
	}
	return n
}

func stateLine(st present.State) string {
	direction := "descending"
	if st.Ascending {
		direction = "ascending"
	}
	return fmt.Sprintf("%d of %d teams shown, sorted by %s (%s), source %s",
		st.TopN, st.RowCount, st.SortKey, direction, st.Source)
}

func pad(s string, width int, numeric bool) string {
	if numeric {
		return padLeft(s, width)
	}
	return padRight(s, width)
}

// padRight pads to a visual width, counting emoji and wide runes by
// their terminal cell width.
func padRight(s string, width int) string {
	vw := lipgloss.Width(s)
	if vw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-vw)
}

// padLeft pads to a visual width on the left.
func padLeft(s string, width int) string {
	vw := lipgloss.Width(s)
	if vw >= width {
		return s
	}
	return strings.Repeat(" ", width-vw) + s
}
