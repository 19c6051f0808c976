package main

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/smartystreets/goconvey/convey"

	"github.com/shopfloor/frenzy/internal/domain/present"
	"github.com/shopfloor/frenzy/internal/domain/scores"
	"github.com/shopfloor/frenzy/internal/domain/view"
)

func previewArtifacts(t *testing.T) present.Artifacts {
	t.Helper()

	raw := scores.RawTable{
		Header: scores.RequiredColumns(),
		Rows: [][]string{
			{"Bobbin Bandits", "91", "120", "97.5", "55000", "🚀 ⚙️"},
			{"Crankshaft Crew", "84", "98", "92", "61250", "🔧"},
			{"Dyno Dynamos", "", "110", "88", "48000", ""},
		},
	}
	table, err := scores.Normalize(raw)
	if err != nil {
		t.Fatalf("normalize fixture: %v", err)
	}

	v, err := view.Build(table, view.Controls{SortKey: scores.MetricReputation, TopN: table.Len()})
	if err != nil {
		t.Fatalf("build fixture view: %v", err)
	}

	state := present.State{
		SortKey:   scores.ColReputation,
		SortKeys:  view.SortKeys(),
		Ascending: false,
		TopN:      v.Len(),
		MinTopN:   1,
		MaxTopN:   table.Len(),
		RowCount:  table.Len(),
		Source:    "default",
	}
	return present.Compose(v, state, 3)
}

func TestRenderArtifacts(t *testing.T) {
	convey.Convey("Given composed dashboard artifacts", t, func() {
		artifacts := previewArtifacts(t)

		convey.Convey("When rendering the board", func() {
			out := renderArtifacts(artifacts)

			convey.Convey("Then the header should carry the dashboard copy", func() {
				convey.So(out, convey.ShouldContainSubstring, "🏭 Factory Frenzy Leaderboard")
				convey.So(out, convey.ShouldContainSubstring, artifacts.Subtitle)
			})

			convey.Convey("Then every team should appear", func() {
				convey.So(out, convey.ShouldContainSubstring, "Bobbin Bandits")
				convey.So(out, convey.ShouldContainSubstring, "Crankshaft Crew")
				convey.So(out, convey.ShouldContainSubstring, "Dyno Dynamos")
			})

			convey.Convey("Then the spotlight should be decorated in order", func() {
				convey.So(out, convey.ShouldContainSubstring, "🥇 1st 🔥")
				convey.So(out, convey.ShouldContainSubstring, "🥈 2nd ⚡")
				convey.So(out, convey.ShouldContainSubstring, "🥉 3rd 💥")
				convey.So(out, convey.ShouldContainSubstring, "╭")
			})

			convey.Convey("Then values should use the display formatting", func() {
				convey.So(out, convey.ShouldContainSubstring, "₹55,000")
				convey.So(out, convey.ShouldContainSubstring, "97.5%")
			})

			convey.Convey("Then both chart series should render with bars", func() {
				convey.So(out, convey.ShouldContainSubstring, "Reputation distribution")
				convey.So(out, convey.ShouldContainSubstring, "Accuracy distribution")
				convey.So(out, convey.ShouldContainSubstring, "█")
			})

			convey.Convey("Then the state footer should describe the view", func() {
				convey.So(out, convey.ShouldContainSubstring, "3 of 3 teams shown, sorted by Reputation (descending), source default")
			})
		})
	})
}

func TestRenderSpotlightEmpty(t *testing.T) {
	convey.Convey("Given no spotlight cards", t, func() {
		convey.Convey("When rendering the spotlight", func() {
			convey.So(renderSpotlight(nil), convey.ShouldEqual, "")
		})
	})
}

func TestRenderTable(t *testing.T) {
	convey.Convey("Given a single display row", t, func() {
		rows := []present.TableRow{{
			Rank:       1,
			Team:       "Bobbin Bandits",
			Reputation: "91",
			Orders:     "120",
			Accuracy:   "97.5%",
			Budget:     "₹55,000",
			Badges:     "🚀 ⚙️",
		}}

		convey.Convey("When rendering the table", func() {
			out := renderTable(present.Columns(), rows)
			lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

			convey.Convey("Then the header should list every column label", func() {
				convey.So(lines[0], convey.ShouldContainSubstring, "Rank")
				convey.So(lines[0], convey.ShouldContainSubstring, "Team")
				convey.So(lines[0], convey.ShouldContainSubstring, "Accuracy_%")
				convey.So(lines[0], convey.ShouldContainSubstring, "Budget_Left")
			})

			convey.Convey("Then the row should carry every cell", func() {
				convey.So(len(lines), convey.ShouldEqual, 2)
				convey.So(lines[1], convey.ShouldContainSubstring, "Bobbin Bandits")
				convey.So(lines[1], convey.ShouldContainSubstring, "₹55,000")
				convey.So(lines[1], convey.ShouldContainSubstring, "🚀 ⚙️")
			})
		})
	})
}

func TestRenderChart(t *testing.T) {
	convey.Convey("Given a series with a gap", t, func() {
		full, half := 100.0, 50.0
		chart := present.Chart{
			Title:  "Test distribution",
			Label:  "Score",
			Labels: []string{"Alpha", "Beta", "Gamma"},
			Values: []*float64{&full, &half, nil},
		}

		convey.Convey("When rendering the chart", func() {
			out := renderChart(chart)

			convey.Convey("Then bars should scale against the maximum", func() {
				convey.So(strings.Count(out, "█"), convey.ShouldEqual, chartBarWidth+chartBarWidth/2)
			})

			convey.Convey("Then the missing value should show the placeholder", func() {
				convey.So(out, convey.ShouldContainSubstring, "Gamma")
				convey.So(out, convey.ShouldContainSubstring, present.Placeholder)
			})

			convey.Convey("Then labels should be padded to a shared width", func() {
				lines := strings.Split(out, "\n")
				convey.So(lines[1], convey.ShouldStartWith, "Alpha  ")
				convey.So(lines[2], convey.ShouldStartWith, "Beta   ")
			})
		})
	})
}

func TestBarLength(t *testing.T) {
	convey.Convey("Given the bar scaler", t, func() {
		convey.Convey("When scaling against a positive maximum", func() {
			convey.So(barLength(100, 100), convey.ShouldEqual, chartBarWidth)
			convey.So(barLength(50, 100), convey.ShouldEqual, chartBarWidth/2)
			convey.So(barLength(0.1, 100), convey.ShouldEqual, 1)
		})

		convey.Convey("When the value or maximum is not positive", func() {
			convey.So(barLength(0, 100), convey.ShouldEqual, 0)
			convey.So(barLength(-5, 100), convey.ShouldEqual, 0)
			convey.So(barLength(10, 0), convey.ShouldEqual, 0)
		})
	})
}

func TestPadHelpers(t *testing.T) {
	convey.Convey("Given the width-aware padding helpers", t, func() {
		convey.Convey("When padding plain text", func() {
			convey.So(padRight("hello", 10), convey.ShouldEqual, "hello     ")
			convey.So(padLeft("42", 5), convey.ShouldEqual, "   42")
		})

		convey.Convey("When padding emoji", func() {
			padded := padRight("🔥", 4)
			convey.So(lipgloss.Width(padded), convey.ShouldEqual, 4)
		})

		convey.Convey("When the input is already wide enough", func() {
			convey.So(padRight("very long", 4), convey.ShouldEqual, "very long")
			convey.So(padLeft("very long", 4), convey.ShouldEqual, "very long")
		})
	})
}

func TestStateLine(t *testing.T) {
	convey.Convey("Given an ascending view state", t, func() {
		st := present.State{
			SortKey:   scores.ColBudget,
			Ascending: true,
			TopN:      5,
			RowCount:  12,
			Source:    "upload",
		}

		convey.Convey("When formatting the footer", func() {
			line := stateLine(st)
			convey.So(line, convey.ShouldEqual, "5 of 12 teams shown, sorted by Budget_Left (ascending), source upload")
		})
	})
}

func TestRenderSingleTeamNotice(t *testing.T) {
	convey.Convey("Given artifacts for a single team", t, func() {
		raw := scores.RawTable{
			Header: scores.RequiredColumns(),
			Rows:   [][]string{{"Solo Solder", "70", "40", "90", "10000", ""}},
		}
		table, err := scores.Normalize(raw)
		convey.So(err, convey.ShouldBeNil)

		state := present.State{
			SortKey:  scores.ColReputation,
			SortKeys: view.SortKeys(),
			TopN:     1,
			MinTopN:  1,
			MaxTopN:  1,
			RowCount: 1,
			Source:   "default",
		}
		artifacts := present.Compose(table, state, 3)

		convey.Convey("When rendering the board", func() {
			out := renderArtifacts(artifacts)

			convey.Convey("Then the notice should appear above the spotlight", func() {
				convey.So(out, convey.ShouldContainSubstring, "Only one team found")
			})
		})
	})
}
