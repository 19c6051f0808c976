package source

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/xuri/excelize/v2"
)

// buildWorkbook writes rows into a fresh workbook, one sheet per entry of
// sheets, and returns the raw bytes.
func buildWorkbook(t *testing.T, sheets map[string][][]any) []byte {
	t.Helper()

	f := excelize.NewFile()
	first := f.GetSheetName(0)
	for name, rows := range sheets {
		sheet := name
		if sheet == "" {
			sheet = first
		} else if sheet != first {
			if _, err := f.NewSheet(sheet); err != nil {
				t.Fatalf("new sheet: %v", err)
			}
		}
		for i, row := range rows {
			for j, cell := range row {
				ref, err := excelize.CoordinatesToCellName(j+1, i+1)
				if err != nil {
					t.Fatalf("cell name: %v", err)
				}
				if err := f.SetCellValue(sheet, ref, cell); err != nil {
					t.Fatalf("set cell: %v", err)
				}
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf.Bytes()
}

func writeTempWorkbook(t *testing.T, rows [][]any) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "scores.xlsx")
	data := buildWorkbook(t, map[string][][]any{"": rows})
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}
	return path
}

func scoreRows() [][]any {
	return [][]any{
		{"Team", "Reputation", "Orders", "Accuracy_%", "Budget_Left", "Badges"},
		{"Bobbin Bandits", 91, 120, 97.5, 55000, "🚀"},
		{"Crankshaft Crew", 84, 98, 92, 61250, ""},
	}
}

func TestLoad(t *testing.T) {
	Convey("Given a workbook on disk", t, func() {
		path := writeTempWorkbook(t, scoreRows())
		loader := New()

		Convey("When loading it", func() {
			raw, err := loader.Load(context.Background(), path)

			Convey("Then the header and data rows come back as strings", func() {
				So(err, ShouldBeNil)
				So(raw.Header, ShouldResemble, []string{
					"Team", "Reputation", "Orders", "Accuracy_%", "Budget_Left", "Badges",
				})
				So(raw.Rows, ShouldHaveLength, 2)
				So(raw.Rows[0][0], ShouldEqual, "Bobbin Bandits")
				So(raw.Rows[0][1], ShouldEqual, "91")
				So(raw.Rows[0][3], ShouldEqual, "97.5")
				So(raw.Rows[1][4], ShouldEqual, "61250")
			})
		})
	})

	Convey("Given a path that does not exist", t, func() {
		loader := New()
		_, err := loader.Load(context.Background(), filepath.Join(t.TempDir(), "missing.xlsx"))

		Convey("Then loading reports the data as unavailable", func() {
			So(err, ShouldNotBeNil)
			So(errors.Is(err, ErrDataUnavailable), ShouldBeTrue)
		})
	})

	Convey("Given a file that is not a workbook", t, func() {
		path := filepath.Join(t.TempDir(), "bogus.xlsx")
		So(os.WriteFile(path, []byte("not a spreadsheet"), 0o600), ShouldBeNil)

		loader := New()
		_, err := loader.Load(context.Background(), path)

		Convey("Then loading reports a malformed workbook", func() {
			So(err, ShouldNotBeNil)
			So(errors.Is(err, ErrMalformedWorkbook), ShouldBeTrue)
		})
	})
}

func TestParse(t *testing.T) {
	Convey("Given workbook bytes from an upload", t, func() {
		data := buildWorkbook(t, map[string][][]any{"": scoreRows()})
		loader := New()

		Convey("When parsing the stream", func() {
			raw, err := loader.Parse(context.Background(), bytes.NewReader(data))

			Convey("Then the table matches the on-disk result", func() {
				So(err, ShouldBeNil)
				So(raw.Header[0], ShouldEqual, "Team")
				So(raw.Rows, ShouldHaveLength, 2)
			})
		})

		Convey("When the context is already cancelled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			_, err := loader.Parse(ctx, bytes.NewReader(data))

			Convey("Then the cancellation wins", func() {
				So(errors.Is(err, context.Canceled), ShouldBeTrue)
			})
		})
	})

	Convey("Given a garbage stream", t, func() {
		loader := New()
		_, err := loader.Parse(context.Background(), bytes.NewReader([]byte{0x00, 0x01, 0x02}))

		Convey("Then parsing reports a malformed workbook", func() {
			So(errors.Is(err, ErrMalformedWorkbook), ShouldBeTrue)
		})
	})

	Convey("Given a workbook with an empty first sheet", t, func() {
		data := buildWorkbook(t, map[string][][]any{"": {}})
		loader := New()
		raw, err := loader.Parse(context.Background(), bytes.NewReader(data))

		Convey("Then an empty raw table is returned for validation to reject", func() {
			So(err, ShouldBeNil)
			So(raw.Header, ShouldBeEmpty)
			So(raw.Rows, ShouldBeEmpty)
		})
	})

	Convey("Given rows ending in empty cells", t, func() {
		data := buildWorkbook(t, map[string][][]any{"": {
			{"Team", "Reputation", "Orders", "Accuracy_%", "Budget_Left", "Badges"},
			{"Dyno Dynamos", 77},
		}})
		loader := New()
		raw, err := loader.Parse(context.Background(), bytes.NewReader(data))

		Convey("Then rows are padded to the header width", func() {
			So(err, ShouldBeNil)
			So(raw.Rows, ShouldHaveLength, 1)
			So(raw.Rows[0], ShouldHaveLength, len(raw.Header))
			So(raw.Rows[0][0], ShouldEqual, "Dyno Dynamos")
			So(raw.Rows[0][5], ShouldEqual, "")
		})
	})
}

func TestSheetSelection(t *testing.T) {
	Convey("Given a workbook with a second sheet", t, func() {
		data := buildWorkbook(t, map[string][][]any{
			"": scoreRows(),
			"Archive": {
				{"Team", "Reputation", "Orders", "Accuracy_%", "Budget_Left", "Badges"},
				{"Lathe Lords", 50, 10, 75, 1000, ""},
			},
		})

		Convey("Then the default loader reads the first sheet", func() {
			raw, err := New().Parse(context.Background(), bytes.NewReader(data))
			So(err, ShouldBeNil)
			So(raw.Rows[0][0], ShouldEqual, "Bobbin Bandits")
		})

		Convey("Then a configured loader reads the selected sheet", func() {
			raw, err := New(WithSheetIndex(1)).Parse(context.Background(), bytes.NewReader(data))
			So(err, ShouldBeNil)
			So(raw.Rows, ShouldHaveLength, 1)
			So(raw.Rows[0][0], ShouldEqual, "Lathe Lords")
		})

		Convey("Then an out of range index is a malformed workbook", func() {
			_, err := New(WithSheetIndex(9)).Parse(context.Background(), bytes.NewReader(data))
			So(errors.Is(err, ErrMalformedWorkbook), ShouldBeTrue)
		})

		Convey("Then a negative index falls back to the first sheet", func() {
			raw, err := New(WithSheetIndex(-2)).Parse(context.Background(), bytes.NewReader(data))
			So(err, ShouldBeNil)
			So(raw.Rows[0][0], ShouldEqual, "Bobbin Bandits")
		})
	})
}
