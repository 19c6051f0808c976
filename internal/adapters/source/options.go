package source

// Option configures the XLSX loader.
type Option func(*XLSX)

// WithSheetIndex selects which sheet to read. Negative values are
// ignored and the first sheet stays selected.
func WithSheetIndex(i int) Option {
	return func(x *XLSX) {
		if i >= 0 {
			x.sheetIndex = i
		}
	}
}
