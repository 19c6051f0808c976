package repository

import "github.com/shopfloor/frenzy/internal/adapters/source"

// Option applies a configuration option to the Memo.
type Option func(*Memo)

// WithLoader sets the workbook loader used on cache misses.
func WithLoader(l source.Loader) Option {
	return func(m *Memo) {
		if l != nil {
			m.loader = l
		}
	}
}
