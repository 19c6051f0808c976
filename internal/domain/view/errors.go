package view

import (
	"errors"
)

// Sentinel errors for view building.
var (
	// ErrEmptyTable is returned when a view is requested over zero rows.
	ErrEmptyTable = errors.New("no teams found in the data")
	// ErrUnknownSortKey is returned for sort keys outside the four numeric columns.
	ErrUnknownSortKey = errors.New("unknown sort key")
)
