package source

import "errors"

var (
	// ErrDataUnavailable indicates the workbook could not be opened at all.
	ErrDataUnavailable = errors.New("score data unavailable")
	// ErrMalformedWorkbook indicates the bytes are not a readable workbook.
	ErrMalformedWorkbook = errors.New("malformed workbook")
)
