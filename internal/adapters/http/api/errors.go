package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/shopfloor/frenzy/internal/adapters/source"
	"github.com/shopfloor/frenzy/internal/domain/scores"
	"github.com/shopfloor/frenzy/internal/domain/view"
)

// Sentinel kinds for API errors.
var (
	ErrServe      = errors.New("http serve failed")
	ErrBadRequest = errors.New("bad request")
)

// Error annotates a failure with the API operation it came from and an
// optional kind sentinel. Both the kind and the cause stay reachable
// through errors.Is and errors.As.
type Error struct {
	Op   string
	Kind error
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Kind != nil && e.Err != nil:
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Err)
	case e.Kind != nil:
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	case e.Err != nil:
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	default:
		return e.Op
	}
}

func (e *Error) Unwrap() []error {
	var errs []error
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// Wrap annotates err with the operation name.
func Wrap(op string, err error) error {
	return &Error{Op: op, Err: err}
}

// NewKind creates an error of the given kind with no further cause.
func NewKind(op string, kind error) error {
	return &Error{Op: op, Kind: kind}
}

// WrapKind annotates err with both the operation and a kind sentinel.
func WrapKind(op string, kind, err error) error {
	return &Error{Op: op, Kind: kind, Err: err}
}

// classify maps pipeline errors onto an HTTP status and a stable error
// code. Anything unrecognized is an internal error.
func classify(err error) (int, string) {
	var verr *scores.ValidationError
	switch {
	case errors.Is(err, source.ErrDataUnavailable):
		return http.StatusServiceUnavailable, "data_unavailable"
	case errors.Is(err, source.ErrMalformedWorkbook):
		return http.StatusBadRequest, "malformed_workbook"
	case errors.As(err, &verr):
		return http.StatusUnprocessableEntity, "validation_failed"
	case errors.Is(err, view.ErrEmptyTable):
		return http.StatusUnprocessableEntity, "empty_table"
	case errors.Is(err, view.ErrUnknownSortKey):
		return http.StatusBadRequest, "unknown_sort_key"
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest, "bad_request"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}
