package frame

import (
	"errors"
	"fmt"
)

// ErrColumnNotFound is returned when a named column is absent from a table.
var ErrColumnNotFound = errors.New("column not found")

var errMissingValue = errors.New("missing value")

// ColumnError ties a failure to the column it happened in.
type ColumnError struct {
	Column string
	Err    error
}

func (e *ColumnError) Error() string {
	if errors.Is(e.Err, ErrColumnNotFound) {
		return fmt.Sprintf("column not found: %q", e.Column)
	}
	return fmt.Sprintf("column %q: %v", e.Column, e.Err)
}

func (e *ColumnError) Unwrap() error { return e.Err }

// CoercionError reports a cell that could not be cast to the requested kind.
type CoercionError struct {
	Column string
	Row    int // positional row, 0-based
	Value  string
	Kind   Kind
	Err    error
}

func (e *CoercionError) Error() string {
	if errors.Is(e.Err, errMissingValue) {
		return fmt.Sprintf("cannot coerce column %q to %s: missing value at row %d", e.Column, e.Kind, e.Row)
	}
	return fmt.Sprintf("cannot coerce column %q to %s: invalid number %q at row %d", e.Column, e.Kind, e.Value, e.Row)
}

func (e *CoercionError) Unwrap() error { return e.Err }

// IsMissingValue reports whether err was caused by reading a missing cell.
func IsMissingValue(err error) bool {
	return errors.Is(err, errMissingValue)
}
