package clean

import "errors"

var (
	// ErrDivideByZero is returned when a unit conversion meets a zero value.
	ErrDivideByZero = errors.New("division by zero")

	// ErrNoValues is returned when a column has nothing to average or bin.
	ErrNoValues = errors.New("no values")

	// ErrNonPositiveMax is returned when a column cannot be scaled by its
	// maximum.
	ErrNonPositiveMax = errors.New("maximum is not positive")
)

// StepError records which pipeline step failed.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return "step " + e.Step + ": " + e.Err.Error()
}

func (e *StepError) Unwrap() error { return e.Err }
