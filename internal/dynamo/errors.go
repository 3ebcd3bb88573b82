package dynamo

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidState marks a state with a NaN or Inf component, the usual
	// sign that dt is too large for the field.
	ErrInvalidState = errors.New("dynamo: state is not finite")

	ErrParameterBounds   = errors.New("dynamo: parameter out of bounds")
	ErrDimensionMismatch = errors.New("dynamo: state and system dimensions differ")
)

// SimulationError records where integration went wrong.
type SimulationError struct {
	Step    int
	Time    float64
	State   State
	Wrapped error
}

func (e *SimulationError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f) state %v: %v", e.Step, e.Time, e.State, e.Wrapped)
}

func (e *SimulationError) Unwrap() error { return e.Wrapped }
