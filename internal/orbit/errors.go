package orbit

import (
	"errors"
	"fmt"
)

// Domain errors for parameter handling. The iteration itself never fails.
var (
	// ErrParameterBounds indicates a parameter value is outside valid range.
	ErrParameterBounds = errors.New("orbit: parameter out of valid bounds")

	// ErrNoRecords indicates an analysis was requested on an empty orbit.
	ErrNoRecords = errors.New("orbit: no records")
)

// ParamError wraps an error with the offending parameter.
type ParamError struct {
	Name    string
	Value   float64
	Wrapped error
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s=%v: %s", e.Name, e.Value, e.Wrapped.Error())
}

func (e *ParamError) Unwrap() error {
	return e.Wrapped
}
