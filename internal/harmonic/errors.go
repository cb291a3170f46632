package harmonic

import (
	"errors"
	"fmt"
)

// Domain errors for waveform evaluation.
var (
	// ErrInvalidParameter indicates a run or emitter parameter outside its
	// valid range (non-positive duration, zero divisor, out-of-bounds gain).
	ErrInvalidParameter = errors.New("harmonic: invalid parameter")

	// ErrInvalidSeries indicates an evaluated series containing NaN or Inf.
	ErrInvalidSeries = errors.New("harmonic: invalid series (NaN or Inf detected)")
)

// ParameterError wraps ErrInvalidParameter with the offending parameter.
type ParameterError struct {
	Emitter string
	Param   string
	Value   float64
	Wrapped error
}

func (e *ParameterError) Error() string {
	if e.Emitter != "" {
		return fmt.Sprintf("%s: parameter %s = %g out of range", e.Emitter, e.Param, e.Value)
	}
	return fmt.Sprintf("parameter %s = %g out of range", e.Param, e.Value)
}

func (e *ParameterError) Unwrap() error {
	return e.Wrapped
}
