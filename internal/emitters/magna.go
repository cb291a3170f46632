package emitters

import (
	"fmt"

	"github.com/san-kum/oscillab/internal/harmonic"
)

// MagnaPulse defaults.
const (
	MagnaFrequencyHz   = 60
	MagnaFieldStrength = 1.0
)

// MagnaPulse is the electromagnetic emitter: a pure mains-frequency
// sinusoid with no decay, intentionally simpler than the oscillator's
// decaying form.
type MagnaPulse struct {
	Osc           harmonic.Oscillator
	FieldStrength float64
}

func NewMagnaPulse() *MagnaPulse {
	return &MagnaPulse{
		Osc:           harmonic.NewOscillator(MagnaFrequencyHz),
		FieldStrength: MagnaFieldStrength,
	}
}

func (m *MagnaPulse) Label() string { return "Magna-Pulse" }

func (m *MagnaPulse) Validate() error {
	if m.FieldStrength < 0 {
		return &harmonic.ParameterError{
			Emitter: m.Label(), Param: "field_strength", Value: m.FieldStrength,
			Wrapped: harmonic.ErrInvalidParameter,
		}
	}
	return nil
}

// EMFlux returns fieldStrength * sin(2*pi*f*t).
func (m *MagnaPulse) EMFlux(t float64) float64 {
	return m.FieldStrength * harmonic.SinPhase(m.Osc.Params.BaseFrequencyHz, t)
}

func (m *MagnaPulse) Evaluate(grid harmonic.TimeGrid) harmonic.Series {
	out := make(harmonic.Series, len(grid))
	for i, t := range grid {
		out[i] = m.EMFlux(t)
	}
	return out
}

func (m *MagnaPulse) GetParams() map[string]float64 {
	return map[string]float64{
		"frequency":      m.Osc.Params.BaseFrequencyHz,
		"field_strength": m.FieldStrength,
	}
}

func (m *MagnaPulse) SetParam(name string, value float64) error {
	switch name {
	case "frequency":
		m.Osc.Params.BaseFrequencyHz = value
	case "field_strength":
		m.FieldStrength = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}
