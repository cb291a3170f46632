package emitters

import (
	"fmt"

	"github.com/san-kum/oscillab/internal/harmonic"
)

// LuxTherma defaults.
const (
	LuxThermaFrequencyHz = 1e9
	LuxThermaResonance   = 5.0
	LuxThermaCoherence   = 0.95
)

// LuxTherma is the photonic emitter. Its output is the squared field
// modulation scaled by coherence, so it is never negative.
type LuxTherma struct {
	Osc       harmonic.Oscillator
	Coherence float64
}

func NewLuxTherma() *LuxTherma {
	return &LuxTherma{
		Osc: harmonic.Oscillator{Params: harmonic.OscillatorParams{
			BaseFrequencyHz: LuxThermaFrequencyHz,
			ResonanceFactor: LuxThermaResonance,
		}},
		Coherence: LuxThermaCoherence,
	}
}

func (l *LuxTherma) Label() string { return "Lux-Therma" }

func (l *LuxTherma) Validate() error {
	if l.Coherence < 0 || l.Coherence > 1 {
		return &harmonic.ParameterError{
			Emitter: l.Label(), Param: "coherence", Value: l.Coherence,
			Wrapped: harmonic.ErrInvalidParameter,
		}
	}
	return nil
}

// RadiantOutput returns coherence * FieldModulation(t)^2.
func (l *LuxTherma) RadiantOutput(t float64) float64 {
	m := l.Osc.FieldModulation(t)
	return l.Coherence * m * m
}

func (l *LuxTherma) Evaluate(grid harmonic.TimeGrid) harmonic.Series {
	out := make(harmonic.Series, len(grid))
	for i, t := range grid {
		out[i] = l.RadiantOutput(t)
	}
	return out
}

func (l *LuxTherma) GetParams() map[string]float64 {
	return map[string]float64{
		"frequency": l.Osc.Params.BaseFrequencyHz,
		"resonance": l.Osc.Params.ResonanceFactor,
		"coherence": l.Coherence,
	}
}

func (l *LuxTherma) SetParam(name string, value float64) error {
	switch name {
	case "frequency":
		l.Osc.Params.BaseFrequencyHz = value
	case "resonance":
		l.Osc.Params.ResonanceFactor = value
	case "coherence":
		l.Coherence = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}
