package emitters

import (
	"fmt"
	"math"

	"github.com/san-kum/oscillab/internal/harmonic"
)

// PlasmaField defaults. The envelope center is fixed; only its width is
// parameterized, inversely through temperature.
const (
	PlasmaFrequencyHz        = 1e6
	PlasmaTemperatureDefault = 1e5
	PlasmaEnvelopeCenter     = 5.0
)

// PlasmaField is the plasma confinement emitter. Unlike the other
// variants it does not reuse the oscillator's field modulation: it
// computes its own Gaussian-enveloped sinusoid with the envelope centered
// at t=5 and width 1/temperature. The divergence from FieldModulation is
// intentional and must not be folded back into the oscillator.
type PlasmaField struct {
	Osc               harmonic.Oscillator
	PlasmaTemperature float64
}

func NewPlasmaField() *PlasmaField {
	return &PlasmaField{
		Osc:               harmonic.NewOscillator(PlasmaFrequencyHz),
		PlasmaTemperature: PlasmaTemperatureDefault,
	}
}

func (p *PlasmaField) Label() string { return "Plasma-Field" }

// Validate rejects non-positive temperatures: the width term divides by
// temperature, so zero would silently turn the envelope into garbage.
func (p *PlasmaField) Validate() error {
	if p.PlasmaTemperature <= 0 {
		return &harmonic.ParameterError{
			Emitter: p.Label(), Param: "plasma_temperature", Value: p.PlasmaTemperature,
			Wrapped: harmonic.ErrInvalidParameter,
		}
	}
	return nil
}

// Confinement returns exp(-(t-5)^2 / (2*(1/T)^2)) * sin(2*pi*f*t).
// Higher temperature means a narrower envelope.
func (p *PlasmaField) Confinement(t float64) float64 {
	w := 1.0 / p.PlasmaTemperature
	d := t - PlasmaEnvelopeCenter
	return math.Exp(-d*d/(2*w*w)) * harmonic.SinPhase(p.Osc.Params.BaseFrequencyHz, t)
}

func (p *PlasmaField) Evaluate(grid harmonic.TimeGrid) harmonic.Series {
	out := make(harmonic.Series, len(grid))
	for i, t := range grid {
		out[i] = p.Confinement(t)
	}
	return out
}

func (p *PlasmaField) GetParams() map[string]float64 {
	return map[string]float64{
		"frequency":          p.Osc.Params.BaseFrequencyHz,
		"plasma_temperature": p.PlasmaTemperature,
	}
}

func (p *PlasmaField) SetParam(name string, value float64) error {
	switch name {
	case "frequency":
		p.Osc.Params.BaseFrequencyHz = value
	case "plasma_temperature":
		p.PlasmaTemperature = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}
