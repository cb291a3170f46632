package emitters

import (
	"fmt"

	"github.com/san-kum/oscillab/internal/harmonic"
)

// AetherWave defaults.
const (
	AetherFrequencyHz      = 1e-3
	AetherDistortionFactor = 1e-6
)

// AetherWave is the vacuum field emitter: a very slow sinusoid attenuated
// by a tiny distortion factor, so its magnitude is bounded by that factor.
type AetherWave struct {
	Osc              harmonic.Oscillator
	DistortionFactor float64
}

func NewAetherWave() *AetherWave {
	return &AetherWave{
		Osc:              harmonic.NewOscillator(AetherFrequencyHz),
		DistortionFactor: AetherDistortionFactor,
	}
}

func (a *AetherWave) Label() string { return "Aether-Wave" }

// Validate requires a strictly positive distortion factor.
func (a *AetherWave) Validate() error {
	if a.DistortionFactor <= 0 {
		return &harmonic.ParameterError{
			Emitter: a.Label(), Param: "distortion_factor", Value: a.DistortionFactor,
			Wrapped: harmonic.ErrInvalidParameter,
		}
	}
	return nil
}

// VacuumModulation returns sin(2*pi*f*t) * distortionFactor.
func (a *AetherWave) VacuumModulation(t float64) float64 {
	return harmonic.SinPhase(a.Osc.Params.BaseFrequencyHz, t) * a.DistortionFactor
}

func (a *AetherWave) Evaluate(grid harmonic.TimeGrid) harmonic.Series {
	out := make(harmonic.Series, len(grid))
	for i, t := range grid {
		out[i] = a.VacuumModulation(t)
	}
	return out
}

func (a *AetherWave) GetParams() map[string]float64 {
	return map[string]float64{
		"frequency":         a.Osc.Params.BaseFrequencyHz,
		"distortion_factor": a.DistortionFactor,
	}
}

func (a *AetherWave) SetParam(name string, value float64) error {
	switch name {
	case "frequency":
		a.Osc.Params.BaseFrequencyHz = value
	case "distortion_factor":
		a.DistortionFactor = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}
