package emitters

import (
	"fmt"

	"github.com/san-kum/oscillab/internal/harmonic"
)

// SonicArray defaults.
const (
	SonicFrequencyHz  = 500
	SonicPressureGain = 2.0
)

// SonicArray is the acoustic emitter. Its formula matches MagnaPulse with
// different parameters; it stays a distinct variant for domain labeling,
// not algorithmic novelty.
type SonicArray struct {
	Osc          harmonic.Oscillator
	PressureGain float64
}

func NewSonicArray() *SonicArray {
	return &SonicArray{
		Osc:          harmonic.NewOscillator(SonicFrequencyHz),
		PressureGain: SonicPressureGain,
	}
}

func (s *SonicArray) Label() string { return "Sonic Array" }

func (s *SonicArray) Validate() error {
	if s.PressureGain < 0 {
		return &harmonic.ParameterError{
			Emitter: s.Label(), Param: "pressure_gain", Value: s.PressureGain,
			Wrapped: harmonic.ErrInvalidParameter,
		}
	}
	return nil
}

// AcousticWave returns pressureGain * sin(2*pi*f*t).
func (s *SonicArray) AcousticWave(t float64) float64 {
	return s.PressureGain * harmonic.SinPhase(s.Osc.Params.BaseFrequencyHz, t)
}

func (s *SonicArray) Evaluate(grid harmonic.TimeGrid) harmonic.Series {
	out := make(harmonic.Series, len(grid))
	for i, t := range grid {
		out[i] = s.AcousticWave(t)
	}
	return out
}

func (s *SonicArray) GetParams() map[string]float64 {
	return map[string]float64{
		"frequency":     s.Osc.Params.BaseFrequencyHz,
		"pressure_gain": s.PressureGain,
	}
}

func (s *SonicArray) SetParam(name string, value float64) error {
	switch name {
	case "frequency":
		s.Osc.Params.BaseFrequencyHz = value
	case "pressure_gain":
		s.PressureGain = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}
