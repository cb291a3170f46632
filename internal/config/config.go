package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/oscillab/internal/emitters"
	"github.com/san-kum/oscillab/internal/harmonic"
	"github.com/san-kum/oscillab/internal/sim"
)

type Config struct {
	Duration   float64       `yaml:"duration"`
	Resolution float64       `yaml:"resolution"`
	Parallel   bool          `yaml:"parallel"`
	Emitters   EmitterConfig `yaml:"emitters"`
}

// EmitterConfig overrides per-emitter parameters. Zero values mean "keep
// the emitter default".
type EmitterConfig struct {
	Coherence         float64 `yaml:"coherence"`
	PlasmaTemperature float64 `yaml:"plasma_temperature"`
	FieldStrength     float64 `yaml:"field_strength"`
	PressureGain      float64 `yaml:"pressure_gain"`
	DistortionFactor  float64 `yaml:"distortion_factor"`
}

func DefaultConfig() *Config {
	return &Config{
		Duration:   sim.DefaultDuration,
		Resolution: sim.DefaultResolution,
		Emitters: EmitterConfig{
			Coherence:         emitters.LuxThermaCoherence,
			PlasmaTemperature: emitters.PlasmaTemperatureDefault,
			FieldStrength:     emitters.MagnaFieldStrength,
			PressureGain:      emitters.SonicPressureGain,
			DistortionFactor:  emitters.AetherDistortionFactor,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// SimConfig converts to the driver's run configuration.
func (c *Config) SimConfig() sim.Config {
	return sim.Config{
		Duration:   c.Duration,
		Resolution: c.Resolution,
		Parallel:   c.Parallel,
	}
}

// Apply pushes non-zero overrides onto the matching emitters. Parameters
// are matched by name through the Configurable interface, so waveform
// sets missing an emitter simply skip its override.
func (c *Config) Apply(waveforms []harmonic.Waveform) {
	overrides := map[string]float64{
		"coherence":          c.Emitters.Coherence,
		"plasma_temperature": c.Emitters.PlasmaTemperature,
		"field_strength":     c.Emitters.FieldStrength,
		"pressure_gain":      c.Emitters.PressureGain,
		"distortion_factor":  c.Emitters.DistortionFactor,
	}

	for _, w := range waveforms {
		cfg, ok := w.(harmonic.Configurable)
		if !ok {
			continue
		}
		params := cfg.GetParams()
		for name, value := range overrides {
			if value == 0 {
				continue
			}
			if _, has := params[name]; has {
				_ = cfg.SetParam(name, value)
			}
		}
	}
}
