package config

var Presets = map[string]*Config{
	// The documented default window: 10ms at 1us steps.
	"standard": {
		Duration: 0.01, Resolution: 1e-6,
	},
	// Cheap grid for quick terminal plots.
	"coarse": {
		Duration: 0.01, Resolution: 1e-4,
	},
	// Dense short burst, enough to resolve the GHz photonic carrier
	// envelope shape.
	"burst": {
		Duration: 0.001, Resolution: 1e-7,
	},
	// Long window covering the plasma confinement peak at t=5.
	"confinement": {
		Duration: 10.0, Resolution: 1e-3,
	},
	// Slow drift window where the aether wave becomes visible.
	"drift": {
		Duration: 1000.0, Resolution: 0.5,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
