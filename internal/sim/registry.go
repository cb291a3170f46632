package sim

import (
	"fmt"
	"sort"

	"github.com/san-kum/oscillab/internal/emitters"
	"github.com/san-kum/oscillab/internal/harmonic"
	"github.com/san-kum/oscillab/internal/metrics"
)

// Registry maps short emitter names to constructors, for CLI commands
// that operate on a single emitter.
type Registry struct {
	waveforms map[string]func() harmonic.Waveform
}

func NewRegistry() *Registry {
	r := &Registry{waveforms: make(map[string]func() harmonic.Waveform)}

	r.waveforms["lux"] = func() harmonic.Waveform { return emitters.NewLuxTherma() }
	r.waveforms["plasma"] = func() harmonic.Waveform { return emitters.NewPlasmaField() }
	r.waveforms["magna"] = func() harmonic.Waveform { return emitters.NewMagnaPulse() }
	r.waveforms["sonic"] = func() harmonic.Waveform { return emitters.NewSonicArray() }
	r.waveforms["aether"] = func() harmonic.Waveform { return emitters.NewAetherWave() }

	return r
}

func (r *Registry) Get(name string) (harmonic.Waveform, error) {
	fn, ok := r.waveforms[name]
	if !ok {
		return nil, fmt.Errorf("unknown emitter: %s (available: %v)", name, r.List())
	}
	return fn(), nil
}

func (r *Registry) List() []string {
	names := make([]string, 0, len(r.waveforms))
	for name := range r.waveforms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultMetrics returns the metric set attached to standard runs.
func DefaultMetrics() []harmonic.Metric {
	return []harmonic.Metric{
		metrics.NewPeak(),
		metrics.NewRMS(),
		metrics.NewEnergy(harmonic.DefaultResonanceFactor),
	}
}
