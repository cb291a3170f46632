// Package sim drives emitter waveform simulation runs: it builds the
// shared time grid, validates every emitter up front, evaluates each one
// over the grid, and returns the labeled series in a fixed order.
package sim

import (
	"context"
	"fmt"
	"sync"

	"github.com/san-kum/oscillab/internal/emitters"
	"github.com/san-kum/oscillab/internal/harmonic"
)

// Default run parameters.
const (
	DefaultDuration   = 0.01
	DefaultResolution = 1e-6
)

type Config struct {
	Duration   float64
	Resolution float64
	// Parallel evaluates emitters concurrently. Evaluation is pure, so
	// results are identical either way.
	Parallel bool
}

func DefaultConfig() Config {
	return Config{
		Duration:   DefaultDuration,
		Resolution: DefaultResolution,
	}
}

// Result holds the grid and one series per emitter, index-aligned.
// Metrics, if any were attached, are keyed by series label then metric name.
type Result struct {
	Grid    harmonic.TimeGrid
	Series  []harmonic.SeriesResult
	Metrics map[string]map[string]float64
}

// Driver evaluates a fixed ordered set of waveforms over a shared grid.
type Driver struct {
	waveforms []harmonic.Waveform
	metrics   []harmonic.Metric
}

// New returns a driver over the five standard emitters in display order.
func New() *Driver {
	return NewWithWaveforms(
		emitters.NewLuxTherma(),
		emitters.NewPlasmaField(),
		emitters.NewMagnaPulse(),
		emitters.NewSonicArray(),
		emitters.NewAetherWave(),
	)
}

// NewWithWaveforms returns a driver over an explicit waveform set. Order
// is preserved in the results.
func NewWithWaveforms(waveforms ...harmonic.Waveform) *Driver {
	return &Driver{waveforms: waveforms}
}

func (d *Driver) AddMetric(m harmonic.Metric) { d.metrics = append(d.metrics, m) }

// Waveforms returns the driver's waveform set in evaluation order.
func (d *Driver) Waveforms() []harmonic.Waveform { return d.waveforms }

// Run evaluates every waveform over the grid described by cfg. It fails
// atomically: grid parameters and every emitter are validated before any
// series is computed, so a run either yields all series or none.
func (d *Driver) Run(ctx context.Context, cfg Config) (*Result, error) {
	grid, err := harmonic.NewTimeGrid(cfg.Duration, cfg.Resolution)
	if err != nil {
		return nil, err
	}

	for _, w := range d.waveforms {
		if err := w.Validate(); err != nil {
			return nil, fmt.Errorf("validate %s: %w", w.Label(), err)
		}
	}

	series := make([]harmonic.SeriesResult, len(d.waveforms))

	if cfg.Parallel {
		var wg sync.WaitGroup
		for i, w := range d.waveforms {
			wg.Add(1)
			go func(idx int, w harmonic.Waveform) {
				defer wg.Done()
				series[idx] = harmonic.SeriesResult{Label: w.Label(), Amplitudes: w.Evaluate(grid)}
			}(i, w)
		}
		wg.Wait()
	} else {
		for i, w := range d.waveforms {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
			series[i] = harmonic.SeriesResult{Label: w.Label(), Amplitudes: w.Evaluate(grid)}
		}
	}

	result := &Result{Grid: grid, Series: series}

	if len(d.metrics) > 0 {
		result.Metrics = make(map[string]map[string]float64, len(series))
		for _, sr := range series {
			for _, m := range d.metrics {
				m.Reset()
			}
			for i, t := range grid {
				for _, m := range d.metrics {
					m.Observe(t, sr.Amplitudes[i])
				}
			}
			values := make(map[string]float64, len(d.metrics))
			for _, m := range d.metrics {
				values[m.Name()] = m.Value()
			}
			result.Metrics[sr.Label] = values
		}
	}

	return result, nil
}

// Simulate runs the five standard emitters over [0, duration) at the
// given resolution.
func Simulate(duration, resolution float64) (*Result, error) {
	return New().Run(context.Background(), Config{Duration: duration, Resolution: resolution})
}
