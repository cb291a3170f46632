package harmonic

import "math"

// TimeGrid is an ordered, evenly spaced sequence of sample times starting
// at zero. It is shared read-only across all emitters within one run.
type TimeGrid []float64

// NewTimeGrid builds a grid of samples at step resolution over [0, duration).
// The grid has ceil(duration/resolution) samples.
func NewTimeGrid(duration, resolution float64) (TimeGrid, error) {
	if duration <= 0 {
		return nil, &ParameterError{Param: "duration", Value: duration, Wrapped: ErrInvalidParameter}
	}
	if resolution <= 0 {
		return nil, &ParameterError{Param: "resolution", Value: resolution, Wrapped: ErrInvalidParameter}
	}

	n := int(math.Ceil(duration / resolution))
	grid := make(TimeGrid, n)
	for i := range grid {
		grid[i] = float64(i) * resolution
	}
	return grid, nil
}

// Series holds amplitudes index-aligned with a TimeGrid.
type Series []float64

func (s Series) Clone() Series {
	c := make(Series, len(s))
	copy(c, s)
	return c
}

func (s Series) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// MaxAbs returns the largest absolute amplitude in the series.
func (s Series) MaxAbs() float64 {
	max := 0.0
	for _, v := range s {
		if a := math.Abs(v); a > max {
			max = a
		}
	}
	return max
}

// SeriesResult is one emitter's output for a run, aligned with the grid
// the run was evaluated on.
type SeriesResult struct {
	Label      string
	Amplitudes Series
}

// Waveform is the capability shared by all emitter variants: a label for
// display, parameter validation, and pure evaluation over a time grid.
type Waveform interface {
	Label() string
	Validate() error
	Evaluate(grid TimeGrid) Series
}

// Configurable is implemented by emitters whose parameters can be adjusted
// at runtime, for the live view and parameter sweeps.
type Configurable interface {
	GetParams() map[string]float64
	SetParam(name string, value float64) error
}

// Metric observes (time, amplitude) samples of one series and reduces them
// to a single value.
type Metric interface {
	Name() string
	Observe(t, amplitude float64)
	Value() float64
	Reset()
}
