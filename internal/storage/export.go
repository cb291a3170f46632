package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/oscillab/internal/harmonic"
)

type ExportData struct {
	ID         string                        `json:"id"`
	Duration   float64                       `json:"duration"`
	Resolution float64                       `json:"resolution"`
	Samples    int                           `json:"samples"`
	Times      []float64                     `json:"times"`
	Series     []ExportSeries                `json:"series"`
	Metrics    map[string]map[string]float64 `json:"metrics,omitempty"`
}

type ExportSeries struct {
	Label      string    `json:"label"`
	Amplitudes []float64 `json:"amplitudes"`
}

// ExportJSON writes a loaded run as a single JSON document.
func ExportJSON(w io.Writer, meta *RunMetadata, grid harmonic.TimeGrid, series []harmonic.SeriesResult) error {
	data := ExportData{
		ID:         meta.ID,
		Duration:   meta.Duration,
		Resolution: meta.Resolution,
		Samples:    len(grid),
		Times:      grid,
		Series:     make([]ExportSeries, len(series)),
		Metrics:    meta.Metrics,
	}

	for i, sr := range series {
		data.Series[i] = ExportSeries{Label: sr.Label, Amplitudes: sr.Amplitudes}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// ExportJSONStdout writes a loaded run as JSON to standard output.
func ExportJSONStdout(meta *RunMetadata, grid harmonic.TimeGrid, series []harmonic.SeriesResult) error {
	return ExportJSON(os.Stdout, meta, grid, series)
}
