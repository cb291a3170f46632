// Package storage persists simulation runs under a data directory: one
// subdirectory per run holding metadata.json and series.csv.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/oscillab/internal/harmonic"
	"github.com/san-kum/oscillab/internal/sim"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID         string                        `json:"id"`
	Timestamp  time.Time                     `json:"timestamp"`
	Duration   float64                       `json:"duration"`
	Resolution float64                       `json:"resolution"`
	Samples    int                           `json:"samples"`
	Labels     []string                      `json:"labels"`
	Metrics    map[string]map[string]float64 `json:"metrics,omitempty"`
}

// Save writes one run, returning its generated ID.
func (s *Store) Save(cfg sim.Config, result *sim.Result) (string, error) {
	runID := fmt.Sprintf("run_%d", time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	labels := make([]string, len(result.Series))
	for i, sr := range result.Series {
		labels[i] = sr.Label
	}

	meta := RunMetadata{
		ID:         runID,
		Timestamp:  time.Now(),
		Duration:   cfg.Duration,
		Resolution: cfg.Resolution,
		Samples:    len(result.Grid),
		Labels:     labels,
		Metrics:    result.Metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "series.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := append([]string{"time"}, labels...)
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i, t := range result.Grid {
		row := make([]string, 0, len(result.Series)+1)
		row = append(row, strconv.FormatFloat(t, 'g', -1, 64))
		for _, sr := range result.Series {
			row = append(row, strconv.FormatFloat(sr.Amplitudes[i], 'g', -1, 64))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadSeries reads back a run's grid and labeled series in stored order.
func (s *Store) LoadSeries(runID string) (harmonic.TimeGrid, []harmonic.SeriesResult, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "series.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}

	if len(records) < 1 || len(records[0]) < 2 {
		return nil, nil, fmt.Errorf("run %s: malformed series.csv", runID)
	}

	labels := records[0][1:]
	grid := make(harmonic.TimeGrid, 0, len(records)-1)
	series := make([]harmonic.SeriesResult, len(labels))
	for i, label := range labels {
		series[i] = harmonic.SeriesResult{
			Label:      label,
			Amplitudes: make(harmonic.Series, 0, len(records)-1),
		}
	}

	for _, record := range records[1:] {
		if len(record) != len(labels)+1 {
			continue
		}

		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		grid = append(grid, t)

		for i := range labels {
			v, err := strconv.ParseFloat(record[i+1], 64)
			if err != nil {
				v = 0
			}
			series[i].Amplitudes = append(series[i].Amplitudes, v)
		}
	}

	return grid, series, nil
}
