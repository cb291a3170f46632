package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/oscillab/internal/analysis"
	"github.com/san-kum/oscillab/internal/audio"
	"github.com/san-kum/oscillab/internal/config"
	"github.com/san-kum/oscillab/internal/harmonic"
	"github.com/san-kum/oscillab/internal/metrics"
	"github.com/san-kum/oscillab/internal/optim"
	"github.com/san-kum/oscillab/internal/sim"
	"github.com/san-kum/oscillab/internal/storage"
	"github.com/san-kum/oscillab/internal/viz"
)

var (
	dataDir    string
	duration   float64
	resolution float64
	parallel   bool
	configFile string
	preset     string
	// Plot options
	normalize  bool
	seriesName string
	plotWidth  int
	plotHeight int
	// Live view
	frameRate float64
	// Playback
	playSeconds float64
	timeScale   float64
	gain        float64
	// Compare sweep and tuning
	sweepParam   string
	sweepList    string
	metricName   string
	metricTarget float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "oscillab",
		Short: "harmonic emitter waveform lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".oscillab", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "simulate all emitters and store the run",
		RunE:  runSimulation,
	}
	runCmd.Flags().Float64Var(&duration, "time", sim.DefaultDuration, "simulated duration")
	runCmd.Flags().Float64Var(&resolution, "step", sim.DefaultResolution, "grid resolution")
	runCmd.Flags().BoolVar(&parallel, "parallel", false, "evaluate emitters in parallel")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().BoolVar(&normalize, "normalize", true, "scale each series to unit peak in the overlay")
	plotCmd.Flags().StringVar(&seriesName, "series", "", "plot only the named series")
	plotCmd.Flags().IntVar(&plotWidth, "width", 90, "plot width")
	plotCmd.Flags().IntVar(&plotHeight, "height", 14, "plot height")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run series to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run series to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export run series as an SVG plot",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().IntVar(&plotWidth, "width", 900, "image width")
	exportSVGCmd.Flags().IntVar(&plotHeight, "height", 300, "image height")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "frequency analysis of one series",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}
	analyzeCmd.Flags().StringVar(&seriesName, "series", "Sonic Array", "series to analyze")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "animated live view of all emitters",
		RunE:  runLive,
	}
	liveCmd.Flags().Float64Var(&duration, "time", 0.01, "visible window length")
	liveCmd.Flags().Float64Var(&resolution, "step", 1e-4, "grid resolution")
	liveCmd.Flags().Float64Var(&frameRate, "fps", 30, "frame rate")
	liveCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")

	playCmd := &cobra.Command{
		Use:   "play [emitter]",
		Short: "render an emitter waveform through the sound card",
		Args:  cobra.ExactArgs(1),
		RunE:  playEmitter,
	}
	playCmd.Flags().Float64Var(&playSeconds, "seconds", 2.0, "playback length")
	playCmd.Flags().Float64Var(&timeScale, "scale", 1.0, "simulation time units per wall-clock second")
	playCmd.Flags().Float64Var(&gain, "gain", 0.25, "output gain")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets()
			sort.Strings(names)
			for _, name := range names {
				cfg := config.GetPreset(name)
				fmt.Printf("%-12s time=%g step=%g\n", name, cfg.Duration, cfg.Resolution)
			}
			return nil
		},
	}

	compareCmd := &cobra.Command{
		Use:   "compare [emitter]",
		Short: "sweep one emitter parameter and compare series metrics",
		Args:  cobra.ExactArgs(1),
		RunE:  compareSweep,
	}
	compareCmd.Flags().Float64Var(&duration, "time", 0.01, "simulated duration")
	compareCmd.Flags().Float64Var(&resolution, "step", 1e-5, "grid resolution")
	compareCmd.Flags().StringVar(&sweepParam, "param", "", "parameter to sweep")
	compareCmd.Flags().StringVar(&sweepList, "values", "", "comma-separated parameter values")

	tuneCmd := &cobra.Command{
		Use:   "tune [emitter]",
		Short: "grid-search an emitter parameter toward a target metric",
		Args:  cobra.ExactArgs(1),
		RunE:  tuneEmitter,
	}
	tuneCmd.Flags().Float64Var(&duration, "time", 0.01, "simulated duration")
	tuneCmd.Flags().Float64Var(&resolution, "step", 1e-5, "grid resolution")
	tuneCmd.Flags().StringVar(&sweepParam, "param", "", "parameter to tune")
	tuneCmd.Flags().StringVar(&sweepList, "values", "", "comma-separated candidate values")
	tuneCmd.Flags().StringVar(&metricName, "metric", "rms", "metric to match (peak, rms, energy)")
	tuneCmd.Flags().Float64Var(&metricTarget, "target", 0, "target metric value")

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, exportCmd, exportCSVCmd, exportJSONCmd,
		exportSVGCmd, analyzeCmd, liveCmd, playCmd, presetsCmd, compareCmd, tuneCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadRunConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg.Duration = p.Duration
		cfg.Resolution = p.Resolution
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	// CLI flags win over preset and config file.
	if cmd.Flags().Changed("time") {
		cfg.Duration = duration
	}
	if cmd.Flags().Changed("step") {
		cfg.Resolution = resolution
	}
	if cmd.Flags().Changed("parallel") {
		cfg.Parallel = parallel
	}

	return cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := loadRunConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	driver := sim.New()
	cfg.Apply(driver.Waveforms())
	for _, m := range sim.DefaultMetrics() {
		driver.AddMetric(m)
	}

	fmt.Printf("simulating %d samples over %g time units...\n",
		int(cfg.Duration/cfg.Resolution), cfg.Duration)
	start := time.Now()

	result, err := driver.Run(context.Background(), cfg.SimConfig())
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(cfg.SimConfig(), result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n\n", runID)
	fmt.Print(viz.Summary(result.Series, 40))

	fmt.Println("\nmetrics:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SERIES\tPEAK\tRMS\tENERGY")
	for _, sr := range result.Series {
		m := result.Metrics[sr.Label]
		fmt.Fprintf(w, "%s\t%.6g\t%.6g\t%.6g\n", sr.Label, m["peak"], m["rms"], m["energy"])
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tDURATION\tSTEP\tSAMPLES")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%g\t%g\t%d\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Resolution,
			run.Samples,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	grid, series, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}
	if len(grid) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("samples: %d over %g time units\n\n", len(grid), meta.Duration)

	if seriesName != "" {
		sr, err := findSeries(series, seriesName)
		if err != nil {
			return err
		}
		fmt.Println(viz.PlotSeries(*sr, plotWidth, plotHeight))
		return nil
	}

	fmt.Println(viz.Overlay(series, plotWidth, plotHeight, normalize))
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	grid, series, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	header := []string{"time"}
	for _, sr := range series {
		header = append(header, sr.Label)
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i, t := range grid {
		row := []string{strconv.FormatFloat(t, 'g', -1, 64)}
		for _, sr := range series {
			row = append(row, strconv.FormatFloat(sr.Amplitudes[i], 'g', -1, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	grid, series, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}

	return storage.ExportJSONStdout(meta, grid, series)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	grid, series, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}

	svg := storage.ExportSVG(grid, series, plotWidth, plotHeight)
	if svg == "" {
		return fmt.Errorf("run %s has no plottable data", args[0])
	}

	_, err = fmt.Println(svg)
	return err
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	_, series, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}

	sr, err := findSeries(series, seriesName)
	if err != nil {
		return err
	}

	fmt.Printf("frequency analysis: %s / %s\n\n", meta.ID, sr.Label)

	ps := analysis.PowerSpectrum(sr.Amplitudes)
	if len(ps) == 0 {
		return fmt.Errorf("series too short to analyze")
	}

	plotData := ps
	if len(plotData) > 4 {
		plotData = ps[:len(ps)/4]
	}

	fmt.Println(asciigraph.Plot(plotData,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("power spectrum (%s)", sr.Label)),
	))
	fmt.Println()

	freq := analysis.DominantFrequency(sr.Amplitudes, meta.Resolution)
	fmt.Printf("dominant frequency: %.6g hz\n", freq)
	if freq > 0 {
		fmt.Printf("period: %.6g s\n", 1.0/freq)
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	driver := sim.New()

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg.Apply(driver.Waveforms())
	}

	m := viz.NewModel(driver.Waveforms(), duration, resolution, int(frameRate))
	p := tea.NewProgram(m)
	_, err := p.Run()
	return err
}

func playEmitter(cmd *cobra.Command, args []string) error {
	registry := sim.NewRegistry()
	w, err := registry.Get(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("playing %s for %gs (scale %gx, gain %g)\n", w.Label(), playSeconds, timeScale, gain)
	return audio.NewPlayer(w, timeScale, gain).Play(playSeconds)
}

func compareSweep(cmd *cobra.Command, args []string) error {
	registry := sim.NewRegistry()

	base, err := registry.Get(args[0])
	if err != nil {
		return err
	}

	cfg, ok := base.(harmonic.Configurable)
	if !ok {
		return fmt.Errorf("emitter %s has no tunable parameters", args[0])
	}

	if sweepParam == "" {
		names := make([]string, 0)
		for name := range cfg.GetParams() {
			names = append(names, name)
		}
		sort.Strings(names)
		return fmt.Errorf("--param required (available: %v)", names)
	}

	values, err := parseValues(sweepList)
	if err != nil {
		return err
	}

	fmt.Printf("sweeping %s.%s over %d values (time=%g, step=%g)\n\n",
		base.Label(), sweepParam, len(values), duration, resolution)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "VALUE\tPEAK\tRMS\tENERGY")

	for _, value := range values {
		emitter, err := registry.Get(args[0])
		if err != nil {
			return err
		}
		if err := emitter.(harmonic.Configurable).SetParam(sweepParam, value); err != nil {
			return err
		}

		driver := sim.NewWithWaveforms(emitter)
		peak, rms, energy := metrics.NewPeak(), metrics.NewRMS(), metrics.NewEnergy(harmonic.DefaultResonanceFactor)
		driver.AddMetric(peak)
		driver.AddMetric(rms)
		driver.AddMetric(energy)

		result, err := driver.Run(context.Background(), sim.Config{Duration: duration, Resolution: resolution})
		if err != nil {
			fmt.Fprintf(w, "%g\terror: %v\n", value, err)
			continue
		}

		m := result.Metrics[emitter.Label()]
		fmt.Fprintf(w, "%g\t%.6g\t%.6g\t%.6g\n", value, m["peak"], m["rms"], m["energy"])
	}
	return w.Flush()
}

func tuneEmitter(cmd *cobra.Command, args []string) error {
	registry := sim.NewRegistry()

	base, err := registry.Get(args[0])
	if err != nil {
		return err
	}
	if _, ok := base.(harmonic.Configurable); !ok {
		return fmt.Errorf("emitter %s has no tunable parameters", args[0])
	}
	if sweepParam == "" {
		return fmt.Errorf("--param required")
	}

	values, err := parseValues(sweepList)
	if err != nil {
		return err
	}

	metric, err := metricByName(metricName)
	if err != nil {
		return err
	}

	gs := optim.NewGridSearch([]string{sweepParam}, [][]float64{values})
	evaluations := 0

	bestParams, bestDiff, err := gs.Search(context.Background(), func(params map[string]float64) (float64, error) {
		emitter, err := registry.Get(args[0])
		if err != nil {
			return 0, err
		}
		for name, value := range params {
			if err := emitter.(harmonic.Configurable).SetParam(name, value); err != nil {
				return 0, err
			}
		}

		driver := sim.NewWithWaveforms(emitter)
		driver.AddMetric(metric)

		result, err := driver.Run(context.Background(), sim.Config{Duration: duration, Resolution: resolution})
		if err != nil {
			return 0, err
		}

		evaluations++
		return math.Abs(result.Metrics[emitter.Label()][metric.Name()] - metricTarget), nil
	})
	if err != nil {
		return err
	}

	if bestParams == nil {
		return fmt.Errorf("no candidate value produced a valid run")
	}

	fmt.Printf("evaluated %d candidates\n", evaluations)
	fmt.Printf("best %s = %g (|%s - %g| = %.6g)\n",
		sweepParam, bestParams[sweepParam], metricName, metricTarget, bestDiff)
	return nil
}

func metricByName(name string) (harmonic.Metric, error) {
	switch name {
	case "peak":
		return metrics.NewPeak(), nil
	case "rms":
		return metrics.NewRMS(), nil
	case "energy":
		return metrics.NewEnergy(harmonic.DefaultResonanceFactor), nil
	}
	return nil, fmt.Errorf("unknown metric: %s (available: peak, rms, energy)", name)
}

func findSeries(series []harmonic.SeriesResult, name string) (*harmonic.SeriesResult, error) {
	labels := make([]string, len(series))
	for i := range series {
		labels[i] = series[i].Label
		if strings.EqualFold(series[i].Label, name) {
			return &series[i], nil
		}
	}
	return nil, fmt.Errorf("unknown series: %s (available: %v)", name, labels)
}

func parseValues(list string) ([]float64, error) {
	if list == "" {
		return nil, fmt.Errorf("--values required (comma-separated numbers)")
	}

	parts := strings.Split(list, ",")
	values := make([]float64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("bad value %q: %w", part, err)
		}
		values = append(values, v)
	}
	return values, nil
}
