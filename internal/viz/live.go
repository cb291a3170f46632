package viz

import (
	"fmt"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/oscillab/internal/harmonic"
)

const (
	defaultPlotWidth  = 90
	defaultPlotHeight = 18
)

type TickMsg time.Time

// Model is the bubbletea model for the live view: a scrolling window over
// the emitter waveforms, with pause, normalization toggling, and runtime
// parameter adjustment through the Configurable interface.
type Model struct {
	waveforms []harmonic.Waveform
	window    float64
	step      float64
	offset    float64
	fps       int

	running   bool
	normalize bool
	selected  int
	showHelp  bool
	err       error

	width  int
	height int
}

// NewModel builds a live view over the waveform set. window and step
// control the visible grid; fps the animation rate.
func NewModel(waveforms []harmonic.Waveform, window, step float64, fps int) Model {
	if fps <= 0 {
		fps = 30
	}
	return Model{
		waveforms: waveforms,
		window:    window,
		step:      step,
		fps:       fps,
		running:   true,
		normalize: true,
		width:     defaultPlotWidth,
		height:    defaultPlotHeight,
	}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 20 {
			m.width = msg.Width - 12
		}
		if msg.Height > 12 {
			m.height = msg.Height - 10
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.offset = 0
		case "n":
			m.normalize = !m.normalize
		case "tab":
			m.selected = (m.selected + 1) % len(m.waveforms)
		case "up", "k":
			m.adjustParam(1.1)
		case "down", "j":
			m.adjustParam(0.9)
		case "[":
			m.offset -= m.window / 4
			if m.offset < 0 {
				m.offset = 0
			}
		case "]":
			m.offset += m.window / 4
		case "?":
			m.showHelp = !m.showHelp
		}
		return m, nil

	case TickMsg:
		if m.running {
			m.offset += m.window / 50
		}
		return m, m.tick()
	}

	return m, nil
}

// adjustParam scales the selected emitter's first (alphabetically) tunable
// parameter other than frequency.
func (m *Model) adjustParam(factor float64) {
	cfg, ok := m.waveforms[m.selected].(harmonic.Configurable)
	if !ok {
		return
	}

	name := tunableParam(cfg)
	if name == "" {
		return
	}
	if err := cfg.SetParam(name, cfg.GetParams()[name]*factor); err != nil {
		m.err = err
	}
}

func tunableParam(cfg harmonic.Configurable) string {
	names := make([]string, 0)
	for name := range cfg.GetParams() {
		if name != "frequency" && name != "resonance" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return ""
	}
	sort.Strings(names)
	return names[0]
}

func (m Model) View() string {
	grid := make(harmonic.TimeGrid, 0, int(m.window/m.step))
	for t := m.offset; t < m.offset+m.window; t += m.step {
		grid = append(grid, t)
	}

	series := make([]harmonic.SeriesResult, len(m.waveforms))
	for i, w := range m.waveforms {
		series[i] = harmonic.SeriesResult{Label: w.Label(), Amplitudes: w.Evaluate(grid)}
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render("oscillab live"))
	b.WriteString("\n")

	status := StatusRunning.Render("● running")
	if !m.running {
		status = StatusPaused.Render("◌ paused")
	}
	b.WriteString(fmt.Sprintf("%s  t=[%.4g, %.4g)\n", status, m.offset, m.offset+m.window))

	b.WriteString(GraphStyle.Render(Overlay(series, m.width, m.height, m.normalize)))
	b.WriteString("\n\n")

	for i, w := range m.waveforms {
		line := fmt.Sprintf("%-14s", w.Label())
		if cfg, ok := w.(harmonic.Configurable); ok {
			if name := tunableParam(cfg); name != "" {
				line += fmt.Sprintf(" %s=%.4g", name, cfg.GetParams()[name])
			}
		}
		if i == m.selected {
			b.WriteString(SelectedStyle.Render("▸ " + line))
		} else {
			b.WriteString(ValueStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(fmt.Sprintf("\nerror: %v\n", m.err))
	}

	if m.showHelp {
		b.WriteString(HelpStyle.Render(
			"space pause · r rewind · n normalize · tab select emitter · ↑/↓ adjust param · [/] scrub · q quit"))
	} else {
		b.WriteString(HelpStyle.Render("? help · q quit"))
	}
	b.WriteString("\n")

	return b.String()
}
