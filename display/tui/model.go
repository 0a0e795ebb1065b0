// Package tui implements the interactive sys-analyzer dashboard using
// Bubbletea's Elm architecture. Each tick samples the host, records the
// average CPU in the history buffer and redraws; report requests run on the
// same update goroutine.
package tui

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/sys-analyzer/collectors/sysmetrics"
	"gitlab.com/tinyland/lab/sys-analyzer/display/widgets"
	"gitlab.com/tinyland/lab/sys-analyzer/history"
	"gitlab.com/tinyland/lab/sys-analyzer/report"
)

// chartSeconds is how much history the chart pane plots.
const chartSeconds = 60

// CPUSampler reads one tick of CPU utilization.
type CPUSampler interface {
	SampleCPU(ctx context.Context) (sysmetrics.CPUSample, error)
}

// HostReader reads the non-CPU panes. full is true once per second.
type HostReader interface {
	Read(ctx context.Context, full bool) sysmetrics.HostSnapshot
}

// Reporter turns a history snapshot into a written report.
type Reporter interface {
	Generate(snapshot []float64, tickCount, seconds int) (report.Result, error)
}

// Options configures a dashboard Model.
type Options struct {
	// Theme is a preset name; unknown names fall back to "monitoring".
	Theme string

	// Context bounds host reads. Nil means context.Background().
	Context context.Context

	Logger *slog.Logger
}

// TickMsg drives the fixed sampling cadence. Each one samples the host once.
type TickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(history.TickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Model is the top-level Bubbletea model for the dashboard. It owns the
// history buffer; nothing else appends to it.
type Model struct {
	ctx      context.Context
	logger   *slog.Logger
	sampler  CPUSampler
	host     HostReader
	reporter Reporter

	history *history.Buffer
	ticks   int

	cpu    sysmetrics.CPUSample
	cpuErr error
	snap   sysmetrics.HostSnapshot
	chart  []float64

	options reportOptions
	status  reportStatus

	procOffset int

	keys    keyMap
	help    help.Model
	zones   *zone.Manager
	theme   ThemePreset
	palette widgets.Palette

	width  int
	height int
	ready  bool
}

// New returns a dashboard Model with an empty history and the shortest
// report window selected.
func New(sampler CPUSampler, host HostReader, reporter Reporter, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	theme := GetThemePreset(opts.Theme)

	return Model{
		ctx:      ctx,
		logger:   logger,
		sampler:  sampler,
		host:     host,
		reporter: reporter,
		history:  history.NewBuffer(history.DefaultCapacity),
		options:  newReportOptions(),
		status:   idleStatus(),
		keys:     keys,
		help:     help.New(),
		zones:    zone.New(),
		theme:    theme,
		palette:  theme.Palette(),
	}
}

// Init implements tea.Model. It starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		m.onTick()
		return m, tickCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
	}

	return m, nil
}

// onTick samples the host and records the average. A failed CPU read is
// shown in the CPU pane and records nothing; the tick still counts toward
// elapsed runtime.
func (m *Model) onTick() {
	m.ticks++

	sample, err := m.sampler.SampleCPU(m.ctx)
	if err != nil {
		if !errors.Is(err, m.cpuErr) {
			m.logger.Warn("cpu sample failed", "tick", m.ticks, "error", err)
		}
		m.cpuErr = err
	} else {
		m.cpuErr = nil
		m.cpu = sample
		m.history.Append(sample.Average)
	}

	full := (m.ticks-1)%history.TicksPerSecond == 0
	snap := m.host.Read(m.ctx, full)
	if !full {
		snap.Disks = m.snap.Disks
		snap.Processes = m.snap.Processes
		snap.Batteries = m.snap.Batteries
	} else {
		m.chart = history.Recent(m.history, chartSeconds, history.TicksPerSecond)
	}
	m.snap = snap
	m.clampScroll()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Prev):
		m.options.Prev()
	case key.Matches(msg, m.keys.Next):
		m.options.Next()
	case key.Matches(msg, m.keys.Clear):
		m.options.Clear()
		m.help.ShowAll = false
	case key.Matches(msg, m.keys.Generate):
		m.generateReport()
	case key.Matches(msg, m.keys.ScrollUp):
		m.procOffset--
		m.clampScroll()
	case key.Matches(msg, m.keys.ScrollDown):
		m.procOffset++
		m.clampScroll()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// handleMouse selects a report window when its line is clicked.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}
	for i := range m.options.seconds {
		if z := m.zones.Get(optionZoneID(i)); z != nil && z.InBounds(msg) {
			m.options.Select(i)
			return
		}
	}
}

// generateReport runs the report pipeline for the selected window and
// records the outcome in the status pane.
func (m *Model) generateReport() {
	seconds, err := m.options.Selected()
	if err != nil {
		m.status = statusForError(err)
		return
	}

	res, err := m.reporter.Generate(m.history.Snapshot(), m.ticks, seconds)
	if err != nil {
		m.logger.Warn("report not generated", "seconds", seconds, "error", err)
		m.status = statusForError(err)
		return
	}
	m.status = generatedStatus(res.Path)
}

func (m *Model) clampScroll() {
	last := len(m.snap.Processes) - 1
	if m.procOffset > last {
		m.procOffset = last
	}
	if m.procOffset < 0 {
		m.procOffset = 0
	}
}

// Ticks returns the number of ticks since start.
func (m Model) Ticks() int { return m.ticks }

// Elapsed returns the runtime implied by the tick count.
func (m Model) Elapsed() time.Duration {
	return time.Duration(m.ticks) * history.TickInterval
}

// History returns a copy of the recorded averages, oldest first.
func (m Model) History() []float64 { return m.history.Snapshot() }

// StatusText returns the report status line.
func (m Model) StatusText() string { return m.status.text }

// Close stops the mouse zone worker. Call it once the model is no longer
// rendered. It is safe to call more than once.
func (m Model) Close() { m.zones.Close() }

// Run starts the dashboard on the current terminal and blocks until the
// user quits.
func Run(m Model) error {
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
