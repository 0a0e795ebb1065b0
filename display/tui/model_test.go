package tui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/sys-analyzer/collectors/sysmetrics"
	"gitlab.com/tinyland/lab/sys-analyzer/display/widgets"
	"gitlab.com/tinyland/lab/sys-analyzer/report"
)

type fakeSampler struct {
	perCore []float64
	err     error
}

func (f *fakeSampler) SampleCPU(context.Context) (sysmetrics.CPUSample, error) {
	if f.err != nil {
		return sysmetrics.CPUSample{}, f.err
	}
	avg, err := sysmetrics.AverageCPU(f.perCore)
	if err != nil {
		return sysmetrics.CPUSample{}, err
	}
	return sysmetrics.CPUSample{PerCore: f.perCore, Average: avg}, nil
}

type fakeHost struct {
	reads     int
	fullReads int
	procs     int
	iface     string
	disk      string
}

func (f *fakeHost) Read(_ context.Context, full bool) sysmetrics.HostSnapshot {
	f.reads++
	iface, disk := f.iface, f.disk
	if iface == "" {
		iface = "eth0"
	}
	if disk == "" {
		disk = "/dev/sda1"
	}
	snap := sysmetrics.HostSnapshot{
		Memory:   sysmetrics.MemorySample{Total: 16e9, Free: 4e9},
		Networks: []sysmetrics.NetworkSample{{Name: iface, Received: 2500}},
	}
	if full {
		f.fullReads++
		for i := 0; i < f.procs; i++ {
			snap.Processes = append(snap.Processes, sysmetrics.ProcessSample{PID: int32(i + 1), Name: "proc"})
		}
		snap.Disks = []sysmetrics.DiskSample{{Name: disk, Kind: "ext4", Total: 500e9}}
	}
	return snap
}

func newTestModel(t *testing.T) (Model, *fakeSampler, *fakeHost, string) {
	t.Helper()
	dir := t.TempDir()
	s := &fakeSampler{perCore: []float64{20, 40}}
	h := &fakeHost{procs: 5}
	m := New(s, h, report.NewReporter(dir, nil), Options{})
	t.Cleanup(m.Close)
	return m, s, h, dir
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func ticks(t *testing.T, m Model, n int) Model {
	t.Helper()
	for i := 0; i < n; i++ {
		m, _ = update(t, m, TickMsg{})
	}
	return m
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func isQuitCmd(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func reportFiles(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestNewModel(t *testing.T) {
	m, _, _, _ := newTestModel(t)

	if m.Ticks() != 0 {
		t.Errorf("ticks = %d, want 0", m.Ticks())
	}
	if len(m.History()) != 0 {
		t.Errorf("history len = %d, want 0", len(m.History()))
	}
	if m.StatusText() != "No report is generated." {
		t.Errorf("status = %q", m.StatusText())
	}
	if got, err := m.options.Selected(); err != nil || got != 10 {
		t.Errorf("initial selection = %d, %v; want 10", got, err)
	}
	if m.Init() == nil {
		t.Error("Init() should start the tick loop")
	}
	if m.View() != "Initializing..." {
		t.Error("View() before the first resize should be a placeholder")
	}
}

func TestTickSamplesAndRecords(t *testing.T) {
	m, _, h, _ := newTestModel(t)

	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	m = ticks(t, m, 7)

	if m.Ticks() != 8 {
		t.Errorf("ticks = %d, want 8", m.Ticks())
	}
	hist := m.History()
	if len(hist) != 8 {
		t.Fatalf("history len = %d, want 8", len(hist))
	}
	for i, v := range hist {
		if v != 30 {
			t.Errorf("history[%d] = %v, want 30", i, v)
		}
	}
	if h.reads != 8 || h.fullReads != 2 {
		t.Errorf("host reads = %d (full %d), want 8 (full 2)", h.reads, h.fullReads)
	}
	if len(m.snap.Processes) != 5 {
		t.Errorf("processes should survive partial reads, got %d", len(m.snap.Processes))
	}
	if m.Elapsed().Seconds() != 2 {
		t.Errorf("elapsed = %v, want 2s", m.Elapsed())
	}
}

func TestTickWithoutCPUData(t *testing.T) {
	m, s, _, _ := newTestModel(t)
	s.err = sysmetrics.ErrInsufficientData

	m = ticks(t, m, 3)
	if m.Ticks() != 3 {
		t.Errorf("ticks = %d, want 3", m.Ticks())
	}
	if len(m.History()) != 0 {
		t.Errorf("history len = %d, want 0", len(m.History()))
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 240, Height: 50})
	if !strings.Contains(m.View(), "No CPU data available") {
		t.Error("CPU pane should report missing data")
	}
}

func TestGenerateWithoutSelection(t *testing.T) {
	m, _, _, dir := newTestModel(t)
	m = ticks(t, m, 40)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.StatusText() != "No report is selected." {
		t.Errorf("status = %q", m.StatusText())
	}
	if files := reportFiles(t, dir); len(files) != 0 {
		t.Errorf("unexpected files: %v", files)
	}
}

func TestGenerateLongerThanRuntime(t *testing.T) {
	m, _, _, dir := newTestModel(t)
	m = ticks(t, m, 20)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.StatusText() != "Report duration is longer than runtime." {
		t.Errorf("status = %q", m.StatusText())
	}
	if files := reportFiles(t, dir); len(files) != 0 {
		t.Errorf("unexpected files: %v", files)
	}
}

func TestGenerateReport(t *testing.T) {
	m, _, _, dir := newTestModel(t)
	m = ticks(t, m, 44)

	// The shortest window is selected from the start.
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if !strings.HasPrefix(m.StatusText(), "Report generated: avg_cpu_report_") {
		t.Fatalf("status = %q", m.StatusText())
	}
	files := reportFiles(t, dir)
	if len(files) != 1 || !strings.HasPrefix(files[0], "avg_cpu_report_") {
		t.Fatalf("files = %v", files)
	}
	if !strings.Contains(m.StatusText(), files[0]) {
		t.Errorf("status %q does not name %s", m.StatusText(), files[0])
	}
}

func TestGenerateWriteFailure(t *testing.T) {
	s := &fakeSampler{perCore: []float64{10}}
	missing := filepath.Join(t.TempDir(), "missing")
	m := New(s, &fakeHost{}, report.NewReporter(missing, nil), Options{})
	defer m.Close()
	m = ticks(t, m, 40)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if !strings.HasPrefix(m.StatusText(), "Report failed: ") {
		t.Errorf("status = %q", m.StatusText())
	}
	if m.status.level != widgets.StatusCritical {
		t.Errorf("level = %d, want critical", m.status.level)
	}
}

func TestSelectionKeys(t *testing.T) {
	m, _, _, _ := newTestModel(t)

	steps := []struct {
		msg  tea.Msg
		want int // 0 means no selection
	}{
		{msg: nil, want: 10},
		{msg: runeKey('a'), want: 10},
		{msg: runeKey('d'), want: 30},
		{msg: tea.KeyMsg{Type: tea.KeyRight}, want: 60},
		{msg: tea.KeyMsg{Type: tea.KeyLeft}, want: 30},
		{msg: tea.KeyMsg{Type: tea.KeyEsc}, want: 0},
		{msg: runeKey('a'), want: 120},
	}
	for i, st := range steps {
		if st.msg != nil {
			m, _ = update(t, m, st.msg)
		}
		got, err := m.options.Selected()
		if st.want == 0 {
			if !errors.Is(err, report.ErrNoSelection) {
				t.Errorf("step %d: err = %v, want ErrNoSelection", i, err)
			}
			continue
		}
		if err != nil || got != st.want {
			t.Errorf("step %d: Selected() = %d, %v; want %d", i, got, err, st.want)
		}
	}
}

func TestProcessScrollClamps(t *testing.T) {
	m, _, _, _ := newTestModel(t)
	m = ticks(t, m, 1)

	for i := 0; i < 10; i++ {
		m, _ = update(t, m, runeKey('s'))
	}
	if m.procOffset != 4 {
		t.Errorf("offset after scrolling down = %d, want 4", m.procOffset)
	}
	for i := 0; i < 10; i++ {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	}
	if m.procOffset != 0 {
		t.Errorf("offset after scrolling up = %d, want 0", m.procOffset)
	}
}

func TestHelpToggle(t *testing.T) {
	m, _, _, _ := newTestModel(t)
	m, _ = update(t, m, runeKey('?'))
	if !m.help.ShowAll {
		t.Error("? should show full help")
	}
	m, _ = update(t, m, runeKey('?'))
	if m.help.ShowAll {
		t.Error("? should hide full help")
	}
}

func TestQuitKeys(t *testing.T) {
	m, _, _, _ := newTestModel(t)
	if _, cmd := m.Update(runeKey('q')); !isQuitCmd(cmd) {
		t.Error("q should quit")
	}
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC}); !isQuitCmd(cmd) {
		t.Error("ctrl+c should quit")
	}
}

func TestViewPanes(t *testing.T) {
	m, _, _, _ := newTestModel(t)
	m = ticks(t, m, 8)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 240, Height: 50})

	out := m.View()
	for _, want := range []string{
		"CPU Usage", "Average CPU: 30.00%",
		"Network", "[eth0]", "in: 2.50KB, out: 0.00KB",
		"Memory", "Total Memory: 16.00 GB",
		"Battery", "No battery found.",
		"Average CPU Usage Report", ">Last 10 seconds", "Last 120 seconds",
		"Report Status", "No report is generated.",
		"Disks", "Kind: ext4",
		"CPU History",
		"Processes", "[1]",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestViewTooSmall(t *testing.T) {
	m, _, _, _ := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 10})
	if !strings.HasPrefix(m.View(), "Terminal too small") {
		t.Error("small terminal should show a resize hint")
	}
}

func TestLongNamesAreClipped(t *testing.T) {
	m, _, h, _ := newTestModel(t)
	h.iface = "br-4f2c9a1e77d0b3c5e6f7"
	h.disk = "/dev/mapper/luks-0b6a7c3e-2f41-4d8a-9c55"
	m = ticks(t, m, 1)

	const width = 16
	tests := []struct {
		name string
		line string
		want string
	}{
		{name: "interface", line: m.networkLines(width)[0], want: "[br-4f2c9a1e7..."},
		{name: "disk", line: m.diskLines(width)[0], want: "Name: /dev/ma..."},
		{name: "short kind untouched", line: m.diskLines(width)[1], want: "Kind: ext4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.line != tt.want {
				t.Errorf("line = %q, want %q", tt.line, tt.want)
			}
		})
	}
}
