package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/sys-analyzer/collectors/sysmetrics"
	"gitlab.com/tinyland/lab/sys-analyzer/display/widgets"
	"gitlab.com/tinyland/lab/sys-analyzer/internal/format"
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	footer := m.renderFooter()
	bodyHeight := m.height - lipgloss.Height(footer)

	l, ok := computeLayout(m.width, bodyHeight)
	if !ok {
		return fmt.Sprintf("Terminal too small: need at least %dx%d.\n\n%s", minWidth, minHeight+1, footer)
	}

	info := lipgloss.JoinVertical(lipgloss.Left,
		m.pane("Network", m.networkLines(l.Network.W-2), l.Network),
		m.pane("Memory", m.memoryLines(), l.Memory),
		m.pane("Battery", m.batteryLines(), l.Battery),
	)
	rep := lipgloss.JoinVertical(lipgloss.Left,
		m.pane("Average CPU Usage Report", m.optionLines(), l.Options),
		m.pane("Report Status", m.statusLines(l.Status.W-2), l.Status),
		m.pane("Disks", m.diskLines(l.Disks.W-2), l.Disks),
	)
	detail := lipgloss.JoinVertical(lipgloss.Left,
		m.pane("CPU History", m.chartLines(l.Chart), l.Chart),
		m.pane("Processes", m.processLines(l.Processes), l.Processes),
	)
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.pane("CPU Usage", m.cpuLines(l), l.CPU),
		info, rep, detail,
	)

	return m.zones.Scan(lipgloss.JoinVertical(lipgloss.Left, body, footer))
}

func (m Model) pane(title string, lines []string, r rect) string {
	return widgets.RenderPane(widgets.PaneConfig{
		Title:      title,
		Lines:      lines,
		Width:      r.W,
		Height:     r.H,
		Palette:    m.palette,
		Borderless: !m.theme.ShowBorders,
	})
}

func (m Model) cpuLines(l dashboardLayout) []string {
	if m.cpuErr != nil || len(m.cpu.PerCore) == 0 {
		return []string{statusNoCPU}
	}

	inner := l.CPU.W - 2
	lines := []string{
		fmt.Sprintf("Average CPU: %s", format.Percent(m.cpu.Average)),
		widgets.RenderSparkline(m.history.Tail(inner), inner, m.palette.LoadColor(m.cpu.Average)),
		"",
	}

	labelWidth := len(fmt.Sprintf("CPU %d", len(m.cpu.PerCore)-1))
	barWidth := inner - labelWidth - 9
	if l.Size == LayoutWide && !m.theme.CompactMode && barWidth >= 4 {
		return append(lines, widgets.RenderCoreGauges(m.cpu.PerCore, barWidth, m.palette)...)
	}
	for i, v := range m.cpu.PerCore {
		lines = append(lines, fmt.Sprintf("CPU %d: %s", i, format.Percent(v)))
	}
	return lines
}

// networkLines clips interface names to width; traffic lines are left to the
// pane, which cuts at its border.
func (m Model) networkLines(width int) []string {
	lines := make([]string, 0, len(m.snap.Networks)*3)
	for _, n := range m.snap.Networks {
		lines = append(lines,
			format.TruncateWithEllipsis("["+n.Name+"]", width),
			fmt.Sprintf("in: %s, out: %s", format.KiloBytes(n.Received), format.KiloBytes(n.Transmitted)),
			"",
		)
	}
	return lines
}

func (m Model) memoryLines() []string {
	mem := m.snap.Memory
	return []string{
		"Free Memory: " + format.GigaBytes(mem.Free),
		"Used Memory: " + format.GigaBytes(mem.Used),
		"Available Memory: " + format.GigaBytes(mem.Available),
		"Total Memory: " + format.GigaBytes(mem.Total),
	}
}

func (m Model) batteryLines() []string {
	if len(m.snap.Batteries) == 0 {
		return []string{"No battery found."}
	}
	var lines []string
	for _, b := range m.snap.Batteries {
		lines = append(lines, fmt.Sprintf("Battery #%d", b.Index))
		if b.Err != nil {
			lines = append(lines, "State: "+b.Err.Error(), "")
			continue
		}
		lines = append(lines,
			"Vendor: "+b.Vendor,
			"Model: "+b.Model,
			"State: "+b.State,
			"Percentage: "+format.Percent(b.Percent),
			"",
		)
	}
	return lines
}

func (m Model) optionLines() []string {
	sel := lipgloss.NewStyle().Foreground(m.palette.Warning)
	lines := make([]string, len(m.options.seconds))
	for i, s := range m.options.seconds {
		text := fmt.Sprintf("Last %d seconds", s)
		if i == m.options.selected {
			text = sel.Render(">" + text)
		} else {
			text = " " + text
		}
		lines[i] = m.zones.Mark(optionZoneID(i), text)
	}
	return lines
}

func optionZoneID(i int) string {
	return fmt.Sprintf("report-option-%d", i)
}

func (m Model) statusLines(width int) []string {
	text := widgets.RenderStatus(m.status.level, m.status.text, m.palette)
	if width <= 0 {
		return []string{text}
	}
	return strings.Split(lipgloss.NewStyle().Width(width).Render(text), "\n")
}

func (m Model) diskLines(width int) []string {
	var lines []string
	for _, d := range m.snap.Disks {
		lines = append(lines,
			format.TruncateWithEllipsis("Name: "+d.Name, width),
			format.TruncateWithEllipsis("Kind: "+d.Kind, width),
			"Available Space: "+format.GigaBytes(d.Available),
			"Total Space: "+format.GigaBytes(d.Total),
			"",
		)
	}
	return lines
}

func (m Model) chartLines(r rect) []string {
	caption := ""
	if !m.theme.CompactMode && len(m.chart) > 1 {
		caption = fmt.Sprintf("average CPU %%, last %ds", len(m.chart))
	}
	return strings.Split(widgets.RenderChart(m.chart, r.W-2, r.H-2, caption), "\n")
}

// Fixed process table column widths.
const (
	pidWidth  = 9
	ioWidth   = 13
	nameWidth = 8
)

func (m Model) processLines(r rect) []string {
	inner := r.W - 2
	rows := make([][]string, len(m.snap.Processes))
	for i, p := range m.snap.Processes {
		rows[i] = processRow(p)
	}
	cols := []widgets.Column{
		{Title: "PID", Width: pidWidth, Align: widgets.AlignRight},
		{Title: "Name", Width: max(inner-pidWidth-2*ioWidth-3, nameWidth)},
		{Title: "Total Read", Width: ioWidth, Align: widgets.AlignRight},
		{Title: "Total Written", Width: ioWidth, Align: widgets.AlignRight},
	}
	table := widgets.RenderTable(cols, rows, " ")
	if len(table) == 0 {
		return nil
	}

	visible := max(r.H-3, 1)
	vp := viewport.New(inner, visible)
	vp.SetContent(strings.Join(table[1:], "\n"))
	vp.SetYOffset(m.procOffset)

	return append([]string{table[0]}, strings.Split(vp.View(), "\n")...)
}

func processRow(p sysmetrics.ProcessSample) []string {
	return []string{
		fmt.Sprintf("[%d]", p.PID),
		p.Name,
		format.MegaBytes(p.ReadBytes),
		format.MegaBytes(p.WrittenBytes),
	}
}

func (m Model) renderFooter() string {
	muted := lipgloss.NewStyle().Foreground(m.palette.Muted)
	stats := fmt.Sprintf("up %s | running %s | %d samples",
		format.FormatDuration(m.snap.Uptime),
		format.Stopwatch(m.Elapsed()),
		m.history.Len(),
	)
	helpView := m.help.View(m.keys)

	if m.help.ShowAll {
		return lipgloss.JoinVertical(lipgloss.Left, helpView, muted.Render(stats))
	}
	gap := m.width - lipgloss.Width(helpView) - lipgloss.Width(stats)
	if gap < 1 {
		return lipgloss.JoinVertical(lipgloss.Left, helpView, muted.Render(stats))
	}
	return helpView + strings.Repeat(" ", gap) + muted.Render(stats)
}
