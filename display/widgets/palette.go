// Package widgets renders the small text components the dashboard panes
// are built from: titled panes, gauges, sparklines, tables, status lines
// and the CPU history chart.
package widgets

import "github.com/charmbracelet/lipgloss"

// Palette is the set of colors a widget may use. The TUI derives it from
// the active theme preset.
type Palette struct {
	Title   lipgloss.Color
	Accent  lipgloss.Color
	OK      lipgloss.Color
	Warning lipgloss.Color
	Danger  lipgloss.Color
	Muted   lipgloss.Color
}

// DefaultPalette matches the monitoring theme.
var DefaultPalette = Palette{
	Title:   lipgloss.Color("#06B6D4"),
	Accent:  lipgloss.Color("#7C3AED"),
	OK:      lipgloss.Color("#22C55E"),
	Warning: lipgloss.Color("#EAB308"),
	Danger:  lipgloss.Color("#EF4444"),
	Muted:   lipgloss.Color("#6B7280"),
}

// Load thresholds, in percent.
const (
	ThresholdWarning = 70.0
	ThresholdDanger  = 90.0
)

// LoadColor picks a color for a utilization percentage.
func (p Palette) LoadColor(percent float64) lipgloss.Color {
	switch {
	case percent >= ThresholdDanger:
		return p.Danger
	case percent >= ThresholdWarning:
		return p.Warning
	default:
		return p.OK
	}
}
