package tui

import (
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/sys-analyzer/display/widgets"
)

// ThemePreset defines a color scheme and layout switches for the dashboard.
type ThemePreset struct {
	Name        string
	Description string
	// Colors
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Danger     lipgloss.Color
	Muted      lipgloss.Color
	Background lipgloss.Color
	// Layout
	ShowBorders bool
	// CompactMode prints per-core values as text instead of gauges and
	// drops the chart caption.
	CompactMode bool
}

// Predefined theme presets.
var (
	// MonitoringTheme is the default dark theme.
	MonitoringTheme = ThemePreset{
		Name:        "monitoring",
		Description: "Dark theme for status monitoring",
		Primary:     lipgloss.Color("#7C3AED"),
		Secondary:   lipgloss.Color("#06B6D4"),
		Success:     lipgloss.Color("#22C55E"),
		Warning:     lipgloss.Color("#EAB308"),
		Danger:      lipgloss.Color("#EF4444"),
		Muted:       lipgloss.Color("#6B7280"),
		Background:  lipgloss.Color("#1E1B2E"),
		ShowBorders: true,
	}

	// MinimalTheme is a borderless, text-only theme.
	MinimalTheme = ThemePreset{
		Name:        "minimal",
		Description: "Clean minimal theme",
		Primary:     lipgloss.Color("#8B5CF6"),
		Secondary:   lipgloss.Color("#67E8F9"),
		Success:     lipgloss.Color("#4ADE80"),
		Warning:     lipgloss.Color("#FCD34D"),
		Danger:      lipgloss.Color("#F87171"),
		Muted:       lipgloss.Color("#9CA3AF"),
		Background:  lipgloss.Color("#0F172A"),
		ShowBorders: false,
		CompactMode: true,
	}

	// FullTheme is a brighter theme with every visual feature enabled.
	FullTheme = ThemePreset{
		Name:        "full",
		Description: "Rich theme with all features",
		Primary:     lipgloss.Color("#A78BFA"),
		Secondary:   lipgloss.Color("#22D3EE"),
		Success:     lipgloss.Color("#34D399"),
		Warning:     lipgloss.Color("#FBBF24"),
		Danger:      lipgloss.Color("#FB7185"),
		Muted:       lipgloss.Color("#D1D5DB"),
		Background:  lipgloss.Color("#1E293B"),
		ShowBorders: true,
	}
)

var allPresets = []ThemePreset{MonitoringTheme, MinimalTheme, FullTheme}

// GetThemePreset returns the preset with the given name.
// Unknown names return MonitoringTheme.
func GetThemePreset(name string) ThemePreset {
	for _, p := range allPresets {
		if p.Name == name {
			return p
		}
	}
	return MonitoringTheme
}

// ThemeNames lists the preset names in display order.
func ThemeNames() []string {
	names := make([]string, len(allPresets))
	for i, p := range allPresets {
		names[i] = p.Name
	}
	return names
}

// Palette maps the preset onto widget colors.
func (t ThemePreset) Palette() widgets.Palette {
	return widgets.Palette{
		Title:   t.Secondary,
		Accent:  t.Primary,
		OK:      t.Success,
		Warning: t.Warning,
		Danger:  t.Danger,
		Muted:   t.Muted,
	}
}
