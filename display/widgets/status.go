package widgets

import "github.com/charmbracelet/lipgloss"

// StatusLevel is the severity of a one-line status message.
type StatusLevel int

const (
	// StatusIdle is the neutral initial state.
	StatusIdle StatusLevel = iota
	// StatusOK reports success.
	StatusOK
	// StatusWarning reports a rejected request the user can correct.
	StatusWarning
	// StatusCritical reports a failure.
	StatusCritical
)

var statusIcons = map[StatusLevel]string{
	StatusIdle:     "○", // ○
	StatusOK:       "●", // ●
	StatusWarning:  "●",
	StatusCritical: "●",
}

func (l StatusLevel) color(p Palette) lipgloss.Color {
	switch l {
	case StatusOK:
		return p.OK
	case StatusWarning:
		return p.Warning
	case StatusCritical:
		return p.Danger
	default:
		return p.Muted
	}
}

// RenderStatus renders a colored dot followed by text.
func RenderStatus(level StatusLevel, text string, p Palette) string {
	icon := lipgloss.NewStyle().Foreground(level.color(p)).Render(statusIcons[level])
	if text == "" {
		return icon
	}
	return icon + " " + text
}
