package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Box-drawing runes for pane borders.
const (
	boxTopLeft     = "╭"
	boxTopRight    = "╮"
	boxBottomLeft  = "╰"
	boxBottomRight = "╯"
	boxHorizontal  = "─"
	boxVertical    = "│"
)

// PaneConfig describes a bordered pane with its title set into the top edge.
type PaneConfig struct {
	Title string
	Lines []string
	// Width and Height are the outer size, borders included.
	Width   int
	Height  int
	Palette Palette
	// Borderless drops the frame but keeps the title line.
	Borderless bool
}

// RenderPane renders a fixed-size pane. Content lines are truncated to the
// inner width; missing lines are blank and extra lines are dropped.
func RenderPane(cfg PaneConfig) string {
	width := max(cfg.Width, 4)
	height := max(cfg.Height, 2)
	inner := width - 2
	rows := height - 2

	titleStyle := lipgloss.NewStyle().Foreground(cfg.Palette.Title).Bold(true)
	border := lipgloss.NewStyle().Foreground(cfg.Palette.Muted)
	clip := lipgloss.NewStyle().MaxWidth(inner)

	out := make([]string, 0, height)

	if cfg.Borderless {
		out = append(out, fit(clip.Render(titleStyle.Render(cfg.Title)), width))
		for i := 0; i < height-1; i++ {
			out = append(out, fit(lineAt(cfg.Lines, i, clip), width))
		}
		return strings.Join(out, "\n")
	}

	top := border.Render(boxTopLeft + boxHorizontal)
	used := 1
	if cfg.Title != "" && inner > 3 {
		title := clip.MaxWidth(inner - 3).Render(cfg.Title)
		top += " " + titleStyle.Render(title) + " "
		used += lipgloss.Width(title) + 2
	}
	if rest := inner - used; rest > 0 {
		top += border.Render(strings.Repeat(boxHorizontal, rest))
	}
	top += border.Render(boxTopRight)
	out = append(out, top)

	side := border.Render(boxVertical)
	for i := 0; i < rows; i++ {
		out = append(out, side+fit(lineAt(cfg.Lines, i, clip), inner)+side)
	}

	out = append(out, border.Render(boxBottomLeft+strings.Repeat(boxHorizontal, inner)+boxBottomRight))
	return strings.Join(out, "\n")
}

func lineAt(lines []string, i int, clip lipgloss.Style) string {
	if i >= len(lines) {
		return ""
	}
	return clip.Render(lines[i])
}

// fit right-pads s with spaces to exactly width visible cells.
func fit(s string, width int) string {
	if pad := width - lipgloss.Width(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}
