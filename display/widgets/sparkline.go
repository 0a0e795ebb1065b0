package widgets

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// sparkBlocks are ordered from lowest to highest.
var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// RenderSparkline renders the newest width points of data on a fixed
// 0..100 scale, most recent on the right. Shorter data is left-padded.
func RenderSparkline(data []float64, width int, color lipgloss.Color) string {
	if width <= 0 || len(data) == 0 {
		return ""
	}
	if len(data) > width {
		data = data[len(data)-width:]
	}

	runes := make([]rune, 0, len(data))
	top := float64(len(sparkBlocks) - 1)
	for _, v := range data {
		n := math.Max(0, math.Min(100, v)) / 100
		runes = append(runes, sparkBlocks[int(math.Round(n*top))])
	}

	out := strings.Repeat(" ", width-len(data)) + string(runes)
	if color != "" {
		out = lipgloss.NewStyle().Foreground(color).Render(out)
	}
	return out
}
