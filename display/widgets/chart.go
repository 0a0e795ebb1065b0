package widgets

import (
	"strings"

	"github.com/guptarohit/asciigraph"
)

// chartAxisWidth is the space asciigraph uses for the Y labels and axis.
const chartAxisWidth = 5

// RenderChart plots a per-second CPU series on a fixed 0..100 axis, fitted
// into width by height cells including axis and caption. It returns a
// placeholder while fewer than two points are available.
func RenderChart(series []float64, width, height int, caption string) string {
	if len(series) < 2 {
		return "collecting samples..."
	}

	plotHeight := height - 1
	if caption != "" {
		plotHeight--
	}
	if plotHeight < 2 {
		plotHeight = 2
	}
	plotWidth := width - chartAxisWidth
	if plotWidth < len(series) {
		series = series[len(series)-max(plotWidth, 2):]
	}

	opts := []asciigraph.Option{
		asciigraph.Height(plotHeight),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(100),
		asciigraph.Precision(0),
	}
	if caption != "" {
		opts = append(opts, asciigraph.Caption(caption))
	}
	return strings.TrimRight(asciigraph.Plot(series, opts...), "\n")
}
