package widgets

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// GaugeConfig controls a horizontal bar gauge.
type GaugeConfig struct {
	// Width is the bar width in cells, excluding label and percentage.
	Width int
	// Percent is the value to show. The bar is clamped to 0..100 but the
	// printed number is not.
	Percent float64
	// Label is optional text shown to the left of the bar.
	Label string
	// ShowPercent appends "NN.NN%" after the bar.
	ShowPercent bool
	Palette     Palette
}

const (
	gaugeFilled = "█"
	gaugeEmpty  = "░"
)

// RenderGauge renders "[Label ]████░░░░[ NN.NN%]".
func RenderGauge(cfg GaugeConfig) string {
	width := cfg.Width
	if width <= 0 {
		width = 10
	}
	clamped := math.Max(0, math.Min(100, cfg.Percent))
	filled := int(math.Round(clamped / 100 * float64(width)))

	var sb strings.Builder
	if cfg.Label != "" {
		sb.WriteString(cfg.Label)
		sb.WriteString(" ")
	}
	style := lipgloss.NewStyle().Foreground(cfg.Palette.LoadColor(clamped))
	sb.WriteString(style.Render(strings.Repeat(gaugeFilled, filled)))
	sb.WriteString(strings.Repeat(gaugeEmpty, width-filled))
	if cfg.ShowPercent {
		sb.WriteString(fmt.Sprintf(" %6.2f%%", cfg.Percent))
	}
	return sb.String()
}

// RenderCoreGauges renders one gauge line per core, labelled "CPU i".
// The label column is sized to the widest index so bars line up.
func RenderCoreGauges(perCore []float64, barWidth int, p Palette) []string {
	labelWidth := len(fmt.Sprintf("CPU %d", len(perCore)-1))
	lines := make([]string, 0, len(perCore))
	for i, v := range perCore {
		label := fmt.Sprintf("%-*s", labelWidth, fmt.Sprintf("CPU %d", i))
		lines = append(lines, RenderGauge(GaugeConfig{
			Width:       barWidth,
			Percent:     v,
			Label:       label,
			ShowPercent: true,
			Palette:     p,
		}))
	}
	return lines
}
