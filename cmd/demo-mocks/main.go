// demo-mocks renders a single sys-analyzer dashboard frame from synthetic
// host data and prints it to stdout. It needs no terminal, so it is handy
// for screenshots and for checking layouts at a given size.
package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"gitlab.com/tinyland/lab/sys-analyzer/collectors/sysmetrics"
	"gitlab.com/tinyland/lab/sys-analyzer/display/tui"
	"gitlab.com/tinyland/lab/sys-analyzer/report"
)

func main() {
	var (
		width, height int
		cores, ticks  int
		theme         string
		color         bool
	)

	cmd := &cobra.Command{
		Use:          "demo-mocks",
		Short:        "Print one dashboard frame built from mock data",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !color {
				lipgloss.SetColorProfile(termenv.Ascii)
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderFrame(width, height, cores, ticks, theme))
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVar(&width, "width", 200, "Terminal width")
	f.IntVar(&height, "height", 50, "Terminal height")
	f.IntVar(&cores, "cores", 8, "Number of mock CPU cores")
	f.IntVar(&ticks, "ticks", 240, "Ticks to simulate before rendering (4 per second)")
	f.StringVar(&theme, "theme", "monitoring", "Theme preset ("+strings.Join(tui.ThemeNames(), "|")+")")
	f.BoolVar(&color, "color", false, "Keep ANSI colors in the output")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// renderFrame builds a dashboard from mock collectors, feeds it a window
// size and ticks, and returns the resulting view. The model is closed
// before returning.
func renderFrame(width, height, cores, ticks int, theme string) string {
	m := tui.New(
		&sysmetrics.MockSampler{Cores: cores},
		sysmetrics.MockHostReader{},
		report.NewReporter(os.TempDir(), nil),
		tui.Options{Theme: theme},
	)
	defer m.Close()

	var model tea.Model = m
	model, _ = model.Update(tea.WindowSizeMsg{Width: width, Height: height})
	for i := 0; i < ticks; i++ {
		model, _ = model.Update(tui.TickMsg{})
	}
	return model.View()
}
