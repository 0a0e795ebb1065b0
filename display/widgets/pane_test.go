package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRenderPaneSize(t *testing.T) {
	out := RenderPane(PaneConfig{
		Title:   "Memory",
		Lines:   []string{"Free Memory: 1.00 GB", "a line that is far too long to fit inside this pane"},
		Width:   24,
		Height:  5,
		Palette: DefaultPalette,
	})

	lines := strings.Split(out, "\n")
	if len(lines) != 5 {
		t.Fatalf("height = %d, want 5", len(lines))
	}
	for i, l := range lines {
		if w := lipgloss.Width(l); w != 24 {
			t.Errorf("line %d width = %d, want 24: %q", i, w, l)
		}
	}
	if !strings.Contains(lines[0], "Memory") {
		t.Errorf("title missing from top border: %q", lines[0])
	}
	if !strings.HasPrefix(lines[4], boxBottomLeft) {
		t.Errorf("bottom border = %q", lines[4])
	}
}

func TestRenderPaneDropsExtraLines(t *testing.T) {
	out := RenderPane(PaneConfig{Title: "CPU", Lines: []string{"1", "2", "3", "4"}, Width: 10, Height: 4})
	if strings.Contains(out, "3") {
		t.Errorf("line beyond height rendered:\n%s", out)
	}
}

func TestRenderPaneBorderless(t *testing.T) {
	out := RenderPane(PaneConfig{Title: "Disks", Lines: []string{"Name: sda"}, Width: 12, Height: 3, Borderless: true})
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("height = %d, want 3", len(lines))
	}
	if strings.Contains(out, boxVertical) {
		t.Error("borderless pane drew a border")
	}
	if !strings.HasPrefix(lines[1], "Name: sda") {
		t.Errorf("content line = %q", lines[1])
	}
}
