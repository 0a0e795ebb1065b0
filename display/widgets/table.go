package widgets

import (
	"strings"

	"gitlab.com/tinyland/lab/sys-analyzer/internal/format"
)

// Alignment controls text alignment within a table column.
type Alignment int

const (
	// AlignLeft aligns text to the left (default).
	AlignLeft Alignment = iota
	// AlignRight aligns text to the right.
	AlignRight
)

// Column defines a single table column.
type Column struct {
	Title string
	// Width is the fixed character width. If 0, it is sized to content.
	Width int
	Align Alignment
}

// RenderTable returns the header line followed by one line per row. Cells
// wider than their column are cut with an ellipsis.
func RenderTable(cols []Column, rows [][]string, sep string) []string {
	if len(cols) == 0 {
		return nil
	}
	if sep == "" {
		sep = " "
	}

	widths := columnWidths(cols, rows)
	lines := make([]string, 0, len(rows)+1)

	cells := make([]string, len(cols))
	for i, c := range cols {
		cells[i] = padCell(c.Title, widths[i], c.Align)
	}
	lines = append(lines, strings.TrimRight(strings.Join(cells, sep), " "))

	for _, row := range rows {
		cells := make([]string, len(cols))
		for i, c := range cols {
			var text string
			if i < len(row) {
				text = row[i]
			}
			cells[i] = padCell(text, widths[i], c.Align)
		}
		lines = append(lines, strings.TrimRight(strings.Join(cells, sep), " "))
	}
	return lines
}

func columnWidths(cols []Column, rows [][]string) []int {
	widths := make([]int, len(cols))
	for i, c := range cols {
		if c.Width > 0 {
			widths[i] = c.Width
			continue
		}
		w := len([]rune(c.Title))
		for _, row := range rows {
			if i < len(row) {
				w = max(w, len([]rune(row[i])))
			}
		}
		widths[i] = max(w, 1)
	}
	return widths
}

func padCell(s string, width int, align Alignment) string {
	r := []rune(s)
	if len(r) > width {
		if width <= 1 {
			return string(r[:width])
		}
		return string(r[:width-1]) + "…"
	}
	if align == AlignRight {
		return strings.Repeat(" ", width-len(r)) + s
	}
	return format.PadRight(s, width)
}
