package tui

// LayoutSize represents a responsive breakpoint for terminal width.
type LayoutSize int

const (
	// LayoutCompact is used for terminals narrower than 60 characters. The
	// dashboard does not fit and shows a resize hint instead.
	LayoutCompact LayoutSize = iota
	// LayoutNormal is used for terminals between 60 and 160 characters wide.
	LayoutNormal
	// LayoutWide is used for terminals wider than 160 characters. Per-core
	// values get gauges.
	LayoutWide
)

// Minimum terminal size for the dashboard.
const (
	minWidth  = 60
	minHeight = 16
)

// DetectLayout returns the appropriate LayoutSize for the given terminal width.
func DetectLayout(width int) LayoutSize {
	switch {
	case width < minWidth:
		return LayoutCompact
	case width <= 160:
		return LayoutNormal
	default:
		return LayoutWide
	}
}

// rect is a pane's outer size in cells.
type rect struct {
	W, H int
}

// dashboardLayout holds the size of every pane. Columns are, left to
// right: CPU; network, memory and battery; report options, report status
// and disks; CPU history chart and processes.
type dashboardLayout struct {
	Size LayoutSize

	CPU rect

	Network rect
	Memory  rect
	Battery rect

	Options rect
	Status  rect
	Disks   rect

	Chart     rect
	Processes rect
}

// Split ratios, in percent.
var (
	columnSplit = []int{10, 25, 20, 45}
	infoSplit   = []int{41, 26, 33}
	reportSplit = []int{30, 15, 55}
	detailSplit = []int{40, 60}
)

// computeLayout sizes every pane for a body of width x height cells. It
// reports false when the body is below the minimum size.
func computeLayout(width, height int) (dashboardLayout, bool) {
	size := DetectLayout(width)
	if size == LayoutCompact || height < minHeight {
		return dashboardLayout{Size: LayoutCompact}, false
	}

	cols := splitPercent(width, columnSplit)
	info := splitPercent(height, infoSplit)
	rep := splitPercent(height, reportSplit)
	detail := splitPercent(height, detailSplit)

	return dashboardLayout{
		Size:      size,
		CPU:       rect{cols[0], height},
		Network:   rect{cols[1], info[0]},
		Memory:    rect{cols[1], info[1]},
		Battery:   rect{cols[1], info[2]},
		Options:   rect{cols[2], rep[0]},
		Status:    rect{cols[2], rep[1]},
		Disks:     rect{cols[2], rep[2]},
		Chart:     rect{cols[3], detail[0]},
		Processes: rect{cols[3], detail[1]},
	}, true
}

// splitPercent divides total by the given percentages. The last part takes
// the rounding remainder so the parts always sum to total.
func splitPercent(total int, pcts []int) []int {
	parts := make([]int, len(pcts))
	used := 0
	for i, p := range pcts {
		if i == len(pcts)-1 {
			parts[i] = total - used
			break
		}
		parts[i] = total * p / 100
		used += parts[i]
	}
	return parts
}
