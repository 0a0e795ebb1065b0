package tui

import "gitlab.com/tinyland/lab/sys-analyzer/report"

// WindowOptions are the report durations offered, in seconds.
var WindowOptions = []int{10, 30, 60, 120}

// reportOptions is the selectable list of report windows. It starts on the
// shortest window; selected is -1 only after Clear.
type reportOptions struct {
	seconds  []int
	selected int
}

func newReportOptions() reportOptions {
	return reportOptions{seconds: WindowOptions, selected: 0}
}

// Prev moves the selection one entry up. With no selection it selects the
// last entry; at the first entry it stays put.
func (o *reportOptions) Prev() {
	switch {
	case o.selected < 0:
		o.selected = len(o.seconds) - 1
	case o.selected > 0:
		o.selected--
	}
}

// Next moves the selection one entry down. With no selection it selects the
// first entry; at the last entry it stays put.
func (o *reportOptions) Next() {
	switch {
	case o.selected < 0:
		o.selected = 0
	case o.selected < len(o.seconds)-1:
		o.selected++
	}
}

// Select picks entry i. Out of range indices are ignored.
func (o *reportOptions) Select(i int) {
	if i >= 0 && i < len(o.seconds) {
		o.selected = i
	}
}

// Clear drops the selection.
func (o *reportOptions) Clear() { o.selected = -1 }

// Selected returns the chosen window in seconds, or report.ErrNoSelection.
func (o reportOptions) Selected() (int, error) {
	if o.selected < 0 || o.selected >= len(o.seconds) {
		return 0, report.ErrNoSelection
	}
	return o.seconds[o.selected], nil
}
