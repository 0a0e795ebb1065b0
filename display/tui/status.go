package tui

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gitlab.com/tinyland/lab/sys-analyzer/collectors/sysmetrics"
	"gitlab.com/tinyland/lab/sys-analyzer/display/widgets"
	"gitlab.com/tinyland/lab/sys-analyzer/history"
	"gitlab.com/tinyland/lab/sys-analyzer/report"
)

// Status messages shown in the report status pane.
const (
	statusIdle          = "No report is generated."
	statusNoSelection   = "No report is selected."
	statusTooLarge      = "Report duration is longer than runtime."
	statusNoCPU         = "No CPU data available"
	statusFailedPrefix  = "Report failed: "
	statusCreatedPrefix = "Report generated: "
)

// reportStatus is the one-line outcome of the last report request.
type reportStatus struct {
	level widgets.StatusLevel
	text  string
}

func idleStatus() reportStatus {
	return reportStatus{level: widgets.StatusIdle, text: statusIdle}
}

func generatedStatus(path string) reportStatus {
	return reportStatus{level: widgets.StatusOK, text: statusCreatedPrefix + filepath.Base(path)}
}

// statusForError maps a report pipeline error onto the status line.
func statusForError(err error) reportStatus {
	switch {
	case errors.Is(err, report.ErrNoSelection):
		return reportStatus{level: widgets.StatusWarning, text: statusNoSelection}
	case errors.Is(err, history.ErrWindowTooLarge):
		return reportStatus{level: widgets.StatusWarning, text: statusTooLarge}
	case errors.Is(err, sysmetrics.ErrInsufficientData):
		return reportStatus{level: widgets.StatusWarning, text: statusNoCPU}
	default:
		return reportStatus{level: widgets.StatusCritical, text: statusFailedPrefix + failureCause(err)}
	}
}

// failureCause prefers the OS-level error over the pipeline's wrapping.
func failureCause(err error) string {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Error()
	}
	var linkErr *os.LinkError
	if errors.As(err, &linkErr) {
		return linkErr.Error()
	}
	return err.Error()
}
