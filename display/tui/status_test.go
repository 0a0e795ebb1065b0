package tui

import (
	"fmt"
	"io/fs"
	"strings"
	"testing"

	"gitlab.com/tinyland/lab/sys-analyzer/collectors/sysmetrics"
	"gitlab.com/tinyland/lab/sys-analyzer/display/widgets"
	"gitlab.com/tinyland/lab/sys-analyzer/history"
	"gitlab.com/tinyland/lab/sys-analyzer/report"
)

func TestStatusForError(t *testing.T) {
	pathErr := &fs.PathError{Op: "open", Path: "/ro/x.html", Err: fs.ErrPermission}

	tests := []struct {
		name  string
		err   error
		level widgets.StatusLevel
		text  string
	}{
		{"no selection", report.ErrNoSelection, widgets.StatusWarning, "No report is selected."},
		{"too large", fmt.Errorf("history: 30s: %w", history.ErrWindowTooLarge), widgets.StatusWarning, "Report duration is longer than runtime."},
		{"no cpu", sysmetrics.ErrInsufficientData, widgets.StatusWarning, "No CPU data available"},
		{"io failure", fmt.Errorf("report: create: %w: %w", report.ErrIOFailure, pathErr), widgets.StatusCritical, "Report failed: open /ro/x.html: permission denied"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := statusForError(tt.err)
			if got.level != tt.level {
				t.Errorf("level = %d, want %d", got.level, tt.level)
			}
			if got.text != tt.text {
				t.Errorf("text = %q, want %q", got.text, tt.text)
			}
		})
	}
}

func TestGeneratedStatus(t *testing.T) {
	got := generatedStatus("/tmp/out/avg_cpu_report_10-00-00.html")
	if got.level != widgets.StatusOK || !strings.HasSuffix(got.text, "avg_cpu_report_10-00-00.html") || strings.Contains(got.text, "/tmp") {
		t.Errorf("status = %+v", got)
	}
}
