package report

import (
	"io"
	"log/slog"
	"time"

	"gitlab.com/tinyland/lab/sys-analyzer/history"
)

// Reporter runs the report pipeline: validate the window against elapsed
// runtime, downsample the history, render, and save.
type Reporter struct {
	logger *slog.Logger

	// dir is where reports are written. Empty means the working directory.
	dir string

	// now is overridable for tests.
	now func() time.Time
}

// Result describes a written report.
type Result struct {
	Path     string
	Seconds  int
	Document Document
}

// NewReporter creates a Reporter writing into dir.
// If logger is nil, a no-op logger is used.
func NewReporter(dir string, logger *slog.Logger) *Reporter {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Reporter{
		logger: logger,
		dir:    dir,
		now:    time.Now,
	}
}

// Generate writes a report covering the newest seconds of snapshot.
// tickCount is the number of ticks since the run started. When the window is
// longer than the elapsed runtime the history is not read and no file is
// created; the error wraps history.ErrWindowTooLarge.
func (r *Reporter) Generate(snapshot []float64, tickCount, seconds int) (Result, error) {
	if err := history.CheckWindow(seconds, tickCount, history.TicksPerSecond); err != nil {
		r.logger.Warn("report rejected", "seconds", seconds, "ticks", tickCount, "error", err)
		return Result{}, err
	}

	series, err := history.Window(snapshot, seconds, history.TicksPerSecond)
	if err != nil {
		r.logger.Warn("report window failed", "seconds", seconds, "error", err)
		return Result{}, err
	}

	doc := Render(series, r.now())
	path, err := Save(r.dir, doc)
	if err != nil {
		r.logger.Warn("report write failed", "file", doc.Filename(), "error", err)
		return Result{}, err
	}

	r.logger.Info("report generated", "path", path, "seconds", seconds, "tables", len(doc.Tables))
	return Result{Path: path, Seconds: seconds, Document: doc}, nil
}
