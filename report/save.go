package report

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// Save writes doc into dir under doc.Filename() and returns the final path.
//
// The document is rendered in memory first, written to a temp file in the
// same directory, and renamed into place, so an interrupted or failed write
// never leaves a partial report behind. A report generated in the same
// second as an existing one replaces it. Every failure wraps ErrIOFailure.
func Save(dir string, doc Document) (string, error) {
	if dir == "" {
		dir = "."
	}

	var buf bytes.Buffer
	if err := doc.WriteHTML(&buf); err != nil {
		return "", fmt.Errorf("report: render: %w: %w", ErrIOFailure, err)
	}

	name := doc.Filename()
	path := filepath.Join(dir, name)

	tmp, err := os.CreateTemp(dir, ".tmp-"+name+"-*")
	if err != nil {
		return "", fmt.Errorf("report: create temp for %s: %w: %w", name, ErrIOFailure, err)
	}
	tmpName := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if err := tmp.Chmod(0o644); err != nil {
		return "", fmt.Errorf("report: chmod temp for %s: %w: %w", name, ErrIOFailure, err)
	}
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		return "", fmt.Errorf("report: write %s: %w: %w", name, ErrIOFailure, err)
	}
	if err := tmp.Sync(); err != nil {
		return "", fmt.Errorf("report: sync %s: %w: %w", name, ErrIOFailure, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("report: close %s: %w: %w", name, ErrIOFailure, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return "", fmt.Errorf("report: rename %s: %w: %w", name, ErrIOFailure, err)
	}

	success = true
	return path, nil
}
