// Package report renders a per-second CPU series into a paginated HTML
// document and persists it under a time-stamped filename.
package report

import (
	"errors"
	"fmt"
	"time"
)

// RowsPerTable is the maximum number of data rows in one table.
const RowsPerTable = 20

// secondsPerDay bounds the clock arithmetic used for row labels.
const secondsPerDay = 24 * 60 * 60

var (
	// ErrNoSelection means a report was requested with no window selected.
	ErrNoSelection = errors.New("no report is selected")

	// ErrIOFailure means the report file could not be created or written.
	ErrIOFailure = errors.New("report could not be written")
)

// Row is one second of the report.
type Row struct {
	// Clock is the wall-clock label, HH:MM:SS.
	Clock string
	// Percent is the average CPU utilization for that second.
	Percent float64
}

// Table is one page of at most RowsPerTable rows.
type Table struct {
	Rows []Row
}

// Document is a fully rendered report, ready to be written.
type Document struct {
	Generated time.Time
	Tables    []Table
}

// Render builds the report for series, oldest second first. The last entry
// is labelled with the generation time and each earlier entry one second
// before the next.
func Render(series []float64, generated time.Time) Document {
	doc := Document{Generated: generated}
	current := Table{}

	// Rows stay oldest first: the final row carries the generation time.
	for i, pct := range series {
		current.Rows = append(current.Rows, Row{
			Clock:   ClockBefore(generated, len(series)-(i+1)),
			Percent: pct,
		})
		if (i+1)%RowsPerTable == 0 && i+1 < len(series) {
			doc.Tables = append(doc.Tables, current)
			current = Table{}
		}
	}

	doc.Tables = append(doc.Tables, current)
	return doc
}

// Rows returns every row across all tables in order.
func (d Document) Rows() []Row {
	var rows []Row
	for _, t := range d.Tables {
		rows = append(rows, t.Rows...)
	}
	return rows
}

// Filename is the report's file name, unique to the second it was generated.
func (d Document) Filename() string {
	return fmt.Sprintf("avg_cpu_report_%s.html", d.Generated.Format("15-04-05"))
}

// ClockBefore formats the time of day seconds before t as HH:MM:SS,
// wrapping past midnight.
func ClockBefore(t time.Time, seconds int) string {
	of := t.Hour()*3600 + t.Minute()*60 + t.Second()
	total := ((of-seconds)%secondsPerDay + secondsPerDay) % secondsPerDay
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}
