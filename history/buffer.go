// Package history keeps the rolling per-tick CPU history for sys-analyzer
// and turns the most recent ticks into a per-second series for reports.
package history

import "time"

const (
	// TicksPerSecond is the fixed ratio between dashboard ticks and seconds.
	TicksPerSecond = 4

	// TickInterval is the dashboard sampling cadence.
	TickInterval = time.Second / TicksPerSecond

	// MaxWindowSeconds is the longest window a report can cover.
	MaxWindowSeconds = 120

	// DefaultCapacity holds exactly MaxWindowSeconds worth of ticks.
	DefaultCapacity = MaxWindowSeconds * TicksPerSecond
)

// Buffer is a fixed-capacity ring of average-CPU samples, oldest first.
// Appending to a full buffer evicts the oldest sample.
//
// A Buffer has a single owner (the dashboard model). Other components only
// ever see copies returned by Snapshot.
type Buffer struct {
	data  []float64
	head  int // index of the oldest sample
	count int
}

// NewBuffer creates a Buffer holding at most capacity samples.
// A non-positive capacity falls back to DefaultCapacity.
func NewBuffer(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Buffer{data: make([]float64, capacity)}
}

// Append adds a sample at the tail, evicting the head when full.
func (b *Buffer) Append(sample float64) {
	size := len(b.data)
	if b.count < size {
		b.data[(b.head+b.count)%size] = sample
		b.count++
		return
	}
	b.data[b.head] = sample
	b.head = (b.head + 1) % size
}

// Snapshot returns a copy of the samples in insertion order (oldest first).
func (b *Buffer) Snapshot() []float64 {
	out := make([]float64, b.count)
	size := len(b.data)
	for i := 0; i < b.count; i++ {
		out[i] = b.data[(b.head+i)%size]
	}
	return out
}

// Tail returns a copy of the newest n samples, oldest first. It returns
// fewer than n when the buffer holds fewer samples.
func (b *Buffer) Tail(n int) []float64 {
	if n > b.count {
		n = b.count
	}
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	size := len(b.data)
	start := b.head + b.count - n
	for i := 0; i < n; i++ {
		out[i] = b.data[(start+i)%size]
	}
	return out
}

// Len returns the number of samples currently held.
func (b *Buffer) Len() int { return b.count }

// Cap returns the fixed capacity.
func (b *Buffer) Cap() int { return len(b.data) }
