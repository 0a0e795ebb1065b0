package history

import (
	"errors"
	"fmt"
)

var (
	// ErrWindowTooLarge means the requested window covers more time than
	// has been recorded.
	ErrWindowTooLarge = errors.New("report duration is longer than runtime")

	// ErrInvalidWindow means the window length or tick rate is not positive.
	ErrInvalidWindow = errors.New("window must be a positive number of seconds")
)

// CheckWindow validates a window request against elapsed runtime before any
// history is touched. Only whole elapsed seconds count.
func CheckWindow(seconds, tickCount, ticksPerSecond int) error {
	if seconds <= 0 || ticksPerSecond <= 0 {
		return ErrInvalidWindow
	}
	elapsed := tickCount / ticksPerSecond
	if seconds > elapsed {
		return fmt.Errorf("history: %ds requested, %ds elapsed: %w", seconds, elapsed, ErrWindowTooLarge)
	}
	return nil
}

// Window averages the newest seconds*ticksPerSecond samples of snapshot into
// one value per second, oldest second first. The slice taken from the tail is
// always an exact multiple of ticksPerSecond, so every group is full.
func Window(snapshot []float64, seconds, ticksPerSecond int) ([]float64, error) {
	if seconds <= 0 || ticksPerSecond <= 0 {
		return nil, ErrInvalidWindow
	}

	raw := seconds * ticksPerSecond
	if raw > len(snapshot) {
		return nil, fmt.Errorf("history: need %d ticks, have %d: %w", raw, len(snapshot), ErrWindowTooLarge)
	}

	ticks := snapshot[len(snapshot)-raw:]
	series := make([]float64, 0, seconds)
	for start := 0; start < raw; start += ticksPerSecond {
		var sum float64
		for _, v := range ticks[start : start+ticksPerSecond] {
			sum += v
		}
		series = append(series, sum/float64(ticksPerSecond))
	}
	return series, nil
}

// Recent returns the per-second series for the newest min(maxSeconds,
// whole seconds held) seconds of b. It is used for live charts, where a
// shorter series is preferable to an error.
func Recent(b *Buffer, maxSeconds, ticksPerSecond int) []float64 {
	if ticksPerSecond <= 0 {
		return nil
	}
	seconds := b.Len() / ticksPerSecond
	if seconds > maxSeconds {
		seconds = maxSeconds
	}
	if seconds <= 0 {
		return nil
	}
	series, err := Window(b.Tail(seconds*ticksPerSecond), seconds, ticksPerSecond)
	if err != nil {
		return nil
	}
	return series
}
