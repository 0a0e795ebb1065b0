package sysmetrics

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
)

// ErrInsufficientData means the host reported no measurable cores.
var ErrInsufficientData = errors.New("sysmetrics: host exposes no measurable cores")

// AverageCPU returns the arithmetic mean of the per-core utilization values.
func AverageCPU(perCore []float64) (float64, error) {
	if len(perCore) == 0 {
		return 0, ErrInsufficientData
	}
	var sum float64
	for _, v := range perCore {
		sum += v
	}
	return sum / float64(len(perCore)), nil
}

// Sampler reads per-core CPU utilization once per tick.
type Sampler struct {
	logger *slog.Logger

	// Overridable host readers for testing.
	percentFunc func(ctx context.Context, interval time.Duration, percpu bool) ([]float64, error)
	countsFunc  func(ctx context.Context, logical bool) (int, error)
}

// NewSampler creates a Sampler backed by gopsutil.
// If logger is nil, a no-op logger is used.
func NewSampler(logger *slog.Logger) *Sampler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Sampler{
		logger:      logger,
		percentFunc: cpu.PercentWithContext,
		countsFunc:  cpu.CountsWithContext,
	}
}

// Probe checks that CPU metrics can be read at all. A failure here is not
// recoverable and should end the process.
func (s *Sampler) Probe(ctx context.Context) error {
	n, err := s.countsFunc(ctx, true)
	if err != nil {
		return fmt.Errorf("sysmetrics: read cpu count: %w", err)
	}
	if n <= 0 {
		return ErrInsufficientData
	}
	// Prime the utilization counters so the first tick measures a delta.
	if _, err := s.percentFunc(ctx, 0, true); err != nil {
		return fmt.Errorf("sysmetrics: read cpu times: %w", err)
	}
	return nil
}

// SampleCPU reads per-core utilization since the previous call and returns
// it with its mean. It returns ErrInsufficientData when no cores are
// reported.
func (s *Sampler) SampleCPU(ctx context.Context) (CPUSample, error) {
	perCore, err := s.percentFunc(ctx, 0, true)
	if err != nil {
		return CPUSample{}, fmt.Errorf("sysmetrics: read cpu percent: %w", err)
	}

	avg, err := AverageCPU(perCore)
	if err != nil {
		return CPUSample{}, err
	}

	s.logger.Debug("cpu sampled", "cores", len(perCore), "average", fmt.Sprintf("%.2f%%", avg))
	return CPUSample{PerCore: perCore, Average: avg}, nil
}
