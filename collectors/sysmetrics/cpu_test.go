package sysmetrics

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"
)

func TestAverageCPU(t *testing.T) {
	tests := []struct {
		name    string
		perCore []float64
		want    float64
		wantErr error
	}{
		{name: "four cores", perCore: []float64{10, 20, 30, 40}, want: 25},
		{name: "single core", perCore: []float64{87.5}, want: 87.5},
		{name: "all idle", perCore: []float64{0, 0, 0, 0, 0, 0, 0, 0}, want: 0},
		{name: "all busy", perCore: []float64{100, 100}, want: 100},
		{name: "no cores", perCore: nil, wantErr: ErrInsufficientData},
		{name: "empty slice", perCore: []float64{}, wantErr: ErrInsufficientData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AverageCPU(tt.perCore)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("AverageCPU() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestSampleCPU(t *testing.T) {
	s := NewSampler(nil)
	s.percentFunc = func(context.Context, time.Duration, bool) ([]float64, error) {
		return []float64{12.5, 37.5}, nil
	}

	got, err := s.SampleCPU(context.Background())
	if err != nil {
		t.Fatalf("SampleCPU() error: %v", err)
	}
	if len(got.PerCore) != 2 {
		t.Errorf("PerCore len = %d, want 2", len(got.PerCore))
	}
	if math.Abs(got.Average-25) > 1e-6 {
		t.Errorf("Average = %f, want 25", got.Average)
	}
}

func TestSampleCPUErrors(t *testing.T) {
	readErr := errors.New("boom")

	s := NewSampler(nil)
	s.percentFunc = func(context.Context, time.Duration, bool) ([]float64, error) {
		return nil, readErr
	}
	if _, err := s.SampleCPU(context.Background()); !errors.Is(err, readErr) {
		t.Errorf("err = %v, want wrapped read error", err)
	}

	s.percentFunc = func(context.Context, time.Duration, bool) ([]float64, error) {
		return nil, nil
	}
	if _, err := s.SampleCPU(context.Background()); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("err = %v, want ErrInsufficientData", err)
	}
}

func TestProbe(t *testing.T) {
	ok := func(context.Context, time.Duration, bool) ([]float64, error) { return []float64{0}, nil }

	tests := []struct {
		name    string
		counts  func(context.Context, bool) (int, error)
		percent func(context.Context, time.Duration, bool) ([]float64, error)
		wantErr bool
	}{
		{
			name:    "healthy host",
			counts:  func(context.Context, bool) (int, error) { return 8, nil },
			percent: ok,
		},
		{
			name:    "count unreadable",
			counts:  func(context.Context, bool) (int, error) { return 0, errors.New("no /proc") },
			percent: ok,
			wantErr: true,
		},
		{
			name:    "zero cores",
			counts:  func(context.Context, bool) (int, error) { return 0, nil },
			percent: ok,
			wantErr: true,
		},
		{
			name:   "times unreadable",
			counts: func(context.Context, bool) (int, error) { return 4, nil },
			percent: func(context.Context, time.Duration, bool) ([]float64, error) {
				return nil, errors.New("denied")
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSampler(nil)
			s.countsFunc = tt.counts
			s.percentFunc = tt.percent
			err := s.Probe(context.Background())
			if (err != nil) != tt.wantErr {
				t.Errorf("Probe() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
