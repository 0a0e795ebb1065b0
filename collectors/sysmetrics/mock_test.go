package sysmetrics

import (
	"context"
	"errors"
	"math"
	"testing"
)

func TestMockSamplerDeterministic(t *testing.T) {
	a := &MockSampler{Cores: 4}
	b := &MockSampler{Cores: 4}

	for i := 0; i < 20; i++ {
		sa, err := a.SampleCPU(context.Background())
		if err != nil {
			t.Fatalf("SampleCPU() error: %v", err)
		}
		sb, _ := b.SampleCPU(context.Background())
		if sa.Average != sb.Average {
			t.Fatalf("step %d: %v != %v", i, sa.Average, sb.Average)
		}
		for _, v := range sa.PerCore {
			if v < 0 || v > 100 {
				t.Errorf("step %d: core value %v out of range", i, v)
			}
		}
		want, _ := AverageCPU(sa.PerCore)
		if math.Abs(sa.Average-want) > 1e-6 {
			t.Errorf("average %v, want %v", sa.Average, want)
		}
	}
}

func TestMockSamplerNoCores(t *testing.T) {
	m := &MockSampler{}
	if _, err := m.SampleCPU(context.Background()); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("err = %v, want ErrInsufficientData", err)
	}
}

func TestMockHostReader(t *testing.T) {
	var h MockHostReader
	partial := h.Read(context.Background(), false)
	if partial.Processes != nil || partial.Memory.Total == 0 {
		t.Errorf("partial read = %+v", partial)
	}
	full := h.Read(context.Background(), true)
	if len(full.Processes) == 0 || len(full.Disks) == 0 || len(full.Batteries) != 1 {
		t.Errorf("full read = %+v", full)
	}
}
