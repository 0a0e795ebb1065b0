package sysmetrics

import (
	"context"
	"math"
	"time"
)

// MockSampler produces a deterministic per-core load pattern. It is used by
// the demo renderer and tests that need plausible, repeatable CPU data.
type MockSampler struct {
	// Cores is the number of logical cores to report. Zero reports none,
	// which yields ErrInsufficientData.
	Cores int

	step int
}

// SampleCPU returns the next point of a slow wave per core, phase shifted
// so cores do not move in lockstep.
func (m *MockSampler) SampleCPU(context.Context) (CPUSample, error) {
	m.step++
	perCore := make([]float64, m.Cores)
	for i := range perCore {
		phase := float64(m.step)/8 + float64(i)*0.7
		perCore[i] = math.Round((45+35*math.Sin(phase))*100) / 100
	}
	avg, err := AverageCPU(perCore)
	if err != nil {
		return CPUSample{}, err
	}
	return CPUSample{PerCore: perCore, Average: avg}, nil
}

// MockHostReader returns a fixed laptop-like host.
type MockHostReader struct{}

// Read implements the dashboard's host reader. Slow panes are only filled
// when full is set, matching HostReader.
func (MockHostReader) Read(_ context.Context, full bool) HostSnapshot {
	snap := HostSnapshot{
		Memory: MemorySample{
			Free:      2_100_000_000,
			Used:      9_400_000_000,
			Available: 6_300_000_000,
			Total:     16_500_000_000,
		},
		Networks: []NetworkSample{
			{Name: "lo", Received: 1_024, Transmitted: 1_024},
			{Name: "wlan0", Received: 48_300, Transmitted: 6_150},
		},
		Uptime: 26*time.Hour + 14*time.Minute,
	}
	if !full {
		return snap
	}

	snap.Disks = []DiskSample{
		{Name: "/dev/nvme0n1p2", Kind: "ext4", Mountpoint: "/", Available: 212_000_000_000, Total: 498_000_000_000},
		{Name: "/dev/nvme0n1p1", Kind: "vfat", Mountpoint: "/boot/efi", Available: 480_000_000, Total: 536_000_000},
	}
	snap.Processes = []ProcessSample{
		{PID: 1, Name: "systemd", ReadBytes: 1_204_000_000, WrittenBytes: 310_000_000},
		{PID: 612, Name: "NetworkManager", ReadBytes: 12_500_000, WrittenBytes: 2_000_000},
		{PID: 1410, Name: "pipewire", ReadBytes: 3_100_000},
		{PID: 2231, Name: "firefox", ReadBytes: 880_000_000, WrittenBytes: 1_450_000_000},
		{PID: 3102, Name: "sys-analyzer", ReadBytes: 210_000},
	}
	snap.Batteries = []BatterySample{
		{Index: 0, Vendor: "SMP", Model: "5B10W13930", State: "Discharging", Percent: 81},
	}
	return snap
}
