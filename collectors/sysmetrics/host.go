package sysmetrics

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"time"

	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/net"
	"github.com/shirou/gopsutil/v3/process"
)

// HostReader gathers the non-CPU host metrics. Network counters are kept
// between calls so each read reports traffic since the previous one.
type HostReader struct {
	logger *slog.Logger

	// processLimit caps the process list. Zero means unlimited.
	processLimit int

	prevNet map[string]net.IOCountersStat

	// Overridable host readers for testing.
	virtualMemory func(ctx context.Context) (*mem.VirtualMemoryStat, error)
	partitions    func(ctx context.Context, all bool) ([]disk.PartitionStat, error)
	usage         func(ctx context.Context, path string) (*disk.UsageStat, error)
	netCounters   func(ctx context.Context, pernic bool) ([]net.IOCountersStat, error)
	listProcesses func(ctx context.Context) ([]ProcessSample, error)
	uptime        func(ctx context.Context) (uint64, error)
	batteryRoot   string
}

// NewHostReader creates a HostReader backed by gopsutil.
// If logger is nil, a no-op logger is used.
func NewHostReader(processLimit int, logger *slog.Logger) *HostReader {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &HostReader{
		logger:        logger,
		processLimit:  processLimit,
		virtualMemory: mem.VirtualMemoryWithContext,
		partitions:    disk.PartitionsWithContext,
		usage:         disk.UsageWithContext,
		netCounters:   net.IOCountersWithContext,
		listProcesses: listProcesses,
		uptime:        host.UptimeWithContext,
		batteryRoot:   defaultBatteryRoot,
	}
}

// Read returns a fresh snapshot. When full is false only memory, network
// and uptime are read; disks, processes and batteries are left nil so the
// caller can keep its previous values.
func (h *HostReader) Read(ctx context.Context, full bool) HostSnapshot {
	var snap HostSnapshot

	m, err := h.ReadMemory(ctx)
	if err != nil {
		snap.Warnings = append(snap.Warnings, err.Error())
	}
	snap.Memory = m

	nets, err := h.ReadNetworks(ctx)
	if err != nil {
		snap.Warnings = append(snap.Warnings, err.Error())
	}
	snap.Networks = nets

	if up, err := h.uptime(ctx); err != nil {
		snap.Warnings = append(snap.Warnings, fmt.Sprintf("uptime: %v", err))
	} else {
		snap.Uptime = time.Duration(up) * time.Second
	}

	if full {
		disks, err := h.ReadDisks(ctx)
		if err != nil {
			snap.Warnings = append(snap.Warnings, err.Error())
		}
		snap.Disks = disks

		procs, err := h.ReadProcesses(ctx)
		if err != nil {
			snap.Warnings = append(snap.Warnings, err.Error())
		}
		snap.Processes = procs

		snap.Batteries = h.ReadBatteries()
	}

	if len(snap.Warnings) > 0 {
		h.logger.Debug("host read warnings", "warnings", snap.Warnings)
	}
	return snap
}

// ReadMemory returns virtual memory figures.
func (h *HostReader) ReadMemory(ctx context.Context) (MemorySample, error) {
	vm, err := h.virtualMemory(ctx)
	if err != nil {
		return MemorySample{}, fmt.Errorf("memory: %w", err)
	}
	return MemorySample{
		Free:      vm.Free,
		Used:      vm.Used,
		Available: vm.Available,
		Total:     vm.Total,
	}, nil
}

// ReadDisks returns every physical partition that reports a non-zero size.
// Partitions whose usage cannot be read are skipped.
func (h *HostReader) ReadDisks(ctx context.Context) ([]DiskSample, error) {
	parts, err := h.partitions(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("disks: %w", err)
	}

	out := make([]DiskSample, 0, len(parts))
	for _, p := range parts {
		u, err := h.usage(ctx, p.Mountpoint)
		if err != nil {
			h.logger.Debug("disk usage unavailable", "mountpoint", p.Mountpoint, "error", err)
			continue
		}
		if u.Total == 0 {
			continue
		}
		out = append(out, DiskSample{
			Name:       p.Device,
			Kind:       p.Fstype,
			Mountpoint: p.Mountpoint,
			Available:  u.Free,
			Total:      u.Total,
		})
	}
	return out, nil
}

// ReadNetworks returns per-interface traffic since the previous call.
// The first call for an interface reports zero.
func (h *HostReader) ReadNetworks(ctx context.Context) ([]NetworkSample, error) {
	counters, err := h.netCounters(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("networks: %w", err)
	}

	next := make(map[string]net.IOCountersStat, len(counters))
	out := make([]NetworkSample, 0, len(counters))
	for _, c := range counters {
		next[c.Name] = c
		s := NetworkSample{Name: c.Name}
		if prev, ok := h.prevNet[c.Name]; ok {
			s.Received = counterDelta(prev.BytesRecv, c.BytesRecv)
			s.Transmitted = counterDelta(prev.BytesSent, c.BytesSent)
		}
		out = append(out, s)
	}
	h.prevNet = next

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// counterDelta returns cur-prev, or zero when the counter was reset.
func counterDelta(prev, cur uint64) uint64 {
	if cur < prev {
		return 0
	}
	return cur - prev
}

// ReadProcesses returns processes ordered by PID, capped at processLimit.
func (h *HostReader) ReadProcesses(ctx context.Context) ([]ProcessSample, error) {
	procs, err := h.listProcesses(ctx)
	if err != nil {
		return nil, fmt.Errorf("processes: %w", err)
	}
	sort.Slice(procs, func(i, j int) bool { return procs[i].PID < procs[j].PID })
	if h.processLimit > 0 && len(procs) > h.processLimit {
		procs = procs[:h.processLimit]
	}
	return procs, nil
}

// ReadBatteries returns the batteries found on this host, or nil.
func (h *HostReader) ReadBatteries() []BatterySample {
	if h.batteryRoot == "" {
		return nil
	}
	bats, err := readBatteries(h.batteryRoot)
	if err != nil {
		h.logger.Debug("battery read failed", "root", h.batteryRoot, "error", err)
		return nil
	}
	return bats
}

// listProcesses enumerates processes with gopsutil. Processes whose I/O
// counters are not readable (usually permission) report zero bytes.
func listProcesses(ctx context.Context) ([]ProcessSample, error) {
	ps, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]ProcessSample, 0, len(ps))
	for _, p := range ps {
		name, err := p.NameWithContext(ctx)
		if err != nil {
			// Exited between listing and inspection.
			continue
		}
		s := ProcessSample{PID: p.Pid, Name: name}
		if ioc, err := p.IOCountersWithContext(ctx); err == nil && ioc != nil {
			s.ReadBytes = ioc.ReadBytes
			s.WrittenBytes = ioc.WriteBytes
		}
		out = append(out, s)
	}
	return out, nil
}
