// Package sysmetrics samples local host metrics for sys-analyzer: per-core
// CPU utilization for the history pipeline, plus memory, disk, network,
// process and battery snapshots for the surrounding dashboard panes.
package sysmetrics

import "time"

// CPUSample is one tick's CPU reading.
type CPUSample struct {
	// PerCore holds the utilization of each logical core, in percent.
	PerCore []float64 `json:"per_core"`

	// Average is the arithmetic mean of PerCore. It is not clamped.
	Average float64 `json:"average"`
}

// MemorySample holds virtual memory figures in bytes.
type MemorySample struct {
	Free      uint64 `json:"free"`
	Used      uint64 `json:"used"`
	Available uint64 `json:"available"`
	Total     uint64 `json:"total"`
}

// DiskSample describes one mounted filesystem.
type DiskSample struct {
	// Name is the device name (e.g. /dev/nvme0n1p2).
	Name string `json:"name"`

	// Kind is the filesystem type (e.g. ext4, apfs).
	Kind string `json:"kind"`

	Mountpoint string `json:"mountpoint"`
	Available  uint64 `json:"available"`
	Total      uint64 `json:"total"`
}

// NetworkSample is the traffic on one interface since the previous read.
type NetworkSample struct {
	Name        string `json:"name"`
	Received    uint64 `json:"received"`
	Transmitted uint64 `json:"transmitted"`
}

// ProcessSample holds cumulative disk I/O for one process.
type ProcessSample struct {
	PID          int32  `json:"pid"`
	Name         string `json:"name"`
	ReadBytes    uint64 `json:"read_bytes"`
	WrittenBytes uint64 `json:"written_bytes"`
}

// BatterySample describes one battery. Err is set when the battery was
// listed but could not be read.
type BatterySample struct {
	Index   int     `json:"index"`
	Vendor  string  `json:"vendor"`
	Model   string  `json:"model"`
	State   string  `json:"state"`
	Percent float64 `json:"percent"`
	Err     error   `json:"-"`
}

// HostSnapshot is everything the non-CPU panes display for one refresh.
type HostSnapshot struct {
	Memory    MemorySample    `json:"memory"`
	Disks     []DiskSample    `json:"disks"`
	Networks  []NetworkSample `json:"networks"`
	Processes []ProcessSample `json:"processes"`
	Batteries []BatterySample `json:"batteries"`
	Uptime    time.Duration   `json:"uptime"`

	// Warnings contains non-fatal read failures.
	Warnings []string `json:"warnings,omitempty"`
}
