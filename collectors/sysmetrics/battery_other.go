//go:build !linux

package sysmetrics

// Battery reporting is only implemented for Linux sysfs.
const defaultBatteryRoot = ""
