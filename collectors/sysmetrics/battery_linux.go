//go:build linux

package sysmetrics

const defaultBatteryRoot = "/sys/class/power_supply"
