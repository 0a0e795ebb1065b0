package sysmetrics

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// readBatteries scans a power_supply style directory: one subdirectory per
// supply, each holding single-value attribute files. Supplies whose "type"
// is not Battery are ignored.
func readBatteries(root string) ([]BatterySample, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("battery: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)

	var out []BatterySample
	for _, name := range names {
		dir := filepath.Join(root, name)
		if readAttr(dir, "type") != "Battery" {
			continue
		}
		b := BatterySample{
			Index:  len(out),
			Vendor: readAttr(dir, "manufacturer"),
			Model:  readAttr(dir, "model_name"),
			State:  readAttr(dir, "status"),
		}
		b.Percent, b.Err = batteryPercent(dir)
		out = append(out, b)
	}
	return out, nil
}

// batteryPercent prefers the capacity attribute and falls back to the
// energy or charge now/full pairs.
func batteryPercent(dir string) (float64, error) {
	if v, err := strconv.ParseFloat(readAttr(dir, "capacity"), 64); err == nil {
		return v, nil
	}
	for _, prefix := range []string{"energy", "charge"} {
		now, errNow := strconv.ParseFloat(readAttr(dir, prefix+"_now"), 64)
		full, errFull := strconv.ParseFloat(readAttr(dir, prefix+"_full"), 64)
		if errNow == nil && errFull == nil && full > 0 {
			return now / full * 100, nil
		}
	}
	return 0, fmt.Errorf("battery: no charge level in %s", filepath.Base(dir))
}

// readAttr returns the trimmed content of dir/name, or "" on any error.
func readAttr(dir, name string) string {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
