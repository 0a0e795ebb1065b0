package format

import "fmt"

// Decimal units, matching what disk and memory vendors print.
const (
	KB = 1e3
	MB = 1e6
	GB = 1e9
)

// GigaBytes renders b as "N.NN GB".
func GigaBytes(b uint64) string {
	return fmt.Sprintf("%.2f GB", float64(b)/GB)
}

// MegaBytes renders b as "N.NN MB".
func MegaBytes(b uint64) string {
	return fmt.Sprintf("%.2f MB", float64(b)/MB)
}

// KiloBytes renders b as "N.NNKB", the compact form used for per-tick traffic.
func KiloBytes(b uint64) string {
	return fmt.Sprintf("%.2fKB", float64(b)/KB)
}

// Percent renders v as "NN.NN%".
func Percent(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}
