// Package display holds the banner and human-readable formatting helpers
// shared by the report renderer and the pipeline's progress logging.
package display

import (
	"fmt"
)

// FormatDuration renders a nanosecond value in the largest unit that keeps
// it >= 1: ms with 3 decimals, µs with 1 decimal, or ns with none.
func FormatDuration(ns float64) string {
	switch {
	case ns >= 1_000_000:
		return fmt.Sprintf("%.3f ms", ns/1_000_000)
	case ns >= 1_000:
		return fmt.Sprintf("%.1f µs", ns/1_000)
	default:
		return fmt.Sprintf("%.0f ns", ns)
	}
}

// FormatBytes returns a human-readable size (B, KiB, MiB, GiB, TiB, PiB).
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	suffixes := []string{"KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}
	if exp >= len(suffixes) {
		exp = len(suffixes) - 1
		div = 1
		for i := 0; i <= exp; i++ {
			div *= unit
		}
	}
	return fmt.Sprintf("%.1f %s", float64(bytes)/float64(div), suffixes[exp])
}
