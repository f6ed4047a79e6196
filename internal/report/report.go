// Package report renders the fixed-layout per-file analysis block printed
// to stdout. The layout (labels, separator width, field order) is stable
// output consumed by people and the odd grep, so changes here are breaking.
package report

import (
	"fmt"
	"strings"

	"github.com/backmassage/latstat/internal/analyze"
	"github.com/backmassage/latstat/internal/display"
)

// separator returns the dashed rule sized to the file name, matching the
// historical layout (name length plus the header decoration width).
func separator(name string) string {
	return strings.Repeat("-", len(name)+18)
}

// Render returns the analysis block for one file. When sum is nil the block
// reports that no valid data points were found (all samples excluded or too
// few to estimate quantiles).
func Render(name string, total, excluded int, sum *analyze.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- Analysis for: %s ---\n", name)
	fmt.Fprintf(&b, "Total data points: %d\n", total)
	fmt.Fprintf(&b, "Excluded negative values: %d\n", excluded)

	if sum == nil {
		b.WriteString("No valid data points found for analysis.")
		return b.String()
	}

	sep := separator(name)
	b.WriteString(sep + "\n")
	fmt.Fprintf(&b, "Min:    %s\n", display.FormatDuration(sum.Min))
	fmt.Fprintf(&b, "P25 (Q1): %s\n", display.FormatDuration(sum.P25))
	fmt.Fprintf(&b, "P50 (Median): %s\n", display.FormatDuration(sum.P50))
	fmt.Fprintf(&b, "P75 (Q3): %s\n", display.FormatDuration(sum.P75))
	fmt.Fprintf(&b, "P90:    %s\n", display.FormatDuration(sum.P90))
	fmt.Fprintf(&b, "P99:    %s\n", display.FormatDuration(sum.P99))
	fmt.Fprintf(&b, "P99.9:  %s\n", display.FormatDuration(sum.P999))
	fmt.Fprintf(&b, "Max:    %s\n", display.FormatDuration(sum.Max))
	b.WriteString(sep)
	return b.String()
}

// RenderEmpty returns the block for a file that decoded to zero records.
func RenderEmpty(name string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- Analysis for: %s ---\n", name)
	b.WriteString("File was empty or contained no valid 64-bit integers.\n")
	b.WriteString(separator(name))
	return b.String()
}
