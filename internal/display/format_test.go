package display

import (
	"testing"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name string
		ns   float64
		want string
	}{
		{"zero", 0, "0 ns"},
		{"sub-microsecond", 500, "500 ns"},
		{"just below 1 µs", 999, "999 ns"},
		{"exactly 1 µs", 1_000, "1.0 µs"},
		{"typical µs", 2_500, "2.5 µs"},
		{"fractional µs", 1_234.5, "1.2 µs"},
		{"just below 1 ms", 999_949, "999.9 µs"},
		{"exactly 1 ms", 1_000_000, "1.000 ms"},
		{"typical ms", 1_500_000, "1.500 ms"},
		{"large ms", 2_345_678_000, "2345.678 ms"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatDuration(tt.ns)
			if got != tt.want {
				t.Errorf("FormatDuration(%v) = %q, want %q", tt.ns, got, tt.want)
			}
		})
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name  string
		bytes int64
		want  string
	}{
		{"zero", 0, "0 B"},
		{"small bytes", 512, "512 B"},
		{"exactly 1 KiB", 1024, "1.0 KiB"},
		{"1.5 KiB", 1536, "1.5 KiB"},
		{"1 MiB", 1024 * 1024, "1.0 MiB"},
		{"typical sample file", 8_000_000, "7.6 MiB"},
		{"1 GiB", 1024 * 1024 * 1024, "1.0 GiB"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatBytes(tt.bytes)
			if got != tt.want {
				t.Errorf("FormatBytes(%d) = %q, want %q", tt.bytes, got, tt.want)
			}
		})
	}
}
