package pipeline

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/backmassage/latstat/internal/config"
	"github.com/backmassage/latstat/internal/logging"
)

// writeSampleFile writes values as little-endian int64 records, plus any
// trailing bytes, into <dir>/<name>.
func writeSampleFile(t *testing.T, dir, name string, values []int64, trailing []byte) {
	t.Helper()
	buf := make([]byte, 0, len(values)*8+len(trailing))
	for _, v := range values {
		var rec [8]byte
		binary.LittleEndian.PutUint64(rec[:], uint64(v))
		buf = append(buf, rec[:]...)
	}
	buf = append(buf, trailing...)
	if err := os.WriteFile(filepath.Join(dir, name), buf, 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

// newTestRun builds a build dir with a latencies subdir and returns the
// config pointing at it.
func newTestRun(t *testing.T) (config.Config, string) {
	t.Helper()
	buildDir := t.TempDir()
	samplesDir := filepath.Join(buildDir, "latencies")
	if err := os.MkdirAll(samplesDir, 0o755); err != nil {
		t.Fatal(err)
	}
	cfg := config.DefaultConfig()
	cfg.BuildDir = buildDir
	cfg.ColorMode = config.ColorNever
	return cfg, samplesDir
}

func newTestLogger(t *testing.T, cfg *config.Config) *logging.Logger {
	t.Helper()
	log, err := logging.NewLogger(cfg)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	t.Cleanup(func() { log.Close() })
	return log
}

func TestRun_AnalyzesEachFile(t *testing.T) {
	cfg, samplesDir := newTestRun(t)
	writeSampleFile(t, samplesDir, "tcp.bin", []int64{100, 200, -5, 300}, nil)
	writeSampleFile(t, samplesDir, "udp.bin", []int64{10, 20, 30, 40, 50}, nil)

	log := newTestLogger(t, &cfg)
	stats := Run(context.Background(), &cfg, log)

	if stats.Total != 2 {
		t.Errorf("Total: got %d, want 2", stats.Total)
	}
	if stats.Analyzed != 2 {
		t.Errorf("Analyzed: got %d, want 2", stats.Analyzed)
	}
	if stats.Failed != 0 {
		t.Errorf("Failed: got %d, want 0", stats.Failed)
	}
	if stats.TotalSamples != 9 {
		t.Errorf("TotalSamples: got %d, want 9", stats.TotalSamples)
	}
	if stats.TotalExcluded != 1 {
		t.Errorf("TotalExcluded: got %d, want 1", stats.TotalExcluded)
	}
}

func TestRun_CountsEmptyAndNoData(t *testing.T) {
	cfg, samplesDir := newTestRun(t)
	writeSampleFile(t, samplesDir, "empty.bin", nil, nil)
	writeSampleFile(t, samplesDir, "negatives.bin", []int64{-1, -2, -3}, nil)
	writeSampleFile(t, samplesDir, "good.bin", []int64{1, 2, 3}, nil)

	log := newTestLogger(t, &cfg)
	stats := Run(context.Background(), &cfg, log)

	if stats.Empty != 1 {
		t.Errorf("Empty: got %d, want 1", stats.Empty)
	}
	if stats.NoData != 1 {
		t.Errorf("NoData: got %d, want 1", stats.NoData)
	}
	if stats.Analyzed != 1 {
		t.Errorf("Analyzed: got %d, want 1", stats.Analyzed)
	}
	if stats.TotalExcluded != 3 {
		t.Errorf("TotalExcluded: got %d, want 3", stats.TotalExcluded)
	}
}

func TestRun_TrailingBytesStillAnalyzed(t *testing.T) {
	cfg, samplesDir := newTestRun(t)
	writeSampleFile(t, samplesDir, "ragged.bin", []int64{5, 10, 15}, []byte{0xff, 0xfe})

	log := newTestLogger(t, &cfg)
	stats := Run(context.Background(), &cfg, log)

	if stats.Analyzed != 1 {
		t.Errorf("Analyzed: got %d, want 1", stats.Analyzed)
	}
	if stats.TotalSamples != 3 {
		t.Errorf("TotalSamples: got %d, want 3 (trailing bytes dropped)", stats.TotalSamples)
	}
}

func TestRun_PatternsSelectFiles(t *testing.T) {
	cfg, samplesDir := newTestRun(t)
	writeSampleFile(t, samplesDir, "tcp_run1.bin", []int64{1, 2}, nil)
	writeSampleFile(t, samplesDir, "udp_run1.bin", []int64{3, 4}, nil)
	cfg.Patterns = []string{"tcp*.bin"}

	log := newTestLogger(t, &cfg)
	stats := Run(context.Background(), &cfg, log)

	if stats.Total != 1 {
		t.Errorf("Total: got %d, want 1 (only tcp files)", stats.Total)
	}
}

func TestRun_MissingSamplesDir(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.BuildDir = t.TempDir() // no latencies subdir inside
	cfg.ColorMode = config.ColorNever

	log := newTestLogger(t, &cfg)
	stats := Run(context.Background(), &cfg, log)

	if stats.Total != 0 {
		t.Errorf("Total: got %d, want 0", stats.Total)
	}
	if stats.Failed != 0 {
		t.Errorf("Failed: got %d, want 0 (missing dir is reported, not counted)", stats.Failed)
	}
}

func TestRun_CancelledContextStops(t *testing.T) {
	cfg, samplesDir := newTestRun(t)
	writeSampleFile(t, samplesDir, "a.bin", []int64{1, 2}, nil)
	writeSampleFile(t, samplesDir, "b.bin", []int64{3, 4}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	log := newTestLogger(t, &cfg)
	stats := Run(ctx, &cfg, log)

	if stats.Analyzed != 0 {
		t.Errorf("Analyzed: got %d, want 0 (cancelled before first file)", stats.Analyzed)
	}
	if stats.Total != 2 {
		t.Errorf("Total: got %d, want 2 (discovery still ran)", stats.Total)
	}
}
