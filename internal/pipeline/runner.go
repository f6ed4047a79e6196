package pipeline

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/backmassage/latstat/internal/analyze"
	"github.com/backmassage/latstat/internal/config"
	"github.com/backmassage/latstat/internal/decode"
	"github.com/backmassage/latstat/internal/display"
	"github.com/backmassage/latstat/internal/logging"
	"github.com/backmassage/latstat/internal/report"
)

// Run is the top-level batch entry point. It discovers sample files under
// the configured samples directory, processes each one sequentially, and
// returns aggregate stats. Per-file problems are logged and skipped; the
// batch always runs to completion (or cancellation).
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger) RunStats {
	var stats RunStats

	dir := cfg.SamplesDir()
	files, warnings, err := Discover(dir, cfg.Patterns)
	for _, w := range warnings {
		log.Warn("%s", w)
	}
	if err != nil {
		log.Error("%v", err)
		return stats
	}
	if len(files) == 0 {
		log.Warn("No sample files found to analyze in '%s'", dir)
		return stats
	}

	stats.Total = len(files)
	logBatchHeader(cfg, log, &stats)

	for i, path := range files {
		stats.Current = i + 1

		if ctx.Err() != nil {
			log.Warn("Interrupted")
			break
		}

		processFile(cfg, log, path, &stats)
	}

	logSummary(log, &stats)
	return stats
}

// processFile handles one sample file: decode → filter/aggregate → report.
func processFile(cfg *config.Config, log *logging.Logger, path string, stats *RunStats) {
	basename := filepath.Base(path)
	log.Debug(cfg.Verbose, "[%d/%d] %s", stats.Current, stats.Total, basename)

	ss, err := decode.ReadFile(path)
	if err != nil {
		log.Error("Cannot read %s: %v", path, err)
		stats.Failed++
		return
	}

	if ss.TrailingBytes > 0 {
		log.Warn("File size %d bytes is not a multiple of %d for %s; decoded %d records",
			ss.Bytes, decode.RecordSize, path, ss.Count)
	}
	log.Debug(cfg.Verbose, "  %s: %d records (%s)", basename, ss.Count, display.FormatBytes(ss.Bytes))

	if ss.Count == 0 {
		emit(report.RenderEmpty(basename))
		stats.Empty++
		return
	}

	sum, excluded, err := analyze.Summarize(ss.Samples)
	stats.TotalSamples += int64(ss.Count)
	stats.TotalExcluded += int64(excluded)

	if err != nil {
		if errors.Is(err, analyze.ErrTooFewSamples) {
			log.Warn("%s: %v", basename, err)
		} else if !errors.Is(err, analyze.ErrNoValidSamples) {
			// Unexpected statistics failure; the block below still reports
			// the counts for the file.
			log.Error("Error calculating statistics for %s: %v", basename, err)
		}
		emit(report.Render(basename, ss.Count, excluded, nil))
		stats.NoData++
		return
	}

	log.Debug(cfg.Verbose, "  mean %s, stddev %s",
		display.FormatDuration(sum.Mean), display.FormatDuration(sum.StdDev))

	emit(report.Render(basename, ss.Count, excluded, sum))
	stats.Analyzed++
}

// emit writes one report block to stdout, preceded by a blank line so
// consecutive blocks stay visually separated.
func emit(block string) {
	fmt.Print("\n" + block + "\n")
}

// --- Logging helpers ---

func logBatchHeader(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("Found %d sample files in %s", stats.Total, cfg.SamplesDir())
	if len(cfg.Patterns) > 0 {
		log.Info("Patterns: %s", strings.Join(cfg.Patterns, ", "))
	} else {
		log.Info("Patterns: %s (default)", DefaultPattern)
	}
}

func logSummary(log *logging.Logger, stats *RunStats) {
	log.Info("==============================")
	log.Info("Done: %d analyzed, %d without valid data, %d empty, %d unreadable",
		stats.Analyzed, stats.NoData, stats.Empty, stats.Failed)
	if stats.TotalSamples > 0 {
		log.Info("  Total samples: %d (%d excluded negative, %.1f%%)",
			stats.TotalSamples, stats.TotalExcluded, stats.ExcludedPercent())
	}
}
