// Command latstat is the CLI entrypoint for the benchmark latency report
// tool.
//
// It parses flags, validates configuration, and either runs system
// diagnostics (--check) or the analysis pipeline: discover sample files
// under <build-dir>/latencies, decode each one, and print a summary
// statistics block per file.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/backmassage/latstat/internal/check"
	"github.com/backmassage/latstat/internal/config"
	"github.com/backmassage/latstat/internal/display"
	"github.com/backmassage/latstat/internal/logging"
	"github.com/backmassage/latstat/internal/pipeline"
)

// version and commit are injected at build time via -ldflags.
// When built with plain "go build" (no make), these retain their defaults.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap — the logger doesn't exist yet, so errors go
	// directly to stderr via fmt. Once NewLogger succeeds, all output
	// goes through the logger for consistent formatting and log-file capture.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, version); err != nil {
		fmt.Fprintf(os.Stderr, "latstat: %v\n", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "latstat: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "latstat: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available — all output goes through log from here on.
	display.PrintBanner()

	if cfg.CheckOnly {
		if !check.RunCheck(&cfg, log) {
			return 1
		}
		return 0
	}

	log.Info("=== latstat v%s (%s) ===", version, commit)
	log.Info("Build dir: %s", cfg.BuildDir)
	log.Info("")

	// Phase 3: Signal handling — cancel context on SIGINT/SIGTERM so the
	// pipeline can stop between files.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, finishing current file…")
		cancel()
	}()

	// Phase 4: Run pipeline (discover → decode → analyze → report).
	// Per-file problems are reported inline and never change the exit code.
	pipeline.Run(ctx, &cfg, log)
	return 0
}
