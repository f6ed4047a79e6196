package config

// This file implements CLI flag parsing and help text.
// Flags are grouped into input, display, and utility. Boolean overrides
// (e.g. --no-color) are applied after Parse so Config defaults hold unless set.

import (
	"flag"
	"fmt"
	"os"
)

// ParseFlags parses os.Args into cfg. On --help or --version it prints and exits.
// On error it returns non-nil (e.g. unknown flag). Remaining positional
// arguments become glob patterns.
func ParseFlags(cfg *Config, version string) error {
	fs := flag.NewFlagSet("latstat", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs, version) }

	// Override flags: we capture bools then apply to cfg after Parse,
	// so that defaults from DefaultConfig() hold unless the user passes the flag.
	var overrides overrideFlags

	defineInputFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &overrides)
	defineUtilityFlags(fs, cfg, &overrides)

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	applyOverrideFlags(cfg, &overrides)

	if overrides.showHelp {
		printUsage(fs, version)
		os.Exit(0)
	}
	if overrides.showVersion {
		fmt.Fprintln(os.Stdout, "latstat v"+version)
		os.Exit(0)
	}

	cfg.BuildDir = NormalizeDirArg(cfg.BuildDir)
	cfg.Patterns = fs.Args()
	return nil
}

// overrideFlags holds boolean flags that are applied after Parse.
// These either invert a default (e.g. noColor -> ColorMode=never) or trigger
// exit (showHelp, showVersion).
type overrideFlags struct {
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// defineInputFlags registers -b/--build-dir and --latencies-dir.
func defineInputFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.BuildDir, "build-dir", cfg.BuildDir, "Build directory containing the latencies subdir")
	fs.StringVar(&cfg.BuildDir, "b", cfg.BuildDir, "Same as --build-dir")
	fs.StringVar(&cfg.SamplesSubdir, "latencies-dir", cfg.SamplesSubdir, "Name of the samples subdir under the build dir")
}

// defineDisplayFlags registers --color, --no-color, verbose, --log.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, o *overrideFlags) {
	fs.BoolVar(&o.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&o.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", "", "Same as --log")
}

// defineUtilityFlags registers --check, --version and --help.
func defineUtilityFlags(fs *flag.FlagSet, cfg *Config, o *overrideFlags) {
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run system diagnostics and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")
	fs.BoolVar(&o.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&o.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&o.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&o.showHelp, "h", false, "Same as --help")
}

// applyOverrideFlags copies override flag values into cfg (e.g. noColor -> ColorMode=never).
func applyOverrideFlags(cfg *Config, o *overrideFlags) {
	if o.noColor {
		cfg.ColorMode = ColorNever
	} else if o.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(fs *flag.FlagSet, version string) {
	const col1 = 28 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "latstat v" + version + " - benchmark latency report tool"},
		{"", ""},
		{"  latstat [OPTIONS] [pattern ...]", ""},
		{"", ""},
		{"Patterns are globs relative to <build-dir>/latencies", ""},
		{"(e.g. '*tcp*.bin'). With no patterns, all '*.bin' files are analyzed.", ""},
		{"", ""},
		{"Input", ""},
		{"  -b, --build-dir <path>", "Build directory (default: ./build_release)"},
		{"  --latencies-dir <name>", "Samples subdir name (default: latencies)"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -c, --check", "System diagnostics (build dir, samples, decode)"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}
