// Package config holds runtime configuration: defaults, CLI flag parsing, and
// validation. Defaults match the legacy analyse_latencies script for parity.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by [ParseFlags] before being passed (by pointer) to packages
// that need it.
type Config struct {
	// Paths.
	BuildDir      string // Default: "./build_release". Set with --build-dir.
	SamplesSubdir string // Default: "latencies". Set with --latencies-dir.

	// Glob patterns (set from positional args), relative to the samples
	// directory. Empty means "all *.bin files".
	Patterns []string

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
	CheckOnly bool      // Run --check diagnostics and exit.
}

// DefaultConfig returns a Config with all defaults matching the legacy
// analyse_latencies behavior. Used as the base before [ParseFlags] applies
// CLI overrides.
func DefaultConfig() Config {
	return Config{
		BuildDir:      "./build_release",
		SamplesSubdir: "latencies",
		Verbose:       false,
		ColorMode:     ColorAuto,
		CheckOnly:     false,
	}
}

// SamplesDir returns the directory holding the raw sample files,
// i.e. <build-dir>/<samples-subdir>.
func (c *Config) SamplesDir() string {
	return filepath.Join(c.BuildDir, c.SamplesSubdir)
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks that the color mode is a known value, the build directory
// is set, the samples subdir is a plain name (not a path), and that no glob
// pattern is blank.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.BuildDir == "" {
		return errors.New("build directory must not be empty")
	}
	if c.SamplesSubdir == "" || strings.ContainsRune(c.SamplesSubdir, filepath.Separator) {
		return fmt.Errorf("invalid latencies subdir %q (must be a plain directory name)", c.SamplesSubdir)
	}
	for _, p := range c.Patterns {
		if strings.TrimSpace(p) == "" {
			return errors.New("empty file pattern")
		}
	}
	return nil
}
