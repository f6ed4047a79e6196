// Package check provides system diagnostics (--check mode): it verifies the
// build and samples directories exist, counts sample files, and trial-decodes
// one of them.
package check

import (
	"os"
	"path/filepath"

	"github.com/backmassage/latstat/internal/config"
	"github.com/backmassage/latstat/internal/decode"
	"github.com/backmassage/latstat/internal/display"
	"github.com/backmassage/latstat/internal/pipeline"
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// RunCheck runs the interactive --check flow: build dir, samples dir, file
// census, and a trial decode of the first sample file. It reports everything
// it finds and returns false if any hard requirement is missing. An existing
// samples dir that holds no sample files yet is not a failure.
func RunCheck(cfg *config.Config, log Logger) bool {
	log.Info("=== System Check ===")

	ok := checkBuildDir(cfg, log)
	files, found := checkSamplesDir(cfg, log)
	if !found {
		ok = false
	}
	if len(files) > 0 {
		checkDecode(files[0], log)
	}
	return ok
}

// checkBuildDir verifies the configured build directory exists.
func checkBuildDir(cfg *config.Config, log Logger) bool {
	fi, err := os.Stat(cfg.BuildDir)
	if err != nil || !fi.IsDir() {
		log.Error("Build dir missing: %s", cfg.BuildDir)
		return false
	}
	log.Success("Build dir: %s", cfg.BuildDir)
	return true
}

// checkSamplesDir verifies the samples directory exists and reports how many
// sample files it holds. found is false only when the directory is missing;
// an existing directory with no sample files is reported as a warning but
// still counts as found.
func checkSamplesDir(cfg *config.Config, log Logger) (files []string, found bool) {
	dir := cfg.SamplesDir()
	files, warnings, err := pipeline.Discover(dir, nil)
	for _, w := range warnings {
		log.Warn("%s", w)
	}
	if err != nil {
		log.Error("Samples dir missing: %s", dir)
		return nil, false
	}
	if len(files) == 0 {
		log.Warn("Samples dir %s holds no %s files", dir, pipeline.DefaultPattern)
		return nil, true
	}
	log.Success("Samples dir: %s (%d files)", dir, len(files))
	return files, true
}

// checkDecode trial-decodes one sample file to confirm the record format.
func checkDecode(path string, log Logger) {
	ss, err := decode.ReadFile(path)
	if err != nil {
		log.Error("Trial decode failed: %v", err)
		return
	}
	if ss.TrailingBytes > 0 {
		log.Warn("%s: %d trailing bytes (size not a multiple of %d)",
			filepath.Base(path), ss.TrailingBytes, decode.RecordSize)
	}
	log.Success("Decoded %d records from %s (%s)",
		ss.Count, filepath.Base(path), display.FormatBytes(ss.Bytes))
}
