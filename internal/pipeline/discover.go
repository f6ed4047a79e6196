package pipeline

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// DefaultPattern matches all sample files when no patterns are given.
const DefaultPattern = "*.bin"

// ErrDirNotFound is returned by Discover when the samples directory does not
// exist. The caller reports it and continues; it never aborts the run.
var ErrDirNotFound = errors.New("latencies directory not found")

// Discover resolves the given glob patterns under dir into a deduplicated,
// lexicographically sorted list of existing regular files. Patterns that
// match nothing (or are malformed) produce warnings rather than errors.
// With no patterns, DefaultPattern is used.
func Discover(dir string, patterns []string) (files []string, warnings []string, err error) {
	fi, statErr := os.Stat(dir)
	if statErr != nil || !fi.IsDir() {
		return nil, nil, fmt.Errorf("%w at '%s'", ErrDirNotFound, dir)
	}

	if len(patterns) == 0 {
		patterns = []string{DefaultPattern}
	}

	seen := make(map[string]bool)
	for _, pattern := range patterns {
		matches, globErr := filepath.Glob(filepath.Join(dir, pattern))
		if globErr != nil {
			warnings = append(warnings, fmt.Sprintf("Malformed pattern '%s': %v", pattern, globErr))
			continue
		}
		if len(matches) == 0 {
			warnings = append(warnings, fmt.Sprintf("No files found matching pattern '%s' in '%s'", pattern, dir))
			continue
		}
		for _, m := range matches {
			// Glob can return directories when the pattern allows it.
			if info, err := os.Stat(m); err != nil || !info.Mode().IsRegular() {
				continue
			}
			if !seen[m] {
				seen[m] = true
				files = append(files, m)
			}
		}
	}

	sort.Strings(files)
	return files, warnings, nil
}
