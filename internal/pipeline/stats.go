package pipeline

// RunStats tracks aggregate counters across a batch run.
type RunStats struct {
	Total    int // files discovered
	Current  int // index of the file being processed (1-based)
	Analyzed int // files with a full summary
	NoData   int // files with no valid samples after filtering
	Empty    int // files that decoded to zero records
	Failed   int // files that could not be read

	TotalSamples  int64 // records decoded across all files
	TotalExcluded int64 // negative records excluded across all files
}

// ExcludedPercent returns the share of decoded records that were excluded
// as negative, in percent. Zero when nothing was decoded.
func (s *RunStats) ExcludedPercent() float64 {
	if s.TotalSamples == 0 {
		return 0
	}
	return 100 * float64(s.TotalExcluded) / float64(s.TotalSamples)
}
