package decode

import (
	"encoding/binary"
	"fmt"
	"os"
)

// RecordSize is the on-disk size of one latency record in bytes.
const RecordSize = 8

// SampleSet holds the records decoded from one file. It lives for a single
// analysis pass and is discarded after the report is emitted.
type SampleSet struct {
	Path          string
	Samples       []int64 // decoded records, file order
	Count         int     // number of complete records (== len(Samples))
	Bytes         int64   // raw file size
	TrailingBytes int     // leftover bytes that did not form a whole record (0..7)
}

// ReadFile reads and decodes all complete records from path. A file whose
// size is not a multiple of RecordSize still decodes; the remainder is
// reported via TrailingBytes so the caller can warn. On read failure the
// returned set is nil and the error carries the path.
func ReadFile(path string) (*SampleSet, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	count := len(raw) / RecordSize
	samples := make([]int64, count)
	for i := range samples {
		samples[i] = int64(binary.LittleEndian.Uint64(raw[i*RecordSize:]))
	}

	return &SampleSet{
		Path:          path,
		Samples:       samples,
		Count:         count,
		Bytes:         int64(len(raw)),
		TrailingBytes: len(raw) % RecordSize,
	}, nil
}
