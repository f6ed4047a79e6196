// Package decode reads raw latency sample files into typed sample sets.
//
// A sample file is a headerless sequence of little-endian signed 64-bit
// integers, one nanosecond measurement per record. ReadFile performs a
// single read per file and decodes every complete record; a trailing
// partial record is counted so the caller can warn about it.
package decode
