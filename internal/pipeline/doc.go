// Package pipeline orchestrates file discovery, per-file decode and
// analysis, report emission, and batch summary reporting.
//
// Run is the batch entry point: it resolves the glob patterns under the
// samples directory (Discover), then for each file decodes the records,
// summarizes the valid samples, and prints one report block to stdout,
// accumulating RunStats counters along the way. Per-file problems are
// logged and skipped; nothing aborts the batch.
package pipeline
