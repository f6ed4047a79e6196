// Package analyze filters decoded latency samples and computes the summary
// statistics for one file: five-number summary plus tail percentiles.
//
// Negative records are invalid sentinel markers and are excluded up front.
// Percentiles use the exclusive linear-interpolation quantile estimator;
// the tail percentiles (P90, P99, P99.9) fall back to the maximum when the
// valid sample count is below their estimation thresholds.
package analyze
