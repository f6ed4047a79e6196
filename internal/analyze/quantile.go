package analyze

// cutPoint returns the i-th of n cut points over sorted data, using linear
// interpolation with the exclusive estimation method: the data are treated
// as a sample that may contain more extreme values than observed. Requires
// 1 <= i < n and len(sorted) >= 2.
//
// With ld = len(sorted) and m = ld+1, the cut point sits at rank i*m/n:
// j is the integer part (clamped so both neighbors exist) and delta the
// fractional remainder scaled by n.
func cutPoint(sorted []float64, i, n int) float64 {
	ld := len(sorted)
	m := ld + 1

	j := i * m / n
	if j < 1 {
		j = 1
	} else if j > ld-1 {
		j = ld - 1
	}

	delta := i*m - j*n
	return (sorted[j-1]*float64(n-delta) + sorted[j]*float64(delta)) / float64(n)
}
