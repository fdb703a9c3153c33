package service

import "sort"

// interpolateLinear evaluates the piecewise linear function through the
// points (xs[i], ys[i]) at x. xs must be strictly ascending with at least two
// points. Outside [xs[0], xs[n-1]] the nearest segment is extended, never
// clamped.
func interpolateLinear(xs, ys []float64, x float64) float64 {
	lo, hi := bracketOrBoundary(xs, x)
	slope := (ys[hi] - ys[lo]) / (xs[hi] - xs[lo])
	return ys[lo] + slope*(x-xs[lo])
}

// bracketOrBoundary returns the indices of the segment containing x, or of
// the first/last segment when x lies outside the axis.
func bracketOrBoundary(xs []float64, x float64) (lo, hi int) {
	// first index with xs[idx] >= x
	idx := sort.SearchFloat64s(xs, x)

	if idx <= 0 {
		return 0, 1
	}
	if idx >= len(xs) {
		return len(xs) - 2, len(xs) - 1
	}
	return idx - 1, idx
}

// interpolateRows interpolates every one of the first n rows at rate.
func interpolateRows(rates []float64, rows [][]float64, rate float64, n int) []float64 {
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = interpolateLinear(rates, rows[i], rate)
	}
	return out
}
