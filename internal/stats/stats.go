// Package stats provides the small set of descriptive statistics the
// scorers and the correlation engine share. Every function is total over
// its input: empty or degenerate series yield defined zero values, never
// a panic or NaN.
package stats

import "math"

// Mean returns the arithmetic mean, or 0 for an empty series.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// StdDev returns the population standard deviation, or 0 for fewer than
// two points.
func StdDev(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	mean := Mean(xs)
	var ss float64
	for _, x := range xs {
		d := x - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(xs)))
}

// CoefficientOfVariation returns stddev/mean, or 0 when the mean is 0.
// The zero guard keeps consistency scoring total over all-zero series.
func CoefficientOfVariation(xs []float64) float64 {
	mean := Mean(xs)
	if mean == 0 {
		return 0
	}
	return StdDev(xs) / mean
}

// Slope returns the least-squares slope of ys over the index 0..n-1,
// or 0 for fewer than two points.
func Slope(ys []float64) float64 {
	n := len(ys)
	if n < 2 {
		return 0
	}
	// x values are the day indexes, so the sums have closed forms.
	nf := float64(n)
	sumX := nf * (nf - 1) / 2
	sumXX := nf * (nf - 1) * (2*nf - 1) / 6
	var sumY, sumXY float64
	for i, y := range ys {
		sumY += y
		sumXY += float64(i) * y
	}
	denom := nf*sumXX - sumX*sumX
	if denom == 0 {
		return 0
	}
	return (nf*sumXY - sumX*sumY) / denom
}

// Pearson returns the Pearson correlation coefficient of two
// equal-length series. Zero variance in either series yields 0.
func Pearson(xs, ys []float64) float64 {
	n := len(xs)
	if n != len(ys) || n < 2 {
		return 0
	}
	meanX, meanY := Mean(xs), Mean(ys)
	var num, ssX, ssY float64
	for i := 0; i < n; i++ {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		num += dx * dy
		ssX += dx * dx
		ssY += dy * dy
	}
	denom := math.Sqrt(ssX * ssY)
	if denom == 0 {
		return 0
	}
	r := num / denom
	return Clamp(r, -1, 1)
}

// Clamp saturates v into [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampScore saturates a score into the system-wide [0,100] range.
// Out-of-range computations are saturated, never propagated as errors.
func ClampScore(v float64) float64 {
	return Clamp(v, 0, 100)
}
