// Package stats provides the shared least-squares and goodness-of-fit
// routines used by the regression fitters.
package stats

// Mean calculates the arithmetic mean of values.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// OLSLine fits y = slope*x + intercept by ordinary least squares over the
// (xs, ys) pairs using the closed form
//
//	slope     = (n*Σxy - Σx*Σy) / (n*Σx² - (Σx)²)
//	intercept = (Σy - slope*Σx) / n
//
// ok is false when fewer than two pairs are given or the denominator is
// exactly zero (all x identical). The fitters call this with their own
// (x, y) transforms so the closed form exists in one place.
func OLSLine(xs, ys []float64) (slope, intercept float64, ok bool) {
	n := len(xs)
	if n < 2 || len(ys) != n {
		return 0, 0, false
	}

	var sumX, sumY, sumXY, sumX2 float64
	for i := 0; i < n; i++ {
		sumX += xs[i]
		sumY += ys[i]
		sumXY += xs[i] * ys[i]
		sumX2 += xs[i] * xs[i]
	}

	nf := float64(n)
	denom := nf*sumX2 - sumX*sumX
	if denom == 0 {
		return 0, 0, false
	}

	slope = (nf*sumXY - sumX*sumY) / denom
	intercept = (sumY - slope*sumX) / nf
	return slope, intercept, true
}

// RSquared calculates the coefficient of determination 1 - SSres/SStot for
// the given actual and predicted values. When all actual values are identical
// (SStot == 0) it returns 0 rather than a non-finite value, signaling that
// fit quality is not meaningful. The result can be negative for a fit worse
// than predicting the mean.
func RSquared(actual, predicted []float64) float64 {
	if len(actual) == 0 || len(actual) != len(predicted) {
		return 0
	}

	mean := Mean(actual)
	var ssTot, ssRes float64
	for i, a := range actual {
		d := a - mean
		ssTot += d * d
		r := a - predicted[i]
		ssRes += r * r
	}

	if ssTot == 0 {
		return 0
	}
	return 1 - ssRes/ssTot
}
