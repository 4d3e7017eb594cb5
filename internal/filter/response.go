package filter

import (
	"math"
	"math/cmplx"
)

// DCGain evaluates the transfer function at zero frequency (z = 1) and
// returns the gain magnitude |H(e^j0)| = |Σb / Σa|. It is used to shift a
// step response to its settling error relative to the asymptotic value.
func DCGain(b, a []float64) (float64, error) {
	if len(b) == 0 || len(a) == 0 {
		return 0, ErrNoCoefficients
	}

	var sumB, sumA float64
	for _, v := range b {
		sumB += v
	}
	for _, v := range a {
		sumA += v
	}
	if sumA == 0 {
		return 0, ErrZeroLeadingDenominator
	}
	return math.Abs(sumB / sumA), nil
}

// DCGainC is DCGain for complex coefficient sets.
func DCGainC(b, a []complex128) (float64, error) {
	if len(b) == 0 || len(a) == 0 {
		return 0, ErrNoCoefficients
	}

	var sumB, sumA complex128
	for _, v := range b {
		sumB += v
	}
	for _, v := range a {
		sumA += v
	}
	if sumA == 0 {
		return 0, ErrZeroLeadingDenominator
	}
	return cmplx.Abs(sumB / sumA), nil
}
