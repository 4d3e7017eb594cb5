// Package mathutil provides small numeric primitives shared by the
// stimulus generator and the filter engine.
package mathutil

import (
	"math"
)

const (
	// twoPi is one full waveform period in radians.
	twoPi = 2 * math.Pi

	// eps is the float64 machine epsilon (distance from 1.0 to the next
	// representable value).
	eps = 0x1p-52

	// RealTolEps is the imaginary-residue tolerance in multiples of the
	// float64 machine epsilon. Filtering with nominally complex
	// coefficients often leaves residues of a few eps on results that are
	// mathematically real; anything below this threshold is treated as
	// rounding noise.
	RealTolEps = 1000.0
)

// Sign returns 1 for positive, -1 for negative and 0 for zero input.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// Sawtooth evaluates a sawtooth waveform at the given phase in radians.
// The waveform rises linearly from -1 to 1 over each 2π period, with
// Sawtooth(0) == -1.
func Sawtooth(phase float64) float64 {
	frac := math.Mod(phase, twoPi)
	if frac < 0 {
		frac += twoPi
	}
	return frac/math.Pi - 1
}

// MaxAbsComplex returns the largest magnitude in the sequence, or 0 for an
// empty sequence.
func MaxAbsComplex(s []complex128) float64 {
	maxAbs := 0.0
	for _, v := range s {
		// Cheaper than cmplx.Abs and sufficient for a scale estimate.
		a := math.Max(math.Abs(real(v)), math.Abs(imag(v)))
		if a > maxAbs {
			maxAbs = a
		}
	}
	return maxAbs
}

// RealIfClose splits a complex sequence into real and imaginary parts,
// discarding imaginary residues that are negligible at the sequence's
// scale. The threshold is RealTolEps machine epsilons relative to the
// largest magnitude in the sequence (with a floor of 1.0 so that all-zero
// and tiny sequences behave sensibly).
//
// If every imaginary part is below the threshold the imaginary slice is
// nil and isComplex is false. Otherwise individual sub-threshold residues
// are snapped to zero and both parts are returned.
func RealIfClose(s []complex128) (re, im []float64, isComplex bool) {
	scale := math.Max(MaxAbsComplex(s), 1.0)
	threshold := RealTolEps * eps * scale

	re = make([]float64, len(s))
	for i, v := range s {
		re[i] = real(v)
		if math.Abs(imag(v)) >= threshold {
			isComplex = true
		}
	}
	if !isComplex {
		return re, nil, false
	}

	im = make([]float64, len(s))
	for i, v := range s {
		iv := imag(v)
		if math.Abs(iv) < threshold {
			iv = 0
		}
		im[i] = iv
	}
	return re, im, true
}
