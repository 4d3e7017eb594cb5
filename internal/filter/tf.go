// Package filter applies LTI digital filters in transfer-function,
// second-order-section and zero-phase form.
//
// All causal paths use the Direct Form II Transposed recursion:
//
//	y[n]   = b0*x[n] + z0
//	z[i]   = b[i+1]*x[n] - a[i+1]*y[n] + z[i+1]
//
// which matches the per-section recursion used by the biquad cascade and
// keeps the state vector at max(len(b), len(a)) - 1 entries regardless of
// how the orders of numerator and denominator differ.
package filter

import (
	"errors"
	"fmt"
)

var (
	// ErrNoCoefficients reports a transfer function without usable
	// coefficient arrays.
	ErrNoCoefficients = errors.New("filter: empty coefficient array")

	// ErrZeroLeadingDenominator reports a denominator that cannot be
	// normalized because a[0] == 0.
	ErrZeroLeadingDenominator = errors.New("filter: leading denominator coefficient is zero")
)

// normalizeTF pads b and a to a common length and divides both by a[0],
// returning fresh slices.
func normalizeTF(b, a []float64) (bn, an []float64, err error) {
	if len(b) == 0 || len(a) == 0 {
		return nil, nil, ErrNoCoefficients
	}
	if a[0] == 0 {
		return nil, nil, ErrZeroLeadingDenominator
	}

	n := max(len(b), len(a))
	bn = make([]float64, n)
	an = make([]float64, n)
	inv := 1 / a[0]
	for i, v := range b {
		bn[i] = v * inv
	}
	for i, v := range a {
		an[i] = v * inv
	}
	return bn, an, nil
}

// IsFIR reports whether the denominator has no feedback taps beyond a[0],
// i.e. whether the transfer function describes a finite impulse response.
func IsFIR(a []float64) bool {
	for _, v := range a[min(len(a), 1):] {
		if v != 0 {
			return false
		}
	}
	return true
}

// TransferFunc filters x through the transfer function (b, a) in a single
// causal pass with zero initial state. a[0] normalizes the remaining
// coefficients and must be nonzero. FIR transfer functions (no feedback
// taps) are dispatched to the convolution fast path.
func TransferFunc(b, a, x []float64) ([]float64, error) {
	bn, an, err := normalizeTF(b, a)
	if err != nil {
		return nil, err
	}

	if IsFIR(an) {
		return FIR(bn, x), nil
	}

	y := make([]float64, len(x))
	z := make([]float64, len(bn)-1)
	for n, xv := range x {
		yv := bn[0]*xv + firstState(z)
		for i := 0; i < len(z); i++ {
			next := 0.0
			if i+1 < len(z) {
				next = z[i+1]
			}
			z[i] = bn[i+1]*xv - an[i+1]*yv + next
		}
		y[n] = yv
	}
	return y, nil
}

// TransferFuncC is TransferFunc for complex coefficient sets operating on
// a real input sequence.
func TransferFuncC(b, a []complex128, x []float64) ([]complex128, error) {
	bn, an, err := normalizeTFC(b, a)
	if err != nil {
		return nil, err
	}

	y := make([]complex128, len(x))
	z := make([]complex128, len(bn)-1)
	for n, xr := range x {
		xv := complex(xr, 0)
		yv := bn[0]*xv + firstStateC(z)
		for i := 0; i < len(z); i++ {
			next := complex(0, 0)
			if i+1 < len(z) {
				next = z[i+1]
			}
			z[i] = bn[i+1]*xv - an[i+1]*yv + next
		}
		y[n] = yv
	}
	return y, nil
}

// transferFuncCSeq filters a complex sequence; used by the complex
// zero-phase path where the intermediate signal is already complex.
func transferFuncCSeq(bn, an []complex128, x []complex128) []complex128 {
	y := make([]complex128, len(x))
	z := make([]complex128, len(bn)-1)
	for n, xv := range x {
		yv := bn[0]*xv + firstStateC(z)
		for i := 0; i < len(z); i++ {
			next := complex(0, 0)
			if i+1 < len(z) {
				next = z[i+1]
			}
			z[i] = bn[i+1]*xv - an[i+1]*yv + next
		}
		y[n] = yv
	}
	return y
}

func normalizeTFC(b, a []complex128) (bn, an []complex128, err error) {
	if len(b) == 0 || len(a) == 0 {
		return nil, nil, ErrNoCoefficients
	}
	if a[0] == 0 {
		return nil, nil, fmt.Errorf("%w (complex)", ErrZeroLeadingDenominator)
	}

	n := max(len(b), len(a))
	bn = make([]complex128, n)
	an = make([]complex128, n)
	inv := 1 / a[0]
	for i, v := range b {
		bn[i] = v * inv
	}
	for i, v := range a {
		an[i] = v * inv
	}
	return bn, an, nil
}

// firstState returns z[0] for a possibly order-zero filter.
func firstState(z []float64) float64 {
	if len(z) == 0 {
		return 0
	}
	return z[0]
}

func firstStateC(z []complex128) complex128 {
	if len(z) == 0 {
		return 0
	}
	return z[0]
}
