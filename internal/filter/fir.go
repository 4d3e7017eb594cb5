package filter

import (
	"github.com/tphakala/simd/f64"
)

// minKernelForFFT is the numerator length above which the overlap-save FFT
// convolver beats direct SIMD convolution. Crossover sits around 400-500
// taps with the gonum FFT; transfer functions entered by hand are far
// shorter, but imported FIR designs can exceed it.
const minKernelForFFT = 400

// FIR filters x causally through the FIR numerator b with zero history,
// i.e. y[n] = Σ_k b[k]·x[n-k].
//
// The causal filter is expressed as a valid convolution over a
// front-padded copy of x with the reversed kernel, which maps directly
// onto the SIMD ConvolveValid kernel (and the FFT convolver for long
// numerators).
func FIR(b, x []float64) []float64 {
	y := make([]float64, len(x))
	if len(b) == 0 || len(x) == 0 {
		return y
	}

	m := len(b)
	padded := make([]float64, m-1+len(x))
	copy(padded[m-1:], x)

	kernel := make([]float64, m)
	for i, v := range b {
		kernel[m-1-i] = v
	}

	if m >= minKernelForFFT {
		if conv := NewFFTConvolver(kernel); conv != nil {
			conv.Convolve(y, padded)
			return y
		}
	}

	f64.ConvolveValid(y, padded, kernel)
	return y
}
