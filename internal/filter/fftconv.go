package filter

import (
	"github.com/tphakala/simd/c128"
	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/dsp/fourier"
)

const (
	// defaultFFTBlockSize is the minimum FFT size (power of 2).
	defaultFFTBlockSize = 512

	// fftHermitianDivisor: a real FFT of size N has N/2 + 1 unique
	// complex coefficients due to Hermitian symmetry.
	fftHermitianDivisor = 2
)

// FFTConvolver performs overlap-save FFT convolution for long FIR
// numerators, O(N log N) instead of O(N·M). The kernel is transformed
// once and reused for every block.
//
// Overlap-save method:
//  1. Process the signal in blocks of fftSize samples with a
//     kernelLen-1 overlap.
//  2. Each block yields blockSize = fftSize - kernelLen + 1 valid
//     output samples.
//  3. The first kernelLen-1 samples of each block are circular-wrap
//     artifacts and are discarded.
type FFTConvolver struct {
	fft       *fourier.FFT
	fftSize   int
	blockSize int

	kernelFFT []complex128
	kernelLen int
	fftLen    int
	scale     float64 // 1/fftSize; gonum's inverse transform does not normalize

	signalBlock []float64
	signalFFT   []complex128
	productFFT  []complex128
	ifftResult  []float64
}

// NewFFTConvolver creates a convolver for the given kernel. The kernel is
// expected in correlation order (as passed to f64.ConvolveValid); it is
// reversed internally so that circular convolution produces the valid
// convolution y[n] = Σ signal[n+k]·kernel[k].
func NewFFTConvolver(kernel []float64) *FFTConvolver {
	kernelLen := len(kernel)
	if kernelLen == 0 {
		return nil
	}

	fftSize := defaultFFTBlockSize
	for fftSize < 2*kernelLen {
		fftSize *= 2
	}
	blockSize := fftSize - kernelLen + 1

	fft := fourier.NewFFT(fftSize)

	kernelPadded := make([]float64, fftSize)
	for i := range kernelLen {
		kernelPadded[i] = kernel[kernelLen-1-i]
	}
	kernelFFT := fft.Coefficients(nil, kernelPadded)

	fftLen := fftSize/fftHermitianDivisor + 1

	return &FFTConvolver{
		fft:         fft,
		fftSize:     fftSize,
		blockSize:   blockSize,
		kernelFFT:   kernelFFT,
		kernelLen:   kernelLen,
		fftLen:      fftLen,
		scale:       1.0 / float64(fftSize),
		signalBlock: make([]float64, fftSize),
		signalFFT:   make([]complex128, fftLen),
		productFFT:  make([]complex128, fftLen),
		ifftResult:  make([]float64, fftSize),
	}
}

// Convolve writes the valid convolution of signal with the kernel into
// dst. dst must have length >= len(signal) - kernelLen + 1.
func (c *FFTConvolver) Convolve(dst, signal []float64) {
	signalLen := len(signal)
	outputLen := signalLen - c.kernelLen + 1
	if outputLen <= 0 || len(dst) < outputLen {
		return
	}

	outIdx := 0
	overlap := c.kernelLen - 1

	for outIdx < outputLen {
		for i := range c.signalBlock {
			c.signalBlock[i] = 0
		}

		copyLen := c.fftSize
		if outIdx+copyLen > signalLen {
			copyLen = signalLen - outIdx
		}
		if copyLen > 0 {
			copy(c.signalBlock, signal[outIdx:outIdx+copyLen])
		}

		c.signalFFT = c.fft.Coefficients(c.signalFFT, c.signalBlock)
		c128.Mul(c.productFFT, c.signalFFT, c.kernelFFT)
		c.ifftResult = c.fft.Sequence(c.ifftResult, c.productFFT)
		f64.Scale(c.ifftResult, c.ifftResult, c.scale)

		validSamples := c.blockSize
		if outIdx+validSamples > outputLen {
			validSamples = outputLen - outIdx
		}
		copy(dst[outIdx:outIdx+validSamples], c.ifftResult[overlap:overlap+validSamples])

		outIdx += validSamples
	}
}
