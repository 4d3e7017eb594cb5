package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cedricboudinet/pyFDA/internal/testutil"
)

func impulse(n int) []float64 {
	x := make([]float64, n)
	x[0] = 1
	return x
}

func TestTransferFuncIdentity(t *testing.T) {
	x := []float64{1, -2, 3, 0.5}
	y, err := TransferFunc([]float64{1}, []float64{1}, x)
	require.NoError(t, err)
	assert.Equal(t, x, y)
}

func TestTransferFuncFIRImpulse(t *testing.T) {
	y, err := TransferFunc([]float64{1, 0.5}, []float64{1}, impulse(5))
	require.NoError(t, err)
	testutil.AssertSlicesClose(t, []float64{1, 0.5, 0, 0, 0}, y, testutil.DefaultTolerance)
}

func TestTransferFuncIIRImpulse(t *testing.T) {
	// y[n] = x[n] + 0.5·y[n-1]: impulse response 0.5^n.
	y, err := TransferFunc([]float64{1}, []float64{1, -0.5}, impulse(6))
	require.NoError(t, err)

	want := []float64{1, 0.5, 0.25, 0.125, 0.0625, 0.03125}
	testutil.AssertSlicesClose(t, want, y, testutil.DefaultTolerance)
}

func TestTransferFuncNormalizesLeadingDenominator(t *testing.T) {
	x := []float64{1, 2, 3, 4}

	y, err := TransferFunc([]float64{1, 0.5}, []float64{1, -0.3}, x)
	require.NoError(t, err)
	yScaled, err := TransferFunc([]float64{2, 1}, []float64{2, -0.6}, x)
	require.NoError(t, err)

	testutil.AssertSlicesClose(t, y, yScaled, testutil.DefaultTolerance)
}

func TestTransferFuncUnbalancedOrders(t *testing.T) {
	// Numerator longer than denominator and vice versa.
	x := impulse(6)

	y, err := TransferFunc([]float64{1, 0, 0.25}, []float64{1}, x)
	require.NoError(t, err)
	testutil.AssertSlicesClose(t, []float64{1, 0, 0.25, 0, 0, 0}, y, testutil.DefaultTolerance)

	y, err = TransferFunc([]float64{1}, []float64{1, 0, 0.25}, x)
	require.NoError(t, err)
	// y[n] = x[n] - 0.25·y[n-2]
	want := []float64{1, 0, -0.25, 0, 0.0625, 0}
	testutil.AssertSlicesClose(t, want, y, testutil.DefaultTolerance)
}

func TestTransferFuncErrors(t *testing.T) {
	_, err := TransferFunc(nil, []float64{1}, impulse(4))
	assert.ErrorIs(t, err, ErrNoCoefficients)

	_, err = TransferFunc([]float64{1}, nil, impulse(4))
	assert.ErrorIs(t, err, ErrNoCoefficients)

	_, err = TransferFunc([]float64{1}, []float64{0, 1}, impulse(4))
	assert.ErrorIs(t, err, ErrZeroLeadingDenominator)
}

func TestIsFIR(t *testing.T) {
	assert.True(t, IsFIR([]float64{1}))
	assert.True(t, IsFIR([]float64{1, 0, 0}))
	assert.False(t, IsFIR([]float64{1, -0.5}))
	assert.False(t, IsFIR([]float64{1, 0, 1e-12}))
}

func TestTransferFuncCMatchesRealPath(t *testing.T) {
	b := []float64{0.2, 0.3, 0.1}
	a := []float64{1, -0.4, 0.05}
	x := []float64{1, 0.5, -0.25, 0, 2, -1}

	yReal, err := TransferFunc(b, a, x)
	require.NoError(t, err)

	bc := make([]complex128, len(b))
	for i, v := range b {
		bc[i] = complex(v, 0)
	}
	ac := make([]complex128, len(a))
	for i, v := range a {
		ac[i] = complex(v, 0)
	}
	yc, err := TransferFuncC(bc, ac, x)
	require.NoError(t, err)

	require.Len(t, yc, len(yReal))
	for i := range yc {
		assert.InDelta(t, yReal[i], real(yc[i]), testutil.DefaultTolerance, "real part at n=%d", i)
		assert.InDelta(t, 0, imag(yc[i]), testutil.DefaultTolerance, "imag part at n=%d", i)
	}
}

func TestTransferFuncCComplexNumerator(t *testing.T) {
	b := []complex128{1, complex(0, 0.5)}
	a := []complex128{1}

	y, err := TransferFuncC(b, a, impulse(3))
	require.NoError(t, err)

	assert.InDelta(t, 1, real(y[0]), testutil.DefaultTolerance)
	assert.InDelta(t, 0, imag(y[0]), testutil.DefaultTolerance)
	assert.InDelta(t, 0, real(y[1]), testutil.DefaultTolerance)
	assert.InDelta(t, 0.5, imag(y[1]), testutil.DefaultTolerance)
}
