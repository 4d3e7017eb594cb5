package filter

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cedricboudinet/pyFDA/internal/testutil"
)

func TestForwardBackwardIdentity(t *testing.T) {
	x := []float64{1, -2, 3, 0.5, 0}
	y, err := ForwardBackward([]float64{1}, []float64{1}, x)
	require.NoError(t, err)
	testutil.AssertSlicesClose(t, x, y, testutil.DefaultTolerance)
}

func TestForwardBackwardZeroPhase(t *testing.T) {
	// A pulse well inside the sequence keeps its peak position under
	// zero-phase filtering, while the causal pass shifts it by the
	// filter delay.
	const center = 32
	x := make([]float64, 64)
	x[center] = 1

	b := []float64{0.25, 0.5, 0.25}
	a := []float64{1}

	causal, err := TransferFunc(b, a, x)
	require.NoError(t, err)
	zeroPhase, err := ForwardBackward(b, a, x)
	require.NoError(t, err)

	require.Equal(t, center+1, testutil.ArgMaxAbs(causal))
	require.Equal(t, center, testutil.ArgMaxAbs(zeroPhase))

	// Away from the edges the zero-phase response is the symmetric
	// autocorrelation of b around the pulse.
	want := []float64{0.0625, 0.25, 0.375, 0.25, 0.0625}
	testutil.AssertSlicesClose(t, want, zeroPhase[center-2:center+3], testutil.DefaultTolerance)
}

func TestForwardBackwardSquaresMagnitudeAtDC(t *testing.T) {
	// Two passes apply |H|² at every frequency; for a step, the settled
	// value is the squared DC gain.
	b := []float64{0.1}
	a := []float64{1, -0.9} // DC gain 1
	x := make([]float64, 800)
	for i := range x {
		x[i] = 1
	}

	y, err := ForwardBackward(b, a, x)
	require.NoError(t, err)

	// Mid-sequence, far from both edge transients.
	testutil.AssertRelativeError(t, 1.0, y[len(y)/2], testutil.SettlingTolerance)
}

func TestForwardBackwardCMatchesRealPath(t *testing.T) {
	b := []float64{0.2, 0.3}
	a := []float64{1, -0.4}
	x := []float64{1, 0.5, -0.25, 0, 2, -1, 0.75, 0}

	yReal, err := ForwardBackward(b, a, x)
	require.NoError(t, err)

	bc := []complex128{complex(b[0], 0), complex(b[1], 0)}
	ac := []complex128{complex(a[0], 0), complex(a[1], 0)}
	yc, err := ForwardBackwardC(bc, ac, x)
	require.NoError(t, err)

	require.Len(t, yc, len(yReal))
	for i := range yc {
		require.InDelta(t, yReal[i], real(yc[i]), testutil.DefaultTolerance, "real part at n=%d", i)
		require.InDelta(t, 0, imag(yc[i]), testutil.DefaultTolerance, "imag part at n=%d", i)
	}
}
