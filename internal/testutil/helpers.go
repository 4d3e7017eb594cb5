// Package testutil provides reusable test helper functions for the
// transient response engine tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance  = 1e-12
	CascadeTolerance  = 1e-9
	SettlingTolerance = 1e-6
	DBTolerance       = 0.01
)

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertSlicesClose verifies element-wise equality of two sequences
// within an absolute tolerance.
func AssertSlicesClose(t *testing.T, want, got []float64, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Len(t, got, len(want), msgAndArgs...) {
		return false
	}
	for i := range want {
		if !assert.InDelta(t, want[i], got[i], tolerance,
			"mismatch at n=%d: got %g, want %g", i, got[i], want[i]) {
			return false
		}
	}
	return true
}

// AssertRelativeError verifies that the relative error between actual and
// expected is within tolerance.
func AssertRelativeError(t *testing.T, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	return assert.LessOrEqual(t, relError, tolerance,
		"relative error %e exceeds tolerance %e (expected=%g, actual=%g)",
		relError, tolerance, expected, actual)
}

// AssertAllZero verifies that every element is zero within tolerance.
func AssertAllZero(t *testing.T, s []float64, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.Abs(v) > tolerance {
			return assert.Fail(t, "nonzero element",
				"s[%d]=%g exceeds tolerance %g", i, v, tolerance)
		}
	}
	return true
}

// AssertTailBelow verifies that the last tailLen elements stay below the
// bound in magnitude; used for settling-error convergence checks.
func AssertTailBelow(t *testing.T, s []float64, tailLen int, bound float64, msgAndArgs ...any) bool {
	t.Helper()
	if tailLen > len(s) {
		tailLen = len(s)
	}
	for i := len(s) - tailLen; i < len(s); i++ {
		if math.Abs(s[i]) > bound {
			return assert.Fail(t, "tail not settled",
				"s[%d]=%g exceeds bound %g", i, s[i], bound)
		}
	}
	return true
}

// ArgMaxAbs returns the index of the largest-magnitude element.
func ArgMaxAbs(s []float64) int {
	idx := 0
	maxAbs := 0.0
	for i, v := range s {
		if a := math.Abs(v); a > maxAbs {
			maxAbs = a
			idx = i
		}
	}
	return idx
}

// PolyMul multiplies two polynomial coefficient sequences; used to build
// an equivalent (b, a) transfer function from cascaded sections.
func PolyMul(p, q []float64) []float64 {
	out := make([]float64, len(p)+len(q)-1)
	for i, pv := range p {
		for j, qv := range q {
			out[i+j] += pv * qv
		}
	}
	return out
}
