package filter

import (
	"errors"
	"fmt"
)

// ErrBadSection reports a second-order section that cannot be normalized.
var ErrBadSection = errors.New("filter: section a0 coefficient is zero")

// Section is a single normalized biquad (a0 folded into the remaining
// coefficients) with its Direct Form II Transposed state.
type Section struct {
	b0, b1, b2 float64
	a1, a2     float64
	z1, z2     float64
}

// newSection normalizes one [b0 b1 b2 a0 a1 a2] coefficient row.
func newSection(row [6]float64) (Section, error) {
	a0 := row[3]
	if a0 == 0 {
		return Section{}, ErrBadSection
	}
	return Section{
		b0: row[0] / a0,
		b1: row[1] / a0,
		b2: row[2] / a0,
		a1: row[4] / a0,
		a2: row[5] / a0,
	}, nil
}

// processSample advances the biquad by one sample.
func (s *Section) processSample(x float64) float64 {
	y := s.b0*x + s.z1
	s.z1 = s.b1*x - s.a1*y + s.z2
	s.z2 = s.b2*x - s.a2*y
	return y
}

// SOSCascade filters x through a cascade of second-order sections, each
// section consuming the previous section's output. Sections are given as
// [b0 b1 b2 a0 a1 a2] rows; each row is normalized by its own a0.
// State starts at zero, matching a single causal pass.
func SOSCascade(sos [][6]float64, x []float64) ([]float64, error) {
	if len(sos) == 0 {
		return nil, fmt.Errorf("filter: %w", ErrNoCoefficients)
	}

	sections := make([]Section, len(sos))
	for i, row := range sos {
		sec, err := newSection(row)
		if err != nil {
			return nil, fmt.Errorf("section %d: %w", i, err)
		}
		sections[i] = sec
	}

	y := make([]float64, len(x))
	for n, v := range x {
		for i := range sections {
			v = sections[i].processSample(v)
		}
		y[n] = v
	}
	return y, nil
}
