package transim

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/cedricboudinet/pyFDA/internal/filter"
	"github.com/cedricboudinet/pyFDA/internal/mathutil"
	"github.com/cedricboudinet/pyFDA/internal/stimulus"
)

// StimulusKind selects the waveform family of a stimulus.
type StimulusKind = stimulus.Kind

// Stimulus waveform families.
const (
	Pulse     = stimulus.Pulse
	Step      = stimulus.Step
	StepError = stimulus.StepError
	Cosine    = stimulus.Cosine
	Sine      = stimulus.Sine
	Rect      = stimulus.Rect
	Sawtooth  = stimulus.Sawtooth
)

// NoiseKind selects the additive noise distribution of a stimulus.
type NoiseKind = stimulus.Noise

// Noise distributions.
const (
	NoiseNone     = stimulus.NoiseNone
	NoiseGaussian = stimulus.NoiseGaussian
	NoiseUniform  = stimulus.NoiseUniform
)

// StimulusSpec describes the probe signal: waveform family, parameters,
// and optional noise/DC perturbations. Frequencies are normalized to the
// sample rate (cycles/sample); phases are in radians.
type StimulusSpec = stimulus.Spec

// FilterSpec describes the LTI filter to simulate. The filter is supplied
// as a numerator/denominator pair (B, A) plus an optional second-order
// section cascade. BImag and AImag optionally carry the imaginary parts
// of complex coefficient sets; when nil the filter is real.
type FilterSpec struct {
	// B and A are the transfer function numerator and denominator.
	// A usable filter requires len(B) >= 2 and len(A) >= 2; FIR filters
	// are expressed with a trailing zero denominator, e.g. A = [1, 0].
	B []float64
	A []float64

	// BImag and AImag are the imaginary parts of complex coefficient
	// sets (e.g. complex single-sideband designs). When non-nil they
	// must match B and A in length.
	BImag []float64
	AImag []float64

	// SOS is the second-order section cascade, one [b0 b1 b2 a0 a1 a2]
	// row per biquad. A non-empty cascade takes precedence over (B, A)
	// for causal filtering.
	SOS [][6]float64

	// AntiCausal selects zero-phase forward-backward filtering with
	// (B, A). It takes precedence over the SOS cascade.
	AntiCausal bool

	// SampleRate in Hz; scales the time axis of the result.
	SampleRate float64
}

// Validate checks that the filter defines a proper transfer function.
func (f *FilterSpec) Validate() error {
	if min(len(f.A), len(f.B)) < minCoefficients {
		return fmt.Errorf("%w: len(a)=%d, len(b)=%d (both must be >= %d)",
			ErrInvalidFilter, len(f.A), len(f.B), minCoefficients)
	}
	if f.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %g must be > 0", ErrInvalidFilter, f.SampleRate)
	}
	if f.BImag != nil && len(f.BImag) != len(f.B) {
		return fmt.Errorf("%w: len(bImag)=%d != len(b)=%d", ErrInvalidFilter, len(f.BImag), len(f.B))
	}
	if f.AImag != nil && len(f.AImag) != len(f.A) {
		return fmt.Errorf("%w: len(aImag)=%d != len(a)=%d", ErrInvalidFilter, len(f.AImag), len(f.A))
	}
	return nil
}

// IsIIR reports whether the filter has feedback taps beyond a trivial
// leading denominator coefficient.
func (f *FilterSpec) IsIIR() bool {
	for _, v := range f.A[min(len(f.A), 1):] {
		if v != 0 {
			return true
		}
	}
	if f.AImag != nil {
		for _, v := range f.AImag[min(len(f.AImag), 1):] {
			if v != 0 {
				return true
			}
		}
	}
	return false
}

// isComplex reports whether the coefficient set carries a nonzero
// imaginary part.
func (f *FilterSpec) isComplex() bool {
	for _, v := range f.BImag {
		if v != 0 {
			return true
		}
	}
	for _, v := range f.AImag {
		if v != 0 {
			return true
		}
	}
	return false
}

// complexCoefficients assembles the complex numerator and denominator.
func (f *FilterSpec) complexCoefficients() (b, a []complex128) {
	b = make([]complex128, len(f.B))
	for i, re := range f.B {
		im := 0.0
		if f.BImag != nil {
			im = f.BImag[i]
		}
		b[i] = complex(re, im)
	}
	a = make([]complex128, len(f.A))
	for i, re := range f.A {
		im := 0.0
		if f.AImag != nil {
			im = f.AImag[i]
		}
		a[i] = complex(re, im)
	}
	return b, a
}

// Request describes one simulation: the filter, the stimulus and the
// sizing parameters.
type Request struct {
	Filter   FilterSpec
	Stimulus StimulusSpec

	// NumPoints is the number of displayed samples; 0 selects the
	// automatic heuristic (100 for IIR filters, min(len(B), 100) for
	// FIR so the full impulse response is shown).
	NumPoints int

	// StartOffset prepends extra samples ahead of the displayed region;
	// noise never perturbs this startup transient region. The total
	// simulated length is resolved points + StartOffset.
	StartOffset int
}

// Result holds one simulation outcome. It is created fresh on every call
// and never mutated afterwards.
type Result struct {
	// T is the time axis in seconds, X the stimulus, Y the (real part
	// of the) response. All three share the same length.
	T []float64
	X []float64
	Y []float64

	// YImag is the imaginary part of the response; non-nil exactly when
	// IsComplex is true.
	YImag     []float64
	IsComplex bool

	// Title and ResponseLabel describe the simulation for the rendering
	// layer ("Impulse Response" / "h[n]" and so on).
	Title         string
	ResponseLabel string
}

// Config holds simulator configuration.
type Config struct {
	// Seed for the noise generator. Zero selects a time-based seed;
	// pass an explicit seed for reproducible noisy stimuli.
	Seed int64
}

// Simulator computes transient responses. Each Run call is independent
// and allocates a fresh Result; the only state is the noise source, so
// noise-free simulations are pure functions of the request.
type Simulator struct {
	rng *rand.Rand
}

// New creates a Simulator. A nil config selects defaults.
func New(cfg *Config) *Simulator {
	var seed int64
	if cfg != nil {
		seed = cfg.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Simulator{rng: rand.New(rand.NewSource(seed))}
}

// Run computes the stimulus x[n] and the filter response y[n] for one
// request. It fails with ErrInvalidFilter or ErrInvalidStimulus on a
// degenerate configuration; no partial result is produced.
func (s *Simulator) Run(req *Request) (*Result, error) {
	f := &req.Filter
	if err := f.Validate(); err != nil {
		return nil, err
	}
	if req.StartOffset < 0 {
		return nil, fmt.Errorf("%w: negative start offset %d", ErrInvalidStimulus, req.StartOffset)
	}

	n := s.resolvePoints(req) + req.StartOffset
	t := timeAxis(n, f.SampleRate)

	x, err := stimulus.NewGenerator(s.rng).Generate(req.Stimulus, t, req.StartOffset)
	if err != nil {
		return nil, err
	}

	res := &Result{
		T:             t,
		X:             x,
		Title:         req.Stimulus.Kind.Title(),
		ResponseLabel: req.Stimulus.Kind.ResponseLabel(),
	}

	if f.isComplex() {
		if err := s.respondComplex(req, x, res); err != nil {
			return nil, err
		}
		return res, nil
	}
	if err := s.respondReal(req, x, res); err != nil {
		return nil, err
	}
	return res, nil
}

// respondReal fills in the response for a real coefficient set.
func (s *Simulator) respondReal(req *Request, x []float64, res *Result) error {
	f := &req.Filter

	var (
		y   []float64
		err error
	)
	switch {
	case len(f.SOS) > 0 && !f.AntiCausal:
		y, err = filter.SOSCascade(f.SOS, x)
	case f.AntiCausal:
		y, err = filter.ForwardBackward(f.B, f.A, x)
	default:
		y, err = filter.TransferFunc(f.B, f.A, x)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFilter, err)
	}

	if req.Stimulus.Kind == StepError {
		dc, err := filter.DCGain(f.B, f.A)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidFilter, err)
		}
		for i := range y {
			y[i] -= dc
		}
	}

	res.Y = y
	return nil
}

// respondComplex fills in the response for a complex coefficient set,
// snapping negligible imaginary residues to zero afterwards.
func (s *Simulator) respondComplex(req *Request, x []float64, res *Result) error {
	f := &req.Filter
	b, a := f.complexCoefficients()

	var (
		y   []complex128
		err error
	)
	switch {
	case len(f.SOS) > 0 && !f.AntiCausal:
		// The cascade representation is real-valued; complex designs
		// always carry their transfer function in (B, A).
		var yr []float64
		yr, err = filter.SOSCascade(f.SOS, x)
		if err == nil {
			y = make([]complex128, len(yr))
			for i, v := range yr {
				y[i] = complex(v, 0)
			}
		}
	case f.AntiCausal:
		y, err = filter.ForwardBackwardC(b, a, x)
	default:
		y, err = filter.TransferFuncC(b, a, x)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFilter, err)
	}

	if req.Stimulus.Kind == StepError {
		dc, err := filter.DCGainC(b, a)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidFilter, err)
		}
		shift := complex(dc, 0)
		for i := range y {
			y[i] -= shift
		}
	}

	res.Y, res.YImag, res.IsComplex = mathutil.RealIfClose(y)
	return nil
}

// resolvePoints applies the automatic point-count heuristic.
func (s *Simulator) resolvePoints(req *Request) int {
	if req.NumPoints > 0 {
		return req.NumPoints
	}
	if req.Filter.IsIIR() {
		return autoPointsIIR
	}
	return min(len(req.Filter.B), maxAutoPoints)
}

// timeAxis returns n sample instants spaced 1/sampleRate seconds apart,
// starting at t = 0.
func timeAxis(n int, sampleRate float64) []float64 {
	t := make([]float64, n)
	for i := range t {
		t[i] = float64(i) / sampleRate
	}
	return t
}
