// Package stimulus generates synthetic probe signals for transient
// response simulation: impulse, step, sinusoids, rectangular and sawtooth
// waves, optionally perturbed by seeded noise and a DC bias.
package stimulus

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/cedricboudinet/pyFDA/internal/mathutil"
	"gonum.org/v1/gonum/floats"
)

// ErrUnknownKind reports a stimulus kind the generator cannot synthesize.
var ErrUnknownKind = errors.New("stimulus: unknown kind")

// Kind selects the waveform family.
type Kind int

const (
	// Pulse is a single Dirac impulse of Amplitude1 at n = 0.
	Pulse Kind = iota
	// Step is a constant Amplitude1 for all n.
	Step
	// StepError is a step stimulus whose response is later shifted by the
	// filter's DC gain to show the settling error.
	StepError
	// Cosine is a single cosine tone.
	Cosine
	// Sine is a two-tone sinusoid with independent amplitudes, frequencies
	// and phases.
	Sine
	// Rect is a rectangular (square) wave.
	Rect
	// Sawtooth is a linear ramp from -1 to 1 per period.
	Sawtooth
)

// String returns the display name of the waveform family.
func (k Kind) String() string {
	switch k {
	case Pulse:
		return "Pulse"
	case Step:
		return "Step"
	case StepError:
		return "StepErr"
	case Cosine:
		return "Cos"
	case Sine:
		return "Sine"
	case Rect:
		return "Rect"
	case Sawtooth:
		return "Saw"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Title returns the plot title for a response to this stimulus.
func (k Kind) Title() string {
	switch k {
	case Pulse:
		return "Impulse Response"
	case Step:
		return "Step Response"
	case StepError:
		return "Settling Error"
	case Cosine:
		return "Transient Response to Cosine Signal"
	case Sine:
		return "Transient Response to Sinusoidal Signal"
	case Rect:
		return "Transient Response to Rect. Signal"
	case Sawtooth:
		return "Transient Response to Sawtooth Signal"
	default:
		return ""
	}
}

// ResponseLabel returns the axis label for the filtered response.
func (k Kind) ResponseLabel() string {
	switch k {
	case Pulse:
		return "h[n]"
	case Step:
		return "h_ε[n]"
	case StepError:
		return "h_ε,∞ − h_ε[n]"
	case Cosine:
		return "y_cos[n]"
	case Sine:
		return "y_sin[n]"
	case Rect:
		return "y_rect[n]"
	case Sawtooth:
		return "y_saw[n]"
	default:
		return ""
	}
}

// Noise selects the additive noise distribution.
type Noise int

const (
	// NoiseNone disables additive noise.
	NoiseNone Noise = iota
	// NoiseGaussian adds independent normal samples scaled by NoiseLevel.
	NoiseGaussian
	// NoiseUniform adds independent samples from [-0.5, 0.5) scaled by
	// NoiseLevel.
	NoiseUniform
)

// Spec describes one stimulus: waveform family, its parameters and the
// optional perturbations. Frequencies are normalized to the sample rate
// (cycles/sample); phases are in radians.
type Spec struct {
	Kind Kind

	Amplitude1 float64
	Amplitude2 float64
	Freq1      float64
	Freq2      float64
	Phase1     float64
	Phase2     float64

	Noise      Noise
	NoiseLevel float64

	DCOffset  float64
	DCEnabled bool
}

// Generator synthesizes stimuli. The random source drives noise
// generation only; deterministic waveforms never consume from it.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator drawing noise from rng. A nil rng is
// allowed as long as no noisy stimulus is requested.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate synthesizes x[n] for every sample of the time axis t
// (seconds). Noise perturbs only the steady-state portion n >=
// startOffset; the DC bias, when enabled, shifts the entire sequence
// including the startup region.
func (g *Generator) Generate(spec Spec, t []float64, startOffset int) ([]float64, error) {
	x := make([]float64, len(t))

	switch spec.Kind {
	case Pulse:
		if len(x) > 0 {
			x[0] = spec.Amplitude1
		}

	case Step, StepError:
		for n := range x {
			x[n] = spec.Amplitude1
		}

	case Cosine:
		for n := range x {
			x[n] = spec.Amplitude1 * math.Cos(2*math.Pi*spec.Freq1*t[n])
		}

	case Sine:
		for n := range x {
			x[n] = spec.Amplitude1*math.Sin(2*math.Pi*spec.Freq1*t[n]+spec.Phase1) +
				spec.Amplitude2*math.Sin(2*math.Pi*spec.Freq2*t[n]+spec.Phase2)
		}

	case Rect:
		for n := range x {
			x[n] = spec.Amplitude1 * mathutil.Sign(math.Sin(2*math.Pi*spec.Freq1*t[n]))
		}

	case Sawtooth:
		for n := range x {
			x[n] = spec.Amplitude1 * mathutil.Sawtooth(2*math.Pi*spec.Freq1*t[n])
		}

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, spec.Kind.String())
	}

	if err := g.addNoise(spec, x, startOffset); err != nil {
		return nil, err
	}

	if spec.DCEnabled {
		floats.AddConst(spec.DCOffset, x)
	}

	return x, nil
}

// addNoise perturbs x[startOffset:] in place.
func (g *Generator) addNoise(spec Spec, x []float64, startOffset int) error {
	if spec.Noise == NoiseNone {
		return nil
	}
	if g.rng == nil {
		return errors.New("stimulus: noise requested without a random source")
	}
	if startOffset < 0 {
		startOffset = 0
	}
	if startOffset > len(x) {
		return nil
	}

	tail := x[startOffset:]
	switch spec.Noise {
	case NoiseGaussian:
		for i := range tail {
			tail[i] += spec.NoiseLevel * g.rng.NormFloat64()
		}
	case NoiseUniform:
		for i := range tail {
			tail[i] += spec.NoiseLevel * (g.rng.Float64() - 0.5)
		}
	default:
		return fmt.Errorf("stimulus: unknown noise kind %d", int(spec.Noise))
	}
	return nil
}
