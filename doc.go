// Package transim computes the time-domain response of an LTI digital
// filter to a selectable synthetic stimulus, for visualization in an
// interactive filter-design tool.
//
// The engine is the numeric core behind an impulse/transient response
// plot: it generates a probe signal x[n], applies the supplied filter and
// returns the response y[n] together with descriptive labels, leaving
// widget handling and rendering to the caller.
//
// # Features
//
//   - Stimulus families: impulse, step, settling error, cosine, two-tone
//     sine, rectangular and sawtooth waves, with optional seeded Gaussian
//     or uniform noise and a DC bias
//   - Three filtering modes: cascade of second-order sections, causal
//     single-pass transfer function (with a SIMD/FFT fast path for FIR
//     numerators) and anti-causal zero-phase forward-backward filtering
//   - Complex coefficient sets with automatic cleanup of negligible
//     imaginary residues
//   - Automatic point-count sizing: 100 points for IIR filters, one point
//     per coefficient (capped at 100) for FIR
//   - Logarithmic display transform with a configurable dB floor
//
// # Quick Start
//
// For a one-shot impulse response:
//
//	res, err := transim.ImpulseResponse(transim.FilterSpec{
//	    B:          []float64{1, 0.5},
//	    A:          []float64{1, 0},
//	    SampleRate: 1,
//	}, 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	plot(res.T, res.Y)
//
// For full control, build a request and run it on a Simulator:
//
//	sim := transim.New(&transim.Config{Seed: 42})
//	res, err := sim.Run(&transim.Request{
//	    Filter: filterSpec,
//	    Stimulus: transim.StimulusSpec{
//	        Kind:       transim.Cosine,
//	        Amplitude1: 1,
//	        Freq1:      0.05, // cycles/sample
//	    },
//	    NumPoints: 200,
//	})
//
// The display transform maps a result to render-ready sequences:
//
//	series := transim.Display(res, transim.DisplayOptions{LogScale: true})
//
// # Filtering Modes
//
// The mode is selected from the FilterSpec fields in priority order:
// a non-empty SOS cascade filters causally section by section; an
// anti-causal filter applies (B, A) forward and backward for zero net
// phase (ignoring the cascade); otherwise (B, A) is applied in a single
// causal pass. FIR numerators dispatch to SIMD convolution, switching to
// overlap-save FFT convolution above a few hundred taps.
//
// # Concurrency
//
// A Simulator is synchronous; each Run call is independent and returns a
// fresh Result. Calls on the same Simulator share only the noise source
// and should be serialized by the caller; separate Simulators are fully
// independent.
package transim
