package transim

// Simulate runs a single request on a fresh default Simulator. For
// noise-free stimuli the result is fully deterministic; use New with an
// explicit seed when reproducible noise is required.
func Simulate(req *Request) (*Result, error) {
	return New(nil).Run(req)
}

// ImpulseResponse probes the filter with a unit impulse. numPoints = 0
// selects the automatic sizing heuristic.
func ImpulseResponse(f FilterSpec, numPoints int) (*Result, error) {
	return Simulate(&Request{
		Filter:    f,
		Stimulus:  StimulusSpec{Kind: Pulse, Amplitude1: 1},
		NumPoints: numPoints,
	})
}

// StepResponse probes the filter with a unit step.
func StepResponse(f FilterSpec, numPoints int) (*Result, error) {
	return Simulate(&Request{
		Filter:    f,
		Stimulus:  StimulusSpec{Kind: Step, Amplitude1: 1},
		NumPoints: numPoints,
	})
}

// SettlingError probes the filter with a unit step and shifts the
// response by the filter's DC gain, showing convergence towards the
// asymptotic value.
func SettlingError(f FilterSpec, numPoints int) (*Result, error) {
	return Simulate(&Request{
		Filter:    f,
		Stimulus:  StimulusSpec{Kind: StepError, Amplitude1: 1},
		NumPoints: numPoints,
	})
}
