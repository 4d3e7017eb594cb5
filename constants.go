package transim

// Point-count heuristic constants
const (
	// autoPointsIIR is the resolved point count for IIR filters when the
	// request leaves NumPoints at zero. A settling-time estimate from the
	// dominant pole would be an improvement here.
	autoPointsIIR = 100

	// maxAutoPoints caps the automatic FIR point count; below the cap the
	// full impulse response (one point per coefficient) is shown.
	maxAutoPoints = 100
)

// Coefficient validity constants
const (
	// minCoefficients is the minimum length of both coefficient arrays
	// for a usable transfer function.
	minCoefficients = 2
)

// Display constants
const (
	// DefaultFloorDB is the default clamp for the logarithmic display
	// transform, spanning a 200 dB range below full scale.
	DefaultFloorDB = -200.0
)
