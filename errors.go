package transim

import (
	"errors"

	"github.com/cedricboudinet/pyFDA/internal/stimulus"
)

// ErrInvalidFilter reports coefficient arrays too short (or otherwise too
// degenerate) to define a proper transfer function. The simulation call
// fails as a whole; no partial result is produced.
var ErrInvalidFilter = errors.New("transim: no proper filter coefficients")

// ErrInvalidStimulus reports an unrecognized stimulus configuration.
// It matches the error returned for an unknown waveform kind.
var ErrInvalidStimulus = stimulus.ErrUnknownKind
