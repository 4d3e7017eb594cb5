package main

import (
	"fmt"
	"strconv"
	"strings"

	transim "github.com/cedricboudinet/pyFDA"
)

// parseCoefficients parses a comma-separated float list.
func parseCoefficients(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("empty coefficient list")
	}
	parts := strings.Split(s, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("coefficient %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

func parseStimulus(s string) (transim.StimulusKind, error) {
	switch strings.ToLower(s) {
	case "pulse":
		return transim.Pulse, nil
	case "step":
		return transim.Step, nil
	case "steperr":
		return transim.StepError, nil
	case "cos":
		return transim.Cosine, nil
	case "sine":
		return transim.Sine, nil
	case "rect":
		return transim.Rect, nil
	case "saw":
		return transim.Sawtooth, nil
	default:
		return 0, fmt.Errorf("unknown stimulus %q", s)
	}
}
