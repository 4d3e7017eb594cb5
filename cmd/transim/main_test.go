package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	transim "github.com/cedricboudinet/pyFDA"
)

func TestParseCoefficients(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []float64
		wantErr bool
	}{
		{"simple", "1,0.5", []float64{1, 0.5}, false},
		{"spaces", " 1 , -0.9 ", []float64{1, -0.9}, false},
		{"single", "1", []float64{1}, false},
		{"empty", "", nil, true},
		{"garbage", "1,x", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseCoefficients(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStimulus(t *testing.T) {
	kind, err := parseStimulus("PULSE")
	require.NoError(t, err)
	assert.Equal(t, transim.Pulse, kind)

	_, err = parseStimulus("triangle")
	assert.Error(t, err)
}

func TestBuildRequest(t *testing.T) {
	req, err := buildRequest(requestParams{
		b: "1,0.5", a: "1,0", fs: 1,
		stim: "pulse", a1: 1,
		noise: "none",
	})
	require.NoError(t, err)

	res, err := transim.Simulate(req)
	require.NoError(t, err)
	assert.Equal(t, "Impulse Response", res.Title)
	assert.Len(t, res.Y, 2) // FIR auto sizing: one point per coefficient
}
