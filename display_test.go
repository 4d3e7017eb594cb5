package transim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const dbTolerance = 1e-9

func TestLogMag(t *testing.T) {
	got := LogMag([]float64{1, 0.1, 10, -1, 0}, DefaultFloorDB)

	assert.InDelta(t, 0, got[0], dbTolerance)
	assert.InDelta(t, -20, got[1], dbTolerance)
	assert.InDelta(t, 20, got[2], dbTolerance)
	assert.InDelta(t, 0, got[3], dbTolerance, "magnitude ignores sign")
	assert.Equal(t, DefaultFloorDB, got[4], "zero clamps to the floor instead of -Inf")
}

func TestLogMagCustomFloor(t *testing.T) {
	const floor = -60.0
	got := LogMag([]float64{1e-6, 1}, floor)

	assert.Equal(t, floor, got[0], "-120 dB sample clamps to -60 dB floor")
	assert.InDelta(t, 0, got[1], dbTolerance)
}

func TestDisplayLinearReal(t *testing.T) {
	res := &Result{
		Y:             []float64{1, 0.5},
		ResponseLabel: "h[n]",
	}

	series := Display(res, DisplayOptions{})

	assert.Equal(t, res.Y, series.Y)
	assert.Nil(t, series.YImag)
	assert.Equal(t, "h[n]", series.Label)
	assert.Empty(t, series.ImagLabel)
	assert.Equal(t, 0.0, series.Baseline)
}

func TestDisplayLogReal(t *testing.T) {
	res := &Result{
		Y:             []float64{1, 0},
		ResponseLabel: "h[n]",
	}

	series := Display(res, DisplayOptions{LogScale: true})

	assert.Equal(t, "|h[n]| in dB", series.Label)
	assert.Equal(t, DefaultFloorDB, series.Baseline)
	assert.InDelta(t, 0, series.Y[0], dbTolerance)
	assert.Equal(t, DefaultFloorDB, series.Y[1])
}

func TestDisplayComplexLabels(t *testing.T) {
	res := &Result{
		Y:             []float64{1, 0},
		YImag:         []float64{0, 0.5},
		IsComplex:     true,
		ResponseLabel: "h[n]",
	}

	linear := Display(res, DisplayOptions{})
	assert.Equal(t, "Re{h[n]}", linear.Label)
	assert.Equal(t, "Im{h[n]}", linear.ImagLabel)
	assert.Equal(t, res.YImag, linear.YImag)

	logged := Display(res, DisplayOptions{LogScale: true, FloorDB: -100})
	assert.Equal(t, "|Re{h[n]}| in dB", logged.Label)
	assert.Equal(t, "log Im{h[n]} in dB", logged.ImagLabel)
	assert.Equal(t, -100.0, logged.Baseline)
	assert.Len(t, logged.YImag, len(res.YImag))
	assert.Equal(t, -100.0, logged.YImag[0], "zero imaginary sample clamps to floor")
}
