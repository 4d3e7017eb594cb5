package transim

import (
	"math"
)

// DisplayOptions controls the thin display transform consumed by the
// rendering layer.
type DisplayOptions struct {
	// LogScale maps samples to dB magnitude, clamped at FloorDB.
	LogScale bool

	// FloorDB is the lower clamp for the log transform; zero selects
	// DefaultFloorDB.
	FloorDB float64
}

// DisplaySeries is a render-ready view of a simulation result: the
// (possibly log-mapped) response sequences, decorated axis labels and the
// stem baseline.
type DisplaySeries struct {
	Y     []float64
	YImag []float64

	Label     string
	ImagLabel string

	// Baseline is the stem plot bottom: the dB floor in log mode, zero
	// otherwise.
	Baseline float64
}

// LogMag maps each sample to max(20·log10(|v|), floorDB), returning a new
// slice. Zero samples land on the floor rather than -Inf.
func LogMag(src []float64, floorDB float64) []float64 {
	dst := make([]float64, len(src))
	for i, v := range src {
		dst[i] = math.Max(logScaleFactor*math.Log10(math.Abs(v)), floorDB)
	}
	return dst
}

// logScaleFactor converts a log10 magnitude to dB.
const logScaleFactor = 20.0

// Display applies the display transform to a result. The same floor is
// applied independently to the real and imaginary parts.
func Display(res *Result, opts DisplayOptions) *DisplaySeries {
	label := res.ResponseLabel
	imagLabel := ""
	if res.IsComplex {
		imagLabel = "Im{" + res.ResponseLabel + "}"
		label = "Re{" + res.ResponseLabel + "}"
	}

	if !opts.LogScale {
		series := &DisplaySeries{
			Y:     res.Y,
			Label: label,
		}
		if res.IsComplex {
			series.YImag = res.YImag
			series.ImagLabel = imagLabel
		}
		return series
	}

	floor := opts.FloorDB
	if floor == 0 {
		floor = DefaultFloorDB
	}

	series := &DisplaySeries{
		Y:        LogMag(res.Y, floor),
		Label:    "|" + label + "| in dB",
		Baseline: floor,
	}
	if res.IsComplex {
		series.YImag = LogMag(res.YImag, floor)
		series.ImagLabel = "log " + imagLabel + " in dB"
	}
	return series
}
