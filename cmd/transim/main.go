// Command transim simulates the transient response of a digital filter
// and writes the result as CSV for plotting.
//
// Usage:
//
//	transim -b 1,0.5 -a 1,0 -stim pulse
//	transim -b 0.1,0 -a 1,-0.9 -stim step -points 200 > step.csv
//	transim -b 1,2,1 -a 1,-1.8,0.81 -stim cos -f1 0.02 -log
//
// Coefficients are comma-separated; frequencies are normalized to the
// sample rate (cycles/sample).
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	transim "github.com/cedricboudinet/pyFDA"
)

const (
	// CLI defaults
	defaultSampleRate = 1.0
	defaultAmplitude  = 1.0

	// CSV float formatting
	floatFormat    = 'g'
	floatPrecision = -1
	floatBits      = 64
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	b := flag.String("b", "", "Numerator coefficients, comma-separated (required)")
	a := flag.String("a", "", "Denominator coefficients, comma-separated (required)")
	antiCausal := flag.Bool("anticausal", false, "Apply (b, a) as a zero-phase forward-backward filter")
	fs := flag.Float64("fs", defaultSampleRate, "Sample rate in Hz (scales the time axis)")

	stim := flag.String("stim", "pulse", "Stimulus: pulse, step, steperr, cos, sine, rect, saw")
	points := flag.Int("points", 0, "Number of displayed points (0 = automatic)")
	offset := flag.Int("offset", 0, "Startup samples prepended ahead of the displayed region")
	a1 := flag.Float64("a1", defaultAmplitude, "Stimulus amplitude 1")
	a2 := flag.Float64("a2", 0, "Stimulus amplitude 2 (two-tone sine)")
	f1 := flag.Float64("f1", 0, "Stimulus frequency 1 (cycles/sample)")
	f2 := flag.Float64("f2", 0, "Stimulus frequency 2 (cycles/sample)")
	phi1 := flag.Float64("phi1", 0, "Stimulus phase 1 (radians)")
	phi2 := flag.Float64("phi2", 0, "Stimulus phase 2 (radians)")
	noise := flag.String("noise", "none", "Additive noise: none, gauss, uniform")
	noiseLevel := flag.Float64("noi", 0, "Noise scale")
	dc := flag.Float64("dc", 0, "DC offset added to the stimulus")
	seed := flag.Int64("seed", 0, "Noise seed (0 = time-based)")

	logScale := flag.Bool("log", false, "Emit 20·log10|y| clamped at the floor")
	floorDB := flag.Float64("floor", transim.DefaultFloorDB, "dB floor for -log")
	output := flag.String("o", "", "Output file (default stdout)")
	flag.Parse()

	req, err := buildRequest(requestParams{
		b: *b, a: *a, antiCausal: *antiCausal, fs: *fs,
		stim: *stim, points: *points, offset: *offset,
		a1: *a1, a2: *a2, f1: *f1, f2: *f2, phi1: *phi1, phi2: *phi2,
		noise: *noise, noiseLevel: *noiseLevel, dc: *dc,
	})
	if err != nil {
		return err
	}

	res, err := transim.New(&transim.Config{Seed: *seed}).Run(req)
	if err != nil {
		return err
	}

	series := transim.Display(res, transim.DisplayOptions{
		LogScale: *logScale,
		FloorDB:  *floorDB,
	})

	out := os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	log.Printf("%s: %d samples, response %s", res.Title, len(res.Y), series.Label)
	return writeCSV(out, res, series)
}

// requestParams bundles the parsed CLI values.
type requestParams struct {
	b, a       string
	antiCausal bool
	fs         float64

	stim           string
	points, offset int
	a1, a2         float64
	f1, f2         float64
	phi1, phi2     float64
	noise          string
	noiseLevel     float64
	dc             float64
}

// buildRequest converts CLI values into a simulation request.
func buildRequest(p requestParams) (*transim.Request, error) {
	bc, err := parseCoefficients(p.b)
	if err != nil {
		return nil, fmt.Errorf("invalid -b: %w", err)
	}
	ac, err := parseCoefficients(p.a)
	if err != nil {
		return nil, fmt.Errorf("invalid -a: %w", err)
	}

	kind, err := parseStimulus(p.stim)
	if err != nil {
		return nil, err
	}
	noiseKind, err := parseNoise(p.noise)
	if err != nil {
		return nil, err
	}

	return &transim.Request{
		Filter: transim.FilterSpec{
			B:          bc,
			A:          ac,
			AntiCausal: p.antiCausal,
			SampleRate: p.fs,
		},
		Stimulus: transim.StimulusSpec{
			Kind:       kind,
			Amplitude1: p.a1,
			Amplitude2: p.a2,
			Freq1:      p.f1,
			Freq2:      p.f2,
			Phase1:     p.phi1,
			Phase2:     p.phi2,
			Noise:      noiseKind,
			NoiseLevel: p.noiseLevel,
			DCOffset:   p.dc,
			DCEnabled:  p.dc != 0,
		},
		NumPoints:   p.points,
		StartOffset: p.offset,
	}, nil
}

// parseCoefficients parses a comma-separated float list.
func parseCoefficients(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("empty coefficient list")
	}
	parts := strings.Split(s, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), floatBits)
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

func parseNoise(s string) (transim.NoiseKind, error) {
	switch strings.ToLower(s) {
	case "none", "":
		return transim.NoiseNone, nil
	case "gauss":
		return transim.NoiseGaussian, nil
	case "uniform":
		return transim.NoiseUniform, nil
	default:
		return 0, fmt.Errorf("unknown noise kind %q", s)
	}
}

// writeCSV emits t, x and the (display-transformed) response columns.
func writeCSV(f *os.File, res *transim.Result, series *transim.DisplaySeries) error {
	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"t", "x", "y"}
	if res.IsComplex {
		header = append(header, "yim")
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i := range res.T {
		row := []string{
			formatFloat(res.T[i]),
			formatFloat(res.X[i]),
			formatFloat(series.Y[i]),
		}
		if res.IsComplex {
			row = append(row, formatFloat(series.YImag[i]))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, floatFormat, floatPrecision, floatBits)
}
