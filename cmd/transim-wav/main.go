// Command transim-wav simulates the transient response of a digital
// filter and writes stimulus and response as a stereo WAV file (stimulus
// left, response right) for audition in an audio editor.
//
// Usage:
//
//	transim-wav -b 0.1,0 -a 1,-0.9 -stim rect -f1 0.01 -points 48000 out.wav
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	transim "github.com/cedricboudinet/pyFDA"
)

const (
	// WAV output format
	bitDepth    = 16
	numChannels = 2
	pcmFormat   = 1 // linear PCM audio format tag

	// Peak target leaves headroom below full scale when normalizing.
	peakTarget = 0.9
	maxInt16   = 32767.0

	// CLI defaults
	defaultRate   = 48000
	defaultPoints = 48000
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
	rate := flag.Int("rate", defaultRate, "WAV sample rate in Hz")

	stim := flag.String("stim", "sine", "Stimulus: pulse, step, steperr, cos, sine, rect, saw")
	points := flag.Int("points", defaultPoints, "Number of samples to render")
	a1 := flag.Float64("a1", 1, "Stimulus amplitude 1")
	f1 := flag.Float64("f1", 0.01, "Stimulus frequency 1 (cycles/sample)")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] output.wav\n\n", os.Args[0])
		flag.PrintDefaults()
		return fmt.Errorf("missing output file")
	}

	bc, err := parseCoefficients(*b)
	if err != nil {
		return fmt.Errorf("invalid -b: %w", err)
	}
	ac, err := parseCoefficients(*a)
	if err != nil {
		return fmt.Errorf("invalid -a: %w", err)
	}
	kind, err := parseStimulus(*stim)
	if err != nil {
		return err
	}

	res, err := transim.Simulate(&transim.Request{
		Filter: transim.FilterSpec{
			B:          bc,
			A:          ac,
			AntiCausal: *antiCausal,
			SampleRate: float64(*rate),
		},
		Stimulus: transim.StimulusSpec{
			Kind:       kind,
			Amplitude1: *a1,
			Freq1:      *f1,
		},
		NumPoints: *points,
	})
	if err != nil {
		return err
	}

	if *verbose {
		log.Printf("%s: %d samples at %d Hz", res.Title, len(res.Y), *rate)
		if res.IsComplex {
			log.Printf("response is complex; writing real part only")
		}
	}

	return writeStereoWAV(args[0], res.X, res.Y, *rate)
}

// writeStereoWAV renders two float sequences as an interleaved 16-bit
// stereo WAV file, jointly normalized to the peak target.
func writeStereoWAV(path string, left, right []float64, rate int) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer out.Close()

	enc := wav.NewEncoder(out, rate, bitDepth, numChannels, pcmFormat)

	scale := peakTarget / math.Max(peakAbs(left), math.Max(peakAbs(right), peakTarget))

	n := min(len(left), len(right))
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: numChannels, SampleRate: rate},
		SourceBitDepth: bitDepth,
		Data:           make([]int, n*numChannels),
	}
	for i := range n {
		buf.Data[i*numChannels] = int(left[i] * scale * maxInt16)
		buf.Data[i*numChannels+1] = int(right[i] * scale * maxInt16)
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("failed to write samples: %w", err)
	}
	return enc.Close()
}

func peakAbs(s []float64) float64 {
	peak := 0.0
	for _, v := range s {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	return peak
}
