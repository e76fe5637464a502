// Command sweep-gen generates stereo frequency-sweep test tone files.
//
// Usage:
//
//	sweep-gen -output sweep.wav -duration 10 -left-start 20 -left-end 20000
//	sweep-gen -output sweep.pcm -format pcm -log -duration 5 -left-start 100 -left-end 8000
//	sweep-gen -output opposite.wav -left-start 50 -left-end 5000 -right-start 15000 -right-end 200
//	sweep-gen -output delayed.wav -delay 2 -rate 48000 -bits 24
//
// The right channel inherits the left channel's frequency range unless
// -right-start/-right-end are given.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	sweep "github.com/tphakala/go-audio-sweep"
)

// CLI defaults, matching the classic full-range test tone.
const (
	defaultDuration  = 10.0
	defaultStartFreq = 20.0
	defaultEndFreq   = 20000.0
	defaultRate      = 44100
	defaultBitDepth  = 16
	defaultVolume    = 0.8

	// inheritFreq marks a right-channel frequency flag as unset.
	inheritFreq = -1

	bytesPerMegabyte = 1024 * 1024
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// options holds the parsed command line.
type options struct {
	output     string
	duration   float64
	format     string
	leftStart  float64
	leftEnd    float64
	rightStart float64
	rightEnd   float64
	rate       int
	bits       int
	volume     float64
	logSweep   bool
	delay      float64
	verbose    bool
}

func parseFlags() *options {
	o := &options{}

	flag.StringVar(&o.output, "output", "", "Output file name (required)")
	flag.Float64Var(&o.duration, "duration", defaultDuration, "Sweep duration in seconds")
	flag.StringVar(&o.format, "format", "wav", "Output format: wav, pcm")
	flag.Float64Var(&o.leftStart, "left-start", defaultStartFreq, "Left channel start frequency in Hz")
	flag.Float64Var(&o.leftEnd, "left-end", defaultEndFreq, "Left channel end frequency in Hz")
	flag.Float64Var(&o.rightStart, "right-start", inheritFreq, "Right channel start frequency in Hz (default: same as left)")
	flag.Float64Var(&o.rightEnd, "right-end", inheritFreq, "Right channel end frequency in Hz (default: same as left)")
	flag.IntVar(&o.rate, "rate", defaultRate, "Sample rate in Hz")
	flag.IntVar(&o.bits, "bits", defaultBitDepth, "Bit depth: 16, 24 or 32")
	flag.Float64Var(&o.volume, "volume", defaultVolume, "Volume, 0.0 to 1.0")
	flag.BoolVar(&o.logSweep, "log", false, "Use logarithmic sweep (default linear)")
	flag.Float64Var(&o.delay, "delay", 0, "Right channel delay in seconds")
	flag.BoolVar(&o.verbose, "v", false, "Verbose output")
	flag.Parse()

	return o
}

// config maps the parsed flags to a validated sweep configuration.
func (o *options) config() (*sweep.Config, sweep.Format, error) {
	var format sweep.Format
	switch o.format {
	case "wav":
		format = sweep.FormatWAV
	case "pcm":
		format = sweep.FormatRaw
	default:
		return nil, 0, fmt.Errorf("unknown format %q (supported: wav, pcm)", o.format)
	}

	right := sweep.ChannelSweep{StartFreq: o.rightStart, EndFreq: o.rightEnd}
	if right.StartFreq == inheritFreq {
		right.StartFreq = o.leftStart
	}
	if right.EndFreq == inheritFreq {
		right.EndFreq = o.leftEnd
	}

	kind := sweep.Linear
	if o.logSweep {
		kind = sweep.Logarithmic
	}

	cfg := &sweep.Config{
		Duration:   o.duration,
		SampleRate: o.rate,
		Left:       sweep.ChannelSweep{StartFreq: o.leftStart, EndFreq: o.leftEnd},
		Right:      right,
		RightDelay: o.delay,
		Kind:       kind,
		Volume:     o.volume,
		BitDepth:   o.bits,
	}

	if err := cfg.Validate(); err != nil {
		return nil, 0, err
	}

	return cfg, format, nil
}

// direction describes a channel's sweep direction for status output.
func direction(ch sweep.ChannelSweep) string {
	if ch.StartFreq < ch.EndFreq {
		return "up"
	}
	return "down"
}

func run() error {
	o := parseFlags()

	if o.output == "" {
		fmt.Fprintf(os.Stderr, "Usage: %s -output FILE [options]\n\nOptions:\n", os.Args[0])
		flag.PrintDefaults()
		return fmt.Errorf("missing -output")
	}

	cfg, format, err := o.config()
	if err != nil {
		return err
	}

	if o.verbose {
		log.Printf("Duration: %gs", cfg.Duration)
		log.Printf("Sample rate: %d Hz", cfg.SampleRate)
		log.Printf("Bit depth: %d-bit", cfg.BitDepth)
		log.Printf("Sweep type: %s", cfg.Kind)
		log.Printf("Left: %g Hz -> %g Hz (%s)", cfg.Left.StartFreq, cfg.Left.EndFreq, direction(cfg.Left))
		log.Printf("Right: %g Hz -> %g Hz (%s)", cfg.Right.StartFreq, cfg.Right.EndFreq, direction(cfg.Right))
		if cfg.RightDelay > 0 {
			log.Printf("Right delay: %gs", cfg.RightDelay)
		}
	}

	start := time.Now()
	written, err := sweep.WriteFile(o.output, cfg, format)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("Generated %s\n", filepath.Base(o.output))
	fmt.Printf("  %s sweep, %d frames (%gs at %d Hz, %d-bit stereo %s)\n",
		cfg.Kind, cfg.Frames(), cfg.Duration, cfg.SampleRate, cfg.BitDepth, format)
	fmt.Printf("  File size: %.2f MB (%d bytes)\n", float64(written)/bytesPerMegabyte, written)
	fmt.Printf("  Completed in %.2fs\n", elapsed.Seconds())

	return nil
}
