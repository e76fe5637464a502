package sweep

import (
	"errors"
	"fmt"
)

// Kind selects the frequency trajectory of the sweep.
type Kind int

const (
	// Linear sweeps frequency linearly from start to end.
	Linear Kind = iota

	// Logarithmic sweeps frequency exponentially from start to end,
	// spending equal time in each octave. Requires strictly positive
	// start and end frequencies on both channels.
	Logarithmic
)

// String returns the sweep kind name.
func (k Kind) String() string {
	switch k {
	case Linear:
		return "linear"
	case Logarithmic:
		return "logarithmic"
	default:
		return "unknown"
	}
}

// Format selects the serialization container.
type Format int

const (
	// FormatWAV wraps the quantized samples in a RIFF/WAVE container.
	// 16- and 24-bit output uses the PCM format code, 32-bit output uses
	// the IEEE float format code.
	FormatWAV Format = iota

	// FormatRaw writes the quantized samples with no header. The consumer
	// must know sample rate, bit depth and channel count out of band.
	FormatRaw
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatWAV:
		return "wav"
	case FormatRaw:
		return "pcm"
	default:
		return "unknown"
	}
}

// Common errors returned by the sweep generator.
var (
	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid sweep configuration")

	// ErrInvalidFrequency indicates a logarithmic sweep was requested
	// with a non-positive start or end frequency.
	ErrInvalidFrequency = errors.New("logarithmic sweep requires positive frequencies")

	// ErrUnsupportedBitDepth indicates a bit depth outside 16, 24 or 32.
	ErrUnsupportedBitDepth = errors.New("unsupported bit depth")
)

// ChannelSweep describes the frequency range of a single channel.
type ChannelSweep struct {
	// StartFreq is the instantaneous frequency at t=0 in Hz.
	StartFreq float64

	// EndFreq is the instantaneous frequency at t=Duration in Hz.
	EndFreq float64
}

// Config holds sweep generation parameters.
//
// A Config is owned by the caller and never mutated by the library.
// Generate re-validates it, so a zero or hand-built Config that violates a
// constraint fails fast instead of producing NaN samples.
type Config struct {
	// Duration is the sweep length in seconds.
	Duration float64

	// SampleRate is the output sample rate in Hz.
	SampleRate int

	// Left is the left channel's frequency range.
	Left ChannelSweep

	// Right is the right channel's frequency range.
	Right ChannelSweep

	// RightDelay delays the right channel's sweep start by the given
	// number of seconds. The delayed region is silent.
	RightDelay float64

	// Kind selects a linear or logarithmic frequency trajectory.
	Kind Kind

	// Volume scales the output amplitude, 0.0 to 1.0.
	Volume float64

	// BitDepth is the quantization depth for encoding: 16, 24 or 32.
	// 32-bit output is IEEE float, 16- and 24-bit are signed integer PCM.
	BitDepth int
}

// Validate checks if the configuration is valid.
//
// Equal start and end frequencies are rejected on either channel: a
// degenerate "sweep" is semantically a constant tone, and in logarithmic
// mode it would make the exponential rate k = ln(f1/f0)/T collapse to an
// undefined 0/0 phase term.
func (c *Config) Validate() error {
	if c.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidConfig)
	}

	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive", ErrInvalidConfig)
	}

	if err := c.validateChannel("left", c.Left); err != nil {
		return err
	}

	if err := c.validateChannel("right", c.Right); err != nil {
		return err
	}

	if c.RightDelay < 0 {
		return fmt.Errorf("%w: right channel delay must not be negative", ErrInvalidConfig)
	}

	if c.Volume < 0 || c.Volume > 1 {
		return fmt.Errorf("%w: volume must be in [0.0, 1.0]", ErrInvalidConfig)
	}

	switch c.BitDepth {
	case bitsPerSample16, bitsPerSample24, bitsPerSample32:
	default:
		return fmt.Errorf("%w: %d (supported: 16, 24, 32)", ErrUnsupportedBitDepth, c.BitDepth)
	}

	return nil
}

func (c *Config) validateChannel(name string, ch ChannelSweep) error {
	if ch.StartFreq <= 0 || ch.EndFreq <= 0 {
		if c.Kind == Logarithmic {
			return fmt.Errorf("%w: %s channel %g Hz -> %g Hz",
				ErrInvalidFrequency, name, ch.StartFreq, ch.EndFreq)
		}
		return fmt.Errorf("%w: %s channel frequencies must be positive", ErrInvalidConfig, name)
	}

	if ch.StartFreq == ch.EndFreq {
		return fmt.Errorf("%w: %s channel start and end frequency are equal (%g Hz)",
			ErrInvalidConfig, name, ch.StartFreq)
	}

	return nil
}

// Frames returns the number of sample frames the configuration produces.
// The time axis is half-open over [0, Duration), so the count truncates.
func (c *Config) Frames() int {
	return int(float64(c.SampleRate) * c.Duration)
}
