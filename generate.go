package sweep

import (
	"fmt"

	"github.com/tphakala/simd/f64"

	"github.com/tphakala/go-audio-sweep/internal/chirp"
)

// Buffer holds a generated stereo test tone as interleaved float64 frames
// in [-1.0, 1.0]. It is produced once by Generate and consumed once by
// Encode; the library never mutates it afterwards.
type Buffer struct {
	// Data is the interleaved sample sequence: left, right, left, right, ...
	Data []float64

	// SampleRate is the rate the samples were generated at, in Hz.
	SampleRate int
}

// Frames returns the number of stereo sample frames in the buffer.
func (b *Buffer) Frames() int {
	return len(b.Data) / stereoChannels
}

// Split deinterleaves the buffer into freshly allocated left and right
// channel slices. Both slices always have equal length.
func (b *Buffer) Split() (left, right []float64) {
	n := b.Frames()
	left = make([]float64, n)
	right = make([]float64, n)

	for i := range n {
		left[i] = b.Data[i*stereoChannels]
		right[i] = b.Data[i*stereoChannels+1]
	}

	return left, right
}

// Generate synthesizes a stereo frequency sweep from the configuration.
//
// It is a pure function: all parameters come in through cfg and each call
// returns a fresh buffer, so independent configurations can be generated
// concurrently. The whole buffer is produced in memory before encoding;
// memory use is O(SampleRate * Duration).
//
// The configuration is re-validated before synthesis. A logarithmic sweep
// with a non-positive endpoint fails with ErrInvalidFrequency; any other
// violation fails with ErrInvalidConfig.
func Generate(cfg *Config) (*Buffer, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	n := cfg.Frames()
	rate := float64(cfg.SampleRate)

	left := make([]float64, n)
	right := make([]float64, n)

	switch cfg.Kind {
	case Logarithmic:
		chirp.Logarithmic(left, cfg.Left.StartFreq, cfg.Left.EndFreq, cfg.Duration, rate, 0)
		chirp.Logarithmic(right, cfg.Right.StartFreq, cfg.Right.EndFreq, cfg.Duration, rate, cfg.RightDelay)
	default:
		chirp.Linear(left, cfg.Left.StartFreq, cfg.Left.EndFreq, cfg.Duration, rate, 0)
		chirp.Linear(right, cfg.Right.StartFreq, cfg.Right.EndFreq, cfg.Duration, rate, cfg.RightDelay)
	}

	chirp.ApplyFade(left, rate, defaultFadeTime)
	chirp.ApplyFade(right, rate, defaultFadeTime)

	f64.Scale(left, left, cfg.Volume)
	f64.Scale(right, right, cfg.Volume)

	data := make([]float64, n*stereoChannels)
	f64.Interleave2(data, left, right)

	return &Buffer{Data: data, SampleRate: cfg.SampleRate}, nil
}
