package sweep

import (
	"io"
	"os"
)

// Common sample rates for convenience.
const (
	// RateCD is the CD quality sample rate (Red Book standard).
	RateCD = 44100

	// RateDAT is the DAT/DVD sample rate.
	RateDAT = 48000

	// RateHiRes96 is the high-resolution 2x DAT sample rate.
	RateHiRes96 = 96000

	// RateHiRes192 is the very high resolution 4x DAT sample rate.
	RateHiRes192 = 192000

	// RateTelephony is the telephony (PSTN narrowband) sample rate.
	RateTelephony = 8000

	// RateVoIP is the VoIP wideband sample rate.
	RateVoIP = 16000
)

// DefaultConfig returns the classic full-range test tone configuration:
// ten seconds, 20 Hz to 20 kHz linear sweep on both channels, CD rate,
// 16-bit, volume 0.8.
func DefaultConfig() *Config {
	return &Config{
		Duration:   defaultDuration,
		SampleRate: RateCD,
		Left:       ChannelSweep{StartFreq: defaultStartFreq, EndFreq: defaultEndFreq},
		Right:      ChannelSweep{StartFreq: defaultStartFreq, EndFreq: defaultEndFreq},
		Kind:       Linear,
		Volume:     defaultVolume,
		BitDepth:   bitsPerSample16,
	}
}

// Write generates the sweep described by cfg and encodes it to w in one
// pass. Returns the number of bytes written.
func Write(w io.Writer, cfg *Config, format Format) (int64, error) {
	buf, err := Generate(cfg)
	if err != nil {
		return 0, err
	}

	return Encode(w, buf, cfg.BitDepth, format)
}

// WriteFile generates the sweep described by cfg and writes it to the named
// file. Returns the number of bytes written.
func WriteFile(path string, cfg *Config, format Format) (written int64, err error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}

	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	return Write(f, cfg, format)
}
