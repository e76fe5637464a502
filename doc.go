// Package sweep generates stereo swept-frequency (chirp) test tones and
// encodes them as WAV or raw PCM, in pure Go.
//
// The generator computes phase-continuous linear or logarithmic sweeps from
// the exact closed-form phase integral, with independent frequency ranges
// per channel, an optional right-channel delay, a linear fade envelope and
// volume scaling. The encoder quantizes the resulting float buffer to
// 16- or 24-bit integer PCM or 32-bit IEEE float, wrapped in a standard
// RIFF/WAVE container or written as a headerless stream.
//
// # Features
//
//   - Linear and logarithmic sweeps with guaranteed phase continuity
//   - Independent start/end frequencies per channel, including opposing
//     sweep directions
//   - Right-channel delay with exact leading silence
//   - Linear fade-in/fade-out envelope to avoid boundary clicks
//   - 16/24-bit integer PCM and 32-bit IEEE-float output, little-endian
//   - WAV container with byte-exact canonical 44-byte header, or raw PCM
//   - SIMD-accelerated volume and interleave stages via github.com/tphakala/simd
//
// # Quick Start
//
// Write the default ten-second 20 Hz - 20 kHz sweep to a WAV file:
//
//	n, err := sweep.WriteFile("sweep.wav", sweep.DefaultConfig(), sweep.FormatWAV)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	log.Printf("wrote %d bytes", n)
//
// For control over the individual stages:
//
//	cfg := &sweep.Config{
//	    Duration:   5,
//	    SampleRate: sweep.RateDAT,
//	    Left:       sweep.ChannelSweep{StartFreq: 50, EndFreq: 5000},
//	    Right:      sweep.ChannelSweep{StartFreq: 15000, EndFreq: 200},
//	    Kind:       sweep.Logarithmic,
//	    Volume:     0.8,
//	    BitDepth:   24,
//	}
//	buf, err := sweep.Generate(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_, err = sweep.Encode(out, buf, cfg.BitDepth, sweep.FormatWAV)
//
// Generation is a pure in-memory computation: the whole buffer is produced
// before encoding, and memory use is proportional to SampleRate * Duration.
// There is no shared state, so independent configurations may be generated
// from concurrent goroutines.
package sweep
