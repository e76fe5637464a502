package chirp

import "gonum.org/v1/gonum/floats"

// fadeShrinkDivisor shrinks the fade window to a quarter of the signal
// length when two full windows would not fit.
const fadeShrinkDivisor = 4

// ApplyFade applies a linear amplitude ramp to both ends of s to avoid
// abrupt discontinuities at the buffer boundaries.
//
// The ramp window is fadeTime seconds expressed as a sample count. When two
// full windows would not fit in the signal, the window shrinks to a quarter
// of the signal length so ramp-in and ramp-out never overlap. Ramp-in runs
// from factor 0 to 1 inclusive, ramp-out from 1 to 0.
func ApplyFade(s []float64, sampleRate, fadeTime float64) {
	fade := int(fadeTime * sampleRate)
	if fade*2 >= len(s) {
		fade = len(s) / fadeShrinkDivisor
	}

	if fade <= 0 {
		return
	}

	if fade == 1 {
		// A single-sample ramp has only the zero endpoint.
		s[0] = 0
		return
	}

	ramp := make([]float64, fade)

	floats.Span(ramp, 0, 1)
	floats.Mul(s[:fade], ramp)

	floats.Span(ramp, 1, 0)
	floats.Mul(s[len(s)-fade:], ramp)
}
