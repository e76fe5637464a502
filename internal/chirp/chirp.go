// Package chirp computes phase-continuous swept-sine sample trajectories.
//
// Both sweep shapes evaluate the exact closed-form integral of the
// instantaneous frequency function, not a piecewise approximation, so the
// resulting phase is continuous and the signal free of clicks.
package chirp

import "math"

// Linear fills dst with a linear chirp sweeping from f0 to f1 Hz over
// duration seconds, sampled at sampleRate Hz.
//
// The instantaneous frequency is f(t) = f0 + k*t with k = (f1-f0)/T,
// giving the phase integral:
//
//	x(t) = sin(2π * (f0*t + k*t²/2))
//
// delay shifts the sweep start by the given number of seconds; the delayed
// region is silenced. Equal f0 and f1 degrade to a constant tone, which the
// caller's configuration validation is expected to reject.
func Linear(dst []float64, f0, f1, duration, sampleRate, delay float64) {
	k := (f1 - f0) / duration

	for i := range dst {
		t := at(i, sampleRate, delay)
		dst[i] = math.Sin(2 * math.Pi * (f0*t + 0.5*k*t*t))
	}

	silenceDelay(dst, sampleRate, delay)
}

// Logarithmic fills dst with a logarithmic chirp sweeping from f0 to f1 Hz
// over duration seconds, sampled at sampleRate Hz.
//
// The instantaneous frequency is f(t) = f0 * e^(k*t) with k = ln(f1/f0)/T,
// giving the phase integral:
//
//	x(t) = sin(2π * f0 * (e^(k*t) - 1) / k)
//
// Both endpoint frequencies must be strictly positive and distinct; the
// caller validates this before synthesis (f0 == f1 makes k zero and the
// phase term an undefined 0/0).
func Logarithmic(dst []float64, f0, f1, duration, sampleRate, delay float64) {
	k := math.Log(f1/f0) / duration

	for i := range dst {
		t := at(i, sampleRate, delay)
		dst[i] = math.Sin(2 * math.Pi * f0 * (math.Exp(k*t) - 1) / k)
	}

	silenceDelay(dst, sampleRate, delay)
}

// at returns the effective sweep time for sample i. A positive delay shifts
// the time axis and clamps negative results to zero; the constant value this
// produces before the sweep start is overwritten by silenceDelay.
func at(i int, sampleRate, delay float64) float64 {
	t := float64(i) / sampleRate
	if delay > 0 {
		t -= delay
		if t < 0 {
			t = 0
		}
	}
	return t
}

// silenceDelay zeroes the first round(delay*sampleRate) samples.
func silenceDelay(dst []float64, sampleRate, delay float64) {
	if delay <= 0 {
		return
	}

	n := int(math.Round(delay * sampleRate))
	if n > len(dst) {
		n = len(dst)
	}

	clear(dst[:n])
}
