// Package pcm converts floating-point sample buffers into little-endian PCM
// byte streams and wraps them in a RIFF/WAVE container or writes them raw.
package pcm

import (
	"encoding/binary"
	"math"
)

// Full-scale values for integer sample formats.
const (
	maxInt16 = 32767.0
	maxInt24 = 8388607.0
)

// Byte sizes for the supported sample formats.
const (
	bytesPerSample16 = 2
	bytesPerSample24 = 3
	bytesPerSample32 = 4
)

// Bit shift amounts for 24-bit sample encoding.
const (
	bitShift8  = 8
	bitShift16 = 16
)

// SampleBytes returns the per-sample byte width for a bit depth,
// or 0 if the depth is not supported.
func SampleBytes(bitDepth int) int {
	switch bitDepth {
	case 16:
		return bytesPerSample16
	case 24:
		return bytesPerSample24
	case 32:
		return bytesPerSample32
	default:
		return 0
	}
}

// Quantize converts a float sample buffer to PCM bytes at the given bit
// depth in a single batched pass. 16- and 24-bit samples are clipped to
// [-1, 1] and scaled to signed integers; 32-bit samples are stored as IEEE
// float32 without clipping. The caller must pass a supported bit depth.
func Quantize(samples []float64, bitDepth int) []byte {
	dst := make([]byte, len(samples)*SampleBytes(bitDepth))

	switch bitDepth {
	case 16:
		quantize16(dst, samples)
	case 24:
		quantize24(dst, samples)
	case 32:
		quantizeFloat32(dst, samples)
	}

	return dst
}

// quantize16 converts samples to signed 16-bit little-endian PCM.
func quantize16(dst []byte, src []float64) {
	for i, s := range src {
		v := int16(math.Round(clip(s) * maxInt16))
		binary.LittleEndian.PutUint16(dst[i*bytesPerSample16:], uint16(v))
	}
}

// quantize24 converts samples to signed 24-bit little-endian PCM.
// Each sample is widened to int32 and the low three bytes stored; clipping
// before widening keeps the sign bit inside the 3-byte window.
func quantize24(dst []byte, src []float64) {
	for i, s := range src {
		v := int32(math.Round(clip(s) * maxInt24))
		dst[i*bytesPerSample24] = byte(v)
		dst[i*bytesPerSample24+1] = byte(v >> bitShift8)
		dst[i*bytesPerSample24+2] = byte(v >> bitShift16)
	}
}

// quantizeFloat32 stores samples as little-endian IEEE-754 float32.
func quantizeFloat32(dst []byte, src []float64) {
	for i, s := range src {
		binary.LittleEndian.PutUint32(dst[i*bytesPerSample32:], math.Float32bits(float32(s)))
	}
}

func clip(s float64) float64 {
	if s > 1.0 {
		return 1.0
	}
	if s < -1.0 {
		return -1.0
	}
	return s
}
