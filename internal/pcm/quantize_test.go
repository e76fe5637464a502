package pcm

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleBytes(t *testing.T) {
	tests := []struct {
		bitDepth int
		want     int
	}{
		{16, 2},
		{24, 3},
		{32, 4},
		{8, 0},
		{48, 0},
		{0, 0},
		{-16, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SampleBytes(tt.bitDepth), "bit depth %d", tt.bitDepth)
	}
}

func TestQuantize16(t *testing.T) {
	tests := []struct {
		name   string
		sample float64
		want   int16
	}{
		{"silence", 0.0, 0},
		{"full_scale_positive", 1.0, 32767},
		{"full_scale_negative", -1.0, -32767},
		{"half_scale", 0.5, 16384},
		{"clipped_positive", 1.5, 32767},
		{"clipped_negative", -2.0, -32767},
		{"rounds_to_nearest", 1.0 / 32767, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Quantize([]float64{tt.sample}, 16)
			require.Len(t, got, 2)

			v := int16(binary.LittleEndian.Uint16(got))
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestQuantize24FullScale(t *testing.T) {
	got := Quantize([]float64{1.0}, 24)

	// 8388607 truncated to its low three little-endian bytes.
	assert.Equal(t, []byte{0xFF, 0xFF, 0x7F}, got)
}

func TestQuantize24NegativeFullScale(t *testing.T) {
	got := Quantize([]float64{-1.0}, 24)

	// -8388607 as int32 is 0xFF800001; the low three bytes keep the sign.
	assert.Equal(t, []byte{0x01, 0x00, 0x80}, got)
}

func TestQuantize24ClipsBeforeWidening(t *testing.T) {
	assert.Equal(t, Quantize([]float64{1.0}, 24), Quantize([]float64{2.5}, 24))
	assert.Equal(t, Quantize([]float64{-1.0}, 24), Quantize([]float64{-7.0}, 24))
}

func TestQuantizeFloat32RoundTrip(t *testing.T) {
	src := []float64{0, 1, -1, 0.123456789, -0.987654321, 1.5, -3.25}

	got := Quantize(src, 32)
	require.Len(t, got, len(src)*4)

	for i, s := range src {
		bits := binary.LittleEndian.Uint32(got[i*4:])
		// No clipping and no scaling: the stored value is exactly the
		// float32 conversion of the source sample.
		assert.Equal(t, float32(s), math.Float32frombits(bits), "sample %d", i)
	}
}

func TestQuantizeBatchLayout(t *testing.T) {
	// Interleaved input stays interleaved in the byte stream.
	src := []float64{1.0, -1.0, 0.0, 1.0}

	got := Quantize(src, 16)
	require.Len(t, got, 8)

	assert.Equal(t, int16(32767), int16(binary.LittleEndian.Uint16(got[0:])))
	assert.Equal(t, int16(-32767), int16(binary.LittleEndian.Uint16(got[2:])))
	assert.Equal(t, int16(0), int16(binary.LittleEndian.Uint16(got[4:])))
	assert.Equal(t, int16(32767), int16(binary.LittleEndian.Uint16(got[6:])))
}
