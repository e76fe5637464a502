package sweep

import (
	"fmt"
	"io"

	"github.com/tphakala/go-audio-sweep/internal/pcm"
)

// Encode quantizes the buffer to the given bit depth and writes it to w,
// either wrapped in a WAV container or as a raw headerless PCM stream.
// Returns the number of bytes written.
//
// 16- and 24-bit output clips samples to [-1.0, 1.0] and stores signed
// little-endian integers; clipping is a designed lossy transform, not an
// error. 32-bit output stores IEEE-754 float32 values without clipping.
//
// A bit depth outside 16, 24 or 32 fails with ErrUnsupportedBitDepth before
// any byte reaches the sink. Write failures propagate unretried.
func Encode(w io.Writer, buf *Buffer, bitDepth int, format Format) (int64, error) {
	if buf == nil {
		return 0, fmt.Errorf("%w: buffer is nil", ErrInvalidConfig)
	}

	if pcm.SampleBytes(bitDepth) == 0 {
		return 0, fmt.Errorf("%w: %d (supported: 16, 24, 32)", ErrUnsupportedBitDepth, bitDepth)
	}

	payload := pcm.Quantize(buf.Data, bitDepth)

	switch format {
	case FormatRaw:
		return pcm.WriteRaw(w, payload)
	case FormatWAV:
		return pcm.WriteWAV(w, buf.SampleRate, bitDepth, stereoChannels, payload)
	default:
		return 0, fmt.Errorf("%w: unknown output format %d", ErrInvalidConfig, format)
	}
}

// EncodedSize returns the exact byte size Encode produces for the given
// frame count, bit depth and format, or 0 for an unsupported bit depth.
// Useful for callers that report output sizes before or after writing.
func EncodedSize(frames, bitDepth int, format Format) int64 {
	sampleBytes := pcm.SampleBytes(bitDepth)
	if sampleBytes == 0 {
		return 0
	}

	size := int64(frames) * stereoChannels * int64(sampleBytes)
	if format == FormatWAV {
		size += pcm.HeaderSize
	}

	return size
}
