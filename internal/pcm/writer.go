package pcm

import (
	"encoding/binary"
	"io"
)

// WAV format constants
const (
	// HeaderSize is the size of the canonical RIFF/fmt/data WAV header.
	HeaderSize = 44

	riffChunkHeaderSize = 8  // "RIFF" tag plus chunk size field
	fmtChunkSize        = 16 // fmt subchunk payload size
	bitsPerByte         = 8

	// fmt audio format codes
	formatPCM       = 1 // integer PCM (16- and 24-bit)
	formatIEEEFloat = 3 // IEEE-754 float (32-bit)
)

// WriteWAV writes a complete WAV file to w: the 44-byte RIFF header followed
// by the interleaved PCM payload. The payload length is known upfront, so
// the header carries exact chunk sizes and no seek-back is needed.
// Returns the total number of bytes written.
func WriteWAV(w io.Writer, sampleRate, bitDepth, channels int, payload []byte) (int64, error) {
	header := buildHeader(sampleRate, bitDepth, channels, len(payload))

	n, err := w.Write(header)
	written := int64(n)
	if err != nil {
		return written, err
	}

	n, err = w.Write(payload)
	written += int64(n)

	return written, err
}

// WriteRaw writes the interleaved PCM payload to w with no header.
// Returns the number of bytes written.
func WriteRaw(w io.Writer, payload []byte) (int64, error) {
	n, err := w.Write(payload)
	return int64(n), err
}

// buildHeader assembles the canonical 44-byte RIFF/WAVE header,
// little-endian throughout.
func buildHeader(sampleRate, bitDepth, channels, dataSize int) []byte {
	blockAlign := channels * (bitDepth / bitsPerByte)
	byteRate := sampleRate * blockAlign

	audioFormat := uint16(formatPCM)
	if bitDepth == 32 {
		audioFormat = formatIEEEFloat
	}

	header := make([]byte, HeaderSize)

	// RIFF header
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], uint32(HeaderSize-riffChunkHeaderSize+dataSize))
	copy(header[8:12], "WAVE")

	// fmt subchunk
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], fmtChunkSize)
	binary.LittleEndian.PutUint16(header[20:22], audioFormat)
	binary.LittleEndian.PutUint16(header[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(byteRate))
	binary.LittleEndian.PutUint16(header[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(header[34:36], uint16(bitDepth))

	// data subchunk
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], uint32(dataSize))

	return header
}
