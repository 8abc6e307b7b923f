// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/speechpipe/utils"
)

// HeaderSize is the fixed size of the RIFF/WAVE header this package
// writes: RIFF chunk descriptor, canonical PCM fmt chunk, data chunk
// header.
const HeaderSize = 44

const (
	numChannels   = 1
	bitsPerSample = 16
	blockAlign    = numChannels * bitsPerSample / 8
)

// Encode packages a mono float32 signal as a complete 16-bit PCM WAV
// container: a 44-byte little-endian header followed by dithered,
// signed 16-bit samples. Total length is always HeaderSize +
// 2*len(samples) and the declared sizes match the payload exactly.
//
// Dither randomness comes from crypto/rand; use EncodeWith to inject a
// deterministic source.
func Encode(samples []float32, sampleRate int) ([]byte, error) {
	return EncodeWith(samples, sampleRate, utils.NewDitherer())
}

// EncodeWith is Encode with an explicit dither source.
func EncodeWith(samples []float32, sampleRate int, dither *utils.Ditherer) ([]byte, error) {
	if len(samples) == 0 {
		return nil, ErrEmptySignal
	}
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}

	dataSize := uint32(len(samples) * 2)
	buf := make([]byte, HeaderSize+int(dataSize))

	writeHeader(buf, uint32(sampleRate), dataSize)

	// Self-check, not an optimization: re-read the header fields and
	// compare them with what was intended before trusting the buffer.
	if err := verifyHeader(buf, uint32(sampleRate), dataSize); err != nil {
		return nil, err
	}

	for i, s := range samples {
		v := utils.Float32ToInt16(s, dither.Next())
		binary.LittleEndian.PutUint16(buf[HeaderSize+2*i:], uint16(v))
	}

	return buf, nil
}

// Write encodes samples as with Encode and streams the container to w.
func Write(w io.Writer, samples []float32, sampleRate int) error {
	buf, err := Encode(samples, sampleRate)
	if err != nil {
		return err
	}

	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// WriteWAV16 writes a mono 16-bit PCM WAV at sampleRate from already
// quantized samples, with no dithering. Mostly useful for fixtures and
// for callers that carry PCM around as int16.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	dataSize := uint32(len(samples) * 2)

	header := make([]byte, HeaderSize)
	writeHeader(header, uint32(sampleRate), dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	buf := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(buf[2*i:], uint16(s))
	}

	if len(buf) == 0 {
		return nil
	}
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// writeHeader fills the first HeaderSize bytes of buf with the
// canonical mono PCM16 layout.
func writeHeader(buf []byte, sampleRate, dataSize uint32) {
	byteRate := sampleRate * blockAlign

	// RIFF chunk descriptor (12 bytes)
	copy(buf[0:4], "RIFF")
	binary.LittleEndian.PutUint32(buf[4:8], 36+dataSize)
	copy(buf[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(buf[12:16], "fmt ")
	binary.LittleEndian.PutUint32(buf[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(buf[20:22], 1)  // PCM format
	binary.LittleEndian.PutUint16(buf[22:24], numChannels)
	binary.LittleEndian.PutUint32(buf[24:28], sampleRate)
	binary.LittleEndian.PutUint32(buf[28:32], byteRate)
	binary.LittleEndian.PutUint16(buf[32:34], blockAlign)
	binary.LittleEndian.PutUint16(buf[34:36], bitsPerSample)

	// data chunk header (8 bytes)
	copy(buf[36:40], "data")
	binary.LittleEndian.PutUint32(buf[40:44], dataSize)
}

// verifyHeader re-reads every header field from buf and compares it
// with the intended value. A mismatch means the container would
// misdescribe its payload; that is ErrHeaderMismatch, never silently
// swallowed.
func verifyHeader(buf []byte, sampleRate, dataSize uint32) error {
	tags := []struct {
		name string
		got  []byte
		want string
	}{
		{"riff tag", buf[0:4], "RIFF"},
		{"wave tag", buf[8:12], "WAVE"},
		{"fmt tag", buf[12:16], "fmt "},
		{"data tag", buf[36:40], "data"},
	}

	for _, tag := range tags {
		if !bytes.Equal(tag.got, []byte(tag.want)) {
			return fmt.Errorf("%w: %s = %q", ErrHeaderMismatch, tag.name, tag.got)
		}
	}

	fields := []struct {
		name string
		got  uint32
		want uint32
	}{
		{"riff size", binary.LittleEndian.Uint32(buf[4:8]), 36 + dataSize},
		{"fmt size", binary.LittleEndian.Uint32(buf[16:20]), 16},
		{"audio format", uint32(binary.LittleEndian.Uint16(buf[20:22])), 1},
		{"channels", uint32(binary.LittleEndian.Uint16(buf[22:24])), numChannels},
		{"sample rate", binary.LittleEndian.Uint32(buf[24:28]), sampleRate},
		{"byte rate", binary.LittleEndian.Uint32(buf[28:32]), sampleRate * blockAlign},
		{"block align", uint32(binary.LittleEndian.Uint16(buf[32:34])), blockAlign},
		{"bits per sample", uint32(binary.LittleEndian.Uint16(buf[34:36])), bitsPerSample},
		{"data size", binary.LittleEndian.Uint32(buf[40:44]), dataSize},
	}

	for _, f := range fields {
		if f.got != f.want {
			return fmt.Errorf("%w: %s = %d, want %d", ErrHeaderMismatch, f.name, f.got, f.want)
		}
	}

	return nil
}
