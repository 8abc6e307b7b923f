// SPDX-License-Identifier: EPL-2.0

// Package wav encodes pipeline output as PCM 16-bit WAV containers and
// decodes existing WAV files for ingestion.
//
// # Encoding
//
// Encode is the pipeline's container stage. It takes a mono float32
// signal, quantizes it to signed 16-bit PCM with triangular dithering,
// and packages it with a 44-byte RIFF/WAVE header:
//
//	buf, err := wav.Encode(samples, 48000)
//	// len(buf) == 44 + 2*len(samples)
//
// The header is built by hand at fixed offsets and then verified by
// reading every field back; a mismatch surfaces as ErrHeaderMismatch.
// Containers are self-describing: the declared sizes always equal the
// actual payload size.
//
// Write streams the same container to an io.Writer, and WriteWAV16
// writes pre-quantized int16 samples without dithering.
//
// # Decoding
//
// Decoder reads canonical PCM16 WAV files back into a dsp.Source:
//
//	source, err := wav.Decoder{}.Decode(file)
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// Samples come out as float32 in [-1.0, 1.0].
//
// # Error Handling
//
// Encoder errors:
//   - ErrEmptySignal: zero-length input
//   - ErrInvalidSampleRate: non-positive sample rate
//   - ErrHeaderMismatch: the post-write header self-check failed
//
// Decoder errors:
//   - ErrNotWavFile: the input is not a valid WAV file
//   - ErrOnlyPCM16bitSupported: only 16-bit PCM is supported
//   - ErrUnsupportedWavLayout, ErrUnsupportedWavChunks: non-canonical
//     file structure
//
// # File Format
//
// Containers written here consist of:
//   - RIFF chunk descriptor (12 bytes)
//   - fmt chunk (24 bytes): PCM, mono, sample rate, 16 bits per sample
//   - data chunk: little-endian signed 16-bit samples
package wav
