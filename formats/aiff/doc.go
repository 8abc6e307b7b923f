// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF audio for pipeline ingestion.
//
// It wraps github.com/go-audio/aiff behind the dsp.Source interface,
// so prerecorded prompts stored as AIFF can be collected, normalized
// and re-encoded like any synthesized waveform:
//
//	source, err := aiff.Decoder{}.Decode(file)
//	samples, rate, err := dsp.Collect(source, 4096)
//
// Only 16-bit PCM files are supported; other bit depths are rejected
// with ErrOnlyPCM16bitSupported. go-audio needs an io.ReadSeeker, so
// non-seekable input is buffered in memory before decoding.
package aiff
