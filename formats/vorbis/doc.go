// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis audio for pipeline ingestion.
//
// It wraps github.com/jfreymuth/oggvorbis behind the dsp.Source
// interface, so prerecorded prompts stored as Ogg Vorbis can be
// collected, normalized and re-encoded like any synthesized waveform:
//
//	source, err := vorbis.Decoder{}.Decode(file)
//	samples, rate, err := dsp.Collect(source, 4096)
//
// The underlying reader already produces interleaved float32 samples
// in [-1.0, 1.0]; this package only adapts its frame-based reads to
// the sample-based Source contract.
package vorbis
