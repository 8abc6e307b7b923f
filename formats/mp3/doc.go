// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 audio for pipeline ingestion.
//
// It wraps github.com/hajimehoshi/go-mp3 behind the dsp.Source
// interface, so prerecorded prompts and fallback recordings stored as
// MP3 can be collected, normalized and re-encoded like any synthesized
// waveform:
//
//	source, err := mp3.Decoder{}.Decode(file)
//	samples, rate, err := dsp.Collect(source, 4096)
//
// go-mp3 always produces stereo 16-bit output; the source converts it
// to interleaved float32 in [-1.0, 1.0] and dsp.Collect mixes it down
// to mono.
package mp3
