// SPDX-License-Identifier: EPL-2.0

// Package tts defines the boundary to the neural text-to-speech model.
// Model inference itself is an external collaborator; this package only
// fixes the contract the pipeline relies on, plus a guarded lazy
// initialization wrapper for engines that are expensive to load.
package tts

import "context"

// Waveform is a raw synthesized signal: mono float32 samples at the
// model's native rate. Amplitude is nominally [-1, 1] but not
// guaranteed before normalization.
type Waveform struct {
	Samples    []float32
	SampleRate int
}

// Engine produces raw waveforms from text. An implementation must
// return a non-empty sample sequence and a positive sample rate, or a
// diagnosable error. The pipeline re-validates both instead of trusting
// this contract.
type Engine interface {
	// Synthesize renders text to a raw waveform. It may suspend on
	// model inference, so it takes a context.
	Synthesize(ctx context.Context, text string) (Waveform, error)

	// Close releases model resources.
	Close() error
}
