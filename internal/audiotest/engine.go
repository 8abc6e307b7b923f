// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"context"
	"math"

	"github.com/ik5/speechpipe/tts"
)

// SineEngine is a deterministic tts.Engine for tests and examples: it
// ignores the text and synthesizes one second of a sine wave.
type SineEngine struct {
	SampleRate int     // defaults to 24000
	Frequency  float64 // defaults to 440 Hz
	Amplitude  float64 // defaults to 0.5

	// Err, when set, is returned from Synthesize instead of a waveform.
	Err error

	Closed bool
}

func (e *SineEngine) Synthesize(ctx context.Context, text string) (tts.Waveform, error) {
	if e.Err != nil {
		return tts.Waveform{}, e.Err
	}
	if err := ctx.Err(); err != nil {
		return tts.Waveform{}, err
	}

	rate := e.SampleRate
	if rate == 0 {
		rate = 24000
	}
	freq := e.Frequency
	if freq == 0 {
		freq = 440.0
	}
	amp := e.Amplitude
	if amp == 0 {
		amp = 0.5
	}

	samples := make([]float32, rate)
	for i := range samples {
		samples[i] = float32(amp * math.Sin(2*math.Pi*freq*float64(i)/float64(rate)))
	}

	return tts.Waveform{Samples: samples, SampleRate: rate}, nil
}

func (e *SineEngine) Close() error {
	e.Closed = true
	return nil
}
