// SPDX-License-Identifier: EPL-2.0

package dsp

import "math"

const (
	// DefaultTargetRMS is the loudness target used when no explicit
	// target is configured.
	DefaultTargetRMS = 0.15
	// LimiterPreScale leaves headroom before the tanh soft knee
	// saturates, so scaled peaks compress instead of hard-clipping.
	LimiterPreScale = 0.9
)

// RMS returns the root-mean-square amplitude of samples in a single
// pass; 0 for an empty or all-zero signal.
func RMS(samples []float32) float64 {
	if len(samples) == 0 {
		return 0
	}

	var sum float64
	for _, s := range samples {
		sum += float64(s) * float64(s)
	}

	return math.Sqrt(sum / float64(len(samples)))
}

// Normalize scales samples toward targetRMS and soft-limits the result
// into (-1, 1) with a per-sample tanh knee. A silent signal (RMS == 0)
// comes back as an unchanged copy, not an error. The input slice is
// never modified; each sample is limited independently with no
// inter-sample state.
func Normalize(samples []float32, targetRMS float64) ([]float32, error) {
	if len(samples) == 0 {
		return nil, ErrEmptySignal
	}

	out := make([]float32, len(samples))

	rms := RMS(samples)
	if rms == 0 {
		copy(out, samples)
		return out, nil
	}

	scale := targetRMS / rms
	for i, s := range samples {
		out[i] = float32(math.Tanh(float64(s) * scale * LimiterPreScale))
	}

	return out, nil
}
