// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"math"

	"github.com/ik5/speechpipe/utils"
)

// Upsample converts samples from inRate to outRate using Catmull-Rom
// cubic interpolation over four neighboring control samples.
//
// Output length is floor(len(samples) * outRate / inRate). Control
// reads near the signal edges clamp to the nearest valid sample, and a
// read still out of range after clamping yields 0; the first and last
// few output samples depend on this policy, so it is part of the
// contract rather than an implementation detail.
//
// The formula is general, but only outRate >= inRate is supported:
// there is no anti-aliasing filter for downsampling here.
func Upsample(samples []float32, inRate, outRate int) ([]float32, error) {
	if len(samples) == 0 {
		return nil, ErrEmptySignal
	}
	if inRate <= 0 || outRate <= 0 {
		return nil, ErrInvalidRate
	}

	ratio := float64(outRate) / float64(inRate)
	out := make([]float32, int(float64(len(samples))*ratio))

	for i := range out {
		srcPos := float64(i) / ratio
		index := int(math.Floor(srcPos))
		frac := float32(srcPos - math.Floor(srcPos))

		y0 := sampleAt(samples, index-1)
		y1 := sampleAt(samples, index)
		y2 := sampleAt(samples, index+1)
		y3 := sampleAt(samples, index+2)

		out[i] = utils.CubicInterpolate(y0, y1, y2, y3, frac)
	}

	return out, nil
}

// sampleAt reads samples[i] with the Upsample edge policy: clamp to the
// valid range, then treat a residual out-of-range read as 0.
func sampleAt(samples []float32, i int) float32 {
	if i < 0 {
		i = 0
	}
	if i >= len(samples) {
		i = len(samples) - 1
	}
	if i < 0 || i >= len(samples) {
		return 0
	}

	return samples[i]
}
