// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float32ToInt16 quantizes a [-1, 1] float sample to signed 16-bit PCM.
// The input is clamped to [-1, 1], scaled by 32767, offset by dither,
// rounded to the nearest integer and clamped to the int16 range.
// Pass dither = 0 for plain round-to-nearest quantization.
func Float32ToInt16(x, dither float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	v := math.Round(float64(x)*32767.0 + float64(dither))
	if v > math.MaxInt16 {
		v = math.MaxInt16
	} else if v < math.MinInt16 {
		v = math.MinInt16
	}

	return int16(v)
}
