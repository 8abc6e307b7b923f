// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"fmt"
	"io"
)

// Collect drains src to completion as mono float32 samples at the
// source's native rate. Multichannel sources are averaged down by a
// MonoMixer first. bufferSize is the read chunk size (e.g. 4096).
//
// The result feeds the batch pipeline transforms, which want the whole
// signal in memory rather than a stream.
func Collect(src Source, bufferSize int) ([]float32, int, error) {
	mono := NewMonoMixer(src)

	rate := src.SampleRate()
	samples := make([]float32, 0, bufferSize)
	buf := make([]float32, bufferSize)

	for {
		n, err := mono.ReadSamples(buf)
		if n > 0 {
			samples = append(samples, buf[:n]...)
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, rate, fmt.Errorf("%w", err)
		}
	}

	return samples, rate, nil
}
