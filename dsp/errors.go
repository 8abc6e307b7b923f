// SPDX-License-Identifier: EPL-2.0

package dsp

import "errors"

var (
	// ErrEmptySignal is returned when a transform is handed a
	// zero-length signal.
	ErrEmptySignal = errors.New("empty input signal")
	// ErrInvalidRate is returned for a non-positive sample rate.
	ErrInvalidRate = errors.New("sample rate must be positive")
	// ErrInvalidDstSize is returned when a read buffer is not a
	// multiple of the channel count.
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")
)
