// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"crypto/rand"
	"encoding/binary"
	"io"
)

// Ditherer produces zero-mean triangular dither values for PCM
// quantization. Each value combines two independent uniform draws in
// [0, 1) as (r1 - r2) * 0.5, a triangular distribution over (-0.5, 0.5)
// expressed in quantization steps.
//
// Randomness comes from crypto/rand by default; tests may inject a
// deterministic reader via NewDithererFrom. Swapping the uniform source
// does not change audible behavior, but the triangular combination must
// stay as is.
type Ditherer struct {
	src io.Reader
	buf [512]byte
	pos int
	n   int
}

// NewDitherer returns a Ditherer backed by crypto/rand.
func NewDitherer() *Ditherer { return NewDithererFrom(rand.Reader) }

// NewDithererFrom returns a Ditherer drawing uniform randomness from src.
func NewDithererFrom(src io.Reader) *Ditherer {
	return &Ditherer{src: src}
}

// Next returns the next triangular dither value in (-0.5, 0.5).
// If the random source fails, Next returns 0: quantization proceeds
// undithered rather than failing the encode.
func (d *Ditherer) Next() float32 {
	r1, ok := d.uniform()
	if !ok {
		return 0
	}
	r2, ok := d.uniform()
	if !ok {
		return 0
	}

	return (r1 - r2) * 0.5
}

// uniform returns a draw in [0, 1), refilling the byte buffer as needed.
func (d *Ditherer) uniform() (float32, bool) {
	if d.pos+4 > d.n {
		n, _ := io.ReadFull(d.src, d.buf[:])
		if n < 4 {
			return 0, false
		}
		d.n = n - n%4
		d.pos = 0
	}

	u := binary.LittleEndian.Uint32(d.buf[d.pos:])
	d.pos += 4

	return float32(float64(u) / (1 << 32)), true
}
