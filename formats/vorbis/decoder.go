// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/speechpipe/dsp"
)

// oggReader is the slice of oggvorbis.Reader the source needs, kept as
// an interface so tests can stand in for the real reader.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
	bufSize    int
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return s.bufSize }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if len(dst)%s.channels != 0 {
		return 0, dsp.ErrInvalidDstSize
	}

	// oggvorbis produces interleaved float32 directly, and its Read
	// reports values decoded (samples times channels), not frames.
	return s.dec.Read(dst)
}

// Decoder wraps oggvorbis behind the dsp.Source interface for
// prerecorded audio ingestion.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (dsp.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
		bufSize:    4096,
	}, nil
}
