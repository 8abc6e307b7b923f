// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/ik5/speechpipe/dsp"
)

// mockOggReader simulates oggvorbis.Reader: Read fills buf with
// interleaved values and returns the count of values copied, samples
// times channels, never splitting a frame.
type mockOggReader struct {
	sampleRate int
	channels   int
	samples    []float32
	offset     int
}

func (m *mockOggReader) SampleRate() int { return m.sampleRate }
func (m *mockOggReader) Channels() int   { return m.channels }

func (m *mockOggReader) Read(buf []float32) (int, error) {
	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	n := min(len(buf), len(m.samples)-m.offset)
	n -= n % m.channels

	copy(buf, m.samples[m.offset:m.offset+n])
	m.offset += n

	return n, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("not an ogg stream")))
	if err == nil {
		t.Error("Decode() error = nil, want error for invalid data")
	}
}

func TestDecoder_EmptyInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader(nil))
	if err == nil {
		t.Error("Decode() error = nil, want error for empty input")
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        &mockOggReader{sampleRate: 48000, channels: 2},
		sampleRate: 48000,
		channels:   2,
		bufSize:    4096,
	}

	if src.SampleRate() != 48000 {
		t.Errorf("SampleRate() = %d, want 48000", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
	if src.BufSize() != 4096 {
		t.Errorf("BufSize() = %d, want 4096", src.BufSize())
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	pcm := []float32{0.1, -0.1, 0.2, -0.2, 0.3, -0.3}
	src := &source{
		dec:        &mockOggReader{sampleRate: 48000, channels: 2, samples: pcm},
		sampleRate: 48000,
		channels:   2,
		bufSize:    16,
	}

	dst := make([]float32, 16)
	n, err := src.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != len(pcm) {
		t.Fatalf("ReadSamples() n = %d, want %d", n, len(pcm))
	}

	for i, want := range pcm {
		if dst[i] != want {
			t.Errorf("sample %d = %v, want %v", i, dst[i], want)
		}
	}
}

// A stereo stream longer than the destination buffer must drain in
// full-buffer reads: every reported count stays within the buffer and
// the values line up with the stream.
func TestSource_ReadSamples_StereoLongStream(t *testing.T) {
	t.Parallel()

	pcm := make([]float32, 12000)
	for i := range pcm {
		pcm[i] = float32(i%100) / 100.0
	}

	src := &source{
		dec:        &mockOggReader{sampleRate: 48000, channels: 2, samples: pcm},
		sampleRate: 48000,
		channels:   2,
		bufSize:    4096,
	}

	dst := make([]float32, 4096)
	total := 0
	for {
		n, err := src.ReadSamples(dst)
		if n > len(dst) {
			t.Fatalf("ReadSamples() n = %d exceeds len(dst) = %d", n, len(dst))
		}
		for i := 0; i < n; i++ {
			if dst[i] != pcm[total+i] {
				t.Fatalf("sample %d = %v, want %v", total+i, dst[i], pcm[total+i])
			}
		}
		total += n

		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	if total != len(pcm) {
		t.Errorf("drained %d samples, want %d", total, len(pcm))
	}
}

func TestSource_MisalignedDst(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        &mockOggReader{sampleRate: 48000, channels: 2, samples: []float32{0.1, 0.2}},
		sampleRate: 48000,
		channels:   2,
		bufSize:    16,
	}

	n, err := src.ReadSamples(make([]float32, 3))
	if n != 0 || !errors.Is(err, dsp.ErrInvalidDstSize) {
		t.Errorf("ReadSamples(misaligned) = (%d, %v), want (0, dsp.ErrInvalidDstSize)", n, err)
	}
}

func TestSource_EmptyDst(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        &mockOggReader{sampleRate: 48000, channels: 2, samples: []float32{0.1, 0.2}},
		sampleRate: 48000,
		channels:   2,
		bufSize:    16,
	}

	n, err := src.ReadSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}
}

func TestSource_ReadAfterDrain(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        &mockOggReader{sampleRate: 48000, channels: 1, samples: []float32{0.5}},
		sampleRate: 48000,
		channels:   1,
		bufSize:    16,
	}

	dst := make([]float32, 8)
	if _, err := src.ReadSamples(dst); err != nil && err != io.EOF {
		t.Fatalf("first ReadSamples() error = %v", err)
	}

	n, err := src.ReadSamples(dst)
	if n != 0 || err != io.EOF {
		t.Errorf("drained ReadSamples() = (%d, %v), want (0, io.EOF)", n, err)
	}
}
