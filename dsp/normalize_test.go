// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"errors"
	"math"
	"testing"
)

func TestNormalize_PeakBelowOne(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		amplitude float32
	}{
		{"quiet signal", 0.001},
		{"nominal signal", 0.5},
		{"full scale signal", 1.0},
		{"over range signal", 10.0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			in := make([]float32, 2048)
			for i := range in {
				in[i] = tt.amplitude * float32(math.Sin(float64(i)*0.05))
			}

			out, err := Normalize(in, DefaultTargetRMS)
			if err != nil {
				t.Fatalf("Normalize() error = %v", err)
			}

			if len(out) != len(in) {
				t.Fatalf("Normalize() len = %d, want %d", len(out), len(in))
			}

			for i, v := range out {
				if float64(math.Abs(float64(v))) >= 1.0 {
					t.Fatalf("sample %d = %v, want |v| < 1.0", i, v)
				}
			}
		})
	}
}

func TestNormalize_TargetLoudness(t *testing.T) {
	t.Parallel()

	// A moderate sine should land near targetRMS * LimiterPreScale:
	// the tanh knee barely compresses at that level.
	in := make([]float32, 4096)
	for i := range in {
		in[i] = 0.5 * float32(math.Sin(float64(i)*0.1))
	}

	out, err := Normalize(in, DefaultTargetRMS)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	got := RMS(out)
	want := DefaultTargetRMS * LimiterPreScale
	if math.Abs(got-want) > 0.02 {
		t.Errorf("output RMS = %v, want ≈%v", got, want)
	}
}

func TestNormalize_SilencePassthrough(t *testing.T) {
	t.Parallel()

	in := make([]float32, 512)

	out, err := Normalize(in, DefaultTargetRMS)
	if err != nil {
		t.Fatalf("Normalize() on silence error = %v", err)
	}

	if len(out) != len(in) {
		t.Fatalf("Normalize() len = %d, want %d", len(out), len(in))
	}

	for i, v := range out {
		if v != 0 {
			t.Fatalf("sample %d = %v, want 0", i, v)
		}
	}
}

func TestNormalize_EmptyInput(t *testing.T) {
	t.Parallel()

	_, err := Normalize(nil, DefaultTargetRMS)
	if !errors.Is(err, ErrEmptySignal) {
		t.Errorf("Normalize(nil) error = %v, want ErrEmptySignal", err)
	}

	_, err = Normalize([]float32{}, DefaultTargetRMS)
	if !errors.Is(err, ErrEmptySignal) {
		t.Errorf("Normalize([]) error = %v, want ErrEmptySignal", err)
	}
}

func TestNormalize_InputUntouched(t *testing.T) {
	t.Parallel()

	in := []float32{0.1, -0.2, 0.3, -0.4}
	orig := make([]float32, len(in))
	copy(orig, in)

	out, err := Normalize(in, DefaultTargetRMS)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	for i := range in {
		if in[i] != orig[i] {
			t.Fatalf("input sample %d modified: %v -> %v", i, orig[i], in[i])
		}
	}

	if &out[0] == &in[0] {
		t.Error("Normalize() returned the input slice instead of a copy")
	}
}

func TestNormalize_Deterministic(t *testing.T) {
	t.Parallel()

	in := make([]float32, 1024)
	for i := range in {
		in[i] = float32(math.Sin(float64(i) * 0.07))
	}

	out1, err := Normalize(in, DefaultTargetRMS)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	out2, err := Normalize(in, DefaultTargetRMS)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	for i := range out1 {
		if out1[i] != out2[i] {
			t.Fatalf("sample %d differs between runs: %v vs %v", i, out1[i], out2[i])
		}
	}
}

func TestNormalize_KnownValue(t *testing.T) {
	t.Parallel()

	// Single sample 0.5: RMS = 0.5, scale = 0.3,
	// tanh(0.5 * 0.3 * 0.9) = tanh(0.135).
	out, err := Normalize([]float32{0.5}, DefaultTargetRMS)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	want := float32(math.Tanh(0.135))
	if math.Abs(float64(out[0]-want)) > 1e-6 {
		t.Errorf("Normalize([0.5])[0] = %v, want %v", out[0], want)
	}
}

func TestRMS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		samples []float32
		want    float64
	}{
		{"empty", nil, 0},
		{"silence", []float32{0, 0, 0}, 0},
		{"unit", []float32{1, -1, 1, -1}, 1},
		{"half", []float32{0.5, -0.5}, 0.5},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := RMS(tt.samples)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("RMS() = %v, want %v", got, tt.want)
			}
		})
	}
}

func BenchmarkNormalize(b *testing.B) {
	in := make([]float32, 24000)
	for i := range in {
		in[i] = 0.5 * float32(math.Sin(float64(i)*0.1))
	}

	b.ResetTimer()
	b.ReportAllocs()

	for _i := 0; _i < b.N; _i++ {
		_, _ = Normalize(in, DefaultTargetRMS)
	}
}
