// SPDX-License-Identifier: EPL-2.0

// Package diag computes and records per-stage signal statistics for
// observability and regression detection. Recording is fire-and-forget:
// a diagnostics failure never reaches the pipeline caller.
package diag

import "log/slog"

// Stats summarizes a signal in one pass.
type Stats struct {
	Samples   int
	Min       float32
	Max       float32
	ZeroCount int // samples exactly 0
	ClipCount int // samples with |v| >= 1.0
	ZeroPct   float64
	ClipPct   float64
}

// Analyze scans samples iteratively; it never recurses, so signal
// length is bounded only by memory.
func Analyze(samples []float32) Stats {
	s := Stats{Samples: len(samples)}
	if len(samples) == 0 {
		return s
	}

	s.Min = samples[0]
	s.Max = samples[0]

	for _, v := range samples {
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
		if v == 0 {
			s.ZeroCount++
		}
		if v >= 1.0 || v <= -1.0 {
			s.ClipCount++
		}
	}

	n := float64(len(samples))
	s.ZeroPct = float64(s.ZeroCount) / n * 100
	s.ClipPct = float64(s.ClipCount) / n * 100

	return s
}

// Recorder logs per-stage statistics through a slog.Logger. The zero
// value is not usable; construct with NewRecorder.
type Recorder struct {
	log *slog.Logger
}

// NewRecorder returns a Recorder logging through log. A nil log falls
// back to slog.Default().
func NewRecorder(log *slog.Logger) *Recorder {
	if log == nil {
		log = slog.Default()
	}
	return &Recorder{log: log}
}

// Record analyzes samples and logs the result keyed by stage (e.g.
// "pre-normalize", "post-upsample"). It is best-effort: any panic is
// recovered and discarded so diagnostics can never mask a pipeline
// error.
func (r *Recorder) Record(stage string, samples []float32) {
	defer func() {
		_ = recover()
	}()

	s := Analyze(samples)
	r.log.Debug("diag: stage stats",
		"stage", stage,
		"samples", s.Samples,
		"min", s.Min,
		"max", s.Max,
		"zero_count", s.ZeroCount,
		"zero_pct", s.ZeroPct,
		"clip_count", s.ClipCount,
		"clip_pct", s.ClipPct,
	)
}
