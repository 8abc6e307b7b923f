// SPDX-License-Identifier: EPL-2.0

package speechpipe

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ik5/speechpipe/diag"
	"github.com/ik5/speechpipe/dsp"
	"github.com/ik5/speechpipe/formats/wav"
	"github.com/ik5/speechpipe/playback"
	"github.com/ik5/speechpipe/tts"
)

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithTargetRMS overrides the loudness normalization target.
func WithTargetRMS(rms float64) Option {
	return func(p *Pipeline) { p.targetRMS = rms }
}

// WithOutputRate overrides the playback sample rate in Hz.
func WithOutputRate(rate int) Option {
	return func(p *Pipeline) { p.outputRate = rate }
}

// WithBufferSize overrides the chunk size for streaming ingestion reads.
func WithBufferSize(n int) Option {
	return func(p *Pipeline) { p.bufferSize = n }
}

// WithLogger routes pipeline warnings and diagnostics through log.
func WithLogger(log *slog.Logger) Option {
	return func(p *Pipeline) {
		p.log = log
		p.rec = diag.NewRecorder(log)
	}
}

// Pipeline turns raw synthesized waveforms into playable WAV handles:
// normalize, upsample, encode, install. Construct one per playback
// session and pass it to whoever drives playback; there is no package
// level instance.
type Pipeline struct {
	targetRMS  float64
	outputRate int
	bufferSize int

	log *slog.Logger
	rec *diag.Recorder

	engine  *tts.Lazy
	session *playback.Session

	// Held for the whole of a Speak call; TryLock makes a second
	// concurrent generation fail with ErrBusy instead of queueing.
	generating sync.Mutex
}

// New builds a pipeline around an already constructed engine.
func New(engine tts.Engine, opts ...Option) *Pipeline {
	return NewWithInit(func(ctx context.Context) (tts.Engine, error) {
		return engine, nil
	}, opts...)
}

// NewWithInit builds a pipeline whose engine is loaded lazily by init
// on the first Speak; concurrent first callers share one attempt.
func NewWithInit(init func(ctx context.Context) (tts.Engine, error), opts ...Option) *Pipeline {
	p := &Pipeline{
		targetRMS:  dsp.DefaultTargetRMS,
		outputRate: 48000,
		bufferSize: 4096,
		log:        slog.Default(),
		engine:     tts.NewLazy(init),
		session:    playback.NewSession(),
	}
	p.rec = diag.NewRecorder(p.log)

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Process runs the pure transform chain on a raw waveform: loudness
// normalization, upsampling to the output rate, WAV encoding. Each
// stage allocates a fresh buffer; samples is never modified. Stage
// errors propagate unchanged, with no retries.
func (p *Pipeline) Process(samples []float32, inRate int) ([]byte, error) {
	if len(samples) == 0 {
		return nil, dsp.ErrEmptySignal
	}
	if inRate <= 0 {
		return nil, dsp.ErrInvalidRate
	}

	p.rec.Record("pre-normalize", samples)

	// Silence is a handled condition, not an error: the normalizer
	// passes it through and the encoder produces a quiet container.
	if dsp.RMS(samples) == 0 {
		p.log.Warn("pipeline: silent input signal", "samples", len(samples), "rate", inRate)
	}

	normalized, err := dsp.Normalize(samples, p.targetRMS)
	if err != nil {
		return nil, err
	}
	p.rec.Record("post-normalize", normalized)

	resampled, err := dsp.Upsample(normalized, inRate, p.outputRate)
	if err != nil {
		return nil, err
	}
	p.rec.Record("post-upsample", resampled)

	return wav.Encode(resampled, p.outputRate)
}

// ProcessSource collects a streaming source (a format decoder, mixed
// down to mono) and runs Process on the result.
func (p *Pipeline) ProcessSource(src dsp.Source) ([]byte, error) {
	samples, rate, err := dsp.Collect(src, p.bufferSize)
	if err != nil {
		return nil, fmt.Errorf("collecting source: %w", err)
	}

	return p.Process(samples, rate)
}

// Speak synthesizes text, processes the waveform and installs the
// result as the session's live handle, releasing the previous one. At
// most one generation runs at a time; a concurrent call fails fast
// with ErrBusy. The engine's contract (non-empty samples, positive
// rate) is re-validated by Process rather than trusted.
func (p *Pipeline) Speak(ctx context.Context, text string) (*playback.Handle, error) {
	if !p.generating.TryLock() {
		return nil, ErrBusy
	}
	defer p.generating.Unlock()

	engine, err := p.engine.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("speak: %w", err)
	}

	waveform, err := engine.Synthesize(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("speak: %w", err)
	}

	container, err := p.Process(waveform.Samples, waveform.SampleRate)
	if err != nil {
		return nil, err
	}

	handle := playback.NewHandle(container)
	p.session.Install(handle)

	return handle, nil
}

// Release revokes a handle produced by Speak. Releasing an unknown or
// already released handle is a no-op.
func (p *Pipeline) Release(h *playback.Handle) {
	p.session.Release(h)
}

// Session exposes the playback session, mostly for callers that manage
// handles directly.
func (p *Pipeline) Session() *playback.Session {
	return p.session
}

// Close tears the session down: the live handle is released and the
// engine closed.
func (p *Pipeline) Close() error {
	p.session.Close()

	err := p.engine.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
