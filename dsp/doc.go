// SPDX-License-Identifier: EPL-2.0

// Package dsp provides the signal transforms of the speech pipeline.
//
// This package contains the core building blocks applied to a raw
// synthesized waveform before it is packaged for playback:
//   - Normalize for RMS loudness normalization with tanh soft limiting
//   - Upsample for sample rate conversion via Catmull-Rom interpolation
//   - Source interface plus MonoMixer and Collect for prerecorded
//     audio ingestion
//   - Format registry for decoder registration
//
// # Batch Transforms
//
// Normalize and Upsample operate on whole signals: each takes a
// []float32, allocates a fresh output and leaves the input untouched.
// They carry no state between samples, so a run is reproducible given
// the same input.
//
//	out, err := dsp.Normalize(samples, dsp.DefaultTargetRMS)
//	out, err = dsp.Upsample(out, 24000, 48000)
//
// # Source Interface
//
// Streaming ingestion uses the Source interface:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Format decoders implement Source; MonoMixer wraps any Source into a
// mono one, and Collect drains a Source into a []float32 ready for the
// batch transforms.
//
// # Format Registry
//
// The registry allows dynamic decoder registration:
//
//	registry := dsp.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, _ := registry.Get("wav")
//
// # Sample Format
//
// Audio samples are represented as float32 with a nominal range of
// [-1.0, 1.0]:
//   - 0.0 represents silence
//   - ±1.0 represents maximum amplitude
//
// A raw synthesized waveform may exceed the nominal range; Normalize
// brings it back inside (-1, 1) before quantization.
//
// # Error Handling
//
// Batch transforms reject a zero-length signal with ErrEmptySignal and
// a non-positive rate with ErrInvalidRate; both propagate to the
// pipeline caller unchanged. Streaming reads return io.EOF at end of
// stream:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    if err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err // Processing error
//	    }
//	    // Process n samples from buf
//	}
package dsp
