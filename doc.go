// SPDX-License-Identifier: EPL-2.0

// Package speechpipe turns raw neural text-to-speech waveforms into
// playable WAV audio.
//
// The pipeline runs three pure, CPU-bound transforms in a fixed order:
//
//  1. Loudness normalization: scale toward a target RMS with a tanh
//     soft limiter (dsp.Normalize)
//  2. Upsampling to the playback rate with Catmull-Rom cubic
//     interpolation (dsp.Upsample)
//  3. Container encoding: dithered 16-bit quantization and a
//     hand-built, self-verified RIFF/WAVE header (wav.Encode)
//
// The encoded container is wrapped in a revocable playback handle; a
// session keeps at most one handle live at a time.
//
// # Quick Start
//
//	pipe := speechpipe.New(engine) // engine implements tts.Engine
//	defer pipe.Close()
//
//	handle, err := pipe.Speak(ctx, "hello there")
//	if err != nil {
//	    // Handle error
//	}
//	play(handle.Bytes())
//
// To run the transforms on a waveform you already have:
//
//	buf, err := pipe.Process(samples, 24000)
//
// # Prerecorded Audio
//
// Existing recordings can be routed through the same pipeline. Each
// format package (formats/wav, formats/mp3, formats/vorbis,
// formats/aiff) decodes into a streaming dsp.Source:
//
//	src, _ := mp3.Decoder{}.Decode(file)
//	buf, err := pipe.ProcessSource(src)
//
// # Concurrency
//
// A pipeline runs one generation at a time: Speak rejects a concurrent
// call with ErrBusy instead of letting two runs race to install a
// handle. The transforms themselves share no state and allocate fresh
// buffers per run.
//
// # Configuration
//
// Defaults (target RMS 0.15, output rate 48000 Hz, buffer size 4096)
// can be overridden with Options or loaded from YAML via the config
// package.
package speechpipe
