package wav

import "errors"

var (
	ErrNotWavFile            = errors.New("not a WAV file")
	ErrUnsupportedWavLayout  = errors.New("unsupported WAV layout")
	ErrOnlyPCM16bitSupported = errors.New("only PCM 16-bit supported")
	ErrUnsupportedWavChunks  = errors.New("unsupported WAV chunks")

	// ErrEmptySignal is returned by the encoder for a zero-length signal.
	ErrEmptySignal = errors.New("empty input signal")
	// ErrInvalidSampleRate is returned by the encoder for a
	// non-positive sample rate.
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
	// ErrHeaderMismatch is returned when the post-write header
	// self-check fails; it indicates an implementation or platform bug
	// and is always fatal.
	ErrHeaderMismatch = errors.New("header verification failed")
)
