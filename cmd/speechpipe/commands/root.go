// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ik5/speechpipe"
	"github.com/ik5/speechpipe/config"
	"github.com/ik5/speechpipe/dsp"
	"github.com/ik5/speechpipe/formats/aiff"
	"github.com/ik5/speechpipe/formats/mp3"
	"github.com/ik5/speechpipe/formats/vorbis"
	"github.com/ik5/speechpipe/formats/wav"
	"github.com/ik5/speechpipe/tts"
)

var (
	// Global flags
	cfgFile    string
	outputRate int
	targetRMS  float64
	verbose    bool

	// Global configuration, loaded before any command runs
	globalConfig *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "speechpipe",
	Short: "Audio post-processing pipeline CLI",
	Long: `speechpipe - offline driver for the speech post-processing pipeline.

Decodes prerecorded audio (WAV, MP3, Ogg Vorbis, AIFF), mixes it down
to mono and runs it through the same chain used for synthesized
speech: loudness normalization, cubic upsampling and 16-bit WAV
encoding with triangular dither.

Examples:
  # Convert an MP3 to a normalized 48 kHz WAV
  speechpipe convert input.mp3 -o output.wav

  # Override the output rate and loudness target
  speechpipe convert input.ogg -o output.wav --rate 44100 --rms 0.2

  # Inspect a file without converting it
  speechpipe probe input.wav
`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML)")
	rootCmd.PersistentFlags().IntVar(&outputRate, "rate", 0, "output sample rate in Hz (overrides config)")
	rootCmd.PersistentFlags().Float64Var(&targetRMS, "rms", 0, "loudness normalization target (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug logging)")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(probeCmd)
}

func initConfig() {
	var err error
	globalConfig, err = config.LoadWithFallback(cfgFile)
	if err == nil {
		err = applyOverrides(globalConfig)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}

	slog.SetDefault(newLogger(globalConfig.Log.Level))
}

// applyOverrides copies flag values over cfg and re-validates, so an
// out-of-range --rate or --rms is rejected the same way a bad config
// file would be.
func applyOverrides(cfg *config.Config) error {
	if outputRate != 0 {
		cfg.Pipeline.OutputRate = outputRate
	}
	if targetRMS != 0 {
		cfg.Pipeline.TargetRMS = targetRMS
	}
	if verbose {
		cfg.Log.Level = "debug"
	}

	return cfg.Validate()
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

// newPipeline builds a pipeline from the loaded configuration. The CLI
// only processes prerecorded audio, so the engine slot stays empty.
func newPipeline() *speechpipe.Pipeline {
	return speechpipe.NewWithInit(
		func(ctx context.Context) (tts.Engine, error) {
			return nil, errors.New("no synthesis engine configured")
		},
		speechpipe.WithTargetRMS(globalConfig.Pipeline.TargetRMS),
		speechpipe.WithOutputRate(globalConfig.Pipeline.OutputRate),
		speechpipe.WithBufferSize(globalConfig.Pipeline.BufferSize),
		speechpipe.WithLogger(slog.Default()),
	)
}

// newRegistry wires every supported format decoder.
func newRegistry() *dsp.Registry {
	reg := dsp.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	return reg
}

// openSource decodes path with the registry decoder matching its
// extension. The returned cleanup closes both the source and the
// underlying file.
func openSource(path string) (dsp.Source, func(), error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	dec, ok := newRegistry().Get(ext)
	if !ok {
		return nil, nil, fmt.Errorf("unsupported input format %q", ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", path, err)
	}

	src, err := dec.Decode(f)
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	cleanup := func() {
		src.Close()
		f.Close()
	}
	return src, cleanup, nil
}
