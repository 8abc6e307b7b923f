// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var convertOutput string

var convertCmd = &cobra.Command{
	Use:   "convert <input>",
	Short: "Decode a file and run it through the pipeline",
	Long: `Decode an audio file, mix it down to mono and run it through the
pipeline: loudness normalization, cubic upsampling to the output rate
and dithered 16-bit WAV encoding.

Example:
  speechpipe convert voice.mp3 -o voice.wav --rate 48000`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if convertOutput == "" {
			return fmt.Errorf("output file is required, use -o flag")
		}

		src, cleanup, err := openSource(args[0])
		if err != nil {
			return err
		}
		defer cleanup()

		slog.Debug("convert: input opened",
			"path", args[0],
			"rate", src.SampleRate(),
			"channels", src.Channels(),
		)

		pipe := newPipeline()
		defer pipe.Close()

		container, err := pipe.ProcessSource(src)
		if err != nil {
			return fmt.Errorf("processing %s: %w", args[0], err)
		}

		if err := os.WriteFile(convertOutput, container, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", convertOutput, err)
		}

		slog.Info("convert: done",
			"output", convertOutput,
			"bytes", len(container),
			"rate", globalConfig.Pipeline.OutputRate,
		)
		return nil
	},
}

func init() {
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "output WAV file")
}
