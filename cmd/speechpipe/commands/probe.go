// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ik5/speechpipe/diag"
	"github.com/ik5/speechpipe/dsp"
)

var probeCmd = &cobra.Command{
	Use:   "probe <input>",
	Short: "Decode a file and print signal statistics",
	Long: `Decode an audio file, mix it down to mono and print the signal
statistics the pipeline records at each stage: sample count, range,
measured loudness, zero and clipped sample ratios.

Example:
  speechpipe probe voice.wav`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, cleanup, err := openSource(args[0])
		if err != nil {
			return err
		}
		defer cleanup()

		samples, rate, err := dsp.Collect(src, globalConfig.Pipeline.BufferSize)
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}

		stats := diag.Analyze(samples)

		fmt.Printf("file:     %s\n", args[0])
		fmt.Printf("rate:     %d Hz\n", rate)
		fmt.Printf("channels: %d (mixed to mono)\n", src.Channels())
		fmt.Printf("samples:  %d\n", stats.Samples)
		fmt.Printf("duration: %.3f s\n", float64(stats.Samples)/float64(rate))
		fmt.Printf("range:    [%.6f, %.6f]\n", stats.Min, stats.Max)
		fmt.Printf("rms:      %.6f\n", dsp.RMS(samples))
		fmt.Printf("zero:     %d (%.2f%%)\n", stats.ZeroCount, stats.ZeroPct)
		fmt.Printf("clipped:  %d (%.2f%%)\n", stats.ClipCount, stats.ClipPct)

		return nil
	},
}
