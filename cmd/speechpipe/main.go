// SPDX-License-Identifier: EPL-2.0

// Package main provides the speechpipe command line tool.
//
// Usage:
//
//	speechpipe [flags] <command> [args]
//
// Commands:
//
//	convert - decode an audio file and run it through the pipeline
//	probe   - decode an audio file and print signal statistics
//
// Input formats are detected by file extension: .wav, .mp3, .ogg, .aiff
// and .aif are supported.
package main

import (
	"fmt"
	"os"

	"github.com/ik5/speechpipe/cmd/speechpipe/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
