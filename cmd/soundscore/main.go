// Command soundscore scores a WAV recording with the YAMNet audio event
// classifier and writes the per-frame class scores as JSON.
//
// Usage:
//
//	soundscore [flags] <input_file> <output_dir>
//
// In whole-file mode (the default) it writes:
//
//	scores_data.json     top classes by mean score plus watched classes,
//	                     one score series per class
//	scores_classes.json  every class name, in score column order
//	highlights.json      peak segments (only with --highlights)
//
// In chunked mode it writes one scores_data_chunk_<i>.json per 30 minutes
// of audio. The output directory may be an s3://bucket/prefix URI.
package main

import (
	"fmt"
	"os"

	"github.com/haivivi/soundscore/cmd/soundscore/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(1)
	}
}
