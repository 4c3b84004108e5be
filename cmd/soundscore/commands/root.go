package commands

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	cfgFile       string
	mode          string
	chunkSeconds  int
	modelPath     string
	classMap      string
	resamplerName string
	topN          int
	highlights    int
	metricsFile   string
	outputFormat  string
	verbose       bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "soundscore <input_file> <output_dir>",
	Short: "Score audio events in a WAV file with YAMNet",
	Long: `soundscore - per-frame audio event scores for a WAV recording.

The input is resampled to 16 kHz when needed, normalized, and classified
with a YAMNet ONNX model. Results are written as JSON into the output
directory, which is created if missing. An s3://bucket/prefix output is
uploaded instead; credentials come from the output.s3 config section.

Settings are applied in order: built-in defaults, the --config file,
then flags.

Examples:
  # Summarize a recording
  soundscore --model models/yamnet.onnx talk.wav out/

  # Split a long recording into 30 minute chunks
  soundscore --mode chunked --model models/yamnet.onnx day.wav out/

  # Use a config file and print the run as a table
  soundscore --config soundscore.yaml --format table talk.wav s3://scores/talk
`,
	Args:          cobra.ExactArgs(2),
	RunE:          runScore,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command until it finishes or the process is
// interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	cobra.OnInitialize(initConfig)
	bindFlags(rootCmd)
}

// bindFlags registers the command flags, resetting their variables to the
// flag defaults.
func bindFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&cfgFile, "config", "", "config file (YAML or JSON)")
	f.StringVar(&mode, "mode", "", "whole or chunked (default whole)")
	f.IntVar(&chunkSeconds, "chunk-seconds", 0, "chunk length in chunked mode (default 1800)")
	f.StringVar(&modelPath, "model", "", "YAMNet .onnx model file (default yamnet.onnx)")
	f.StringVar(&classMap, "class-map", "", "class map CSV (default yamnet_class_map.csv next to the model)")
	f.StringVar(&resamplerName, "resampler", "", "fft or sinc (default fft)")
	f.IntVar(&topN, "top", 0, "classes kept by mean score in scores_data.json (default 10)")
	f.IntVar(&highlights, "highlights", 0, "write up to N highlight segments to highlights.json")
	f.StringVar(&metricsFile, "metrics-file", "", "write run metrics to this Prometheus textfile")
	f.StringVar(&outputFormat, "format", "yaml", "run summary format: yaml, json or table")
	f.BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func initConfig() {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})))
}
