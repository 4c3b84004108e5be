package commands

import (
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/haivivi/soundscore/pkg/audioscore"
	"github.com/haivivi/soundscore/pkg/cli"
	"github.com/haivivi/soundscore/pkg/storage"
	"github.com/haivivi/soundscore/pkg/yamnet"
)

func runScore(cmd *cobra.Command, args []string) (err error) {
	input, output := args[0], args[1]

	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	format, err := cli.ParseOutputFormat(outputFormat)
	if err != nil {
		return audioscore.ConfigError.Wrap(err, "--format")
	}

	runID := uuid.NewString()
	log := slog.Default().With("run", runID)
	if fi, err := os.Stat(input); err == nil {
		log.Info("input", "path", input, "size", cli.FormatBytes(fi.Size()))
	}

	store, err := storage.Open(output, cfg.Output.S3)
	if err != nil {
		return audioscore.IOError.Wrap(err, "open output %s", output)
	}

	model, err := yamnet.Open(cfg.Model)
	if err != nil {
		return err
	}
	defer model.Close()
	log.Debug("model loaded", "path", cfg.Model.Path, "classes", len(model.Labels()))

	metrics := audioscore.NewMetrics()
	if cfg.MetricsFile != "" {
		defer func() {
			if werr := metrics.WriteTextfile(cfg.MetricsFile); werr != nil {
				if err == nil {
					err = werr
				} else {
					log.Warn("metrics not written", "error", werr)
				}
			}
		}()
	}

	p, err := audioscore.New(cfg, model, store,
		audioscore.WithMetrics(metrics),
		audioscore.WithLogger(log))
	if err != nil {
		return err
	}

	begin := time.Now()
	report, err := p.Run(cmd.Context(), input)
	if err != nil {
		return err
	}
	report.RunID = runID
	log.Info("done", "output", store.Location(), "elapsed", cli.FormatDuration(time.Since(begin)))

	return cli.Output(report, cli.OutputOptions{
		Format: format,
		Title:  "soundscore",
		Writer: cmd.OutOrStdout(),
	})
}
