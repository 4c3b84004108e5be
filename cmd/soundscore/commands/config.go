package commands

import (
	"github.com/spf13/cobra"

	"github.com/haivivi/soundscore/pkg/audio/resampler"
	"github.com/haivivi/soundscore/pkg/audioscore"
	"github.com/haivivi/soundscore/pkg/cli"
)

// buildConfig layers the --config file and then every flag the user set
// over the defaults, and validates the result.
func buildConfig(cmd *cobra.Command) (audioscore.Config, error) {
	cfg := audioscore.DefaultConfig()
	if cfgFile != "" {
		if err := cli.LoadFile(cfgFile, &cfg); err != nil {
			return cfg, audioscore.ConfigError.Wrap(err, "load %s", cfgFile)
		}
	}

	f := cmd.Flags()
	if f.Changed("mode") {
		cfg.Mode = audioscore.Mode(mode)
	}
	if f.Changed("chunk-seconds") {
		cfg.ChunkSeconds = chunkSeconds
	}
	if f.Changed("model") {
		cfg.Model.Path = modelPath
	}
	if f.Changed("class-map") {
		cfg.Model.ClassMap = classMap
	}
	if f.Changed("resampler") {
		cfg.Audio.Resampler = resampler.Method(resamplerName)
	}
	if f.Changed("top") {
		cfg.Summary.TopN = topN
	}
	if f.Changed("highlights") {
		cfg.Highlights.MaxSegments = highlights
	}
	if f.Changed("metrics-file") {
		cfg.MetricsFile = metricsFile
	}

	return cfg, cfg.Validate()
}
