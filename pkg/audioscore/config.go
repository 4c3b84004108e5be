package audioscore

import (
	"path/filepath"

	"github.com/haivivi/soundscore/pkg/audio/resampler"
	"github.com/haivivi/soundscore/pkg/storage"
)

// Mode selects how the waveform is fed to the classifier.
type Mode string

const (
	// ModeWhole classifies the whole recording in one call and writes a
	// top-class summary.
	ModeWhole Mode = "whole"
	// ModeChunked classifies fixed-length chunks and writes each chunk's raw
	// score matrix.
	ModeChunked Mode = "chunked"
)

// Pipeline defaults.
const (
	TargetSampleRate    = 16000
	DefaultChunkSeconds = 1800
	DefaultTopN         = 10
)

// DefaultWatchClasses are always included in the whole-file summary when
// the label set contains them.
var DefaultWatchClasses = []string{
	"Shout", "Yell", "Screaming", "Cheering", "Applause",
	"Laughter", "Whoop", "Clapping", "Gunshot, gunfire",
}

// Config holds all pipeline settings. The zero value is not usable; start
// from DefaultConfig.
type Config struct {
	Model        ModelConfig      `yaml:"model" json:"model"`
	Audio        AudioConfig      `yaml:"audio" json:"audio"`
	Mode         Mode             `yaml:"mode" json:"mode"`
	ChunkSeconds int              `yaml:"chunk_seconds" json:"chunk_seconds"`
	Summary      SummaryConfig    `yaml:"summary" json:"summary"`
	Highlights   HighlightsConfig `yaml:"highlights" json:"highlights"`
	Output       OutputConfig     `yaml:"output" json:"output"`
	MetricsFile  string           `yaml:"metrics_file" json:"metrics_file"`
}

// ModelConfig locates the classifier and names its graph inputs/outputs.
type ModelConfig struct {
	// Path is the .onnx model file.
	Path string `yaml:"path" json:"path"`

	// ClassMap is the label CSV. Empty means yamnet_class_map.csv next to
	// the model file.
	ClassMap string `yaml:"class_map" json:"class_map"`

	// Input is the name of the waveform input tensor.
	Input string `yaml:"input" json:"input"`

	Outputs ModelOutputs `yaml:"outputs" json:"outputs"`
}

// ModelOutputs are the output tensor names, in model order.
type ModelOutputs struct {
	Scores      string `yaml:"scores" json:"scores"`
	Embeddings  string `yaml:"embeddings" json:"embeddings"`
	Spectrogram string `yaml:"spectrogram" json:"spectrogram"`
}

// ClassMapPath resolves the class map location.
func (m ModelConfig) ClassMapPath() string {
	if m.ClassMap != "" {
		return m.ClassMap
	}
	return filepath.Join(filepath.Dir(m.Path), "yamnet_class_map.csv")
}

// AudioConfig controls resampling.
type AudioConfig struct {
	TargetRate int              `yaml:"target_rate" json:"target_rate"`
	Resampler  resampler.Method `yaml:"resampler" json:"resampler"`
}

// SummaryConfig controls class selection in whole-file mode.
type SummaryConfig struct {
	TopN         int      `yaml:"top_n" json:"top_n"`
	WatchClasses []string `yaml:"watch_classes" json:"watch_classes"`
}

// HighlightsConfig controls highlight segment extraction. MaxSegments of 0
// disables it.
type HighlightsConfig struct {
	MaxSegments      int `yaml:"max_segments" json:"max_segments"`
	FramesPerSegment int `yaml:"frames_per_segment" json:"frames_per_segment"`
}

// OutputConfig configures object storage when the output location is an
// s3:// URI.
type OutputConfig struct {
	S3 storage.S3Config `yaml:"s3" json:"s3"`
}

// DefaultConfig returns the settings the scorer runs with when no config
// file or flags override them.
func DefaultConfig() Config {
	return Config{
		Model: ModelConfig{
			Path:  "yamnet.onnx",
			Input: "waveform",
			Outputs: ModelOutputs{
				Scores:      "output_0",
				Embeddings:  "output_1",
				Spectrogram: "output_2",
			},
		},
		Audio: AudioConfig{
			TargetRate: TargetSampleRate,
			Resampler:  resampler.MethodFFT,
		},
		Mode:         ModeWhole,
		ChunkSeconds: DefaultChunkSeconds,
		Summary: SummaryConfig{
			TopN:         DefaultTopN,
			WatchClasses: append([]string(nil), DefaultWatchClasses...),
		},
		Highlights: HighlightsConfig{
			FramesPerSegment: 10,
		},
	}
}

// Validate reports the first invalid setting as a ConfigError.
func (c Config) Validate() error {
	switch c.Mode {
	case ModeWhole, ModeChunked:
	default:
		return ConfigError.New("unknown mode %q (want %q or %q)", c.Mode, ModeWhole, ModeChunked)
	}
	if _, err := resampler.ParseMethod(string(c.Audio.Resampler)); err != nil {
		return ConfigError.Wrap(err, "audio.resampler")
	}
	if c.Audio.TargetRate <= 0 {
		return ConfigError.New("audio.target_rate must be positive, got %d", c.Audio.TargetRate)
	}
	if c.ChunkSeconds <= 0 {
		return ConfigError.New("chunk_seconds must be positive, got %d", c.ChunkSeconds)
	}
	if c.Summary.TopN <= 0 {
		return ConfigError.New("summary.top_n must be positive, got %d", c.Summary.TopN)
	}
	if c.Highlights.MaxSegments < 0 {
		return ConfigError.New("highlights.max_segments must not be negative, got %d", c.Highlights.MaxSegments)
	}
	if c.Highlights.MaxSegments > 0 && c.Highlights.FramesPerSegment <= 0 {
		return ConfigError.New("highlights.frames_per_segment must be positive, got %d", c.Highlights.FramesPerSegment)
	}
	if c.Model.Input == "" || c.Model.Outputs.Scores == "" ||
		c.Model.Outputs.Embeddings == "" || c.Model.Outputs.Spectrogram == "" {
		return ConfigError.New("model input and output tensor names are required")
	}
	return nil
}
