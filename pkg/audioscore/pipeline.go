package audioscore

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/joomcode/errorx"

	"github.com/haivivi/soundscore/pkg/storage"
)

// Report describes a finished run.
type Report struct {
	RunID         string   `yaml:"run_id,omitempty" json:"run_id,omitempty"`
	Input         string   `yaml:"input" json:"input"`
	Output        string   `yaml:"output" json:"output"`
	Mode          Mode     `yaml:"mode" json:"mode"`
	SourceRate    int      `yaml:"source_rate" json:"source_rate"`
	SampleRate    int      `yaml:"sample_rate" json:"sample_rate"`
	Samples       int      `yaml:"samples" json:"samples"`
	Duration      string   `yaml:"duration" json:"duration"`
	Frames        int      `yaml:"frames" json:"frames"`
	Chunks        int      `yaml:"chunks" json:"chunks"`
	DominantClass string   `yaml:"dominant_class,omitempty" json:"dominant_class,omitempty"`
	TopClasses    []string `yaml:"top_classes,omitempty" json:"top_classes,omitempty"`
	Highlights    int      `yaml:"highlights,omitempty" json:"highlights,omitempty"`
	Files         []string `yaml:"files" json:"files"`
}

// TableRows lists the report as label/value pairs for terminal display.
func (r *Report) TableRows() [][2]string {
	rows := [][2]string{
		{"Input", r.Input},
		{"Output", r.Output},
		{"Mode", string(r.Mode)},
		{"Sample rate", strconv.Itoa(r.SourceRate) + " Hz -> " + strconv.Itoa(r.SampleRate) + " Hz"},
		{"Duration", r.Duration},
		{"Samples", strconv.Itoa(r.Samples)},
		{"Frames", strconv.Itoa(r.Frames)},
		{"Chunks", strconv.Itoa(r.Chunks)},
	}
	if r.DominantClass != "" {
		rows = append(rows, [2]string{"Main sound", r.DominantClass})
	}
	if len(r.TopClasses) > 0 {
		rows = append(rows, [2]string{"Top classes", strings.Join(r.TopClasses, ", ")})
	}
	if r.Highlights > 0 {
		rows = append(rows, [2]string{"Highlights", strconv.Itoa(r.Highlights)})
	}
	rows = append(rows, [2]string{"Files", strings.Join(r.Files, ", ")})
	return rows
}

// Pipeline wires the loader, runner, and writer for one configuration.
type Pipeline struct {
	cfg        Config
	classifier Classifier
	store      storage.FileStore
	metrics    *Metrics
	log        *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithMetrics records run metrics into m.
func WithMetrics(m *Metrics) Option {
	return func(p *Pipeline) { p.metrics = m }
}

// WithLogger sets the logger for progress messages.
func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) { p.log = l }
}

// New validates cfg and the classifier's label table and returns a
// Pipeline writing into store.
func New(cfg Config, c Classifier, store storage.FileStore, opts ...Option) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if n := len(c.Labels()); n != ClassCount {
		return nil, InferenceError.New("classifier has %d labels, want %d", n, ClassCount)
	}
	p := &Pipeline{cfg: cfg, classifier: c, store: store}
	for _, opt := range opts {
		opt(p)
	}
	if p.metrics == nil {
		p.metrics = NewMetrics()
	}
	if p.log == nil {
		p.log = slog.New(slog.DiscardHandler)
	}
	return p, nil
}

// Run scores the WAV file at input. Files written before a failure stay in
// the store.
func (p *Pipeline) Run(ctx context.Context, input string) (*Report, error) {
	begin := time.Now()

	wave, err := Load(input)
	if err != nil {
		return nil, err
	}
	sourceRate := wave.SampleRate
	wave, err = EnsureSampleRate(wave, p.cfg.Audio.TargetRate, p.cfg.Audio.Resampler)
	if err != nil {
		return nil, err
	}
	p.metrics.AudioSeconds.Set(wave.Duration().Seconds())
	p.log.Info("loaded audio",
		"input", input,
		"source_rate", sourceRate,
		"sample_rate", wave.SampleRate,
		"duration", wave.Duration().Round(10*time.Millisecond),
		"samples", len(wave.Samples))

	report := &Report{
		Input:      input,
		Output:     p.store.Location(),
		Mode:       p.cfg.Mode,
		SourceRate: sourceRate,
		SampleRate: wave.SampleRate,
		Samples:    len(wave.Samples),
		Duration:   wave.Duration().Round(10 * time.Millisecond).String(),
	}

	runner := NewRunner(p.classifier, p.metrics, p.log)
	writer := NewWriter(p.store, p.metrics, p.log)

	switch p.cfg.Mode {
	case ModeChunked:
		err = p.runChunked(ctx, runner, writer, wave, report)
	default:
		err = p.runWhole(ctx, runner, writer, wave, report)
	}
	report.Files = writer.Files()
	if err != nil {
		return nil, errorx.Decorate(err, "score %s", input)
	}

	p.log.Info("scoring finished",
		"mode", p.cfg.Mode,
		"files", len(report.Files),
		"elapsed", time.Since(begin).Round(time.Millisecond))
	return report, nil
}

func (p *Pipeline) runWhole(ctx context.Context, r *Runner, w *Writer, wave Waveform, report *Report) error {
	inf, err := r.Whole(ctx, wave)
	if err != nil {
		return err
	}
	labels := p.classifier.Labels()
	means := MeanScores(inf.Scores)
	report.Frames = inf.Scores.Frames()
	report.Chunks = 1
	report.DominantClass = labels[Dominant(means)]
	p.log.Info("main sound", "class", report.DominantClass)

	classes := SelectClasses(labels, means, p.cfg.Summary.TopN, p.cfg.Summary.WatchClasses)
	summary := Summarize(inf.Scores, labels, classes)
	report.TopClasses = summary.ClassNames[:min(p.cfg.Summary.TopN, len(summary.ClassNames))]

	if err := w.WriteSummary(ctx, summary); err != nil {
		return err
	}
	if err := w.WriteClassNames(ctx, labels); err != nil {
		return err
	}
	if hc := p.cfg.Highlights; hc.MaxSegments > 0 {
		h := FindHighlights(summary, hc.FramesPerSegment, hc.MaxSegments)
		report.Highlights = len(h.Segments)
		if err := w.WriteHighlights(ctx, h); err != nil {
			return err
		}
	}
	return nil
}

func (p *Pipeline) runChunked(ctx context.Context, r *Runner, w *Writer, wave Waveform, report *Report) error {
	n, err := r.Chunked(ctx, wave, p.cfg.ChunkSeconds, func(i int, scores ScoreMatrix) error {
		report.Frames += scores.Frames()
		return w.WriteChunk(ctx, i, scores)
	})
	report.Chunks = n
	return err
}
