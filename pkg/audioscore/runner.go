package audioscore

import (
	"context"
	"log/slog"
	"time"

	"github.com/joomcode/errorx"
)

// Runner feeds normalized waveforms to a Classifier.
type Runner struct {
	classifier Classifier
	metrics    *Metrics
	log        *slog.Logger
}

// NewRunner creates a Runner. A nil metrics or logger disables that output.
func NewRunner(c Classifier, m *Metrics, log *slog.Logger) *Runner {
	if m == nil {
		m = NewMetrics()
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Runner{classifier: c, metrics: m, log: log}
}

// Whole classifies the entire waveform in a single call and checks the
// score, embedding, and spectrogram widths against the model contract.
func (r *Runner) Whole(ctx context.Context, w Waveform) (*Inference, error) {
	if len(w.Samples) == 0 {
		return nil, InferenceError.New("empty waveform")
	}
	inf, err := r.classify(ctx, Normalize(w.Samples))
	if err != nil {
		return nil, err
	}
	if err := checkWidth("embeddings", inf.Embeddings, EmbeddingWidth); err != nil {
		return nil, err
	}
	if err := checkWidth("spectrogram", inf.Spectrogram, SpectrogramBands); err != nil {
		return nil, err
	}
	return inf, nil
}

// ChunkFunc receives the scores of one chunk. It returns before the next
// chunk is classified.
type ChunkFunc func(index int, scores ScoreMatrix) error

// Chunked splits the waveform into chunks of seconds length, normalizes and
// classifies each independently, and passes each score matrix to fn in
// order. It returns the number of chunks handed to fn.
func (r *Runner) Chunked(ctx context.Context, w Waveform, seconds int, fn ChunkFunc) (int, error) {
	per := SamplesPerChunk(w.SampleRate, seconds)
	if per <= 0 {
		return 0, ConfigError.New("chunk length %d s at %d Hz is not positive", seconds, w.SampleRate)
	}
	chunks := Chunks(w.Samples, per)
	done := 0
	for i, chunk := range chunks {
		if err := ctx.Err(); err != nil {
			return done, InferenceError.Wrap(err, "chunk %d", i)
		}
		r.log.Info("classifying chunk",
			"chunk", i+1,
			"of", len(chunks),
			"samples", len(chunk))
		inf, err := r.classify(ctx, Normalize(chunk))
		if err != nil {
			return done, errorx.Decorate(err, "chunk %d", i)
		}
		if err := fn(i, inf.Scores); err != nil {
			return done, err
		}
		done++
	}
	return done, nil
}

// classify runs one classifier call and checks the score matrix shape.
func (r *Runner) classify(ctx context.Context, wave []float32) (*Inference, error) {
	start := time.Now()
	inf, err := r.classifier.Classify(ctx, wave)
	elapsed := time.Since(start)
	r.metrics.InferenceSeconds.Observe(elapsed.Seconds())
	if err != nil {
		return nil, InferenceError.Wrap(err, "classify %d samples", len(wave))
	}
	if inf == nil {
		return nil, InferenceError.New("classifier returned no result")
	}
	if inf.Scores.Frames() == 0 {
		return nil, InferenceError.New("classifier returned no score frames")
	}
	if err := checkWidth("scores", inf.Scores, ClassCount); err != nil {
		return nil, err
	}
	r.metrics.ChunksProcessed.Inc()
	r.metrics.FramesScored.Add(float64(inf.Scores.Frames()))
	r.log.Debug("classified",
		"samples", len(wave),
		"frames", inf.Scores.Frames(),
		"elapsed", elapsed)
	return inf, nil
}
