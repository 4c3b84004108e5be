package audioscore

import "context"

// Output widths of the YAMNet contract.
const (
	ClassCount       = 521
	EmbeddingWidth   = 1024
	SpectrogramBands = 64
)

// ScoreMatrix holds per-frame class scores: one row per frame, one column
// per class.
type ScoreMatrix [][]float32

// Frames is the number of rows.
func (m ScoreMatrix) Frames() int { return len(m) }

// Inference is everything one classifier call returns. Embeddings and
// Spectrogram are frame-major like Scores.
type Inference struct {
	Scores      ScoreMatrix
	Embeddings  [][]float32
	Spectrogram [][]float32
}

// Classifier is an audio event model.
type Classifier interface {
	// Classify scores a mono waveform normalized to [-1, 1] at the model's
	// sample rate.
	Classify(ctx context.Context, waveform []float32) (*Inference, error)

	// Labels returns the class names, index-aligned with score columns.
	Labels() []string
}

// checkWidth verifies every row of m has width columns.
func checkWidth(name string, m [][]float32, width int) error {
	for i, row := range m {
		if len(row) != width {
			return InferenceError.New("%s row %d has %d columns, want %d", name, i, len(row), width)
		}
	}
	return nil
}
