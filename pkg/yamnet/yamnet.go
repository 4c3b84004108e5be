package yamnet

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/haivivi/soundscore/pkg/audioscore"
	"github.com/haivivi/soundscore/pkg/classmap"
	"github.com/haivivi/soundscore/pkg/onnx"
)

// Model is a loaded YAMNet session and its label table. It implements
// audioscore.Classifier. A Model is not safe for concurrent use.
type Model struct {
	env     *onnx.Env
	session *onnx.Session
	labels  []string
	input   string
	outputs []string
}

var _ audioscore.Classifier = (*Model)(nil)

// Open loads the model file and class map named by cfg. A missing file is
// an IOError; a class map that does not parse, or a model the runtime
// rejects, is a FormatError.
func Open(cfg audioscore.ModelConfig) (*Model, error) {
	labels, err := loadLabels(cfg.ClassMapPath())
	if err != nil {
		return nil, err
	}

	env, err := onnx.NewEnv("soundscore")
	if err != nil {
		return nil, audioscore.InferenceError.Wrap(err, "create onnx environment")
	}
	session, err := env.LoadSession(cfg.Path)
	if err != nil {
		env.Close()
		if isPathError(err) {
			return nil, audioscore.IOError.Wrap(err, "read model %s", cfg.Path)
		}
		return nil, audioscore.FormatError.Wrap(err, "load model %s", cfg.Path)
	}

	return &Model{
		env:     env,
		session: session,
		labels:  labels,
		input:   cfg.Input,
		outputs: []string{cfg.Outputs.Scores, cfg.Outputs.Embeddings, cfg.Outputs.Spectrogram},
	}, nil
}

func loadLabels(path string) ([]string, error) {
	labels, err := classmap.Load(path)
	if err != nil {
		if isPathError(err) {
			return nil, audioscore.IOError.Wrap(err, "open class map %s", path)
		}
		return nil, audioscore.FormatError.Wrap(err, "class map %s", path)
	}
	return labels, nil
}

func isPathError(err error) bool {
	var pe *fs.PathError
	return errors.As(err, &pe)
}

// Labels returns the class display names in score column order.
func (m *Model) Labels() []string { return m.labels }

// Classify runs the model once over the whole waveform.
func (m *Model) Classify(ctx context.Context, waveform []float32) (*audioscore.Inference, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(waveform) == 0 {
		return nil, fmt.Errorf("yamnet: empty waveform")
	}

	input, err := onnx.NewTensor([]int64{int64(len(waveform))}, waveform)
	if err != nil {
		return nil, fmt.Errorf("yamnet: input tensor: %w", err)
	}
	defer input.Close()

	outputs, err := m.session.Run([]string{m.input}, []*onnx.Tensor{input}, m.outputs)
	if err != nil {
		return nil, fmt.Errorf("yamnet: run: %w", err)
	}
	defer func() {
		for _, t := range outputs {
			t.Close()
		}
	}()

	mats := make([][][]float32, len(outputs))
	for i, t := range outputs {
		mats[i], err = t.Matrix()
		if err != nil {
			return nil, fmt.Errorf("yamnet: output %s: %w", m.outputs[i], err)
		}
	}
	return newInference(mats)
}

// newInference maps the three model outputs, in model order, onto an
// Inference.
func newInference(mats [][][]float32) (*audioscore.Inference, error) {
	if len(mats) != 3 {
		return nil, fmt.Errorf("yamnet: got %d outputs, want 3", len(mats))
	}
	return &audioscore.Inference{
		Scores:      audioscore.ScoreMatrix(mats[0]),
		Embeddings:  mats[1],
		Spectrogram: mats[2],
	}, nil
}

// Close releases the session and the runtime environment.
func (m *Model) Close() error {
	serr := m.session.Close()
	eerr := m.env.Close()
	if serr != nil {
		return serr
	}
	return eerr
}
