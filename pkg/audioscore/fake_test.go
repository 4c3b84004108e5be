package audioscore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// fakeHop is the number of samples per score frame of fakeClassifier.
const fakeHop = 1600

// fakeClassifier returns deterministic matrices: one frame per fakeHop
// samples (at least one), and class c scores (c%7)/10 in every frame.
type fakeClassifier struct {
	labels []string
	calls  []int // waveform length of each call
	failAt int   // call index that fails, or -1

	scoreWidth     int
	embeddingWidth int
	bands          int
}

func newFakeClassifier() *fakeClassifier {
	return &fakeClassifier{
		labels:         fakeLabels(),
		failAt:         -1,
		scoreWidth:     ClassCount,
		embeddingWidth: EmbeddingWidth,
		bands:          SpectrogramBands,
	}
}

// fakeLabels names classes class_<i>, with a few watch-list names placed
// at fixed indices.
func fakeLabels() []string {
	labels := make([]string, ClassCount)
	for i := range labels {
		labels[i] = fmt.Sprintf("class_%d", i)
	}
	labels[100] = "Shout"
	labels[200] = "Laughter"
	labels[300] = "Gunshot, gunfire"
	return labels
}

func (f *fakeClassifier) Classify(ctx context.Context, wave []float32) (*Inference, error) {
	call := len(f.calls)
	f.calls = append(f.calls, len(wave))
	if call == f.failAt {
		return nil, fmt.Errorf("fake failure on call %d", call)
	}
	frames := len(wave)/fakeHop + 1
	inf := &Inference{
		Scores:      make(ScoreMatrix, frames),
		Embeddings:  make([][]float32, frames),
		Spectrogram: make([][]float32, frames),
	}
	for i := range frames {
		row := make([]float32, f.scoreWidth)
		for c := range row {
			row[c] = float32(c%7) / 10
		}
		inf.Scores[i] = row
		inf.Embeddings[i] = make([]float32, f.embeddingWidth)
		inf.Spectrogram[i] = make([]float32, f.bands)
	}
	return inf, nil
}

func (f *fakeClassifier) Labels() []string { return f.labels }

// writeWAV writes interleaved 16-bit PCM samples to a WAV file in dir.
func writeWAV(t *testing.T, dir string, rate, channels int, data []int) string {
	t.Helper()
	return writeWAVDepth(t, dir, rate, channels, 16, data)
}

func writeWAVDepth(t *testing.T, dir string, rate, channels, depth int, data []int) string {
	t.Helper()
	path := filepath.Join(dir, fmt.Sprintf("in_%d_%d_%d.wav", rate, channels, depth))
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, rate, depth, channels, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: rate},
		Data:           data,
		SourceBitDepth: depth,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatalf("encode wav: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("close wav: %v", err)
	}
	return path
}

// tone returns n samples of a square wave at the given amplitude.
func tone(n, period, amplitude int) []int {
	out := make([]int, n)
	for i := range out {
		if (i/period)%2 == 0 {
			out[i] = amplitude
		} else {
			out[i] = -amplitude
		}
	}
	return out
}
