package audioscore

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/joomcode/errorx"

	"github.com/haivivi/soundscore/pkg/audio/resampler"
)

func TestLoadMono(t *testing.T) {
	data := tone(1600, 8, 1000)
	path := writeWAV(t, t.TempDir(), 16000, 1, data)

	w, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if w.SampleRate != 16000 {
		t.Errorf("SampleRate = %d, want 16000", w.SampleRate)
	}
	if len(w.Samples) != len(data) {
		t.Fatalf("len(Samples) = %d, want %d", len(w.Samples), len(data))
	}
	for i := range data {
		if w.Samples[i] != float64(data[i]) {
			t.Fatalf("Samples[%d] = %v, want %d", i, w.Samples[i], data[i])
		}
	}
	if got, want := w.Duration(), 100*time.Millisecond; got != want {
		t.Errorf("Duration = %v, want %v", got, want)
	}
}

func TestLoadStereoDownmix(t *testing.T) {
	// Frames (L, R): (100, 300), (-200, 0), (1000, -1000).
	data := []int{100, 300, -200, 0, 1000, -1000}
	path := writeWAV(t, t.TempDir(), 8000, 2, data)

	w, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []float64{200, -100, 0}
	if !slices.Equal(w.Samples, want) {
		t.Errorf("Samples = %v, want %v", w.Samples, want)
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.wav"))
	if !errorx.IsOfType(err, IOError) {
		t.Fatalf("err = %v, want io_error", err)
	}
}

func TestLoadNotWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.wav")
	if err := os.WriteFile(path, []byte("definitely not a RIFF file"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if !errorx.IsOfType(err, FormatError) {
		t.Fatalf("err = %v, want format_error", err)
	}
}

func TestLoadUnsupportedDepth(t *testing.T) {
	path := writeWAVDepth(t, t.TempDir(), 8000, 1, 8, make([]int, 800))
	_, err := Load(path)
	if !errorx.IsOfType(err, FormatError) {
		t.Fatalf("err = %v, want format_error", err)
	}
}

func TestEnsureSampleRateIdentity(t *testing.T) {
	w := Waveform{SampleRate: 16000, Samples: []float64{1, 2, 3}}
	got, err := EnsureSampleRate(w, 16000, resampler.MethodFFT)
	if err != nil {
		t.Fatal(err)
	}
	if got.SampleRate != 16000 || !slices.Equal(got.Samples, w.Samples) {
		t.Errorf("EnsureSampleRate changed a 16 kHz waveform: %+v", got)
	}
}

func TestEnsureSampleRateDoubles8k(t *testing.T) {
	for _, m := range []resampler.Method{resampler.MethodFFT, resampler.MethodSinc} {
		t.Run(string(m), func(t *testing.T) {
			w := Waveform{SampleRate: 8000, Samples: make([]float64, 8000)}
			got, err := EnsureSampleRate(w, 16000, m)
			if err != nil {
				t.Fatal(err)
			}
			if got.SampleRate != 16000 {
				t.Errorf("SampleRate = %d, want 16000", got.SampleRate)
			}
			if len(got.Samples) != 2*len(w.Samples) {
				t.Errorf("len = %d, want %d", len(got.Samples), 2*len(w.Samples))
			}
		})
	}
}

func TestEnsureSampleRateRounds(t *testing.T) {
	w := Waveform{SampleRate: 44100, Samples: make([]float64, 1001)}
	got, err := EnsureSampleRate(w, 16000, resampler.MethodFFT)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Samples) != 363 {
		t.Errorf("len = %d, want 363", len(got.Samples))
	}
}

func TestNormalize(t *testing.T) {
	in := []float64{0, 32767, -32767, -32768, 16383.5, 40000}
	got := Normalize(in)
	want := []float32{0, 1, -1, -1, 0.5, 1}
	for i := range want {
		if d := got[i] - want[i]; d > 1e-6 || d < -1e-6 {
			t.Errorf("Normalize(%v) = %v, want %v", in[i], got[i], want[i])
		}
	}
	for i, v := range got {
		if v < -1 || v > 1 {
			t.Errorf("sample %d = %v outside [-1, 1]", i, v)
		}
	}
}

func TestChunkCount(t *testing.T) {
	tests := []struct {
		total, per, want int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{16000 * 3601, 16000 * 1800, 3},
		{10, 0, 0},
	}
	for _, tt := range tests {
		if got := ChunkCount(tt.total, tt.per); got != tt.want {
			t.Errorf("ChunkCount(%d, %d) = %d, want %d", tt.total, tt.per, got, tt.want)
		}
	}
}

func TestChunksPartition(t *testing.T) {
	samples := make([]float64, 10)
	for i := range samples {
		samples[i] = float64(i)
	}
	chunks := Chunks(samples, 3)
	if len(chunks) != 4 {
		t.Fatalf("len(chunks) = %d, want 4", len(chunks))
	}
	var joined []float64
	for i, c := range chunks {
		if i < len(chunks)-1 && len(c) != 3 {
			t.Errorf("chunk %d has %d samples, want 3", i, len(c))
		}
		joined = append(joined, c...)
	}
	if len(chunks[3]) != 1 {
		t.Errorf("last chunk has %d samples, want 1", len(chunks[3]))
	}
	if !slices.Equal(joined, samples) {
		t.Errorf("joined chunks = %v, want %v", joined, samples)
	}
}

func TestChunksEdgeCases(t *testing.T) {
	if got := Chunks(nil, 3); got != nil {
		t.Errorf("Chunks(nil) = %v, want nil", got)
	}
	if got := Chunks([]float64{1, 2}, 0); got != nil {
		t.Errorf("Chunks(per=0) = %v, want nil", got)
	}
	if got := Chunks([]float64{1, 2}, 5); len(got) != 1 || len(got[0]) != 2 {
		t.Errorf("Chunks(short) = %v, want one chunk of 2", got)
	}
}
