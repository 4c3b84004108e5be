package audioscore

import (
	"os"
	"time"

	"github.com/go-audio/wav"

	"github.com/haivivi/soundscore/pkg/audio/resampler"
)

// int16Max maps 16-bit PCM sample values onto [-1, 1].
const int16Max = 32767.0

// WAV format tags accepted by the loader.
const (
	wavFormatPCM        = 1
	wavFormatExtensible = 0xFFFE
)

// Waveform is a mono recording. Samples keep the 16-bit PCM scale until
// Normalize maps them to [-1, 1].
type Waveform struct {
	SampleRate int
	Samples    []float64
}

// Duration is the playing time of the waveform.
func (w Waveform) Duration() time.Duration {
	if w.SampleRate <= 0 {
		return 0
	}
	return time.Duration(float64(len(w.Samples)) / float64(w.SampleRate) * float64(time.Second))
}

// Load reads a 16-bit PCM WAV file. Multichannel audio is downmixed to mono
// by averaging channels. A missing or unreadable file is an IOError; a file
// that is not a 16-bit PCM WAV is a FormatError.
func Load(path string) (Waveform, error) {
	f, err := os.Open(path)
	if err != nil {
		return Waveform{}, IOError.Wrap(err, "open %s", path)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		if err := dec.Err(); err != nil {
			return Waveform{}, FormatError.Wrap(err, "%s is not a valid WAV file", path)
		}
		return Waveform{}, FormatError.New("%s is not a valid WAV file", path)
	}
	if dec.WavAudioFormat != wavFormatPCM && dec.WavAudioFormat != wavFormatExtensible {
		return Waveform{}, FormatError.New("%s: unsupported WAV encoding %d (want PCM)", path, dec.WavAudioFormat)
	}
	if dec.BitDepth != 16 {
		return Waveform{}, FormatError.New("%s: unsupported bit depth %d (want 16)", path, dec.BitDepth)
	}
	if dec.NumChans == 0 || dec.SampleRate == 0 {
		return Waveform{}, FormatError.New("%s: missing channel count or sample rate", path)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return Waveform{}, FormatError.Wrap(err, "decode %s", path)
	}

	return Waveform{
		SampleRate: int(dec.SampleRate),
		Samples:    downmix(buf.Data, int(dec.NumChans)),
	}, nil
}

// downmix averages interleaved channels into one. A trailing partial frame
// is dropped.
func downmix(data []int, channels int) []float64 {
	if channels <= 1 {
		out := make([]float64, len(data))
		for i, s := range data {
			out[i] = float64(s)
		}
		return out
	}
	frames := len(data) / channels
	out := make([]float64, frames)
	for i := range out {
		sum := 0
		for c := 0; c < channels; c++ {
			sum += data[i*channels+c]
		}
		out[i] = float64(sum) / float64(channels)
	}
	return out
}

// EnsureSampleRate returns w unchanged when it is already at target, and a
// resampled copy of round(len * target / rate) samples otherwise.
func EnsureSampleRate(w Waveform, target int, method resampler.Method) (Waveform, error) {
	if w.SampleRate == target {
		return w, nil
	}
	out, err := resampler.Resample(w.Samples, w.SampleRate, target, method)
	if err != nil {
		return Waveform{}, FormatError.Wrap(err, "resample %d Hz -> %d Hz", w.SampleRate, target)
	}
	return Waveform{SampleRate: target, Samples: out}, nil
}

// Normalize divides PCM-scale samples by the int16 maximum and clamps the
// result to [-1, 1]; -32768 and resampling overshoot would otherwise fall
// just outside.
func Normalize(samples []float64) []float32 {
	out := make([]float32, len(samples))
	for i, s := range samples {
		v := s / int16Max
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		out[i] = float32(v)
	}
	return out
}

// SamplesPerChunk is the chunk length in samples for a duration in seconds.
func SamplesPerChunk(rate, seconds int) int {
	return rate * seconds
}

// ChunkCount is ceil(total / perChunk).
func ChunkCount(total, perChunk int) int {
	if total <= 0 || perChunk <= 0 {
		return 0
	}
	return (total + perChunk - 1) / perChunk
}

// Chunks partitions samples into consecutive, non-overlapping slices of
// perChunk samples; the last one may be shorter. The slices alias samples.
func Chunks(samples []float64, perChunk int) [][]float64 {
	n := ChunkCount(len(samples), perChunk)
	if n == 0 {
		return nil
	}
	out := make([][]float64, 0, n)
	for start := 0; start < len(samples); start += perChunk {
		end := min(start+perChunk, len(samples))
		out = append(out, samples[start:end:end])
	}
	return out
}
