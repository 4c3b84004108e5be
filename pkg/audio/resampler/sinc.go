package resampler

import (
	"fmt"

	resampling "github.com/tphakala/go-audio-resampling"
)

// int16 full scale; the filter runs on unit-range samples.
const fullScale = 32768.0

// Sinc resamples x from srcRate to dstRate with a high-quality polyphase
// filter and returns exactly num samples. The filter is drained after the
// input so the tail carries the end of the recording.
func Sinc(x []float64, srcRate, dstRate, num int) ([]float64, error) {
	if num <= 0 {
		return []float64{}, nil
	}
	if len(x) == 0 {
		return make([]float64, num), nil
	}

	r, err := resampling.New(&resampling.Config{
		InputRate:  float64(srcRate),
		OutputRate: float64(dstRate),
		Channels:   1,
		Quality:    resampling.QualitySpec{Preset: resampling.QualityHigh},
	})
	if err != nil {
		return nil, fmt.Errorf("resampler: create sinc filter: %w", err)
	}

	in := make([]float64, len(x))
	for i, s := range x {
		in[i] = s / fullScale
	}
	out, err := r.Process(in)
	if err != nil {
		return nil, fmt.Errorf("resampler: sinc process: %w", err)
	}
	tail, err := r.Flush()
	if err != nil {
		return nil, fmt.Errorf("resampler: sinc flush: %w", err)
	}
	out = append(out, tail...)
	for i := range out {
		out[i] *= fullScale
	}
	return fitLength(out, num), nil
}
