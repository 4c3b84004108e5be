package resampler

import (
	"fmt"
	"math"
)

// Method selects the resampling algorithm.
type Method string

const (
	// MethodFFT resamples in the frequency domain.
	MethodFFT Method = "fft"
	// MethodSinc uses a windowed-sinc polyphase filter.
	MethodSinc Method = "sinc"
)

// ParseMethod validates a method name. The empty string selects [MethodFFT].
func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case "", MethodFFT:
		return MethodFFT, nil
	case MethodSinc:
		return MethodSinc, nil
	default:
		return "", fmt.Errorf("resampler: unknown method %q", s)
	}
}

// TargetLength returns the number of samples n source samples occupy at
// dstRate: n / srcRate * dstRate rounded half to even.
func TargetLength(n, srcRate, dstRate int) int {
	if srcRate == dstRate {
		return n
	}
	return int(math.RoundToEven(float64(n) / float64(srcRate) * float64(dstRate)))
}

// Resample converts samples recorded at srcRate to dstRate. When the rates
// are equal the input slice is returned unchanged. MethodFFT switches to
// MethodSinc for lengths too long for its Bluestein path.
func Resample(samples []float64, srcRate, dstRate int, m Method) ([]float64, error) {
	if srcRate <= 0 || dstRate <= 0 {
		return nil, fmt.Errorf("resampler: invalid rates %d -> %d", srcRate, dstRate)
	}
	if srcRate == dstRate {
		return samples, nil
	}
	num := TargetLength(len(samples), srcRate, dstRate)
	switch m {
	case MethodFFT, "":
		if !fftFeasible(len(samples), num) {
			return Sinc(samples, srcRate, dstRate, num)
		}
		return FFT(samples, num), nil
	case MethodSinc:
		return Sinc(samples, srcRate, dstRate, num)
	default:
		return nil, fmt.Errorf("resampler: unknown method %q", m)
	}
}

// fitLength truncates or zero-pads s to exactly n samples.
func fitLength(s []float64, n int) []float64 {
	if len(s) >= n {
		return s[:n]
	}
	out := make([]float64, n)
	copy(out, s)
	return out
}
