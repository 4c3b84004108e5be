// Package resampler converts mono sample sequences between sample rates.
//
// Two methods are available:
//   - [MethodFFT] resamples in the frequency domain: the whole signal is
//     transformed, its spectrum truncated or zero-padded, and transformed
//     back. It is exact for band-limited periodic signals and is the default.
//     Lengths with a prime factor above 31 are transformed with Bluestein's
//     algorithm; when such a length also exceeds 2^21 samples the call is
//     served by [MethodSinc] instead.
//   - [MethodSinc] runs a windowed-sinc polyphase filter from
//     go-audio-resampling. It is far cheaper for very long inputs whose
//     length has large prime factors.
//
// Both methods return exactly [TargetLength] samples, and both are the
// identity when the source and destination rates match.
//
// Example usage:
//
//	out, err := resampler.Resample(samples, 44100, 16000, resampler.MethodFFT)
//	if err != nil {
//	    return err
//	}
package resampler
