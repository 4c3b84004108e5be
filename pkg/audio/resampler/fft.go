package resampler

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

// maxRadix is the largest prime factor a transform length may have to go
// straight to gonum's mixed-radix FFT, whose cost grows with each factor.
// Other lengths use Bluestein's algorithm over a power-of-two transform.
const maxRadix = 31

// maxBluestein bounds the lengths transformed with Bluestein's algorithm.
// It needs three complex buffers of the next power of two at or above 2n-1.
const maxBluestein = 1 << 21

// FFT resamples x to num samples in the frequency domain.
//
// The real spectrum of x is copied into a spectrum sized for num samples.
// When the shorter of the two lengths is even its Nyquist bin is split on
// upsampling and folded on downsampling, so a real input stays real and
// keeps its energy. The inverse transform is scaled by 1/len(x), which
// preserves sample amplitudes.
func FFT(x []float64, num int) []float64 {
	nx := len(x)
	if num <= 0 {
		return []float64{}
	}
	if nx == 0 {
		return make([]float64, num)
	}
	if num == nx {
		return append([]float64(nil), x...)
	}

	xc := rfft(x)
	yc := make([]complex128, num/2+1)
	n := min(num, nx)
	nyq := n/2 + 1
	copy(yc[:nyq], xc[:nyq])
	if n%2 == 0 {
		if num < nx {
			yc[n/2] *= 2
		} else {
			yc[n/2] *= 0.5
		}
	}
	y := irfft(yc, num)
	scale := 1 / float64(nx)
	for i := range y {
		y[i] *= scale
	}
	return y
}

// fftFeasible reports whether FFT can resample nx samples to num without
// falling into a slow transform or an oversized Bluestein buffer.
func fftFeasible(nx, num int) bool {
	ok := func(n int) bool { return smooth(n) || n <= maxBluestein }
	return ok(nx) && ok(num)
}

// smooth reports whether every prime factor of n is at most maxRadix.
func smooth(n int) bool {
	return largestPrimeFactor(n) <= maxRadix
}

func largestPrimeFactor(n int) int {
	if n < 2 {
		return 1
	}
	largest := 1
	for p := 2; p*p <= n; p++ {
		for n%p == 0 {
			largest = p
			n /= p
		}
	}
	if n > 1 {
		largest = n
	}
	return largest
}

// rfft returns the n/2+1 non-negative frequency coefficients of x,
// unnormalized, like fourier.FFT.Coefficients.
func rfft(x []float64) []complex128 {
	n := len(x)
	if smooth(n) {
		return fourier.NewFFT(n).Coefficients(nil, x)
	}
	c := make([]complex128, n)
	for i, v := range x {
		c[i] = complex(v, 0)
	}
	return bluestein(c, -1)[:n/2+1]
}

// irfft returns the real sequence of length n with the given non-negative
// frequency coefficients, unnormalized, like fourier.FFT.Sequence. The
// imaginary parts of the DC and Nyquist bins are ignored.
func irfft(coeff []complex128, n int) []float64 {
	if smooth(n) {
		return fourier.NewFFT(n).Sequence(nil, coeff)
	}
	full := make([]complex128, n)
	copy(full, coeff)
	for k := 1; k < (n+1)/2; k++ {
		full[n-k] = cmplx.Conj(coeff[k])
	}
	seq := bluestein(full, 1)
	out := make([]float64, n)
	for i, v := range seq {
		out[i] = real(v)
	}
	return out
}

// bluestein computes the unnormalized DFT of x with kernel exp(sign*2πi jk/n)
// for any n, as a circular convolution with a chirp evaluated by
// power-of-two FFTs.
func bluestein(x []complex128, sign float64) []complex128 {
	n := len(x)
	m := 1
	for m < 2*n-1 {
		m <<= 1
	}

	// chirp[k] = exp(sign*πi k²/n); k² is reduced mod 2n to keep the angle
	// small.
	chirp := make([]complex128, n)
	n2 := int64(2 * n)
	for k := range chirp {
		kk := int64(k) * int64(k) % n2
		chirp[k] = cmplx.Rect(1, sign*math.Pi*float64(kk)/float64(n))
	}

	a := make([]complex128, m)
	for j, v := range x {
		a[j] = v * chirp[j]
	}
	b := make([]complex128, m)
	b[0] = cmplx.Conj(chirp[0])
	for j := 1; j < n; j++ {
		b[j] = cmplx.Conj(chirp[j])
		b[m-j] = b[j]
	}

	f := fourier.NewCmplxFFT(m)
	fa := f.Coefficients(nil, a)
	fb := f.Coefficients(a, b)
	for i := range fa {
		fa[i] *= fb[i]
	}
	conv := f.Sequence(b, fa)

	scale := complex(1/float64(m), 0)
	out := make([]complex128, n)
	for k := range out {
		out[k] = chirp[k] * conv[k] * scale
	}
	return out
}
