// SPDX-License-Identifier: EPL-2.0

package spectral

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

// FFT is a real-input transform of a fixed length.
type FFT struct {
	n     int
	fft   *fourier.FFT
	coeff []complex128
}

// NewFFT prepares a transform of length n.
func NewFFT(n int) *FFT {
	return &FFT{
		n:     n,
		fft:   fourier.NewFFT(n),
		coeff: make([]complex128, n/2+1),
	}
}

// Len is the transform length.
func (f *FFT) Len() int { return f.n }

// Bins is the number of non-redundant coefficients, n/2+1.
func (f *FFT) Bins() int { return f.n/2 + 1 }

// Forward transforms seq (length n) into dst, allocating when dst is nil.
func (f *FFT) Forward(dst []complex128, seq []float64) []complex128 {
	return f.fft.Coefficients(dst, seq)
}

// Inverse transforms coeff back into a real sequence of length n, scaled by 1/n.
func (f *FFT) Inverse(dst []float64, coeff []complex128) []float64 {
	dst = f.fft.Sequence(dst, coeff)
	inv := 1 / float64(f.n)
	for i := range dst {
		dst[i] *= inv
	}
	return dst
}

// Magnitude writes |X[k]| of seq into dst, allocating when dst is nil.
func (f *FFT) Magnitude(dst, seq []float64) []float64 {
	if dst == nil {
		dst = make([]float64, f.Bins())
	}
	f.coeff = f.fft.Coefficients(f.coeff, seq)
	for k, c := range f.coeff {
		dst[k] = cmplx.Abs(c)
	}
	return dst
}

// FrequencyBins returns the center frequency of each bin for a transform of
// length n at sampleRate.
func FrequencyBins(sampleRate, n int) []float64 {
	bins := make([]float64, n/2+1)
	step := float64(sampleRate) / float64(n)
	for k := range bins {
		bins[k] = float64(k) * step
	}
	return bins
}

// Polar builds a coefficient from magnitude and phase.
func Polar(mag, phase float64) complex128 {
	return complex(mag*math.Cos(phase), mag*math.Sin(phase))
}
