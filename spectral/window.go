// SPDX-License-Identifier: EPL-2.0

package spectral

import "math"

// Hann returns a periodic Hann window of length n, the form used for STFT analysis.
func Hann(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n))
	}
	return w
}

// SymmetricHann returns a Hann window that reaches zero at both ends.
func SymmetricHann(n int) []float64 {
	w := make([]float64, n)
	if n == 1 {
		w[0] = 1
		return w
	}
	for i := range w {
		w[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n-1))
	}
	return w
}
