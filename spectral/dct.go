// SPDX-License-Identifier: EPL-2.0

package spectral

import "math"

// DCT returns the first n orthonormal DCT-II coefficients of x.
func DCT(x []float64, n int) []float64 {
	size := len(x)
	n = min(n, size)
	out := make([]float64, n)
	if size == 0 {
		return out
	}

	scale0 := math.Sqrt(1 / float64(size))
	scale := math.Sqrt(2 / float64(size))
	for k := range n {
		var sum float64
		for i, v := range x {
			sum += v * math.Cos(math.Pi*float64(k)*(2*float64(i)+1)/(2*float64(size)))
		}
		if k == 0 {
			out[k] = sum * scale0
		} else {
			out[k] = sum * scale
		}
	}
	return out
}

// Cepstrum applies DCT to every frame of a [frame][band] matrix.
func Cepstrum(S [][]float64, n int) [][]float64 {
	out := make([][]float64, len(S))
	for t, frame := range S {
		out[t] = DCT(frame, n)
	}
	return out
}
