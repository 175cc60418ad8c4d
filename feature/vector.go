// SPDX-License-Identifier: EPL-2.0

package feature

import (
	"fmt"
	"math"
)

// Vector is a z-normalized timbre fingerprint: MFCC means, then first and
// second derivative means.
type Vector []float64

// VectorLen is the length of vectors produced with DefaultConfig.
const VectorLen = 39

// Distance is the Euclidean distance between two vectors of equal length.
func (v Vector) Distance(other Vector) (float64, error) {
	if len(v) != len(other) {
		return 0, fmt.Errorf("%d vs %d: %w", len(v), len(other), ErrDimensionMismatch)
	}
	var sum float64
	for i := range v {
		d := v[i] - other[i]
		sum += d * d
	}
	return math.Sqrt(sum), nil
}

// Nearest returns the index of the candidate closest to query and its distance.
func Nearest(query Vector, candidates []Vector) (int, float64, error) {
	if len(candidates) == 0 {
		return -1, 0, ErrNoCandidates
	}

	best, bestDist := -1, math.Inf(1)
	for i, c := range candidates {
		d, err := query.Distance(c)
		if err != nil {
			return -1, 0, fmt.Errorf("candidate %d: %w", i, err)
		}
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, bestDist, nil
}

// zNormalize subtracts the mean and divides by the population standard
// deviation. A constant vector becomes all zeros.
func zNormalize(v Vector) Vector {
	n := float64(len(v))
	if n == 0 {
		return v
	}

	var mean float64
	for _, x := range v {
		mean += x
	}
	mean /= n

	var variance float64
	for _, x := range v {
		variance += (x - mean) * (x - mean)
	}
	std := math.Sqrt(variance / n)

	out := make(Vector, len(v))
	if std == 0 || !finite(std) {
		return out
	}
	for i, x := range v {
		out[i] = (x - mean) / std
	}
	return out
}

// timeMeans averages each column of a [frame][coef] matrix.
func timeMeans(S [][]float64, width int) []float64 {
	out := make([]float64, width)
	if len(S) == 0 {
		return out
	}
	for _, frame := range S {
		for c, v := range frame {
			out[c] += v
		}
	}
	for c := range out {
		out[c] /= float64(len(S))
	}
	return out
}
