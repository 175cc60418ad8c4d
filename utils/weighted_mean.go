// SPDX-License-Identifier: EPL-2.0

package utils

// WeightedMean averages values with quadratically decreasing weights:
// the first of n values weighs n², the last weighs 1. Earlier values
// (the attack of a sound) dominate the result. An empty input yields 0.
func WeightedMean(values []float64) float64 {
	count := len(values)
	if count == 0 {
		return 0
	}

	var sum, weights float64
	for i, v := range values {
		w := float64(count - i)
		w *= w
		sum += v * w
		weights += w
	}
	return sum / weights
}

// Mean is the arithmetic mean; an empty input yields 0.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
