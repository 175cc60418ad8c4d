// SPDX-License-Identifier: EPL-2.0

package stretch

import "math"

// WindowSize returns the analysis window length in samples for the given
// duration: at least 16, rounded up to a product of 2, 3 and 5 for a fast
// transform, then down to an even number.
func WindowSize(rate int, seconds float64) int {
	n := max(16, int(seconds*float64(rate)))
	for !smooth(n) {
		n++
	}
	return n / 2 * 2
}

// smooth reports whether n has no prime factors other than 2, 3 and 5.
func smooth(n int) bool {
	for _, p := range []int{2, 3, 5} {
		for n%p == 0 {
			n /= p
		}
	}
	return n < 2
}

// analysisWindow is a Hann window that reaches zero at both ends.
func analysisWindow(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n-1))
	}
	return w
}

// compensation undoes the amplitude modulation left by overlap-adding two
// squared Hann windows.
func compensation(half int) []float64 {
	h := (1 + math.Sqrt(0.5)) / 2
	out := make([]float64, half)
	for i := range out {
		out[i] = 2 * (h - (1-h)*math.Cos(2*math.Pi*float64(i)/float64(half))) / h
	}
	return out
}
