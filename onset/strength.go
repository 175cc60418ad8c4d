// SPDX-License-Identifier: EPL-2.0

package onset

// strength is the onset envelope of a [frame][band] dB spectrogram: the mean
// over bands of max(0, S[t] - ref[t-lag]), where ref is S max-filtered over
// maxSize frames. The flux series starts lag frames in, is left-padded with
// zeros by lag + fftSize/(2*hop) and trimmed to the frame count.
func strength(S [][]float64, lag, maxSize, fftSize, hop int) []float64 {
	frames := len(S)
	env := make([]float64, frames)
	if frames == 0 {
		return env
	}

	ref := S
	if maxSize > 1 {
		ref = maxFilter(S, maxSize)
	}

	pad := lag + fftSize/(2*hop)
	bands := float64(len(S[0]))
	for t := lag; t < frames; t++ {
		i := t - lag + pad
		if i >= frames {
			break
		}
		var sum float64
		for b, v := range S[t] {
			if d := v - ref[t-lag][b]; d > 0 {
				sum += d
			}
		}
		env[i] = sum / bands
	}
	return env
}

// maxFilter replaces each value with the maximum over a centered window of
// size frames in the same band. Frames outside the matrix are ignored.
func maxFilter(S [][]float64, size int) [][]float64 {
	frames := len(S)
	lo := size / 2
	out := make([][]float64, frames)
	for t := range frames {
		row := append([]float64(nil), S[t]...)
		for j := t - lo; j < t-lo+size; j++ {
			if j < 0 || j >= frames || j == t {
				continue
			}
			for b, v := range S[j] {
				row[b] = max(row[b], v)
			}
		}
		out[t] = row
	}
	return out
}
