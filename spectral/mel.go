// SPDX-License-Identifier: EPL-2.0

package spectral

import "math"

// Slaney mel scale: linear below 1 kHz, logarithmic above.
const (
	melLinearStep = 200.0 / 3
	melMinLogHz   = 1000.0
	melMinLog     = melMinLogHz / melLinearStep
)

var melLogStep = math.Log(6.4) / 27.0

// HzToMel converts a frequency to the Slaney mel scale.
func HzToMel(hz float64) float64 {
	if hz < melMinLogHz {
		return hz / melLinearStep
	}
	return melMinLog + math.Log(hz/melMinLogHz)/melLogStep
}

// MelToHz is the inverse of HzToMel.
func MelToHz(mel float64) float64 {
	if mel < melMinLog {
		return mel * melLinearStep
	}
	return melMinLogHz * math.Exp(melLogStep*(mel-melMinLog))
}

// MelFilterbank builds nMels triangular filters over the nfft/2+1 FFT bins,
// spaced evenly on the mel scale between fmin and fmax and area-normalized.
// The result is indexed [mel][bin].
func MelFilterbank(sampleRate, nfft, nMels int, fmin, fmax float64) [][]float64 {
	if fmax <= 0 {
		fmax = float64(sampleRate) / 2
	}

	freqs := FrequencyBins(sampleRate, nfft)

	lo, hi := HzToMel(fmin), HzToMel(fmax)
	edges := make([]float64, nMels+2)
	for i := range edges {
		edges[i] = MelToHz(lo + (hi-lo)*float64(i)/float64(nMels+1))
	}

	fb := make([][]float64, nMels)
	for m := range nMels {
		left, center, right := edges[m], edges[m+1], edges[m+2]
		norm := 2 / (right - left)
		row := make([]float64, len(freqs))
		for k, f := range freqs {
			rising := (f - left) / (center - left)
			falling := (right - f) / (right - center)
			row[k] = max(0, min(rising, falling)) * norm
		}
		fb[m] = row
	}
	return fb
}

// ApplyFilterbank projects a [frame][bin] spectrogram onto fb, giving [frame][band].
func ApplyFilterbank(fb [][]float64, S [][]float64) [][]float64 {
	out := make([][]float64, len(S))
	for t, frame := range S {
		bands := make([]float64, len(fb))
		for m, filter := range fb {
			var sum float64
			for k, w := range filter {
				if w != 0 {
					sum += w * frame[k]
				}
			}
			bands[m] = sum
		}
		out[t] = bands
	}
	return out
}
