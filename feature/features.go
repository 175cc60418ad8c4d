// SPDX-License-Identifier: EPL-2.0

package feature

import (
	"math"

	"github.com/ik5/audsampler/utils"
)

// FeatureSet describes one region. See the package documentation for the
// sentinel values.
type FeatureSet struct {
	Power      float64 // weighted RMS of the magnitude spectrum, 2 decimals
	DominantHz float64 // weighted spectral rolloff, 2 decimals
	Flatness   float64 // weighted spectral flatness in [0,1], 5 decimals
	PitchClass string
	Octave     int
}

const (
	undefined     = -1
	undefinedNote = "-"
)

// HasPower reports whether Power holds a measurement rather than the sentinel.
func (f FeatureSet) HasPower() bool { return f.Power != undefined }

// HasPitch reports whether DominantHz, PitchClass and Octave are defined.
func (f FeatureSet) HasPitch() bool { return f.PitchClass != undefinedNote }

func silentFeatures() FeatureSet {
	return FeatureSet{
		Power:      undefined,
		DominantHz: undefined,
		PitchClass: undefinedNote,
		Octave:     undefined,
	}
}

// rms is sqrt(mean(|S|²)) per frame of a magnitude spectrogram.
func rms(S [][]float64) []float64 {
	out := make([]float64, len(S))
	for t, frame := range S {
		var sum float64
		for _, v := range frame {
			sum += v * v
		}
		out[t] = math.Sqrt(sum / float64(len(frame)))
	}
	return out
}

// rolloff is, per frame, the lowest bin frequency at which the cumulative
// magnitude reaches percent of the frame total. A silent frame gives 0.
func rolloff(S [][]float64, freqs []float64, percent float64) []float64 {
	out := make([]float64, len(S))
	for t, frame := range S {
		var total float64
		for _, v := range frame {
			total += v
		}
		threshold := percent * total

		var cum float64
		for k, v := range frame {
			cum += v
			if cum >= threshold {
				out[t] = freqs[k]
				break
			}
		}
	}
	return out
}

// flatness is the ratio of geometric to arithmetic mean of the power
// spectrum per frame, with power floored at 1e-10.
func flatness(S [][]float64) []float64 {
	const amin = 1e-10

	out := make([]float64, len(S))
	for t, frame := range S {
		var logSum, sum float64
		for _, v := range frame {
			p := max(amin, v*v)
			logSum += math.Log(p)
			sum += p
		}
		n := float64(len(frame))
		out[t] = math.Exp(logSum/n) / (sum / n)
	}
	return out
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func weighted(series []float64, places int) float64 {
	return utils.RoundTo(utils.WeightedMean(series), places)
}
