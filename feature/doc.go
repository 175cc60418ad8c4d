// SPDX-License-Identifier: EPL-2.0

// Package feature computes descriptors of a region of a waveform.
//
// Describe returns a FeatureSet: loudness (RMS power), a dominant frequency
// taken from the spectral rolloff with its pitch class and octave, and
// spectral flatness. Each per-frame series is reduced with utils.WeightedMean,
// so the attack of a sound counts more than its tail.
//
// Vectorize returns a 39-dimensional timbre fingerprint: the time means of 13
// MFCCs and their first and second derivatives, z-normalized. Vectors are
// compared with Distance or ranked with Nearest.
//
//	ex, _ := feature.NewExtractor(feature.DefaultConfig())
//	fs := ex.Describe(w, 500, 1300)
//	v := ex.Vectorize(w, 500, 1300)
//
// # Undefined Values
//
// A silent region has no power and no pitch. Instead of NaN these fields hold
// sentinels: Power, DominantHz and Octave are -1 and PitchClass is "-".
// HasPower and HasPitch test for them.
//
// Sub-ranges outside the buffer are clamped, never rejected.
package feature
