// SPDX-License-Identifier: EPL-2.0

package spectral

import "math"

// PowerToDb converts a power spectrogram to decibels relative to its maximum.
// Values are floored at amin before the log and, when topDb > 0, at
// max(dB) - topDb afterwards. A fresh matrix is returned.
func PowerToDb(S [][]float64, amin, topDb float64) [][]float64 {
	return toDb(S, 10, amin, topDb)
}

// AmplitudeToDb is PowerToDb for magnitudes: 20·log10 instead of 10·log10.
func AmplitudeToDb(S [][]float64, amin, topDb float64) [][]float64 {
	return toDb(S, 20, amin, topDb)
}

func toDb(S [][]float64, scale, amin, topDb float64) [][]float64 {
	ref := amin
	for _, row := range S {
		for _, v := range row {
			ref = max(ref, v)
		}
	}
	refDb := scale * math.Log10(ref)

	peak := math.Inf(-1)
	out := make([][]float64, len(S))
	for t, row := range S {
		dbRow := make([]float64, len(row))
		for k, v := range row {
			dbRow[k] = scale*math.Log10(max(amin, v)) - refDb
			peak = max(peak, dbRow[k])
		}
		out[t] = dbRow
	}

	if topDb > 0 {
		floor := peak - topDb
		for _, row := range out {
			for k, v := range row {
				row[k] = max(v, floor)
			}
		}
	}
	return out
}
