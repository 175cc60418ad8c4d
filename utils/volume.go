// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// VolumeToDb converts a linear gain multiplier into a mixing level in dB.
// A volume of exactly 1 is 0 dB. The result is undefined for volume <= 0
// (-Inf or NaN); callers must guard.
func VolumeToDb(volume float64) float64 {
	if volume == 1.0 {
		return 0.0
	}
	return 10.0 * math.Log10(volume*volume)
}

// DbToGain is the inverse of VolumeToDb.
func DbToGain(db float64) float64 {
	return math.Pow(10, db/20.0)
}
