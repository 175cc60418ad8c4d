// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

func RoundInt(n float64) int { return int(math.Round(n)) }
func CeilInt(n float64) int  { return int(math.Ceil(n)) }
func FloorInt(n float64) int { return int(math.Floor(n)) }

// RoundTo rounds n to the given number of decimal places.
func RoundTo(n float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(n*p) / p
}

// RoundToNearest rounds n to the nearest multiple of nearest.
func RoundToNearest(n, nearest float64) float64 {
	return math.Round(n/nearest) * nearest
}

// MsToSamples converts a millisecond offset into a sample (frame) index at rate.
func MsToSamples(ms float64, rate int) int {
	return RoundInt(ms / 1000.0 * float64(rate))
}

// SamplesToMs converts a frame count at rate into whole milliseconds.
func SamplesToMs(samples int, rate int) int {
	if rate <= 0 {
		return 0
	}
	return RoundInt(float64(samples) / float64(rate) * 1000.0)
}
