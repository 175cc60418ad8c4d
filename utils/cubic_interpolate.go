// SPDX-License-Identifier: EPL-2.0

package utils

// Float is the sample type accepted by the interpolation helpers.
type Float interface {
	~float32 | ~float64
}

// CubicInterpolate performs Catmull-Rom interpolation between y1 and y2.
// x is the fractional position between y1 and y2 (0 <= x <= 1);
// y0 and y3 are the neighbouring samples on each side.
func CubicInterpolate[T Float](y0, y1, y2, y3, x T) T {
	a0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	a1 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	a2 := -0.5*y0 + 0.5*y2

	return ((a0*x+a1)*x+a2)*x + y1
}

// Lerp linearly interpolates from a to b by amount.
func Lerp[T Float](a, b, amount T) T {
	return (b-a)*amount + a
}

// Lim clamps value into [lo, hi].
func Lim[T Float](value, lo, hi T) T {
	return max(lo, min(hi, value))
}

// Norm maps value from [a, b] into [0, 1]. The result is not clamped.
func Norm[T Float](value, a, b T) T {
	return (value - a) / (b - a)
}
