// SPDX-License-Identifier: EPL-2.0

package effects

import "math"

const butterworthQ = 0.707

// biquad is a direct form I second order section with a0 normalized to 1.
type biquad struct {
	b0, b1, b2, a1, a2 float64
	x1, x2, y1, y2     float64
}

func newBiquad(b0, b1, b2, a0, a1, a2 float64) *biquad {
	return &biquad{b0: b0 / a0, b1: b1 / a0, b2: b2 / a0, a1: a1 / a0, a2: a2 / a0}
}

func newLowpass(cutoff, q float64, rate int) *biquad {
	w0 := 2 * math.Pi * cutoff / float64(rate)
	alpha := math.Sin(w0) / (2 * q)
	cos := math.Cos(w0)
	return newBiquad((1-cos)/2, 1-cos, (1-cos)/2, 1+alpha, -2*cos, 1-alpha)
}

func newHighpass(cutoff, q float64, rate int) *biquad {
	w0 := 2 * math.Pi * cutoff / float64(rate)
	alpha := math.Sin(w0) / (2 * q)
	cos := math.Cos(w0)
	return newBiquad((1+cos)/2, -(1 + cos), (1+cos)/2, 1+alpha, -2*cos, 1-alpha)
}

// newLowShelf boosts or cuts below freq by gainDb; slope 1 is the steepest
// shelf without overshoot.
func newLowShelf(gainDb, freq, slope float64, rate int) *biquad {
	a := math.Pow(10, gainDb/40)
	w0 := 2 * math.Pi * freq / float64(rate)
	cos := math.Cos(w0)
	alpha := math.Sin(w0) / 2 * math.Sqrt((a+1/a)*(1/slope-1)+2)
	sq := 2 * math.Sqrt(a) * alpha

	return newBiquad(
		a*((a+1)-(a-1)*cos+sq),
		2*a*((a-1)-(a+1)*cos),
		a*((a+1)-(a-1)*cos-sq),
		(a+1)+(a-1)*cos+sq,
		-2*((a-1)+(a+1)*cos),
		(a+1)+(a-1)*cos-sq,
	)
}

func (f *biquad) Process(x []float64) {
	for i, in := range x {
		out := f.b0*in + f.b1*f.x1 + f.b2*f.x2 - f.a1*f.y1 - f.a2*f.y2
		f.x2, f.x1 = f.x1, in
		f.y2, f.y1 = f.y1, out
		x[i] = out
	}
}
