// SPDX-License-Identifier: EPL-2.0

package effects

import "github.com/ik5/audsampler/utils"

// overdrive is a cubic soft clipper followed by a DC blocker. colour adds an
// offset before clipping, which introduces even harmonics.
type overdrive struct {
	gain    float64
	colour  float64
	lastIn  float64
	lastOut float64
}

func newOverdrive(gainDb, colour float64) *overdrive {
	return &overdrive{gain: utils.DbToGain(gainDb), colour: colour / 200}
}

func (o *overdrive) Process(x []float64) {
	for i, v := range x {
		in := v*o.gain + o.colour
		switch {
		case in < -1:
			in = -2.0 / 3
		case in > 1:
			in = 2.0 / 3
		default:
			in -= in * in * in / 3
		}

		out := in - o.lastIn + 0.995*o.lastOut
		o.lastIn, o.lastOut = in, out
		x[i] = out * 0.5
	}
}
