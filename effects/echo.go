// SPDX-License-Identifier: EPL-2.0

package effects

import "github.com/ik5/audsampler/utils"

// echo mixes the input with one delayed copy of itself.
type echo struct {
	delay   int
	gainIn  float64
	gainOut float64
	decay   float64
	history []float64 // ring buffer of past input
	pos     int
}

func newEcho(delayMs float64, rate int, gainIn, gainOut, decay float64) *echo {
	delay := max(1, utils.MsToSamples(delayMs, rate))
	return &echo{
		delay:   delay,
		gainIn:  gainIn,
		gainOut: gainOut,
		decay:   decay,
		history: make([]float64, delay),
	}
}

func (e *echo) Process(x []float64) {
	for i, in := range x {
		delayed := e.history[e.pos]
		e.history[e.pos] = in
		e.pos++
		if e.pos == e.delay {
			e.pos = 0
		}
		x[i] = (in*e.gainIn + delayed*e.decay) * e.gainOut
	}
}
