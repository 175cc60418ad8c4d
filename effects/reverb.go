// SPDX-License-Identifier: EPL-2.0

package effects

// Freeverb tunings in samples at 44.1 kHz.
var (
	combTuning    = [...]int{1116, 1188, 1277, 1356, 1422, 1491, 1557, 1617}
	allpassTuning = [...]int{556, 441, 341, 225}
)

const (
	reverbInputGain = 0.015
	reverbDamping   = 0.5
	allpassFeedback = 0.5
	maxRoomFeedback = 0.98
)

type comb struct {
	buf      []float64
	pos      int
	feedback float64
	damp     float64
	store    float64
}

func (c *comb) tick(in float64) float64 {
	out := c.buf[c.pos]
	c.store = out*(1-c.damp) + c.store*c.damp
	c.buf[c.pos] = in + c.store*c.feedback
	c.pos++
	if c.pos == len(c.buf) {
		c.pos = 0
	}
	return out
}

type allpass struct {
	buf []float64
	pos int
}

func (a *allpass) tick(in float64) float64 {
	delayed := a.buf[a.pos]
	out := delayed - in
	a.buf[a.pos] = in + delayed*allpassFeedback
	a.pos++
	if a.pos == len(a.buf) {
		a.pos = 0
	}
	return out
}

// reverb is a Freeverb network: parallel damped combs into series allpasses.
// The wet signal is added to the dry one.
type reverb struct {
	combs     []*comb
	allpasses []*allpass
}

// newReverb maps reverberance 0-100 onto the comb feedback.
func newReverb(reverberance float64, rate int) *reverb {
	feedback := min(maxRoomFeedback, 0.7+0.28*reverberance/100)
	scale := float64(rate) / 44100

	r := &reverb{}
	for _, n := range combTuning {
		r.combs = append(r.combs, &comb{
			buf:      make([]float64, max(1, int(float64(n)*scale))),
			feedback: feedback,
			damp:     reverbDamping,
		})
	}
	for _, n := range allpassTuning {
		r.allpasses = append(r.allpasses, &allpass{buf: make([]float64, max(1, int(float64(n)*scale)))})
	}
	return r
}

func (r *reverb) Process(x []float64) {
	for i, dry := range x {
		in := dry * reverbInputGain
		var wet float64
		for _, c := range r.combs {
			wet += c.tick(in)
		}
		for _, a := range r.allpasses {
			wet = a.tick(wet)
		}
		x[i] = dry + wet
	}
}
