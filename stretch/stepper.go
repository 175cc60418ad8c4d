// SPDX-License-Identifier: EPL-2.0

package stretch

import (
	"math"
	"math/rand/v2"

	"github.com/ik5/audsampler/audio"
	"github.com/ik5/audsampler/spectral"
	"github.com/ik5/audsampler/utils"
)

const coarseBins = 32

// Stepper produces a stretched signal one hop at a time.
type Stepper struct {
	params   Params
	channels int
	frames   int
	input    [][]float64 // planar, end faded

	size   int
	half   int
	window []float64
	hinv   []float64
	fft    *spectral.FFT
	rng    *rand.Rand

	freqs     [][]float64
	oldFreqs  [][]float64
	scaled    []float64
	oldScaled []float64
	prev      [][]float64 // previous windowed output frame

	cursor float64
	tick   float64
	inc    float64
	credit float64
	onset  float64
	pull   bool
	pulls  int
	done   bool

	// scratch
	buf   []float64
	coeff []complex128
}

// NewStepper prepares a stretch of w. The waveform is copied; w is not modified.
func NewStepper(w *audio.Waveform, p Params) (*Stepper, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if w == nil || w.Channels <= 0 || w.SampleRate <= 0 {
		return nil, audio.ErrInvalidChannels
	}

	size := WindowSize(w.SampleRate, p.WindowSeconds)
	half := size / 2

	seed := p.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	s := &Stepper{
		params:    p,
		channels:  w.Channels,
		frames:    w.Frames(),
		input:     w.Planar(),
		size:      size,
		half:      half,
		window:    analysisWindow(size),
		hinv:      compensation(half),
		fft:       spectral.NewFFT(size),
		rng:       rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		scaled:    make([]float64, coarseBins),
		oldScaled: make([]float64, coarseBins),
		inc:       p.increment(),
		pull:      true,
		buf:       make([]float64, size),
		coeff:     make([]complex128, half+1),
	}

	s.freqs = make([][]float64, s.channels)
	s.oldFreqs = make([][]float64, s.channels)
	s.prev = make([][]float64, s.channels)
	for c := range s.channels {
		s.freqs[c] = make([]float64, half+1)
		s.oldFreqs[c] = make([]float64, half+1)
		s.prev[c] = make([]float64, size)
	}

	s.fadeEnd(max(16, int(0.05*float64(w.SampleRate))))
	return s, nil
}

// WindowSize is the analysis window length in samples; each Next returns half of it per channel.
func (s *Stepper) WindowSize() int { return s.size }

// Tick is the blend position between the previous and the current input
// frame for the next output frame, in [0, 1).
func (s *Stepper) Tick() float64 { return s.tick }

// Credit is the time owed for onsets that were skipped ahead.
func (s *Stepper) Credit() float64 { return s.credit }

// Onset is the onset measure of the most recently pulled input frame.
func (s *Stepper) Onset() float64 { return s.onset }

// Pulls counts the input frames consumed so far.
func (s *Stepper) Pulls() int { return s.pulls }

// Next returns the next hop of interleaved output. It reports false once
// every input frame has been played for its full share.
func (s *Stepper) Next() ([]float32, bool) {
	if s.done {
		return nil, false
	}

	if s.pull {
		if s.cursor >= float64(s.frames) {
			s.done = true
			return nil, false
		}
		s.pullFrame()
	}

	out := s.synthesize()
	s.advance()
	return out, true
}

// fadeEnd ramps the last n input samples linearly down to zero.
func (s *Stepper) fadeEnd(n int) {
	n = min(n, s.frames)
	start := s.frames - n
	for _, ch := range s.input {
		for i := range n {
			gain := 1.0
			if n > 1 {
				gain = 1 - float64(i)/float64(n-1)
			}
			ch[start+i] *= gain
		}
	}
}

// pullFrame reads the input frame at the cursor, computes its magnitude
// spectrum and checks it for an onset.
func (s *Stepper) pullFrame() {
	s.freqs, s.oldFreqs = s.oldFreqs, s.freqs
	s.scaled, s.oldScaled = s.oldScaled, s.scaled

	start := int(math.Floor(s.cursor))
	for c, ch := range s.input {
		for i := range s.size {
			v := 0.0
			if start+i < s.frames {
				v = ch[start+i]
			}
			s.buf[i] = v * s.window[i]
		}
		s.fft.Magnitude(s.freqs[c], s.buf)
	}

	s.coarse()

	var diff, old float64
	for k := range coarseBins {
		diff += s.scaled[k] - s.oldScaled[k]
		old += math.Abs(s.oldScaled[k])
	}
	m := 2 * (diff / coarseBins) / (old/coarseBins + 1e-3)
	s.onset = utils.Lim(m, 0, 1)

	if s.onset > s.params.OnsetSensitivity {
		s.tick = 1
		s.credit++
	}

	s.cursor += float64(s.half)
	s.pulls++
	s.pull = false
}

// coarse averages the channel-mean spectrum into coarseBins groups. Windows
// too small to fill every group leave the coarse spectrum at zero.
func (s *Stepper) coarse() {
	bins := s.half + 1
	clear(s.scaled)
	if coarseBins >= bins {
		return
	}

	div := bins / coarseBins
	for k := range coarseBins {
		var sum float64
		for j := k * div; j < (k+1)*div; j++ {
			for c := range s.channels {
				sum += s.freqs[c][j]
			}
		}
		s.scaled[k] = sum / float64(div*s.channels)
	}
}

// synthesize builds one output hop from the blended spectra.
func (s *Stepper) synthesize() []float32 {
	out := make([]float32, s.half*s.channels)
	nyquist := s.size / 2

	for c := range s.channels {
		for k := range s.coeff {
			mag := s.freqs[c][k]*s.tick + s.oldFreqs[c][k]*(1-s.tick)
			phase := s.rng.Float64() * 2 * math.Pi
			if k == 0 || k == nyquist {
				s.coeff[k] = complex(mag*math.Cos(phase), 0)
				continue
			}
			s.coeff[k] = spectral.Polar(mag, phase)
		}

		s.fft.Inverse(s.buf, s.coeff)

		prev := s.prev[c]
		for i := range s.half {
			v := s.buf[i]*s.window[i] + prev[s.half+i]
			v *= s.hinv[i]
			out[i*s.channels+c] = float32(utils.Lim(v, -1, 1))
		}
		for i := range s.size {
			prev[i] = s.buf[i] * s.window[i]
		}
	}
	return out
}

// advance moves the blend position and schedules a pull when it wraps.
// While onset credit is owed the position moves at half speed.
func (s *Stepper) advance() {
	if s.credit <= 0 {
		s.tick += s.inc
	} else {
		get := 0.5 * s.inc
		s.credit = max(0, s.credit-get)
		s.tick += s.inc - get
	}

	if s.tick >= 1 {
		s.tick = math.Mod(s.tick, 1)
		s.pull = true
	}
}
