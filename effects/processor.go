// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"fmt"
)

// processor filters one channel in place. Implementations carry state, so
// each channel gets its own.
type processor interface {
	Process(x []float64)
}

// newProcessor translates a validated Spec into a processor for the given rate.
func newProcessor(s Spec, rate int) (processor, error) {
	nyquist := float64(rate) / 2

	switch s.Kind {
	case Reverb:
		return newReverb(s.Magnitude, rate), nil
	case Distortion:
		return newOverdrive(s.Magnitude, 20), nil
	case Highpass:
		if s.Magnitude >= nyquist {
			return nil, fmt.Errorf("highpass: cutoff %g Hz at %d Hz: %w", s.Magnitude, rate, ErrInvalidEffect)
		}
		return newHighpass(s.Magnitude, butterworthQ, rate), nil
	case Lowpass:
		if s.Magnitude >= nyquist {
			return nil, fmt.Errorf("lowpass: cutoff %g Hz at %d Hz: %w", s.Magnitude, rate, ErrInvalidEffect)
		}
		return newLowpass(s.Magnitude, butterworthQ, rate), nil
	case Bass:
		return newLowShelf(s.Magnitude, 100, 0.5, rate), nil
	case Echo:
		return newEcho(s.Magnitude, rate, 0.8, 0.9, 0.3), nil
	default:
		return nil, fmt.Errorf("%s: %w", s.Kind, ErrInvalidEffect)
	}
}

// build returns one processor per spec, in chain order.
func build(c Chain, rate int) ([]processor, error) {
	procs := make([]processor, 0, len(c))
	for i, s := range c {
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("effect %d: %w", i, err)
		}
		p, err := newProcessor(s, rate)
		if err != nil {
			return nil, fmt.Errorf("effect %d: %w", i, err)
		}
		procs = append(procs, p)
	}
	return procs, nil
}
