// SPDX-License-Identifier: EPL-2.0

package stretch

import (
	"fmt"
	"math"
)

// MaxFactor bounds Params.Factor. The output is allocated up front, so the
// factor caps its size at MaxFactor times the input.
const MaxFactor = 10_000

// Params configure a stretch.
type Params struct {
	// Factor is the length multiplier, at most MaxFactor. Factors below 1
	// are treated as 1.
	Factor float64
	// WindowSeconds is the analysis window length.
	WindowSeconds float64
	// OnsetSensitivity is the threshold on the onset measure, which lies in [0, 1].
	OnsetSensitivity float64
	// Seed for phase randomization; 0 means random.
	Seed uint64
}

// DefaultParams returns a 0.25 s window with onset handling effectively off.
func DefaultParams(factor float64) Params {
	return Params{
		Factor:           factor,
		WindowSeconds:    0.25,
		OnsetSensitivity: 10,
	}
}

// Validate reports which parameter is out of range.
func (p Params) Validate() error {
	if !(p.Factor > 0) || p.Factor > MaxFactor {
		return fmt.Errorf("factor %g: %w", p.Factor, ErrInvalidFactor)
	}
	if !(p.WindowSeconds > 0) || math.IsInf(p.WindowSeconds, 0) {
		return fmt.Errorf("window %g s: %w", p.WindowSeconds, ErrInvalidWindow)
	}
	if math.IsNaN(p.OnsetSensitivity) {
		return ErrInvalidSensitivity
	}
	return nil
}

// increment is how far the blend position moves per output frame.
func (p Params) increment() float64 {
	return min(1, 1/p.Factor)
}
