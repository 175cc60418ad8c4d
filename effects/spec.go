// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Spec is one effect and its magnitude. The unit of Magnitude depends on Kind.
type Spec struct {
	Kind      Kind
	Magnitude float64
}

// Chain is applied left to right.
type Chain []Spec

func (s Spec) String() string {
	return s.Kind.String() + ":" + strconv.FormatFloat(s.Magnitude, 'g', -1, 64)
}

// Validate checks the magnitude against the kind. Cutoffs are checked
// against the Nyquist frequency only once the sample rate is known.
func (s Spec) Validate() error {
	if math.IsNaN(s.Magnitude) || math.IsInf(s.Magnitude, 0) {
		return fmt.Errorf("%s: magnitude %g: %w", s.Kind, s.Magnitude, ErrInvalidEffect)
	}

	switch s.Kind {
	case Reverb:
		if s.Magnitude < 0 || s.Magnitude > 100 {
			return fmt.Errorf("reverb: reverberance %g outside 0-100: %w", s.Magnitude, ErrInvalidEffect)
		}
	case Highpass, Lowpass:
		if s.Magnitude <= 0 {
			return fmt.Errorf("%s: cutoff %g Hz: %w", s.Kind, s.Magnitude, ErrInvalidEffect)
		}
	case Echo:
		if s.Magnitude <= 0 {
			return fmt.Errorf("echo: delay %g ms: %w", s.Magnitude, ErrInvalidEffect)
		}
	case Distortion, Bass:
	default:
		return fmt.Errorf("%s: %w", s.Kind, ErrInvalidEffect)
	}
	return nil
}

// Validate checks every spec and reports the index of the first bad one.
func (c Chain) Validate() error {
	for i, s := range c {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("effect %d: %w", i, err)
		}
	}
	return nil
}

func (c Chain) String() string {
	parts := make([]string, len(c))
	for i, s := range c {
		parts[i] = s.String()
	}
	return strings.Join(parts, ",")
}

// ParseSpec reads "kind:magnitude", e.g. "reverb:50".
func ParseSpec(text string) (Spec, error) {
	name, value, ok := strings.Cut(text, ":")
	if !ok {
		return Spec{}, fmt.Errorf("%q: expected kind:magnitude: %w", text, ErrInvalidEffect)
	}

	kind, err := ParseKind(name)
	if err != nil {
		return Spec{}, err
	}

	mag, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return Spec{}, fmt.Errorf("%q: %w: %w", text, ErrInvalidEffect, err)
	}

	s := Spec{Kind: kind, Magnitude: mag}
	if err := s.Validate(); err != nil {
		return Spec{}, err
	}
	return s, nil
}

// ParseChain reads a comma-separated list of specs. An empty string is an empty chain.
func ParseChain(text string) (Chain, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Chain{}, nil
	}

	var chain Chain
	for _, part := range strings.Split(text, ",") {
		s, err := ParseSpec(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		chain = append(chain, s)
	}
	return chain, nil
}
