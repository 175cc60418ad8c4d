// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"fmt"
	"strings"
)

// Kind selects an effect.
type Kind int

const (
	Reverb Kind = iota + 1
	Distortion
	Highpass
	Lowpass
	Bass
	Echo
)

var kindNames = map[Kind]string{
	Reverb:     "reverb",
	Distortion: "distortion",
	Highpass:   "highpass",
	Lowpass:    "lowpass",
	Bass:       "bass",
	Echo:       "echo",
}

// Kinds lists every supported effect in declaration order.
func Kinds() []Kind {
	return []Kind{Reverb, Distortion, Highpass, Lowpass, Bass, Echo}
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind looks up a kind by its case-insensitive name.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown effect %q: %w", name, ErrInvalidEffect)
}
