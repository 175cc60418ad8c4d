// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidTimecode = errors.New("invalid timecode")

// TimecodeToMs parses "HH:MM:SS(.fff)" into milliseconds.
func TimecodeToMs(tc string) (int, error) {
	parts := strings.Split(strings.TrimSpace(tc), ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("%q: %w", tc, ErrInvalidTimecode)
	}

	var values [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return 0, fmt.Errorf("%q: %w", tc, errors.Join(ErrInvalidTimecode, err))
		}
		values[i] = v
	}

	seconds := values[0]*3600 + values[1]*60 + values[2]
	return RoundInt(seconds * 1000), nil
}

// FormatSeconds renders s as HH:MM:SS.
func FormatSeconds(s float64) string {
	d := time.Duration(s * float64(time.Second)).Truncate(time.Second)
	h := int(d / time.Hour)
	m := int(d%time.Hour) / int(time.Minute)
	sec := int(d%time.Minute) / int(time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", h, m, sec)
}
