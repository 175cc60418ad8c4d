// SPDX-License-Identifier: EPL-2.0

package feature

import (
	"fmt"
	"math"
)

var pitchClasses = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// HzToMidi converts a frequency to a fractional MIDI note number (A4 = 440 Hz = 69).
func HzToMidi(hz float64) float64 {
	return 12*math.Log2(hz/440) + 69
}

// HzToNote returns the pitch class and octave of the equal-tempered note
// nearest to hz. Ties round to the even MIDI number. Non-positive and
// non-finite frequencies return ErrNoNote.
func HzToNote(hz float64) (string, int, error) {
	if hz <= 0 || math.IsNaN(hz) || math.IsInf(hz, 0) {
		return "", 0, fmt.Errorf("%g Hz: %w", hz, ErrNoNote)
	}

	midi := math.RoundToEven(HzToMidi(hz))
	if math.IsInf(midi, 0) || math.Abs(midi) > math.MaxInt32 {
		return "", 0, fmt.Errorf("%g Hz: %w", hz, ErrNoNote)
	}

	n := int(midi)
	class := ((n % 12) + 12) % 12
	octave := floorDiv(n, 12) - 1
	return pitchClasses[class], octave, nil
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
