// SPDX-License-Identifier: EPL-2.0

package onset

import "fmt"

// Region is a contiguous span of a source waveform, in milliseconds.
type Region struct {
	SourceID   string
	StartMs    int
	DurationMs int
}

// EndMs is the exclusive end of the region.
func (r Region) EndMs() int { return r.StartMs + r.DurationMs }

func (r Region) String() string {
	return fmt.Sprintf("%s[%d,%d)", r.SourceID, r.StartMs, r.EndMs())
}

// regions pairs consecutive boundaries, the first pair starting at 0, and
// keeps those that pass the duration filter.
func regions(sourceID string, boundaries []int, minMs, maxMs int) []Region {
	var out []Region
	prev := 0
	for _, t := range boundaries {
		dur := t - prev
		if dur > 0 && dur >= minMs && (maxMs <= 0 || dur <= maxMs) {
			out = append(out, Region{SourceID: sourceID, StartMs: prev, DurationMs: dur})
		}
		prev = t
	}
	return out
}
