// SPDX-License-Identifier: EPL-2.0

package audsampler

import (
	"context"
	"fmt"

	"github.com/ik5/audsampler/audio"
	"github.com/ik5/audsampler/formats"
)

// AnalysisRate is the rate Load targets when callers pass 0.
const AnalysisRate = 22050

// Load drains src and prepares it for analysis: mixed to mono, resampled to
// rate (AnalysisRate when rate is 0) and peak-normalized. src is not closed.
func Load(src audio.Source, rate int) (*audio.Waveform, error) {
	w, err := audio.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("loading source: %w", err)
	}
	return prepare(w, rate)
}

// LoadFile opens path by extension (see formats.Open) and prepares it like Load.
func LoadFile(ctx context.Context, path string, rate int) (*audio.Waveform, error) {
	w, err := formats.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	return prepare(w, rate)
}

func prepare(w *audio.Waveform, rate int) (*audio.Waveform, error) {
	if rate == 0 {
		rate = AnalysisRate
	}

	out, err := audio.Resample(audio.Downmix(w), rate)
	if err != nil {
		return nil, fmt.Errorf("resampling to %d Hz: %w", rate, err)
	}
	out.Normalize()
	return out, nil
}
