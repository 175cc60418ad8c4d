// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"github.com/ik5/audsampler/utils"
)

// Resample converts w to dstRate using cubic interpolation, preserving the
// channel count. When downsampling a one-pole low-pass runs ahead of the
// interpolator as a simple anti-aliasing stage. The input is not modified;
// a buffer already at dstRate is returned as a clone.
func Resample(w *Waveform, dstRate int) (*Waveform, error) {
	if dstRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if w.SampleRate == dstRate {
		return w.Clone(), nil
	}

	// how many source frames per output frame
	ratio := float64(w.SampleRate) / float64(dstRate)
	channels := w.Channels
	srcFrames := w.Frames()

	out := &Waveform{
		ID:         w.ID,
		SampleRate: dstRate,
		Channels:   channels,
	}
	if srcFrames == 0 {
		out.Samples = []float32{}
		return out, nil
	}

	src := w.Samples
	if ratio > 1.0 {
		src = lowPass(w.Samples, channels, 0.5)
	}

	dstFrames := int(float64(srcFrames) / ratio)
	out.Samples = make([]float32, dstFrames*channels)

	// edge frames are duplicated so every position has four neighbours
	at := func(frame, c int) float32 {
		frame = max(0, min(srcFrames-1, frame))
		return src[frame*channels+c]
	}

	for i := range dstFrames {
		pos := float64(i) * ratio
		base := int(pos)
		alpha := float32(pos - float64(base))

		for c := range channels {
			out.Samples[i*channels+c] = utils.CubicInterpolate(
				at(base-1, c), at(base, c), at(base+1, c), at(base+2, c), alpha)
		}
	}

	return out, nil
}

// lowPass runs y[n] = alpha*x[n] + (1-alpha)*y[n-1] per channel. The filter
// state starts at the first frame to avoid a warm-up transient.
func lowPass(samples []float32, channels int, alpha float32) []float32 {
	out := make([]float32, len(samples))
	if len(samples) < channels {
		return out
	}

	state := make([]float32, channels)
	copy(state, samples[:channels])

	for i, x := range samples {
		c := i % channels
		state[c] = alpha*x + (1-alpha)*state[c]
		out[i] = state[c]
	}
	return out
}
