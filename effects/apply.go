// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/ik5/audsampler/audio"
)

// Options control the framing around the effect chain.
type Options struct {
	PadMs     int // silence appended before processing
	FadeInMs  int
	FadeOutMs int
}

// DefaultOptions pads by 3 s and fades 100 ms at each end.
func DefaultOptions() Options {
	return Options{PadMs: 3000, FadeInMs: 100, FadeOutMs: 100}
}

// Validate rejects negative padding or fade lengths with ErrInvalidOptions.
func (o Options) Validate() error {
	if o.PadMs < 0 || o.FadeInMs < 0 || o.FadeOutMs < 0 {
		return fmt.Errorf("pad %d, fade in %d, fade out %d: %w", o.PadMs, o.FadeInMs, o.FadeOutMs, ErrInvalidOptions)
	}
	return nil
}

// Apply runs chain over a padded copy of w and returns the result. The
// output is PadMs longer than w, hard-clipped to [-1, 1] and faded at both
// ends. An invalid chain or options fail before any processing.
func Apply(w *audio.Waveform, chain Chain, opts Options) (*audio.Waveform, error) {
	log := logrus.WithFields(logrus.Fields{
		"function": "Apply",
		"chain":    chain.String(),
	})

	if err := opts.Validate(); err != nil {
		log.WithField("error", err.Error()).Error("Effect options rejected")
		return nil, err
	}
	if w == nil || w.Channels <= 0 || w.SampleRate <= 0 {
		return nil, fmt.Errorf("no waveform: %w", ErrInvalidEffect)
	}
	if _, err := build(chain, w.SampleRate); err != nil {
		log.WithField("error", err.Error()).Error("Effect chain rejected")
		return nil, err
	}

	out := w.Pad(opts.PadMs)
	planar := out.Planar()

	clipped := 0
	for c, ch := range planar {
		// validated above
		procs, _ := build(chain, w.SampleRate)
		for _, p := range procs {
			p.Process(ch)
		}
		for i, v := range ch {
			switch {
			case v > 1:
				v = 1
				clipped++
			case v < -1:
				v = -1
				clipped++
			}
			out.Samples[i*out.Channels+c] = float32(v)
		}
	}

	if clipped > 0 {
		log.WithField("clipped", clipped).Warn("Effect output clipped")
	}

	out.FadeIn(opts.FadeInMs)
	out.FadeOut(opts.FadeOutMs)

	log.WithFields(logrus.Fields{
		"source":   w.ID,
		"frames":   out.Frames(),
		"channels": out.Channels,
	}).Debug("Applied effects")

	return out, nil
}
