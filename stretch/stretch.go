// SPDX-License-Identifier: EPL-2.0

package stretch

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/ik5/audsampler/audio"
	"github.com/ik5/audsampler/utils"
)

// Stretch returns w lengthened by p.Factor. The result has exactly
// round(frames * max(1, Factor)) frames at the input's rate and channel count.
func Stretch(w *audio.Waveform, p Params) (*audio.Waveform, error) {
	log := logrus.WithFields(logrus.Fields{
		"function": "Stretch",
		"factor":   p.Factor,
		"window_s": p.WindowSeconds,
	})

	s, err := NewStepper(w, p)
	if err != nil {
		log.WithField("error", err.Error()).Error("Stretch rejected")
		return nil, err
	}

	target := int(math.Round(float64(w.Frames()) * max(1, p.Factor)))
	samples := make([]float32, 0, target*w.Channels)
	for len(samples) < target*w.Channels {
		hop, ok := s.Next()
		if !ok {
			break
		}
		samples = append(samples, hop...)
	}

	if short := target*w.Channels - len(samples); short > 0 {
		// onset credit can leave the last frames unplayed
		samples = append(samples, make([]float32, short)...)
	}
	samples = samples[:target*w.Channels]

	log.WithFields(logrus.Fields{
		"source":      w.ID,
		"window":      s.WindowSize(),
		"in_frames":   w.Frames(),
		"out_frames":  target,
		"input_pulls": s.Pulls(),
	}).Debug("Stretched waveform")

	return audio.NewWaveform(w.SampleRate, w.Channels, samples)
}

// StretchInt16 is Stretch quantized to interleaved 16-bit PCM.
func StretchInt16(w *audio.Waveform, p Params) ([]int16, error) {
	out, err := Stretch(w, p)
	if err != nil {
		return nil, err
	}
	return out.Int16(), nil
}

// Sound stretches w by amount with default parameters and fades out the last
// fadeOut fraction (0-1) of the result. A fadeOut of 0 disables the fade.
func Sound(w *audio.Waveform, amount, fadeOut float64) (*audio.Waveform, error) {
	out, err := Stretch(w, DefaultParams(amount))
	if err != nil {
		return nil, err
	}
	if fadeOut > 0 {
		out.FadeOut(utils.RoundInt(float64(out.DurationMs()) * min(1, fadeOut)))
	}
	return out, nil
}
