// SPDX-License-Identifier: EPL-2.0

package onset

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/ik5/audsampler/audio"
	"github.com/ik5/audsampler/spectral"
)

// Segmenter detects onsets with a fixed configuration.
type Segmenter struct {
	cfg        Config
	filterbank [][]float64
}

// NewSegmenter validates cfg and precomputes the mel filterbank.
func NewSegmenter(cfg Config) (*Segmenter, error) {
	if err := cfg.Validate(); err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "NewSegmenter",
			"error":    err.Error(),
		}).Error("Onset configuration rejected")
		return nil, err
	}

	return &Segmenter{
		cfg:        cfg,
		filterbank: spectral.MelFilterbank(cfg.SampleRate, cfg.FFTSize, cfg.Mels, cfg.FMin, cfg.FMax),
	}, nil
}

// Config returns the configuration the segmenter was built with.
func (s *Segmenter) Config() Config { return s.cfg }

// Segment is a one-shot NewSegmenter(cfg).Segment(w, minDurationMs, maxDurationMs).
func Segment(w *audio.Waveform, minDurationMs, maxDurationMs int, cfg Config) ([]Region, error) {
	s, err := NewSegmenter(cfg)
	if err != nil {
		return nil, err
	}
	return s.Segment(w, minDurationMs, maxDurationMs)
}

// Segment splits w into onset-bounded regions, ordered by start. Regions
// whose duration is below minDurationMs, or above maxDurationMs when that is
// positive, are left out.
func (s *Segmenter) Segment(w *audio.Waveform, minDurationMs, maxDurationMs int) ([]Region, error) {
	boundaries, err := s.Boundaries(w)
	if err != nil {
		return nil, err
	}

	out := regions(w.ID, boundaries, minDurationMs, maxDurationMs)

	logrus.WithFields(logrus.Fields{
		"function":   "Segment",
		"source":     w.ID,
		"boundaries": len(boundaries),
		"regions":    len(out),
		"min_ms":     minDurationMs,
		"max_ms":     maxDurationMs,
	}).Debug("Segmented waveform")

	return out, nil
}

// Boundaries returns the strictly increasing onset timestamps of w in
// milliseconds, followed by the final timestamp duration-1.
func (s *Segmenter) Boundaries(w *audio.Waveform) ([]int, error) {
	mono, err := s.prepare(w)
	if err != nil {
		return nil, err
	}

	duration := int(math.RoundToEven(float64(len(mono)) / float64(s.cfg.SampleRate) * 1000))
	last := duration - 1

	var out []int
	for _, frame := range s.Onsets(mono) {
		ms := int(math.RoundToEven(float64(frame*s.cfg.HopLength) / float64(s.cfg.SampleRate) * 1000))
		if ms >= last {
			break
		}
		if len(out) > 0 && ms <= out[len(out)-1] {
			continue
		}
		out = append(out, ms)
	}

	if len(out) == 0 {
		logrus.WithFields(logrus.Fields{
			"function": "Boundaries",
			"source":   w.ID,
		}).Debug("No onsets detected")
	}

	return append(out, last), nil
}

// Onsets returns onset frame indices of a mono signal already at the
// analysis rate.
func (s *Segmenter) Onsets(mono []float64) []int {
	env := s.Strength(mono)
	if !normalize(env) {
		return nil
	}

	c := s.cfg
	peaks := pickPeaks(env,
		c.frames(c.PreMax), c.frames(c.PostMax)+1,
		c.frames(c.PreAvg), c.frames(c.PostAvg)+1,
		c.frames(c.Wait), c.Delta)

	if c.Backtrack {
		peaks = backtrack(peaks, env)
	}
	return peaks
}

// Strength returns the onset strength envelope of a mono signal already at
// the analysis rate, one value per STFT frame.
func (s *Segmenter) Strength(mono []float64) []float64 {
	c := s.cfg
	power := spectral.Power(mono, c.FFTSize, c.HopLength)
	mel := spectral.ApplyFilterbank(s.filterbank, power)
	db := spectral.PowerToDb(mel, 1e-10, 80)
	return strength(db, c.Lag, c.MaxSize, c.FFTSize, c.HopLength)
}

// prepare mixes w to mono at the analysis rate and peak-normalizes it.
func (s *Segmenter) prepare(w *audio.Waveform) ([]float64, error) {
	if w.Empty() {
		return nil, ErrEmptyWaveform
	}

	m := audio.Downmix(w)
	if m.SampleRate != s.cfg.SampleRate {
		var err error
		m, err = audio.Resample(m, s.cfg.SampleRate)
		if err != nil {
			return nil, fmt.Errorf("resampling for onset analysis: %w", err)
		}
	}
	m.Normalize()

	if m.Empty() {
		return nil, ErrEmptyWaveform
	}
	return m.Mono(), nil
}
