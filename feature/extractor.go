// SPDX-License-Identifier: EPL-2.0

package feature

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/ik5/audsampler/audio"
	"github.com/ik5/audsampler/spectral"
	"github.com/ik5/audsampler/utils"
)

// Extractor computes features with a fixed configuration. It caches mel
// filterbanks per sample rate and is safe for concurrent use.
type Extractor struct {
	cfg Config

	mu          sync.Mutex
	filterbanks map[int][][]float64
}

// NewExtractor validates cfg.
func NewExtractor(cfg Config) (*Extractor, error) {
	if err := cfg.Validate(); err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "NewExtractor",
			"error":    err.Error(),
		}).Error("Feature configuration rejected")
		return nil, err
	}
	return &Extractor{cfg: cfg, filterbanks: make(map[int][][]float64)}, nil
}

var defaultExtractor, _ = NewExtractor(DefaultConfig())

// Describe computes the FeatureSet of [startMs, startMs+durationMs) of w with DefaultConfig.
func Describe(w *audio.Waveform, startMs, durationMs int) FeatureSet {
	return defaultExtractor.Describe(w, startMs, durationMs)
}

// Vectorize computes the feature vector of [startMs, startMs+durationMs) of w with DefaultConfig.
func Vectorize(w *audio.Waveform, startMs, durationMs int) Vector {
	return defaultExtractor.Vectorize(w, startMs, durationMs)
}

func (e *Extractor) Config() Config { return e.cfg }

// Describe computes the FeatureSet of a region. The range is clamped to the
// buffer; an empty or silent region yields the sentinel values.
func (e *Extractor) Describe(w *audio.Waveform, startMs, durationMs int) FeatureSet {
	y := e.region(w, startMs, durationMs)
	S := spectral.Magnitude(y, e.cfg.FFTSize, e.cfg.HopLength)
	if len(S) == 0 {
		return silentFeatures()
	}

	fs := FeatureSet{
		Power:      undefined,
		DominantHz: weighted(rolloff(S, spectral.FrequencyBins(w.SampleRate, e.cfg.FFTSize), e.cfg.RolloffPercent), 2),
		Flatness:   weighted(flatness(S), 5),
		Octave:     undefined,
		PitchClass: undefinedNote,
	}
	if power := utils.WeightedMean(rms(S)); finite(power) && power > 0 {
		fs.Power = utils.RoundTo(power, 2)
	}

	log := logrus.WithFields(logrus.Fields{
		"function": "Describe",
		"source":   w.ID,
		"start_ms": startMs,
		"dur_ms":   durationMs,
	})

	if !finite(fs.Flatness) {
		fs.Flatness = 0
	}

	class, octave, err := HzToNote(fs.DominantHz)
	if err != nil {
		if fs.HasPower() {
			log.WithField("hz", fs.DominantHz).Warn("Dominant frequency has no note")
		}
		fs.DominantHz = undefined
	} else {
		fs.PitchClass, fs.Octave = class, octave
	}

	if !fs.HasPower() {
		log.Debug("Region is silent")
	}
	return fs
}

// Vectorize computes the timbre vector of a region, looking at no more than
// Config.VectorMaxMs of it. An empty region yields a zero vector.
func (e *Extractor) Vectorize(w *audio.Waveform, startMs, durationMs int) Vector {
	c := e.cfg
	width := 3 * c.MFCC

	y := e.region(w, startMs, min(durationMs, c.VectorMaxMs))
	power := spectral.Power(y, c.FFTSize, c.HopLength)
	if len(power) == 0 {
		return make(Vector, width)
	}

	mel := spectral.ApplyFilterbank(e.filterbank(w.SampleRate), power)
	db := spectral.AmplitudeToDb(mel, 1e-5, 80)
	mfcc := spectral.Cepstrum(db, c.MFCC)

	// width and order are validated with the config
	d1, _ := spectral.Delta(mfcc, c.DeltaWidth, 1)
	d2, _ := spectral.Delta(mfcc, c.DeltaWidth, 2)

	v := make(Vector, 0, width)
	v = append(v, timeMeans(mfcc, c.MFCC)...)
	v = append(v, timeMeans(d1, c.MFCC)...)
	v = append(v, timeMeans(d2, c.MFCC)...)

	return zNormalize(v)
}

func (e *Extractor) region(w *audio.Waveform, startMs, durationMs int) []float64 {
	if w.Empty() {
		return nil
	}
	return w.Slice(float64(startMs), float64(durationMs)).Mono()
}

func (e *Extractor) filterbank(rate int) [][]float64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	fb, ok := e.filterbanks[rate]
	if !ok {
		fb = spectral.MelFilterbank(rate, e.cfg.FFTSize, e.cfg.Mels, 0, 0)
		e.filterbanks[rate] = fb
	}
	return fb
}
