// SPDX-License-Identifier: EPL-2.0

package audsampler

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/ik5/audsampler/audio"
	"github.com/ik5/audsampler/feature"
	"github.com/ik5/audsampler/onset"
)

// ErrInvalidOptions indicates negative durations or worker counts.
var ErrInvalidOptions = errors.New("invalid analysis options")

// Options configure Analyze.
type Options struct {
	MinDurationMs int
	MaxDurationMs int // <= 0 disables the upper bound

	Onset   onset.Config
	Feature feature.Config

	// Vectors also computes the timbre vector of every sample.
	Vectors bool
	// Workers describing regions in parallel; 0 means GOMAXPROCS.
	Workers int
}

// DefaultOptions keeps samples of at least 50 ms, SuperFlux onsets.
func DefaultOptions() Options {
	return Options{
		MinDurationMs: 50,
		Onset:         onset.DefaultConfig(),
		Feature:       feature.DefaultConfig(),
	}
}

// Validate checks the duration filter and worker count. Onset and feature
// settings are checked when their analyzers are built.
func (o Options) Validate() error {
	if o.MinDurationMs < 0 || o.Workers < 0 {
		return fmt.Errorf("min %d ms, %d workers: %w", o.MinDurationMs, o.Workers, ErrInvalidOptions)
	}
	return nil
}

// Sample is one detected region together with its descriptors.
type Sample struct {
	Region   onset.Region
	Features feature.FeatureSet
	Vector   feature.Vector // nil unless Options.Vectors
}

// Analyze segments w at its onsets and describes every region that passes
// the duration filter. Samples are returned in order of start time.
func Analyze(w *audio.Waveform, opts Options) ([]Sample, error) {
	if w.Empty() {
		return nil, onset.ErrEmptyWaveform
	}

	log := logrus.WithFields(logrus.Fields{
		"function": "Analyze",
		"source":   w.ID,
	})

	if err := opts.Validate(); err != nil {
		log.WithField("error", err.Error()).Error("Analysis options rejected")
		return nil, err
	}

	seg, err := onset.NewSegmenter(opts.Onset)
	if err != nil {
		return nil, err
	}
	ext, err := feature.NewExtractor(opts.Feature)
	if err != nil {
		return nil, err
	}

	regions, err := seg.Segment(w, opts.MinDurationMs, opts.MaxDurationMs)
	if err != nil {
		return nil, fmt.Errorf("segmenting: %w", err)
	}

	samples := make([]Sample, len(regions))
	jobs := make(chan int)

	workers := opts.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = max(1, min(workers, len(regions)))

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				r := regions[i]
				samples[i] = Sample{
					Region:   r,
					Features: ext.Describe(w, r.StartMs, r.DurationMs),
				}
				if opts.Vectors {
					samples[i].Vector = ext.Vectorize(w, r.StartMs, r.DurationMs)
				}
			}
		}()
	}
	for i := range regions {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	log.WithFields(logrus.Fields{
		"samples": len(samples),
		"workers": workers,
	}).Debug("Analyzed waveform")

	return samples, nil
}
