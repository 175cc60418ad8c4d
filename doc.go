// SPDX-License-Identifier: EPL-2.0

// Package audsampler turns recordings into sample libraries: it cuts audio
// at its onsets, describes every cut, and resynthesizes sounds with effects
// and extreme time-stretching.
//
// This package holds the convenience pipeline. The work happens in the
// subpackages:
//   - onset: SuperFlux onset detection and segmentation into regions
//   - feature: power, rolloff pitch, flatness and MFCC timbre vectors
//   - effects: reverb, overdrive, filters, bass shelf and echo chains
//   - stretch: Paulstretch time-stretching
//   - formats: wav, mp3, ogg and aiff decoding, ffmpeg for everything else
//   - audio, spectral, utils: buffers and DSP building blocks
//
// # Quick Start
//
// Load a file as mono at the analysis rate, then segment and describe it:
//
//	w, err := audsampler.LoadFile(ctx, "field-recording.mp4", 0)
//	if err != nil {
//	    // Handle error
//	}
//
//	samples, err := audsampler.Analyze(w, audsampler.DefaultOptions())
//	for _, s := range samples {
//	    fmt.Println(s.Region, s.Features.Power, s.Features.PitchClass)
//	}
//
// # Options
//
// Options bounds region durations (MinDurationMs, MaxDurationMs), carries the
// onset and feature configurations, and optionally requests timbre vectors
// for nearest-neighbour search:
//
//	opts := audsampler.DefaultOptions()
//	opts.MaxDurationMs = 2000
//	opts.Vectors = true
//
// Regions are described in parallel; Workers caps the goroutines used.
//
// # Resynthesis
//
// Effects and stretching operate on any Waveform, not only on loaded ones:
//
//	chain, _ := effects.ParseChain("reverb:60,lowpass:4000")
//	wet, _ := effects.Apply(w.Slice(500, 1300), chain, effects.DefaultOptions())
//	long, _ := stretch.Sound(wet, 8, 0.8)
//
// # Logging
//
// Every package logs through the logrus standard logger: Debug for progress,
// Warn for degraded results (sentinel features, clipping) and Error for
// rejected configuration. Configure it with logrus.SetLevel and friends.
package audsampler
