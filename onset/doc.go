// SPDX-License-Identifier: EPL-2.0

// Package onset cuts a waveform into sample regions bounded by detected onsets.
//
// # Algorithm
//
// The waveform is mixed to mono, resampled to the analysis rate (22050 Hz by
// default) and peak-normalized. A mel power spectrogram is converted to dB
// relative to its maximum, and the onset strength is the mean positive
// spectral flux against a lagged, time-max-filtered reference (SuperFlux).
// Peaks of the normalized strength curve are onsets; with backtracking each
// onset moves to the preceding local minimum of the curve so a region starts
// at the attack rather than its peak.
//
// Onset frames become millisecond timestamps and the final timestamp
// (duration - 1) is appended. Each adjacent pair, the first one starting at
// 0, is a candidate region:
//
//	regions, err := onset.Segment(w, 50, 0, onset.DefaultConfig())
//
// A candidate is kept when its duration is at least minDurationMs and, if
// maxDurationMs > 0, at most maxDurationMs. Rejected candidates are dropped,
// never merged into a neighbour or split.
//
// # Modes
//
// DefaultConfig is the SuperFlux setup (138 bands from 27.5 Hz to 16 kHz,
// lag 2, max filter 3). PlainConfig is plain spectral flux over 128 bands up
// to Nyquist.
//
// # Concurrency
//
// A Segmenter is immutable after construction and safe for concurrent use.
package onset
