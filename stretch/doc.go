// SPDX-License-Identifier: EPL-2.0

// Package stretch implements Paulstretch-style extreme time stretching.
//
// The input is cut into half-overlapping Hann-windowed frames. For every
// output frame the magnitude spectra of the two most recent input frames are
// blended, every bin gets a random phase, and the result is inverse
// transformed and overlap-added. Phase randomization keeps the spectral
// character of a sound while smearing its time structure, so factors of 10
// or 100 turn a note into a drone.
//
//	out, err := stretch.Stretch(w, stretch.DefaultParams(8))
//
// # Onsets
//
// When the coarse spectrum of a new input frame jumps by more than
// Params.OnsetSensitivity, the new frame is used at once instead of being
// faded in, and the time skipped is paid back by slowing down afterwards.
// Onset values are bounded by 1, so the default sensitivity of 10 never
// triggers; values below 1 keep transients sharp.
//
// # Stepping
//
// Stretch drives a Stepper, which holds the rolling state and produces one
// hop of output per Next call. Use it directly to stream long results or to
// inspect the state between frames.
//
// # Determinism
//
// Phases come from a PCG generator seeded with Params.Seed. Equal seeds give
// identical output; a zero seed picks a random one.
package stretch
