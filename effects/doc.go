// SPDX-License-Identifier: EPL-2.0

// Package effects applies an ordered chain of audio effects to a waveform.
//
// # Effects
//
// Each Spec pairs a Kind with one magnitude:
//
//	reverb      reverberance, 0-100
//	distortion  overdrive gain in dB
//	highpass    cutoff in Hz (2-pole Butterworth)
//	lowpass     cutoff in Hz (2-pole Butterworth)
//	bass        low-shelf gain in dB at 100 Hz
//	echo        delay in ms (gain in 0.8, gain out 0.9, decay 0.3)
//
// Chains can be written as text for configuration files:
//
//	chain, err := effects.ParseChain("highpass:200,reverb:60,echo:250")
//	out, err := effects.Apply(w, chain, effects.DefaultOptions())
//
// # Processing
//
// Apply validates the whole chain first and fails without touching any
// samples. It then appends Options.PadMs of silence so tails have room to
// ring out, runs the chain over each channel, hard-clips to [-1, 1] and
// applies linear fades at both ends. The input is never modified.
package effects
