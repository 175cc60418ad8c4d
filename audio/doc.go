// SPDX-License-Identifier: EPL-2.0

// Package audio provides the PCM buffer type and the low-level primitives the
// analysis packages are built on.
//
// This package contains:
//   - Source interface for decoded audio streams
//   - Waveform, a fully loaded interleaved buffer
//   - Resample for sample rate conversion
//   - Downmix for channel mixing
//   - Format registry for decoder registration
//
// # Source Interface
//
// Decoders produce a Source:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// ReadAll drains a Source into a Waveform. Sources that also implement Sized
// let ReadAll allocate the buffer once. NewSource goes the other way and
// exposes a Waveform as a Source.
//
// # Waveform
//
// Every analysis and resynthesis operation works on whole buffers:
//
//	w, err := audio.ReadAll(src)
//	region := w.Slice(500, 1300) // start ms, duration ms
//	padded := region.Pad(3000)
//	padded.FadeOut(100)
//
// Slice clamps to the buffer and copies. Pad and Slice return new buffers;
// FadeIn, FadeOut and Normalize work in place.
//
// # Resampling
//
// Resample changes the sample rate with cubic interpolation. Downsampling runs
// a one-pole low-pass first:
//
//	w22k, err := audio.Resample(w, 22050)
//
// # Channel Mixing
//
// Downmix averages channels into a mono buffer:
//
//	mono := audio.Downmix(w)
//
// # Format Registry
//
// The registry maps file extensions to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, _ := registry.Get(".WAV")
//
// Keys are case-insensitive and a leading dot is ignored.
//
// # Sample Format
//
// Audio samples are represented as float32 in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// Multi-channel audio is interleaved: [L0, R0, L1, R1, ...]. The DSP packages
// work in float64 and use Channel, Planar and Mono to get there.
//
// # Error Handling
//
// Sources return io.EOF when no more data is available. Validation failures
// are the sentinel errors in errors.go and can be tested with errors.Is.
package audio
