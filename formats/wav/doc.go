// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and encodes RIFF/WAVE files on top of github.com/go-audio/wav.
//
// # Decoding
//
// Decoder accepts integer PCM at 8, 16, 24 or 32 bits, any channel count and
// any sample rate:
//
//	f, _ := os.Open("drums.wav")
//	src, err := wav.Decoder{}.Decode(f)
//	if err != nil {
//	    // Handle error
//	}
//	w, err := audio.ReadAll(src)
//
// Samples come out as float32 in [-1, 1). The returned source implements
// audio.Sized, so ReadAll allocates the whole buffer once. Inputs that are not
// an io.ReadSeeker (pipes, network bodies) are buffered in memory first.
//
// Files written to a pipe carry a placeholder data size; the frame hint is
// capped at the bytes actually present and decoding stops at the real end of
// the stream.
//
// # Encoding
//
// Encode writes a Waveform as 16, 24 or 32-bit PCM:
//
//	f, _ := os.Create("stretched.wav")
//	defer f.Close()
//	err := wav.Encode(f, w, 16)
//
// The header is finalized on return, which is why Encode needs an
// io.WriteSeeker.
//
// # Errors
//
//   - ErrNotWavFile: no RIFF/WAVE header
//   - ErrUnsupportedWavLayout: floating point or compressed samples
//   - ErrUnsupportedBitDepth: a bit depth the decoder or encoder cannot handle
package wav
