// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes and encodes AIFF (Audio Interchange File Format) files
// on top of github.com/go-audio/aiff.
//
// Only 16-bit PCM is handled, which covers what most sample packs ship.
// go-audio needs an io.ReadSeeker; other readers are buffered in memory.
//
//	f, _ := os.Open("snare.aif")
//	src, err := aiff.Decoder{}.Decode(f)
//	if err != nil {
//	    // Handle error
//	}
//	w, _ := audio.ReadAll(src)
//
// Encode writes a Waveform back out as 16-bit AIFF:
//
//	out, _ := os.Create("snare-verb.aif")
//	defer out.Close()
//	err = aiff.Encode(out, w)
//
// # Errors
//
//   - ErrNotAiffFile: no FORM/AIFF header
//   - ErrOnlyPCM16bitSupported: any other sample size
//   - ErrUnsupportedAiffLayout: missing channel or rate information
package aiff
