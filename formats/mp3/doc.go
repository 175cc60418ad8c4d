// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 audio with github.com/hajimehoshi/go-mp3.
//
// go-mp3 always produces 16-bit stereo, so every source from this package
// reports two channels; mono files come out with both channels equal.
//
//	f, _ := os.Open("loop.mp3")
//	src, err := mp3.Decoder{}.Decode(f)
//	if err != nil {
//	    // Handle error
//	}
//	w, _ := audio.ReadAll(src)
//	mono := audio.Downmix(w)
//
// When the input is an io.Seeker the decoded length is known up front and the
// source reports it through audio.Sized. Encoding is not supported.
package mp3
