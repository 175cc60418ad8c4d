// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis audio with github.com/jfreymuth/oggvorbis.
//
//	f, _ := os.Open("pad.ogg")
//	src, err := vorbis.Decoder{}.Decode(f)
//	if err != nil {
//	    // Handle error
//	}
//	w, _ := audio.ReadAll(src)
//
// Vorbis decodes to float natively, so samples are passed through without
// conversion. Channel count and sample rate come from the stream header.
// Seekable inputs report their length through audio.Sized.
package vorbis
