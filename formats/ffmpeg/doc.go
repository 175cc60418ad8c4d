// SPDX-License-Identifier: EPL-2.0

// Package ffmpeg extracts audio from video and other containers by running
// an external ffmpeg binary.
//
// The audio track is transcoded to 16-bit WAV on stdout and decoded with the
// wav package, so nothing is written to disk:
//
//	x := ffmpeg.Extractor{SampleRate: 44100}
//	w, err := x.Extract(ctx, "clip.mp4")
//
// The subprocess is bound to ctx. Failures wrap ErrDecoderFailed and carry
// ffmpeg's stderr. No retries are attempted.
package ffmpeg
