// SPDX-License-Identifier: EPL-2.0

// Package formats wires the individual decoders into a registry and opens
// files by extension.
//
// wav, mp3, ogg and aiff files are decoded in-process. Anything else (mp4,
// mov, mkv, webm, m4a, flac...) is handed to ffmpeg when it is installed:
//
//	w, err := formats.Open(ctx, "take3.mp4")
//
// Use Opener to supply a custom registry or ffmpeg settings.
package formats
