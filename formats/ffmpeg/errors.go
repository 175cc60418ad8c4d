// SPDX-License-Identifier: EPL-2.0

package ffmpeg

import "errors"

var (
	// ErrBinaryNotFound indicates the ffmpeg executable could not be located.
	ErrBinaryNotFound = errors.New("ffmpeg binary not found")

	// ErrDecoderFailed indicates ffmpeg exited with an error or produced unusable output.
	ErrDecoderFailed = errors.New("ffmpeg failed to extract audio")

	// ErrInvalidConfig indicates a negative sample rate or channel count.
	ErrInvalidConfig = errors.New("invalid ffmpeg extractor configuration")
)
