// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	// ErrNotWavFile indicates the input has no RIFF/WAVE header.
	ErrNotWavFile = errors.New("not a WAV file")

	// ErrUnsupportedWavLayout indicates a WAV file whose samples are not integer PCM.
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")

	// ErrUnsupportedBitDepth indicates a PCM bit depth other than 8, 16, 24 or 32.
	ErrUnsupportedBitDepth = errors.New("unsupported WAV bit depth")
)
