// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/ik5/audsampler/audio"
	"github.com/ik5/audsampler/utils"
)

// Encode writes w as integer PCM at the given bit depth (16, 24 or 32).
// Samples outside [-1, 1] are clamped. ws is not closed.
func Encode(ws io.WriteSeeker, w *audio.Waveform, bitDepth int) error {
	switch bitDepth {
	case 16, 24, 32:
	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}
	if w == nil || w.Channels <= 0 {
		return audio.ErrInvalidChannels
	}
	if w.SampleRate <= 0 {
		return audio.ErrInvalidSampleRate
	}

	data := make([]int, len(w.Samples))
	for i, v := range w.Samples {
		data[i] = utils.Float32ToInt(v, bitDepth)
	}

	enc := gowav.NewEncoder(ws, w.SampleRate, bitDepth, w.Channels, formatPCM)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: w.Channels, SampleRate: w.SampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("writing wav samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav header: %w", err)
	}
	return nil
}
