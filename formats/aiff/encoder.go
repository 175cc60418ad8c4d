// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	goaiff "github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/ik5/audsampler/audio"
	"github.com/ik5/audsampler/utils"
)

// Encode writes w as 16-bit PCM AIFF. ws is not closed.
func Encode(ws io.WriteSeeker, w *audio.Waveform) error {
	if w == nil || w.Channels <= 0 {
		return audio.ErrInvalidChannels
	}
	if w.SampleRate <= 0 {
		return audio.ErrInvalidSampleRate
	}

	data := make([]int, len(w.Samples))
	for i, v := range w.Samples {
		data[i] = int(utils.Float32ToInt16(v))
	}

	enc := goaiff.NewEncoder(ws, w.SampleRate, bitDepth, w.Channels)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: w.Channels, SampleRate: w.SampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("writing aiff samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing aiff header: %w", err)
	}
	return nil
}
