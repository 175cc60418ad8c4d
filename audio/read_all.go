// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

// ReadAll drains src into a Waveform. The source is not closed.
func ReadAll(src Source) (*Waveform, error) {
	channels := src.Channels()
	if channels <= 0 {
		return nil, ErrInvalidChannels
	}
	if src.SampleRate() <= 0 {
		return nil, ErrInvalidSampleRate
	}

	var samples []float32
	if sized, ok := src.(Sized); ok && sized.TotalFrames() > 0 {
		samples = make([]float32, 0, sized.TotalFrames()*channels)
	}

	bufSize := src.BufSize()
	if bufSize <= 0 {
		bufSize = 4096
	}
	// whole frames only
	bufSize = max(channels, bufSize-bufSize%channels)
	buf := make([]float32, bufSize)

	// a source that keeps returning nothing without EOF is treated as finished
	const maxEmptyReads = 64
	empty := 0

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			samples = append(samples, buf[:n]...)
			empty = 0
		} else {
			empty++
		}

		if errors.Is(err, io.EOF) || empty >= maxEmptyReads {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading samples: %w", err)
		}
	}

	// drop a trailing partial frame
	samples = samples[:len(samples)-len(samples)%channels]

	return NewWaveform(src.SampleRate(), channels, samples)
}

// waveformSource streams a Waveform through the Source interface.
type waveformSource struct {
	w   *Waveform
	pos int
}

// NewSource exposes w as a Source, e.g. to feed it back into code written
// against decoders.
func NewSource(w *Waveform) Source {
	return &waveformSource{w: w}
}

func (s *waveformSource) SampleRate() int { return s.w.SampleRate }
func (s *waveformSource) Channels() int   { return s.w.Channels }
func (s *waveformSource) BufSize() int    { return 4096 }
func (s *waveformSource) Close() error    { return nil }
func (s *waveformSource) TotalFrames() int {
	return s.w.Frames()
}

func (s *waveformSource) ReadSamples(dst []float32) (int, error) {
	if len(dst)%s.w.Channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if s.pos >= len(s.w.Samples) {
		return 0, io.EOF
	}

	n := copy(dst, s.w.Samples[s.pos:])
	s.pos += n
	if s.pos >= len(s.w.Samples) {
		return n, io.EOF
	}
	return n, nil
}
