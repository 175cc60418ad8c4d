// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides sources and synthetic waveforms for tests.
package audiotest

import (
	"io"
)

// MockSource generates audio through the audio.Source interface. It also
// implements audio.Sized, and records Close calls so tests can check that
// loaders release their inputs.
type MockSource struct {
	sampleRate   int
	channels     int
	totalSamples int // per channel
	generated    int
	closed       int
	waveform     func(sample int, channel int) float32
}

// NewMockSource creates a source of totalSamples frames whose values come from waveform.
func NewMockSource(sampleRate, channels, totalSamples int, waveform func(sample int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:   sampleRate,
		channels:     channels,
		totalSamples: totalSamples,
		waveform:     waveform,
	}
}

// NewWaveformSource replays interleaved samples.
func NewWaveformSource(sampleRate, channels int, samples []float32) *MockSource {
	return NewMockSource(sampleRate, channels, len(samples)/channels, func(sample int, channel int) float32 {
		return samples[sample*channels+channel]
	})
}

func (m *MockSource) SampleRate() int  { return m.sampleRate }
func (m *MockSource) Channels() int    { return m.channels }
func (m *MockSource) BufSize() int     { return 4096 }
func (m *MockSource) TotalFrames() int { return m.totalSamples }

func (m *MockSource) Close() error {
	m.closed++
	return nil
}

// Closed reports how many times Close was called.
func (m *MockSource) Closed() int { return m.closed }

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.totalSamples {
		return 0, io.EOF
	}

	frames := min(len(dst)/m.channels, m.totalSamples-m.generated)
	for frame := range frames {
		for ch := range m.channels {
			dst[frame*m.channels+ch] = m.waveform(m.generated+frame, ch)
		}
	}
	m.generated += frames

	if m.generated >= m.totalSamples {
		return frames * m.channels, io.EOF
	}
	return frames * m.channels, nil
}
