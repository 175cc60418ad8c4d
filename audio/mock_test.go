// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"math"
)

// mockSource generates audio through the Source interface.
type mockSource struct {
	sampleRate   int
	channels     int
	totalSamples int // per channel
	generated    int
	chunk        int // max frames per read, 0 = whatever fits
	waveform     func(sample int, channel int) float32
}

func newMockSource(sampleRate, channels, totalSamples int, waveform func(sample int, channel int) float32) *mockSource {
	return &mockSource{
		sampleRate:   sampleRate,
		channels:     channels,
		totalSamples: totalSamples,
		waveform:     waveform,
	}
}

func newSilentSource(sampleRate, channels, totalSamples int) *mockSource {
	return newMockSource(sampleRate, channels, totalSamples, func(int, int) float32 { return 0 })
}

func (m *mockSource) SampleRate() int { return m.sampleRate }
func (m *mockSource) Channels() int   { return m.channels }
func (m *mockSource) BufSize() int    { return 4096 }
func (m *mockSource) Close() error    { return nil }

func (m *mockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.totalSamples {
		return 0, io.EOF
	}

	frames := min(len(dst)/m.channels, m.totalSamples-m.generated)
	if m.chunk > 0 {
		frames = min(frames, m.chunk)
	}
	for f := range frames {
		for ch := range m.channels {
			dst[f*m.channels+ch] = m.waveform(m.generated+f, ch)
		}
	}
	m.generated += frames

	if m.generated >= m.totalSamples {
		return frames * m.channels, io.EOF
	}
	return frames * m.channels, nil
}

func sineWaveform(rate, channels, frames int, freq float64) *Waveform {
	samples := make([]float32, frames*channels)
	for i := range frames {
		v := float32(math.Sin(2 * math.Pi * freq * float64(i) / float64(rate)))
		for c := range channels {
			samples[i*channels+c] = v
		}
	}
	w, err := NewWaveform(rate, channels, samples)
	if err != nil {
		panic(err)
	}
	return w
}

func constantWaveform(rate, channels, frames int, value float32) *Waveform {
	samples := make([]float32, frames*channels)
	for i := range samples {
		samples[i] = value
	}
	w, err := NewWaveform(rate, channels, samples)
	if err != nil {
		panic(err)
	}
	return w
}
