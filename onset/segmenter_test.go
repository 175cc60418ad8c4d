// SPDX-License-Identifier: EPL-2.0

package onset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/audsampler/audio"
	"github.com/ik5/audsampler/internal/audiotest"
)

func TestSegment_TwoOnsets(t *testing.T) {
	t.Parallel()

	w := audiotest.Bursts(22050, 3000, []int{500, 1800}, 1)

	regions, err := Segment(w, 50, 0, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, regions, 3)

	assert.Equal(t, 0, regions[0].StartMs)
	assert.InDelta(t, 500, regions[1].StartMs, 100)
	assert.InDelta(t, 1800, regions[2].StartMs, 100)
	assert.Equal(t, 2999, regions[2].EndMs())

	for i, r := range regions {
		assert.Equal(t, w.ID, r.SourceID)
		if i > 0 {
			assert.Equal(t, regions[i-1].EndMs(), r.StartMs, "adjacent regions share a boundary")
		}
	}
}

func TestSegment_ResamplesAndDownmixes(t *testing.T) {
	t.Parallel()

	w := audiotest.Stereo(audiotest.Bursts(44100, 3000, []int{500, 1800}, 2))

	regions, err := Segment(w, 50, 0, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, regions, 3)
	assert.InDelta(t, 1800, regions[2].StartMs, 100)
}

func TestSegment_DurationFilter(t *testing.T) {
	t.Parallel()

	w := audiotest.Bursts(22050, 3000, []int{500, 1800}, 3)
	s, err := NewSegmenter(DefaultConfig())
	require.NoError(t, err)

	tests := []struct {
		name     string
		min, max int
	}{
		{"min only", 50, 0},
		{"drops short first region", 600, 0},
		{"drops long regions", 50, 1000},
		{"drops everything", 5000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			regions, err := s.Segment(w, tt.min, tt.max)
			require.NoError(t, err)

			for i, r := range regions {
				assert.GreaterOrEqual(t, r.DurationMs, tt.min)
				if tt.max > 0 {
					assert.LessOrEqual(t, r.DurationMs, tt.max)
				}
				assert.LessOrEqual(t, r.EndMs(), w.DurationMs())
				if i > 0 {
					assert.Greater(t, r.StartMs, regions[i-1].StartMs)
					assert.GreaterOrEqual(t, r.StartMs, regions[i-1].EndMs())
				}
			}
		})
	}

	short, err := s.Segment(w, 600, 0)
	require.NoError(t, err)
	require.Len(t, short, 2)
	assert.InDelta(t, 500, short[0].StartMs, 100)

	long, err := s.Segment(w, 50, 1000)
	require.NoError(t, err)
	require.Len(t, long, 1)
	assert.Equal(t, 0, long[0].StartMs)

	none, err := s.Segment(w, 5000, 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSegment_NoOnsets(t *testing.T) {
	t.Parallel()

	w := audiotest.Silence(22050, 2000)

	regions, err := Segment(w, 50, 0, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, regions, 1)
	assert.Equal(t, Region{SourceID: w.ID, StartMs: 0, DurationMs: 1999}, regions[0])

	regions, err = Segment(w, 50, 1000, DefaultConfig())
	require.NoError(t, err)
	assert.Empty(t, regions, "whole-buffer region fails the max filter")
}

func TestSegment_Errors(t *testing.T) {
	t.Parallel()

	_, err := Segment(nil, 50, 0, DefaultConfig())
	assert.ErrorIs(t, err, ErrEmptyWaveform)

	empty := &audio.Waveform{SampleRate: 22050, Channels: 1}
	_, err = Segment(empty, 50, 0, DefaultConfig())
	assert.ErrorIs(t, err, ErrEmptyWaveform)

	cfg := DefaultConfig()
	cfg.HopLength = 0
	_, err = Segment(audiotest.Silence(22050, 100), 50, 0, cfg)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	require.NoError(t, DefaultConfig().Validate())
	require.NoError(t, PlainConfig().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"odd fft", func(c *Config) { c.FFTSize = 2047 }},
		{"no mels", func(c *Config) { c.Mels = 0 }},
		{"negative fmin", func(c *Config) { c.FMin = -1 }},
		{"inverted range", func(c *Config) { c.FMin = 500; c.FMax = 100 }},
		{"zero lag", func(c *Config) { c.Lag = 0 }},
		{"negative wait", func(c *Config) { c.Wait = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestConfig_FMaxAboveNyquist(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	require.Greater(t, cfg.FMax, float64(cfg.SampleRate)/2)
	require.NoError(t, cfg.Validate())

	s, err := NewSegmenter(cfg)
	require.NoError(t, err)

	regions, err := s.Segment(audiotest.Bursts(cfg.SampleRate, 3000, []int{500, 1800}, 1), 50, 0)
	require.NoError(t, err)
	assert.Len(t, regions, 3)
}

func TestPlainConfig_DetectsOnsets(t *testing.T) {
	t.Parallel()

	w := audiotest.Bursts(22050, 3000, []int{500, 1800}, 4)

	regions, err := Segment(w, 50, 0, PlainConfig())
	require.NoError(t, err)
	require.Len(t, regions, 3)
	assert.InDelta(t, 500, regions[1].StartMs, 100)
}

func BenchmarkSegment(b *testing.B) {
	w := audiotest.Bursts(22050, 3000, []int{500, 1800}, 1)
	s, err := NewSegmenter(DefaultConfig())
	require.NoError(b, err)
	b.ReportAllocs()

	for range b.N {
		_, _ = s.Segment(w, 50, 0)
	}
}
