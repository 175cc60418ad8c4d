// SPDX-License-Identifier: EPL-2.0

package audsampler

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/audsampler/audio"
	"github.com/ik5/audsampler/formats/wav"
	"github.com/ik5/audsampler/internal/audiotest"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		rate       int
		wantRate   int
		wantFrames int
	}{
		{"default analysis rate", 0, AnalysisRate, 22050},
		{"explicit rate", 8000, 8000, 8000},
		{"same rate", 44100, 44100, 44100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			in := audiotest.Stereo(audiotest.Sine(44100, 1000, 440, 0.25))
			src := audiotest.NewWaveformSource(in.SampleRate, in.Channels, in.Samples)

			w, err := Load(src, tt.rate)
			require.NoError(t, err)

			assert.Equal(t, 1, w.Channels)
			assert.Equal(t, tt.wantRate, w.SampleRate)
			assert.InDelta(t, tt.wantFrames, w.Frames(), 2)
			assert.InDelta(t, 1.0, w.Peak(), 1e-6)
			assert.Zero(t, src.Closed(), "Load must leave the source open")
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	_, err := Load(audiotest.NewMockSource(44100, 0, 10, nil), 0)
	assert.ErrorIs(t, err, audio.ErrInvalidChannels)

	src := audiotest.NewWaveformSource(44100, 1, []float32{0.1, 0.2})
	_, err = Load(src, -5)
	assert.ErrorIs(t, err, audio.ErrInvalidSampleRate)
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "loop.wav")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, wav.Encode(f, audiotest.Stereo(audiotest.Sine(48000, 500, 220, 0.5)), 16))
	require.NoError(t, f.Close())

	w, err := LoadFile(context.Background(), path, 0)
	require.NoError(t, err)
	assert.Equal(t, AnalysisRate, w.SampleRate)
	assert.Equal(t, 1, w.Channels)
	assert.InDelta(t, 500, w.DurationMs(), 1)

	_, err = LoadFile(context.Background(), filepath.Join(t.TempDir(), "missing.wav"), 0)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
