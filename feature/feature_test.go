// SPDX-License-Identifier: EPL-2.0

package feature

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/audsampler/audio"
	"github.com/ik5/audsampler/internal/audiotest"
)

func TestDescribe_Silence(t *testing.T) {
	t.Parallel()

	fs := Describe(audiotest.Silence(22050, 1000), 0, 1000)

	assert.Equal(t, -1.0, fs.Power)
	assert.Equal(t, -1.0, fs.DominantHz)
	assert.Equal(t, "-", fs.PitchClass)
	assert.Equal(t, -1, fs.Octave)
	assert.False(t, fs.HasPower())
	assert.False(t, fs.HasPitch())
	assert.False(t, math.IsNaN(fs.Flatness))
}

func TestDescribe_Sine(t *testing.T) {
	t.Parallel()

	w := audiotest.Sine(22050, 1000, 440, 0.8)
	fs := Describe(w, 0, 1000)

	require.True(t, fs.HasPower())
	require.True(t, fs.HasPitch())
	assert.Greater(t, fs.Power, 0.0)
	assert.InDelta(t, 460, fs.DominantHz, 60)
	assert.Contains(t, []string{"G#", "A", "A#"}, fs.PitchClass)
	assert.Equal(t, 4, fs.Octave)
	assert.Less(t, fs.Flatness, 0.1)

	// rounding
	assert.Equal(t, math.Round(fs.Power*100)/100, fs.Power)
	assert.Equal(t, math.Round(fs.DominantHz*100)/100, fs.DominantHz)
}

func TestDescribe_LouderHasMorePower(t *testing.T) {
	t.Parallel()

	quiet := Describe(audiotest.Sine(22050, 500, 440, 0.1), 0, 500)
	loud := Describe(audiotest.Sine(22050, 500, 440, 0.9), 0, 500)

	assert.Greater(t, loud.Power, quiet.Power)
}

func TestDescribe_NoiseIsFlatterThanSine(t *testing.T) {
	t.Parallel()

	noise := Describe(audiotest.Noise(22050, 500, 0.5, 7), 0, 500)
	sine := Describe(audiotest.Sine(22050, 500, 440, 0.5), 0, 500)

	assert.Greater(t, noise.Flatness, sine.Flatness)
	assert.Greater(t, noise.DominantHz, sine.DominantHz)
}

func TestDescribe_ClampsRange(t *testing.T) {
	t.Parallel()

	w := audiotest.Sine(22050, 1000, 440, 0.5)

	outside := Describe(w, 5000, 100)
	assert.False(t, outside.HasPower())

	var nilWave *audio.Waveform
	assert.False(t, Describe(nilWave, 0, 100).HasPower())

	partial := Describe(w, 900, 500)
	assert.True(t, partial.HasPower())
}

func TestVectorize(t *testing.T) {
	t.Parallel()

	v := Vectorize(audiotest.Noise(22050, 800, 0.5, 3), 0, 800)
	require.Len(t, v, VectorLen)

	var mean, sq float64
	for _, x := range v {
		require.False(t, math.IsNaN(x))
		mean += x
	}
	mean /= VectorLen
	for _, x := range v {
		sq += (x - mean) * (x - mean)
	}
	assert.InDelta(t, 0, mean, 1e-9)
	assert.InDelta(t, 1, math.Sqrt(sq/VectorLen), 1e-9)
}

func TestVectorize_Silence(t *testing.T) {
	t.Parallel()

	v := Vectorize(audiotest.Silence(22050, 500), 0, 500)
	assert.Equal(t, make(Vector, VectorLen), v)

	empty := Vectorize(audiotest.Silence(22050, 500), 2000, 500)
	assert.Equal(t, make(Vector, VectorLen), empty)
}

func TestVectorize_CapsDuration(t *testing.T) {
	t.Parallel()

	w := audiotest.Noise(22050, 3000, 0.5, 11)
	assert.Equal(t, Vectorize(w, 0, 1000), Vectorize(w, 0, 3000))
}

func TestVector_Distance(t *testing.T) {
	t.Parallel()

	d, err := Vector{0, 0}.Distance(Vector{3, 4})
	require.NoError(t, err)
	assert.InDelta(t, 5, d, 1e-12)

	_, err = Vector{0}.Distance(Vector{0, 1})
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestNearest(t *testing.T) {
	t.Parallel()

	w := audiotest.Noise(22050, 500, 0.5, 5)
	query := Vectorize(w, 0, 500)
	candidates := []Vector{
		Vectorize(audiotest.Sine(22050, 500, 220, 0.5), 0, 500),
		Vectorize(w, 0, 500),
		Vectorize(audiotest.Sine(22050, 500, 3000, 0.5), 0, 500),
	}

	idx, dist, err := Nearest(query, candidates)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
	assert.InDelta(t, 0, dist, 1e-12)

	_, _, err = Nearest(query, nil)
	assert.ErrorIs(t, err, ErrNoCandidates)
}

func TestHzToNote(t *testing.T) {
	t.Parallel()

	tests := []struct {
		hz         float64
		wantClass  string
		wantOctave int
	}{
		{440, "A", 4},
		{261.63, "C", 4},
		{27.5, "A", 0},
		{8.18, "C", -1},
		{466.16, "A#", 4},
		{4186.01, "C", 8},
	}

	for _, tt := range tests {
		class, octave, err := HzToNote(tt.hz)
		require.NoError(t, err, "%g Hz", tt.hz)
		assert.Equal(t, tt.wantClass, class, "%g Hz", tt.hz)
		assert.Equal(t, tt.wantOctave, octave, "%g Hz", tt.hz)
	}

	for _, bad := range []float64{0, -440, math.NaN(), math.Inf(1)} {
		_, _, err := HzToNote(bad)
		assert.ErrorIs(t, err, ErrNoNote, "%g Hz", bad)
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	require.NoError(t, DefaultConfig().Validate())

	bad := []func(*Config){
		func(c *Config) { c.FFTSize = 1000 + 1 },
		func(c *Config) { c.HopLength = 0 },
		func(c *Config) { c.RolloffPercent = 1 },
		func(c *Config) { c.MFCC = 200 },
		func(c *Config) { c.DeltaWidth = 4 },
		func(c *Config) { c.VectorMaxMs = 0 },
	}
	for i, mutate := range bad {
		cfg := DefaultConfig()
		mutate(&cfg)
		assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig, "case %d", i)

		_, err := NewExtractor(cfg)
		assert.ErrorIs(t, err, ErrInvalidConfig, "case %d", i)
	}
}

func BenchmarkDescribe(b *testing.B) {
	w := audiotest.Noise(22050, 1000, 0.5, 1)
	b.ReportAllocs()

	for range b.N {
		Describe(w, 0, 1000)
	}
}

func BenchmarkVectorize(b *testing.B) {
	w := audiotest.Noise(22050, 1000, 0.5, 1)
	b.ReportAllocs()

	for range b.N {
		Vectorize(w, 0, 1000)
	}
}
