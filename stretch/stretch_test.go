// SPDX-License-Identifier: EPL-2.0

package stretch

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/audsampler/audio"
	"github.com/ik5/audsampler/internal/audiotest"
)

func testParams(factor float64) Params {
	p := DefaultParams(factor)
	p.WindowSeconds = 0.05
	p.Seed = 42
	return p
}

func rms(x []float32) float64 {
	var sum float64
	for _, v := range x {
		sum += float64(v) * float64(v)
	}
	return math.Sqrt(sum / float64(len(x)))
}

func TestWindowSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rate    int
		seconds float64
		want    int
	}{
		{44100, 0.25, 11250},
		{22050, 0.25, 5624},
		{8000, 0.05, 400},
		{8000, 0.0001, 16},
		{1000, 0.017, 18},
	}

	for _, tt := range tests {
		got := WindowSize(tt.rate, tt.seconds)
		assert.Equal(t, tt.want, got, "%d Hz, %g s", tt.rate, tt.seconds)
		assert.Zero(t, got%2)
	}
}

func TestStretch_FactorOneKeepsLength(t *testing.T) {
	t.Parallel()

	w := audiotest.Sine(8000, 1000, 440, 0.5)
	out, err := Stretch(w, testParams(1))
	require.NoError(t, err)

	window := WindowSize(8000, 0.05)
	assert.InDelta(t, w.Frames(), out.Frames(), float64(window))
	assert.Equal(t, w.SampleRate, out.SampleRate)
}

func TestStretch_Factors(t *testing.T) {
	t.Parallel()

	w := audiotest.Sine(8000, 500, 440, 0.5)
	hop := WindowSize(8000, 0.05) / 2

	for _, k := range []float64{2, 4, 8, 2.5} {
		out, err := Stretch(w, testParams(k))
		require.NoError(t, err)
		assert.InDelta(t, k*float64(w.Frames()), out.Frames(), float64(hop), "factor %g", k)
		assert.Greater(t, rms(out.Samples), 0.05, "factor %g", k)

		for _, v := range out.Samples {
			require.False(t, math.IsNaN(float64(v)))
			require.LessOrEqual(t, math.Abs(float64(v)), 1.0)
		}
	}
}

func TestStretch_FactorBelowOneDoesNotShorten(t *testing.T) {
	t.Parallel()

	w := audiotest.Sine(8000, 500, 440, 0.5)
	out, err := Stretch(w, testParams(0.5))
	require.NoError(t, err)
	assert.Equal(t, w.Frames(), out.Frames())
}

func TestStretch_Stereo(t *testing.T) {
	t.Parallel()

	w := audiotest.Stereo(audiotest.Sine(8000, 300, 300, 0.5))
	out, err := Stretch(w, testParams(3))
	require.NoError(t, err)
	assert.Equal(t, 2, out.Channels)
	assert.Equal(t, 3*w.Frames(), out.Frames())
}

func TestStretch_SeedIsDeterministic(t *testing.T) {
	t.Parallel()

	w := audiotest.Noise(8000, 300, 0.5, 1)

	a, err := Stretch(w, testParams(2))
	require.NoError(t, err)
	b, err := Stretch(w, testParams(2))
	require.NoError(t, err)
	assert.Equal(t, a.Samples, b.Samples)

	p := testParams(2)
	p.Seed = 7
	c, err := Stretch(w, p)
	require.NoError(t, err)
	assert.NotEqual(t, a.Samples, c.Samples)
}

func TestStretch_DoesNotModifyInput(t *testing.T) {
	t.Parallel()

	w := audiotest.Sine(8000, 300, 440, 0.5)
	before := append([]float32(nil), w.Samples...)

	_, err := Stretch(w, testParams(2))
	require.NoError(t, err)
	assert.Equal(t, before, w.Samples)
}

func TestStretch_InvalidParams(t *testing.T) {
	t.Parallel()

	w := audiotest.Sine(8000, 100, 440, 0.5)

	for _, f := range []float64{0, -2, math.NaN(), math.Inf(1), MaxFactor + 1, 1e9} {
		_, err := Stretch(w, testParams(f))
		assert.ErrorIs(t, err, ErrInvalidFactor, "factor %g", f)
	}

	for _, s := range []float64{0, -0.1, math.NaN()} {
		p := testParams(2)
		p.WindowSeconds = s
		_, err := Stretch(w, p)
		assert.ErrorIs(t, err, ErrInvalidWindow, "window %g", s)
	}

	p := testParams(2)
	p.OnsetSensitivity = math.NaN()
	_, err := Stretch(w, p)
	assert.ErrorIs(t, err, ErrInvalidSensitivity)
}

func TestParams_MaxFactor(t *testing.T) {
	t.Parallel()

	assert.NoError(t, testParams(MaxFactor).Validate())
	assert.ErrorIs(t, testParams(MaxFactor*2).Validate(), ErrInvalidFactor)
}

func TestStretch_Empty(t *testing.T) {
	t.Parallel()

	w := &audio.Waveform{SampleRate: 8000, Channels: 1, Samples: []float32{}}
	out, err := Stretch(w, testParams(4))
	require.NoError(t, err)
	assert.True(t, out.Empty())
}

func TestStepper_Transitions(t *testing.T) {
	t.Parallel()

	w := audiotest.Sine(8000, 200, 440, 0.5)
	s, err := NewStepper(w, testParams(4))
	require.NoError(t, err)
	require.Equal(t, 400, s.WindowSize())

	hop, ok := s.Next()
	require.True(t, ok)
	assert.Len(t, hop, 200)
	assert.Equal(t, 1, s.Pulls())
	assert.InDelta(t, 0.25, s.Tick(), 1e-12)
	assert.Zero(t, rms(hop), "first frame blends from silence")

	for range 3 {
		_, ok = s.Next()
		require.True(t, ok)
	}
	assert.Equal(t, 1, s.Pulls(), "four output frames per input frame")

	_, ok = s.Next()
	require.True(t, ok)
	assert.Equal(t, 2, s.Pulls())
	assert.Zero(t, s.Credit())

	// 1600 input frames at a hop of 200 is 8 pulls of 4 output frames each
	n := 5
	for {
		if _, ok := s.Next(); !ok {
			break
		}
		n++
	}
	assert.Equal(t, 32, n)
	assert.Equal(t, 8, s.Pulls())

	_, ok = s.Next()
	assert.False(t, ok, "finished stepper stays finished")
}

func TestStepper_OnsetCredit(t *testing.T) {
	t.Parallel()

	w := audiotest.Bursts(8000, 500, []int{0, 250}, 3)
	p := testParams(4)
	p.OnsetSensitivity = 0.5

	s, err := NewStepper(w, p)
	require.NoError(t, err)

	_, ok := s.Next()
	require.True(t, ok)
	assert.Equal(t, 1.0, s.Onset())
	assert.InDelta(t, 1-0.125, s.Credit(), 1e-12)
	assert.Equal(t, 0.125, s.Tick(), "snapped to the new frame, then half speed")

	out, err := Stretch(w, p)
	require.NoError(t, err)
	assert.Equal(t, 4*w.Frames(), out.Frames())
}

func TestSound_FadesOut(t *testing.T) {
	t.Parallel()

	w := audiotest.Sine(8000, 500, 440, 0.5)
	out, err := Sound(w, 2, 0.8)
	require.NoError(t, err)

	require.Equal(t, 2*w.Frames(), out.Frames())
	assert.Zero(t, out.Samples[len(out.Samples)-1])

	_, err = Sound(w, 0, 0.8)
	assert.ErrorIs(t, err, ErrInvalidFactor)
}

func TestStretchInt16(t *testing.T) {
	t.Parallel()

	w := audiotest.Sine(8000, 200, 440, 0.5)
	pcm, err := StretchInt16(w, testParams(2))
	require.NoError(t, err)
	assert.Len(t, pcm, 2*w.Frames())
}

func BenchmarkStretch(b *testing.B) {
	w := audiotest.Sine(22050, 1000, 440, 0.5)
	p := DefaultParams(4)
	p.Seed = 1
	b.ReportAllocs()

	for range b.N {
		_, _ = Stretch(w, p)
	}
}
