// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/ik5/audsampler/utils"
)

// Waveform is a fully loaded PCM buffer: interleaved float32 samples in [-1, 1].
//
// Components that receive a Waveform treat it as read-only. Operations that
// produce audio return a new Waveform; the only in-place helpers are FadeIn,
// FadeOut and Normalize, which say so.
type Waveform struct {
	// ID names the source the buffer came from. It ends up as the
	// SourceID of every region cut from it.
	ID         string
	SampleRate int
	Channels   int
	Samples    []float32
}

// NewWaveform wraps interleaved samples. The ID is a random UUID; overwrite it
// with a file name or other stable key when one exists.
func NewWaveform(sampleRate, channels int, samples []float32) (*Waveform, error) {
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if channels <= 0 {
		return nil, ErrInvalidChannels
	}
	if len(samples)%channels != 0 {
		return nil, fmt.Errorf("%d samples, %d channels: %w", len(samples), channels, ErrChannelMismatch)
	}

	return &Waveform{
		ID:         uuid.NewString(),
		SampleRate: sampleRate,
		Channels:   channels,
		Samples:    samples,
	}, nil
}

// FromInt16 builds a Waveform from interleaved 16-bit PCM.
func FromInt16(sampleRate, channels int, pcm []int16) (*Waveform, error) {
	samples := make([]float32, len(pcm))
	for i, v := range pcm {
		samples[i] = utils.Int16ToFloat32(v)
	}
	return NewWaveform(sampleRate, channels, samples)
}

// FromChannels interleaves planar float64 channels. All channels must have the
// length of the first one; shorter ones are zero-extended.
func FromChannels(sampleRate int, chans [][]float64) (*Waveform, error) {
	if len(chans) == 0 {
		return nil, ErrInvalidChannels
	}

	frames := len(chans[0])
	nch := len(chans)
	samples := make([]float32, frames*nch)
	for c, ch := range chans {
		for i := range min(frames, len(ch)) {
			samples[i*nch+c] = float32(ch[i])
		}
	}
	return NewWaveform(sampleRate, nch, samples)
}

// Frames is the number of samples per channel.
func (w *Waveform) Frames() int {
	if w == nil || w.Channels <= 0 {
		return 0
	}
	return len(w.Samples) / w.Channels
}

// DurationMs is the buffer length in whole milliseconds.
func (w *Waveform) DurationMs() int {
	if w == nil {
		return 0
	}
	return utils.SamplesToMs(w.Frames(), w.SampleRate)
}

// Empty reports whether there is nothing to process.
func (w *Waveform) Empty() bool {
	return w.Frames() == 0
}

// Clone deep-copies the buffer, keeping the ID.
func (w *Waveform) Clone() *Waveform {
	c := *w
	c.Samples = append([]float32(nil), w.Samples...)
	return &c
}

// withSamples returns a sibling buffer sharing metadata with w.
func (w *Waveform) withSamples(samples []float32) *Waveform {
	return &Waveform{
		ID:         w.ID,
		SampleRate: w.SampleRate,
		Channels:   w.Channels,
		Samples:    samples,
	}
}

// FrameRange converts [startMs, startMs+durationMs) into a frame range,
// clamped to the buffer. Out-of-range requests shrink, they never fail.
func (w *Waveform) FrameRange(startMs, durationMs float64) (int, int) {
	frames := w.Frames()
	i0 := max(0, min(frames, utils.MsToSamples(startMs, w.SampleRate)))
	i1 := max(i0, min(frames, utils.MsToSamples(startMs+durationMs, w.SampleRate)))
	return i0, i1
}

// Slice copies the sub-range [startMs, startMs+durationMs), clamped to the buffer.
func (w *Waveform) Slice(startMs, durationMs float64) *Waveform {
	i0, i1 := w.FrameRange(startMs, durationMs)
	out := make([]float32, (i1-i0)*w.Channels)
	copy(out, w.Samples[i0*w.Channels:i1*w.Channels])
	return w.withSamples(out)
}

// Pad returns a copy with ms of trailing silence.
func (w *Waveform) Pad(ms int) *Waveform {
	extra := 0
	if ms > 0 {
		extra = utils.MsToSamples(float64(ms), w.SampleRate)
	}
	out := make([]float32, len(w.Samples)+extra*w.Channels)
	copy(out, w.Samples)
	return w.withSamples(out)
}

// FadeIn applies a linear ramp from silence over the first ms milliseconds
// (capped at the buffer length). It modifies w.
func (w *Waveform) FadeIn(ms int) {
	n := min(w.Frames(), utils.MsToSamples(float64(ms), w.SampleRate))
	if n <= 0 {
		return
	}
	for i := range n {
		gain := float32(i) / float32(n)
		for c := range w.Channels {
			w.Samples[i*w.Channels+c] *= gain
		}
	}
}

// FadeOut applies a linear ramp to silence over the last ms milliseconds
// (capped at the buffer length). It modifies w.
func (w *Waveform) FadeOut(ms int) {
	frames := w.Frames()
	n := min(frames, utils.MsToSamples(float64(ms), w.SampleRate))
	if n <= 0 {
		return
	}
	start := frames - n
	for i := range n {
		gain := float32(n-1-i) / float32(n)
		for c := range w.Channels {
			w.Samples[(start+i)*w.Channels+c] *= gain
		}
	}
}

// Peak returns the largest absolute sample value.
func (w *Waveform) Peak() float32 {
	var peak float32
	for _, s := range w.Samples {
		peak = max(peak, float32(math.Abs(float64(s))))
	}
	return peak
}

// Normalize scales the buffer so its peak is 1. Silent buffers are left alone.
// It modifies w.
func (w *Waveform) Normalize() {
	peak := w.Peak()
	if peak == 0 {
		return
	}
	inv := 1 / peak
	for i := range w.Samples {
		w.Samples[i] *= inv
	}
}

// Channel de-interleaves channel c as float64, the working type of the DSP packages.
func (w *Waveform) Channel(c int) []float64 {
	frames := w.Frames()
	out := make([]float64, frames)
	for i := range frames {
		out[i] = float64(w.Samples[i*w.Channels+c])
	}
	return out
}

// Planar de-interleaves every channel.
func (w *Waveform) Planar() [][]float64 {
	chans := make([][]float64, w.Channels)
	for c := range chans {
		chans[c] = w.Channel(c)
	}
	return chans
}

// Mono returns the channel average as float64.
func (w *Waveform) Mono() []float64 {
	m := Downmix(w)
	out := make([]float64, len(m.Samples))
	for i, s := range m.Samples {
		out[i] = float64(s)
	}
	return out
}

// Int16 quantizes the buffer to interleaved 16-bit PCM.
func (w *Waveform) Int16() []int16 {
	out := make([]int16, len(w.Samples))
	for i, s := range w.Samples {
		out[i] = utils.Float32ToInt16(s)
	}
	return out
}
