// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"testing"
)

type erroringSource struct {
	mockSource
	err error
}

func (e *erroringSource) ReadSamples(dst []float32) (int, error) {
	return 0, e.err
}

func TestReadAll(t *testing.T) {
	t.Parallel()

	src := newMockSource(8000, 2, 10000, func(sample, channel int) float32 {
		return float32(channel)
	})
	src.chunk = 333

	w, err := ReadAll(src)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if w.Frames() != 10000 || w.Channels != 2 || w.SampleRate != 8000 {
		t.Fatalf("ReadAll() = %d frames, %d ch, %d Hz", w.Frames(), w.Channels, w.SampleRate)
	}
	if w.Samples[1] != 1 || w.Samples[2] != 0 {
		t.Errorf("interleaving lost: %v", w.Samples[:4])
	}
}

func TestReadAll_PropagatesErrors(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	src := &erroringSource{mockSource: *newSilentSource(8000, 1, 10), err: boom}

	if _, err := ReadAll(src); !errors.Is(err, boom) {
		t.Errorf("ReadAll() error = %v, want boom", err)
	}
}

func TestReadAll_InvalidSource(t *testing.T) {
	t.Parallel()

	if _, err := ReadAll(newSilentSource(0, 1, 10)); !errors.Is(err, ErrInvalidSampleRate) {
		t.Errorf("ReadAll() error = %v, want ErrInvalidSampleRate", err)
	}
}

func TestNewSource_RoundTrip(t *testing.T) {
	t.Parallel()

	w := sineWaveform(16000, 2, 5000, 220)
	src := NewSource(w)

	if src.(Sized).TotalFrames() != 5000 {
		t.Errorf("TotalFrames() = %d, want 5000", src.(Sized).TotalFrames())
	}

	back, err := ReadAll(src)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(back.Samples) != len(w.Samples) {
		t.Fatalf("round trip length %d, want %d", len(back.Samples), len(w.Samples))
	}
	for i := range w.Samples {
		if back.Samples[i] != w.Samples[i] {
			t.Fatalf("sample %d differs", i)
		}
	}

	if _, err := src.ReadSamples(make([]float32, 2)); err != io.EOF {
		t.Errorf("read after end error = %v, want io.EOF", err)
	}
	if _, err := src.ReadSamples(make([]float32, 3)); !errors.Is(err, ErrInvalidDstSize) {
		t.Errorf("odd dst error = %v, want ErrInvalidDstSize", err)
	}
}
