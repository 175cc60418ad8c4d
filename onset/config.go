// SPDX-License-Identifier: EPL-2.0

package onset

import "fmt"

// Config holds the analysis parameters. Times are in seconds and converted to
// frames at SampleRate/HopLength.
type Config struct {
	SampleRate int // analysis rate, input is resampled to it
	FFTSize    int
	HopLength  int

	Mels int
	FMin float64
	FMax float64 // 0 means Nyquist; filters above Nyquist stay empty

	// Lag is the distance in frames between a frame and its flux reference;
	// MaxSize is the width of the time max filter applied to the reference.
	Lag     int
	MaxSize int

	PreMax  float64
	PostMax float64
	PreAvg  float64
	PostAvg float64
	Wait    float64
	Delta   float64

	Backtrack bool
}

// DefaultConfig is the SuperFlux configuration.
func DefaultConfig() Config {
	return Config{
		SampleRate: 22050,
		FFTSize:    2048,
		HopLength:  512,
		Mels:       138,
		FMin:       27.5,
		FMax:       16000,
		Lag:        2,
		MaxSize:    3,
		PreMax:     0.03,
		PostMax:    0,
		PreAvg:     0.1,
		PostAvg:    0.1,
		Wait:       0.03,
		Delta:      0.07,
		Backtrack:  true,
	}
}

// PlainConfig is plain positive spectral flux without the max filter.
func PlainConfig() Config {
	cfg := DefaultConfig()
	cfg.Mels = 128
	cfg.FMin = 0
	cfg.FMax = 0
	cfg.Lag = 1
	cfg.MaxSize = 1
	return cfg
}

// Validate reports ErrInvalidConfig for settings the segmenter cannot run
// with. An FMax above Nyquist is accepted.
func (c Config) Validate() error {
	switch {
	case c.SampleRate <= 0:
		return fmt.Errorf("sample rate %d: %w", c.SampleRate, ErrInvalidConfig)
	case c.FFTSize < 2 || c.FFTSize%2 != 0:
		return fmt.Errorf("fft size %d must be even: %w", c.FFTSize, ErrInvalidConfig)
	case c.HopLength <= 0:
		return fmt.Errorf("hop length %d: %w", c.HopLength, ErrInvalidConfig)
	case c.Mels <= 0:
		return fmt.Errorf("mel bands %d: %w", c.Mels, ErrInvalidConfig)
	case c.FMin < 0 || (c.FMax > 0 && c.FMax <= c.FMin):
		return fmt.Errorf("frequency range %g-%g: %w", c.FMin, c.FMax, ErrInvalidConfig)
	case c.Lag < 1 || c.MaxSize < 1:
		return fmt.Errorf("lag %d, max size %d: %w", c.Lag, c.MaxSize, ErrInvalidConfig)
	case c.PreMax < 0 || c.PostMax < 0 || c.PreAvg < 0 || c.PostAvg < 0 || c.Wait < 0:
		return fmt.Errorf("negative peak picking window: %w", ErrInvalidConfig)
	}
	return nil
}

// frames converts seconds to whole analysis frames, rounding down.
func (c Config) frames(seconds float64) int {
	return int(seconds * float64(c.SampleRate) / float64(c.HopLength))
}
