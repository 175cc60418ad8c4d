// SPDX-License-Identifier: EPL-2.0

package feature

import "fmt"

// Config holds the frame layout and descriptor parameters of an Extractor.
type Config struct {
	FFTSize        int
	HopLength      int
	RolloffPercent float64 // fraction of spectral magnitude below the rolloff frequency
	MFCC           int     // cepstral coefficients per frame
	Mels           int
	DeltaWidth     int // Savitzky-Golay window in frames, odd
	VectorMaxMs    int // Vectorize looks at most this far into a region
}

// DefaultConfig is 2048-point frames, 85% rolloff and 13 MFCCs over 128 mels.
func DefaultConfig() Config {
	return Config{
		FFTSize:        2048,
		HopLength:      512,
		RolloffPercent: 0.85,
		MFCC:           13,
		Mels:           128,
		DeltaWidth:     9,
		VectorMaxMs:    1000,
	}
}

// Validate reports ErrInvalidConfig for settings Describe or Vectorize cannot use.
func (c Config) Validate() error {
	switch {
	case c.FFTSize < 2 || c.FFTSize%2 != 0:
		return fmt.Errorf("fft size %d must be even: %w", c.FFTSize, ErrInvalidConfig)
	case c.HopLength <= 0:
		return fmt.Errorf("hop length %d: %w", c.HopLength, ErrInvalidConfig)
	case c.RolloffPercent <= 0 || c.RolloffPercent >= 1:
		return fmt.Errorf("rolloff percent %g outside (0,1): %w", c.RolloffPercent, ErrInvalidConfig)
	case c.Mels <= 0 || c.MFCC <= 0 || c.MFCC > c.Mels:
		return fmt.Errorf("%d mfcc over %d mels: %w", c.MFCC, c.Mels, ErrInvalidConfig)
	case c.DeltaWidth < 3 || c.DeltaWidth%2 == 0:
		return fmt.Errorf("delta width %d: %w", c.DeltaWidth, ErrInvalidConfig)
	case c.VectorMaxMs <= 0:
		return fmt.Errorf("vector max ms %d: %w", c.VectorMaxMs, ErrInvalidConfig)
	}
	return nil
}
