// SPDX-License-Identifier: EPL-2.0

package spectral

// FrameCount is the number of centered STFT frames for a signal of the given length.
func FrameCount(samples, hop int) int {
	return 1 + samples/hop
}

// ReflectPad extends x by pad samples on both sides, mirroring around the
// edge samples without repeating them. Pads longer than the signal keep
// reflecting. A single sample is repeated.
func ReflectPad(x []float64, pad int) []float64 {
	n := len(x)
	out := make([]float64, n+2*pad)
	for i := range out {
		out[i] = x[reflectIndex(i-pad, n)]
	}
	return out
}

func reflectIndex(i, n int) int {
	if n == 1 {
		return 0
	}
	period := 2 * (n - 1)
	i %= period
	if i < 0 {
		i += period
	}
	if i >= n {
		i = period - i
	}
	return i
}

// Magnitude computes the centered magnitude spectrogram of x, [frame][bin].
// Empty input gives no frames.
func Magnitude(x []float64, nfft, hop int) [][]float64 {
	if len(x) == 0 || nfft <= 0 || hop <= 0 {
		return nil
	}

	padded := ReflectPad(x, nfft/2)
	window := Hann(nfft)
	fft := NewFFT(nfft)
	frame := make([]float64, nfft)

	frames := FrameCount(len(x), hop)
	S := make([][]float64, frames)
	for t := range frames {
		off := t * hop
		for i := range nfft {
			frame[i] = padded[off+i] * window[i]
		}
		S[t] = fft.Magnitude(nil, frame)
	}
	return S
}

// Power is Magnitude squared.
func Power(x []float64, nfft, hop int) [][]float64 {
	S := Magnitude(x, nfft, hop)
	for _, row := range S {
		for k, v := range row {
			row[k] = v * v
		}
	}
	return S
}
