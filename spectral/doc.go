// SPDX-License-Identifier: EPL-2.0

// Package spectral holds the frequency-domain kernel shared by the onset,
// feature and stretch packages.
//
// # Transforms
//
// FFT wraps gonum's real FFT for one fixed length. Forward returns the
// n/2+1 non-redundant coefficients, Inverse is normalized so that
// Inverse(Forward(x)) == x.
//
// # Spectrograms
//
// Magnitude and Power compute a centered short-time Fourier transform: the
// signal is reflect-padded by half a window on each side and framed with a
// periodic Hann window, giving 1 + len(x)/hop frames. Spectrograms are
// indexed [frame][bin].
//
//	S := spectral.Power(mono, 2048, 512)
//	fb := spectral.MelFilterbank(22050, 2048, 128, 0, 11025)
//	mel := spectral.ApplyFilterbank(fb, S)
//	db := spectral.PowerToDb(mel, 1e-10, 80)
//
// # Cepstra and Deltas
//
// DCT computes orthonormal DCT-II coefficients; Delta estimates first and
// second time derivatives of a [frame][coef] matrix with a Savitzky-Golay
// filter and nearest-edge extension.
//
// # Concurrency
//
// Package-level functions are safe for concurrent use. An FFT value keeps
// scratch buffers and must not be shared between goroutines.
package spectral
