// SPDX-License-Identifier: EPL-2.0

package utils

const (
	pcm16Scale   = 32767.0
	pcm16Divisor = 32768.0
)

// Float32ToInt16 quantizes a normalized sample to 16-bit PCM, clamping to [-1, 1].
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// 32767 on both sides keeps the mapping symmetric
	return int16(x * pcm16Scale)
}

// Int16ToFloat32 maps a 16-bit PCM sample into [-1, 1).
func Int16ToFloat32(v int16) float32 {
	return float32(v) / pcm16Divisor
}

// IntToFloat32 maps a signed PCM sample of the given bit depth into [-1, 1).
// Unknown bit depths are treated as 16-bit.
func IntToFloat32(v int, bitDepth int) float32 {
	var full float32
	switch bitDepth {
	case 8:
		full = 128.0
	case 24:
		full = 8388608.0
	case 32:
		full = 2147483648.0
	default:
		full = pcm16Divisor
	}
	return float32(v) / full
}

// Float32ToInt quantizes a normalized sample to a signed integer of the given bit depth.
func Float32ToInt(x float32, bitDepth int) int {
	x = Lim(x, -1, 1)
	switch bitDepth {
	case 8:
		return int(x * 127)
	case 24:
		return int(x * 8388607)
	case 32:
		return int(float64(x) * 2147483647)
	default:
		return int(x * pcm16Scale)
	}
}
