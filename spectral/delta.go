// SPDX-License-Identifier: EPL-2.0

package spectral

import "fmt"

// Delta estimates the order-th time derivative (1 or 2) of a [frame][coef]
// matrix with a Savitzky-Golay filter of the given odd width. Frames past
// either edge repeat the edge frame.
func Delta(S [][]float64, width, order int) ([][]float64, error) {
	if width < 3 || width%2 == 0 {
		return nil, fmt.Errorf("width %d: %w", width, ErrInvalidWidth)
	}

	weights, err := savgolWeights(width, order)
	if err != nil {
		return nil, err
	}

	frames := len(S)
	half := width / 2
	out := make([][]float64, frames)
	for t := range frames {
		row := make([]float64, len(S[t]))
		for j, w := range weights {
			src := S[max(0, min(frames-1, t+j-half))]
			for c := range row {
				row[c] += w * src[c]
			}
		}
		out[t] = row
	}
	return out, nil
}

// savgolWeights are the least-squares derivative weights of a polynomial of
// degree order fitted over a centered window, evaluated at the center.
func savgolWeights(width, order int) ([]float64, error) {
	half := width / 2
	weights := make([]float64, width)

	switch order {
	case 1:
		var denom float64
		for k := -half; k <= half; k++ {
			denom += float64(k * k)
		}
		for k := -half; k <= half; k++ {
			weights[k+half] = float64(k) / denom
		}
	case 2:
		var meanSq float64
		for k := -half; k <= half; k++ {
			meanSq += float64(k * k)
		}
		meanSq /= float64(width)

		var denom float64
		for k := -half; k <= half; k++ {
			d := float64(k*k) - meanSq
			denom += d * d
		}
		for k := -half; k <= half; k++ {
			weights[k+half] = 2 * (float64(k*k) - meanSq) / denom
		}
	default:
		return nil, fmt.Errorf("order %d: %w", order, ErrInvalidOrder)
	}

	return weights, nil
}
