// SPDX-License-Identifier: EPL-2.0

package onset

// normalize rescales x to [0, 1] in place. It reports false when x is flat.
func normalize(x []float64) bool {
	if len(x) == 0 {
		return false
	}
	lo, hi := x[0], x[0]
	for _, v := range x {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	if hi == lo {
		return false
	}
	span := hi - lo
	for i := range x {
		x[i] = (x[i] - lo) / span
	}
	return true
}

// pickPeaks returns the indices n where x[n] is the maximum of
// x[n-preMax : n+postMax], at least delta above the mean of
// x[n-preAvg : n+postAvg], positive, and more than wait frames after the
// previous pick. Windows are clipped at the edges.
func pickPeaks(x []float64, preMax, postMax, preAvg, postAvg, wait int, delta float64) []int {
	var peaks []int
	last := -wait - 1

	for n, v := range x {
		if v <= 0 {
			continue
		}

		isMax := true
		for i := max(0, n-preMax); i < min(len(x), n+postMax); i++ {
			if x[i] > v {
				isMax = false
				break
			}
		}
		if !isMax {
			continue
		}

		lo, hi := max(0, n-preAvg), min(len(x), n+postAvg)
		var sum float64
		for _, a := range x[lo:hi] {
			sum += a
		}
		if v < sum/float64(hi-lo)+delta {
			continue
		}

		if n > last+wait {
			peaks = append(peaks, n)
			last = n
		}
	}
	return peaks
}

// backtrack moves each onset to the closest local minimum of energy at or
// before it. Frame 0 always counts as a minimum.
func backtrack(onsets []int, energy []float64) []int {
	minima := []int{0}
	for i := 1; i < len(energy)-1; i++ {
		if energy[i] <= energy[i-1] && energy[i] < energy[i+1] {
			minima = append(minima, i)
		}
	}

	out := make([]int, len(onsets))
	j := 0
	for k, o := range onsets {
		for j+1 < len(minima) && minima[j+1] <= o {
			j++
		}
		out[k] = minima[j]
	}
	return out
}
