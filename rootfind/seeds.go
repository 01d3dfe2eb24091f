// SPDX-License-Identifier: MIT

package rootfind

// Seeds synthesizes one starting guess per monotonic interval delimited by
// the ascending extrema.
//
//   - no extrema:  [0] — the polynomial is monotonic, start at the origin.
//   - one extremum e: [e−1, e+1] — probe both sides of the turning point.
//   - k ≥ 2 extrema: ½(3e₀−e₁) before the first, the midpoint of every
//     consecutive pair, and ½(3e_{k−1}−e_{k−2}) after the last; k+1 seeds.
//
// The caller must pass extrema in ascending order.
func Seeds(extrema []float64) []float64 {
	k := len(extrema)
	switch k {
	case 0:
		return []float64{0}
	case 1:
		return []float64{extrema[0] - 1, extrema[0] + 1}
	}

	guesses := make([]float64, 0, k+1)
	guesses = append(guesses, 0.5*(3*extrema[0]-extrema[1]))
	for i := 0; i < k-1; i++ {
		guesses = append(guesses, 0.5*(extrema[i]+extrema[i+1]))
	}
	guesses = append(guesses, 0.5*(3*extrema[k-1]-extrema[k-2]))

	return guesses
}
