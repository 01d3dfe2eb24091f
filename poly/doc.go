// SPDX-License-Identifier: MIT

// Package poly provides an immutable single-variable polynomial over float64
// together with the two primitives every root finder needs: evaluation and
// differentiation.
//
// 🚀 Representation
//
//	Coefficients are stored by ascending power:
//	  c[0] + c[1]·x + c[2]·x² + … + c[n]·xⁿ
//	New strips zero coefficients at the high end, so the stored leading
//	coefficient is always non-zero and Degree() is exact. An all-zero (or
//	empty) input yields the empty polynomial with degree −1.
//
// ✨ Operations:
//   - Evaluate  — Σ c[i]·xⁱ summed from the lowest to the highest power
//   - Derivative — (i+1)·c[i+1] at index i, always a fresh value
//   - String    — human-readable form, e.g. "x^3 - 4 x^2 - 3 x + 5"
//
// ⚙️ Usage:
//
//	p := poly.New(5, -3, -4, 1) // x³ − 4x² − 3x + 5
//	y := p.Evaluate(2)          // −9
//	d := p.Derivative()         // 3x² − 8x − 3
//
// A Polynomial is a value: methods never mutate the receiver and returned
// slices are copies, so it is safe to share between goroutines.
package poly
