// SPDX-License-Identifier: MIT

// Package polyroots finds the real roots of single-variable polynomials
// without asking for starting guesses.
//
// 🚀 What is inside?
//
//	poly/      — immutable Polynomial value: normalization, evaluation,
//	             derivative, human-readable formatting
//	rootfind/  — the recursive engine: closed forms for degree ≤ 2, extrema
//	             from the derivative's roots, one seed per monotonic interval,
//	             Newton–Raphson refinement and deduplication
//	companion/ — reference roots from companion-matrix eigenvalues (gonum),
//	             used to report roots the Newton engine missed
//	chart/     — PNG/SVG (gonum/plot) and HTML (go-echarts) renderings of a
//	             polynomial with its roots and extrema
//	cmd/roots  — command-line front end
//
// ✨ Why this approach?
//
//   - No guesses needed: between consecutive extrema a polynomial is
//     monotonic, so each interval holds at most one root.
//   - Deterministic: no randomness, identical output for identical input,
//     sequential or concurrent.
//   - Honest about failure: every seed reports whether it converged,
//     duplicated another root, stalled, hit a flat spot or diverged.
//
// Quick example:
//
//	p := poly.New(5, -3, -4, 1) // x³ − 4x² − 3x + 5
//	for i, x := range rootfind.FindRoots(p) {
//	  fmt.Printf("x%d = %g\n", i, x)
//	}
//
// Command line:
//
//	go install github.com/katalvlaran/polyroots/cmd/roots@latest
//	roots -c 5 -3 -4 1
package polyroots
