// SPDX-License-Identifier: MIT

// Package rootfind approximates every real root of a polynomial without
// asking the caller for starting guesses.
//
// 🚀 How it works
//
//	Between two consecutive extrema a polynomial is monotonic, so it has at
//	most one root there. The extrema are the roots of the derivative, which
//	has one degree less, so the same procedure applies to it recursively
//	until a closed form takes over:
//
//	  degree < 1  → no roots
//	  degree 1    → −a0/a1
//	  degree 2    → quadratic formula (Δ < 0: none, Δ = 0: one, Δ > 0: two)
//	  (closed-form values that overflow to ±Inf are dropped)
//	  degree ≥ 3  → roots of p′ (sorted) → one seed per monotonic interval
//	                → Newton–Raphson refinement of every seed
//
//	Seeds for extrema e₀ < e₁ < … < e_{k−1}:
//	  k = 0  → [0]
//	  k = 1  → [e₀−1, e₀+1]
//	  k ≥ 2  → [½(3e₀−e₁), ½(e₀+e₁), …, ½(e_{k−2}+e_{k−1}), ½(3e_{k−1}−e_{k−2})]
//
// ✨ Guarantees:
//   - Deterministic: identical input and options give bit-identical output,
//     also with WithWorkers(n) for n > 1.
//   - Every returned root x satisfies |p(x)| < Tolerance.
//   - No two returned roots are equal (exactly, or within MergeTolerance).
//   - No public function returns an error or panics on polynomial input;
//     "no real roots" is the empty result.
//
// ⚠️ Limitations:
//
//	Newton's method is not globally convergent. A seed that stalls, hits a
//	zero slope or diverges is dropped from the root set; Result.Seeds tells
//	which seed failed and why. Roots of high-degree or ill-conditioned
//	polynomials may be missed.
//
// ⚙️ Usage:
//
//	p := poly.New(0, -1, 0, 1) // x³ − x
//	roots := rootfind.FindRoots(p)
//	// roots == [-1 0 1] (discovery order)
//
//	res := rootfind.Solve(p,
//	  rootfind.WithTolerance(1e-9),
//	  rootfind.WithLogger(slog.Default()),
//	)
//	for _, s := range res.Seeds {
//	  fmt.Println(s.Guess, s.Status)
//	}
package rootfind
