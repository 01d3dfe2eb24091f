// SPDX-License-Identifier: MIT

package rootfind

import (
	"math"
	"slices"

	"github.com/katalvlaran/polyroots/poly"
)

// Solve finds the real roots of p. See the package documentation for the
// algorithm. The recursion depth equals deg(p) − 2.
//
// Complexity: O(deg(p)² · MaxIterations · deg(p)) time in the worst case,
// O(deg(p)²) memory.
func Solve(p poly.Polynomial, opts ...Option) Result {
	return solve(p, gatherOptions(opts...))
}

// FindRoots returns only the root set of Solve.
func FindRoots(p poly.Polynomial, opts ...Option) []float64 {
	return Solve(p, opts...).Roots
}

// SolveFrom skips seed synthesis and refines the supplied guesses against p
// and its derivative. With no guesses it behaves like Solve.
func SolveFrom(p poly.Polynomial, guesses []float64, opts ...Option) Result {
	o := gatherOptions(opts...)
	if len(guesses) == 0 {
		return solve(p, o)
	}
	o.Logger.Debug("refining supplied guesses",
		"coefficients", poly.FormatList(p.Coefficients()),
		"guesses", poly.FormatList(guesses),
	)

	return refine(p, p.Derivative(), guesses, o)
}

func solve(p poly.Polynomial, o Options) Result {
	o.Logger.Debug("finding roots",
		"degree", p.Degree(),
		"coefficients", poly.FormatList(p.Coefficients()),
	)

	switch n := p.Degree(); {
	case n < 1:
		return Result{Roots: []float64{}}
	case n == 1:
		return Result{Roots: finite(-p.Coefficient(0) / p.Coefficient(1))}
	case n == 2:
		return Result{Roots: finite(quadratic(p.Coefficient(0), p.Coefficient(1), p.Coefficient(2))...)}
	}

	d := p.Derivative()
	extrema := solve(d, o).Roots
	slices.Sort(extrema)
	o.Logger.Debug("extrema located",
		"degree", p.Degree(),
		"extrema", poly.FormatList(extrema),
	)

	res := refine(p, d, Seeds(extrema), o)
	res.Extrema = extrema

	return res
}

// quadratic solves a2·x² + a1·x + a0 = 0 for a2 ≠ 0, smaller root first.
func quadratic(a0, a1, a2 float64) []float64 {
	delta := a1*a1 - 4*a2*a0
	if delta < 0 || math.IsNaN(delta) {
		return []float64{}
	}

	sq := math.Sqrt(delta)
	lo := (-a1 - sq) / (2 * a2)
	if delta == 0 {
		return []float64{lo}
	}
	hi := (-a1 + sq) / (2 * a2)
	if hi < lo {
		lo, hi = hi, lo
	}

	return []float64{lo, hi}
}

// finite keeps the values representable as float64. Closed forms overflow to
// ±Inf when a coefficient ratio exceeds the float64 range.
func finite(xs ...float64) []float64 {
	out := make([]float64, 0, len(xs))
	for _, x := range xs {
		if !math.IsInf(x, 0) && !math.IsNaN(x) {
			out = append(out, x)
		}
	}

	return out
}
