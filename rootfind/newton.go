// SPDX-License-Identifier: MIT

package rootfind

import (
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/polyroots/poly"
)

// Refine runs Newton–Raphson from every guess and returns the deduplicated
// set of converged roots.
//
// Per seed:
//  1. x ← guess, y ← p(x).
//  2. While y ≠ 0 and at most MaxIterations+1 steps were taken:
//     stop on p′(x) = 0 (ZeroSlope), otherwise x ← x − y/p′(x), y ← p(x);
//     stop if x is no longer finite (Diverged).
//  3. Accept x if |y| < Tolerance and no earlier seed produced an equal root.
//
// Seeds are independent. With Workers > 1 they are iterated concurrently and
// deduplicated afterwards in seed order, so the result matches a sequential run.
//
// Complexity: O(len(guesses) · MaxIterations · deg(p)) time, O(len(guesses)) memory.
func Refine(p, d poly.Polynomial, guesses []float64, opts ...Option) Result {
	return refine(p, d, guesses, gatherOptions(opts...))
}

func refine(p, d poly.Polynomial, guesses []float64, o Options) Result {
	seeds := make([]Seed, len(guesses))

	if o.Workers > 1 && len(guesses) > 1 {
		var g errgroup.Group
		g.SetLimit(o.Workers)
		for i, guess := range guesses {
			g.Go(func() error {
				seeds[i] = iterate(p, d, guess, o)
				return nil
			})
		}
		_ = g.Wait() // workers never fail
	} else {
		for i, guess := range guesses {
			seeds[i] = iterate(p, d, guess, o)
		}
	}

	// Single accumulation point keeps the no-duplicate invariant.
	roots := make([]float64, 0, len(seeds))
	for i := range seeds {
		s := &seeds[i]
		if s.Status == Converged {
			if containsRoot(roots, s.X, o.MergeTolerance) {
				s.Status = Duplicate
			} else {
				roots = append(roots, s.X)
			}
		}
		o.Logger.Debug("seed refined",
			"guess", s.Guess,
			"x", s.X,
			"residual", s.Residual,
			"iterations", s.Iterations,
			"status", s.Status.String(),
		)
	}

	return Result{Roots: roots, Seeds: seeds}
}

// iterate polishes a single guess. The returned Status is one of Converged,
// NotConverged, ZeroSlope or Diverged; duplicates are decided by the caller.
func iterate(p, d poly.Polynomial, guess float64, o Options) Seed {
	var (
		x      = guess
		y      = p.Evaluate(x)
		steps  int
		status = NotConverged
	)

	for ; y != 0 && steps <= o.MaxIterations; steps++ {
		slope := d.Evaluate(x)
		if slope == 0 {
			status = ZeroSlope
			break
		}
		x -= y / slope
		y = p.Evaluate(x)
		if math.IsNaN(x) || math.IsInf(x, 0) {
			status = Diverged
			steps++
			break
		}
	}

	if status != Diverged && math.Abs(y) < o.Tolerance {
		status = Converged
	}

	return Seed{Guess: guess, X: x, Residual: y, Iterations: steps, Status: status}
}

// containsRoot reports whether x equals an accepted root, exactly when
// eps == 0 and within eps otherwise.
func containsRoot(roots []float64, x, eps float64) bool {
	for _, r := range roots {
		if r == x || (eps > 0 && math.Abs(r-x) <= eps) {
			return true
		}
	}

	return false
}
