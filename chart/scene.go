// SPDX-License-Identifier: MIT

package chart

import (
	"math"
	"slices"

	"github.com/katalvlaran/polyroots/poly"
)

// NewScene frames the roots and extrema of p with DefaultMargin on each side.
// Without any point of interest the range is [−DefaultHalfSpan, DefaultHalfSpan].
func NewScene(p poly.Polynomial, roots, extrema []float64) Scene {
	s := Scene{
		Poly:    p,
		Roots:   slices.Clone(roots),
		Extrema: slices.Clone(extrema),
		XMin:    -DefaultHalfSpan,
		XMax:    DefaultHalfSpan,
		Samples: DefaultSamples,
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, xs := range [][]float64{roots, extrema} {
		for _, x := range xs {
			lo, hi = math.Min(lo, x), math.Max(hi, x)
		}
	}
	if lo <= hi {
		s.XMin, s.XMax = lo-DefaultMargin, hi+DefaultMargin
	}

	return s
}

// Curve samples the polynomial uniformly over [XMin, XMax].
func (s Scene) Curve() (xs, ys []float64) {
	n := s.Samples
	xs = make([]float64, n)
	ys = make([]float64, n)
	step := (s.XMax - s.XMin) / float64(n-1)
	for i := 0; i < n; i++ {
		x := s.XMin + float64(i)*step
		xs[i], ys[i] = x, s.Poly.Evaluate(x)
	}

	return xs, ys
}

func (s Scene) validate() error {
	if !(s.XMin < s.XMax) || s.Samples < 2 {
		return ErrEmptyRange
	}

	return nil
}
