// SPDX-License-Identifier: MIT

package rootfind_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polyroots/poly"
	"github.com/katalvlaran/polyroots/rootfind"
)

// TestRefine_ExactRootNeedsNoSteps accepts a guess that is already a root.
func TestRefine_ExactRootNeedsNoSteps(t *testing.T) {
	p := poly.New(0, -1, 0, 1)
	res := rootfind.Refine(p, p.Derivative(), []float64{0})

	assert.Equal(t, []float64{0}, res.Roots)
	require.Len(t, res.Seeds, 1)
	assert.Equal(t, 0, res.Seeds[0].Iterations)
	assert.Equal(t, rootfind.Converged, res.Seeds[0].Status)
}

// TestRefine_ZeroSlope stops at a flat point that is not a root.
func TestRefine_ZeroSlope(t *testing.T) {
	p := poly.New(1, 0, 1) // x² + 1
	res := rootfind.Refine(p, p.Derivative(), []float64{0})

	assert.Empty(t, res.Roots)
	assert.Equal(t, rootfind.ZeroSlope, res.Seeds[0].Status)
	assert.Equal(t, 1.0, res.Seeds[0].Residual)
}

// TestRefine_ZeroSlopeOnRoot accepts a double root hit exactly.
func TestRefine_ZeroSlopeOnRoot(t *testing.T) {
	p := poly.New(1, -2, 1) // (x−1)²
	res := rootfind.Refine(p, p.Derivative(), []float64{1})

	assert.Equal(t, []float64{1}, res.Roots)
	assert.Equal(t, rootfind.Converged, res.Seeds[0].Status)
}

// TestRefine_NotConverged caps the iterations of a rootless quadratic.
func TestRefine_NotConverged(t *testing.T) {
	p := poly.New(1, 0, 1)
	res := rootfind.Refine(p, p.Derivative(), []float64{0.5}, rootfind.WithMaxIterations(10))

	assert.Empty(t, res.Roots)
	assert.Equal(t, rootfind.NotConverged, res.Seeds[0].Status)
	assert.Equal(t, 11, res.Seeds[0].Iterations, "first step plus MaxIterations")
	assert.GreaterOrEqual(t, res.Seeds[0].Residual, 1.0)
}

// TestRefine_Diverged stops once an iterate leaves the finite range.
func TestRefine_Diverged(t *testing.T) {
	p := poly.New(1, 1)
	slope := poly.New(1e-320) // tiny but non-zero slope overflows the step
	res := rootfind.Refine(p, slope, []float64{0})

	assert.Empty(t, res.Roots)
	assert.Equal(t, rootfind.Diverged, res.Seeds[0].Status)
	assert.True(t, math.IsInf(res.Seeds[0].X, -1))
	assert.Equal(t, 1, res.Seeds[0].Iterations)
}

// TestRefine_DiscoveryOrder keeps seed order, not numeric order.
func TestRefine_DiscoveryOrder(t *testing.T) {
	p := poly.New(-4, -3, 1) // roots −1 and 4
	res := rootfind.Refine(p, p.Derivative(), []float64{10, -10})

	require.Len(t, res.Roots, 2)
	assert.InDelta(t, 4, res.Roots[0], 1e-9)
	assert.InDelta(t, -1, res.Roots[1], 1e-9)
}

// TestRefine_EmptyGuesses returns an empty, non-nil root set.
func TestRefine_EmptyGuesses(t *testing.T) {
	p := poly.New(-4, -3, 1)
	res := rootfind.Refine(p, p.Derivative(), nil)

	assert.NotNil(t, res.Roots)
	assert.Empty(t, res.Roots)
	assert.Empty(t, res.Seeds)
}

// TestStatus_String names every status.
func TestStatus_String(t *testing.T) {
	assert.Equal(t, "converged", rootfind.Converged.String())
	assert.Equal(t, "duplicate", rootfind.Duplicate.String())
	assert.Equal(t, "not converged", rootfind.NotConverged.String())
	assert.Equal(t, "zero slope", rootfind.ZeroSlope.String())
	assert.Equal(t, "diverged", rootfind.Diverged.String())
	assert.Equal(t, "unknown", rootfind.Status(42).String())
}
