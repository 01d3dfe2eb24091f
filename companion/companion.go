// SPDX-License-Identifier: MIT

package companion

import (
	"math"
	"math/cmplx"
	"slices"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/polyroots/poly"
)

// Matrix returns the n×n companion matrix of p (n = deg p): ones on the
// sub-diagonal and −c[i]/c[n] in the last column. It returns nil when
// deg p < 1.
func Matrix(p poly.Polynomial) *mat.Dense {
	n := p.Degree()
	if n < 1 {
		return nil
	}

	lead := p.Coefficient(n)
	m := mat.NewDense(n, n, nil)
	for i := 1; i < n; i++ {
		m.Set(i, i-1, 1)
	}
	for i := 0; i < n; i++ {
		m.Set(i, n-1, -p.Coefficient(i)/lead)
	}

	return m
}

// Roots returns the real eigenvalues of the companion matrix (|imag| ≤ imagTol)
// in ascending order. Repeated roots may appear more than once.
//
// Complexity: O(n³) time, O(n²) memory.
func Roots(p poly.Polynomial, imagTol float64) ([]float64, error) {
	if !(imagTol >= 0) {
		return nil, ErrBadTolerance
	}
	m := Matrix(p)
	if m == nil {
		return nil, nil
	}

	var eig mat.Eigen
	if ok := eig.Factorize(m, mat.EigenNone); !ok {
		return nil, ErrEigenFailed
	}

	var roots []float64
	for _, v := range eig.Values(nil) {
		if math.Abs(imag(v)) <= imagTol && !cmplx.IsNaN(v) {
			roots = append(roots, real(v))
		}
	}
	slices.Sort(roots)

	return roots, nil
}

// Compare matches found roots against reference roots within tol.
// Duplicates on either side match the same counterpart.
func Compare(found, reference []float64, tol float64) Report {
	var rep Report
	for _, r := range reference {
		if !near(found, r, tol) && !near(rep.Missing, r, tol) {
			rep.Missing = append(rep.Missing, r)
		}
	}
	for _, x := range found {
		if !near(reference, x, tol) {
			rep.Spurious = append(rep.Spurious, x)
		}
	}

	return rep
}

func near(xs []float64, v, tol float64) bool {
	for _, x := range xs {
		if scalar.EqualWithinAbs(x, v, tol) {
			return true
		}
	}

	return false
}
