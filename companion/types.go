// SPDX-License-Identifier: MIT

package companion

import "errors"

var (
	// ErrEigenFailed indicates that the eigenvalue factorization did not converge.
	ErrEigenFailed = errors.New("companion: eigen decomposition failed")

	// ErrBadTolerance indicates a negative or NaN tolerance.
	ErrBadTolerance = errors.New("companion: tolerance must be non-negative")
)

// DefaultImagTolerance is the largest |imag| of an eigenvalue still treated as
// real. Double roots split into conjugate pairs of roughly √ε magnitude, so
// the bound is well above machine precision.
const DefaultImagTolerance = 1e-7

// Report lists the disagreements between two root sets.
type Report struct {
	Missing  []float64 // reference roots with no found root nearby
	Spurious []float64 // found roots with no reference root nearby
}

// OK reports whether both sets agree.
func (r Report) OK() bool { return len(r.Missing) == 0 && len(r.Spurious) == 0 }
