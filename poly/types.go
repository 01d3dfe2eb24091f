// SPDX-License-Identifier: MIT

package poly

import "errors"

// ErrNonFinite indicates that a coefficient is NaN or ±Inf.
// Returned by Validate; the algorithms themselves never produce it.
var ErrNonFinite = errors.New("poly: coefficient is NaN or Inf")

// Polynomial is an immutable real polynomial with coefficients indexed by power.
//
// The zero value is the empty polynomial (degree −1), which has no roots.
type Polynomial struct {
	coeffs []float64 // ascending powers; coeffs[len-1] != 0 unless empty
}

// formatPrecision is the number of significant digits used by String and
// FormatList, matching the default precision of C-family stream output.
const formatPrecision = 6
