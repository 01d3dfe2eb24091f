// SPDX-License-Identifier: MIT

package poly

import (
	"math"
	"strconv"
	"strings"
)

// String renders p from the highest power down, e.g. "x^3 - 4 x^2 - 3 x + 5".
//
// Zero terms are skipped, a coefficient of magnitude 1 is omitted for
// non-constant terms, and the empty polynomial renders as "0".
func (p Polynomial) String() string {
	if p.IsZero() {
		return "0"
	}

	var sb strings.Builder
	top := len(p.coeffs) - 1
	for i := top; i >= 0; i-- {
		c := p.coeffs[i]
		if c == 0 {
			continue
		}

		switch {
		case i == top && c < 0:
			sb.WriteByte('-')
		case c < 0:
			sb.WriteString(" - ")
		case i < top:
			sb.WriteString(" + ")
		}

		mag := math.Abs(c)
		if mag != 1 || i == 0 {
			sb.WriteString(FormatFloat(mag))
			if i > 0 {
				sb.WriteByte(' ')
			}
		}
		if i > 0 {
			sb.WriteByte('x')
		}
		if i > 1 {
			sb.WriteByte('^')
			sb.WriteString(strconv.Itoa(i))
		}
	}

	return sb.String()
}

// FormatFloat formats v with six significant digits in %g style
// ("-5", "0.333333", "1e-05").
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', formatPrecision, 64)
}

// FormatList renders xs as "{ a, b, c }", or "{ }" when xs is empty.
func FormatList(xs []float64) string {
	if len(xs) == 0 {
		return "{ }"
	}

	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = FormatFloat(x)
	}

	return "{ " + strings.Join(parts, ", ") + " }"
}
