// SPDX-License-Identifier: MIT

package poly

import "math"

// New builds a Polynomial from coefficients ordered from x⁰ upward.
// The input is copied and zero coefficients at the high end are stripped.
//
// Complexity: O(n) time and memory.
func New(coeffs ...float64) Polynomial {
	n := len(coeffs)
	for n > 0 && coeffs[n-1] == 0 {
		n--
	}
	if n == 0 {
		return Polynomial{}
	}

	c := make([]float64, n)
	copy(c, coeffs[:n])

	return Polynomial{coeffs: c}
}

// Degree returns the index of the highest non-zero coefficient, or −1
// for the empty polynomial.
func (p Polynomial) Degree() int { return len(p.coeffs) - 1 }

// IsZero reports whether p is the empty polynomial.
func (p Polynomial) IsZero() bool { return len(p.coeffs) == 0 }

// Coefficients returns a copy of the normalized coefficients.
func (p Polynomial) Coefficients() []float64 {
	out := make([]float64, len(p.coeffs))
	copy(out, p.coeffs)

	return out
}

// Coefficient returns the coefficient of xⁱ, or 0 when i is out of range.
func (p Polynomial) Coefficient(i int) float64 {
	if i < 0 || i >= len(p.coeffs) {
		return 0
	}

	return p.coeffs[i]
}

// IsFinite reports whether every coefficient is a finite number.
func (p Polynomial) IsFinite() bool {
	for _, c := range p.coeffs {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}

	return true
}

// Validate returns ErrNonFinite when a coefficient is NaN or ±Inf.
func (p Polynomial) Validate() error {
	if !p.IsFinite() {
		return ErrNonFinite
	}

	return nil
}

// Evaluate computes Σ c[i]·xⁱ for i = 0..Degree().
//
// Terms are accumulated from the lowest power to the highest and each power
// is taken with math.Pow, so results are reproducible bit for bit across
// runs. Non-finite results are returned as is; interpreting them is up to
// the caller.
func (p Polynomial) Evaluate(x float64) float64 {
	var result float64
	for i, c := range p.coeffs {
		result += math.Pow(x, float64(i)) * c
	}

	return result
}

// Derivative returns dp/dx: the coefficient at index i is (i+1)·c[i+1].
// Constants and the empty polynomial differentiate to the empty polynomial.
func (p Polynomial) Derivative() Polynomial {
	if len(p.coeffs) < 2 {
		return Polynomial{}
	}

	d := make([]float64, len(p.coeffs)-1)
	for i := 1; i < len(p.coeffs); i++ {
		d[i-1] = float64(i) * p.coeffs[i]
	}

	return New(d...)
}

// Evaluate is the function form of Polynomial.Evaluate.
func Evaluate(p Polynomial, x float64) float64 { return p.Evaluate(x) }

// Derivative is the function form of Polynomial.Derivative.
func Derivative(p Polynomial) Polynomial { return p.Derivative() }
