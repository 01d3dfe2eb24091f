// SPDX-License-Identifier: MIT

package poly_test

import (
	"fmt"

	"github.com/katalvlaran/polyroots/poly"
)

// ExamplePolynomial_Derivative differentiates x³ − 4x² − 3x + 5.
func ExamplePolynomial_Derivative() {
	p := poly.New(5, -3, -4, 1)
	d := p.Derivative()

	fmt.Println(p)
	fmt.Println(d)
	fmt.Println(d.Coefficients())
	// Output:
	// x^3 - 4 x^2 - 3 x + 5
	// 3 x^2 - 8 x - 3
	// [-3 -8 3]
}

// ExamplePolynomial_Evaluate evaluates a quadratic at both of its roots.
func ExamplePolynomial_Evaluate() {
	p := poly.New(-4, -3, 1) // x² − 3x − 4 = (x+1)(x−4)

	fmt.Println(p.Evaluate(-1), p.Evaluate(4), p.Evaluate(0))
	// Output:
	// 0 0 -4
}
