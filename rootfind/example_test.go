// SPDX-License-Identifier: MIT

package rootfind_test

import (
	"fmt"

	"github.com/katalvlaran/polyroots/poly"
	"github.com/katalvlaran/polyroots/rootfind"
)

// ExampleFindRoots solves x³ − x without any starting guesses.
//
// Scenario:
//
//	p(x) = x³ − x = (x+1)·x·(x−1)
//	p′(x) = 3x² − 1 → extrema ±1/√3 → seeds −2/√3, 0, 2/√3
func ExampleFindRoots() {
	p := poly.New(0, -1, 0, 1)

	for i, x := range rootfind.FindRoots(p) {
		fmt.Printf("x%d = %.6f\n", i, x)
	}
	// Output:
	// x0 = -1.000000
	// x1 = 0.000000
	// x2 = 1.000000
}

// ExampleSolve inspects the seeds of x³ − 1, where both seeds reach the same root.
func ExampleSolve() {
	res := rootfind.Solve(poly.New(-1, 0, 0, 1))

	fmt.Println("roots:", res.Roots)
	for _, s := range res.Seeds {
		fmt.Printf("seed %g: %s\n", s.Guess, s.Status)
	}
	// Output:
	// roots: [1]
	// seed -1: converged
	// seed 1: duplicate
}

// ExampleSolve_quadratic shows the closed-form branch.
func ExampleSolve_quadratic() {
	fmt.Println(rootfind.FindRoots(poly.New(-4, -3, 1)))
	fmt.Println(rootfind.FindRoots(poly.New(1, -2, 1)))
	fmt.Println(rootfind.FindRoots(poly.New(1, 0, 1)))
	// Output:
	// [-1 4]
	// [1]
	// []
}
