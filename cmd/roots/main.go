// SPDX-License-Identifier: MIT

// Command roots approximates the real roots of a polynomial.
//
// Usage:
//
//	roots -c 5 -3 -4 1
//	roots -c 5 0 2 1 -g 0 -10 10 30
//	roots -v -c 20 5 8 7 1 -e 0.00005
//	roots plot -c 5 -3 -4 1 -o roots.svg
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/polyroots/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
