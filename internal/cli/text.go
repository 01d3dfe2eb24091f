// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"github.com/katalvlaran/polyroots/companion"
	"github.com/katalvlaran/polyroots/poly"
)

// Version is the program version reported by --version.
const Version = "Alpha v1.0"

const (
	shortHelp = "Approximate the real roots of a polynomial with Newton's method"

	longHelp = `It is a program that uses Newton's method to approximate roots of a polynomial.

Coefficients start from x^0 and go up, and can be floating point.
If no guesses are given, the program derives one starting point per
monotonic interval from the extrema of the polynomial, so that all real
roots can be found.`

	examples = `  roots -c 5 -3 -4 1
  roots -c 5 0 2 1 -g 0 -10 10 30
  roots -v -c 20 5 8 7 1 -e 0.00005
  roots plot -c 5 -3 -4 1 -o roots.png`

	versionText = `Newton's method program made by Maciej Suski
License: THE BEER-WARE LICENSE. It means you can use it, but if we meet,
         you buy me a beer.
Version: %s
`

	noRootsText = "Sorry! No real roots found!"
)

func printVersion(w io.Writer) {
	fmt.Fprintf(w, versionText, Version)
}

func printBanner(w io.Writer, p poly.Polynomial, cfg *config) {
	fmt.Fprintf(w, "Your polynomial: %s\n\n", p)
	if !cfg.verbose {
		return
	}
	fmt.Fprintf(w, "Coefficients: %s\n", poly.FormatList(p.Coefficients()))
	fmt.Fprintf(w, "Guesses: %s\n\n", poly.FormatList(cfg.guesses))
	fmt.Fprintf(w, "Acceptable error: %s\n\n", poly.FormatFloat(cfg.tolerance))
}

func printRoots(w io.Writer, roots []float64) {
	if len(roots) == 0 {
		fmt.Fprintln(w, noRootsText)
		return
	}
	for i, x := range roots {
		fmt.Fprintf(w, "x%d = %s\n", i, poly.FormatFloat(x))
	}
}

func printReport(w io.Writer, rep companion.Report) {
	if rep.OK() {
		fmt.Fprintln(w, "check: all reference roots found")
		return
	}
	if len(rep.Missing) > 0 {
		fmt.Fprintf(w, "missed: %s\n", poly.FormatList(rep.Missing))
	}
	if len(rep.Spurious) > 0 {
		fmt.Fprintf(w, "spurious: %s\n", poly.FormatList(rep.Spurious))
	}
}
