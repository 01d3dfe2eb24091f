// SPDX-License-Identifier: MIT

// Package chart draws a polynomial over an interval together with the roots
// and extrema found for it.
//
// Formats:
//   - PNG, SVG — static images rendered with gonum.org/v1/plot.
//   - HTML     — interactive page rendered with go-echarts.
//
// Usage:
//
//	res := rootfind.Solve(p)
//	scene := chart.NewScene(p, res.Roots, res.Extrema)
//	err := chart.Render(w, scene, chart.PNG)
package chart
