// SPDX-License-Identifier: MIT

package chart

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/polyroots/poly"
)

var (
	// ErrUnknownFormat indicates an output format other than png, svg or html.
	ErrUnknownFormat = errors.New("chart: unknown output format")

	// ErrEmptyRange indicates XMin ≥ XMax or fewer than two samples.
	ErrEmptyRange = errors.New("chart: empty plotting range")
)

// Format selects the renderer.
type Format int

const (
	// PNG renders a raster image with gonum/plot.
	PNG Format = iota
	// SVG renders a vector image with gonum/plot.
	SVG
	// HTML renders an interactive go-echarts page.
	HTML
)

// String returns the lower-case format name, which is also its file extension.
func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case SVG:
		return "svg"
	case HTML:
		return "html"
	default:
		return "unknown"
	}
}

// ParseFormat maps "png", "svg", "html" or "htm" (any case) to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "png":
		return PNG, nil
	case "svg":
		return SVG, nil
	case "html", "htm":
		return HTML, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FormatFromPath picks the format from the file extension of path.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Defaults for NewScene.
const (
	DefaultSamples  = 200 // curve sample points
	DefaultMargin   = 1.0 // padding around roots and extrema
	DefaultHalfSpan = 5.0 // half-width of the range when there is nothing to frame
)

// Scene is everything a renderer needs.
type Scene struct {
	Poly       poly.Polynomial
	Roots      []float64
	Extrema    []float64
	XMin, XMax float64
	Samples    int
}
