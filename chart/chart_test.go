// SPDX-License-Identifier: MIT

package chart_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polyroots/chart"
	"github.com/katalvlaran/polyroots/poly"
	"github.com/katalvlaran/polyroots/rootfind"
)

func TestParseFormat(t *testing.T) {
	cases := map[string]chart.Format{
		"png": chart.PNG, ".PNG": chart.PNG,
		"svg": chart.SVG,
		"html": chart.HTML, "htm": chart.HTML,
	}
	for name, want := range cases {
		got, err := chart.ParseFormat(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := chart.ParseFormat("gif")
	assert.ErrorIs(t, err, chart.ErrUnknownFormat)
}

func TestFormatFromPath(t *testing.T) {
	f, err := chart.FormatFromPath("out/roots.svg")
	require.NoError(t, err)
	assert.Equal(t, chart.SVG, f)
	assert.Equal(t, "svg", f.String())

	_, err = chart.FormatFromPath("roots")
	assert.ErrorIs(t, err, chart.ErrUnknownFormat)
}

// TestNewScene_Range frames roots and extrema with a unit margin.
func TestNewScene_Range(t *testing.T) {
	s := chart.NewScene(poly.New(0, -1, 0, 1), []float64{-1, 0, 1}, []float64{-0.5, 0.5})
	assert.Equal(t, -2.0, s.XMin)
	assert.Equal(t, 2.0, s.XMax)
	assert.Equal(t, chart.DefaultSamples, s.Samples)

	empty := chart.NewScene(poly.New(1, 0, 1), nil, nil)
	assert.Equal(t, -chart.DefaultHalfSpan, empty.XMin)
	assert.Equal(t, chart.DefaultHalfSpan, empty.XMax)
}

// TestScene_Curve samples both endpoints.
func TestScene_Curve(t *testing.T) {
	s := chart.Scene{Poly: poly.New(0, 1), XMin: -1, XMax: 1, Samples: 3}
	xs, ys := s.Curve()
	assert.Equal(t, []float64{-1, 0, 1}, xs)
	assert.Equal(t, []float64{-1, 0, 1}, ys)
}

func TestRender_Formats(t *testing.T) {
	p := poly.New(5, -3, -4, 1)
	res := rootfind.Solve(p)
	scene := chart.NewScene(p, res.Roots, res.Extrema)

	var png bytes.Buffer
	require.NoError(t, chart.Render(&png, scene, chart.PNG))
	assert.True(t, bytes.HasPrefix(png.Bytes(), []byte("\x89PNG")), "PNG signature expected")

	var svg bytes.Buffer
	require.NoError(t, chart.Render(&svg, scene, chart.SVG))
	assert.Contains(t, svg.String(), "<svg")

	var html bytes.Buffer
	require.NoError(t, chart.Render(&html, scene, chart.HTML))
	assert.Contains(t, html.String(), "echarts")
}

func TestRender_Errors(t *testing.T) {
	var buf bytes.Buffer
	bad := chart.Scene{Poly: poly.New(1), XMin: 1, XMax: 1, Samples: 10}
	assert.ErrorIs(t, chart.Render(&buf, bad, chart.PNG), chart.ErrEmptyRange)

	ok := chart.NewScene(poly.New(1), nil, nil)
	assert.ErrorIs(t, chart.Render(&buf, ok, chart.Format(9)), chart.ErrUnknownFormat)
}
