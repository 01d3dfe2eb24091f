// SPDX-License-Identifier: MIT

package chart

import (
	"fmt"
	"image/color"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Image size for PNG and SVG output.
const (
	imageWidth  = 8 * vg.Inch
	imageHeight = 5 * vg.Inch
)

var (
	rootColor    = color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}
	extremaColor = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
)

// Render writes s to w in format f.
func Render(w io.Writer, s Scene, f Format) error {
	if err := s.validate(); err != nil {
		return err
	}

	switch f {
	case PNG, SVG:
		return renderImage(w, s, f.String())
	case HTML:
		return renderHTML(w, s)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
}

func renderImage(w io.Writer, s Scene, format string) error {
	p := plot.New()
	p.Title.Text = "p(x) = " + s.Poly.String()
	p.X.Label.Text = "x"
	p.Y.Label.Text = "p(x)"
	p.X.Min, p.X.Max = s.XMin, s.XMax
	p.Add(plotter.NewGrid())

	xs, ys := s.Curve()
	curve := make(plotter.XYs, len(xs))
	for i := range xs {
		curve[i].X, curve[i].Y = xs[i], ys[i]
	}
	line, err := plotter.NewLine(curve)
	if err != nil {
		return fmt.Errorf("chart: curve: %w", err)
	}
	p.Add(line)
	p.Legend.Add("p(x)", line)

	if err = addPoints(p, "roots", s.Roots, s, draw.CircleGlyph{}, rootColor); err != nil {
		return err
	}
	if err = addPoints(p, "extrema", s.Extrema, s, draw.TriangleGlyph{}, extremaColor); err != nil {
		return err
	}

	wt, err := p.WriterTo(imageWidth, imageHeight, format)
	if err != nil {
		return fmt.Errorf("chart: %s writer: %w", format, err)
	}
	_, err = wt.WriteTo(w)

	return err
}

func addPoints(p *plot.Plot, name string, xs []float64, s Scene, shape draw.GlyphDrawer, c color.Color) error {
	if len(xs) == 0 {
		return nil
	}

	pts := make(plotter.XYs, len(xs))
	for i, x := range xs {
		pts[i].X, pts[i].Y = x, s.Poly.Evaluate(x)
	}
	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("chart: %s: %w", name, err)
	}
	sc.GlyphStyle.Shape = shape
	sc.GlyphStyle.Color = c
	sc.GlyphStyle.Radius = vg.Points(4)
	p.Add(sc)
	p.Legend.Add(name, sc)

	return nil
}

func renderHTML(w io.Writer, s Scene) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "p(x) = " + s.Poly.String(),
			Subtitle: fmt.Sprintf("%d roots, %d extrema", len(s.Roots), len(s.Extrema)),
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "x",
			Type: "value",
			Min:  s.XMin,
			Max:  s.XMax,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:  "p(x)",
			Scale: opts.Bool(true),
		}),
	)

	xs, ys := s.Curve()
	curve := make([]opts.LineData, len(xs))
	for i := range xs {
		curve[i] = opts.LineData{Value: []interface{}{xs[i], ys[i]}}
	}
	line.AddSeries("p(x)", curve)

	line.Overlap(scatterOf("roots", s.Roots, s), scatterOf("extrema", s.Extrema, s))

	return line.Render(w)
}

func scatterOf(name string, xs []float64, s Scene) *charts.Scatter {
	data := make([]opts.ScatterData, len(xs))
	for i, x := range xs {
		data[i] = opts.ScatterData{Value: []interface{}{x, s.Poly.Evaluate(x)}}
	}
	sc := charts.NewScatter()
	sc.AddSeries(name, data)

	return sc
}
