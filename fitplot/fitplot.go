// Package fitplot renders fit wrapper plot requests to PNG files using
// gonum/plot. A *Plot satisfies the fit.Plotter interface, so it can be
// handed straight to the wrappers:
//
//	p := fitplot.New("cavity scan", "frequency [Hz]", "S21")
//	fit.Lorentzian(x, y, fit.ShowFit(), fit.WithPlotter(p))
//	err := p.Save("plots/cavity.png")
package fitplot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Plot accumulates series on a single canvas. The zero value is not
// usable; construct with New. Drawing errors are deferred and reported
// by Save, so intermediate calls stay fire-and-forget like the
// fit.Plotter interface requires.
type Plot struct {
	p      *plot.Plot
	legend bool
	err    error
}

// New returns an empty canvas with the given title and axis labels.
func New(title, xLabel, yLabel string) *Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	return &Plot{p: p}
}

// Plot adds one series. Marker strings follow the usual shorthand: an
// optional color letter (b, g, r, c, m, y, k) followed by "o" or "." for
// scatter points or "-" for a line. An empty or unrecognized style draws
// a line.
func (pl *Plot) Plot(x, y []float64, style, label string) {
	if pl.err != nil {
		return
	}

	if len(x) != len(y) {
		pl.err = fmt.Errorf("fitplot: series %q: x/y length mismatch: %d vs %d", label, len(x), len(y))
		return
	}

	col, scatter := parseStyle(style)

	if scatter {
		s, err := plotter.NewScatter(plotterXY(x, y))
		if err != nil {
			pl.err = fmt.Errorf("fitplot: could not create scatter %q: %w", label, err)
			return
		}

		s.GlyphStyle.Color = col
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		s.GlyphStyle.Radius = vg.Points(2)

		pl.p.Add(s)
		if label != "" {
			pl.p.Legend.Add(label, s)
		}

		return
	}

	l, err := plotter.NewLine(plotterXY(x, y))
	if err != nil {
		pl.err = fmt.Errorf("fitplot: could not create line %q: %w", label, err)
		return
	}

	l.LineStyle.Color = col
	l.LineStyle.Width = vg.Points(1)

	pl.p.Add(l)
	if label != "" {
		pl.p.Legend.Add(label, l)
	}
}

// Legend toggles legend rendering for the saved file.
func (pl *Plot) Legend(on bool) { pl.legend = on }

// Err returns the first error recorded by Plot, if any.
func (pl *Plot) Err() error { return pl.err }

// Save writes the canvas as a 15cm square PNG. Any error deferred from
// earlier Plot calls is returned instead of writing a partial figure.
func (pl *Plot) Save(filename string) error {
	if pl.err != nil {
		return pl.err
	}

	pl.p.Legend.Top = true
	if !pl.legend {
		pl.p.Legend = plot.NewLegend()
	}

	if err := pl.p.Save(15*vg.Centimeter, 15*vg.Centimeter, filename); err != nil {
		return fmt.Errorf("fitplot: could not save plot: %w", err)
	}

	return nil
}

// parseStyle maps a marker shorthand onto a color and a scatter flag.
func parseStyle(style string) (color.Color, bool) {
	col := color.Color(color.Black)
	scatter := false

	for _, r := range style {
		switch r {
		case 'b':
			col = color.RGBA{B: 255, A: 255}
		case 'g':
			col = color.RGBA{G: 160, A: 255}
		case 'r':
			col = color.RGBA{R: 220, A: 255}
		case 'c':
			col = color.RGBA{G: 200, B: 220, A: 255}
		case 'm':
			col = color.RGBA{R: 200, B: 200, A: 255}
		case 'y':
			col = color.RGBA{R: 220, G: 200, A: 255}
		case 'k':
			col = color.Black
		case 'o', '.':
			scatter = true
		case '-':
			scatter = false
		}
	}

	return col, scatter
}

// plotterXY provides a plotter.XYs value based on the given x and y data.
func plotterXY(x, y []float64) plotter.XYs {
	xy := make(plotter.XYs, len(x))
	for i := range x {
		xy[i].X = x[i]
		xy[i].Y = y[i]
	}

	return xy
}
