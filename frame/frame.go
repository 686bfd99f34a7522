// Package frame provides a pannable, zoomable plot area with axes, grid
// lines and tick labels, built on panzoom.
package frame

import (
	"fmt"
	"math"

	"github.com/gogpu/ggui"
	"github.com/gogpu/ggui/panzoom"
	"github.com/gogpu/ggui/shape"
)

// Margins leave room for the tick labels: 50 px on the left and 20 px at
// the bottom, 10 px on the other sides.
var Margins = [4]float64{50, 10, -10, -20}

// Label placement relative to the plot area, in pixels.
const (
	yLabelOffsetX = -45
	yLabelOffsetY = -7
)

var (
	gridColor   = ggui.RGBA(0, 0, 0, 0.3)
	borderColor = ggui.Black
	labelColor  = ggui.Black
	background  = ggui.White
)

// New returns a panzoom state with the frame margins.
func New(topLeft, bottomRight ggui.Point, opts ...panzoom.Option) panzoom.State {
	m := Margins
	all := append([]panzoom.Option{panzoom.WithMargins(m[0], m[1], m[2], m[3])}, opts...)
	return panzoom.New(topLeft, bottomRight, all...)
}

// Ticks returns "nice" tick positions in [min(a,b), max(a,b)].
//
// The spacing is the smallest of 1, 2, 5 and 10 times the power of ten
// below span/maxTicks that is strictly larger than span/maxTicks, so
// there are always fewer than maxTicks intervals between ticks.
func Ticks(a, b, maxTicks float64) []float64 {
	if a > b {
		a, b = b, a
	}
	span := b - a
	if !(span > 0) || !(maxTicks > 0) || math.IsInf(span, 0) {
		return nil
	}
	minSep := span / maxTicks
	base := math.Pow(10, math.Floor(math.Log10(minSep)))
	var sep float64
	for _, f := range [...]float64{1, 2, 5, 10} {
		if c := base * f; c > minSep {
			sep = c
			break
		}
	}
	if sep == 0 {
		return nil
	}
	start := math.Ceil(a/sep) * sep
	n := int(math.Ceil((b + 1e-10 - start) / sep))
	ticks := make([]float64, 0, max(n, 0))
	for i := range n {
		t := start + float64(i)*sep
		if t == 0 {
			t = 0 // no "-0" labels
		}
		ticks = append(ticks, t)
	}
	return ticks
}

// Option configures a frame View.
type Option func(*config)

type config struct {
	grid           bool
	xFormat        string
	yFormat        string
	minTickSpacing float64
	view           []panzoom.ViewOption
}

func defaultConfig() config {
	return config{
		grid:           true,
		xFormat:        "%-6.1g",
		yFormat:        "%6.1g",
		minTickSpacing: 50,
	}
}

// WithGrid shows or hides the grid lines. Shown by default.
func WithGrid(show bool) Option {
	return func(c *config) { c.grid = show }
}

// WithTickFormat sets the fmt verbs of the x and y tick labels.
func WithTickFormat(x, y string) Option {
	return func(c *config) { c.xFormat, c.yFormat = x, y }
}

// WithMinTickSpacing sets the minimum distance between ticks in pixels.
// Default 50.
func WithMinTickSpacing(px float64) Option {
	return func(c *config) { c.minTickSpacing = px }
}

// WithSize fixes the widget size; see panzoom.WithSize.
func WithSize(width, height float64) Option {
	return func(c *config) { c.view = append(c.view, panzoom.WithSize(width, height)) }
}

// View returns a frame widget for st. The content widget, if any, is
// drawn clipped to the plot area, under the grid.
func View[T any](name string, st *panzoom.State, content func(ggui.TF) ggui.Widget[T], opts ...Option) ggui.Widget[panzoom.Event[T]] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return panzoom.View(name, st, func(tf ggui.TF) ggui.Widget[T] {
		return overlay(cfg, st.Margins, content, tf)
	}, cfg.view...)
}

func overlay[T any](cfg config, margins [4]float64, content func(ggui.TF) ggui.Widget[T], tf ggui.TF) ggui.Widget[T] {
	vs := tf.ViewS
	bg := shape.RectFilled(vs.Min, vs.Max, background)

	plot := ggui.R(vs.Min.X+margins[0], vs.Min.Y+margins[1], vs.Max.X+margins[2], vs.Max.Y+margins[3])
	if plot.Empty() {
		return ggui.Show[T](bg)
	}
	plotC := ggui.Rect{Min: tf.ToContent(plot.Min), Max: tf.ToContent(plot.Max)}

	spacing := cfg.minTickSpacing
	if spacing <= 0 {
		spacing = 50
	}
	hticks := Ticks(plotC.Max.Y, plotC.Min.Y, plot.Dy()/spacing)
	vticks := Ticks(plotC.Max.X, plotC.Min.X, plot.Dx()/spacing)

	var grid, labels []ggui.Drawable
	for _, tc := range vticks {
		x := tf.ToScreen(ggui.Pt(tc, 0)).X
		grid = append(grid, shape.Line(ggui.Pt(x, vs.Min.Y), ggui.Pt(x, vs.Max.Y), gridColor))
		labels = append(labels, shape.Text(ggui.Pt(x, plot.Max.Y), labelColor, fmt.Sprintf(cfg.xFormat, tc)))
	}
	for _, tc := range hticks {
		y := tf.ToScreen(ggui.Pt(0, tc)).Y
		grid = append(grid, shape.Line(ggui.Pt(vs.Min.X, y), ggui.Pt(vs.Max.X, y), gridColor))
		labels = append(labels, shape.Text(ggui.Pt(plot.Min.X+yLabelOffsetX, y+yLabelOffsetY), labelColor, fmt.Sprintf(cfg.yFormat, tc)))
	}

	return ggui.Orr(
		ggui.Show[T](bg),
		ggui.Child("plot", plot,
			ggui.Optional(content != nil, func() ggui.Widget[T] { return content(tf) }),
			ggui.Optional(cfg.grid, func() ggui.Widget[T] { return ggui.Show[T](grid...) }),
		),
		ggui.Show[T](shape.Rect(plot.Min, plot.Max, borderColor)),
		ggui.Show[T](labels...),
	)
}
