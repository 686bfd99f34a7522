// Package shape provides passive drawings for overlays: lines,
// rectangles, circles, polylines, polygons, text, images, ellipses and
// scatter markers.
//
// Coordinates are in screen space unless a Transform option is given, in
// which case they are content-space coordinates mapped through the TF.
// The geometry is computed once at construction; Draw only issues the
// canvas calls. Shapes are ggui.Drawable and become widgets with
// ggui.Show.
package shape

import (
	"errors"
	"math"

	"github.com/gogpu/ggui"
)

var (
	// ErrNonUniformTransform is returned when drawing a circle through a
	// transform that scales the axes differently.
	ErrNonUniformTransform = errors.New("shape: circle needs an aspect-preserving transform")

	// ErrNotPositiveDefinite is returned for an ellipse whose covariance
	// is not positive definite.
	ErrNotPositiveDefinite = errors.New("shape: covariance is not positive definite")

	// ErrInvalidMarker is returned by Scatter for an unknown marker.
	ErrInvalidMarker = errors.New("shape: invalid marker")

	// ErrMismatchedInput is returned by Ellipses when the means and
	// covariances differ in length.
	ErrMismatchedInput = errors.New("shape: means and covariances differ in length")
)

// coordLimit bounds coordinates of rectangles and text; larger values
// make the rasterizer drop lines or stall on text.
const coordLimit = 8192

type options struct {
	thickness  float64
	rounding   float64
	segments   int
	closed     bool
	markerSize float64
	uv0, uv1   ggui.Point
	tf         *ggui.TF
}

func newOptions(opts []Option) options {
	o := options{
		thickness:  1,
		segments:   16,
		markerSize: 10,
		uv1:        ggui.Pt(1, 1),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Option configures a shape.
type Option func(*options)

// Thickness sets the stroke width in pixels. Default 1.
func Thickness(px float64) Option {
	return func(o *options) { o.thickness = px }
}

// Rounding sets the corner radius of rectangles in pixels.
func Rounding(px float64) Option {
	return func(o *options) { o.rounding = px }
}

// Segments sets the number of segments of circles and ellipses.
// Default 16.
func Segments(n int) Option {
	return func(o *options) { o.segments = n }
}

// Closed joins the last point of a polyline to the first.
func Closed() Option {
	return func(o *options) { o.closed = true }
}

// MarkerSize sets the scatter marker size in pixels. Default 10.
func MarkerSize(px float64) Option {
	return func(o *options) { o.markerSize = px }
}

// UV sets the normalized texture region drawn by Image. Default (0,0) to
// (1,1).
func UV(uv0, uv1 ggui.Point) Option {
	return func(o *options) { o.uv0, o.uv1 = uv0, uv1 }
}

// Transform maps the shape's coordinates from content space through tf.
func Transform(tf ggui.TF) Option {
	return func(o *options) { o.tf = &tf }
}

func (o *options) point(p ggui.Point) ggui.Point {
	if o.tf == nil {
		return p
	}
	return o.tf.ToScreen(p)
}

func (o *options) points(pts []ggui.Point) []ggui.Point {
	out := make([]ggui.Point, len(pts))
	for i, p := range pts {
		out[i] = o.point(p)
	}
	return out
}

// Shape is a precomputed drawing.
type Shape struct {
	err  error
	draw func(c ggui.Canvas)
}

var _ ggui.Drawable = Shape{}

// Draw issues the shape's canvas calls, or returns the error found when
// the shape was built.
func (s Shape) Draw(ctx *ggui.Context) error {
	if s.err != nil {
		return s.err
	}
	if s.draw != nil {
		s.draw(ctx.Canvas)
	}
	return nil
}

// Err returns the construction error, if any.
func (s Shape) Err() error {
	return s.err
}

func failed(err error) Shape {
	return Shape{err: err}
}

func clampCoord(v float64) float64 {
	return math.Max(-coordLimit, math.Min(coordLimit, v))
}

func clampPoint(p ggui.Point) ggui.Point {
	return ggui.Pt(clampCoord(p.X), clampCoord(p.Y))
}

// Line draws a segment from p0 to p1.
func Line(p0, p1 ggui.Point, col ggui.Color, opts ...Option) Shape {
	o := newOptions(opts)
	p0, p1 = o.point(p0), o.point(p1)
	return Shape{draw: func(c ggui.Canvas) {
		c.Line(p0, p1, col, o.thickness)
	}}
}

// Rect strokes the rectangle with corners p0 and p1.
func Rect(p0, p1 ggui.Point, col ggui.Color, opts ...Option) Shape {
	o := newOptions(opts)
	r := ggui.Rect{Min: clampPoint(o.point(p0)), Max: clampPoint(o.point(p1))}
	return Shape{draw: func(c ggui.Canvas) {
		c.Rect(r, col, o.thickness, o.rounding)
	}}
}

// RectFilled fills the rectangle with corners p0 and p1.
func RectFilled(p0, p1 ggui.Point, col ggui.Color, opts ...Option) Shape {
	o := newOptions(opts)
	r := ggui.Rect{Min: clampPoint(o.point(p0)), Max: clampPoint(o.point(p1))}
	return Shape{draw: func(c ggui.Canvas) {
		c.RectFilled(r, col, o.rounding)
	}}
}

// Rects strokes several rectangles given by their corners.
func Rects(rs []ggui.Rect, col ggui.Color, opts ...Option) Shape {
	o := newOptions(opts)
	polys := make([][]ggui.Point, len(rs))
	for i, r := range rs {
		a := clampPoint(o.point(r.Min))
		b := clampPoint(o.point(r.Max))
		polys[i] = []ggui.Point{a, ggui.Pt(a.X, b.Y), b, ggui.Pt(b.X, a.Y)}
	}
	return Shape{draw: func(c ggui.Canvas) {
		for _, p := range polys {
			c.Polyline(p, col, true, o.thickness)
		}
	}}
}

// Circle strokes a circle. Through a transform the radius is scaled by
// the zoom, which must be equal on both axes.
func Circle(center ggui.Point, radius float64, col ggui.Color, opts ...Option) Shape {
	o := newOptions(opts)
	if o.tf != nil {
		if !o.tf.C2S.IsUniformScale() {
			return failed(ErrNonUniformTransform)
		}
		radius *= math.Abs(o.tf.C2S.A)
	}
	center = o.point(center)
	return Shape{draw: func(c ggui.Canvas) {
		c.Circle(center, radius, col, o.thickness, o.segments)
	}}
}

// Polyline strokes a polyline; see Closed.
func Polyline(pts []ggui.Point, col ggui.Color, opts ...Option) Shape {
	o := newOptions(opts)
	pts = o.points(pts)
	return Shape{draw: func(c ggui.Canvas) {
		c.Polyline(pts, col, o.closed, o.thickness)
	}}
}

// Polylines strokes several polylines with the same style.
func Polylines(lines [][]ggui.Point, col ggui.Color, opts ...Option) Shape {
	o := newOptions(opts)
	out := make([][]ggui.Point, len(lines))
	for i, l := range lines {
		out[i] = o.points(l)
	}
	return Shape{draw: func(c ggui.Canvas) {
		for _, l := range out {
			c.Polyline(l, col, o.closed, o.thickness)
		}
	}}
}

// Polygon fills a convex polygon.
func Polygon(pts []ggui.Point, col ggui.Color, opts ...Option) Shape {
	o := newOptions(opts)
	pts = o.points(pts)
	return Shape{draw: func(c ggui.Canvas) {
		c.Polygon(pts, col)
	}}
}

// Polygons fills several convex polygons with the same color.
func Polygons(polys [][]ggui.Point, col ggui.Color, opts ...Option) Shape {
	o := newOptions(opts)
	out := make([][]ggui.Point, len(polys))
	for i, p := range polys {
		out[i] = o.points(p)
	}
	return Shape{draw: func(c ggui.Canvas) {
		for _, p := range out {
			c.Polygon(p, col)
		}
	}}
}

// Text draws s with its top-left corner at p. Text anchored too far
// outside the screen is skipped.
func Text(p ggui.Point, col ggui.Color, s string, opts ...Option) Shape {
	o := newOptions(opts)
	p = o.point(p)
	visible := math.Abs(p.X) < coordLimit && math.Abs(p.Y) < coordLimit
	return Shape{draw: func(c ggui.Canvas) {
		if visible {
			c.Text(p, col, s)
		}
	}}
}

// Image draws a texture with its top-left corner at p and the given size.
// See UV for drawing part of the texture.
func Image(tex ggui.Texture, p ggui.Point, width, height float64, opts ...Option) Shape {
	o := newOptions(opts)
	p0 := o.point(p)
	p1 := o.point(p.Add(ggui.Pt(width, height)))
	return Shape{draw: func(c ggui.Canvas) {
		c.Image(tex, p0, p1, o.uv0, o.uv1)
	}}
}
