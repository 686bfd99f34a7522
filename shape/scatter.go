package shape

import (
	"fmt"
	"math"

	"github.com/gogpu/ggui"
)

// Scatter markers.
const (
	MarkerDot    = "." // filled square
	MarkerPlus   = "+"
	MarkerCross  = "x"
	MarkerCircle = "o" // outlined heptagon
	MarkerSquare = "s" // outlined square
)

// Scatter draws a marker at every point. The marker size is in pixels
// and is not affected by Transform; only the positions are.
func Scatter(pts []ggui.Point, col ggui.Color, marker string, opts ...Option) Shape {
	o := newOptions(opts)
	centers := o.points(pts)
	plain := make([]Option, 0, len(opts))
	plain = append(plain, opts...)
	plain = append(plain, func(o *options) { o.tf = nil })

	r := o.markerSize / 2
	switch marker {
	case MarkerDot:
		polys := make([][]ggui.Point, len(centers))
		for i, p := range centers {
			polys[i] = []ggui.Point{
				p.Add(ggui.Pt(-r, -r)), p.Add(ggui.Pt(r, -r)),
				p.Add(ggui.Pt(r, r)), p.Add(ggui.Pt(-r, r)),
			}
		}
		return Polygons(polys, col, plain...)
	case MarkerPlus:
		return Polylines(strokes(centers, ggui.Pt(r, 0), ggui.Pt(0, r)), col, plain...)
	case MarkerCross, "X":
		d := o.markerSize / math.Sqrt(8)
		return Polylines(strokes(centers, ggui.Pt(d, d), ggui.Pt(-d, d)), col, plain...)
	case MarkerCircle, "O":
		return Polylines(rings(centers, r, 7, 0), col, append(plain, Closed())...)
	case MarkerSquare, "S":
		return Polylines(rings(centers, r, 4, math.Pi/4), col, append(plain, Closed())...)
	}
	return failed(fmt.Errorf("%w: %q", ErrInvalidMarker, marker))
}

// strokes returns two segments per center, along a and along b.
func strokes(centers []ggui.Point, a, b ggui.Point) [][]ggui.Point {
	out := make([][]ggui.Point, 0, 2*len(centers))
	for _, p := range centers {
		out = append(out,
			[]ggui.Point{p.Sub(a), p.Add(a)},
			[]ggui.Point{p.Sub(b), p.Add(b)},
		)
	}
	return out
}

// rings returns a regular n-gon of radius r around every center.
func rings(centers []ggui.Point, r float64, n int, phase float64) [][]ggui.Point {
	out := make([][]ggui.Point, len(centers))
	for i, p := range centers {
		ring := make([]ggui.Point, n)
		for k := range ring {
			sin, cos := math.Sincos(phase + 2*math.Pi*float64(k)/float64(n))
			ring[k] = p.Add(ggui.Pt(sin*r, cos*r))
		}
		out[i] = ring
	}
	return out
}
