// Package software implements a ggui drawing surface on the gg software
// rasterizer.
//
// Importing the package registers it as the "software" backend.
package software

import (
	"errors"
	"fmt"
	"image"
	"io"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/ggui"
	"github.com/gogpu/ggui/backend"
)

func init() {
	backend.Register(backend.BackendSoftware, func() backend.Backend { return softwareBackend{} })
}

type softwareBackend struct{}

func (softwareBackend) Name() string { return backend.BackendSoftware }

func (softwareBackend) NewSurface(width, height int) (backend.Surface, error) {
	return New(width, height)
}

// DefaultFontSize is the text size in pixels used without WithFont.
const DefaultFontSize = 13

// ErrUnknownTexture is recorded when drawing a handle this canvas did not
// create.
var ErrUnknownTexture = errors.New("software: unknown texture")

// Option configures a Canvas.
type Option func(*Canvas) error

// WithFont sets the text face.
func WithFont(face text.Face) Option {
	return func(c *Canvas) error {
		c.face = face
		return nil
	}
}

// WithFontSize sets the size of the default Go Regular face.
func WithFontSize(px float64) Option {
	return func(c *Canvas) error {
		face, err := goRegular(px)
		if err != nil {
			return err
		}
		c.face = face
		return nil
	}
}

func goRegular(px float64) (text.Face, error) {
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("software: load font: %w", err)
	}
	return src.Face(px), nil
}

// Canvas renders ggui drawing calls into a gg.Context.
type Canvas struct {
	dc    *gg.Context
	face  text.Face
	clips []ggui.Rect
	err   error
}

var (
	_ ggui.Canvas     = (*Canvas)(nil)
	_ ggui.Textures   = (*Canvas)(nil)
	_ backend.Surface = (*Canvas)(nil)
)

// New creates a canvas of the given size.
func New(width, height int, opts ...Option) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", backend.ErrInvalidSize, width, height)
	}
	c := &Canvas{dc: gg.NewContext(width, height)}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			c.dc.Close()
			return nil, err
		}
	}
	if c.face == nil {
		face, err := goRegular(DefaultFontSize)
		if err != nil {
			c.dc.Close()
			return nil, err
		}
		c.face = face
	}
	c.dc.SetFont(c.face)
	return c, nil
}

// Context returns the underlying gg context.
func (c *Canvas) Context() *gg.Context {
	return c.dc
}

func (c *Canvas) setColor(col ggui.Color) {
	r, g, b, a := col.Floats()
	c.dc.SetRGBA(r, g, b, a)
}

// record keeps the first drawing error until Flush.
func (c *Canvas) record(err error) {
	if err != nil && c.err == nil {
		c.err = err
	}
}

func (c *Canvas) stroke(col ggui.Color, thickness float64) {
	c.setColor(col)
	c.dc.SetLineWidth(thickness)
	c.record(c.dc.Stroke())
}

func (c *Canvas) fill(col ggui.Color) {
	c.setColor(col)
	c.record(c.dc.Fill())
}

// Line implements ggui.Canvas.
func (c *Canvas) Line(p0, p1 ggui.Point, col ggui.Color, thickness float64) {
	c.dc.DrawLine(p0.X, p0.Y, p1.X, p1.Y)
	c.stroke(col, thickness)
}

// Rect implements ggui.Canvas.
func (c *Canvas) Rect(r ggui.Rect, col ggui.Color, thickness, rounding float64) {
	c.rectPath(r, rounding)
	c.stroke(col, thickness)
}

// RectFilled implements ggui.Canvas.
func (c *Canvas) RectFilled(r ggui.Rect, col ggui.Color, rounding float64) {
	c.rectPath(r, rounding)
	c.fill(col)
}

func (c *Canvas) rectPath(r ggui.Rect, rounding float64) {
	r = r.Canon()
	if rounding > 0 {
		c.dc.DrawRoundedRectangle(r.Min.X, r.Min.Y, r.Dx(), r.Dy(), rounding)
		return
	}
	c.dc.DrawRectangle(r.Min.X, r.Min.Y, r.Dx(), r.Dy())
}

// Circle implements ggui.Canvas. With segments >= 3 the circle is drawn
// as a regular polygon.
func (c *Canvas) Circle(center ggui.Point, radius float64, col ggui.Color, thickness float64, segments int) {
	if segments < 3 {
		c.dc.DrawCircle(center.X, center.Y, radius)
		c.stroke(col, thickness)
		return
	}
	for i := range segments {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(segments))
		x, y := center.X+radius*cos, center.Y+radius*sin
		if i == 0 {
			c.dc.MoveTo(x, y)
		} else {
			c.dc.LineTo(x, y)
		}
	}
	c.dc.ClosePath()
	c.stroke(col, thickness)
}

func (c *Canvas) path(pts []ggui.Point, closed bool) bool {
	if len(pts) < 2 {
		return false
	}
	c.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		c.dc.LineTo(p.X, p.Y)
	}
	if closed {
		c.dc.ClosePath()
	}
	return true
}

// Polyline implements ggui.Canvas.
func (c *Canvas) Polyline(pts []ggui.Point, col ggui.Color, closed bool, thickness float64) {
	if c.path(pts, closed) {
		c.stroke(col, thickness)
	}
}

// Polygon implements ggui.Canvas.
func (c *Canvas) Polygon(pts []ggui.Point, col ggui.Color) {
	if len(pts) >= 3 && c.path(pts, true) {
		c.fill(col)
	}
}

// Text implements ggui.Canvas. p is the top-left corner of the line box.
func (c *Canvas) Text(p ggui.Point, col ggui.Color, s string) {
	c.setColor(col)
	c.dc.DrawString(s, p.X, p.Y+c.face.Metrics().Ascent)
}

// MeasureText returns the advance and line height of s.
func (c *Canvas) MeasureText(s string) (w, h float64) {
	return c.dc.MeasureString(s)
}

// Image implements ggui.Canvas. The texture must come from this canvas's
// CreateTexture.
func (c *Canvas) Image(tex ggui.Texture, p0, p1, uv0, uv1 ggui.Point) {
	t, ok := tex.(*Texture)
	if !ok || t.buf == nil {
		c.record(fmt.Errorf("%w: %T", ErrUnknownTexture, tex))
		return
	}
	dst := ggui.Rect{Min: p0, Max: p1}.Canon()
	if dst.Empty() {
		return
	}
	uv := ggui.Rect{Min: uv0, Max: uv1}.Canon()
	src := image.Rect(
		int(math.Floor(uv.Min.X*float64(t.width))),
		int(math.Floor(uv.Min.Y*float64(t.height))),
		int(math.Ceil(uv.Max.X*float64(t.width))),
		int(math.Ceil(uv.Max.Y*float64(t.height))),
	)
	c.dc.DrawImageEx(t.buf, gg.DrawImageOptions{
		X:             dst.Min.X,
		Y:             dst.Min.Y,
		DstWidth:      dst.Dx(),
		DstHeight:     dst.Dy(),
		SrcRect:       &src,
		Interpolation: gg.InterpNearest,
		Opacity:       1,
	})
}

// PushClipRect implements ggui.Canvas.
func (c *Canvas) PushClipRect(r ggui.Rect, intersect bool) {
	r = r.Canon()
	if intersect && len(c.clips) > 0 {
		r = intersectRect(c.clips[len(c.clips)-1], r)
	}
	c.clips = append(c.clips, r)
	c.applyClip()
}

// PopClipRect implements ggui.Canvas.
func (c *Canvas) PopClipRect() {
	if len(c.clips) == 0 {
		c.record(errors.New("software: clip stack underflow"))
		return
	}
	c.clips = c.clips[:len(c.clips)-1]
	c.applyClip()
}

func (c *Canvas) applyClip() {
	c.dc.ResetClip()
	if len(c.clips) == 0 {
		return
	}
	r := c.clips[len(c.clips)-1]
	c.dc.ClipRect(r.Min.X, r.Min.Y, math.Max(0, r.Dx()), math.Max(0, r.Dy()))
}

func intersectRect(a, b ggui.Rect) ggui.Rect {
	r := ggui.R(
		math.Max(a.Min.X, b.Min.X), math.Max(a.Min.Y, b.Min.Y),
		math.Min(a.Max.X, b.Max.X), math.Min(a.Max.Y, b.Max.Y),
	)
	if r.Empty() {
		return ggui.Rect{Min: r.Min, Max: r.Min}
	}
	return r
}

// Clear implements backend.Surface.
func (c *Canvas) Clear(col ggui.Color) {
	c.clips = c.clips[:0]
	c.dc.ResetClip()
	r, g, b, a := col.Floats()
	c.dc.ClearWithColor(gg.RGBA{R: r, G: g, B: b, A: a})
}

// Flush implements backend.Surface. Clip rectangles left pushed are
// dropped.
func (c *Canvas) Flush() error {
	err := c.err
	c.err = nil
	if len(c.clips) > 0 {
		c.clips = c.clips[:0]
		c.dc.ResetClip()
		if err == nil {
			err = errors.New("software: clip rectangles left pushed at end of frame")
		}
	}
	return err
}

// Pixels implements backend.Surface.
func (c *Canvas) Pixels() image.Image {
	return c.dc.Image()
}

// SavePNG writes the rendered pixels to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	return c.dc.SavePNG(path)
}

// EncodePNG writes the rendered pixels as PNG to w.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return c.dc.EncodePNG(w)
}

// Close implements backend.Surface.
func (c *Canvas) Close() error {
	return c.dc.Close()
}
