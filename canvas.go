package ggui

import (
	"fmt"
	"image"
)

// Canvas is the drawing interface widgets draw through. All coordinates
// are in screen space; content-space drawing goes through a TF first.
//
// Implementations live in backend/software (rasterized with gg) and
// recorder (typed command capture).
type Canvas interface {
	Line(p0, p1 Point, col Color, thickness float64)
	Rect(r Rect, col Color, thickness, rounding float64)
	RectFilled(r Rect, col Color, rounding float64)
	Circle(center Point, radius float64, col Color, thickness float64, segments int)
	Polyline(pts []Point, col Color, closed bool, thickness float64)
	// Polygon fills a convex polygon.
	Polygon(pts []Point, col Color)
	// Text draws s with its top-left corner at p.
	Text(p Point, col Color, s string)
	// Image draws the tex region uv0..uv1 (normalized) into p0..p1.
	Image(tex Texture, p0, p1, uv0, uv1 Point)
	// PushClipRect restricts drawing to r, intersected with the current
	// clip when intersect is true.
	PushClipRect(r Rect, intersect bool)
	PopClipRect()
}

// Drawable is a passive drawing. Draw is called once per frame.
type Drawable interface {
	Draw(ctx *Context) error
}

// DrawFunc adapts a function to the Drawable interface.
type DrawFunc func(ctx *Context) error

// Draw calls f(ctx).
func (f DrawFunc) Draw(ctx *Context) error {
	return f(ctx)
}

// Texture is an opaque texture handle owned by a Textures implementation.
type Texture = any

// Textures creates and deletes textures on the rendering backend.
type Textures interface {
	// CreateTexture uploads img and returns its handle.
	CreateTexture(img *image.RGBA) (Texture, error)
	// DeleteTexture releases a handle. Deleting nil is a no-op.
	DeleteTexture(t Texture) error
}

// ReplaceTexture uploads img and then deletes old, returning the new
// handle. On upload failure old is left untouched.
//
// It deletes old immediately, which is only safe for backends that do not
// keep textures in flight; see imageview for deferred release.
func ReplaceTexture(ts Textures, img *image.RGBA, old Texture) (Texture, error) {
	t, err := ts.CreateTexture(img)
	if err != nil {
		return nil, fmt.Errorf("ggui: replace texture: %w", err)
	}
	if old != nil {
		if err := ts.DeleteTexture(old); err != nil {
			Logger().Warn("delete replaced texture", "err", err)
		}
	}
	return t, nil
}
