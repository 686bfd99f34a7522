// Package imageview shows an image in a pannable, zoomable view with a
// content-space overlay in image pixels.
//
// The State owns the image's texture. Replacing the image uploads a new
// texture right away but keeps the previous one alive until the next
// frame, since the frame being drawn may still sample it.
package imageview

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/gogpu/ggui"
	"github.com/gogpu/ggui/panzoom"
)

var (
	// ErrEmptyImage is returned for images with no pixels.
	ErrEmptyImage = errors.New("imageview: empty image")

	// ErrNoTextures is returned by New without a texture store.
	ErrNoTextures = errors.New("imageview: no texture store")
)

// State is the view and texture state of an image widget.
type State struct {
	// View is the pan and zoom state, in image pixels.
	View panzoom.State

	ts        ggui.Textures
	tex       ggui.Texture
	oldTex    ggui.Texture // replaced texture, released on the next frame
	immediate bool
	viewOpts  []panzoom.Option

	width, height int // image size
	texW, texH    int // texture size, padded
}

// Option configures a State.
type Option func(*State)

// WithImmediateRelease deletes the replaced texture as soon as the new one
// is uploaded, for backends that do not keep textures in flight.
func WithImmediateRelease() Option {
	return func(s *State) { s.immediate = true }
}

// WithViewOptions passes options to the underlying panzoom state.
func WithViewOptions(opts ...panzoom.Option) Option {
	return func(s *State) { s.viewOpts = append(s.viewOpts, opts...) }
}

// New uploads img through ts and returns a state whose view shows the
// whole image with square pixels. A nil img is replaced by one black
// pixel.
func New(ts ggui.Textures, img image.Image, opts ...Option) (*State, error) {
	if ts == nil {
		return nil, ErrNoTextures
	}
	s := &State{ts: ts}
	for _, opt := range opts {
		opt(s)
	}
	if img == nil {
		placeholder := image.NewRGBA(image.Rect(0, 0, 1, 1))
		placeholder.SetRGBA(0, 0, color.RGBA{A: 0xff})
		img = placeholder
	}
	if err := s.ChangeImage(img); err != nil {
		return nil, err
	}
	return s, nil
}

// ChangeImage replaces the displayed image. Call it at most once per
// frame. When the image size changes the view is reset to the new image
// rectangle.
func (s *State) ChangeImage(img image.Image) error {
	b := img.Bounds()
	if b.Empty() {
		return fmt.Errorf("%w: %v", ErrEmptyImage, b)
	}
	w, h := b.Dx(), b.Dy()
	pw, ph := padTo4(w), padTo4(h)

	dst := image.NewRGBA(image.Rect(0, 0, pw, ph))
	draw.Draw(dst, image.Rect(0, 0, w, h), img, b.Min, draw.Src)

	var (
		tex ggui.Texture
		err error
	)
	if s.immediate {
		tex, err = ggui.ReplaceTexture(s.ts, dst, s.tex)
	} else {
		tex, err = s.ts.CreateTexture(dst)
		if err == nil {
			// Two changes within one frame: the oldest texture was never
			// drawn after the first change, so it can go now.
			s.release(s.oldTex)
			s.oldTex = s.tex
		}
	}
	if err != nil {
		return fmt.Errorf("imageview: upload %dx%d: %w", w, h, err)
	}
	ggui.Logger().Debug("image texture uploaded", "width", w, "height", h, "texture_width", pw, "texture_height", ph)

	s.tex = tex
	s.texW, s.texH = pw, ph
	if w != s.width || h != s.height {
		s.width, s.height = w, h
		if s.View == (panzoom.State{}) {
			s.View = panzoom.New(ggui.Pt(0, 0), ggui.Pt(float64(w), float64(h)), s.viewOpts...)
		} else {
			s.View.ResetTo(ggui.Pt(0, 0), ggui.Pt(float64(w), float64(h)))
		}
	}
	return nil
}

func padTo4(n int) int {
	return (n + 3) &^ 3
}

func (s *State) release(t ggui.Texture) {
	if t == nil {
		return
	}
	if err := s.ts.DeleteTexture(t); err != nil {
		ggui.Logger().Warn("imageview: release texture", "err", err)
	}
}

// flush releases the texture replaced during the previous frame.
func (s *State) flush() {
	s.release(s.oldTex)
	s.oldTex = nil
}

// Texture returns the current texture handle.
func (s *State) Texture() ggui.Texture {
	return s.tex
}

// Size returns the image size in pixels.
func (s *State) Size() (width, height int) {
	return s.width, s.height
}

// UV returns the texture coordinate of the image's bottom-right corner.
// It is below (1, 1) when the texture was padded.
func (s *State) UV() ggui.Point {
	return ggui.Pt(float64(s.width)/float64(s.texW), float64(s.height)/float64(s.texH))
}

// ResetView shows the whole image again.
func (s *State) ResetView() {
	s.View.Reset()
}

// Close deletes the textures. The state must not be used afterwards.
func (s *State) Close() error {
	var errs []error
	for _, t := range []ggui.Texture{s.oldTex, s.tex} {
		if t == nil {
			continue
		}
		if err := s.ts.DeleteTexture(t); err != nil {
			errs = append(errs, err)
		}
	}
	s.tex, s.oldTex = nil, nil
	return errors.Join(errs...)
}

// View returns the image widget for st. The overlay built by content is
// drawn in image pixel coordinates over the image; it may be nil.
func View[T any](name string, st *State, content func(ggui.TF) ggui.Widget[T], opts ...panzoom.ViewOption) ggui.Widget[panzoom.Event[T]] {
	inner := panzoom.View(name, &st.View, func(tf ggui.TF) ggui.Widget[T] {
		img := ggui.Lift[T](func(ctx *ggui.Context) error {
			w, h := st.Size()
			p0 := tf.ToScreen(ggui.Pt(0, 0))
			p1 := tf.ToScreen(ggui.Pt(float64(w), float64(h)))
			ctx.Canvas.Image(st.tex, p0, p1, ggui.Pt(0, 0), st.UV())
			return nil
		})
		if content == nil {
			return img
		}
		return ggui.Orr(img, content(tf))
	}, opts...)
	return &view[T]{st: st, inner: inner}
}

type view[T any] struct {
	st    *State
	inner ggui.Widget[panzoom.Event[T]]
}

func (v *view[T]) Step(ctx *ggui.Context) (ggui.Result[panzoom.Event[T]], error) {
	v.st.flush()
	return v.inner.Step(ctx)
}

func (v *view[T]) Close() error {
	ggui.Close(v.inner)
	return nil
}
