package imageview_test

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/gogpu/ggui"
	"github.com/gogpu/ggui/imageview"
	"github.com/gogpu/ggui/panzoom"
	"github.com/gogpu/ggui/recorder"
	"github.com/gogpu/ggui/shape"
)

var errUpload = errors.New("upload failed")

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func newState(t *testing.T, ts *recorder.Textures, img image.Image, opts ...imageview.Option) *imageview.State {
	t.Helper()
	s, err := imageview.New(ts, img, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func stepFrame(t *testing.T, w ggui.Widget[panzoom.Event[int]]) *recorder.Recording {
	t.Helper()
	rec := recorder.New()
	if _, err := w.Step(ggui.NewContext(ggui.Input{}, rec, ggui.R(0, 0, 300, 300))); err != nil {
		t.Fatalf("Step: %v", err)
	}
	return rec.Finish()
}

func TestNewPadsTexture(t *testing.T) {
	ts := recorder.NewTextures()
	red := color.RGBA{R: 255, A: 255}
	s := newState(t, ts, solid(10, 6, red))

	if w, h := s.Size(); w != 10 || h != 6 {
		t.Errorf("Size() = %d, %d", w, h)
	}
	tex, ok := ts.Image(s.Texture())
	if !ok {
		t.Fatal("texture not live")
	}
	if got := tex.Bounds(); got != image.Rect(0, 0, 12, 8) {
		t.Errorf("texture bounds = %v, want padded to 12x8", got)
	}
	if tex.RGBAAt(9, 5) != red || tex.RGBAAt(11, 7) != (color.RGBA{}) {
		t.Error("image not copied into the top-left of the texture")
	}
	if diff := cmp.Diff(ggui.Pt(10.0/12, 6.0/8), s.UV()); diff != "" {
		t.Errorf("UV (-want +got):\n%s", diff)
	}
	if s.View.Bounds() != ggui.R(0, 0, 10, 6) {
		t.Errorf("view bounds = %v", s.View.Bounds())
	}
}

func TestNewPlaceholder(t *testing.T) {
	ts := recorder.NewTextures()
	s := newState(t, ts, nil)
	tex, _ := ts.Image(s.Texture())
	if got := tex.RGBAAt(0, 0); got != (color.RGBA{A: 255}) {
		t.Errorf("placeholder pixel = %v, want opaque black", got)
	}
	if w, h := s.Size(); w != 1 || h != 1 {
		t.Errorf("Size() = %d, %d", w, h)
	}
}

func TestNewErrors(t *testing.T) {
	if _, err := imageview.New(nil, nil); !errors.Is(err, imageview.ErrNoTextures) {
		t.Errorf("nil store error = %v", err)
	}
	empty := image.NewRGBA(image.Rect(0, 0, 0, 5))
	if _, err := imageview.New(recorder.NewTextures(), empty); !errors.Is(err, imageview.ErrEmptyImage) {
		t.Errorf("empty image error = %v", err)
	}
	ts := recorder.NewTextures()
	ts.Fail = errUpload
	if _, err := imageview.New(ts, nil); !errors.Is(err, errUpload) {
		t.Errorf("upload error = %v", err)
	}
}

func TestChangeImageDefersRelease(t *testing.T) {
	ts := recorder.NewTextures()
	s := newState(t, ts, solid(4, 4, color.RGBA{A: 255}))
	w := imageview.View[int]("img", s, nil)
	stepFrame(t, w)

	if err := s.ChangeImage(solid(4, 4, color.RGBA{G: 255, A: 255})); err != nil {
		t.Fatal(err)
	}
	if ts.Live() != 2 {
		t.Errorf("Live() = %d right after the change, want 2", ts.Live())
	}
	stepFrame(t, w)
	if ts.Live() != 1 || ts.Deleted() != 1 {
		t.Errorf("after a frame: live %d deleted %d", ts.Live(), ts.Deleted())
	}
}

func TestChangeImageTwiceInOneFrame(t *testing.T) {
	ts := recorder.NewTextures()
	s := newState(t, ts, solid(4, 4, color.RGBA{A: 255}))
	for range 2 {
		if err := s.ChangeImage(solid(4, 4, color.RGBA{B: 255, A: 255})); err != nil {
			t.Fatal(err)
		}
	}
	if ts.Live() != 2 {
		t.Errorf("Live() = %d, want 2", ts.Live())
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	if ts.Live() != 0 {
		t.Errorf("Live() = %d after Close", ts.Live())
	}
}

func TestChangeImageImmediateRelease(t *testing.T) {
	ts := recorder.NewTextures()
	s := newState(t, ts, solid(4, 4, color.RGBA{A: 255}), imageview.WithImmediateRelease())
	if err := s.ChangeImage(solid(4, 4, color.RGBA{R: 9, A: 255})); err != nil {
		t.Fatal(err)
	}
	if ts.Live() != 1 || ts.Created() != 2 {
		t.Errorf("live %d created %d", ts.Live(), ts.Created())
	}
}

func TestChangeImageView(t *testing.T) {
	ts := recorder.NewTextures()
	s := newState(t, ts, solid(8, 8, color.RGBA{A: 255}))
	s.View.Left, s.View.Right = 2, 6

	if err := s.ChangeImage(solid(8, 8, color.RGBA{A: 255})); err != nil {
		t.Fatal(err)
	}
	if s.View.Left != 2 {
		t.Error("same-size change reset the view")
	}

	if err := s.ChangeImage(solid(16, 4, color.RGBA{A: 255})); err != nil {
		t.Fatal(err)
	}
	if s.View.Bounds() != ggui.R(0, 0, 16, 4) {
		t.Errorf("view after resize = %v", s.View.Bounds())
	}

	s.View.Left = 3
	s.ResetView()
	if s.View.Left != 0 {
		t.Error("ResetView did not restore the image rectangle")
	}
}

func TestChangeImageUploadFailure(t *testing.T) {
	ts := recorder.NewTextures()
	s := newState(t, ts, solid(4, 4, color.RGBA{A: 255}))
	before := s.Texture()
	ts.Fail = errUpload
	if err := s.ChangeImage(solid(8, 8, color.RGBA{A: 255})); !errors.Is(err, errUpload) {
		t.Fatalf("error = %v", err)
	}
	if s.Texture() != before {
		t.Error("texture replaced despite the failed upload")
	}
	if w, _ := s.Size(); w != 4 {
		t.Error("size changed despite the failed upload")
	}
}

func TestViewDrawsImageAndOverlay(t *testing.T) {
	ts := recorder.NewTextures()
	s := newState(t, ts, solid(10, 6, color.RGBA{A: 255}))
	w := imageview.View("img", s, func(tf ggui.TF) ggui.Widget[int] {
		return ggui.Show[int](shape.Circle(ggui.Pt(5, 3), 1, ggui.White, shape.Transform(tf)))
	})
	r := stepFrame(t, w)

	var img recorder.ImageCommand
	var circle recorder.CircleCommand
	for _, c := range r.Commands() {
		switch c := c.(type) {
		case recorder.ImageCommand:
			img = c
		case recorder.CircleCommand:
			circle = c
		}
	}
	approx := cmpopts.EquateApprox(0, 1e-9)
	want := recorder.ImageCommand{
		Texture: s.Texture(),
		P0:      ggui.Pt(0, 60),
		P1:      ggui.Pt(300, 240),
		UV1:     s.UV(),
	}
	if diff := cmp.Diff(want, img, approx); diff != "" {
		t.Errorf("image command (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(ggui.Pt(150, 150), circle.Center, approx); diff != "" {
		t.Errorf("overlay center (-want +got):\n%s", diff)
	}
	if circle.Radius != 30 {
		t.Errorf("overlay radius = %v, want 30 (one pixel is 30 px on screen)", circle.Radius)
	}
}
