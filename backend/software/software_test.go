package software_test

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/gogpu/ggui"
	"github.com/gogpu/ggui/backend"
	"github.com/gogpu/ggui/backend/software"
)

func newCanvas(t *testing.T) *software.Canvas {
	t.Helper()
	c, err := software.New(100, 100)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	c.Clear(ggui.White)
	return c
}

func pixel(c *software.Canvas, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(c.Pixels().At(x, y)).(color.NRGBA)
}

func near(a, b color.NRGBA) bool {
	d := func(x, y uint8) bool {
		v := int(x) - int(y)
		return v < 8 && v > -8
	}
	return d(a.R, b.R) && d(a.G, b.G) && d(a.B, b.B) && d(a.A, b.A)
}

var (
	black = color.NRGBA{0, 0, 0, 255}
	white = color.NRGBA{255, 255, 255, 255}
	red   = color.NRGBA{255, 0, 0, 255}
	green = color.NRGBA{0, 255, 0, 255}
)

func TestNear(t *testing.T) {
	tests := []struct {
		a, b color.NRGBA
		want bool
	}{
		{white, white, true},
		{white, color.NRGBA{250, 251, 255, 255}, true},
		{black, white, false},
		{white, black, false},
		{black, red, false},
		{red, color.NRGBA{247, 0, 0, 255}, false},
		{color.NRGBA{0, 0, 8, 255}, black, false},
	}
	for _, tt := range tests {
		if got := near(tt.a, tt.b); got != tt.want {
			t.Errorf("near(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestRegistered(t *testing.T) {
	if !backend.IsRegistered(backend.BackendSoftware) {
		t.Fatal("software backend not registered")
	}
	b := backend.Default()
	if b == nil || b.Name() != backend.BackendSoftware {
		t.Fatalf("Default() = %v", b)
	}
	s, err := b.NewSurface(8, 8)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	if got := s.Pixels().Bounds(); got != image.Rect(0, 0, 8, 8) {
		t.Errorf("bounds = %v", got)
	}
}

func TestNewInvalidSize(t *testing.T) {
	if _, err := software.New(0, 10); !errors.Is(err, backend.ErrInvalidSize) {
		t.Errorf("New(0, 10) error = %v", err)
	}
}

func TestFilledShapes(t *testing.T) {
	tests := []struct {
		name    string
		draw    func(c *software.Canvas)
		in, out image.Point
	}{
		{
			name: "rect",
			draw: func(c *software.Canvas) {
				c.RectFilled(ggui.R(10, 10, 30, 30), ggui.MustColor("#f00"), 0)
			},
			in: image.Pt(20, 20), out: image.Pt(5, 5),
		},
		{
			name: "rounded rect",
			draw: func(c *software.Canvas) {
				c.RectFilled(ggui.R(10, 10, 50, 50), ggui.MustColor("#f00"), 8)
			},
			in: image.Pt(30, 30), out: image.Pt(10, 10),
		},
		{
			name: "polygon",
			draw: func(c *software.Canvas) {
				c.Polygon([]ggui.Point{{X: 10, Y: 10}, {X: 90, Y: 10}, {X: 10, Y: 90}}, ggui.MustColor("#f00"))
			},
			in: image.Pt(20, 20), out: image.Pt(80, 80),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCanvas(t)
			tt.draw(c)
			if err := c.Flush(); err != nil {
				t.Fatal(err)
			}
			if got := pixel(c, tt.in.X, tt.in.Y); !near(got, red) {
				t.Errorf("inside pixel = %v, want red", got)
			}
			if got := pixel(c, tt.out.X, tt.out.Y); !near(got, white) {
				t.Errorf("outside pixel = %v, want white", got)
			}
		})
	}
}

func TestStrokes(t *testing.T) {
	c := newCanvas(t)
	c.Line(ggui.Pt(0, 50), ggui.Pt(100, 50), ggui.Black, 4)
	c.Rect(ggui.R(10, 10, 40, 40), ggui.Black, 2, 0)
	c.Circle(ggui.Pt(70, 20), 10, ggui.Black, 2, 16)
	c.Polyline([]ggui.Point{{X: 60, Y: 80}, {X: 90, Y: 80}}, ggui.Black, false, 4)
	c.Polyline([]ggui.Point{{X: 1, Y: 1}}, ggui.Black, false, 1) // too short, ignored
	if err := c.Flush(); err != nil {
		t.Fatal(err)
	}
	for _, p := range []image.Point{{50, 50}, {10, 25}, {75, 80}} {
		if got := pixel(c, p.X, p.Y); !near(got, black) {
			t.Errorf("pixel %v = %v, want black", p, got)
		}
	}
	if got := pixel(c, 25, 25); !near(got, white) {
		t.Errorf("rect outline filled its interior: %v", got)
	}
}

func TestClipStack(t *testing.T) {
	c := newCanvas(t)
	c.PushClipRect(ggui.R(0, 0, 50, 100), true)
	c.PushClipRect(ggui.R(25, 0, 100, 100), true) // intersected to 25..50
	c.RectFilled(ggui.R(0, 0, 100, 100), ggui.MustColor("#0f0"), 0)
	c.PopClipRect()
	c.PopClipRect()
	c.RectFilled(ggui.R(90, 90, 100, 100), ggui.MustColor("#0f0"), 0)
	if err := c.Flush(); err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		p    image.Point
		want color.NRGBA
	}{
		{image.Pt(10, 50), white},
		{image.Pt(40, 50), green},
		{image.Pt(70, 50), white},
		{image.Pt(95, 95), green},
	}
	for _, tt := range tests {
		if got := pixel(c, tt.p.X, tt.p.Y); !near(got, tt.want) {
			t.Errorf("pixel %v = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestFlushReportsErrors(t *testing.T) {
	c := newCanvas(t)
	c.PushClipRect(ggui.R(0, 0, 10, 10), false)
	if err := c.Flush(); err == nil {
		t.Error("Flush() ignored a clip left pushed")
	}
	c.PopClipRect()
	if err := c.Flush(); err == nil {
		t.Error("Flush() ignored a clip underflow")
	}
	c.Image("not a texture", ggui.Pt(0, 0), ggui.Pt(10, 10), ggui.Pt(0, 0), ggui.Pt(1, 1))
	if err := c.Flush(); !errors.Is(err, software.ErrUnknownTexture) {
		t.Errorf("Flush() error = %v, want %v", err, software.ErrUnknownTexture)
	}
	if err := c.Flush(); err != nil {
		t.Errorf("errors not cleared by Flush: %v", err)
	}
}

func TestTextures(t *testing.T) {
	c := newCanvas(t)
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := range 4 {
		for x := range 4 {
			col := color.RGBA{G: 255, A: 255}
			if x >= 2 {
				col = color.RGBA{R: 255, A: 255}
			}
			img.SetRGBA(x, y, col)
		}
	}
	tex, err := c.CreateTexture(img)
	if err != nil {
		t.Fatal(err)
	}
	if w, h := tex.(*software.Texture).Size(); w != 4 || h != 4 {
		t.Errorf("Size() = %d, %d", w, h)
	}

	// Left half of the texture only, stretched over 40x40 pixels.
	c.Image(tex, ggui.Pt(10, 10), ggui.Pt(50, 50), ggui.Pt(0, 0), ggui.Pt(0.5, 1))
	if err := c.Flush(); err != nil {
		t.Fatal(err)
	}
	if got := pixel(c, 45, 30); !near(got, green) {
		t.Errorf("pixel = %v, want green", got)
	}

	if err := c.DeleteTexture(tex); err != nil {
		t.Fatal(err)
	}
	if err := c.DeleteTexture(tex); !errors.Is(err, software.ErrUnknownTexture) {
		t.Errorf("double delete error = %v", err)
	}
	if _, err := c.CreateTexture(image.NewRGBA(image.Rectangle{})); err == nil {
		t.Error("empty texture accepted")
	}
}

func TestText(t *testing.T) {
	c := newCanvas(t)
	c.Text(ggui.Pt(10, 10), ggui.Black, "Hello")
	if err := c.Flush(); err != nil {
		t.Fatal(err)
	}
	w, h := c.MeasureText("Hello")
	if w <= 0 || h <= 0 {
		t.Fatalf("MeasureText = %v, %v", w, h)
	}
	inked := 0
	for y := 10; y < 10+int(h)+2; y++ {
		for x := 10; x < 10+int(w); x++ {
			if !near(pixel(c, x, y), white) {
				inked++
			}
		}
	}
	if inked == 0 {
		t.Error("text left no ink below its top-left corner")
	}
}

func TestEncodePNG(t *testing.T) {
	c := newCanvas(t)
	c.RectFilled(ggui.R(0, 0, 100, 100), ggui.MustColor("#f00"), 0)
	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if got := color.NRGBAModel.Convert(img.At(50, 50)).(color.NRGBA); !near(got, red) {
		t.Errorf("decoded pixel = %v", got)
	}
}

func TestWithFontSize(t *testing.T) {
	small, err := software.New(50, 50, software.WithFontSize(8))
	if err != nil {
		t.Fatal(err)
	}
	defer small.Close()
	large, err := software.New(50, 50, software.WithFontSize(32))
	if err != nil {
		t.Fatal(err)
	}
	defer large.Close()
	ws, _ := small.MeasureText("M")
	wl, _ := large.MeasureText("M")
	if ws >= wl {
		t.Errorf("8px text %v wide, 32px text %v wide", ws, wl)
	}
}
