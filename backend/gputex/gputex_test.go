package gputex_test

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/ggui"
	"github.com/gogpu/ggui/backend/gputex"
)

type mockTexture struct {
	w, h      int
	data      []byte
	destroyed bool
}

func (t *mockTexture) Width() int  { return t.w }
func (t *mockTexture) Height() int { return t.h }
func (t *mockTexture) Destroy()    { t.destroyed = true }

func (t *mockTexture) UpdateData(data []byte) error {
	t.data = append(t.data[:0], data...)
	return nil
}

// fixedTexture cannot be updated or destroyed.
type fixedTexture struct{ w, h int }

func (t fixedTexture) Width() int  { return t.w }
func (t fixedTexture) Height() int { return t.h }

type mockCreator struct {
	fail    error
	created []*mockTexture
}

func (c *mockCreator) NewTextureFromRGBA(w, h int, data []byte) (gpucontext.Texture, error) {
	if c.fail != nil {
		return nil, c.fail
	}
	if len(data) != w*h*4 {
		return nil, errors.New("bad data size")
	}
	t := &mockTexture{w: w, h: h, data: bytes.Clone(data)}
	c.created = append(c.created, t)
	return t, nil
}

type mockDrawer struct {
	creator *mockCreator
	drawn   []gpucontext.Texture
	at      [][2]float32
}

func (d *mockDrawer) DrawTexture(tex gpucontext.Texture, x, y float32) error {
	d.drawn = append(d.drawn, tex)
	d.at = append(d.at, [2]float32{x, y})
	return nil
}

func (d *mockDrawer) TextureCreator() gpucontext.TextureCreator { return d.creator }

func gradient(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x), G: uint8(y), A: 255})
		}
	}
	return img
}

func TestNew(t *testing.T) {
	if _, err := gputex.New(nil); !errors.Is(err, gputex.ErrNoCreator) {
		t.Errorf("New(nil) error = %v", err)
	}
	if _, err := gputex.FromDrawer(nil); !errors.Is(err, gputex.ErrNoCreator) {
		t.Errorf("FromDrawer(nil) error = %v", err)
	}
	ts, err := gputex.FromDrawer(&mockDrawer{creator: &mockCreator{}})
	if err != nil {
		t.Fatal(err)
	}
	if ts.Format() != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("Format() = %v", ts.Format())
	}
}

func TestCreateAndDelete(t *testing.T) {
	mc := &mockCreator{}
	ts, _ := gputex.New(mc)
	var store ggui.Textures = ts

	img := gradient(3, 2)
	tex, err := store.CreateTexture(img)
	if err != nil {
		t.Fatal(err)
	}
	if ts.Live() != 1 {
		t.Errorf("Live() = %d", ts.Live())
	}
	if got := mc.created[0].data; !bytes.Equal(got, img.Pix) {
		t.Error("uploaded pixels differ from the image")
	}

	if err := store.DeleteTexture(tex); err != nil {
		t.Fatal(err)
	}
	if !mc.created[0].destroyed || ts.Live() != 0 {
		t.Error("texture not destroyed")
	}
	if err := store.DeleteTexture("foreign"); !errors.Is(err, gputex.ErrNotGPUTexture) {
		t.Errorf("foreign delete error = %v", err)
	}
	if err := store.DeleteTexture(nil); err != nil {
		t.Errorf("DeleteTexture(nil) = %v", err)
	}
}

func TestCreateSubImagePacksRows(t *testing.T) {
	mc := &mockCreator{}
	ts, _ := gputex.New(mc)
	full := gradient(8, 8)
	sub := full.SubImage(image.Rect(2, 3, 5, 5)).(*image.RGBA)
	if _, err := ts.CreateTexture(sub); err != nil {
		t.Fatal(err)
	}
	data := mc.created[0].data
	if len(data) != 3*2*4 {
		t.Fatalf("uploaded %d bytes", len(data))
	}
	// First pixel is full's (2, 3).
	if data[0] != 2 || data[1] != 3 {
		t.Errorf("first pixel = %v", data[:4])
	}
}

func TestCreateFailure(t *testing.T) {
	boom := errors.New("out of memory")
	ts, _ := gputex.New(&mockCreator{fail: boom})
	if _, err := ts.CreateTexture(gradient(1, 1)); !errors.Is(err, boom) {
		t.Errorf("error = %v", err)
	}
	if ts.Live() != 0 {
		t.Error("failed creation counted as live")
	}
}

func TestUpdate(t *testing.T) {
	mc := &mockCreator{}
	ts, _ := gputex.New(mc)
	tex, _ := ts.CreateTexture(gradient(2, 2))

	next := gradient(2, 2)
	next.SetRGBA(0, 0, color.RGBA{B: 200, A: 255})
	if err := ts.Update(tex, next); err != nil {
		t.Fatal(err)
	}
	if mc.created[0].data[2] != 200 {
		t.Error("update did not upload the new pixels")
	}

	tests := []struct {
		name string
		tex  ggui.Texture
		img  *image.RGBA
		want error
	}{
		{"size", tex, gradient(3, 2), gputex.ErrSizeMismatch},
		{"foreign", 7, gradient(2, 2), gputex.ErrNotGPUTexture},
		{"fixed", fixedTexture{2, 2}, gradient(2, 2), gputex.ErrNotUpdatable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ts.Update(tt.tex, tt.img); !errors.Is(err, tt.want) {
				t.Errorf("Update() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDraw(t *testing.T) {
	d := &mockDrawer{creator: &mockCreator{}}
	ts, _ := gputex.FromDrawer(d)
	tex, _ := ts.CreateTexture(gradient(2, 2))
	if err := gputex.Draw(d, tex, ggui.Pt(3.5, 4)); err != nil {
		t.Fatal(err)
	}
	if len(d.drawn) != 1 || d.at[0] != [2]float32{3.5, 4} {
		t.Errorf("drawn %v at %v", d.drawn, d.at)
	}
	if err := gputex.Draw(d, "x", ggui.Pt(0, 0)); !errors.Is(err, gputex.ErrNotGPUTexture) {
		t.Errorf("Draw(foreign) error = %v", err)
	}
}
