// Package gputex provides ggui.Textures backed by GPU textures created
// through gpucontext, for hosts that render with gogpu.
package gputex

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/ggui"
)

var (
	// ErrNoCreator is returned when no texture creator is available.
	ErrNoCreator = errors.New("gputex: no texture creator")

	// ErrNotGPUTexture is returned for handles not created by Textures.
	ErrNotGPUTexture = errors.New("gputex: not a GPU texture")

	// ErrSizeMismatch is returned by Update when the image size differs
	// from the texture size.
	ErrSizeMismatch = errors.New("gputex: size mismatch")

	// ErrNotUpdatable is returned by Update when the texture does not
	// support in-place updates.
	ErrNotUpdatable = errors.New("gputex: texture cannot be updated in place")
)

// textureDestroyer matches the Destroy method of gogpu textures.
type textureDestroyer interface {
	Destroy()
}

// Textures creates RGBA textures through a gpucontext.TextureCreator.
type Textures struct {
	creator gpucontext.TextureCreator
	live    int
}

var _ ggui.Textures = (*Textures)(nil)

// New returns a texture store using creator.
func New(creator gpucontext.TextureCreator) (*Textures, error) {
	if creator == nil {
		return nil, ErrNoCreator
	}
	return &Textures{creator: creator}, nil
}

// FromDrawer returns a texture store for textures drawable by d.
func FromDrawer(d gpucontext.TextureDrawer) (*Textures, error) {
	if d == nil {
		return nil, ErrNoCreator
	}
	return New(d.TextureCreator())
}

// Format returns the pixel format of the created textures.
func (t *Textures) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// Live returns the number of textures created and not yet deleted.
func (t *Textures) Live() int {
	return t.live
}

// CreateTexture implements ggui.Textures. The returned handle is a
// gpucontext.Texture.
func (t *Textures) CreateTexture(img *image.RGBA) (ggui.Texture, error) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	tex, err := t.creator.NewTextureFromRGBA(w, h, packedPixels(img))
	if err != nil {
		return nil, fmt.Errorf("gputex: create %dx%d texture: %w", w, h, err)
	}
	t.live++
	ggui.Logger().Debug("gputex: texture created", "width", w, "height", h, "format", t.Format())
	return tex, nil
}

// DeleteTexture implements ggui.Textures. Textures without a Destroy
// method are left to the garbage collector.
func (t *Textures) DeleteTexture(tex ggui.Texture) error {
	if tex == nil {
		return nil
	}
	gt, ok := tex.(gpucontext.Texture)
	if !ok {
		return fmt.Errorf("%w: %T", ErrNotGPUTexture, tex)
	}
	if d, ok := gt.(textureDestroyer); ok {
		d.Destroy()
	}
	t.live--
	return nil
}

// Update uploads img into an existing texture of the same size.
func (t *Textures) Update(tex ggui.Texture, img *image.RGBA) error {
	gt, ok := tex.(gpucontext.Texture)
	if !ok {
		return fmt.Errorf("%w: %T", ErrNotGPUTexture, tex)
	}
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if gt.Width() != w || gt.Height() != h {
		return fmt.Errorf("%w: texture %dx%d, image %dx%d", ErrSizeMismatch, gt.Width(), gt.Height(), w, h)
	}
	u, ok := gt.(gpucontext.TextureUpdater)
	if !ok {
		return ErrNotUpdatable
	}
	return u.UpdateData(packedPixels(img))
}

// Draw draws tex with its top-left corner at p on d.
func Draw(d gpucontext.TextureDrawer, tex ggui.Texture, p ggui.Point) error {
	gt, ok := tex.(gpucontext.Texture)
	if !ok {
		return fmt.Errorf("%w: %T", ErrNotGPUTexture, tex)
	}
	return d.DrawTexture(gt, float32(p.X), float32(p.Y))
}

// packedPixels returns the pixels of img as tightly packed RGBA rows.
func packedPixels(img *image.RGBA) []byte {
	b := img.Bounds()
	rowLen := 4 * b.Dx()
	if img.Stride == rowLen && b.Min == (image.Point{}) {
		return img.Pix[:rowLen*b.Dy()]
	}
	out := make([]byte, 0, rowLen*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		off := img.PixOffset(b.Min.X, y)
		out = append(out, img.Pix[off:off+rowLen]...)
	}
	return out
}
