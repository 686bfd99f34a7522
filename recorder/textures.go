package recorder

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/ggui"
)

// ErrUnknownTexture is returned when deleting a handle that is not live.
var ErrUnknownTexture = errors.New("recorder: unknown texture")

// TextureID is the handle type issued by Textures.
type TextureID int

// Textures is an in-memory ggui.Textures that keeps every live image and
// counts allocations. It is used wherever a texture store is needed
// without a GPU.
type Textures struct {
	next    TextureID
	live    map[TextureID]*image.RGBA
	created int
	deleted int

	// Fail, when set, makes CreateTexture return it.
	Fail error
}

var _ ggui.Textures = (*Textures)(nil)

// NewTextures returns an empty texture store.
func NewTextures() *Textures {
	return &Textures{live: make(map[TextureID]*image.RGBA)}
}

// CreateTexture stores img and returns a new TextureID.
func (t *Textures) CreateTexture(img *image.RGBA) (any, error) {
	if t.Fail != nil {
		return nil, t.Fail
	}
	t.next++
	t.live[t.next] = img
	t.created++
	return t.next, nil
}

// DeleteTexture forgets a handle. Deleting nil is a no-op.
func (t *Textures) DeleteTexture(h any) error {
	if h == nil {
		return nil
	}
	id, ok := h.(TextureID)
	if !ok {
		return fmt.Errorf("%w: %T", ErrUnknownTexture, h)
	}
	if _, ok := t.live[id]; !ok {
		return fmt.Errorf("%w: %d", ErrUnknownTexture, id)
	}
	delete(t.live, id)
	t.deleted++
	return nil
}

// Image returns the image behind a live handle.
func (t *Textures) Image(h any) (*image.RGBA, bool) {
	id, ok := h.(TextureID)
	if !ok {
		return nil, false
	}
	img, ok := t.live[id]
	return img, ok
}

// Live returns the number of textures not yet deleted.
func (t *Textures) Live() int {
	return len(t.live)
}

// Created returns the number of textures created so far.
func (t *Textures) Created() int {
	return t.created
}

// Deleted returns the number of textures deleted so far.
func (t *Textures) Deleted() int {
	return t.deleted
}
