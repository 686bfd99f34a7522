package software

import (
	"fmt"
	"image"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggui"
)

// Texture is a texture handle of the software canvas.
type Texture struct {
	buf           *gg.ImageBuf
	width, height int
}

// Size returns the texture size in pixels.
func (t *Texture) Size() (width, height int) {
	return t.width, t.height
}

// CreateTexture implements ggui.Textures. The pixels are copied.
func (c *Canvas) CreateTexture(img *image.RGBA) (ggui.Texture, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("software: create texture: empty image %v", b)
	}
	buf := gg.ImageBufFromImage(img)
	if buf == nil {
		return nil, fmt.Errorf("software: create texture: conversion of %v failed", b)
	}
	ggui.Logger().Debug("software: texture created", "width", b.Dx(), "height", b.Dy())
	return &Texture{buf: buf, width: b.Dx(), height: b.Dy()}, nil
}

// DeleteTexture implements ggui.Textures. Drawing a deleted texture
// records ErrUnknownTexture.
func (c *Canvas) DeleteTexture(tex ggui.Texture) error {
	if tex == nil {
		return nil
	}
	t, ok := tex.(*Texture)
	if !ok {
		return fmt.Errorf("%w: %T", ErrUnknownTexture, tex)
	}
	if t.buf == nil {
		return fmt.Errorf("%w: deleted twice", ErrUnknownTexture)
	}
	t.buf = nil
	return nil
}
