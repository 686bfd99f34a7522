// Package headless provides a ggui.Host without a window. Input is set
// programmatically, like a puppet, and frames are rendered into an
// offscreen surface that can be saved as PNG.
//
// It drives automated tests and scripted sessions:
//
//	h, err := headless.New(500, 500, headless.WithMaxFrames(100),
//		headless.WithScript(func(frame uint64, h *headless.Host) {
//			if frame == 10 {
//				h.SetMousePos(250, 250)
//				h.Scroll(1)
//			}
//		}))
//	v, err := ggui.Run(ctx, h, root)
package headless

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/gogpu/ggui"
	"github.com/gogpu/ggui/backend"
	_ "github.com/gogpu/ggui/backend/software" // registers the default backend
)

// Script is called at the start of every frame, before the input
// snapshot is taken.
type Script func(frame uint64, h *Host)

// Option configures a Host.
type Option func(*Host)

// WithMaxFrames makes the host ask to close after n frames. Zero means no
// limit.
func WithMaxFrames(n uint64) Option {
	return func(h *Host) { h.maxFrames = n }
}

// WithScript sets the per-frame input script.
func WithScript(s Script) Option {
	return func(h *Host) { h.script = s }
}

// WithBackground sets the color the surface is cleared to every frame.
// Default white.
func WithBackground(c ggui.Color) Option {
	return func(h *Host) { h.background = c }
}

// WithBackend selects a registered backend by name instead of the
// default one.
func WithBackend(name string) Option {
	return func(h *Host) { h.backendName = name }
}

// Host is a windowless ggui.Host with puppet input.
type Host struct {
	surface       backend.Surface
	width, height int
	background    ggui.Color
	backendName   string
	maxFrames     uint64
	script        Script
	frame         uint64
	closed        bool

	pos, lastPos ggui.Point
	held         [3]bool
	clicks       [3]bool
	prevDown     [3]bool
	wheel        float64
}

var _ ggui.Host = (*Host)(nil)

// New creates a host with a surface of the given size. The pointer starts
// outside the surface.
func New(width, height int, opts ...Option) (*Host, error) {
	h := &Host{
		width:      width,
		height:     height,
		background: ggui.White,
		pos:        ggui.Pt(-1, -1),
		lastPos:    ggui.Pt(-1, -1),
	}
	for _, opt := range opts {
		opt(h)
	}

	var b backend.Backend
	if h.backendName != "" {
		var err error
		if b, err = backend.Get(h.backendName); err != nil {
			return nil, err
		}
	} else if b = backend.Default(); b == nil {
		return nil, backend.ErrBackendNotAvailable
	}
	s, err := b.NewSurface(width, height)
	if err != nil {
		return nil, fmt.Errorf("headless: %s surface: %w", b.Name(), err)
	}
	h.surface = s
	ggui.Logger().Debug("headless: host created", "backend", b.Name(), "width", width, "height", height)
	return h, nil
}

// BeginFrame implements ggui.Host.
func (h *Host) BeginFrame() (ggui.Input, ggui.Canvas, ggui.Rect, error) {
	if h.script != nil {
		h.script(h.frame, h)
	}

	in := ggui.Input{
		MousePos:   h.pos,
		MouseDelta: h.pos.Sub(h.lastPos),
		Wheel:      h.wheel,
	}
	for i := range h.held {
		down := h.held[i] || h.clicks[i]
		in.MouseDown[i] = down
		in.MouseClicked[i] = down && !h.prevDown[i]
		h.prevDown[i] = down
		h.clicks[i] = false
	}
	h.wheel = 0
	h.lastPos = h.pos

	h.surface.Clear(h.background)
	return in, h.surface, ggui.R(0, 0, float64(h.width), float64(h.height)), nil
}

// EndFrame implements ggui.Host.
func (h *Host) EndFrame() error {
	h.frame++
	return h.surface.Flush()
}

// ShouldClose implements ggui.Host.
func (h *Host) ShouldClose() bool {
	return h.closed || (h.maxFrames > 0 && h.frame >= h.maxFrames)
}

// RequestClose makes ShouldClose report true.
func (h *Host) RequestClose() {
	h.closed = true
}

// Frame returns the number of completed frames.
func (h *Host) Frame() uint64 {
	return h.frame
}

// SetMousePos moves the pointer. The move shows up as MouseDelta in the
// next frame.
func (h *Host) SetMousePos(x, y float64) {
	h.pos = ggui.Pt(x, y)
}

// MouseDown presses and holds a button.
func (h *Host) MouseDown(button int) {
	h.held[button] = true
}

// MouseUp releases a button.
func (h *Host) MouseUp(button int) {
	h.held[button] = false
}

// Click presses a button for the next frame only.
func (h *Host) Click(button int) {
	h.clicks[button] = true
}

// Scroll turns the wheel by delta notches in the next frame. Positive
// scrolls up.
func (h *Host) Scroll(delta float64) {
	h.wheel += delta
}

// Textures returns the texture store of the surface.
func (h *Host) Textures() ggui.Textures {
	return h.surface
}

// Image returns the pixels of the last frame.
func (h *Host) Image() image.Image {
	return h.surface.Pixels()
}

// SavePNG writes the last frame to path.
func (h *Host) SavePNG(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("headless: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("headless: %w", cerr)
		}
	}()
	if enc, ok := h.surface.(pngEncoder); ok {
		err = enc.EncodePNG(f)
	} else {
		err = png.Encode(f, h.surface.Pixels())
	}
	if err != nil {
		return fmt.Errorf("headless: encode %s: %w", path, err)
	}
	return nil
}

// pngEncoder is implemented by surfaces with their own PNG encoder, such
// as the software backend.
type pngEncoder interface {
	EncodePNG(w io.Writer) error
}

// Close releases the surface.
func (h *Host) Close() error {
	return h.surface.Close()
}
