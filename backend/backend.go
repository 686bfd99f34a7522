package backend

import (
	"errors"
	"image"

	"github.com/gogpu/ggui"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not
	// registered.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrInvalidSize is returned for surfaces without pixels.
	ErrInvalidSize = errors.New("backend: invalid surface size")
)

// BackendSoftware is the name of the gg software backend.
const BackendSoftware = "software"

// Backend creates drawing surfaces.
type Backend interface {
	// Name returns the backend identifier, e.g. "software".
	Name() string

	// NewSurface creates a surface of the given size in pixels.
	NewSurface(width, height int) (Surface, error)
}

// Surface is a canvas with its texture store and a readable pixel buffer.
type Surface interface {
	ggui.Canvas
	ggui.Textures

	// Clear fills the whole surface with col and drops all clipping.
	Clear(col ggui.Color)

	// Flush finishes the frame and reports the first drawing error since
	// the previous Flush.
	Flush() error

	// Pixels returns the rendered pixels.
	Pixels() image.Image

	// Close releases the surface and its textures.
	Close() error
}
