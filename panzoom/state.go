// Package panzoom implements a pannable, zoomable view over arbitrary
// content.
//
// A State holds the visible content-space rectangle; View steps it once
// per frame from the input snapshot and hands the resulting ggui.TF to a
// content widget that draws in content space. Dragging with the right or
// middle button pans, the wheel zooms around the cursor.
package panzoom

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/ggui"
)

var (
	// ErrAspectWithFixedAxis is returned when KeepAspect and FixAxis are
	// both set.
	ErrAspectWithFixedAxis = errors.New("panzoom: cannot fix an axis while keeping aspect ratio")

	// ErrInvalidAspect is returned for a negative or NaN aspect ratio.
	ErrInvalidAspect = errors.New("panzoom: invalid aspect ratio")

	// ErrInvalidAxis is returned for an unknown FixAxis value.
	ErrInvalidAxis = errors.New("panzoom: invalid axis")

	// ErrEmptyView is returned when the content rectangle has zero width
	// or height.
	ErrEmptyView = errors.New("panzoom: empty view")

	// ErrNoContent is returned by View when no content function is given.
	ErrNoContent = errors.New("panzoom: no content")
)

// Axis selects a coordinate axis.
type Axis int

const (
	// AxisNone fixes no axis.
	AxisNone Axis = iota
	// AxisX prevents panning and zooming along x.
	AxisX
	// AxisY prevents panning and zooming along y.
	AxisY
)

func (a Axis) String() string {
	switch a {
	case AxisNone:
		return "none"
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// DragButtons are the mouse buttons that pan the view. The left button is
// left to overlay content.
var DragButtons = []int{ggui.MouseRight, ggui.MouseMiddle}

// State is the pan and zoom state of a view. It is a plain value: copies
// are independent and == compares every field.
type State struct {
	// Left, Top, Right and Bottom are the content-space coordinates shown
	// at the corners of the frame. Right < Left or Bottom < Top flips the
	// axis.
	Left, Top, Right, Bottom float64

	// KeepAspect pins the ratio of the horizontal to the vertical zoom.
	// Zero disables it.
	KeepAspect float64

	// FixAxis disables panning and zooming along one axis.
	FixAxis Axis

	// Margins inset the frame from the widget edges, in pixels, as left,
	// top, right, bottom. Right and bottom margins are measured towards
	// positive coordinates, so [5, 5, -5, -5] insets by 5 on every side.
	Margins [4]float64

	// Dragging is set while a drag that started inside the view is in
	// progress, even if the pointer has since left it.
	Dragging bool

	// Default is the rectangle restored by Reset.
	Default ggui.Rect
}

// Option configures a State.
type Option func(*State)

// WithKeepAspect sets the pinned zoom ratio. Zero disables it.
func WithKeepAspect(ratio float64) Option {
	return func(s *State) {
		s.KeepAspect = ratio
	}
}

// WithFixAxis fixes one axis. It also disables KeepAspect, which cannot be
// combined with a fixed axis.
func WithFixAxis(a Axis) Option {
	return func(s *State) {
		s.FixAxis = a
		if a != AxisNone {
			s.KeepAspect = 0
		}
	}
}

// WithMargins sets the frame margins.
func WithMargins(left, top, right, bottom float64) Option {
	return func(s *State) {
		s.Margins = [4]float64{left, top, right, bottom}
	}
}

// New returns a state showing the rectangle from topLeft to bottomRight,
// with the aspect ratio pinned to 1 unless configured otherwise.
func New(topLeft, bottomRight ggui.Point, opts ...Option) State {
	s := State{KeepAspect: 1}
	s.ResetTo(topLeft, bottomRight)
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Validate checks the configuration fields. View calls it on every step
// because the state may be changed between frames.
func (s State) Validate() error {
	if math.IsNaN(s.KeepAspect) || s.KeepAspect < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidAspect, s.KeepAspect)
	}
	switch s.FixAxis {
	case AxisNone, AxisX, AxisY:
	default:
		return fmt.Errorf("%w: %v", ErrInvalidAxis, s.FixAxis)
	}
	if s.KeepAspect > 0 && s.FixAxis != AxisNone {
		return fmt.Errorf("%w: aspect %v, axis %v", ErrAspectWithFixedAxis, s.KeepAspect, s.FixAxis)
	}
	return nil
}

// Bounds returns the content rectangle.
func (s State) Bounds() ggui.Rect {
	return ggui.R(s.Left, s.Top, s.Right, s.Bottom)
}

// Reset restores the default rectangle.
func (s *State) Reset() {
	s.Left, s.Top = s.Default.Min.X, s.Default.Min.Y
	s.Right, s.Bottom = s.Default.Max.X, s.Default.Max.Y
}

// ResetTo replaces the default rectangle and restores it.
func (s *State) ResetTo(topLeft, bottomRight ggui.Point) {
	s.Default = ggui.Rect{Min: topLeft, Max: bottomRight}
	s.Reset()
}
