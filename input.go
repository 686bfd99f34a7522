package ggui

// Mouse buttons, indexing Input.MouseDown and Input.MouseClicked.
const (
	MouseLeft = iota
	MouseRight
	MouseMiddle

	mouseButtons
)

// Input is the per-frame input snapshot supplied by the host. Widgets only
// read it.
type Input struct {
	// MousePos is the pointer position in screen space.
	MousePos Point
	// MouseDelta is the pointer movement since the previous frame.
	MouseDelta Point
	// MouseDown reports the buttons currently held.
	MouseDown [mouseButtons]bool
	// MouseClicked reports the buttons pressed during this frame.
	MouseClicked [mouseButtons]bool
	// Wheel is the vertical wheel delta in notches; positive scrolls up.
	Wheel float64
}

// AnyDown reports whether any of the given buttons is held.
func (in Input) AnyDown(buttons ...int) bool {
	for _, b := range buttons {
		if in.MouseDown[b] {
			return true
		}
	}
	return false
}

// AnyClicked reports whether any of the given buttons was pressed this frame.
func (in Input) AnyClicked(buttons ...int) bool {
	for _, b := range buttons {
		if in.MouseClicked[b] {
			return true
		}
	}
	return false
}
