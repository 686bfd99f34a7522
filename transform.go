package ggui

// TF relates content space and screen space for one frame of a pan/zoom
// view. It is recomputed every frame and compared with == to decide
// whether overlay content must be rebuilt.
type TF struct {
	// C2S maps content space to screen space.
	C2S Matrix
	// S2C maps screen space to content space.
	S2C Matrix
	// ViewC is the visible viewport in content space, margins included.
	// Its corners may be swapped when an axis is flipped.
	ViewC Rect
	// ViewS is the widget rectangle in screen space.
	ViewS Rect
	// Hovered is true while the pointer is over the view, and stays true
	// during a pan that started inside it. Overlay controls such as
	// panzoom.Handle only pick up presses while it is set.
	Hovered bool
}

// ToScreen maps a content-space point to screen space.
func (tf TF) ToScreen(p Point) Point {
	return tf.C2S.TransformPoint(p)
}

// ToContent maps a screen-space point to content space.
func (tf TF) ToContent(p Point) Point {
	return tf.S2C.TransformPoint(p)
}

// Zoom returns the content-to-screen scale factors.
func (tf TF) Zoom() (x, y float64) {
	return tf.C2S.A, tf.C2S.E
}
