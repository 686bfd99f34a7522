package panzoom

import "github.com/gogpu/ggui"

// HandleState is a draggable control point in content space. Like State
// it is owned by the application and updated in place.
type HandleState struct {
	Pos      ggui.Point
	Dragging bool
}

// Handle returns an overlay control drawn as a circle of radius pixels
// around st.Pos. A left press within the circle while tf.Hovered is set
// starts a drag, which lasts until the button is released. In every frame
// the pointer moves during a drag, Handle moves st.Pos by the pointer
// delta and terminates with the new position.
func Handle(st *HandleState, tf ggui.TF, radius float64, col ggui.Color) ggui.Widget[ggui.Point] {
	return &handle{st: st, tf: tf, radius: radius, col: col}
}

type handle struct {
	st     *HandleState
	tf     ggui.TF
	radius float64
	col    ggui.Color
	done   bool
}

func (h *handle) Step(ctx *ggui.Context) (ggui.Result[ggui.Point], error) {
	ggui.CheckStep(h.done, "panzoom.Handle")
	in := ctx.Input
	p := h.tf.ToScreen(h.st.Pos)

	if !h.st.Dragging && h.tf.Hovered && in.MouseClicked[ggui.MouseLeft] {
		d := in.MousePos.Sub(p)
		h.st.Dragging = d.X*d.X+d.Y*d.Y <= h.radius*h.radius
	}
	if !in.MouseDown[ggui.MouseLeft] {
		h.st.Dragging = false
	}

	thickness := 1.0
	if h.st.Dragging {
		thickness = 3
	}
	ctx.Canvas.Circle(p, h.radius, h.col, thickness, 0)

	if !h.st.Dragging || in.MouseDelta.IsZero() {
		return ggui.Running[ggui.Point](), nil
	}
	h.done = true
	h.st.Pos = h.tf.ToContent(p.Add(in.MouseDelta))
	return ggui.Done(h.st.Pos), nil
}
