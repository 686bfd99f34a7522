package panzoom

import (
	"math"

	"github.com/gogpu/ggui"
)

// zoomBase is the zoom factor of one wheel notch.
const zoomBase = 1.3

// Advance computes one frame of the view shown in the screen rectangle vp.
// It returns the state updated by the input (pan, wheel zoom, drag latch)
// and the transform used to draw this frame. s itself is not modified.
//
// The transform is derived from s as it was at the start of the frame, so
// input moves the picture from the next frame on.
func Advance(s State, vp ggui.Rect, in ggui.Input) (State, ggui.TF, error) {
	if err := s.Validate(); err != nil {
		return s, ggui.TF{}, err
	}
	if s.Left == s.Right || s.Top == s.Bottom {
		return s, ggui.TF{}, ErrEmptyView
	}

	origin := vp.Min
	frameW := math.Max(1, vp.Dx()-s.Margins[0]+s.Margins[2])
	frameH := math.Max(1, vp.Dy()-s.Margins[1]+s.Margins[3])
	w := math.Max(1, vp.Dx())
	h := math.Max(1, vp.Dy())

	zx := frameW / (s.Right - s.Left)
	zy := frameH / (s.Bottom - s.Top)

	// The aspect clamp widens the shown range locally; the stored bounds
	// stay as requested so that resizing the widget does not drift them.
	left, right := s.Left, s.Right
	top, bottom := s.Top, s.Bottom
	if a := s.KeepAspect; a > 0 {
		if math.Abs(zx) > math.Abs(zy)*a {
			zx = math.Copysign(math.Abs(zy)*a, zx)
			c := (left + right) / 2
			left = c - frameW/zx/2
			right = c + frameW/zx/2
		}
		if math.Abs(zy) > math.Abs(zx)/a {
			zy = math.Copysign(math.Abs(zx)/a, zy)
			c := (top + bottom) / 2
			top = c - frameH/zy/2
			bottom = c + frameH/zy/2
		}
	}

	view := ggui.R(origin.X, origin.Y, origin.X+w, origin.Y+h)
	hovered := view.Contains(in.MousePos)

	next := s
	if !next.Dragging && hovered && in.AnyClicked(DragButtons...) {
		next.Dragging = true
	}
	if !in.AnyDown(DragButtons...) {
		next.Dragging = false
	}

	if d := in.MouseDelta; next.Dragging && !d.IsZero() {
		if s.FixAxis != AxisX {
			next.Left -= d.X / zx
			next.Right -= d.X / zx
		}
		if s.FixAxis != AxisY {
			next.Top -= d.Y / zy
			next.Bottom -= d.Y / zy
		}
	}

	if (hovered || next.Dragging) && in.Wheel != 0 {
		f := math.Pow(zoomBase, in.Wheel)
		if s.FixAxis != AxisX {
			rel := (in.MousePos.X-origin.X-s.Margins[0])/frameW*2 - 1
			next.Left, next.Right = zoomAround(next.Left, next.Right, rel*(right-left), f)
		}
		if s.FixAxis != AxisY {
			rel := (in.MousePos.Y-origin.Y-s.Margins[1])/frameH*2 - 1
			next.Top, next.Bottom = zoomAround(next.Top, next.Bottom, rel*(bottom-top), f)
		}
	}

	// Content-space bounds of the whole widget, margins included.
	ls := left - s.Margins[0]/zx
	ts := top - s.Margins[1]/zy
	rs := right - s.Margins[2]/zx
	bs := bottom - s.Margins[3]/zy

	tf := ggui.TF{
		C2S:     ggui.ScaleTranslate(zx, zy, origin.X-ls*zx, origin.Y-ts*zy),
		S2C:     ggui.ScaleTranslate(1/zx, 1/zy, ls-origin.X/zx, ts-origin.Y/zy),
		ViewC:   ggui.R(ls, ts, rs, bs),
		ViewS:   view,
		Hovered: hovered || next.Dragging,
	}
	return next, tf, nil
}

// zoomAround scales the interval [lo, hi] by 1/f keeping fixed the point
// at offset shown from the centre of the displayed span.
func zoomAround(lo, hi, shown, f float64) (float64, float64) {
	span := hi - lo
	m := shown/span/2 + 0.5
	return lo + span*m - span/f*m, hi - span*(1-m) + span/f*(1-m)
}

// Event is the result of a View: the view's name, the new state if it
// changed, and the content's value if the content terminated.
type Event[T any] struct {
	Name    string
	State   *State
	Content *T
}

// ViewOption configures a View.
type ViewOption func(*viewConfig)

type viewConfig struct {
	width, height float64
}

// WithSize fixes the widget size in pixels. A zero dimension takes the
// available region.
func WithSize(width, height float64) ViewOption {
	return func(c *viewConfig) {
		c.width, c.height = width, height
	}
}

// View returns the pan/zoom widget for st, drawing the widget built by
// content under the current transform.
//
// Content is rebuilt whenever the transform changes; the previous content
// widget is closed. The widget terminates on the first frame in which the
// state changed or the content terminated. The new state is also written
// back to st.
func View[T any](name string, st *State, content func(ggui.TF) ggui.Widget[T], opts ...ViewOption) ggui.Widget[Event[T]] {
	var cfg viewConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return &view[T]{name: name, st: st, gen: content, cfg: cfg}
}

type view[T any] struct {
	name string
	st   *State
	gen  func(ggui.TF) ggui.Widget[T]
	cfg  viewConfig

	tf      ggui.TF
	content ggui.Widget[T]
	done    bool
}

// region returns the widget rectangle within the available region.
func (c viewConfig) region(avail ggui.Rect) ggui.Rect {
	w, h := c.width, c.height
	if w <= 0 {
		w = avail.Dx()
	}
	if h <= 0 {
		h = avail.Dy()
	}
	return ggui.Rect{Min: avail.Min, Max: avail.Min.Add(ggui.Pt(w, h))}
}

func (v *view[T]) Step(ctx *ggui.Context) (ggui.Result[Event[T]], error) {
	ggui.CheckStep(v.done, "panzoom.View")
	if v.gen == nil {
		return ggui.Running[Event[T]](), ErrNoContent
	}
	next, tf, err := Advance(*v.st, v.cfg.region(ctx.Region), ctx.Input)
	if err != nil {
		return ggui.Running[Event[T]](), err
	}

	if v.content == nil || tf != v.tf {
		ggui.Close(v.content)
		ggui.Logger().Debug("rebuilding view content", "view", ctx.ID(v.name))
		v.tf = tf
		v.content = v.gen(tf)
	}

	var r ggui.Result[T]
	err = ctx.Scoped(v.name, func() error {
		return ctx.WithRegion(tf.ViewS, func() error {
			ctx.Canvas.PushClipRect(tf.ViewS, true)
			defer ctx.Canvas.PopClipRect()
			var err error
			r, err = v.content.Step(ctx)
			return err
		})
	})
	if err != nil {
		return ggui.Running[Event[T]](), err
	}
	if r.Done {
		v.content = nil
	}

	changed := next != *v.st
	if !changed && !r.Done {
		return ggui.Running[Event[T]](), nil
	}

	v.done = true
	ggui.Close(v.content)
	v.content = nil
	ev := Event[T]{Name: v.name}
	if changed {
		*v.st = next
		s := next
		ev.State = &s
	}
	if r.Done {
		ev.Content = &r.Value
	}
	return ggui.Done(ev), nil
}

// Close closes the content widget.
func (v *view[T]) Close() error {
	ggui.Close(v.content)
	v.content = nil
	v.done = true
	return nil
}
