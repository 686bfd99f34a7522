package recorder

import (
	"errors"
	"slices"

	"github.com/gogpu/ggui"
)

// ErrUnbalancedClip is returned by Playback when the recording pops more
// clip rectangles than it pushed.
var ErrUnbalancedClip = errors.New("recorder: unbalanced clip stack")

// Recorder is a ggui.Canvas that appends every call to a command list.
type Recorder struct {
	commands  []Command
	clipDepth int
}

var _ ggui.Canvas = (*Recorder)(nil)

// New creates an empty Recorder.
func New() *Recorder {
	return &Recorder{}
}

// Line implements ggui.Canvas.
func (r *Recorder) Line(p0, p1 ggui.Point, col ggui.Color, thickness float64) {
	r.commands = append(r.commands, LineCommand{P0: p0, P1: p1, Color: col, Thickness: thickness})
}

// Rect implements ggui.Canvas.
func (r *Recorder) Rect(rect ggui.Rect, col ggui.Color, thickness, rounding float64) {
	r.commands = append(r.commands, RectCommand{Rect: rect, Color: col, Thickness: thickness, Rounding: rounding})
}

// RectFilled implements ggui.Canvas.
func (r *Recorder) RectFilled(rect ggui.Rect, col ggui.Color, rounding float64) {
	r.commands = append(r.commands, RectFilledCommand{Rect: rect, Color: col, Rounding: rounding})
}

// Circle implements ggui.Canvas.
func (r *Recorder) Circle(center ggui.Point, radius float64, col ggui.Color, thickness float64, segments int) {
	r.commands = append(r.commands, CircleCommand{
		Center:    center,
		Radius:    radius,
		Color:     col,
		Thickness: thickness,
		Segments:  segments,
	})
}

// Polyline implements ggui.Canvas. The points are copied.
func (r *Recorder) Polyline(pts []ggui.Point, col ggui.Color, closed bool, thickness float64) {
	r.commands = append(r.commands, PolylineCommand{
		Points:    slices.Clone(pts),
		Color:     col,
		Closed:    closed,
		Thickness: thickness,
	})
}

// Polygon implements ggui.Canvas. The points are copied.
func (r *Recorder) Polygon(pts []ggui.Point, col ggui.Color) {
	r.commands = append(r.commands, PolygonCommand{Points: slices.Clone(pts), Color: col})
}

// Text implements ggui.Canvas.
func (r *Recorder) Text(p ggui.Point, col ggui.Color, s string) {
	r.commands = append(r.commands, TextCommand{Pos: p, Color: col, Text: s})
}

// Image implements ggui.Canvas.
func (r *Recorder) Image(tex ggui.Texture, p0, p1, uv0, uv1 ggui.Point) {
	r.commands = append(r.commands, ImageCommand{Texture: tex, P0: p0, P1: p1, UV0: uv0, UV1: uv1})
}

// PushClipRect implements ggui.Canvas.
func (r *Recorder) PushClipRect(rect ggui.Rect, intersect bool) {
	r.clipDepth++
	r.commands = append(r.commands, PushClipCommand{Rect: rect, Intersect: intersect})
}

// PopClipRect implements ggui.Canvas.
func (r *Recorder) PopClipRect() {
	r.clipDepth--
	r.commands = append(r.commands, PopClipCommand{})
}

// ClipDepth returns the number of clip rectangles currently pushed.
func (r *Recorder) ClipDepth() int {
	return r.clipDepth
}

// Commands returns the commands recorded so far.
func (r *Recorder) Commands() []Command {
	return r.commands
}

// Reset discards the recorded commands, keeping the allocated storage.
func (r *Recorder) Reset() {
	clear(r.commands)
	r.commands = r.commands[:0]
	r.clipDepth = 0
}

// Finish returns the recorded commands as a Recording and resets r.
func (r *Recorder) Finish() *Recording {
	rec := &Recording{commands: r.commands}
	r.commands = nil
	r.clipDepth = 0
	return rec
}

// Recording is an immutable list of recorded commands.
type Recording struct {
	commands []Command
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Count returns how many commands of type t were recorded.
func (r *Recording) Count(t CommandType) int {
	n := 0
	for _, c := range r.commands {
		if c.Type() == t {
			n++
		}
	}
	return n
}

// Playback replays the recording onto c. Clip rectangles still pushed at
// the end are popped so that c is left balanced.
func (r *Recording) Playback(c ggui.Canvas) error {
	depth := 0
	defer func() {
		for ; depth > 0; depth-- {
			c.PopClipRect()
		}
	}()
	for _, cmd := range r.commands {
		switch cmd := cmd.(type) {
		case LineCommand:
			c.Line(cmd.P0, cmd.P1, cmd.Color, cmd.Thickness)
		case RectCommand:
			c.Rect(cmd.Rect, cmd.Color, cmd.Thickness, cmd.Rounding)
		case RectFilledCommand:
			c.RectFilled(cmd.Rect, cmd.Color, cmd.Rounding)
		case CircleCommand:
			c.Circle(cmd.Center, cmd.Radius, cmd.Color, cmd.Thickness, cmd.Segments)
		case PolylineCommand:
			c.Polyline(cmd.Points, cmd.Color, cmd.Closed, cmd.Thickness)
		case PolygonCommand:
			c.Polygon(cmd.Points, cmd.Color)
		case TextCommand:
			c.Text(cmd.Pos, cmd.Color, cmd.Text)
		case ImageCommand:
			c.Image(cmd.Texture, cmd.P0, cmd.P1, cmd.UV0, cmd.UV1)
		case PushClipCommand:
			depth++
			c.PushClipRect(cmd.Rect, cmd.Intersect)
		case PopClipCommand:
			if depth == 0 {
				return ErrUnbalancedClip
			}
			depth--
			c.PopClipRect()
		}
	}
	return nil
}
