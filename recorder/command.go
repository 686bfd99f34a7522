// Package recorder provides a ggui.Canvas that records drawing calls as
// typed commands.
//
// A Recorder captures one or more frames of drawing for inspection, and
// replays them onto any other canvas:
//
//	rec := recorder.New()
//	ctx := ggui.NewContext(in, rec, region)
//	_, err := root.Step(ctx)
//	r := rec.Finish()
//	err = r.Playback(screen)
package recorder

import "github.com/gogpu/ggui"

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdLine       CommandType = iota // Line segment
	CmdRect                          // Rectangle outline
	CmdRectFilled                    // Filled rectangle
	CmdCircle                        // Circle outline
	CmdPolyline                      // Open or closed polyline
	CmdPolygon                       // Filled convex polygon
	CmdText                          // Text
	CmdImage                         // Textured quad
	CmdPushClip                      // Push clip rectangle
	CmdPopClip                       // Pop clip rectangle
)

var commandTypeNames = [...]string{
	CmdLine:       "Line",
	CmdRect:       "Rect",
	CmdRectFilled: "RectFilled",
	CmdCircle:     "Circle",
	CmdPolyline:   "Polyline",
	CmdPolygon:    "Polygon",
	CmdText:       "Text",
	CmdImage:      "Image",
	CmdPushClip:   "PushClip",
	CmdPopClip:    "PopClip",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// LineCommand draws a line segment.
type LineCommand struct {
	P0, P1    ggui.Point
	Color     ggui.Color
	Thickness float64
}

// Type implements Command.
func (LineCommand) Type() CommandType { return CmdLine }

// RectCommand strokes a rectangle.
type RectCommand struct {
	Rect      ggui.Rect
	Color     ggui.Color
	Thickness float64
	Rounding  float64
}

// Type implements Command.
func (RectCommand) Type() CommandType { return CmdRect }

// RectFilledCommand fills a rectangle.
type RectFilledCommand struct {
	Rect     ggui.Rect
	Color    ggui.Color
	Rounding float64
}

// Type implements Command.
func (RectFilledCommand) Type() CommandType { return CmdRectFilled }

// CircleCommand strokes a circle.
type CircleCommand struct {
	Center    ggui.Point
	Radius    float64
	Color     ggui.Color
	Thickness float64
	Segments  int
}

// Type implements Command.
func (CircleCommand) Type() CommandType { return CmdCircle }

// PolylineCommand strokes a polyline.
type PolylineCommand struct {
	Points    []ggui.Point
	Color     ggui.Color
	Closed    bool
	Thickness float64
}

// Type implements Command.
func (PolylineCommand) Type() CommandType { return CmdPolyline }

// PolygonCommand fills a convex polygon.
type PolygonCommand struct {
	Points []ggui.Point
	Color  ggui.Color
}

// Type implements Command.
func (PolygonCommand) Type() CommandType { return CmdPolygon }

// TextCommand draws text with its top-left corner at Pos.
type TextCommand struct {
	Pos   ggui.Point
	Color ggui.Color
	Text  string
}

// Type implements Command.
func (TextCommand) Type() CommandType { return CmdText }

// ImageCommand draws the UV0..UV1 region of a texture into P0..P1.
type ImageCommand struct {
	Texture  ggui.Texture
	P0, P1   ggui.Point
	UV0, UV1 ggui.Point
}

// Type implements Command.
func (ImageCommand) Type() CommandType { return CmdImage }

// PushClipCommand restricts drawing to Rect.
type PushClipCommand struct {
	Rect      ggui.Rect
	Intersect bool
}

// Type implements Command.
func (PushClipCommand) Type() CommandType { return CmdPushClip }

// PopClipCommand restores the previous clip.
type PopClipCommand struct{}

// Type implements Command.
func (PopClipCommand) Type() CommandType { return CmdPopClip }
