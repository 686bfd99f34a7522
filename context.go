package ggui

import (
	"fmt"
	"strings"
)

// Context is the per-frame state threaded through every Step call.
//
// It carries the input snapshot, the canvas to draw on, the layout region
// of the widget being stepped, and the identifier scope path. The scope
// path is only interpreted by drawing backends that need stable control
// identifiers; composites just keep it balanced.
type Context struct {
	// Input is the input snapshot for this frame.
	Input Input

	// Canvas receives all drawing for this frame.
	Canvas Canvas

	// Region is the screen-space area available to the current widget.
	Region Rect

	// Frame counts frames since the host loop started.
	Frame uint64

	scope []string
}

// NewContext creates a context for one frame.
func NewContext(in Input, c Canvas, region Rect) *Context {
	return &Context{
		Input:  in,
		Canvas: c,
		Region: region,
		scope:  make([]string, 0, 8),
	}
}

// PushID enters the identifier scope id.
func (c *Context) PushID(id string) {
	c.scope = append(c.scope, id)
}

// PopID leaves the innermost identifier scope. Popping an empty stack is a
// protocol violation and panics.
func (c *Context) PopID() {
	if len(c.scope) == 0 {
		Logger().Error("scope stack underflow", "frame", c.Frame)
		panic(fmt.Errorf("%w: pop on empty stack", ErrUnbalancedScope))
	}
	c.scope = c.scope[:len(c.scope)-1]
}

// Depth returns the number of identifier scopes currently entered.
func (c *Context) Depth() int {
	return len(c.scope)
}

// Scope returns a copy of the current scope path, outermost first.
func (c *Context) Scope() []string {
	out := make([]string, len(c.scope))
	copy(out, c.scope)
	return out
}

// ID returns name qualified by the current scope path.
func (c *Context) ID(name string) string {
	if len(c.scope) == 0 {
		return name
	}
	return strings.Join(c.scope, "/") + "/" + name
}

// Scoped runs fn inside the identifier scope id. The scope is left even if
// fn returns an error or panics.
func (c *Context) Scoped(id string, fn func() error) error {
	c.PushID(id)
	defer c.PopID()
	return fn()
}

// WithRegion runs fn with Region set to r, restoring the previous region
// afterwards.
func (c *Context) WithRegion(r Rect, fn func() error) error {
	prev := c.Region
	c.Region = r
	defer func() { c.Region = prev }()
	return fn()
}

// Hovered reports whether the pointer lies inside r.
func (c *Context) Hovered(r Rect) bool {
	return r.Canon().Contains(c.Input.MousePos)
}
