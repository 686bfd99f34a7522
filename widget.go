package ggui

import (
	"fmt"
	"io"
)

// Result is the outcome of a single Step: either still running, or done
// with a value.
type Result[T any] struct {
	Value T
	Done  bool
}

// Running returns a result that reports no termination.
func Running[T any]() Result[T] {
	return Result[T]{}
}

// Done returns a terminating result carrying v.
func Done[T any](v T) Result[T] {
	return Result[T]{Value: v, Done: true}
}

// Widget is a resumable unit of UI computation.
//
// Step performs this frame's side effects (drawing, reading input) and
// either reports Running, or terminates with a value. A widget that has
// terminated must not be stepped again. A non-nil error aborts the frame
// and propagates through every enclosing composite.
//
// Widgets holding resources may also implement io.Closer; composites close
// children they abandon before termination.
type Widget[T any] interface {
	Step(ctx *Context) (Result[T], error)
}

// Func adapts a plain function to the Widget interface.
type Func[T any] func(ctx *Context) (Result[T], error)

// Step calls f(ctx).
func (f Func[T]) Step(ctx *Context) (Result[T], error) {
	return f(ctx)
}

// Event is a labelled result, produced by Tag. Events let widgets with
// different result types share one Orr.
type Event struct {
	Tag   string
	Value any
}

func (e Event) String() string {
	return fmt.Sprintf("%s %v", e.Tag, e.Value)
}

// latch records termination and enforces the no-step-after-done rule.
type latch struct {
	done bool
}

func (l *latch) check(op string) {
	CheckStep(l.done, op)
}

// CheckStep panics with ErrSteppedAfterDone when done is set. Widgets
// outside this package call it at the top of Step.
func CheckStep(done bool, op string) {
	if done {
		Logger().Error("widget stepped after termination", "op", op)
		panic(fmt.Errorf("%w: %s", ErrSteppedAfterDone, op))
	}
}

// Close closes w if it implements io.Closer and is a no-op otherwise.
// Errors are logged rather than returned: abandonment happens on paths
// that have already produced a result.
func Close(w any) {
	c, ok := w.(io.Closer)
	if !ok {
		return
	}
	if err := c.Close(); err != nil {
		Logger().Warn("closing abandoned widget", "err", err)
	}
}
