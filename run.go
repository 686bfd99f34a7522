package ggui

import (
	"context"
	"fmt"
)

// Host supplies frames to Run: an input snapshot and a canvas per frame.
type Host interface {
	// BeginFrame starts a frame and returns its input, canvas and the
	// screen region available to the root widget.
	BeginFrame() (Input, Canvas, Rect, error)
	// EndFrame flushes the frame's drawing.
	EndFrame() error
	// ShouldClose reports whether the host wants the loop to stop.
	ShouldClose() bool
}

// Run steps root once per frame until it terminates, and returns its
// value.
//
// EndFrame is called for every begun frame, also when a step returns an
// error or panics; the error or panic then propagates. When the host asks
// to close, or ctx is canceled, Run closes root and returns ErrHostClosed
// or the context's error.
func Run[T any](ctx context.Context, h Host, root Widget[T]) (value T, err error) {
	log := Logger()
	log.Info("ggui: run started")
	defer func() {
		log.Info("ggui: run stopped", "err", err)
	}()

	var zero T
	for frame := uint64(0); ; frame++ {
		if err := ctx.Err(); err != nil {
			Close(root)
			return zero, err
		}
		if h.ShouldClose() {
			Close(root)
			return zero, ErrHostClosed
		}
		r, err := runFrame(h, root, frame)
		if err != nil {
			Close(root)
			return zero, err
		}
		if r.Done {
			log.Debug("root terminated", "frame", frame)
			return r.Value, nil
		}
	}
}

func runFrame[T any](h Host, root Widget[T], frame uint64) (r Result[T], err error) {
	in, c, region, err := h.BeginFrame()
	if err != nil {
		return r, fmt.Errorf("ggui: begin frame %d: %w", frame, err)
	}
	defer func() {
		if endErr := h.EndFrame(); endErr != nil && err == nil {
			err = fmt.Errorf("ggui: end frame %d: %w", frame, endErr)
		}
	}()

	ctx := NewContext(in, c, region)
	ctx.Frame = frame
	r, err = root.Step(ctx)
	if err != nil {
		return r, err
	}
	if d := ctx.Depth(); d != 0 {
		Logger().Error("scope stack not empty after frame", "frame", frame, "depth", d)
		panic(fmt.Errorf("%w: depth %d after frame %d", ErrUnbalancedScope, d, frame))
	}
	return r, nil
}
