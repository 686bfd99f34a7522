package ggui

import "errors"

// Protocol violations. These indicate a bug in a composite and are raised
// with panic, wrapped with the offending operation.
var (
	// ErrSteppedAfterDone is raised when a terminated widget is stepped.
	ErrSteppedAfterDone = errors.New("ggui: widget stepped after termination")

	// ErrUnbalancedScope is raised when the scope stack is popped past its
	// root or left non-empty at the end of a frame.
	ErrUnbalancedScope = errors.New("ggui: unbalanced scope stack")
)

// Runtime errors.
var (
	// ErrHostClosed is returned by Run when the host asks to close before
	// the root widget terminated.
	ErrHostClosed = errors.New("ggui: host closed")

	// ErrFutureCanceled is returned by a Task whose computation was
	// canceled before producing a value.
	ErrFutureCanceled = errors.New("ggui: future canceled")

	// ErrInvalidColor is returned by ParseColor for unsupported values.
	ErrInvalidColor = errors.New("ggui: invalid color")

	// ErrUnknownColor is returned by ParseColor for unknown color names.
	ErrUnknownColor = errors.New("ggui: unknown color name")
)
