// Package ggui provides step-driven, immediate-mode widget composition on
// top of the gg drawing library.
//
// # Overview
//
// A widget is a resumable computation. The host loop calls [Widget.Step]
// once per frame; each call either draws and reports that the widget is
// still running, or terminates with exactly one result value. Nothing is
// retained between frames except the state the widgets themselves hold.
//
//	root := ggui.Orr(
//	    ggui.Tag("quit", button),
//	    ggui.Tag("plot", ggui.Map(frame.View("plot", st, content), toAny)),
//	)
//	ev, err := ggui.Run(ctx, host, root)
//
// # Composition
//
// Widgets are combined with operators: [Orr] steps children side by side
// and stops at the first terminator, [MultiOrr] collects every terminator
// of a pass, [Forever] restarts a widget, [Stateful] threads a result back
// into the next widget, [Tag] and [Map] reshape results.
//
// Every composed child is stepped inside its own identifier scope (see
// [Context.Scoped]) so same-named controls in a list stay distinct.
//
// # Async
//
// Long computations run on their own goroutine via [Go]. [Block] and
// [RemoteAction] sample their results without ever blocking a frame.
//
// # Coordinate System
//
// Screen space is in pixels with the origin at the top-left of the window.
// Content space is whatever the application chooses; a [TF] relates the
// two for pan/zoom overlays.
package ggui
