package ggui

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
)

// Future is the handle of a computation running outside the frame loop.
// Done must never block.
type Future[T any] interface {
	// Done reports whether the computation has finished.
	Done() bool
	// Result returns the outcome. It blocks until Done reports true.
	Result() (T, error)
	// Cancel asks the computation to stop. Cancellation is cooperative.
	Cancel()
}

type outcome[T any] struct {
	value T
	err   error
}

// Task is a Future running a function on its own goroutine.
type Task[T any] struct {
	cancel context.CancelFunc
	ch     chan outcome[T]

	mu  sync.Mutex
	out *outcome[T]
}

// Go starts fn on a new goroutine and returns its handle. The context
// passed to fn is canceled by Task.Cancel or when ctx is canceled.
//
// A panic inside fn is recovered and reported as the task's error.
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) *Task[T] {
	ctx, cancel := context.WithCancel(ctx)
	t := &Task[T]{
		cancel: cancel,
		ch:     make(chan outcome[T], 1),
	}
	go func() {
		defer cancel()
		var o outcome[T]
		defer func() {
			if r := recover(); r != nil {
				o.err = fmt.Errorf("ggui: task panicked: %v", r)
			}
			t.ch <- o
		}()
		o.value, o.err = fn(ctx)
		if o.err != nil && errors.Is(o.err, context.Canceled) {
			o.err = fmt.Errorf("%w: %w", ErrFutureCanceled, o.err)
		}
	}()
	return t
}

// Done implements Future.
func (t *Task[T]) Done() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.out != nil {
		return true
	}
	select {
	case o := <-t.ch:
		t.out = &o
		return true
	default:
		return false
	}
}

// Result implements Future.
func (t *Task[T]) Result() (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.out == nil {
		o := <-t.ch
		t.out = &o
	}
	return t.out.value, t.out.err
}

// Cancel implements Future.
func (t *Task[T]) Cancel() {
	t.cancel()
}

// futureGuard cancels a future at most once, and not at all once the
// future has been consumed.
type futureGuard struct {
	once   sync.Once
	cancel func()
}

func (g *futureGuard) abandon(reason string) {
	g.once.Do(func() {
		Logger().Warn("canceling unfinished future", "reason", reason)
		g.cancel()
	})
}

func (g *futureGuard) settle() {
	g.once.Do(func() {})
}

// BlockWidget waits for a Future without blocking the frame loop.
type BlockWidget[T any] struct {
	f       Future[T]
	guard   *futureGuard
	cleanup runtime.Cleanup
	latch
}

// Block returns a widget that keeps running until f is done and then
// terminates with its value, or returns its error.
//
// Closing the widget before that cancels f. A widget that is dropped
// without being closed cancels f when it is garbage collected.
func Block[T any](f Future[T]) *BlockWidget[T] {
	g := &futureGuard{cancel: f.Cancel}
	b := &BlockWidget[T]{f: f, guard: g}
	b.cleanup = runtime.AddCleanup(b, func(g *futureGuard) {
		g.abandon("collected")
	}, g)
	return b
}

// Step implements Widget.
func (b *BlockWidget[T]) Step(*Context) (Result[T], error) {
	b.check("Block")
	if !b.f.Done() {
		return Running[T](), nil
	}
	b.done = true
	b.guard.settle()
	b.cleanup.Stop()
	v, err := b.f.Result()
	if err != nil {
		return Running[T](), err
	}
	return Done(v), nil
}

// Close cancels the future if it has not been consumed. Close is
// idempotent.
func (b *BlockWidget[T]) Close() error {
	if b.done {
		return nil
	}
	b.done = true
	b.cleanup.Stop()
	b.guard.abandon("closed")
	return nil
}

// RemoteAction pairs a long-running computation with a separate widget
// that receives its outcome. The action side can live in one part of the
// tree, showing progress, while the value side waits elsewhere.
type RemoteAction[T any] struct {
	f     Future[T]
	ch    chan outcome[T]
	sent  atomic.Bool
	guard *futureGuard
}

// Remote wraps f.
func Remote[T any](f Future[T]) *RemoteAction[T] {
	return &RemoteAction[T]{
		f:     f,
		ch:    make(chan outcome[T], 1),
		guard: &futureGuard{cancel: f.Cancel},
	}
}

// Pending reports whether the outcome has not been delivered yet.
func (r *RemoteAction[T]) Pending() bool {
	return !r.sent.Load()
}

// Action returns the polling widget. Each step checks the future once and
// forwards its outcome to the value side exactly once. Action never
// terminates; closing it while the future is pending cancels the future.
func (r *RemoteAction[T]) Action() Widget[T] {
	return &remoteAction[T]{r: r}
}

// Value returns a widget that terminates with the outcome once Action has
// delivered it, or returns the outcome's error. Only one Value widget
// receives the outcome.
func (r *RemoteAction[T]) Value() Widget[T] {
	return &remoteValue[T]{ch: r.ch}
}

// RemoteWidget is shorthand for Remote(f) split into its two widgets.
func RemoteWidget[T any](f Future[T]) (action, value Widget[T]) {
	r := Remote(f)
	return r.Action(), r.Value()
}

type remoteAction[T any] struct {
	r *RemoteAction[T]
}

func (a *remoteAction[T]) Step(*Context) (Result[T], error) {
	r := a.r
	if !r.sent.Load() && r.f.Done() {
		r.guard.settle()
		v, err := r.f.Result()
		r.ch <- outcome[T]{value: v, err: err}
		r.sent.Store(true)
	}
	return Running[T](), nil
}

func (a *remoteAction[T]) Close() error {
	if !a.r.sent.Load() {
		a.r.guard.abandon("action closed")
	}
	return nil
}

type remoteValue[T any] struct {
	ch <-chan outcome[T]
	latch
}

func (v *remoteValue[T]) Step(*Context) (Result[T], error) {
	v.check("RemoteValue")
	select {
	case o := <-v.ch:
		v.done = true
		if o.err != nil {
			return Running[T](), o.err
		}
		return Done(o.value), nil
	default:
		return Running[T](), nil
	}
}
