package ggui_test

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/gogpu/ggui"
	"github.com/gogpu/ggui/recorder"
)

var errBoom = errors.New("boom")

// scripted is a test widget: it terminates with value on step doneAt
// (never when zero) and fails on step failAt.
type scripted[T any] struct {
	doneAt, failAt int
	value          T

	steps, closes int
	scopes        [][]string
}

func (p *scripted[T]) Step(ctx *ggui.Context) (ggui.Result[T], error) {
	p.steps++
	p.scopes = append(p.scopes, ctx.Scope())
	if p.failAt == p.steps {
		return ggui.Running[T](), errBoom
	}
	if p.doneAt == p.steps {
		return ggui.Done(p.value), nil
	}
	return ggui.Running[T](), nil
}

func (p *scripted[T]) Close() error {
	p.closes++
	return nil
}

// stepper drives a widget frame by frame against a recorder.
type stepper struct {
	t     *testing.T
	rec   *recorder.Recorder
	in    ggui.Input
	frame uint64
}

func newStepper(t *testing.T) *stepper {
	return &stepper{t: t, rec: recorder.New()}
}

func step[T any](s *stepper, w ggui.Widget[T]) ggui.Result[T] {
	s.t.Helper()
	ctx := ggui.NewContext(s.in, s.rec, ggui.R(0, 0, 300, 300))
	ctx.Frame = s.frame
	s.frame++
	r, err := w.Step(ctx)
	if err != nil {
		s.t.Fatalf("frame %d: %v", ctx.Frame, err)
	}
	if d := ctx.Depth(); d != 0 {
		s.t.Fatalf("frame %d: scope depth %d after step", ctx.Frame, d)
	}
	return r
}

// fakeFuture is a Future completed by the test.
type fakeFuture struct {
	done    atomic.Bool
	cancels atomic.Int32
	value   int
	err     error
}

func (f *fakeFuture) Done() bool { return f.done.Load() }

func (f *fakeFuture) Result() (int, error) { return f.value, f.err }

func (f *fakeFuture) Cancel() { f.cancels.Add(1) }

func (f *fakeFuture) resolve(v int, err error) {
	f.value, f.err = v, err
	f.done.Store(true)
}

func expectPanic(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, target) {
			t.Errorf("recovered %v, want panic with %v", r, target)
		}
	}()
	fn()
}
