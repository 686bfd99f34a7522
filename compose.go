package ggui

import "strconv"

// Orr steps its children side by side and terminates with the first
// child's result.
//
// Every pass steps each child once, in order, inside the identifier scope
// of its index. When a child terminates the pass still continues, so every
// child renders in every frame; at the end of the pass Orr terminates with
// the lowest-index terminator's value. Other terminators of that pass are
// discarded and the children still running are closed.
//
// Orr with no children never terminates.
func Orr[T any](ws ...Widget[T]) Widget[T] {
	return &orr[T]{children: ws}
}

type orr[T any] struct {
	children []Widget[T]
	latch
}

func (o *orr[T]) Step(ctx *Context) (Result[T], error) {
	o.check("Orr")
	winner := Running[T]()
	finished, err := stepPass(ctx, o.children, func(_ int, r Result[T]) {
		if !winner.Done {
			winner = r
		}
	})
	if err != nil {
		return Running[T](), err
	}
	if !winner.Done {
		return winner, nil
	}
	o.done = true
	closeUnfinished(o.children, finished)
	return winner, nil
}

// Close closes every child. Closing a terminated Orr is a no-op.
func (o *orr[T]) Close() error {
	if !o.done {
		o.done = true
		closeUnfinished(o.children, nil)
	}
	return nil
}

// MultiOrr drives its children like Orr, but terminates with the values of
// every child that terminated during the pass, in child order. The slice
// is never empty.
func MultiOrr[T any](ws ...Widget[T]) Widget[[]T] {
	return &multiOrr[T]{children: ws}
}

type multiOrr[T any] struct {
	children []Widget[T]
	latch
}

func (o *multiOrr[T]) Step(ctx *Context) (Result[[]T], error) {
	o.check("MultiOrr")
	var values []T
	finished, err := stepPass(ctx, o.children, func(_ int, r Result[T]) {
		values = append(values, r.Value)
	})
	if err != nil {
		return Running[[]T](), err
	}
	if len(values) == 0 {
		return Running[[]T](), nil
	}
	o.done = true
	closeUnfinished(o.children, finished)
	return Done(values), nil
}

// Close closes every child.
func (o *multiOrr[T]) Close() error {
	if !o.done {
		o.done = true
		closeUnfinished(o.children, nil)
	}
	return nil
}

// stepPass steps every child once inside its index scope and reports each
// terminator to onDone. It returns which children terminated, or nil when
// none did. An error stops the pass immediately.
func stepPass[T any](ctx *Context, children []Widget[T], onDone func(int, Result[T])) ([]bool, error) {
	var finished []bool
	for i, w := range children {
		var r Result[T]
		err := ctx.Scoped(strconv.Itoa(i), func() error {
			var err error
			r, err = w.Step(ctx)
			return err
		})
		if err != nil {
			return nil, err
		}
		if r.Done {
			if finished == nil {
				finished = make([]bool, len(children))
			}
			finished[i] = true
			onDone(i, r)
		}
	}
	return finished, nil
}

func closeUnfinished[T any](children []Widget[T], finished []bool) {
	for i, w := range children {
		if finished != nil && finished[i] {
			continue
		}
		Close(w)
	}
}

// Forever runs the widget built by factory, rebuilding it whenever it
// terminates. Results are discarded; the rebuilt widget is first stepped
// on the next pass. Forever never terminates.
func Forever[T any](factory func() Widget[T]) Widget[T] {
	return &forever[T]{factory: factory}
}

type forever[T any] struct {
	factory func() Widget[T]
	cur     Widget[T]
}

func (f *forever[T]) Step(ctx *Context) (Result[T], error) {
	if f.cur == nil {
		f.cur = f.factory()
	}
	r, err := f.cur.Step(ctx)
	if err != nil {
		return Running[T](), err
	}
	if r.Done {
		f.cur = f.factory()
	}
	return Running[T](), nil
}

// Close closes the active widget.
func (f *forever[T]) Close() error {
	Close(f.cur)
	f.cur = nil
	return nil
}

// Map steps w to completion and terminates with fn applied to its value.
func Map[T, U any](w Widget[T], fn func(T) U) Widget[U] {
	return &mapped[T, U]{w: w, fn: fn}
}

type mapped[T, U any] struct {
	w  Widget[T]
	fn func(T) U
	latch
}

func (m *mapped[T, U]) Step(ctx *Context) (Result[U], error) {
	m.check("Map")
	r, err := m.w.Step(ctx)
	if err != nil || !r.Done {
		return Running[U](), err
	}
	m.done = true
	return Done(m.fn(r.Value)), nil
}

// Close closes the wrapped widget if it has not terminated.
func (m *mapped[T, U]) Close() error {
	if !m.done {
		m.done = true
		Close(m.w)
	}
	return nil
}

// Tag steps w to completion and terminates with Event{label, value}.
func Tag[T any](label string, w Widget[T]) Widget[Event] {
	return Map(w, func(v T) Event {
		return Event{Tag: label, Value: v}
	})
}

// Stateful repeatedly builds a widget from the current state with fn,
// steps it to completion and replaces the state with its value. The next
// widget is built on the following pass. Stateful never terminates.
func Stateful[S any](fn func(S) Widget[S], initial S) Widget[S] {
	return &stateful[S]{fn: fn, state: initial}
}

type stateful[S any] struct {
	fn    func(S) Widget[S]
	state S
	cur   Widget[S]
}

func (s *stateful[S]) Step(ctx *Context) (Result[S], error) {
	if s.cur == nil {
		s.cur = s.fn(s.state)
	}
	r, err := s.cur.Step(ctx)
	if err != nil {
		return Running[S](), err
	}
	if r.Done {
		s.state = r.Value
		s.cur = nil
	}
	return Running[S](), nil
}

// Close closes the active widget.
func (s *stateful[S]) Close() error {
	Close(s.cur)
	s.cur = nil
	return nil
}

// Optional returns the widget built by factory when cond holds, and
// Nothing otherwise.
func Optional[T any](cond bool, factory func() Widget[T]) Widget[T] {
	if cond {
		return factory()
	}
	return Nothing[T]()
}

// Nothing returns a widget that never terminates and draws nothing.
func Nothing[T any]() Widget[T] {
	return nothing[T]{}
}

type nothing[T any] struct{}

func (nothing[T]) Step(*Context) (Result[T], error) {
	return Running[T](), nil
}

// Lift calls fn on every step and never terminates. It adapts passive
// calls, such as drawing, into the widget protocol.
func Lift[T any](fn func(ctx *Context) error) Widget[T] {
	return Func[T](func(ctx *Context) (Result[T], error) {
		return Running[T](), fn(ctx)
	})
}

// Show draws every drawable on each step and never terminates.
func Show[T any](ds ...Drawable) Widget[T] {
	return Lift[T](func(ctx *Context) error {
		for _, d := range ds {
			if err := d.Draw(ctx); err != nil {
				return err
			}
		}
		return nil
	})
}

// Value returns a widget that terminates with v on its first step.
func Value[T any](v T) Widget[T] {
	return &value[T]{v: v}
}

type value[T any] struct {
	v T
	latch
}

func (w *value[T]) Step(*Context) (Result[T], error) {
	w.check("Value")
	w.done = true
	return Done(w.v), nil
}

// Listen terminates with the next value received from ch. It never
// blocks: while nothing is ready it keeps running. A closed channel
// terminates with the zero value.
func Listen[T any](ch <-chan T) Widget[T] {
	return &listen[T]{ch: ch}
}

type listen[T any] struct {
	ch <-chan T
	latch
}

func (l *listen[T]) Step(*Context) (Result[T], error) {
	l.check("Listen")
	select {
	case v := <-l.ch:
		l.done = true
		return Done(v), nil
	default:
		return Running[T](), nil
	}
}

// Child lays its children out in the screen rectangle r: they are stepped
// as an Orr inside the identifier scope name, with Region set to r and
// drawing clipped to r.
func Child[T any](name string, r Rect, ws ...Widget[T]) Widget[T] {
	return &child[T]{name: name, r: r, body: Orr(ws...)}
}

type child[T any] struct {
	name string
	r    Rect
	body Widget[T]
}

func (c *child[T]) Step(ctx *Context) (Result[T], error) {
	var res Result[T]
	err := ctx.Scoped(c.name, func() error {
		return ctx.WithRegion(c.r, func() error {
			ctx.Canvas.PushClipRect(c.r, true)
			defer ctx.Canvas.PopClipRect()
			var err error
			res, err = c.body.Step(ctx)
			return err
		})
	})
	return res, err
}

// Close closes the children.
func (c *child[T]) Close() error {
	Close(c.body)
	return nil
}
