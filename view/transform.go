package view

type transform[T, U any] struct {
	fn func(T) U
}

// Transform yields fn applied to each source element. fn runs on every
// dereference; results are not cached.
func Transform[T, U any](fn func(T) U) Adapter[T, U] {
	return transform[T, U]{fn: fn}
}

func (transform[T, U]) Name() string { return "transform" }

func (t transform[T, U]) Apply(src Range[T]) (Range[U], error) {
	return newProjectView(src, t.fn), nil
}

// projectView changes what a position yields but never where it is.
// Transform, Keys and Values share it.
type projectView[T, U any] struct {
	src  Range[T]
	fn   func(T) U
	caps Capabilities
}

func newProjectView[T, U any](src Range[T], fn func(T) U) *projectView[T, U] {
	return &projectView[T, U]{src: src, fn: fn, caps: src.Capabilities().projected()}
}

func (v *projectView[T, U]) Begin() Cursor[U] { return v.wrap(v.src.Begin()) }

func (v *projectView[T, U]) End() Cursor[U] { return v.wrap(v.src.End()) }

func (v *projectView[T, U]) Capabilities() Capabilities { return v.caps }

func (v *projectView[T, U]) wrap(c Cursor[T]) Cursor[U] {
	pc := &projectCursor[T, U]{inner: c, fn: v.fn}
	if v.caps.Backward {
		return &bidiProjectCursor[T, U]{projectCursor: pc, back: c.(BidiCursor[T])}
	}
	return pc
}

type projectCursor[T, U any] struct {
	inner Cursor[T]
	fn    func(T) U
}

func (c *projectCursor[T, U]) Next() { c.inner.Next() }

func (c *projectCursor[T, U]) Value() U { return c.fn(c.inner.Value()) }

func (c *projectCursor[T, U]) Equal(other Cursor[U]) bool {
	o, ok := other.(interface{ project() *projectCursor[T, U] })
	return ok && c.inner.Equal(o.project().inner)
}

func (c *projectCursor[T, U]) project() *projectCursor[T, U] { return c }

type bidiProjectCursor[T, U any] struct {
	*projectCursor[T, U]
	back BidiCursor[T]
}

func (c *bidiProjectCursor[T, U]) Prev() { c.back.Prev() }
