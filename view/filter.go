package view

type filter[T any] struct {
	pred func(T) bool
}

// Filter yields the source elements for which pred holds, in source order.
// pred may run more than once per element across traversals.
func Filter[T any](pred func(T) bool) Adapter[T, T] {
	return filter[T]{pred: pred}
}

func (filter[T]) Name() string { return "filter" }

func (f filter[T]) Apply(src Range[T]) (Range[T], error) {
	return &filterView[T]{src: src, pred: f.pred, caps: src.Capabilities()}, nil
}

type filterView[T any] struct {
	src  Range[T]
	pred func(T) bool
	caps Capabilities
}

func (v *filterView[T]) Begin() Cursor[T] {
	it, end := v.src.Begin(), v.src.End()
	for !it.Equal(end) && !v.pred(it.Value()) {
		it.Next()
	}
	return v.wrap(it, end)
}

func (v *filterView[T]) End() Cursor[T] {
	return v.wrap(v.src.End(), v.src.End())
}

func (v *filterView[T]) Capabilities() Capabilities { return v.caps }

func (v *filterView[T]) wrap(pos, end Cursor[T]) Cursor[T] {
	fc := &filterCursor[T]{inner: pos, end: end, pred: v.pred}
	if v.caps.Backward {
		return &bidiFilterCursor[T]{filterCursor: fc, back: pos.(BidiCursor[T]), start: v.src.Begin()}
	}
	return fc
}

// filterCursor rests on a matching position or on the source end.
type filterCursor[T any] struct {
	inner Cursor[T]
	end   Cursor[T]
	pred  func(T) bool
}

func (c *filterCursor[T]) Next() {
	c.inner.Next()
	for !c.inner.Equal(c.end) && !c.pred(c.inner.Value()) {
		c.inner.Next()
	}
}

func (c *filterCursor[T]) Value() T { return c.inner.Value() }

func (c *filterCursor[T]) Equal(other Cursor[T]) bool {
	o, ok := other.(interface{ filtered() *filterCursor[T] })
	return ok && c.inner.Equal(o.filtered().inner)
}

func (c *filterCursor[T]) filtered() *filterCursor[T] { return c }

type bidiFilterCursor[T any] struct {
	*filterCursor[T]
	back  BidiCursor[T]
	start Cursor[T]
}

// Prev retreats to the previous matching position, stopping at the source
// start. The start itself is not checked against the predicate, so stepping
// back from the first match lands on the source start whether it matches
// or not.
func (c *bidiFilterCursor[T]) Prev() {
	c.back.Prev()
	for !c.back.Equal(c.start) && !c.pred(c.back.Value()) {
		c.back.Prev()
	}
}
