package view

import (
	"github.com/kbukum/viewkit/errors"
	"github.com/kbukum/viewkit/validation"
)

// bound is the validated parameter of Take and Drop.
type bound struct {
	Count int `validate:"gte=0"`
}

func checkCount(adapter string, n int) error {
	if err := validation.Struct(bound{Count: n}); err != nil {
		if appErr, ok := errors.AsAppError(err); ok {
			return appErr.WithDetail("adapter", adapter)
		}
		return err
	}
	return nil
}

// advance returns the begin cursor of src stepped up to n times, stopping
// early at the end.
func advance[T any](src Range[T], n int) Cursor[T] {
	it, end := src.Begin(), src.End()
	for i := 0; i < n && !it.Equal(end); i++ {
		it.Next()
	}
	return it
}

type take[T any] struct {
	n int
}

// Take yields at most the first n source elements. Counts past the source
// length are capped; a negative count is rejected when applied.
func Take[T any](n int) Adapter[T, T] {
	return take[T]{n: n}
}

func (take[T]) Name() string { return "take" }

func (t take[T]) Apply(src Range[T]) (Range[T], error) {
	if err := checkCount(t.Name(), t.n); err != nil {
		return nil, err
	}
	return &takeView[T]{src: src, n: t.n, caps: src.Capabilities()}, nil
}

type takeView[T any] struct {
	src  Range[T]
	n    int
	caps Capabilities
}

func (v *takeView[T]) Begin() Cursor[T] { return passThrough(v.src.Begin(), v.caps) }

func (v *takeView[T]) End() Cursor[T] { return passThrough(advance(v.src, v.n), v.caps) }

func (v *takeView[T]) Capabilities() Capabilities { return v.caps }

type drop[T any] struct {
	n int
}

// Drop skips the first n source elements. Counts past the source length
// yield an empty view; a negative count is rejected when applied.
func Drop[T any](n int) Adapter[T, T] {
	return drop[T]{n: n}
}

func (drop[T]) Name() string { return "drop" }

func (d drop[T]) Apply(src Range[T]) (Range[T], error) {
	if err := checkCount(d.Name(), d.n); err != nil {
		return nil, err
	}
	return &dropView[T]{src: src, n: d.n, caps: src.Capabilities()}, nil
}

type dropView[T any] struct {
	src  Range[T]
	n    int
	caps Capabilities
}

func (v *dropView[T]) Begin() Cursor[T] { return passThrough(advance(v.src, v.n), v.caps) }

func (v *dropView[T]) End() Cursor[T] { return passThrough(v.src.End(), v.caps) }

func (v *dropView[T]) Capabilities() Capabilities { return v.caps }

// passCursor forwards every operation to the source cursor. Take and Drop
// only move the bounds.
type passCursor[T any] struct {
	inner Cursor[T]
}

func passThrough[T any](c Cursor[T], caps Capabilities) Cursor[T] {
	pc := &passCursor[T]{inner: c}
	if caps.Backward {
		return &bidiPassCursor[T]{passCursor: pc, back: c.(BidiCursor[T])}
	}
	return pc
}

func (c *passCursor[T]) Next() { c.inner.Next() }

func (c *passCursor[T]) Value() T { return c.inner.Value() }

func (c *passCursor[T]) Equal(other Cursor[T]) bool {
	o, ok := other.(interface{ passed() *passCursor[T] })
	return ok && c.inner.Equal(o.passed().inner)
}

func (c *passCursor[T]) passed() *passCursor[T] { return c }

type bidiPassCursor[T any] struct {
	*passCursor[T]
	back BidiCursor[T]
}

func (c *bidiPassCursor[T]) Prev() { c.back.Prev() }
