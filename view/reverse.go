package view

import (
	"github.com/kbukum/viewkit/errors"
)

type reverse[T any] struct{}

// Reverse yields the source elements last to first. The source must support
// backward stepping.
func Reverse[T any]() Adapter[T, T] {
	return reverse[T]{}
}

func (reverse[T]) Name() string { return "reverse" }

func (r reverse[T]) Apply(src Range[T]) (Range[T], error) {
	if !SupportsBackward(src) {
		return nil, errors.MissingCapability(r.Name(), "supports backward stepping")
	}
	caps := src.Capabilities()
	caps.Backward = true
	return &reverseView[T]{src: src, caps: caps}, nil
}

type reverseView[T any] struct {
	src  Range[T]
	caps Capabilities
}

func (v *reverseView[T]) Begin() Cursor[T] {
	start := v.src.Begin()
	pos := v.src.End().(BidiCursor[T])
	if pos.Equal(start) {
		return &reverseCursor[T]{pos: pos, start: start, exhausted: true}
	}
	pos.Prev()
	return &reverseCursor[T]{pos: pos, start: start}
}

// End rests on the source start with the exhausted flag set: the position
// one past the source start cannot be expressed by a source cursor.
func (v *reverseView[T]) End() Cursor[T] {
	return &reverseCursor[T]{
		pos:       v.src.Begin().(BidiCursor[T]),
		start:     v.src.Begin(),
		exhausted: true,
	}
}

func (v *reverseView[T]) Capabilities() Capabilities { return v.caps }

type reverseCursor[T any] struct {
	pos       BidiCursor[T]
	start     Cursor[T]
	exhausted bool
}

func (c *reverseCursor[T]) Next() {
	if c.pos.Equal(c.start) {
		c.exhausted = true
		return
	}
	c.pos.Prev()
}

func (c *reverseCursor[T]) Prev() {
	if c.exhausted {
		c.exhausted = false
		return
	}
	c.pos.Next()
}

func (c *reverseCursor[T]) Value() T { return c.pos.Value() }

func (c *reverseCursor[T]) Equal(other Cursor[T]) bool {
	o, ok := other.(*reverseCursor[T])
	if !ok {
		return false
	}
	if c.exhausted || o.exhausted {
		return c.exhausted == o.exhausted
	}
	return c.pos.Equal(o.pos)
}
