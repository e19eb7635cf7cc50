// Package viewtest provides helpers for testing ranges and adapters.
package viewtest

import (
	"slices"
	"testing"

	"github.com/kbukum/viewkit/view"
)

// Expect fails t unless r yields exactly want, in order.
func Expect[T comparable](t testing.TB, r view.Range[T], want ...T) {
	t.Helper()
	got := view.Collect(r)
	if !slices.Equal(got, want) {
		t.Errorf("forward: got %v, want %v", got, want)
	}
}

// ExpectBackward fails t unless walking r from end to begin yields want
// reversed. r must support backward stepping.
func ExpectBackward[T comparable](t testing.TB, r view.Range[T], want ...T) {
	t.Helper()
	seq, err := view.Backward(r)
	if err != nil {
		t.Fatalf("backward: %v", err)
	}
	got := slices.Collect(seq)
	slices.Reverse(got)
	if !slices.Equal(got, want) {
		t.Errorf("backward: got %v reversed, want %v", got, want)
	}
}

// ExpectBoth runs Expect and, when r supports it, ExpectBackward.
func ExpectBoth[T comparable](t testing.TB, r view.Range[T], want ...T) {
	t.Helper()
	Expect(t, r, want...)
	if view.SupportsBackward(r) {
		ExpectBackward(t, r, want...)
	}
}

// ForwardOnly hides the backward stepping of r. Key declarations are kept.
func ForwardOnly[T any](r view.Range[T]) view.Range[T] {
	return forwardOnly[T]{r: r}
}

type forwardOnly[T any] struct {
	r view.Range[T]
}

func (f forwardOnly[T]) Begin() view.Cursor[T] { return &forwardCursor[T]{inner: f.r.Begin()} }

func (f forwardOnly[T]) End() view.Cursor[T] { return &forwardCursor[T]{inner: f.r.End()} }

func (f forwardOnly[T]) Capabilities() view.Capabilities {
	c := f.r.Capabilities()
	c.Backward = false
	return c
}

type forwardCursor[T any] struct {
	inner view.Cursor[T]
}

func (c *forwardCursor[T]) Next() { c.inner.Next() }

func (c *forwardCursor[T]) Value() T { return c.inner.Value() }

func (c *forwardCursor[T]) Equal(other view.Cursor[T]) bool {
	o, ok := other.(*forwardCursor[T])
	return ok && c.inner.Equal(o.inner)
}

// Counter wraps fn and counts its invocations.
type Counter[T, U any] struct {
	Calls int
	fn    func(T) U
}

// Count returns a Counter around fn.
func Count[T, U any](fn func(T) U) *Counter[T, U] {
	return &Counter[T, U]{fn: fn}
}

// Func returns the counting function.
func (c *Counter[T, U]) Func() func(T) U {
	return func(v T) U {
		c.Calls++
		return c.fn(v)
	}
}

// MustPanic fails t unless fn panics, and returns the recovered value.
func MustPanic(t testing.TB, fn func()) (recovered any) {
	t.Helper()
	defer func() {
		recovered = recover()
		if recovered == nil {
			t.Errorf("expected panic")
		}
	}()
	fn()
	return nil
}
