package view

import (
	"iter"

	"github.com/kbukum/viewkit/errors"
)

// Collect walks r from begin to end and returns its elements.
func Collect[T any](r Range[T]) []T {
	var out []T
	for it, end := r.Begin(), r.End(); !it.Equal(end); it.Next() {
		out = append(out, it.Value())
	}
	return out
}

// Len counts the elements of r by stepping through it without dereferencing.
func Len[T any](r Range[T]) int {
	n := 0
	for it, end := r.Begin(), r.End(); !it.Equal(end); it.Next() {
		n++
	}
	return n
}

// ForEach calls fn for each element of r until fn returns false.
func ForEach[T any](r Range[T], fn func(T) bool) {
	for it, end := r.Begin(), r.End(); !it.Equal(end); it.Next() {
		if !fn(it.Value()) {
			return
		}
	}
}

// All returns an iterator over r, for use with range-over-func.
func All[T any](r Range[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		ForEach(r, yield)
	}
}

// Backward returns an iterator walking r from its last element to its first.
// It fails for ranges without backward stepping.
func Backward[T any](r Range[T]) (iter.Seq[T], error) {
	if !SupportsBackward(r) {
		return nil, errors.MissingCapability("backward", "supports backward stepping")
	}
	return func(yield func(T) bool) {
		begin := r.Begin()
		it := r.End().(BidiCursor[T])
		for !it.Equal(begin) {
			it.Prev()
			if !yield(it.Value()) {
				return
			}
		}
	}, nil
}
