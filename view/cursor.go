package view

// Cursor is the traversal state handed out by a Range.
//
// A cursor returned by End is a sentinel. It can be compared against and, for
// bidirectional ranges, stepped back, but it must never be dereferenced.
// Stepping a cursor outside its range is undefined.
type Cursor[T any] interface {
	// Next moves to the following position.
	Next()
	// Value returns the element at the current position.
	Value() T
	// Equal reports whether other rests on the same position. Only cursors
	// obtained from the same Range may be compared.
	Equal(other Cursor[T]) bool
}

// BidiCursor is a Cursor that can also step back.
type BidiCursor[T any] interface {
	Cursor[T]
	// Prev moves to the preceding position.
	Prev()
}

// Range is a finite ordered sequence that produces cursors on demand.
//
// When Capabilities reports Backward, every cursor returned by Begin and End
// implements BidiCursor.
type Range[T any] interface {
	Begin() Cursor[T]
	End() Cursor[T]
	Capabilities() Capabilities
}

// Pair is the element type of associative sources.
type Pair[K, V any] struct {
	Key K
	Val V
}

// MakePair returns a Pair holding k and v.
func MakePair[K, V any](k K, v V) Pair[K, V] {
	return Pair[K, V]{Key: k, Val: v}
}

// First returns the key.
func (p Pair[K, V]) First() K { return p.Key }

// Second returns the mapped value.
func (p Pair[K, V]) Second() V { return p.Val }

// PairLike is implemented by elements exposing two components.
type PairLike[K, V any] interface {
	First() K
	Second() V
}
