package view

// Slice is a random-access source over a caller-owned slice. It shares the
// backing array: element writes by the caller are visible through views,
// appends made after construction are not.
type Slice[T any] struct {
	items []T
}

// FromSlice returns a Slice over items without copying them.
func FromSlice[T any](items []T) *Slice[T] {
	return &Slice[T]{items: items}
}

// Of returns a Slice over the given elements.
func Of[T any](items ...T) *Slice[T] {
	return FromSlice(items)
}

// Len returns the number of elements.
func (s *Slice[T]) Len() int { return len(s.items) }

// Begin returns a cursor on the first element.
func (s *Slice[T]) Begin() Cursor[T] { return &sliceCursor[T]{items: s.items} }

// End returns the one-past-the-last cursor.
func (s *Slice[T]) End() Cursor[T] { return &sliceCursor[T]{items: s.items, pos: len(s.items)} }

// Capabilities reports backward stepping.
func (s *Slice[T]) Capabilities() Capabilities { return Capabilities{Backward: true} }

type sliceCursor[T any] struct {
	items []T
	pos   int
}

func (c *sliceCursor[T]) Next() { c.pos++ }

func (c *sliceCursor[T]) Prev() { c.pos-- }

func (c *sliceCursor[T]) Value() T { return c.items[c.pos] }

func (c *sliceCursor[T]) Equal(other Cursor[T]) bool {
	o, ok := other.(*sliceCursor[T])
	return ok && o.pos == c.pos
}
