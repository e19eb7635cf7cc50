package container

import "github.com/kbukum/viewkit/view"

// List is a singly linked list. Its cursors only move forward.
type List[T any] struct {
	head *node[T]
	tail *node[T]
	size int
}

type node[T any] struct {
	val  T
	next *node[T]
}

// NewList returns a list holding items in order.
func NewList[T any](items ...T) *List[T] {
	l := &List[T]{}
	for _, v := range items {
		l.PushBack(v)
	}
	return l
}

// PushBack appends v.
func (l *List[T]) PushBack(v T) {
	n := &node[T]{val: v}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.size++
}

// PushFront prepends v.
func (l *List[T]) PushFront(v T) {
	n := &node[T]{val: v, next: l.head}
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
	l.size++
}

// Len returns the number of elements.
func (l *List[T]) Len() int { return l.size }

// Begin returns a cursor on the head.
func (l *List[T]) Begin() view.Cursor[T] { return &listCursor[T]{n: l.head} }

// End returns the cursor past the tail.
func (l *List[T]) End() view.Cursor[T] { return &listCursor[T]{} }

// Capabilities is empty: a list only steps forward.
func (l *List[T]) Capabilities() view.Capabilities { return view.Capabilities{} }

type listCursor[T any] struct {
	n *node[T]
}

func (c *listCursor[T]) Next() { c.n = c.n.next }

func (c *listCursor[T]) Value() T { return c.n.val }

func (c *listCursor[T]) Equal(other view.Cursor[T]) bool {
	o, ok := other.(*listCursor[T])
	return ok && o.n == c.n
}
