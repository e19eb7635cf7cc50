package container

import (
	"cmp"

	"github.com/tidwall/btree"

	"github.com/kbukum/viewkit/view"
)

// OrderedSet holds distinct keys in ascending order. The zero value is
// ready to use.
type OrderedSet[K cmp.Ordered] struct {
	tree btree.Set[K]
}

// NewOrderedSet returns a set holding keys.
func NewOrderedSet[K cmp.Ordered](keys ...K) *OrderedSet[K] {
	s := &OrderedSet[K]{}
	for _, k := range keys {
		s.Insert(k)
	}
	return s
}

// Insert adds k.
func (s *OrderedSet[K]) Insert(k K) { s.tree.Insert(k) }

// Contains reports whether k is present.
func (s *OrderedSet[K]) Contains(k K) bool { return s.tree.Contains(k) }

// Delete removes k.
func (s *OrderedSet[K]) Delete(k K) { s.tree.Delete(k) }

// Len returns the number of keys.
func (s *OrderedSet[K]) Len() int { return s.tree.Len() }

// Begin returns a cursor on the smallest key.
func (s *OrderedSet[K]) Begin() view.Cursor[K] { return &setCursor[K]{tree: &s.tree} }

// End returns the cursor past the largest key.
func (s *OrderedSet[K]) End() view.Cursor[K] {
	return &setCursor[K]{tree: &s.tree, rank: s.tree.Len()}
}

// Capabilities reports backward stepping and a key type.
func (s *OrderedSet[K]) Capabilities() view.Capabilities {
	return view.Capabilities{Backward: true, Keys: true}
}

type setCursor[K cmp.Ordered] struct {
	tree *btree.Set[K]
	rank int
}

func (c *setCursor[K]) Next() { c.rank++ }

func (c *setCursor[K]) Prev() { c.rank-- }

func (c *setCursor[K]) Value() K {
	k, _ := c.tree.GetAt(c.rank)
	return k
}

func (c *setCursor[K]) Equal(other view.Cursor[K]) bool {
	o, ok := other.(*setCursor[K])
	return ok && o.rank == c.rank
}
