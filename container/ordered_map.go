package container

import (
	"cmp"

	"github.com/tidwall/btree"

	"github.com/kbukum/viewkit/view"
)

// OrderedMap maps keys to values, iterated in ascending key order.
// Its elements are view.Pair values. The zero value is ready to use.
type OrderedMap[K cmp.Ordered, V any] struct {
	tree btree.Map[K, V]
}

// NewOrderedMap returns an empty map.
func NewOrderedMap[K cmp.Ordered, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{}
}

// OrderedMapOf returns a map holding the given entries.
func OrderedMapOf[K cmp.Ordered, V any](entries map[K]V) *OrderedMap[K, V] {
	m := NewOrderedMap[K, V]()
	for k, v := range entries {
		m.Set(k, v)
	}
	return m
}

// Set stores v under k, replacing any previous value.
func (m *OrderedMap[K, V]) Set(k K, v V) {
	m.tree.Set(k, v)
}

// Get returns the value stored under k.
func (m *OrderedMap[K, V]) Get(k K) (V, bool) {
	return m.tree.Get(k)
}

// Delete removes k and returns its value.
func (m *OrderedMap[K, V]) Delete(k K) (V, bool) {
	return m.tree.Delete(k)
}

// Len returns the number of entries.
func (m *OrderedMap[K, V]) Len() int { return m.tree.Len() }

// Begin returns a cursor on the entry with the smallest key.
func (m *OrderedMap[K, V]) Begin() view.Cursor[view.Pair[K, V]] {
	return &mapCursor[K, V]{tree: &m.tree}
}

// End returns the cursor past the largest key.
func (m *OrderedMap[K, V]) End() view.Cursor[view.Pair[K, V]] {
	return &mapCursor[K, V]{tree: &m.tree, rank: m.tree.Len()}
}

// Capabilities reports backward stepping and both key and mapped types.
func (m *OrderedMap[K, V]) Capabilities() view.Capabilities {
	return view.Capabilities{Backward: true, Keys: true, Mapped: true}
}

// mapCursor addresses an entry by its rank in key order.
type mapCursor[K cmp.Ordered, V any] struct {
	tree *btree.Map[K, V]
	rank int
}

func (c *mapCursor[K, V]) Next() { c.rank++ }

func (c *mapCursor[K, V]) Prev() { c.rank-- }

func (c *mapCursor[K, V]) Value() view.Pair[K, V] {
	k, v, _ := c.tree.GetAt(c.rank)
	return view.MakePair(k, v)
}

func (c *mapCursor[K, V]) Equal(other view.Cursor[view.Pair[K, V]]) bool {
	o, ok := other.(*mapCursor[K, V])
	return ok && o.rank == c.rank
}
