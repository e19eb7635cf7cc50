// Package container provides ordered sources for views.
//
// List is a forward-only singly linked list. OrderedMap and OrderedSet keep
// their entries sorted in a B-tree and hand out bidirectional cursors that
// address entries by rank, so both support Reverse and backward traversal.
// OrderedMap declares key and mapped types, OrderedSet declares a key type.
//
// Containers are not safe for concurrent use. Modifying a container while a
// view or cursor over it is in use is undefined.
package container
