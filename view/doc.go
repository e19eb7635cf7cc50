// Package view provides lazy, non-owning views over ordered containers.
//
// A Range is a cursor factory: Begin and End hand out fresh cursors that walk
// the underlying source on demand. Adapters describe one transformation each
// and Pipe wraps a source (a container or another view) into the next view:
//
//	nums := view.FromSlice([]int{1, 2, 3, 4, 5})
//	evens := view.Pipe(nums, view.Filter(func(n int) bool { return n%2 == 0 }))
//	last3 := view.Pipe2(nums, view.Reverse[int](), view.Take[int](3))
//	for n := range view.All(last3) {
//	    fmt.Println(n) // 5 4 3
//	}
//
// Nothing is computed or cached when a view is built. Elements are produced
// only when a cursor is dereferenced, and a transform function runs again on
// every dereference.
//
// # Capabilities
//
// Every Range reports its Capabilities. Cursors of a range with Backward set
// implement BidiCursor; all others do not expose Prev at the type level.
// Adapters check the capabilities they need once, when applied: Reverse needs
// Backward, Keys needs a source declaring keys, Values needs a source declaring
// keys and mapped values with pair-like elements. A violation is reported by
// TryPipe as a CAPABILITY_MISSING *errors.AppError, and Pipe panics with it.
//
// # Lifetime
//
// Views keep a reference to their source and never copy it. The caller must
// keep the source alive and structurally unchanged while any view or cursor
// derived from it is in use. Views and cursors are not safe for concurrent use.
package view
