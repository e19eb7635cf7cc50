package view_test

import (
	"slices"
	"testing"

	"github.com/kbukum/viewkit/container"
	"github.com/kbukum/viewkit/view"
	"github.com/kbukum/viewkit/view/viewtest"
)

func TestCapabilities_Flow(t *testing.T) {
	m := names()
	list := container.NewList(1, 2)

	tests := []struct {
		name string
		caps view.Capabilities
		want view.Capabilities
	}{
		{"slice", numbers().Capabilities(), view.Capabilities{Backward: true}},
		{"list", list.Capabilities(), view.Capabilities{}},
		{"map", m.Capabilities(), view.Capabilities{Backward: true, Keys: true, Mapped: true}},
		{"filter keeps keys", view.Pipe(m, view.Filter(func(view.Pair[int, string]) bool { return true })).Capabilities(),
			view.Capabilities{Backward: true, Keys: true, Mapped: true}},
		{"take keeps keys", view.Pipe(m, view.Take[view.Pair[int, string]](1)).Capabilities(),
			view.Capabilities{Backward: true, Keys: true, Mapped: true}},
		{"reverse keeps keys", view.Pipe(m, view.Reverse[view.Pair[int, string]]()).Capabilities(),
			view.Capabilities{Backward: true, Keys: true, Mapped: true}},
		{"keys clears keys", view.Pipe(m, view.Keys[view.Pair[int, string], int]()).Capabilities(),
			view.Capabilities{Backward: true}},
		{"transform over list", view.Pipe[int, int](list, view.Transform(square)).Capabilities(),
			view.Capabilities{}},
		{"drop over list", view.Pipe[int, int](list, view.Drop[int](1)).Capabilities(),
			view.Capabilities{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.caps != tt.want {
				t.Errorf("got %+v, want %+v", tt.caps, tt.want)
			}
		})
	}
}

func TestCapabilities_String(t *testing.T) {
	if got := (view.Capabilities{}).String(); got != "forward" {
		t.Errorf("String() = %q", got)
	}
	if got := (view.Capabilities{Backward: true, Keys: true, Mapped: true}).String(); got != "backward,keys,mapped" {
		t.Errorf("String() = %q", got)
	}
}

func TestIsPairLike(t *testing.T) {
	if !view.IsPairLike[view.Pair[int, string]]() {
		t.Error("Pair should be pair-like")
	}
	if !view.IsPairLike[view.PairLike[int, string]]() {
		t.Error("PairLike interface should be pair-like")
	}
	if view.IsPairLike[int]() {
		t.Error("int should not be pair-like")
	}
}

func TestCursorShape(t *testing.T) {
	list := container.NewList(1, 2, 3)
	fwd := []view.Range[int]{
		view.Pipe[int, int](list, view.Filter(isEven)),
		view.Pipe[int, int](list, view.Transform(square)),
		view.Pipe[int, int](list, view.Take[int](2)),
		view.Pipe[int, int](list, view.Drop[int](1)),
	}
	for i, r := range fwd {
		if _, ok := r.Begin().(view.BidiCursor[int]); ok {
			t.Errorf("view %d over a list exposes Prev", i)
		}
	}

	bidi := []view.Range[int]{
		view.Pipe(numbers(), view.Filter(isEven)),
		view.Pipe(numbers(), view.Transform(square)),
		view.Pipe(numbers(), view.Take[int](2)),
		view.Pipe(numbers(), view.Drop[int](1)),
		view.Pipe(numbers(), view.Reverse[int]()),
	}
	for i, r := range bidi {
		if _, ok := r.Begin().(view.BidiCursor[int]); !ok {
			t.Errorf("view %d over a slice hides Prev", i)
		}
		if _, ok := r.End().(view.BidiCursor[int]); !ok {
			t.Errorf("view %d over a slice: end hides Prev", i)
		}
	}
}

func TestLazy(t *testing.T) {
	sq := viewtest.Count(square)
	even := viewtest.Count(isEven)

	r := view.Pipe2(numbers(), view.Filter(even.Func()), view.Transform(sq.Func()))
	if sq.Calls != 0 || even.Calls != 0 {
		t.Fatalf("building a view ran %d transforms and %d predicates", sq.Calls, even.Calls)
	}

	c := r.Begin()
	if sq.Calls != 0 {
		t.Errorf("Begin ran the transform")
	}
	_ = c.Value()
	_ = c.Value()
	if sq.Calls != 2 {
		t.Errorf("transform calls = %d, want one per dereference", sq.Calls)
	}
}

func TestSlice_SharesBackingArray(t *testing.T) {
	items := []int{1, 2, 3}
	r := view.Pipe(view.FromSlice(items), view.Transform(square))
	items[0] = 10
	viewtest.Expect(t, r, 100, 4, 9)
}

func TestReverse_Empty(t *testing.T) {
	r := view.Pipe(view.Of[int](), view.Reverse[int]())
	if !r.Begin().Equal(r.End()) {
		t.Fatal("reverse of empty: begin should equal end")
	}
	viewtest.ExpectBoth(t, r)

	twice := view.Pipe(r, view.Reverse[int]())
	viewtest.ExpectBoth(t, twice)
}

func TestReverse_StepBackFromEnd(t *testing.T) {
	r := view.Pipe(view.Of(1, 2, 3), view.Reverse[int]())
	c := r.End().(view.BidiCursor[int])
	c.Prev()
	if c.Value() != 1 {
		t.Errorf("Value() = %d, want 1", c.Value())
	}
	if c.Equal(r.End()) {
		t.Error("cursor on first source element should not equal end")
	}
	c.Next()
	if !c.Equal(r.End()) {
		t.Error("stepping forward again should reach end")
	}
}

func TestFilter_BackwardBoundary(t *testing.T) {
	// The source start is not checked against the predicate when stepping
	// back: retreating from the first match lands on 1.
	r := view.Pipe(view.Of(1, 2, 3, 4), view.Filter(isEven))
	c := r.Begin().(view.BidiCursor[int])
	if c.Value() != 2 {
		t.Fatalf("begin = %d, want 2", c.Value())
	}
	c.Prev()
	if c.Value() != 1 {
		t.Errorf("stepping back from the first match = %d, want the source start 1", c.Value())
	}

	e := r.End().(view.BidiCursor[int])
	e.Prev()
	if e.Value() != 4 {
		t.Errorf("last = %d, want 4", e.Value())
	}
	e.Prev()
	if e.Value() != 2 || !e.Equal(r.Begin()) {
		t.Errorf("second to last = %d, want 2 at begin", e.Value())
	}
}

func TestFilter_NoMatches(t *testing.T) {
	r := view.Pipe(numbers(), view.Filter(func(n int) bool { return n > 10 }))
	if !r.Begin().Equal(r.End()) {
		t.Error("begin should equal end when nothing matches")
	}
	empty := view.Pipe(view.Of[int](), view.Filter(isEven))
	viewtest.ExpectBoth(t, empty)
}

func TestTraversal(t *testing.T) {
	r := view.Pipe(numbers(), view.Transform(square))

	if n := view.Len(r); n != 5 {
		t.Errorf("Len() = %d, want 5", n)
	}

	var got []int
	for v := range view.All(r) {
		if v > 9 {
			break
		}
		got = append(got, v)
	}
	if !slices.Equal(got, []int{1, 4, 9}) {
		t.Errorf("All with break = %v", got)
	}

	got = got[:0]
	view.ForEach(r, func(v int) bool {
		got = append(got, v)
		return len(got) < 2
	})
	if !slices.Equal(got, []int{1, 4}) {
		t.Errorf("ForEach = %v", got)
	}

	back, err := view.Backward(r)
	if err != nil {
		t.Fatal(err)
	}
	if got := slices.Collect(back); !slices.Equal(got, []int{25, 16, 9, 4, 1}) {
		t.Errorf("Backward = %v", got)
	}
}

func TestCompose_Name(t *testing.T) {
	a := view.Compose(view.Filter(isEven), view.Take[int](1))
	if a.Name() != "filter | take" {
		t.Errorf("Name() = %q", a.Name())
	}
	viewtest.Expect(t, view.Pipe(numbers(), a), 2)
}

func TestNewAdapter(t *testing.T) {
	evens := view.NewAdapter("evens", func(src view.Range[int]) (view.Range[int], error) {
		return view.TryPipe(src, view.Filter(isEven))
	})
	if evens.Name() != "evens" {
		t.Errorf("Name() = %q", evens.Name())
	}
	viewtest.ExpectBoth(t, view.Pipe(numbers(), evens), 2, 4)
}

func TestEqual_AcrossViews(t *testing.T) {
	src := numbers()
	a := view.Pipe(src, view.Take[int](2))
	b := view.Pipe(src, view.Transform(square))
	if a.Begin().Equal(view.Pipe(src, view.Reverse[int]()).Begin()) {
		t.Error("take and reverse cursors should not compare equal")
	}
	if !b.Begin().Equal(b.Begin()) {
		t.Error("two begin cursors of one view should compare equal")
	}
}
