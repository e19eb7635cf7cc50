package view_test

import (
	"slices"
	"testing"

	"github.com/kbukum/viewkit/container"
	"github.com/kbukum/viewkit/errors"
	"github.com/kbukum/viewkit/view"
	"github.com/kbukum/viewkit/view/viewtest"
)

func isEven(n int) bool { return n%2 == 0 }

func square(n int) int { return n * n }

func numbers() *view.Slice[int] { return view.Of(1, 2, 3, 4, 5) }

func names() *container.OrderedMap[int, string] {
	return container.OrderedMapOf(map[int]string{1: "one", 2: "two", 3: "three"})
}

func TestScenarios(t *testing.T) {
	t.Run("keys reverse", func(t *testing.T) {
		r := view.Pipe2(names(), view.Keys[view.Pair[int, string], int](), view.Reverse[int]())
		viewtest.ExpectBoth(t, r, 3, 2, 1)
	})
	t.Run("filter even", func(t *testing.T) {
		viewtest.ExpectBoth(t, view.Pipe(numbers(), view.Filter(isEven)), 2, 4)
	})
	t.Run("take", func(t *testing.T) {
		viewtest.ExpectBoth(t, view.Pipe(numbers(), view.Take[int](3)), 1, 2, 3)
	})
	t.Run("drop", func(t *testing.T) {
		viewtest.ExpectBoth(t, view.Pipe(numbers(), view.Drop[int](2)), 3, 4, 5)
	})
	t.Run("keys transform drop", func(t *testing.T) {
		r := view.Pipe3(names(),
			view.Keys[view.Pair[int, string], int](),
			view.Transform(square),
			view.Drop[int](1),
		)
		viewtest.ExpectBoth(t, r, 4, 9)
	})
	t.Run("reverse take", func(t *testing.T) {
		r := view.Pipe2(numbers(), view.Reverse[int](), view.Take[int](3))
		viewtest.ExpectBoth(t, r, 5, 4, 3)
	})
	t.Run("values", func(t *testing.T) {
		r := view.Pipe(names(), view.Values[view.Pair[int, string], string]())
		viewtest.ExpectBoth(t, r, "one", "two", "three")
	})
	t.Run("set keys reverse", func(t *testing.T) {
		r := view.Pipe2(container.NewOrderedSet(2, 3, 1), view.Keys[int, int](), view.Reverse[int]())
		viewtest.ExpectBoth(t, r, 3, 2, 1)
	})
}

// sequences used by the property tests, lengths 0 through 7.
func sequences() [][]int {
	out := [][]int{{}}
	for n := 1; n <= 7; n++ {
		s := make([]int, n)
		for i := range s {
			s[i] = (i*7 + n) % 10
		}
		out = append(out, s)
	}
	return out
}

func TestFilter_Property(t *testing.T) {
	preds := map[string]func(int) bool{
		"even": isEven,
		"none": func(int) bool { return false },
		"all":  func(int) bool { return true },
		"gt4":  func(n int) bool { return n > 4 },
	}
	for _, s := range sequences() {
		for name, p := range preds {
			var want []int
			for _, v := range s {
				if p(v) {
					want = append(want, v)
				}
			}
			r := view.Pipe(view.FromSlice(s), view.Filter(p))
			if got := view.Collect(r); !slices.Equal(got, want) {
				t.Errorf("%v | filter(%s) = %v, want %v", s, name, got, want)
			}
			fwd := view.Pipe(viewtest.ForwardOnly[int](view.FromSlice(s)), view.Filter(p))
			if got := view.Collect(fwd); !slices.Equal(got, want) {
				t.Errorf("forward-only %v | filter(%s) = %v, want %v", s, name, got, want)
			}
		}
	}
}

func TestTakeDrop_Property(t *testing.T) {
	for _, s := range sequences() {
		for n := 0; n <= len(s)+2; n++ {
			k := min(n, len(s))
			src := view.FromSlice(s)

			viewtest.ExpectBoth(t, view.Pipe(src, view.Take[int](n)), s[:k]...)
			viewtest.ExpectBoth(t, view.Pipe(src, view.Drop[int](n)), s[k:]...)

			fwd := viewtest.ForwardOnly[int](src)
			viewtest.Expect(t, view.Pipe(fwd, view.Take[int](n)), s[:k]...)
			viewtest.Expect(t, view.Pipe(fwd, view.Drop[int](n)), s[k:]...)
		}
		src := view.FromSlice(s)
		viewtest.Expect(t, view.Pipe(src, view.Take[int](len(s))), s...)
		viewtest.Expect(t, view.Pipe(src, view.Drop[int](0)), s...)
		if view.Len(view.Pipe(src, view.Take[int](0))) != 0 {
			t.Errorf("%v | take(0) should be empty", s)
		}
		if view.Len(view.Pipe(src, view.Drop[int](len(s)))) != 0 {
			t.Errorf("%v | drop(len) should be empty", s)
		}
	}
}

func TestReverse_Property(t *testing.T) {
	for _, s := range sequences() {
		want := slices.Clone(s)
		slices.Reverse(want)

		once := view.Pipe(view.FromSlice(s), view.Reverse[int]())
		viewtest.ExpectBoth(t, once, want...)

		twice := view.Pipe(once, view.Reverse[int]())
		viewtest.ExpectBoth(t, twice, s...)
	}
}

func TestKeysValues_Correspond(t *testing.T) {
	m := container.OrderedMapOf(map[string]int{"b": 2, "a": 1, "d": 4, "c": 3})

	ks := view.Collect(view.Pipe(m, view.Keys[view.Pair[string, int], string]()))
	vs := view.Collect(view.Pipe(m, view.Values[view.Pair[string, int], int]()))
	entries := view.Collect[view.Pair[string, int]](m)

	if !slices.Equal(ks, []string{"a", "b", "c", "d"}) {
		t.Errorf("keys = %v", ks)
	}
	if len(ks) != len(vs) {
		t.Fatalf("len(keys) = %d, len(values) = %d", len(ks), len(vs))
	}
	for i, e := range entries {
		if ks[i] != e.Key || vs[i] != e.Val {
			t.Errorf("entry %d: key %q value %d, want %q %d", i, ks[i], vs[i], e.Key, e.Val)
		}
	}
}

func TestComposition_Sequential(t *testing.T) {
	m := container.OrderedMapOf(map[int]bool{5: true, 1: true, 4: false, 2: true, 3: false})
	fns := map[string]func(int) int{
		"square": square,
		"neg":    func(n int) int { return -n },
	}
	for name, f := range fns {
		for k := 0; k <= 6; k++ {
			var mapped []int
			for _, key := range []int{1, 2, 3, 4, 5} {
				mapped = append(mapped, f(key))
			}
			want := mapped[min(k, len(mapped)):]

			piped := view.Pipe3(m, view.Keys[view.Pair[int, bool], int](), view.Transform(f), view.Drop[int](k))
			composed := view.Pipe(m, view.Compose(
				view.Compose(view.Keys[view.Pair[int, bool], int](), view.Transform(f)),
				view.Drop[int](k),
			))
			if got := view.Collect(piped); !slices.Equal(got, want) {
				t.Errorf("%s drop %d: piped = %v, want %v", name, k, got, want)
			}
			if got := view.Collect(composed); !slices.Equal(got, want) {
				t.Errorf("%s drop %d: composed = %v, want %v", name, k, got, want)
			}
		}
	}
}

func TestRejections(t *testing.T) {
	list := container.NewList(1, 2, 3)
	set := container.NewOrderedSet("a", "b")

	tests := []struct {
		name string
		err  func() error
		code errors.ErrorCode
	}{
		{"reverse forward-only", func() error {
			_, err := view.TryPipe[int, int](list, view.Reverse[int]())
			return err
		}, errors.ErrCodeCapabilityMissing},
		{"reverse after transform of forward-only", func() error {
			r := view.Pipe[int, int](list, view.Transform(square))
			_, err := view.TryPipe(r, view.Reverse[int]())
			return err
		}, errors.ErrCodeCapabilityMissing},
		{"keys without key type", func() error {
			_, err := view.TryPipe(numbers(), view.Keys[int, int]())
			return err
		}, errors.ErrCodeCapabilityMissing},
		{"keys of wrong key type", func() error {
			_, err := view.TryPipe(names(), view.Keys[view.Pair[int, string], string]())
			return err
		}, errors.ErrCodeCapabilityMissing},
		{"values on a set", func() error {
			_, err := view.TryPipe[string, string](set, view.Values[string, string]())
			return err
		}, errors.ErrCodeCapabilityMissing},
		{"keys after transform", func() error {
			r := view.Pipe(names(), view.Transform(func(p view.Pair[int, string]) view.Pair[int, string] { return p }))
			_, err := view.TryPipe(r, view.Keys[view.Pair[int, string], int]())
			return err
		}, errors.ErrCodeCapabilityMissing},
		{"negative take", func() error {
			_, err := view.TryPipe(numbers(), view.Take[int](-1))
			return err
		}, errors.ErrCodeInvalidInput},
		{"negative drop", func() error {
			_, err := view.TryPipe(numbers(), view.Drop[int](-3))
			return err
		}, errors.ErrCodeInvalidInput},
		{"backward over forward-only", func() error {
			_, err := view.Backward[int](list)
			return err
		}, errors.ErrCodeCapabilityMissing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.err()
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.IsCode(err, tt.code) {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestPipe_PanicsOnRejection(t *testing.T) {
	list := container.NewList(1, 2, 3)
	got := viewtest.MustPanic(t, func() {
		view.Pipe[int, int](list, view.Reverse[int]())
	})
	appErr, ok := got.(*errors.AppError)
	if !ok {
		t.Fatalf("panic value %T, want *errors.AppError", got)
	}
	if appErr.Details["adapter"] != "reverse" {
		t.Errorf("details = %v", appErr.Details)
	}
}

func TestTake_NegativeDetails(t *testing.T) {
	_, err := view.TryPipe(numbers(), view.Take[int](-1))
	appErr, ok := errors.AsAppError(err)
	if !ok {
		t.Fatalf("want AppError, got %v", err)
	}
	if appErr.Details["adapter"] != "take" {
		t.Errorf("adapter detail = %v", appErr.Details["adapter"])
	}
	if appErr.Message != "count: must be greater than or equal to 0" {
		t.Errorf("message = %q", appErr.Message)
	}
}

type keyOnly struct{ k int }

func (e keyOnly) First() int { return e.k }

// keyed declares a key type over a slice of arbitrary elements.
type keyed[T any] struct{ *view.Slice[T] }

func (keyed[T]) Capabilities() view.Capabilities {
	return view.Capabilities{Backward: true, Keys: true}
}

func TestKeys_RequiresPairLikeElements(t *testing.T) {
	_, err := view.TryPipe[keyOnly, int](keyed[keyOnly]{view.Of(keyOnly{1}, keyOnly{2})}, view.Keys[keyOnly, int]())
	if !errors.IsCode(err, errors.ErrCodeCapabilityMissing) {
		t.Fatalf("expected CAPABILITY_MISSING for First-only elements, got %v", err)
	}

	pairs := keyed[view.Pair[int, string]]{view.Of(view.MakePair(1, "a"), view.MakePair(2, "b"))}
	r, err := view.TryPipe[view.Pair[int, string], int](pairs, view.Keys[view.Pair[int, string], int]())
	if err != nil {
		t.Fatal(err)
	}
	viewtest.ExpectBoth(t, r, 1, 2)
}
