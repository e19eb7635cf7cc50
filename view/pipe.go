package view

import (
	"github.com/kbukum/viewkit/logger"
)

// Adapter is an immutable descriptor for one view transformation. It holds
// only parameters; Apply validates them against a source and builds the view.
type Adapter[T, U any] interface {
	// Name identifies the adapter in errors and log lines.
	Name() string
	// Apply wraps src. It never traverses src.
	Apply(src Range[T]) (Range[U], error)
}

// NewAdapter turns a function into a named Adapter.
func NewAdapter[T, U any](name string, apply func(Range[T]) (Range[U], error)) Adapter[T, U] {
	return funcAdapter[T, U]{name: name, apply: apply}
}

type funcAdapter[T, U any] struct {
	name  string
	apply func(Range[T]) (Range[U], error)
}

func (a funcAdapter[T, U]) Name() string { return a.name }

func (a funcAdapter[T, U]) Apply(src Range[T]) (Range[U], error) { return a.apply(src) }

// TryPipe wraps src with a and returns the resulting view, or the error
// describing why a cannot wrap src.
func TryPipe[T, U any](src Range[T], a Adapter[T, U]) (Range[U], error) {
	out, err := a.Apply(src)
	if err != nil {
		logger.Get(logger.ComponentView).Debug("adapter rejected source", logger.Fields(
			logger.FieldAdapter, a.Name(),
			logger.FieldCapability, src.Capabilities().String(),
			logger.FieldError, err.Error(),
		))
		return nil, err
	}
	return out, nil
}

// Pipe wraps src with a. It panics if a cannot wrap src, for example when
// Reverse is applied to a forward-only source. Use TryPipe when the source
// is not known statically.
func Pipe[T, U any](src Range[T], a Adapter[T, U]) Range[U] {
	out, err := TryPipe(src, a)
	if err != nil {
		panic(err)
	}
	return out
}

// Pipe2 is Pipe(Pipe(src, a), b).
func Pipe2[A, B, C any](src Range[A], a Adapter[A, B], b Adapter[B, C]) Range[C] {
	return Pipe(Pipe(src, a), b)
}

// Pipe3 chains three adapters left to right.
func Pipe3[A, B, C, D any](src Range[A], a Adapter[A, B], b Adapter[B, C], c Adapter[C, D]) Range[D] {
	return Pipe(Pipe2(src, a, b), c)
}

// Pipe4 chains four adapters left to right.
func Pipe4[A, B, C, D, E any](src Range[A], a Adapter[A, B], b Adapter[B, C], c Adapter[C, D], d Adapter[D, E]) Range[E] {
	return Pipe(Pipe3(src, a, b, c), d)
}

// Compose returns an adapter equivalent to applying first and then second.
func Compose[A, B, C any](first Adapter[A, B], second Adapter[B, C]) Adapter[A, C] {
	return composed[A, B, C]{first: first, second: second}
}

type composed[A, B, C any] struct {
	first  Adapter[A, B]
	second Adapter[B, C]
}

func (c composed[A, B, C]) Name() string {
	return c.first.Name() + " | " + c.second.Name()
}

func (c composed[A, B, C]) Apply(src Range[A]) (Range[C], error) {
	mid, err := c.first.Apply(src)
	if err != nil {
		return nil, err
	}
	return c.second.Apply(mid)
}
