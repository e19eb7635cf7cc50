package observability

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/kbukum/viewkit/view"
)

// Observe returns an adapter that yields its source unchanged and counts
// cursor activity on m, tagged with stage. Capabilities pass through.
func Observe[T any](m *Metrics, stage string) view.Adapter[T, T] {
	opt := metric.WithAttributeSet(attribute.NewSet(attribute.String(AttrStage, stage)))
	return view.NewAdapter("observe", func(src view.Range[T]) (view.Range[T], error) {
		return &observedView[T]{src: src, m: m, opt: opt}, nil
	})
}

type observedView[T any] struct {
	src view.Range[T]
	m   *Metrics
	opt metric.MeasurementOption
}

func (v *observedView[T]) Begin() view.Cursor[T] { return v.wrap(v.src.Begin()) }

func (v *observedView[T]) End() view.Cursor[T] { return v.wrap(v.src.End()) }

func (v *observedView[T]) Capabilities() view.Capabilities { return v.src.Capabilities() }

func (v *observedView[T]) wrap(c view.Cursor[T]) view.Cursor[T] {
	oc := &observedCursor[T]{inner: c, v: v}
	if b, ok := c.(view.BidiCursor[T]); ok && v.src.Capabilities().Backward {
		return &bidiObservedCursor[T]{observedCursor: oc, back: b}
	}
	return oc
}

// Cursor methods carry no context.
type observedCursor[T any] struct {
	inner view.Cursor[T]
	v     *observedView[T]
}

func (c *observedCursor[T]) Next() {
	c.v.m.advances.Add(context.Background(), 1, c.v.opt)
	c.inner.Next()
}

func (c *observedCursor[T]) Value() T {
	c.v.m.dereferences.Add(context.Background(), 1, c.v.opt)
	return c.inner.Value()
}

func (c *observedCursor[T]) Equal(other view.Cursor[T]) bool {
	o, ok := other.(interface{ observed() *observedCursor[T] })
	return ok && c.inner.Equal(o.observed().inner)
}

func (c *observedCursor[T]) observed() *observedCursor[T] { return c }

type bidiObservedCursor[T any] struct {
	*observedCursor[T]
	back view.BidiCursor[T]
}

func (c *bidiObservedCursor[T]) Prev() {
	c.v.m.retreats.Add(context.Background(), 1, c.v.opt)
	c.back.Prev()
}
