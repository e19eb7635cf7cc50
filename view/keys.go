package view

import (
	"reflect"

	"github.com/kbukum/viewkit/errors"
)

type keys[T, K any] struct{}

// Keys yields the key of each element of a source that declares a key type.
// Pair-like elements yield First; sources whose elements are the keys
// themselves (ordered sets) yield each element unchanged.
func Keys[T, K any]() Adapter[T, K] {
	return keys[T, K]{}
}

func (keys[T, K]) Name() string { return "keys" }

func (k keys[T, K]) Apply(src Range[T]) (Range[K], error) {
	if !DeclaresKeys(src) {
		return nil, errors.MissingCapability(k.Name(), "declares a key type")
	}
	fn, ok := keyProjection[T, K]()
	if !ok {
		return nil, errors.MissingCapability(k.Name(), "yields pair-like or key-typed elements").
			WithDetail("element", typeName[T]()).
			WithDetail("key", typeName[K]())
	}
	return newProjectView(src, fn), nil
}

func keyProjection[T, K any]() (func(T) K, bool) {
	switch {
	case IsPairLike[T]() && implements[T, firster[K]]():
		return func(e T) K { return any(e).(firster[K]).First() }, true
	case reflect.TypeFor[T]() == reflect.TypeFor[K]():
		return func(e T) K { return any(e).(K) }, true
	}
	return nil, false
}

type values[T, V any] struct{}

// Values yields the mapped value of each element of a source that declares
// both a key and a mapped type. Elements must be pair-like.
func Values[T, V any]() Adapter[T, V] {
	return values[T, V]{}
}

func (values[T, V]) Name() string { return "values" }

func (v values[T, V]) Apply(src Range[T]) (Range[V], error) {
	if !DeclaresKeyValue(src) {
		return nil, errors.MissingCapability(v.Name(), "declares key and mapped types")
	}
	if !IsPairLike[T]() || !implements[T, seconder[V]]() {
		return nil, errors.MissingCapability(v.Name(), "yields pair-like elements").
			WithDetail("element", typeName[T]()).
			WithDetail("value", typeName[V]())
	}
	return newProjectView(src, func(e T) V { return any(e).(seconder[V]).Second() }), nil
}
