package view

import (
	"reflect"
	"strings"
)

// Capabilities describes what a Range supports. Adapters read them once,
// when they are applied, to choose a cursor shape or reject the source.
type Capabilities struct {
	// Backward is set when cursors implement BidiCursor.
	Backward bool
	// Keys is set when the source declares a key type (ordered maps and sets).
	Keys bool
	// Mapped is set when the source declares a mapped value type next to its keys.
	Mapped bool
}

// String lists the set capabilities, e.g. "backward,keys".
func (c Capabilities) String() string {
	var parts []string
	if c.Backward {
		parts = append(parts, "backward")
	}
	if c.Keys {
		parts = append(parts, "keys")
	}
	if c.Mapped {
		parts = append(parts, "mapped")
	}
	if len(parts) == 0 {
		return "forward"
	}
	return strings.Join(parts, ",")
}

// projected drops the key declarations: a view that changes what a position
// yields no longer has the source's key or mapped types.
func (c Capabilities) projected() Capabilities {
	return Capabilities{Backward: c.Backward}
}

// SupportsBackward reports whether cursors of r can step back.
func SupportsBackward[T any](r Range[T]) bool {
	return r.Capabilities().Backward
}

// DeclaresKeys reports whether r exposes a key type.
func DeclaresKeys[T any](r Range[T]) bool {
	return r.Capabilities().Keys
}

// DeclaresKeyValue reports whether r exposes both a key and a mapped type.
func DeclaresKeyValue[T any](r Range[T]) bool {
	c := r.Capabilities()
	return c.Keys && c.Mapped
}

// IsPairLike reports whether T exposes First and Second accessors.
func IsPairLike[T any]() bool {
	t := reflect.TypeFor[T]()
	return hasAccessor(t, "First") && hasAccessor(t, "Second")
}

func hasAccessor(t reflect.Type, name string) bool {
	m, ok := t.MethodByName(name)
	if !ok {
		return false
	}
	in := m.Type.NumIn()
	if t.Kind() != reflect.Interface {
		// receiver
		in--
	}
	return in == 0 && m.Type.NumOut() == 1
}

type firster[K any] interface{ First() K }

type seconder[V any] interface{ Second() V }

func implements[T, I any]() bool {
	return reflect.TypeFor[T]().Implements(reflect.TypeFor[I]())
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
