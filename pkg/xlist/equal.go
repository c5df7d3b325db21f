package xlist

import "reflect"

// IsNil reports whether v is the "no value" of a nil-able kind: a nil
// interface, pointer, map, channel, function or unsafe pointer. A nil slice
// is a valid empty sequence and is not treated as no value.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// Equal is the element equality used by lists built without NewFunc.
//
// No value only equals no value. Otherwise a method Equal(T) bool on the
// element decides, then == for comparable values, then reflect.DeepEqual.
func Equal[T any](a, b T) bool {
	an, bn := IsNil(a), IsNil(b)
	if an || bn {
		return an && bn
	}

	if e, ok := any(a).(interface{ Equal(T) bool }); ok {
		return e.Equal(b)
	}

	va, vb := any(a), any(b)
	if reflect.ValueOf(va).Comparable() && reflect.ValueOf(vb).Comparable() {
		return va == vb
	}
	return reflect.DeepEqual(va, vb)
}

// hashable reports whether v can be used as a map key under the default
// equality without changing its meaning.
func hashable[T any](v T) bool {
	if _, ok := any(v).(interface{ Equal(T) bool }); ok {
		return false
	}
	return reflect.ValueOf(any(v)).Comparable()
}

// valueSet tracks values already seen. Hashable values go through a map when
// the default equality is in use; everything else falls back to a linear scan
// with the list's equality.
type valueSet[T any] struct {
	eq      func(a, b T) bool
	custom  bool
	hasNil  bool
	keys    map[any]struct{}
	scanned []T
}

func newValueSet[T any](eq func(a, b T) bool, custom bool) *valueSet[T] {
	return &valueSet[T]{
		eq:     eq,
		custom: custom,
		keys:   make(map[any]struct{}),
	}
}

func (s *valueSet[T]) has(v T) bool {
	if !s.custom {
		if IsNil(v) {
			return s.hasNil
		}
		if hashable(v) {
			_, ok := s.keys[any(v)]
			return ok
		}
	}

	for _, seen := range s.scanned {
		if s.eq(seen, v) {
			return true
		}
	}
	return false
}

// add records v and reports whether it was not seen before.
func (s *valueSet[T]) add(v T) bool {
	if s.has(v) {
		return false
	}

	switch {
	case s.custom:
		s.scanned = append(s.scanned, v)
	case IsNil(v):
		s.hasNil = true
	case hashable(v):
		s.keys[any(v)] = struct{}{}
	default:
		s.scanned = append(s.scanned, v)
	}
	return true
}
