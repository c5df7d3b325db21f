package xlist

import (
	"iter"
	"slices"
)

// Union returns a copy of l followed by every value of other.
func (l *List[T]) Union(other iter.Seq[T]) *List[T] {
	out := l.Clone()
	out.AppendAll(other)
	return out
}

// UnionOf is Union over a fixed set of values.
func (l *List[T]) UnionOf(values ...T) *List[T] {
	return l.Union(slices.Values(values))
}

// Diff returns the elements of l that do not appear in other, keeping their
// relative order. Duplicates in l survive unless removed by other.
func (l *List[T]) Diff(other iter.Seq[T]) *List[T] {
	exclude := newValueSet(l.equal, l.eq != nil)
	for v := range other {
		exclude.add(v)
	}

	out := l.derive()
	for v := range l.All() {
		if !exclude.has(v) {
			out.Append(v)
		}
	}
	return out
}

// Unique returns the first occurrence of each distinct element of l.
func (l *List[T]) Unique() *List[T] {
	seen := newValueSet(l.equal, l.eq != nil)

	out := l.derive()
	for v := range l.All() {
		if seen.add(v) {
			out.Append(v)
		}
	}
	return out
}

// Collect maps every element of l through fn into a new list.
func Collect[T, R any](l *List[T], fn func(T) R) *List[R] {
	out := New[R]()
	for v := range l.All() {
		out.Append(fn(v))
	}
	return out
}
