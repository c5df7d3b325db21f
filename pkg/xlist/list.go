package xlist

import (
	"fmt"
	"iter"
	"strings"
)

// List is an ordered sequence of T stored as a singly linked chain.
// The zero value is an empty list that uses the default Equal.
type List[T any] struct {
	nodes []node[T]
	head  ref
	tail  ref
	free  ref
	size  int
	eq    func(a, b T) bool
}

// New creates an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// NewFunc creates an empty list that compares elements with eq. Lists
// derived from it (Clone, Union, Diff, Unique) keep using eq.
func NewFunc[T any](eq func(a, b T) bool) *List[T] {
	return &List[T]{eq: eq}
}

// Of creates a list holding values in order.
func Of[T any](values ...T) *List[T] {
	l := New[T]()
	for _, v := range values {
		l.Append(v)
	}
	return l
}

// From creates a list holding every value produced by seq, in order.
func From[T any](seq iter.Seq[T]) *List[T] {
	l := New[T]()
	l.AppendAll(seq)
	return l
}

func (l *List[T]) equal(a, b T) bool {
	if l.eq != nil {
		return l.eq(a, b)
	}
	return Equal(a, b)
}

// derive returns an empty list sharing l's equality.
func (l *List[T]) derive() *List[T] {
	return &List[T]{eq: l.eq}
}

func (l *List[T]) Size() int {
	return l.size
}

func (l *List[T]) IsEmpty() bool {
	return l.size == 0
}

// Get returns the element at index.
func (l *List[T]) Get(index int) (T, error) {
	if index < 0 || index >= l.size {
		var zero T
		return zero, &IndexError{Op: "Get", Index: index, Size: l.size}
	}
	return l.at(l.walk(index)).value, nil
}

// Set replaces the element at index and returns the previous one.
func (l *List[T]) Set(index int, value T) (T, error) {
	if index < 0 || index >= l.size {
		var zero T
		return zero, &IndexError{Op: "Set", Index: index, Size: l.size}
	}
	n := l.at(l.walk(index))
	old := n.value
	n.value = value
	return old, nil
}

// Append adds value as the new terminal element.
func (l *List[T]) Append(value T) {
	r := l.alloc(value)
	if l.tail == 0 {
		l.head = r
	} else {
		l.at(l.tail).next = r
	}
	l.tail = r
	l.size++
}

// InsertAt places value so that it ends up at index. Valid indices are
// 0 through Size(); index 0 makes a new head and Size() appends.
func (l *List[T]) InsertAt(index int, value T) error {
	if index < 0 || index > l.size {
		return &IndexError{Op: "InsertAt", Index: index, Size: l.size}
	}
	if index == l.size {
		l.Append(value)
		return nil
	}

	// alloc may grow the arena, so take node pointers only afterwards.
	r := l.alloc(value)
	if index == 0 {
		l.at(r).next = l.head
		l.head = r
	} else {
		prev := l.at(l.walk(index - 1))
		l.at(r).next = prev.next
		prev.next = r
	}
	l.size++
	return nil
}

// RemoveAt unlinks the element at index and returns it.
func (l *List[T]) RemoveAt(index int) (T, error) {
	if index < 0 || index >= l.size {
		var zero T
		return zero, &IndexError{Op: "RemoveAt", Index: index, Size: l.size}
	}

	var prev ref
	if index > 0 {
		prev = l.walk(index - 1)
	}
	return l.unlink(prev), nil
}

// unlink removes the node after prev, or the head when prev is 0.
func (l *List[T]) unlink(prev ref) T {
	var r ref
	if prev == 0 {
		r = l.head
		l.head = l.at(r).next
	} else {
		r = l.at(prev).next
		l.at(prev).next = l.at(r).next
	}
	if r == l.tail {
		l.tail = prev
	}

	v := l.at(r).value
	l.release(r)
	l.size--
	return v
}

// Remove deletes the first element equal to value. It reports false when
// the list is empty, value is absent, or value is no value (see IsNil).
func (l *List[T]) Remove(value T) bool {
	if l.size == 0 || IsNil(value) {
		return false
	}

	var prev ref
	for r := l.head; r != 0; prev, r = r, l.at(r).next {
		if l.equal(value, l.at(r).value) {
			l.unlink(prev)
			return true
		}
	}
	return false
}

// Contains reports whether an element equals value. No value matches a
// stored no value.
func (l *List[T]) Contains(value T) bool {
	for v := range l.All() {
		if l.equal(value, v) {
			return true
		}
	}
	return false
}

// AppendAll appends every value of seq in order.
func (l *List[T]) AppendAll(seq iter.Seq[T]) {
	for v := range seq {
		l.Append(v)
	}
}

// RemoveAll removes one occurrence of each value of seq, in seq order, and
// reports whether anything was removed.
func (l *List[T]) RemoveAll(seq iter.Seq[T]) bool {
	modified := false
	for v := range seq {
		if l.Remove(v) {
			modified = true
		}
	}
	return modified
}

// All yields the elements from head to tail. Each call starts a fresh
// traversal. The list must not be mutated while ranging. A nil list yields
// nothing.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l == nil {
			return
		}
		for r := l.head; r != 0; r = l.at(r).next {
			if !yield(l.at(r).value) {
				return
			}
		}
	}
}

// Enumerate yields each element with its zero-based position.
func (l *List[T]) Enumerate() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for r := l.head; r != 0; r = l.at(r).next {
			if !yield(i, l.at(r).value) {
				return
			}
			i++
		}
	}
}

func (l *List[T]) ForEachIndexed(action func(value T, index int)) {
	for i, v := range l.Enumerate() {
		action(v, i)
	}
}

// ToSlice returns a snapshot of the elements. It is never nil.
func (l *List[T]) ToSlice() []T {
	out := make([]T, 0, l.size)
	for v := range l.All() {
		out = append(out, v)
	}
	return out
}

// String formats the list as [e0, e1, ..., eN].
func (l *List[T]) String() string {
	return "[" + l.Join(", ") + "]"
}

// Join concatenates the text form of every element with sep between
// consecutive elements.
func (l *List[T]) Join(sep string) string {
	var b strings.Builder
	for i, v := range l.Enumerate() {
		if i > 0 {
			b.WriteString(sep)
		}
		fmt.Fprint(&b, v)
	}
	return b.String()
}

// Clone returns a compact copy of l with the same equality.
func (l *List[T]) Clone() *List[T] {
	out := l.derive()
	out.AppendAll(l.All())
	return out
}

// Equal reports whether other holds equal elements in the same order.
func (l *List[T]) Equal(other *List[T]) bool {
	if l == nil || other == nil {
		return l == other
	}
	if l.size != other.size {
		return false
	}

	next, stop := iter.Pull(other.All())
	defer stop()
	for v := range l.All() {
		w, _ := next()
		if !l.equal(v, w) {
			return false
		}
	}
	return true
}
