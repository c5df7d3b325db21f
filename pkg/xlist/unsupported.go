package xlist

import "iter"

// The operations below belong to a general-purpose list interface but are
// not part of List's contract. Each one leaves the list untouched and
// returns an *UnsupportedError.

func (l *List[T]) RetainAll(seq iter.Seq[T]) (bool, error) {
	return false, &UnsupportedError{Op: "RetainAll"}
}

func (l *List[T]) ContainsAll(seq iter.Seq[T]) (bool, error) {
	return false, &UnsupportedError{Op: "ContainsAll"}
}

func (l *List[T]) InsertAllAt(index int, seq iter.Seq[T]) (bool, error) {
	return false, &UnsupportedError{Op: "InsertAllAt"}
}

func (l *List[T]) Clear() error {
	return &UnsupportedError{Op: "Clear"}
}

func (l *List[T]) IndexOf(value T) (int, error) {
	return -1, &UnsupportedError{Op: "IndexOf"}
}

func (l *List[T]) LastIndexOf(value T) (int, error) {
	return -1, &UnsupportedError{Op: "LastIndexOf"}
}

// Backward would need a doubly linked chain.
func (l *List[T]) Backward() (iter.Seq[T], error) {
	return nil, &UnsupportedError{Op: "Backward"}
}

func (l *List[T]) SubList(from, to int) (*List[T], error) {
	return nil, &UnsupportedError{Op: "SubList"}
}
