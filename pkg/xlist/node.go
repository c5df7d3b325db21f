package xlist

// ref addresses a node in the arena. It is the node's slice index plus one,
// so the zero ref means "no node".
type ref int

type node[T any] struct {
	value T
	next  ref
}

func (l *List[T]) at(r ref) *node[T] {
	return &l.nodes[r-1]
}

// alloc takes a node from the free list, or grows the arena when the free
// list is empty. The returned node is unlinked.
func (l *List[T]) alloc(v T) ref {
	if l.free != 0 {
		r := l.free
		n := l.at(r)
		l.free = n.next
		n.value = v
		n.next = 0
		return r
	}

	l.nodes = append(l.nodes, node[T]{value: v})
	return ref(len(l.nodes))
}

// release puts an unlinked node on the free list and drops its value.
func (l *List[T]) release(r ref) {
	var zero T
	n := l.at(r)
	n.value = zero
	n.next = l.free
	l.free = r
}

// walk returns the node at position index, which must be valid.
func (l *List[T]) walk(index int) ref {
	r := l.head
	for i := 0; i < index; i++ {
		r = l.at(r).next
	}
	return r
}

func (l *List[T]) reset() {
	l.nodes = nil
	l.head = 0
	l.tail = 0
	l.free = 0
	l.size = 0
}
