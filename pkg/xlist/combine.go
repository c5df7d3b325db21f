package xlist

import (
	"iter"
	"slices"
)

// Combine returns the cartesian product of the inner lists of outer. Each
// combination takes one element from every inner list, in outer order.
// See Combinations for ordering and edge cases.
func Combine[E any](outer *List[*List[E]]) *List[*List[E]] {
	return CombineFunc(outer, (*List[E]).All)
}

// CombineFunc is Combine for outer lists whose elements are read as
// sequences through elems, for example a list of strings split by CharsOf.
func CombineFunc[S, E any](outer *List[S], elems func(S) iter.Seq[E]) *List[*List[E]] {
	out := New[*List[E]]()
	out.AppendAll(Combinations(outer, elems))
	return out
}

// Combinations lazily yields every combination of the inner sequences of
// outer. The first inner sequence varies slowest and the last varies
// fastest, so the first combination holds the first element of each inner
// sequence.
//
// An empty inner sequence yields nothing. An empty outer list yields a
// single empty combination.
//
// Inner sequences are read once at the start of each traversal.
func Combinations[S, E any](outer *List[S], elems func(S) iter.Seq[E]) iter.Seq[*List[E]] {
	return func(yield func(*List[E]) bool) {
		inner := make([][]E, 0, outer.Size())
		for s := range outer.All() {
			seq := slices.Collect(elems(s))
			if len(seq) == 0 {
				return
			}
			inner = append(inner, seq)
		}

		// digits[i] indexes inner[i]; the last digit is the least significant.
		digits := make([]int, len(inner))
		for {
			combo := New[E]()
			for i, d := range digits {
				combo.Append(inner[i][d])
			}
			if !yield(combo) {
				return
			}

			i := len(digits) - 1
			for ; i >= 0; i-- {
				digits[i]++
				if digits[i] < len(inner[i]) {
					break
				}
				digits[i] = 0
			}
			if i < 0 {
				return
			}
		}
	}
}
