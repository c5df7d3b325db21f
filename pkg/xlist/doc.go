// Package xlist provides List[T], an ordered, mutable sequence backed by a
// singly linked chain of nodes.
//
// Nodes live in an arena owned by the list and are linked by index, so the
// zero List[T] is an empty list ready to use. Positional access walks the
// chain and is linear in the index.
//
// Key operations:
// - New/NewFunc/Of/From: build a list empty, with custom equality, from values or an iter.Seq
// - Get/Set/InsertAt/RemoveAt: positional access, failing with ErrOutOfRange
// - Append/AppendAll/Remove/RemoveAll/Contains: content operations
// - All/Enumerate/ForEachIndexed/ToSlice: traversal
// - Union/Diff/Unique/Collect/Join: derived lists that leave the receiver untouched
// - Combine/CombineFunc/Combinations: cartesian product of inner sequences
// - TokensOf/TokensOfPattern/CharsOf: lists built from text
//
// A List is not safe for concurrent use.
package xlist
