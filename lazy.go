package foldcore

import "iter"

// The adapters below are lazy: they do no work until the returned sequence
// is ranged over, and they evaluate only as many elements as the consumer
// asks for. Map, Filter and the aggregates in this package are eager.

// Mapped returns a sequence yielding fn(x) for every x in seq.
func Mapped[I, O any](seq iter.Seq[I], fn func(I) O) iter.Seq[O] {
	return func(yield func(O) bool) {
		for x := range seq {
			if !yield(fn(x)) {
				return
			}
		}
	}
}

// Filtered returns a sequence yielding the elements of seq that satisfy keep.
func Filtered[T any](seq iter.Seq[T], keep func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for x := range seq {
			if keep(x) && !yield(x) {
				return
			}
		}
	}
}

// FlatMapped returns the concatenation of fn(x) for every x in seq.
func FlatMapped[I, O any](seq iter.Seq[I], fn func(I) iter.Seq[O]) iter.Seq[O] {
	return func(yield func(O) bool) {
		for x := range seq {
			for y := range fn(x) {
				if !yield(y) {
					return
				}
			}
		}
	}
}

// Limit returns a sequence of at most n elements of seq.
func Limit[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		i := 0
		for x := range seq {
			if !yield(x) {
				return
			}
			i++
			if i == n {
				return
			}
		}
	}
}
