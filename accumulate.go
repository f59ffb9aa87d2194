package foldcore

// Accumulators are never modified once a step has returned them. Every
// helper here allocates a new backing array sized exactly to its contents,
// so a later append by anyone holding an old accumulator cannot write into
// a newer one.

func empty[T any]() []T {
	return []T{}
}

// appended returns a copy of acc with x added at the end.
func appended[T any](acc []T, x T) []T {
	next := make([]T, len(acc)+1)
	copy(next, acc)
	next[len(acc)] = x
	return next
}

// concat returns a new slice holding left followed by right.
func concat[T any](left, right []T) []T {
	out := make([]T, len(left)+len(right))
	n := copy(out, left)
	copy(out[n:], right)
	return out
}
