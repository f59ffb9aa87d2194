package foldcore

import (
	"errors"
	"iter"
	"slices"
)

// Number is any integer or floating-point type.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Sum adds up every element of seq. An empty seq sums to zero.
func Sum[N Number](seq iter.Seq[N]) N {
	// The step cannot fail and the fold runs sequentially, so there is no
	// error to report.
	total, _ := Fold(seq, Reducer[N, N]{
		Identity: func() N { return 0 },
		Step:     func(acc, x N) (N, error) { return acc + x, nil },
		Merge:    func(left, right N) N { return left + right },
	})
	return total
}

// Count returns the number of elements in seq.
func Count[T any](seq iter.Seq[T]) int {
	n, _ := Fold(seq, Reducer[T, int]{
		Identity: func() int { return 0 },
		Step:     func(acc int, _ T) (int, error) { return acc + 1, nil },
		Merge:    func(left, right int) int { return left + right },
	})
	return n
}

// FlatMap maps every element to a sequence and concatenates the results in
// order.
func FlatMap[I, O any](seq iter.Seq[I], mapper MapperFunc[I, iter.Seq[O]], opts ...Option) ([]O, error) {
	if mapper == nil {
		return nil, ErrNilFunc
	}
	return Fold(seq, Reducer[I, []O]{
		Identity: empty[O],
		Step: func(acc []O, x I) ([]O, error) {
			inner, err := mapper(x)
			if err != nil {
				return nil, err
			}
			if inner == nil {
				return acc, nil
			}
			return concat(acc, slices.Collect(inner)), nil
		},
		Merge: concat[O],
	}, opts...)
}

type best[T any] struct {
	value T
	ok    bool
}

// MaxBy returns the greatest element of seq according to cmp, which returns
// a negative number, zero or a positive number like cmp.Compare. Among equal
// elements the first one wins. ok is false for an empty seq.
func MaxBy[T any](seq iter.Seq[T], cmp func(a, b T) int) (T, bool) {
	return pickBy(seq, func(a, b T) bool { return cmp(a, b) >= 0 })
}

// MinBy returns the least element of seq according to cmp.
// Among equal elements the first one wins. ok is false for an empty seq.
func MinBy[T any](seq iter.Seq[T], cmp func(a, b T) int) (T, bool) {
	return pickBy(seq, func(a, b T) bool { return cmp(a, b) <= 0 })
}

// pickBy folds seq keeping a unless keepLeft(a, b) is false.
func pickBy[T any](seq iter.Seq[T], keepLeft func(a, b T) bool) (T, bool) {
	choose := func(left, right best[T]) best[T] {
		switch {
		case !left.ok:
			return right
		case !right.ok:
			return left
		case keepLeft(left.value, right.value):
			return left
		default:
			return right
		}
	}
	b, _ := Fold(seq, Reducer[T, best[T]]{
		Identity: func() best[T] { return best[T]{} },
		Step: func(acc best[T], x T) (best[T], error) {
			return choose(acc, best[T]{value: x, ok: true}), nil
		},
		Merge: choose,
	})
	return b.value, b.ok
}

var errMatched = errors.New("foldcore: matched")

// AnyMatch reports whether predicate holds for some element of seq. It is
// eager but stops consuming seq at the first match.
func AnyMatch[T any](seq iter.Seq[T], predicate PredicateFunc[T]) (bool, error) {
	if predicate == nil {
		return false, ErrNilFunc
	}
	_, err := Fold(seq, Reducer[T, struct{}]{
		Identity: func() struct{} { return struct{}{} },
		Step: func(acc struct{}, x T) (struct{}, error) {
			ok, err := predicate(x)
			if err != nil {
				return acc, err
			}
			if ok {
				return acc, errMatched
			}
			return acc, nil
		},
	})
	if errors.Is(err, errMatched) {
		return true, nil
	}
	return false, err
}

// AllMatch reports whether predicate holds for every element of seq.
// It is true for an empty seq and stops at the first counterexample.
func AllMatch[T any](seq iter.Seq[T], predicate PredicateFunc[T]) (bool, error) {
	if predicate == nil {
		return false, ErrNilFunc
	}
	found, err := AnyMatch(seq, predicate.Not())
	return !found && err == nil, err
}
