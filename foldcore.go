package foldcore

import (
	"context"
	"fmt"
	"iter"
	"slices"
)

// StepFunc combines an accumulator with the next element.
// It must return a new accumulator rather than modify acc: with a parallel
// evaluation strategy other chunks may still hold the old value.
type StepFunc[T, A any] func(acc A, x T) (A, error)

// MergeFunc combines two partial accumulators produced by independent chunk
// folds, left before right. It must not mutate either argument.
type MergeFunc[A any] func(left, right A) A

// Reducer bundles everything a fold needs.
//
// Identity produces the starting accumulator. It is called once per chunk,
// possibly from several goroutines, so it must return a fresh value each time.
// Merge may be nil when the fold is always evaluated sequentially.
type Reducer[T, A any] struct {
	Identity func() A
	Step     StepFunc[T, A]
	Merge    MergeFunc[A]
}

func (r Reducer[T, A]) validate(parallel bool) error {
	switch {
	case r.Identity == nil:
		return fmt.Errorf("%w: reducer identity", ErrNilFunc)
	case r.Step == nil:
		return fmt.Errorf("%w: reducer step", ErrNilFunc)
	case parallel && r.Merge == nil:
		return fmt.Errorf("%w: reducer merge is required for parallel folds", ErrNilFunc)
	}
	return nil
}

// Fold collapses seq into a single value. See FoldContext.
func Fold[T, A any](seq iter.Seq[T], r Reducer[T, A], opts ...Option) (A, error) {
	return FoldContext(context.Background(), seq, r, opts...)
}

// FoldContext collapses seq into a single value using r.
//
// By default the fold runs left to right on the calling goroutine. With
// WithParallelism(n) for n > 1 the input is cut into chunks, each chunk is
// folded from r.Identity() on its own goroutine and the partial results are
// merged pairwise with r.Merge, preserving input order.
//
// A step error aborts the fold: the zero A is returned together with an
// *ElementError naming the failing element.
func FoldContext[T, A any](ctx context.Context, seq iter.Seq[T], r Reducer[T, A], opts ...Option) (A, error) {
	var zero A
	cfg := newConfig(opts)
	parallel := cfg.parallelism > 1
	if err := r.validate(parallel); err != nil {
		return zero, err
	}
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	if parallel {
		return foldParallel(ctx, seq, r, cfg)
	}
	return foldSequential(ctx, seq, r, 0)
}

// foldSequential is a plain left fold. offset is the input index of the
// first element of seq and is only used for error reporting.
func foldSequential[T, A any](ctx context.Context, seq iter.Seq[T], r Reducer[T, A], offset int) (A, error) {
	var zero A
	acc := r.Identity()
	i := offset
	for x := range seq {
		if err := ctx.Err(); err != nil {
			return zero, err
		}
		next, err := r.Step(acc, x)
		if err != nil {
			return zero, &ElementError{Index: i, Err: err}
		}
		acc = next
		i++
	}
	return acc, nil
}

// Map applies mapper to every element of seq and returns the results in
// input order.
//
// Map is written purely in terms of Fold: every step copies the accumulator
// and appends one element, so it costs O(n²) copies. Prefer a plain loop or
// slices functions when performance matters.
//
// Example:
//
//	doubled, _ := foldcore.Map(slices.Values([]int{1, 2, 3}),
//	    foldcore.Lift(func(x int) int { return x * 2 }))
//	// doubled == []int{2, 4, 6}
func Map[I, O any](seq iter.Seq[I], mapper MapperFunc[I, O], opts ...Option) ([]O, error) {
	return MapContext(context.Background(), seq, mapper, opts...)
}

// MapContext is Map with a context for parallel evaluation.
func MapContext[I, O any](ctx context.Context, seq iter.Seq[I], mapper MapperFunc[I, O], opts ...Option) ([]O, error) {
	if mapper == nil {
		return nil, fmt.Errorf("%w: mapper", ErrNilFunc)
	}
	return FoldContext(ctx, seq, Reducer[I, []O]{
		Identity: empty[O],
		Step: func(acc []O, x I) ([]O, error) {
			y, err := mapper(x)
			if err != nil {
				return nil, err
			}
			return appended(acc, y), nil
		},
		Merge: concat[O],
	}, opts...)
}

// MapSlice is Map over the elements of s.
func MapSlice[I, O any](s []I, mapper MapperFunc[I, O], opts ...Option) ([]O, error) {
	return Map(slices.Values(s), mapper, opts...)
}

// Filter returns the elements of seq for which predicate holds, in input
// order. Like Map it is built only on Fold.
//
// Example:
//
//	startsWithDigit := foldcore.Pred(func(s string) bool {
//	    return s != "" && unicode.IsDigit(rune(s[0]))
//	})
//	got, _ := foldcore.FilterSlice([]string{"a", "1abc", "abc1"}, startsWithDigit)
//	// got == []string{"1abc"}
func Filter[T any](seq iter.Seq[T], predicate PredicateFunc[T], opts ...Option) ([]T, error) {
	return FilterContext(context.Background(), seq, predicate, opts...)
}

// FilterContext is Filter with a context for parallel evaluation.
func FilterContext[T any](ctx context.Context, seq iter.Seq[T], predicate PredicateFunc[T], opts ...Option) ([]T, error) {
	if predicate == nil {
		return nil, fmt.Errorf("%w: predicate", ErrNilFunc)
	}
	return FoldContext(ctx, seq, Reducer[T, []T]{
		Identity: empty[T],
		Step: func(acc []T, x T) ([]T, error) {
			ok, err := predicate(x)
			if err != nil {
				return nil, err
			}
			if !ok {
				return acc, nil
			}
			return appended(acc, x), nil
		},
		Merge: concat[T],
	}, opts...)
}

// FilterSlice is Filter over the elements of s.
func FilterSlice[T any](s []T, predicate PredicateFunc[T], opts ...Option) ([]T, error) {
	return Filter(slices.Values(s), predicate, opts...)
}
