/*
Package foldcore expresses collection transformations as folds.

# Overview

Every eager operation in this package (Map, Filter, FlatMap, Sum, Count,
MaxBy, MinBy, AnyMatch) is written against a single primitive, Fold, which
takes an identity, a per-element step and a merge for partial results:

	type Reducer[T, A any] struct {
	    Identity func() A
	    Step     StepFunc[T, A]
	    Merge    MergeFunc[A]
	}

Steps never mutate the accumulator they are given. Map and Filter copy the
accumulator on every step, which makes them O(n²). They exist to show that a
fold with a non-mutating combiner is enough to build both; use a loop or the
slices package when speed matters.

# Quick Example

	doubled, err := foldcore.MapSlice([]int{1, 2, 3},
	    foldcore.Lift(func(x int) int { return x * 2 }))
	// doubled == []int{2, 4, 6}

	digits, err := foldcore.FilterSlice([]string{"a", "1abc", "abc1"},
	    foldcore.Pred(func(s string) bool { return unicode.IsDigit(rune(s[0])) }))
	// digits == []string{"1abc"}

# Parallel Evaluation

Because steps are pure and merges are order-preserving, the same reducer can
be evaluated in chunks on several goroutines:

	out, err := foldcore.MapSlice(xs, mapper,
	    foldcore.WithParallelism(4),
	    foldcore.WithChunkSize(256),
	)

Results are identical to the sequential fold.

# Errors

A failing mapper or predicate aborts the whole call. No partial result is
returned and the error is an *ElementError carrying the index of the element
that failed:

	var ee *foldcore.ElementError
	if errors.As(err, &ee) {
	    fmt.Println("bad element at", ee.Index)
	}

# Functional Types

MapperFunc and PredicateFunc are function types with combinator methods.
Plain functions are adapted with Lift and Pred:

	isLong := foldcore.Pred(func(t Track) bool { return t.Length > 60 })
	isShort := isLong.Not()
	keep := isLong.And(hasName).Or(isFavourite)

# Lazy Adapters

Mapped, Filtered, FlatMapped and Limit return iter.Seq values and do no work
until ranged over. They compose with the eager operations:

	firstLong := foldcore.Limit(foldcore.Filtered(tracks, func(t Track) bool {
	    return t.Length > 60
	}), 3)
	names := foldcore.Mapped(firstLong, func(t Track) string { return t.Name })
	fmt.Println(foldcore.Count(names)) // consumes the sequence
*/
package foldcore
