package foldcore

import (
	"fmt"
)

// ============================================================================
// Mappers
// ============================================================================

// MapperFunc transforms one element. A non-nil error aborts the Map it is
// passed to.
//
// Example:
//
//	parse := MapperFunc[string, int](strconv.Atoi)
//	ints, err := MapSlice([]string{"1", "2", "x"}, parse)
//	// err is an *ElementError for index 2
type MapperFunc[I, O any] func(I) (O, error)

// Apply calls f.
func (f MapperFunc[I, O]) Apply(x I) (O, error) {
	return f(x)
}

// Tap calls fn with every input and its successful result.
func (f MapperFunc[I, O]) Tap(fn func(I, O)) MapperFunc[I, O] {
	return func(x I) (O, error) {
		y, err := f(x)
		if err == nil {
			fn(x, y)
		}
		return y, err
	}
}

// Recover turns a panic inside f into an error.
func (f MapperFunc[I, O]) Recover() MapperFunc[I, O] {
	return func(x I) (y O, err error) {
		defer func() {
			if rec := recover(); rec != nil {
				err = fmt.Errorf("mapper panic: %v", rec)
			}
		}()
		return f(x)
	}
}

// Lift adapts a function that cannot fail.
func Lift[I, O any](fn func(I) O) MapperFunc[I, O] {
	return func(x I) (O, error) {
		return fn(x), nil
	}
}

// Identity returns the mapper that returns its input unchanged.
func Identity[T any]() MapperFunc[T, T] {
	return func(x T) (T, error) {
		return x, nil
	}
}

// Compose returns a mapper that applies f and then g. Mapping with
// Compose(f, g) equals mapping with f and then mapping the result with g.
func Compose[A, B, C any](f MapperFunc[A, B], g MapperFunc[B, C]) MapperFunc[A, C] {
	return func(x A) (C, error) {
		y, err := f(x)
		if err != nil {
			var zero C
			return zero, err
		}
		return g(y)
	}
}

// ============================================================================
// Predicates
// ============================================================================

// PredicateFunc reports whether an element should be kept.
// A non-nil error aborts the Filter it is passed to.
type PredicateFunc[T any] func(T) (bool, error)

// Test calls f.
func (f PredicateFunc[T]) Test(x T) (bool, error) {
	return f(x)
}

// Empty returns the predicate that accepts everything (identity for And).
func (f PredicateFunc[T]) Empty() PredicateFunc[T] {
	return func(T) (bool, error) {
		return true, nil
	}
}

// Compose is And (Monoid operation).
func (f PredicateFunc[T]) Compose(other PredicateFunc[T]) PredicateFunc[T] {
	return f.And(other)
}

// And accepts x only if both predicates do. other is not called when f
// rejects x.
func (f PredicateFunc[T]) And(other PredicateFunc[T]) PredicateFunc[T] {
	return func(x T) (bool, error) {
		ok, err := f(x)
		if err != nil || !ok {
			return false, err
		}
		return other(x)
	}
}

// Or accepts x if either predicate does. other is not called when f
// accepts x.
func (f PredicateFunc[T]) Or(other PredicateFunc[T]) PredicateFunc[T] {
	return func(x T) (bool, error) {
		ok, err := f(x)
		if err != nil || ok {
			return ok, err
		}
		return other(x)
	}
}

// Not inverts f. Errors pass through unchanged.
func (f PredicateFunc[T]) Not() PredicateFunc[T] {
	return func(x T) (bool, error) {
		ok, err := f(x)
		if err != nil {
			return false, err
		}
		return !ok, nil
	}
}

// Pred adapts a predicate that cannot fail.
func Pred[T any](fn func(T) bool) PredicateFunc[T] {
	return func(x T) (bool, error) {
		return fn(x), nil
	}
}
