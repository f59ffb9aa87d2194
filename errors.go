package foldcore

import (
	"errors"
	"fmt"
)

// ErrNilFunc is returned when a required function argument is nil.
var ErrNilFunc = errors.New("foldcore: nil function")

// ElementError reports a transformation function failure for one element.
// The fold that produced it returned no partial result.
//
// Example:
//
//	_, err := foldcore.MapSlice(xs, parse)
//	var ee *foldcore.ElementError
//	if errors.As(err, &ee) {
//	    log.Printf("element %d: %v", ee.Index, ee.Err)
//	}
type ElementError struct {
	Index int
	Err   error
}

func (e *ElementError) Error() string {
	return fmt.Sprintf("foldcore: element %d: %v", e.Index, e.Err)
}

// Unwrap returns the underlying mapper or predicate error.
func (e *ElementError) Unwrap() error {
	return e.Err
}

// PanicError is a panic recovered inside a parallel chunk fold.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("foldcore: chunk panic: %v\nstack trace:\n%s", e.Value, e.Stack)
}

