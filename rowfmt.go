package rowfmt

import (
	"errors"
)

// Sentinel errors for programmatic error handling.
var (
	ErrNoDecision   = errors.New("no decision function")
	ErrNoRoute      = errors.New("no route for value")
	ErrUnknownField = errors.New("unknown field")
	ErrIndexRange   = errors.New("index out of range")
	ErrNoHeaders    = errors.New("no headers")
	ErrNotStruct    = errors.New("not a struct")
)

// Processor turns one record into a row of output values.
//
// headers are the column names in effect for this row and indexes are the
// positions of the selected columns; both may be nil. A nil row with a nil
// error means "emit nothing for this record" and is not a failure.
//
// Implementations must be comparable, because [Switch] detects processor
// changes with an identity comparison. Pointer implementations (everything
// this package produces) satisfy that naturally.
type Processor[T any] interface {
	Process(record T, headers []string, indexes []int) ([]any, error)
}

// ProcessorFunc adapts a function to [Processor]. The returned value is a
// pointer, so two adapters of the same function are distinct processors.
func ProcessorFunc[T any](fn func(record T, headers []string, indexes []int) ([]any, error)) Processor[T] {
	return &processorFunc[T]{fn: fn}
}

type processorFunc[T any] struct {
	fn func(T, []string, []int) ([]any, error)
}

func (p *processorFunc[T]) Process(record T, headers []string, indexes []int) ([]any, error) {
	return p.fn(record, headers, indexes)
}
