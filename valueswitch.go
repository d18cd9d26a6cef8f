package rowfmt

import (
	"fmt"
)

// ValueSwitch routes records to processors keyed by a discriminant value
// extracted from each record, e.g. a record-type column. It implements
// [Processor] and carries the same single-selected-processor state as
// [Switch], so it drops straight into a [Writer].
//
// Key values must be comparable; they are used as map keys.
type ValueSwitch[T any] struct {
	sw     Switch[T]
	key    func(T) any
	routes map[any]*Route[T]
	def    *Route[T]
	active *Route[T]
}

// Route binds a discriminant value to a processor, optionally with its own
// headers and column selection.
type Route[T any] struct {
	proc    Processor[T]
	headers []string
	indexes []int
}

// WithHeaders sets the header names used while this route's processor is
// selected, overriding the writer's defaults.
func (r *Route[T]) WithHeaders(headers ...string) *Route[T] {
	r.headers = headers
	return r
}

// WithIndexes sets the selected-column positions used while this route's
// processor is selected, overriding the writer's defaults.
func (r *Route[T]) WithIndexes(indexes ...int) *Route[T] {
	r.indexes = indexes
	return r
}

// NewValueSwitch returns a ValueSwitch that extracts the routing key from
// each record with key.
func NewValueSwitch[T any](key func(record T) any) *ValueSwitch[T] {
	s := &ValueSwitch[T]{
		key:    key,
		routes: make(map[any]*Route[T]),
	}
	s.sw.Decide = s.decide
	s.sw.Headers = s.routeHeaders
	s.sw.Indexes = s.routeIndexes
	return s
}

// Route registers p for records whose key equals value. Registering the same
// value again replaces the earlier route.
func (s *ValueSwitch[T]) Route(value any, p Processor[T]) *Route[T] {
	r := &Route[T]{proc: p}
	s.routes[value] = r
	return r
}

// Default registers the route used when no registered value matches. Without
// a default, unmatched records fail with [ErrNoRoute]. A default whose
// processor returns a nil row turns unmatched records into silent skips.
func (s *ValueSwitch[T]) Default(p Processor[T]) *Route[T] {
	s.def = &Route[T]{proc: p}
	return s.def
}

// OnSwitch sets the hook called when the routed processor changes. prev is
// nil on the first routed record.
func (s *ValueSwitch[T]) OnSwitch(fn func(prev, next Processor[T])) {
	s.sw.OnSwitch = fn
}

// Process routes record to the processor registered for its key and
// delegates, applying the route's header and index overrides if set.
func (s *ValueSwitch[T]) Process(record T, headers []string, indexes []int) ([]any, error) {
	return s.sw.Process(record, headers, indexes)
}

func (s *ValueSwitch[T]) decide(record T) (Processor[T], error) {
	if s.key == nil {
		return nil, ErrNoDecision
	}
	k := s.key(record)
	r, ok := s.routes[k]
	if !ok {
		r = s.def
	}
	if r == nil {
		return nil, fmt.Errorf("%w: %v", ErrNoRoute, k)
	}
	s.active = r
	return r.proc, nil
}

func (s *ValueSwitch[T]) routeHeaders() []string {
	if s.active == nil {
		return nil
	}
	return s.active.headers
}

func (s *ValueSwitch[T]) routeIndexes() []int {
	if s.active == nil {
		return nil
	}
	return s.active.indexes
}
