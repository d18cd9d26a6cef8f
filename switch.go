package rowfmt

// Switch dispatches each record to a [Processor] chosen at runtime. On every
// call to Process it asks Decide which processor should format the record,
// fires OnSwitch when the choice differs from the previous one, resolves
// header and index overrides, and delegates.
//
// The zero value needs only Decide to be usable. A Switch holds the last
// selected processor across calls and mutates it without synchronization, so
// one instance serves one output stream; concurrent streams each need their
// own Switch.
type Switch[T any] struct {
	// Decide picks the processor for a record. Returning a nil processor
	// skips the record. An error aborts the call and propagates unchanged.
	Decide func(record T) (Processor[T], error)

	// OnSwitch is called when the decided processor differs from the
	// currently selected one, before the new processor handles its first
	// record. prev is nil on the first selection. Optional.
	OnSwitch func(prev, next Processor[T])

	// Headers supplies the header names for the selected processor. A nil
	// func or a nil result falls back to the caller-supplied headers.
	// Optional.
	Headers func() []string

	// Indexes supplies the selected-column positions for the selected
	// processor. Same fallback rule as Headers. Optional.
	Indexes func() []int

	current Processor[T]
}

// Process decides the processor for record and delegates formatting to it.
// A nil row with a nil error means the record produces no output. Decision
// and processor errors propagate unchanged.
func (s *Switch[T]) Process(record T, headers []string, indexes []int) ([]any, error) {
	if s.Decide == nil {
		return nil, ErrNoDecision
	}
	next, err := s.Decide(record)
	if err != nil {
		return nil, err
	}
	if next == nil {
		return nil, nil
	}
	if next != s.current {
		if s.OnSwitch != nil {
			s.OnSwitch(s.current, next)
		}
		s.current = next
	}
	if s.Headers != nil {
		if h := s.Headers(); h != nil {
			headers = h
		}
	}
	if s.Indexes != nil {
		if ix := s.Indexes(); ix != nil {
			indexes = ix
		}
	}
	return s.current.Process(record, headers, indexes)
}

// Current returns the processor selected by the most recent decision, or nil
// before the first one.
func (s *Switch[T]) Current() Processor[T] {
	return s.current
}
