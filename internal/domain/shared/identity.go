package shared

import "sync/atomic"

// DefaultSequenceStart is the first identifier issued by a fresh sequence.
const DefaultSequenceStart int64 = 1000

// Sequence issues process-unique, monotonically increasing entity identifiers.
// It is the only process-wide mutable state shared across aggregates, so
// allocation is atomic even though the rest of the core is single-threaded.
// Sequences are injected into entity constructors; there is no package-level
// instance.
type Sequence struct {
	counter atomic.Int64
}

// NewSequence creates a sequence whose first issued identifier is start.
func NewSequence(start int64) *Sequence {
	s := &Sequence{}
	s.counter.Store(start - 1)
	return s
}

// NewDefaultSequence creates a sequence starting at DefaultSequenceStart.
func NewDefaultSequence() *Sequence {
	return NewSequence(DefaultSequenceStart)
}

// Next returns the next identifier. Every call returns a distinct value.
func (s *Sequence) Next() int64 {
	return s.counter.Add(1)
}

// Current returns the most recently issued identifier without consuming one.
func (s *Sequence) Current() int64 {
	return s.counter.Load()
}
