package tickseq

import (
	"iter"
	"slices"
	"strconv"
	"strings"
	"sync"
)

// Sequence is a dense, tick-indexed timeline of elements.
//
// Every index in [0, Tick()] holds an element after any public call.
// All methods are safe for concurrent use; each call runs under a single
// per-instance mutex. Mutating methods return the receiver for chaining.
//
// Elements added by value (Add, Insert, Append, Set...) are stored by
// reference: later mutation of an Owned element by the caller is visible
// through the sequence. Use AppendCopy, Subsequence or DeepCopy to sever
// that sharing.
//
// The zero value is an empty, unnamed sequence with a zero default that
// drops its diagnostics.
type Sequence[T Element[T]] struct {
	mu    sync.Mutex
	terms []T
	name  string
	def   T
	sink  Sink

	// diagnostics collected under mu, delivered once mu is released
	pending []Diagnostic
}

// New creates an empty sequence (Tick() == -1) named name whose gaps are
// filled with def. def is stored as given; use SetDefaultValue to store
// an owned copy.
func New[T Element[T]](name string, def T, opts ...Option) *Sequence[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Sequence[T]{
		terms: make([]T, 0, o.capacity),
		name:  name,
		def:   def,
		sink:  o.sink,
	}
}

func (s *Sequence[T]) lock() {
	s.mu.Lock()
}

// unlock releases mu and then hands pending diagnostics to the sink, so a
// sink is free to call back into the sequence.
func (s *Sequence[T]) unlock() {
	pending := s.pending
	s.pending = nil
	sink := s.sink
	s.mu.Unlock()
	if sink == nil {
		return
	}
	for _, d := range pending {
		sink.Report(d)
	}
}

func (s *Sequence[T]) diagnose(op string, tick, until int, err error) {
	s.pending = append(s.pending, Diagnostic{
		Op:       op,
		Sequence: s.name,
		Tick:     tick,
		Until:    until,
		LastTick: len(s.terms) - 1,
		Err:      err,
	})
}

func (s *Sequence[T]) has(tick int) bool {
	return tick >= 0 && tick < len(s.terms)
}

// fill back-fills the sequence with copies of the default up to length n.
func (s *Sequence[T]) fill(n int) {
	for len(s.terms) < n {
		s.terms = append(s.terms, s.def.DeepCopy())
	}
}

// snapshot returns the current terms by reference.
func (s *Sequence[T]) snapshot() []T {
	s.lock()
	defer s.unlock()
	return slices.Clone(s.terms)
}

// Tick returns the highest occupied tick, or -1 if the sequence is empty.
func (s *Sequence[T]) Tick() int {
	s.lock()
	defer s.unlock()
	return len(s.terms) - 1
}

// Len returns the number of terms, Tick()+1.
func (s *Sequence[T]) Len() int {
	s.lock()
	defer s.unlock()
	return len(s.terms)
}

// At returns the element stored at tick. Out-of-range ticks report a
// diagnostic and return the default value.
func (s *Sequence[T]) At(tick int) T {
	s.lock()
	defer s.unlock()
	if !s.has(tick) {
		s.diagnose("Sequence.At", tick, -1, ErrTickOutOfRange)
		return s.def
	}
	return s.terms[tick]
}

func (s *Sequence[T]) Name() string {
	s.lock()
	defer s.unlock()
	return s.name
}

func (s *Sequence[T]) SetName(name string) *Sequence[T] {
	s.lock()
	defer s.unlock()
	s.name = name
	return s
}

// DefaultValue returns the value used to fill gaps.
func (s *Sequence[T]) DefaultValue() T {
	s.lock()
	defer s.unlock()
	return s.def
}

// SetDefaultValue stores a deep copy of v as the gap-fill value.
func (s *Sequence[T]) SetDefaultValue(v T) *Sequence[T] {
	cp := v.DeepCopy()
	s.lock()
	defer s.unlock()
	s.def = cp
	return s
}

// SetSink replaces the diagnostic sink. A nil sink silences diagnostics.
func (s *Sequence[T]) SetSink(sink Sink) *Sequence[T] {
	if sink == nil {
		sink = NopSink{}
	}
	s.lock()
	defer s.unlock()
	s.sink = sink
	return s
}

// Add appends v at Tick()+1.
func (s *Sequence[T]) Add(v T) *Sequence[T] {
	s.lock()
	defer s.unlock()
	s.terms = append(s.terms, v)
	return s
}

// Insert places v at tick, shifting elements at tick and beyond one to the
// right. A tick past the end first back-fills [Len(), tick) with the default
// and reports a diagnostic; a negative tick is treated as 0.
func (s *Sequence[T]) Insert(tick int, v T) *Sequence[T] {
	s.lock()
	defer s.unlock()
	if tick < 0 {
		s.diagnose("Sequence.Insert", tick, -1, ErrTickOutOfRange)
		tick = 0
	}
	if tick > len(s.terms) {
		s.diagnose("Sequence.Insert", tick, -1, ErrTickOutOfRange)
		s.fill(tick)
	}
	s.terms = slices.Insert(s.terms, tick, v)
	return s
}

// Append adds every element of other, in tick order, by reference.
// Appending a sequence to itself doubles it.
func (s *Sequence[T]) Append(other *Sequence[T]) *Sequence[T] {
	if other == nil {
		return s
	}
	terms := other.snapshot()
	s.lock()
	defer s.unlock()
	s.terms = append(s.terms, terms...)
	return s
}

// AppendCopy adds a deep copy of every element of other, in tick order.
func (s *Sequence[T]) AppendCopy(other *Sequence[T]) *Sequence[T] {
	if other == nil {
		return s
	}
	terms := other.snapshot()
	for i, v := range terms {
		terms[i] = v.DeepCopy()
	}
	s.lock()
	defer s.unlock()
	s.terms = append(s.terms, terms...)
	return s
}

// InsertRange inserts v at every tick in [lo, until), shifting existing
// occupants right. A lo past the end back-fills [Len(), lo) with the
// default and reports a diagnostic.
func (s *Sequence[T]) InsertRange(lo, until int, v T) *Sequence[T] {
	s.lock()
	defer s.unlock()
	if lo < 0 {
		s.diagnose("Sequence.InsertRange", lo, until, ErrRangeOutOfBounds)
		lo = 0
	}
	if lo > len(s.terms) {
		s.diagnose("Sequence.InsertRange", lo, until, ErrTickOutOfRange)
		s.fill(lo)
	}
	if until <= lo {
		return s
	}
	run := make([]T, until-lo)
	for i := range run {
		run[i] = v
	}
	s.terms = slices.Insert(s.terms, lo, run...)
	return s
}

// Set overwrites the element at tick. Writing past the end extends the
// sequence, back-filling the gap with the default. Negative ticks report a
// diagnostic and change nothing.
func (s *Sequence[T]) Set(tick int, v T) *Sequence[T] {
	s.lock()
	defer s.unlock()
	if tick < 0 {
		s.diagnose("Sequence.Set", tick, -1, ErrTickOutOfRange)
		return s
	}
	if tick >= len(s.terms) {
		s.fill(tick)
		s.terms = append(s.terms, v)
		return s
	}
	s.terms[tick] = v
	return s
}

// SetRange overwrites every tick in [max(lo, 0), until) with v, creating
// missing ticks. Existing elements are never shifted.
func (s *Sequence[T]) SetRange(lo, until int, v T) *Sequence[T] {
	s.lock()
	defer s.unlock()
	lo = max(lo, 0)
	if until <= lo {
		return s
	}
	s.fill(lo)
	for i := lo; i < until; i++ {
		if i < len(s.terms) {
			s.terms[i] = v
		} else {
			s.terms = append(s.terms, v)
		}
	}
	return s
}

// Remove deletes the element at tick, shifting later elements left.
// An unoccupied tick reports a diagnostic and changes nothing.
func (s *Sequence[T]) Remove(tick int) *Sequence[T] {
	s.lock()
	defer s.unlock()
	if !s.has(tick) {
		s.diagnose("Sequence.Remove", tick, -1, ErrTickOutOfRange)
		return s
	}
	s.terms = slices.Delete(s.terms, tick, tick+1)
	return s
}

// RemoveRange deletes [lo, until) after clamping it to the occupied range.
// Clamping reports a diagnostic.
func (s *Sequence[T]) RemoveRange(lo, until int) *Sequence[T] {
	s.lock()
	defer s.unlock()
	s.removeRange("Sequence.RemoveRange", lo, until)
	return s
}

func (s *Sequence[T]) removeRange(op string, lo, until int) {
	if lo < 0 || until > len(s.terms) {
		s.diagnose(op, lo, until, ErrRangeOutOfBounds)
		lo = max(lo, 0)
		until = min(until, len(s.terms))
	}
	if lo >= until {
		return
	}
	s.terms = slices.Delete(s.terms, lo, until)
}

// RemoveAll deletes every element equal to v, preserving the order of the
// rest.
func (s *Sequence[T]) RemoveAll(v T) *Sequence[T] {
	s.lock()
	defer s.unlock()
	s.terms = slices.DeleteFunc(s.terms, func(e T) bool {
		return e.Equal(v)
	})
	return s
}

// RemoveAllOf deletes every element equal to any of values.
func (s *Sequence[T]) RemoveAllOf(values ...T) *Sequence[T] {
	if len(values) == 0 {
		return s
	}
	s.lock()
	defer s.unlock()
	s.terms = slices.DeleteFunc(s.terms, func(e T) bool {
		for _, v := range values {
			if e.Equal(v) {
				return true
			}
		}
		return false
	})
	return s
}

// Clear empties the sequence.
func (s *Sequence[T]) Clear() *Sequence[T] {
	s.lock()
	defer s.unlock()
	clear(s.terms)
	s.terms = s.terms[:0]
	return s
}

// Terms returns the elements in tick order. The slice is new, the elements
// are references.
func (s *Sequence[T]) Terms() []T {
	return s.snapshot()
}

// All iterates tick/element pairs over a snapshot taken when iteration
// starts, so the loop body may mutate the sequence.
func (s *Sequence[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range s.snapshot() {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Equal reports whether both sequences hold equal elements at every tick.
// Names and default values are ignored.
func (s *Sequence[T]) Equal(other *Sequence[T]) bool {
	if other == nil {
		return false
	}
	if other == s {
		return true
	}
	theirs := other.snapshot()
	s.lock()
	defer s.unlock()
	return equalTerms(s.terms, theirs)
}

func equalTerms[T Element[T]](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// String renders one "tick=value" line per occupied tick.
func (s *Sequence[T]) String() string {
	s.lock()
	defer s.unlock()
	var b strings.Builder
	s.render(&b)
	return b.String()
}

func (s *Sequence[T]) render(b *strings.Builder) {
	for i, v := range s.terms {
		b.WriteString(strconv.Itoa(i))
		b.WriteByte('=')
		b.WriteString(v.String())
		b.WriteByte('\n')
	}
}

// AsSet returns the distinct elements, in order of first occurrence.
func (s *Sequence[T]) AsSet() []T {
	s.lock()
	defer s.unlock()
	var out []T
	for _, v := range s.terms {
		if !slices.ContainsFunc(out, v.Equal) {
			out = append(out, v)
		}
	}
	return out
}

// AsMap returns tick -> element for every occupied tick. Elements are
// references.
func (s *Sequence[T]) AsMap() map[int]T {
	s.lock()
	defer s.unlock()
	m := make(map[int]T, len(s.terms))
	for i, v := range s.terms {
		m[i] = v
	}
	return m
}
