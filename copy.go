package tickseq

import "fmt"

// Subsequence returns an independent deep copy of [lo, until), clamped to
// the occupied range. Clamping reports a diagnostic. The copy is named
// "<name>_[lo,until)" after clamping and shares the receiver's sink.
func (s *Sequence[T]) Subsequence(lo, until int) *Sequence[T] {
	s.lock()
	defer s.unlock()
	if lo < 0 || until > len(s.terms) {
		s.diagnose("Sequence.Subsequence", lo, until, ErrRangeOutOfBounds)
		lo = max(lo, 0)
		until = min(until, len(s.terms))
	}
	lo = min(lo, len(s.terms))
	until = max(until, lo)

	sub := s.derive(fmt.Sprintf("%s_[%d,%d)", s.name, lo, until), s.def.DeepCopy(), until-lo)
	for _, v := range s.terms[lo:until] {
		sub.terms = append(sub.terms, v.DeepCopy())
	}
	return sub
}

// Copy returns a sequence named name holding shallow copies of every
// element and of the default value.
func (s *Sequence[T]) Copy(name string) *Sequence[T] {
	s.lock()
	defer s.unlock()
	cp := s.derive(name, s.def.ShallowCopy(), len(s.terms))
	for _, v := range s.terms {
		cp.terms = append(cp.terms, v.ShallowCopy())
	}
	return cp
}

// DeepCopy returns a sequence named name that shares nothing with the
// receiver.
func (s *Sequence[T]) DeepCopy(name string) *Sequence[T] {
	s.lock()
	defer s.unlock()
	cp := s.derive(name, s.def.DeepCopy(), len(s.terms))
	for _, v := range s.terms {
		cp.terms = append(cp.terms, v.DeepCopy())
	}
	return cp
}

// derive builds an empty sequence with the receiver's sink. Caller holds mu.
func (s *Sequence[T]) derive(name string, def T, capacity int) *Sequence[T] {
	return &Sequence[T]{
		terms: make([]T, 0, capacity),
		name:  name,
		def:   def,
		sink:  s.sink,
	}
}
