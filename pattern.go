package tickseq

import "slices"

// RemovePattern removes every occurrence of pattern's terms as a contiguous
// run. After each removal the scan resumes at the tick where the removed
// run began, so a run that the left shift forms there is removed as well.
//
// An empty pattern, or one longer than the sequence, changes nothing.
// pattern is read before the receiver is locked; concurrent mutation of
// pattern during the call needs external synchronization.
func (s *Sequence[T]) RemovePattern(pattern *Sequence[T]) *Sequence[T] {
	if pattern == nil {
		return s
	}
	pat := pattern.snapshot()
	s.lock()
	defer s.unlock()
	n := len(pat)
	if n == 0 || n > len(s.terms) {
		return s
	}
	for i := 0; i+n <= len(s.terms); {
		if equalTerms(s.terms[i:i+n], pat) {
			s.terms = slices.Delete(s.terms, i, i+n)
			continue
		}
		i++
	}
	return s
}

// Index returns the first tick at or after from where pattern occurs as a
// contiguous run, or -1.
func (s *Sequence[T]) Index(pattern *Sequence[T], from int) int {
	if pattern == nil {
		return -1
	}
	pat := pattern.snapshot()
	s.lock()
	defer s.unlock()
	n := len(pat)
	if n == 0 {
		return -1
	}
	for i := max(from, 0); i+n <= len(s.terms); i++ {
		if equalTerms(s.terms[i:i+n], pat) {
			return i
		}
	}
	return -1
}
