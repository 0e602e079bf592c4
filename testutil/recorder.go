// Package testutil provides helpers shared by the tickseq test suites:
// a recording diagnostic sink, a composite element with nested data, and
// shorthands for building move sequences.
package testutil

import (
	"errors"
	"sync"

	"github.com/comalice/tickseq"
)

// Recorder is a Sink that keeps every diagnostic it receives.
type Recorder struct {
	mu    sync.Mutex
	diags []tickseq.Diagnostic
}

// Compile-time safety: *Recorder implements tickseq.Sink.
var _ tickseq.Sink = (*Recorder)(nil)

func (r *Recorder) Report(d tickseq.Diagnostic) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.diags = append(r.diags, d)
}

// Diagnostics returns a copy of everything recorded so far.
func (r *Recorder) Diagnostics() []tickseq.Diagnostic {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]tickseq.Diagnostic, len(r.diags))
	copy(out, r.diags)
	return out
}

// Len returns the number of recorded diagnostics.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.diags)
}

// Ops returns the Op of every recorded diagnostic, in order.
func (r *Recorder) Ops() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	ops := make([]string, len(r.diags))
	for i, d := range r.diags {
		ops[i] = d.Op
	}
	return ops
}

// Matching counts diagnostics whose error matches target via errors.Is.
func (r *Recorder) Matching(target error) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, d := range r.diags {
		if errors.Is(d.Err, target) {
			n++
		}
	}
	return n
}

// Reset drops everything recorded so far.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.diags = nil
}
