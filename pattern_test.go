package tickseq_test

import (
	"slices"
	"testing"

	. "github.com/comalice/tickseq"
	"github.com/comalice/tickseq/move"
	"github.com/comalice/tickseq/testutil"
)

// A=FORWARD, B=BACKWARD, C=JUMP
func TestRemovePatternEveryOccurrence(t *testing.T) {
	seq := testutil.Moves(NopSink{}, "FORWARD", "BACKWARD", "JUMP", "FORWARD", "BACKWARD", "JUMP")
	pattern := testutil.Moves(NopSink{}, "BACKWARD", "JUMP")

	seq.RemovePattern(pattern)

	want := []move.Move{move.Forward, move.Forward}
	if got := seq.Terms(); !slices.Equal(got, want) {
		t.Errorf("terms = %v, want %v", got, want)
	}
	if pattern.Len() != 2 {
		t.Error("the pattern itself must not change")
	}
}

func TestRemovePatternSingleOccurrence(t *testing.T) {
	names := []string{"LEFT", "RIGHT", "JUMP", "CROUCH", "SPRINT", "FORWARD"}
	patternNames := []string{"JUMP", "CROUCH", "SPRINT"}
	const k = 2

	seq := testutil.Moves(NopSink{}, names...)
	seq.RemovePattern(testutil.Moves(NopSink{}, patternNames...))

	want := testutil.Moves(NopSink{}, names...)
	want.RemoveRange(k, k+len(patternNames))
	if !seq.Equal(want) {
		t.Errorf("got %q, want %q", seq.String(), want.String())
	}
}

func TestRemovePatternNoops(t *testing.T) {
	tests := []struct {
		name    string
		pattern *Sequence[move.Move]
	}{
		{"empty pattern", testutil.Moves(NopSink{})},
		{"longer pattern", testutil.Moves(NopSink{}, "FORWARD", "JUMP", "FORWARD", "JUMP")},
		{"absent pattern", testutil.Moves(NopSink{}, "CROUCH")},
		{"nil pattern", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &testutil.Recorder{}
			seq := testutil.Moves(rec, "FORWARD", "JUMP", "FORWARD")
			seq.RemovePattern(tt.pattern)
			if seq.Len() != 3 {
				t.Errorf("Len() = %d, want 3", seq.Len())
			}
			if rec.Len() != 0 {
				t.Errorf("unexpected diagnostics %v", rec.Ops())
			}
		})
	}
}

// After removing a match the scan stays at the same tick, so a run that
// only appears once the tail shifts left is removed too.
func TestRemovePatternRestartsAtSameTick(t *testing.T) {
	seq := testutil.Moves(NopSink{}, "FORWARD", "BACKWARD", "JUMP", "BACKWARD", "JUMP")
	seq.RemovePattern(testutil.Moves(NopSink{}, "BACKWARD", "JUMP"))

	want := []move.Move{move.Forward}
	if got := seq.Terms(); !slices.Equal(got, want) {
		t.Errorf("terms = %v, want %v", got, want)
	}
}

func TestRemovePatternSelf(t *testing.T) {
	seq := testutil.Moves(NopSink{}, "FORWARD", "JUMP")
	seq.RemovePattern(seq)
	if seq.Tick() != -1 {
		t.Errorf("Tick() = %d, want -1", seq.Tick())
	}
}

func TestRemovePatternComposite(t *testing.T) {
	seq := New("cells", testutil.NewCell("pad"), WithSink(NopSink{}))
	seq.Add(testutil.NewCell("a", "x")).
		Add(testutil.NewCell("b")).
		Add(testutil.NewCell("a")).
		Add(testutil.NewCell("b"))

	pattern := New("p", testutil.NewCell("pad"), WithSink(NopSink{}))
	pattern.Add(testutil.NewCell("a")).Add(testutil.NewCell("b"))

	seq.RemovePattern(pattern)

	if seq.Len() != 2 || seq.At(0).String() != "a[x]" || seq.At(1).Label != "b" {
		t.Errorf("got %q, want a[x], b", seq.String())
	}
}

func TestIndex(t *testing.T) {
	seq := testutil.Moves(NopSink{}, "FORWARD", "JUMP", "LEFT", "FORWARD", "JUMP")
	pattern := testutil.Moves(NopSink{}, "FORWARD", "JUMP")

	if got := seq.Index(pattern, 0); got != 0 {
		t.Errorf("Index(from 0) = %d, want 0", got)
	}
	if got := seq.Index(pattern, 1); got != 3 {
		t.Errorf("Index(from 1) = %d, want 3", got)
	}
	if got := seq.Index(pattern, 4); got != -1 {
		t.Errorf("Index(from 4) = %d, want -1", got)
	}
	if got := seq.Index(testutil.Moves(NopSink{}), 0); got != -1 {
		t.Errorf("Index(empty) = %d, want -1", got)
	}
}
