package testutil

import (
	"github.com/comalice/tickseq"
	"github.com/comalice/tickseq/move"
)

// Moves builds a move sequence named "test" from catalog names, with
// STAND_TALL as its default and diagnostics going to sink.
// It panics on unknown names.
func Moves(sink tickseq.Sink, names ...string) *tickseq.Sequence[move.Move] {
	seq := move.NewSequence("test", move.StandTall, tickseq.WithSink(sink))
	for _, n := range names {
		m, err := move.Parse(n)
		if err != nil {
			panic(err)
		}
		seq.Add(m)
	}
	return seq
}

// Dense reports whether every tick in [0, Tick()] is reachable through
// AsMap and the tick count agrees with Len.
func Dense[T tickseq.Element[T]](seq *tickseq.Sequence[T]) bool {
	m := seq.AsMap()
	if len(m) != seq.Len() || seq.Tick() != seq.Len()-1 {
		return false
	}
	for i := 0; i < len(m); i++ {
		if _, ok := m[i]; !ok {
			return false
		}
	}
	return true
}
