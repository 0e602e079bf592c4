// Package benchmarks provides shared helpers for benchmark tests.
package benchmarks

import (
	"fmt"
	"math/rand/v2"

	"gopkg.in/yaml.v3"

	"github.com/comalice/tickseq"
	"github.com/comalice/tickseq/internal/script"
	"github.com/comalice/tickseq/move"
)

// quiet keeps diagnostics out of benchmark output.
var quiet = tickseq.WithSink(tickseq.NopSink{})

// GenMoves creates a sequence of n pseudo-random moves. The same seed
// always yields the same sequence.
func GenMoves(n int, seed uint64) *tickseq.Sequence[move.Move] {
	if n < 0 {
		n = 0
	}
	all := move.All()
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	seq := move.NewSequence(fmt.Sprintf("gen_%d", n), move.StandTall, quiet, tickseq.WithCapacity(n))
	for i := 0; i < n; i++ {
		seq.Add(all[r.IntN(len(all))])
	}
	return seq
}

// GenPeriodic creates n ticks cycling through phrase, so RemovePattern on
// phrase has a match at every period.
func GenPeriodic(n int, phrase ...move.Move) *tickseq.Sequence[move.Move] {
	seq := move.NewSequence(fmt.Sprintf("periodic_%d", n), move.StandTall, quiet, tickseq.WithCapacity(n))
	for i := 0; i < n && len(phrase) > 0; i++ {
		seq.Add(phrase[i%len(phrase)])
	}
	return seq
}

// Phrase builds a short pattern sequence.
func Phrase(moves ...move.Move) *tickseq.Sequence[move.Move] {
	seq := move.NewSequence("phrase", move.StandTall, quiet)
	for _, m := range moves {
		seq.Add(m)
	}
	return seq
}

// GenScriptYAML generates a scenario document with n steps mixing appends,
// holds and in-place edits.
func GenScriptYAML(n int) []byte {
	s := script.Script{Name: fmt.Sprintf("script_%d", n), Default: "STAND_TALL"}
	all := move.All()
	for i := 0; i < n; i++ {
		v := all[i%len(all)].String()
		tick := i / 2
		switch i % 4 {
		case 0:
			s.Steps = append(s.Steps, script.Step{Op: script.OpAdd, Value: v})
		case 1:
			s.Steps = append(s.Steps, script.Step{Op: script.OpHold, Value: v, Count: 3})
		case 2:
			s.Steps = append(s.Steps, script.Step{Op: script.OpSet, Tick: &tick, Value: v})
		case 3:
			s.Steps = append(s.Steps, script.Step{Op: script.OpInsert, Tick: &tick, Value: v})
		}
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		panic(err)
	}
	return data
}
