package script

import (
	"fmt"

	"github.com/comalice/tickseq"
)

// ParseFunc turns a scenario value into an element.
type ParseFunc[T any] func(string) (T, error)

// Build creates the scenario's sequence and applies every step to it.
func Build[T tickseq.Element[T]](s *Script, parse ParseFunc[T], opts ...tickseq.Option) (*tickseq.Sequence[T], error) {
	def, err := parse(s.Default)
	if err != nil {
		return nil, fmt.Errorf("default: %w", err)
	}
	seq := tickseq.New(s.Name, def, opts...)
	if err := Apply(s, seq, parse); err != nil {
		return nil, err
	}
	return seq, nil
}

// Apply runs the scenario's steps against seq in order. Values are parsed
// before a step runs, so a failing step leaves seq as the previous step
// left it.
func Apply[T tickseq.Element[T]](s *Script, seq *tickseq.Sequence[T], parse ParseFunc[T]) error {
	for i, st := range s.Steps {
		if err := applyStep(st, seq, parse); err != nil {
			return fmt.Errorf("step %d (%s): %w", i, st.Op, err)
		}
	}
	return nil
}

func applyStep[T tickseq.Element[T]](st Step, seq *tickseq.Sequence[T], parse ParseFunc[T]) error {
	if err := st.Validate(); err != nil {
		return err
	}

	var v T
	if st.Value != "" {
		var err error
		if v, err = parse(st.Value); err != nil {
			return err
		}
	}
	values := make([]T, 0, len(st.Values))
	for _, raw := range st.Values {
		pv, err := parse(raw)
		if err != nil {
			return err
		}
		values = append(values, pv)
	}

	switch st.Op {
	case OpAdd:
		seq.Add(v)
	case OpInsert:
		seq.Insert(*st.Tick, v)
	case OpInsertRange:
		seq.InsertRange(*st.Tick, *st.Until, v)
	case OpSet:
		seq.Set(*st.Tick, v)
	case OpSetRange:
		seq.SetRange(*st.Tick, *st.Until, v)
	case OpRemove:
		seq.Remove(*st.Tick)
	case OpRemoveRange:
		seq.RemoveRange(*st.Tick, *st.Until)
	case OpRemoveAll:
		if st.Value != "" {
			values = append(values, v)
		}
		seq.RemoveAllOf(values...)
	case OpRemovePattern:
		pattern := tickseq.New("pattern", seq.DefaultValue(), tickseq.WithSink(tickseq.NopSink{}))
		for _, pv := range values {
			pattern.Add(pv)
		}
		seq.RemovePattern(pattern)
	case OpClear:
		seq.Clear()
	case OpHold:
		lo := seq.Len()
		seq.SetRange(lo, lo+st.Count, v)
	case OpWait:
		def := seq.DefaultValue()
		for i := 0; i < st.Count; i++ {
			seq.Add(def.DeepCopy())
		}
	}
	return nil
}
