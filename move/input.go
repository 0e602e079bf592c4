package move

import (
	"strings"

	"github.com/comalice/tickseq"
)

// Input is the set of movement keys held during one tick.
type Input struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
	Jump     bool
	Sneak    bool
	Sprint   bool
}

// Compile-time safety: *Input is a composite element.
var _ tickseq.Element[*Input] = (*Input)(nil)

func (in *Input) CopyPolicy() tickseq.CopyPolicy { return tickseq.Owned }

// ShallowCopy returns a new Input with the same key state. Input has no
// nested data, so it is also a deep copy.
func (in *Input) ShallowCopy() *Input {
	if in == nil {
		return nil
	}
	cp := *in
	return &cp
}

func (in *Input) DeepCopy() *Input {
	return in.ShallowCopy()
}

func (in *Input) Equal(other *Input) bool {
	if in == nil || other == nil {
		return in == other
	}
	return *in == *other
}

// Move returns the catalog move with this key state, if any.
func (in *Input) Move() (Move, bool) {
	if in == nil {
		return 0, false
	}
	return FromInput(*in)
}

// String renders the held keys joined by "+", or "NONE".
func (in *Input) String() string {
	if in == nil {
		return "<nil>"
	}
	var keys []string
	for _, k := range []struct {
		on   bool
		name string
	}{
		{in.Forward, "forward"},
		{in.Backward, "backward"},
		{in.Left, "left"},
		{in.Right, "right"},
		{in.Jump, "jump"},
		{in.Sneak, "sneak"},
		{in.Sprint, "sprint"},
	} {
		if k.on {
			keys = append(keys, k.name)
		}
	}
	if len(keys) == 0 {
		return "NONE"
	}
	return strings.Join(keys, "+")
}

// Inputs converts a move sequence into an input sequence. The result is
// independent of moves; its default is the default move's key state.
func Inputs(moves *tickseq.Sequence[Move], opts ...tickseq.Option) *tickseq.Sequence[*Input] {
	def := moves.DefaultValue().Input()
	opts = append([]tickseq.Option{tickseq.WithCapacity(moves.Len())}, opts...)
	out := tickseq.New(moves.Name(), &def, opts...)
	for _, m := range moves.Terms() {
		in := m.Input()
		out.Add(&in)
	}
	return out
}
