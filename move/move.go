// Package move provides the catalog of movement states played back one per
// tick, and the key-state Input each of them stands for.
package move

import (
	"errors"
	"fmt"
	"strings"

	"github.com/comalice/tickseq"
)

// Move is an enumeration-style element: a fixed movement state.
type Move int

const (
	Forward Move = iota
	ForwardLeft
	ForwardRight
	Backward
	BackwardLeft
	BackwardRight
	Left
	Right
	Sprint
	Crouch
	StandTall
	Jump
	JumpForward
	JumpForwardLeft
	JumpForwardRight
	JumpBackward
	JumpBackwardLeft
	JumpBackwardRight
	JumpLeft
	JumpRight

	numMoves
)

// ErrUnknownMove is returned by Parse for names outside the catalog.
var ErrUnknownMove = errors.New("move: unknown move")

var names = [numMoves]string{
	Forward:           "FORWARD",
	ForwardLeft:       "FORWARD_LEFT",
	ForwardRight:      "FORWARD_RIGHT",
	Backward:          "BACKWARD",
	BackwardLeft:      "BACKWARD_LEFT",
	BackwardRight:     "BACKWARD_RIGHT",
	Left:              "LEFT",
	Right:             "RIGHT",
	Sprint:            "SPRINT",
	Crouch:            "CROUCH",
	StandTall:         "STAND_TALL",
	Jump:              "JUMP",
	JumpForward:       "JUMP_FORWARD",
	JumpForwardLeft:   "JUMP_FORWARD_LEFT",
	JumpForwardRight:  "JUMP_FORWARD_RIGHT",
	JumpBackward:      "JUMP_BACKWARD",
	JumpBackwardLeft:  "JUMP_BACKWARD_LEFT",
	JumpBackwardRight: "JUMP_BACKWARD_RIGHT",
	JumpLeft:          "JUMP_LEFT",
	JumpRight:         "JUMP_RIGHT",
}

var inputs = [numMoves]Input{
	Forward:           {Forward: true},
	ForwardLeft:       {Forward: true, Left: true},
	ForwardRight:      {Forward: true, Right: true},
	Backward:          {Backward: true},
	BackwardLeft:      {Backward: true, Left: true},
	BackwardRight:     {Backward: true, Right: true},
	Left:              {Left: true},
	Right:             {Right: true},
	Sprint:            {Forward: true, Sprint: true},
	Crouch:            {Sneak: true},
	StandTall:         {},
	Jump:              {Jump: true},
	JumpForward:       {Forward: true, Jump: true},
	JumpForwardLeft:   {Forward: true, Left: true, Jump: true},
	JumpForwardRight:  {Forward: true, Right: true, Jump: true},
	JumpBackward:      {Backward: true, Jump: true},
	JumpBackwardLeft:  {Backward: true, Left: true, Jump: true},
	JumpBackwardRight: {Backward: true, Right: true, Jump: true},
	JumpLeft:          {Left: true, Jump: true},
	JumpRight:         {Right: true, Jump: true},
}

var byName = func() map[string]Move {
	m := make(map[string]Move, numMoves)
	for i, n := range names {
		m[n] = Move(i)
	}
	return m
}()

// Compile-time safety: Move satisfies the element contract.
var _ tickseq.Element[Move] = Move(0)

// All returns every move in declaration order.
func All() []Move {
	out := make([]Move, numMoves)
	for i := range out {
		out[i] = Move(i)
	}
	return out
}

// Parse looks a move up by its catalog name, case-insensitively.
func Parse(name string) (Move, error) {
	m, ok := byName[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownMove, name)
	}
	return m, nil
}

// FromInput returns the move whose key state equals in.
func FromInput(in Input) (Move, bool) {
	for i, v := range inputs {
		if v == in {
			return Move(i), true
		}
	}
	return 0, false
}

// Valid reports whether m is part of the catalog.
func (m Move) Valid() bool {
	return m >= 0 && m < numMoves
}

// Input returns the key state m stands for.
func (m Move) Input() Input {
	if !m.Valid() {
		return Input{}
	}
	return inputs[m]
}

func (m Move) CopyPolicy() tickseq.CopyPolicy { return tickseq.Shared }

func (m Move) ShallowCopy() Move { return m }

func (m Move) DeepCopy() Move { return m }

func (m Move) Equal(other Move) bool { return m == other }

func (m Move) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Move(%d)", int(m))
	}
	return names[m]
}

// NewSequence creates an empty move sequence filled with def on gaps.
func NewSequence(name string, def Move, opts ...tickseq.Option) *tickseq.Sequence[Move] {
	return tickseq.New(name, def, opts...)
}
