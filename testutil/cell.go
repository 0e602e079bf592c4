package testutil

import (
	"slices"
	"strings"

	"github.com/comalice/tickseq"
)

// Cell is a composite element with nested owned data. ShallowCopy shares
// Tags with the original, DeepCopy does not.
type Cell struct {
	Label string
	Tags  []string
}

// NewCell returns a Cell with the given label and tags.
func NewCell(label string, tags ...string) *Cell {
	return &Cell{Label: label, Tags: tags}
}

var _ tickseq.Element[*Cell] = (*Cell)(nil)

func (c *Cell) CopyPolicy() tickseq.CopyPolicy { return tickseq.Owned }

func (c *Cell) ShallowCopy() *Cell {
	cp := *c
	return &cp
}

func (c *Cell) DeepCopy() *Cell {
	return &Cell{Label: c.Label, Tags: slices.Clone(c.Tags)}
}

func (c *Cell) Equal(other *Cell) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.Label == other.Label && slices.Equal(c.Tags, other.Tags)
}

func (c *Cell) String() string {
	if len(c.Tags) == 0 {
		return c.Label
	}
	return c.Label + "[" + strings.Join(c.Tags, ",") + "]"
}
