// Package builder provides a fluent API for composing tick sequences out of
// held values, waits and repeated phrases.
package builder

import (
	"errors"
	"fmt"

	"github.com/comalice/tickseq"
)

var (
	ErrNegativeCount = errors.New("builder: negative tick count")
	ErrDuplicateMark = errors.New("builder: duplicate mark")
)

// Builder appends to a sequence in tick order. Misuse is collected and
// returned by Build rather than failing the chain.
type Builder[T tickseq.Element[T]] struct {
	seq   *tickseq.Sequence[T]
	marks map[string]int // name -> tick the mark points at
	errs  []error
}

// New creates a builder for a sequence named name with gap value def.
func New[T tickseq.Element[T]](name string, def T, opts ...tickseq.Option) *Builder[T] {
	return &Builder[T]{
		seq:   tickseq.New(name, def, opts...),
		marks: make(map[string]int),
	}
}

// Then appends v for one tick.
func (b *Builder[T]) Then(v T) *Builder[T] {
	b.seq.Add(v)
	return b
}

// Hold appends v for n ticks.
func (b *Builder[T]) Hold(v T, n int) *Builder[T] {
	if n < 0 {
		b.errs = append(b.errs, fmt.Errorf("hold %v: %w (%d)", v, ErrNegativeCount, n))
		return b
	}
	end := b.seq.Len() + n
	b.seq.SetRange(b.seq.Len(), end, v)
	return b
}

// Wait appends n ticks of the default value.
func (b *Builder[T]) Wait(n int) *Builder[T] {
	if n < 0 {
		b.errs = append(b.errs, fmt.Errorf("wait: %w (%d)", ErrNegativeCount, n))
		return b
	}
	if n == 0 {
		return b
	}
	def := b.seq.DefaultValue()
	for i := 0; i < n; i++ {
		b.seq.Add(def.DeepCopy())
	}
	return b
}

// At overwrites tick with v, extending the sequence when needed.
func (b *Builder[T]) At(tick int, v T) *Builder[T] {
	b.seq.Set(tick, v)
	return b
}

// Repeat appends a deep copy of phrase times times.
func (b *Builder[T]) Repeat(phrase *tickseq.Sequence[T], times int) *Builder[T] {
	if times < 0 {
		name := "<nil>"
		if phrase != nil {
			name = phrase.Name()
		}
		b.errs = append(b.errs, fmt.Errorf("repeat %s: %w (%d)", name, ErrNegativeCount, times))
		return b
	}
	for i := 0; i < times; i++ {
		b.seq.AppendCopy(phrase)
	}
	return b
}

// Mark names the next tick to be appended.
func (b *Builder[T]) Mark(name string) *Builder[T] {
	if _, exists := b.marks[name]; exists {
		b.errs = append(b.errs, fmt.Errorf("mark %q: %w", name, ErrDuplicateMark))
		return b
	}
	b.marks[name] = b.seq.Len()
	return b
}

// MarkTick returns the tick recorded by Mark.
func (b *Builder[T]) MarkTick(name string) (int, bool) {
	tick, ok := b.marks[name]
	return tick, ok
}

// Build returns the sequence, or every recorded misuse joined together.
func (b *Builder[T]) Build() (*tickseq.Sequence[T], error) {
	if len(b.errs) > 0 {
		return nil, errors.Join(b.errs...)
	}
	return b.seq, nil
}

// MustBuild is Build that panics on error.
func (b *Builder[T]) MustBuild() *tickseq.Sequence[T] {
	seq, err := b.Build()
	if err != nil {
		panic(err)
	}
	return seq
}
