// Package script loads YAML scenario files describing how to build a
// sequence step by step, and applies them to a tickseq.Sequence.
//
// A scenario looks like:
//
//	name: bridge
//	default: STAND_TALL
//	steps:
//	  - op: hold
//	    value: FORWARD
//	    count: 20
//	  - op: insert
//	    tick: 5
//	    value: JUMP
package script

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Op names a sequence operation.
type Op string

const (
	OpAdd           Op = "add"
	OpInsert        Op = "insert"
	OpInsertRange   Op = "insert_range"
	OpSet           Op = "set"
	OpSetRange      Op = "set_range"
	OpRemove        Op = "remove"
	OpRemoveRange   Op = "remove_range"
	OpRemoveAll     Op = "remove_all"
	OpRemovePattern Op = "remove_pattern"
	OpClear         Op = "clear"
	OpHold          Op = "hold"
	OpWait          Op = "wait"
)

var (
	ErrEmptyScript  = errors.New("script: empty document")
	ErrUnknownOp    = errors.New("script: unknown op")
	ErrMissingField = errors.New("script: missing field")
	ErrBadCount     = errors.New("script: count must not be negative")
)

// Step is one operation of a scenario.
type Step struct {
	Op     Op       `json:"op" yaml:"op"`
	Value  string   `json:"value,omitempty" yaml:"value,omitempty"`
	Values []string `json:"values,omitempty" yaml:"values,omitempty"`
	Tick   *int     `json:"tick,omitempty" yaml:"tick,omitempty"`
	Until  *int     `json:"until,omitempty" yaml:"until,omitempty"`
	Count  int      `json:"count,omitempty" yaml:"count,omitempty"`
}

// Script is a named scenario: a default value and the steps building the
// sequence from empty. Output, when set, names the file the CLI writes.
type Script struct {
	Name    string `json:"name" yaml:"name"`
	Default string `json:"default" yaml:"default"`
	Output  string `json:"output,omitempty" yaml:"output,omitempty"`
	Steps   []Step `json:"steps" yaml:"steps"`
}

// Parse decodes and validates a YAML scenario. Unknown fields are errors.
func Parse(data []byte) (*Script, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Script
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyScript
		}
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and parses the scenario at path.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Marshal encodes the scenario back to YAML.
func (s *Script) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}

// Validate checks that the scenario is named and every step carries the
// fields its op needs. Default may be empty; callers fill it in before
// Build.
func (s *Script) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("name: %w", ErrMissingField)
	}
	for i, st := range s.Steps {
		if err := st.Validate(); err != nil {
			return fmt.Errorf("step %d (%s): %w", i, st.Op, err)
		}
	}
	return nil
}

// Validate checks the fields required by the step's op.
func (st Step) Validate() error {
	need := func(ok bool, field string) error {
		if !ok {
			return fmt.Errorf("%s: %w", field, ErrMissingField)
		}
		return nil
	}
	hasValue := st.Value != ""
	switch st.Op {
	case OpAdd:
		return need(hasValue, "value")
	case OpInsert, OpSet:
		return errors.Join(need(st.Tick != nil, "tick"), need(hasValue, "value"))
	case OpInsertRange, OpSetRange:
		return errors.Join(need(st.Tick != nil, "tick"), need(st.Until != nil, "until"), need(hasValue, "value"))
	case OpRemove:
		return need(st.Tick != nil, "tick")
	case OpRemoveRange:
		return errors.Join(need(st.Tick != nil, "tick"), need(st.Until != nil, "until"))
	case OpRemoveAll:
		return need(hasValue || len(st.Values) > 0, "value or values")
	case OpRemovePattern:
		return need(len(st.Values) > 0, "values")
	case OpClear:
		return nil
	case OpHold:
		if st.Count < 0 {
			return ErrBadCount
		}
		return need(hasValue, "value")
	case OpWait:
		if st.Count < 0 {
			return ErrBadCount
		}
		return nil
	default:
		return fmt.Errorf("%w %q", ErrUnknownOp, st.Op)
	}
}
