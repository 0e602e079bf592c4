// Package tickseq provides a generic, thread-safe, tick-indexed sequence
// container.
//
// A Sequence is an ordered timeline of elements addressed by an integer
// tick. Ticks are 0-based and "until" bounds are exclusive. A sequence is
// always dense: every tick in [0, Tick()] holds an element.
//
// # Elements
//
// Stored values implement Element. Its CopyPolicy tells the container
// whether the value is an enumeration-style constant (Shared, copies are
// the value itself) or a composite value (Owned, copies duplicate state).
//
// # Tolerant failures
//
// Reads and removals outside the occupied range never fail. They fall back
// to the default value, clamp the range, or do nothing, and report a
// Diagnostic to the sequence's Sink. Writes past the end back-fill the gap
// with the default value. Only file serialization returns an error.
//
// # Example Usage
//
//	seq := tickseq.New("run", move.StandTall)
//	seq.Add(move.Forward).Add(move.Forward).Insert(5, move.Jump)
//	fmt.Print(seq) // 0=FORWARD ... 5=JUMP
//
// # Concurrency
//
// Each public call holds one per-instance mutex for its whole duration.
// Operations that read a second sequence (Append, RemovePattern, Equal)
// take a snapshot of it first; there is no atomicity across two instances.
// Diagnostics are delivered after the mutex is released.
package tickseq
