// Package engine provides the core scratchpad engine.
//
// The engine package serves as the main facade, binding a text buffer to a
// command history so that every mutation is undoable, and wiring in the
// expression evaluator for calc-pad style workflows.
//
// # Architecture
//
// The engine is built on two sub-packages plus the evaluator:
//
//   - buffer: mutable UTF-8 text store with offsets, ranges, and snapshots
//   - history: command-based undo with grouping
//   - expr (sibling package): immutable expression trees and evaluation
//
// # Thread Safety
//
// All Pad operations are thread-safe. The pad uses a read-write mutex so
// multiple goroutines can read concurrently while writes are serialized;
// single-goroutine callers pay only the uncontended lock.
//
// # Basic Usage
//
//	p := engine.New()
//
//	p.Append("Hola ")
//	p.Append("Mundo")
//	p.Text() // "Hola Mundo"
//
//	p.Undo() // "Hola "
//	p.Undo() // ""
//	p.Undo() // engine.ErrNothingToUndo; buffer unchanged
//
// # Evaluation
//
// A pad holding arithmetic source text can evaluate itself:
//
//	p := engine.New(engine.WithContent("(3 + 5) * 2"))
//	v, _ := p.EvalText() // 16
//
// # Undo Groups
//
// Group multiple operations into a single undo unit:
//
//	p.BeginUndoGroup("greeting")
//	p.Append("Hola ")
//	p.Append("Mundo")
//	p.EndUndoGroup()
//
//	p.Undo() // removes both appends
//
// # Error Handling
//
// The package re-exports the buffer and history sentinels so callers can
// match with errors.Is without importing the sub-packages:
//
//   - ErrOffsetOutOfRange: invalid byte offset
//   - ErrRangeInvalid: invalid range (e.g., end < start)
//   - ErrEditsOverlap: batch edits overlap or are not in reverse order
//   - ErrNothingToUndo: undo stack is empty (a no-op, not a failure)
//   - ErrReadOnly: write operation on a read-only pad
package engine
