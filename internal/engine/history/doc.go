// Package history provides command-based undo for the scratchpad engine.
//
// Edits are encapsulated as Command values that know how to execute
// themselves against a buffer and how to invert exactly the change they
// applied. Key concepts:
//
// # Operations
//
// An Operation records a single atomic edit with before/after state: the
// range that was modified and the old and new text. Commands capture their
// operations during Execute, so each command carries everything needed to
// undo itself.
//
// # Commands
//
// Built-in commands include:
//   - InsertCommand: insert text at a byte offset
//   - AppendCommand: insert text at the end of the buffer
//   - DeleteCommand: delete a range
//   - ReplaceCommand: replace a range
//   - CompoundCommand: group multiple commands as one undo unit
//
// # History Stack
//
// The History type manages the undo stack:
//
//	h := history.NewHistory(1000) // cap at 1000 entries
//
//	h.Execute(cmd, buf) // run and record
//	h.Undo(buf)         // revert the most recent command
//
// Execute skips the push when the command fails, so the stack always holds
// exactly the commands whose effects are applied to the buffer, most recent
// last. Undo on an empty stack returns ErrNothingToUndo and leaves the
// buffer untouched; callers treat it as a reported no-op. Only the single
// most recent command is undoable at each step; there is no redo stack.
//
// # Command Grouping
//
// Multiple commands can be grouped as a single undo unit:
//
//	h.BeginGroup("find and replace")
//	// ... multiple edits ...
//	h.EndGroup()
//
// Now all edits undo together.
package history
