// Package buffer provides the mutable text store for the scratchpad engine.
//
// A Buffer holds a flat sequence of UTF-8 bytes addressed by ByteOffset.
// Edits are expressed as Insert, Delete, Replace, or batched Edit values;
// every successful write produces a new RevisionID. The buffer records no
// history of its own: undo lives in the history package, which is the only
// layer that should mutate a buffer it manages.
//
// Snapshots capture the buffer at a point in time:
//
//	buf := buffer.NewBufferFromString("hello")
//	snap := buf.Snapshot()
//	buf.Insert(5, " world")
//	snap.Text() // still "hello"
//
// All Buffer methods are safe for concurrent use; Snapshot values are
// immutable and freely shareable.
package buffer
