package engine

import (
	"io"
	"sync"

	"github.com/google/uuid"

	"github.com/dshills/scratchpad/internal/engine/buffer"
	"github.com/dshills/scratchpad/internal/engine/history"
)

// Re-export commonly used types for convenience.
type (
	// ByteOffset is a byte position in the buffer.
	ByteOffset = buffer.ByteOffset

	// Range represents a byte range in the buffer.
	Range = buffer.Range

	// Edit represents an edit operation.
	Edit = buffer.Edit

	// EditResult contains information about a completed edit.
	EditResult = buffer.EditResult

	// RevisionID uniquely identifies a buffer revision.
	RevisionID = buffer.RevisionID

	// Command is an undoable edit command.
	Command = history.Command

	// OperationInfo describes a recorded undo entry.
	OperationInfo = history.OperationInfo
)

// Pad is the main facade for the scratchpad engine.
// It binds one buffer to one command history: every mutation goes through a
// command, so every mutation is undoable.
//
// All operations are thread-safe and can be called from multiple goroutines.
type Pad struct {
	mu sync.RWMutex

	id      string
	buf     *buffer.Buffer
	history *history.History

	// Configuration
	maxUndoEntries int
	readOnly       bool

	// Initialization
	initContent string
}

// New creates a new Pad with the given options.
func New(opts ...Option) *Pad {
	p := &Pad{
		maxUndoEntries: DefaultMaxUndoEntries,
	}

	for _, opt := range opts {
		opt(p)
	}

	p.id = uuid.New().String()
	if p.initContent != "" {
		p.buf = buffer.NewBufferFromString(p.initContent)
	} else {
		p.buf = buffer.NewBuffer()
	}
	p.history = history.NewHistory(p.maxUndoEntries)

	return p
}

// NewFromReader creates a Pad from an io.Reader.
func NewFromReader(r io.Reader, opts ...Option) (*Pad, error) {
	p := &Pad{
		maxUndoEntries: DefaultMaxUndoEntries,
	}

	for _, opt := range opts {
		opt(p)
	}

	buf, err := buffer.NewBufferFromReader(r)
	if err != nil {
		return nil, err
	}

	p.id = uuid.New().String()
	p.buf = buf
	p.history = history.NewHistory(p.maxUndoEntries)

	return p, nil
}

// ID returns the pad's unique identifier.
func (p *Pad) ID() string {
	return p.id
}

// Read Operations

// Text returns the full buffer content.
func (p *Pad) Text() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.buf.Text()
}

// TextRange returns text in the given byte range.
func (p *Pad) TextRange(start, end ByteOffset) string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.buf.TextRange(start, end)
}

// Len returns the total byte length of the buffer.
func (p *Pad) Len() ByteOffset {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.buf.Len()
}

// CharCount returns the number of user-perceived characters in the buffer.
func (p *Pad) CharCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.buf.CharCount()
}

// IsEmpty returns true if the buffer is empty.
func (p *Pad) IsEmpty() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.buf.IsEmpty()
}

// RevisionID returns the current buffer revision.
func (p *Pad) RevisionID() RevisionID {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.buf.RevisionID()
}

// Snapshot returns a read-only snapshot of the current buffer state.
func (p *Pad) Snapshot() *buffer.Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.buf.Snapshot()
}

// Write Operations
//
// Each entry point wraps the mutation in the matching command and executes
// it through the history, so the buffer is only ever mutated by commands.

// Insert inserts text at the given offset.
func (p *Pad) Insert(offset ByteOffset, text string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.readOnly {
		return ErrReadOnly
	}
	return p.history.Execute(history.NewInsertCommand(offset, text), p.buf)
}

// Append inserts text at the end of the buffer.
func (p *Pad) Append(text string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.readOnly {
		return ErrReadOnly
	}
	return p.history.Execute(history.NewAppendCommand(text), p.buf)
}

// Delete removes text in the given range.
func (p *Pad) Delete(start, end ByteOffset) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.readOnly {
		return ErrReadOnly
	}
	return p.history.Execute(history.NewDeleteCommand(Range{Start: start, End: end}), p.buf)
}

// Replace replaces text in the given range with new text.
func (p *Pad) Replace(start, end ByteOffset, text string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.readOnly {
		return ErrReadOnly
	}
	return p.history.Execute(history.NewReplaceCommand(Range{Start: start, End: end}, text), p.buf)
}

// Execute runs a command and adds it to undo history.
func (p *Pad) Execute(cmd Command) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.readOnly {
		return ErrReadOnly
	}
	return p.history.Execute(cmd, p.buf)
}

// Undo Operations

// Undo undoes the last operation.
// Returns ErrNothingToUndo when the history is empty; the buffer is left
// untouched in that case.
func (p *Pad) Undo() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.readOnly {
		return ErrReadOnly
	}
	return p.history.Undo(p.buf)
}

// CanUndo returns true if undo is available.
func (p *Pad) CanUndo() bool {
	return p.history.CanUndo()
}

// UndoCount returns the number of available undo operations.
func (p *Pad) UndoCount() int {
	return p.history.UndoCount()
}

// PeekUndo returns info about the next undo operation without removing it.
func (p *Pad) PeekUndo() (OperationInfo, bool) {
	return p.history.PeekUndo()
}

// UndoInfo returns info about available undo operations, oldest first.
func (p *Pad) UndoInfo() []OperationInfo {
	return p.history.UndoInfo()
}

// BeginUndoGroup starts a new undo group.
// All operations until EndUndoGroup will be undone as a single unit.
func (p *Pad) BeginUndoGroup(name string) {
	p.history.BeginGroup(name)
}

// EndUndoGroup ends the current undo group.
func (p *Pad) EndUndoGroup() {
	p.history.EndGroup()
}

// CancelUndoGroup cancels the current undo group without recording.
func (p *Pad) CancelUndoGroup() {
	p.history.CancelGroup()
}

// ClearHistory removes all undo history.
func (p *Pad) ClearHistory() {
	p.history.Clear()
}

// IsReadOnly returns true if the pad is read-only.
func (p *Pad) IsReadOnly() bool {
	return p.readOnly
}

// Clear and Reset

// Clear removes all content from the buffer and resets history.
func (p *Pad) Clear() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.readOnly {
		return ErrReadOnly
	}

	if p.buf.Len() > 0 {
		if err := p.buf.Delete(0, p.buf.Len()); err != nil {
			return err
		}
	}
	p.history.Clear()

	return nil
}

// SetContent replaces all content and resets history.
func (p *Pad) SetContent(content string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.readOnly {
		return ErrReadOnly
	}

	if _, err := p.buf.Replace(0, p.buf.Len(), content); err != nil {
		return err
	}
	p.history.Clear()

	return nil
}
