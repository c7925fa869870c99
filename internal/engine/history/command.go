package history

import (
	"fmt"
	"unicode/utf8"

	"github.com/dshills/scratchpad/internal/engine/buffer"
)

// Command represents a composable edit action that can be executed and undone.
//
// A command captures enough state during Execute to invert its own effect:
// Undo must revert exactly the change that Execute applied, using only the
// command's recorded operations.
type Command interface {
	// Execute performs the command and returns an error if it fails.
	Execute(buf *buffer.Buffer) error

	// Undo reverses the command and returns an error if it fails.
	Undo(buf *buffer.Buffer) error

	// Description returns a human-readable description of the command.
	Description() string
}

// InsertCommand inserts text at a fixed byte offset.
type InsertCommand struct {
	At         ByteOffset
	Text       string
	operations OperationList
}

// NewInsertCommand creates a command that inserts text at the given offset.
func NewInsertCommand(at ByteOffset, text string) *InsertCommand {
	return &InsertCommand{At: at, Text: text}
}

// Execute inserts the text.
func (c *InsertCommand) Execute(buf *buffer.Buffer) error {
	c.operations = nil
	if len(c.Text) == 0 {
		return nil
	}

	op := NewInsertOperation(c.At, c.Text)
	if _, err := buf.Insert(c.At, c.Text); err != nil {
		return fmt.Errorf("insert at offset %d: %w", c.At, err)
	}
	c.operations = append(c.operations, op)

	return nil
}

// Undo removes the inserted text.
func (c *InsertCommand) Undo(buf *buffer.Buffer) error {
	return undoOperations(buf, c.operations, "insert")
}

// Description returns a human-readable description.
func (c *InsertCommand) Description() string {
	return describeInsert(c.Text)
}

// AppendCommand inserts text at the end of the buffer.
// The insertion offset is captured at execution time.
type AppendCommand struct {
	Text       string
	operations OperationList
}

// NewAppendCommand creates a command that appends text to the buffer.
func NewAppendCommand(text string) *AppendCommand {
	return &AppendCommand{Text: text}
}

// Execute appends the text at the current end of the buffer.
func (c *AppendCommand) Execute(buf *buffer.Buffer) error {
	c.operations = nil
	if len(c.Text) == 0 {
		return nil
	}

	at := buf.Len()
	op := NewInsertOperation(at, c.Text)
	if _, err := buf.Insert(at, c.Text); err != nil {
		return fmt.Errorf("append at offset %d: %w", at, err)
	}
	c.operations = append(c.operations, op)

	return nil
}

// Undo removes the appended text.
func (c *AppendCommand) Undo(buf *buffer.Buffer) error {
	return undoOperations(buf, c.operations, "append")
}

// Description returns a human-readable description.
func (c *AppendCommand) Description() string {
	return describeInsert(c.Text)
}

// DeleteCommand deletes text in a fixed range.
type DeleteCommand struct {
	Range      Range
	operations OperationList
}

// NewDeleteCommand creates a command that deletes the given range.
func NewDeleteCommand(r Range) *DeleteCommand {
	return &DeleteCommand{Range: r}
}

// Execute deletes the range, recording the removed text for undo.
func (c *DeleteCommand) Execute(buf *buffer.Buffer) error {
	c.operations = nil
	if c.Range.IsEmpty() {
		return nil
	}

	oldText := buf.TextRange(c.Range.Start, c.Range.End)
	op := NewDeleteOperation(c.Range, oldText)
	if err := buf.Delete(c.Range.Start, c.Range.End); err != nil {
		return fmt.Errorf("delete range %s: %w", c.Range, err)
	}
	c.operations = append(c.operations, op)

	return nil
}

// Undo restores the deleted text.
func (c *DeleteCommand) Undo(buf *buffer.Buffer) error {
	return undoOperations(buf, c.operations, "delete")
}

// Description returns a human-readable description.
func (c *DeleteCommand) Description() string {
	return fmt.Sprintf("Delete %d bytes", c.Range.Len())
}

// ReplaceCommand replaces text in a fixed range.
type ReplaceCommand struct {
	Range      Range
	NewText    string
	operations OperationList
}

// NewReplaceCommand creates a command that replaces the given range.
func NewReplaceCommand(r Range, newText string) *ReplaceCommand {
	return &ReplaceCommand{Range: r, NewText: newText}
}

// Execute replaces the range, recording the previous text for undo.
func (c *ReplaceCommand) Execute(buf *buffer.Buffer) error {
	c.operations = nil

	oldText := buf.TextRange(c.Range.Start, c.Range.End)
	op := NewReplaceOperation(c.Range, oldText, c.NewText)
	if _, err := buf.Replace(c.Range.Start, c.Range.End, c.NewText); err != nil {
		return fmt.Errorf("replace range %s: %w", c.Range, err)
	}
	c.operations = append(c.operations, op)

	return nil
}

// Undo restores the original text.
func (c *ReplaceCommand) Undo(buf *buffer.Buffer) error {
	return undoOperations(buf, c.operations, "replace")
}

// Description returns a human-readable description.
func (c *ReplaceCommand) Description() string {
	oldLen := c.Range.Len()
	newLen := utf8.RuneCountInString(c.NewText)
	if oldLen == 0 {
		return fmt.Sprintf("Insert %d characters", newLen)
	}
	if newLen == 0 {
		return fmt.Sprintf("Delete %d bytes", oldLen)
	}
	return fmt.Sprintf("Replace %d bytes with %d characters", oldLen, newLen)
}

// CompoundCommand groups multiple commands as one undo unit.
type CompoundCommand struct {
	Name     string
	Commands []Command
}

// NewCompoundCommand creates a new compound command.
func NewCompoundCommand(name string, commands ...Command) *CompoundCommand {
	return &CompoundCommand{
		Name:     name,
		Commands: commands,
	}
}

// Execute runs all commands in order.
// If a command fails, the ones already executed are undone.
func (c *CompoundCommand) Execute(buf *buffer.Buffer) error {
	for i, cmd := range c.Commands {
		if err := cmd.Execute(buf); err != nil {
			for j := i - 1; j >= 0; j-- {
				_ = c.Commands[j].Undo(buf)
			}
			return fmt.Errorf("compound command %q step %d: %w", c.Name, i, err)
		}
	}
	return nil
}

// Undo reverses all commands in reverse order.
func (c *CompoundCommand) Undo(buf *buffer.Buffer) error {
	for i := len(c.Commands) - 1; i >= 0; i-- {
		if err := c.Commands[i].Undo(buf); err != nil {
			return fmt.Errorf("undo compound command %q step %d: %w", c.Name, i, err)
		}
	}
	return nil
}

// Description returns the compound command's name.
func (c *CompoundCommand) Description() string {
	if c.Name != "" {
		return c.Name
	}
	if len(c.Commands) == 1 {
		return c.Commands[0].Description()
	}
	return fmt.Sprintf("%d operations", len(c.Commands))
}

// Add adds a command to the compound command.
func (c *CompoundCommand) Add(cmd Command) {
	c.Commands = append(c.Commands, cmd)
}

// IsEmpty returns true if the compound command has no commands.
func (c *CompoundCommand) IsEmpty() bool {
	return len(c.Commands) == 0
}

// undoOperations applies the inverse of each recorded operation in reverse
// order.
func undoOperations(buf *buffer.Buffer, ops OperationList, what string) error {
	for i := len(ops) - 1; i >= 0; i-- {
		inv := ops[i].Invert()
		if _, err := buf.Replace(inv.Range.Start, inv.Range.End, inv.NewText); err != nil {
			return fmt.Errorf("undo %s: %w", what, err)
		}
	}
	return nil
}

// describeInsert renders an insertion description, eliding long text.
func describeInsert(text string) string {
	if len(text) == 1 {
		switch text {
		case "\n":
			return "Insert newline"
		case "\t":
			return "Insert tab"
		}
		return fmt.Sprintf("Type %q", text)
	}
	if utf8.RuneCountInString(text) <= 20 {
		return fmt.Sprintf("Insert %q", text)
	}
	return fmt.Sprintf("Insert %d characters", utf8.RuneCountInString(text))
}
