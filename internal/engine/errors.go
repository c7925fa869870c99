package engine

import (
	"errors"

	"github.com/dshills/scratchpad/internal/engine/buffer"
	"github.com/dshills/scratchpad/internal/engine/history"
)

// Errors returned by pad operations. The buffer and history sentinels are
// re-exported rather than redeclared so errors.Is matches across packages.
var (
	// ErrOffsetOutOfRange indicates an offset is outside the valid buffer range.
	ErrOffsetOutOfRange = buffer.ErrOffsetOutOfRange

	// ErrRangeInvalid indicates an invalid range (e.g., end < start).
	ErrRangeInvalid = buffer.ErrRangeInvalid

	// ErrEditsOverlap indicates edits overlap or are not in reverse order.
	ErrEditsOverlap = buffer.ErrEditsOverlap

	// ErrNothingToUndo indicates the undo stack is empty.
	ErrNothingToUndo = history.ErrNothingToUndo

	// ErrReadOnly indicates a write was attempted on a read-only pad.
	ErrReadOnly = errors.New("pad is read-only")
)
