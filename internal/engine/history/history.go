package history

import (
	"errors"

	"github.com/THAMIZH-ARASU/PyEdit-A-Vim-like-Terminal-Text-Editor/internal/engine/buffer"
)

// Errors reported by history operations.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// DefaultMaxEntries bounds the history when no explicit limit is given.
const DefaultMaxEntries = 1000

// History is a linear, truncating undo/redo record.
//
// Executed commands are kept in order with an index pointing at the most
// recently applied entry (-1 when everything is undone or the history is
// empty). Executing a new command while the index is not at the end discards
// every entry past it: redo history is destroyed by any new edit after an
// undo.
type History struct {
	entries    []Command
	index      int
	maxEntries int
}

// New creates a history. A non-positive maxEntries uses DefaultMaxEntries.
func New(maxEntries int) *History {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &History{
		index:      -1,
		maxEntries: maxEntries,
	}
}

// Execute runs the command against the buffer and records it. The stale
// redo branch, if any, is truncated first. A command that fails to execute
// is not recorded.
func (h *History) Execute(cmd Command, buf *buffer.Buffer) error {
	if err := cmd.Execute(buf); err != nil {
		return err
	}

	if h.index < len(h.entries)-1 {
		h.entries = h.entries[:h.index+1]
	}
	h.entries = append(h.entries, cmd)
	h.index = len(h.entries) - 1

	if excess := len(h.entries) - h.maxEntries; excess > 0 {
		h.entries = h.entries[excess:]
		h.index -= excess
	}
	return nil
}

// Undo reverses the entry at the index and steps back. Returns
// ErrNothingToUndo when the index is before the first entry.
func (h *History) Undo(buf *buffer.Buffer) error {
	if h.index < 0 {
		return ErrNothingToUndo
	}
	if err := h.entries[h.index].Undo(buf); err != nil {
		return err
	}
	h.index--
	return nil
}

// Redo re-executes the entry after the index. Redo replays the captured
// command, not the raw input, so the buffer returns to its exact pre-undo
// state. Returns ErrNothingToRedo at the end of the history.
func (h *History) Redo(buf *buffer.Buffer) error {
	if h.index >= len(h.entries)-1 {
		return ErrNothingToRedo
	}
	h.index++
	if err := h.entries[h.index].Execute(buf); err != nil {
		h.index--
		return err
	}
	return nil
}

// CanUndo reports whether an undo is available.
func (h *History) CanUndo() bool {
	return h.index >= 0
}

// CanRedo reports whether a redo is available.
func (h *History) CanRedo() bool {
	return h.index < len(h.entries)-1
}

// Len returns the number of recorded entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Index returns the index of the most recently applied entry, -1 when none.
func (h *History) Index() int {
	return h.index
}

// Clear discards all entries.
func (h *History) Clear() {
	h.entries = nil
	h.index = -1
}
