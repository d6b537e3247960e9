package history

import (
	"errors"
	"reflect"
	"testing"

	"github.com/THAMIZH-ARASU/PyEdit-A-Vim-like-Terminal-Text-Editor/internal/engine/buffer"
)

func TestUndoOnEmptyHistory(t *testing.T) {
	h := New(0)
	buf := buffer.New()

	if err := h.Undo(buf); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("expected ErrNothingToUndo, got %v", err)
	}
}

func TestRedoOnEmptyHistory(t *testing.T) {
	h := New(0)
	buf := buffer.New()

	if err := h.Redo(buf); !errors.Is(err, ErrNothingToRedo) {
		t.Errorf("expected ErrNothingToRedo, got %v", err)
	}
}

func TestExecuteUndoRedoRoundTrip(t *testing.T) {
	h := New(0)
	buf := buffer.New()

	texts := []string{"a", "b", "c"}
	for i, s := range texts {
		cmd := NewInsertCommand(buffer.NewPosition(0, i), s)
		if err := h.Execute(cmd, buf); err != nil {
			t.Fatalf("execute %d failed: %v", i, err)
		}
	}
	want := buf.Lines()

	for i := 0; i < len(texts); i++ {
		if err := h.Undo(buf); err != nil {
			t.Fatalf("undo %d failed: %v", i, err)
		}
	}
	if buf.Line(0) != "" {
		t.Errorf("expected empty line after undos, got %q", buf.Line(0))
	}

	for i := 0; i < len(texts); i++ {
		if err := h.Redo(buf); err != nil {
			t.Fatalf("redo %d failed: %v", i, err)
		}
	}
	if !reflect.DeepEqual(buf.Lines(), want) {
		t.Errorf("round trip broken: expected %v, got %v", want, buf.Lines())
	}
}

func TestExecuteAfterUndoTruncatesRedo(t *testing.T) {
	h := New(0)
	buf := buffer.New()

	for i := 0; i < 3; i++ {
		_ = h.Execute(NewInsertCommand(buffer.NewPosition(0, 0), "x"), buf)
	}

	_ = h.Undo(buf)
	_ = h.Undo(buf)

	if err := h.Execute(NewInsertCommand(buffer.NewPosition(0, 0), "y"), buf); err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	// 1 surviving old entry + 1 new entry, not 4.
	if h.Len() != 2 {
		t.Errorf("expected 2 entries after truncation, got %d", h.Len())
	}
	if err := h.Redo(buf); !errors.Is(err, ErrNothingToRedo) {
		t.Errorf("redo after truncation must be a no-op, got %v", err)
	}
}

func TestUndoRedoSingleStep(t *testing.T) {
	h := New(0)
	buf := buffer.New()

	_ = h.Execute(NewInsertCommand(buffer.NewPosition(0, 0), "hello"), buf)

	if err := h.Undo(buf); err != nil {
		t.Fatalf("undo failed: %v", err)
	}
	if buf.Line(0) != "" {
		t.Errorf("expected empty line, got %q", buf.Line(0))
	}

	if err := h.Redo(buf); err != nil {
		t.Fatalf("redo failed: %v", err)
	}
	if buf.Line(0) != "hello" {
		t.Errorf("expected 'hello', got %q", buf.Line(0))
	}
}

func TestIndexInvariant(t *testing.T) {
	h := New(0)
	buf := buffer.New()

	if h.Index() != -1 {
		t.Errorf("empty history index should be -1, got %d", h.Index())
	}

	_ = h.Execute(NewInsertCommand(buffer.NewPosition(0, 0), "a"), buf)
	_ = h.Execute(NewInsertCommand(buffer.NewPosition(0, 1), "b"), buf)

	if h.Index() != 1 {
		t.Errorf("expected index 1, got %d", h.Index())
	}

	_ = h.Undo(buf)
	_ = h.Undo(buf)
	if h.Index() != -1 {
		t.Errorf("expected index -1 after undoing all, got %d", h.Index())
	}
	if h.Index() < -1 || h.Index() >= h.Len() {
		t.Errorf("index %d violates bounds for %d entries", h.Index(), h.Len())
	}
}

func TestCanUndoCanRedo(t *testing.T) {
	h := New(0)
	buf := buffer.New()

	if h.CanUndo() || h.CanRedo() {
		t.Error("empty history should allow neither undo nor redo")
	}

	_ = h.Execute(NewInsertCommand(buffer.NewPosition(0, 0), "a"), buf)
	if !h.CanUndo() || h.CanRedo() {
		t.Error("after execute: undo yes, redo no")
	}

	_ = h.Undo(buf)
	if h.CanUndo() || !h.CanRedo() {
		t.Error("after undo: undo no, redo yes")
	}
}

func TestMaxEntriesDropsOldest(t *testing.T) {
	h := New(2)
	buf := buffer.New()

	for i := 0; i < 5; i++ {
		_ = h.Execute(NewInsertCommand(buffer.NewPosition(0, i), "x"), buf)
	}

	if h.Len() != 2 {
		t.Errorf("expected history clamped to 2 entries, got %d", h.Len())
	}
	if h.Index() != 1 {
		t.Errorf("expected index 1, got %d", h.Index())
	}
}

func TestInsertNewlineScenario(t *testing.T) {
	// Buffer [""], insert "ab", split at 0,2 -> ["ab", ""], undo twice -> [""].
	h := New(0)
	buf := buffer.New()

	_ = h.Execute(NewInsertCommand(buffer.NewPosition(0, 0), "ab"), buf)
	buf.SetCursor(buffer.NewPosition(0, 2))
	_ = h.Execute(NewSplitLineCommand(buffer.NewPosition(0, 2)), buf)

	if !reflect.DeepEqual(buf.Lines(), []string{"ab", ""}) {
		t.Fatalf("expected [ab, \"\"], got %v", buf.Lines())
	}

	_ = h.Undo(buf)
	_ = h.Undo(buf)

	if !reflect.DeepEqual(buf.Lines(), []string{""}) {
		t.Errorf("expected [\"\"], got %v", buf.Lines())
	}
}

func TestClear(t *testing.T) {
	h := New(0)
	buf := buffer.New()
	_ = h.Execute(NewInsertCommand(buffer.NewPosition(0, 0), "a"), buf)

	h.Clear()

	if h.Len() != 0 || h.Index() != -1 || h.CanUndo() {
		t.Error("clear should reset the history")
	}
}
