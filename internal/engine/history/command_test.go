package history

import (
	"errors"
	"reflect"
	"testing"

	"github.com/THAMIZH-ARASU/PyEdit-A-Vim-like-Terminal-Text-Editor/internal/engine/buffer"
)

func TestInsertCommandRoundTrip(t *testing.T) {
	buf := buffer.FromLines([]string{"hello"})
	cmd := NewInsertCommand(buffer.NewPosition(0, 2), "XY")

	if err := cmd.Execute(buf); err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if buf.Line(0) != "heXYllo" {
		t.Errorf("expected 'heXYllo', got %q", buf.Line(0))
	}

	if err := cmd.Undo(buf); err != nil {
		t.Fatalf("undo failed: %v", err)
	}
	if buf.Line(0) != "hello" {
		t.Errorf("expected 'hello', got %q", buf.Line(0))
	}
}

func TestDeleteCommandCapturesBeforeRemoval(t *testing.T) {
	buf := buffer.FromLines([]string{"hello"})
	cmd := NewDeleteCommand(buffer.NewPosition(0, 1), 3)

	if err := cmd.Execute(buf); err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if buf.Line(0) != "ho" {
		t.Errorf("expected 'ho', got %q", buf.Line(0))
	}

	if err := cmd.Undo(buf); err != nil {
		t.Fatalf("undo failed: %v", err)
	}
	if buf.Line(0) != "hello" {
		t.Errorf("expected 'hello' restored, got %q", buf.Line(0))
	}
}

func TestUndoDoesNotClearModified(t *testing.T) {
	buf := buffer.New()
	cmd := NewInsertCommand(buffer.NewPosition(0, 0), "x")

	_ = cmd.Execute(buf)
	_ = cmd.Undo(buf)

	// Pinned reference behavior: undo restores content, not the flag.
	if !buf.IsModified() {
		t.Error("undo is not expected to reset the modified flag")
	}
}

func TestSplitLineCommandRoundTrip(t *testing.T) {
	buf := buffer.FromLines([]string{"hello"})
	cmd := NewSplitLineCommand(buffer.NewPosition(0, 2))

	_ = cmd.Execute(buf)
	if !reflect.DeepEqual(buf.Lines(), []string{"he", "llo"}) {
		t.Errorf("expected split, got %v", buf.Lines())
	}

	_ = cmd.Undo(buf)
	if !reflect.DeepEqual(buf.Lines(), []string{"hello"}) {
		t.Errorf("expected join, got %v", buf.Lines())
	}
}

func TestSplitLineEndCommand(t *testing.T) {
	buf := buffer.FromLines([]string{"ab", "tail"})
	cmd := NewSplitLineEndCommand(0)

	_ = cmd.Execute(buf)
	if !reflect.DeepEqual(buf.Lines(), []string{"ab", "", "tail"}) {
		t.Errorf("expected blank line appended below row 0, got %v", buf.Lines())
	}

	_ = cmd.Undo(buf)
	if !reflect.DeepEqual(buf.Lines(), []string{"ab", "tail"}) {
		t.Errorf("expected original lines, got %v", buf.Lines())
	}
}

func TestJoinLinesCommandRoundTrip(t *testing.T) {
	buf := buffer.FromLines([]string{"he", "llo"})
	cmd := NewJoinLinesCommand(0)

	_ = cmd.Execute(buf)
	if !reflect.DeepEqual(buf.Lines(), []string{"hello"}) {
		t.Errorf("expected joined line, got %v", buf.Lines())
	}

	_ = cmd.Undo(buf)
	if !reflect.DeepEqual(buf.Lines(), []string{"he", "llo"}) {
		t.Errorf("expected re-split at seam, got %v", buf.Lines())
	}
}

func TestCompoundCommandUndoesAsOneUnit(t *testing.T) {
	buf := buffer.New()
	cmd := NewCompoundCommand("splice",
		NewInsertCommand(buffer.NewPosition(0, 0), "one"),
		NewSplitLineEndCommand(0),
		NewInsertCommand(buffer.NewPosition(1, 0), "two"),
	)

	if err := cmd.Execute(buf); err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !reflect.DeepEqual(buf.Lines(), []string{"one", "two"}) {
		t.Errorf("expected two lines, got %v", buf.Lines())
	}

	if err := cmd.Undo(buf); err != nil {
		t.Fatalf("undo failed: %v", err)
	}
	if !reflect.DeepEqual(buf.Lines(), []string{""}) {
		t.Errorf("expected empty buffer, got %v", buf.Lines())
	}
}

// failCommand fails on Execute after mutating, for rollback tests.
type failCommand struct{}

func (failCommand) Execute(*buffer.Buffer) error { return errors.New("boom") }
func (failCommand) Undo(*buffer.Buffer) error    { return nil }
func (failCommand) Description() string          { return "fail" }

func TestCompoundCommandRollsBackOnFailure(t *testing.T) {
	buf := buffer.New()
	cmd := NewCompoundCommand("partial",
		NewInsertCommand(buffer.NewPosition(0, 0), "abc"),
		failCommand{},
	)

	if err := cmd.Execute(buf); err == nil {
		t.Fatal("expected error from failing step")
	}
	if buf.Line(0) != "" {
		t.Errorf("expected rollback of executed prefix, got %q", buf.Line(0))
	}
}
