package cursor

import (
	"testing"

	"github.com/THAMIZH-ARASU/PyEdit-A-Vim-like-Terminal-Text-Editor/internal/engine/buffer"
)

func TestMoveBasic(t *testing.T) {
	buf := buffer.FromLines([]string{"hello", "world"})

	pos := Move(buf, 1, 0)
	if pos.Row != 0 || pos.Col != 1 {
		t.Errorf("expected 0,1, got %s", pos)
	}

	pos = Move(buf, 0, 1)
	if pos.Row != 1 || pos.Col != 1 {
		t.Errorf("expected 1,1, got %s", pos)
	}
}

func TestMoveClampsRow(t *testing.T) {
	buf := buffer.FromLines([]string{"a", "b"})

	pos := Move(buf, 0, 100)
	if pos.Row != 1 {
		t.Errorf("expected row clamped to 1, got %d", pos.Row)
	}

	pos = Move(buf, 0, -100)
	if pos.Row != 0 {
		t.Errorf("expected row clamped to 0, got %d", pos.Row)
	}
}

func TestMoveClampsColumnToDestinationLine(t *testing.T) {
	// Moving down from the end of a long line onto a short line must clamp
	// the column against the destination, not the source.
	buf := buffer.FromLines([]string{"long line here", "ab"})
	buf.SetCursor(buffer.NewPosition(0, 14))

	pos := Move(buf, 0, 1)
	if pos.Row != 1 {
		t.Fatalf("expected row 1, got %d", pos.Row)
	}
	if pos.Col != 2 {
		t.Errorf("expected col clamped to 2, got %d", pos.Col)
	}
}

func TestMoveLargeOvershoots(t *testing.T) {
	buf := buffer.FromLines([]string{"abc", "de", "fghi"})

	deltas := []struct{ dx, dy int }{
		{1000, 0}, {-1000, 0}, {0, 1000}, {0, -1000}, {999, -999}, {-5, 7},
	}
	for _, d := range deltas {
		pos := Move(buf, d.dx, d.dy)
		if pos.Row < 0 || pos.Row >= buf.LineCount() {
			t.Errorf("delta %+v: row %d out of range", d, pos.Row)
		}
		if pos.Col < 0 || pos.Col > len(buf.Line(pos.Row)) {
			t.Errorf("delta %+v: col %d out of range for line %q", d, pos.Col, buf.Line(pos.Row))
		}
	}
}

func TestMoveAllowsCursorAtLineEnd(t *testing.T) {
	buf := buffer.FromLines([]string{"abc"})

	pos := Move(buf, 3, 0)
	if pos.Col != 3 {
		t.Errorf("expected col 3 (insert point past last char), got %d", pos.Col)
	}
}
