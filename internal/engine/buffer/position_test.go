package buffer

import "testing"

func TestNewPositionClampsNegative(t *testing.T) {
	p := NewPosition(-3, -1)

	if p.Row != 0 || p.Col != 0 {
		t.Errorf("expected 0,0, got %s", p)
	}
}

func TestNewPositionKeepsValid(t *testing.T) {
	p := NewPosition(4, 7)

	if p.Row != 4 || p.Col != 7 {
		t.Errorf("expected 4,7, got %s", p)
	}
}

func TestPositionAddClamps(t *testing.T) {
	p := NewPosition(1, 1)

	moved := p.Add(-5, 3)
	if moved.Row != 0 {
		t.Errorf("expected row clamped to 0, got %d", moved.Row)
	}
	if moved.Col != 4 {
		t.Errorf("expected col 4, got %d", moved.Col)
	}
}

func TestPositionEqual(t *testing.T) {
	if !NewPosition(2, 3).Equal(NewPosition(2, 3)) {
		t.Error("identical positions should be equal")
	}
	if NewPosition(2, 3).Equal(NewPosition(3, 2)) {
		t.Error("different positions should not be equal")
	}
}
