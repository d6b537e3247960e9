package cursor

import (
	"testing"

	"github.com/THAMIZH-ARASU/PyEdit-A-Vim-like-Terminal-Text-Editor/internal/engine/buffer"
)

func TestEnsureVisibleNoScrollInsideWindow(t *testing.T) {
	v := NewViewport(10, 40)

	v.EnsureVisible(buffer.NewPosition(5, 20))

	if v.Top != 0 || v.Left != 0 {
		t.Errorf("expected no scroll, got top=%d left=%d", v.Top, v.Left)
	}
}

func TestEnsureVisibleScrollsDownByOverflow(t *testing.T) {
	v := NewViewport(10, 40)

	v.EnsureVisible(buffer.NewPosition(12, 0))

	if v.Top != 3 {
		t.Errorf("expected top=3 (12-10+1), got %d", v.Top)
	}
}

func TestEnsureVisibleSnapsUp(t *testing.T) {
	v := NewViewport(10, 40)
	v.Top = 20

	v.EnsureVisible(buffer.NewPosition(7, 0))

	if v.Top != 7 {
		t.Errorf("expected top snapped to 7, got %d", v.Top)
	}
}

func TestEnsureVisibleHorizontal(t *testing.T) {
	v := NewViewport(10, 20)

	v.EnsureVisible(buffer.NewPosition(0, 25))
	if v.Left != 6 {
		t.Errorf("expected left=6 (25-20+1), got %d", v.Left)
	}

	v.EnsureVisible(buffer.NewPosition(0, 2))
	if v.Left != 2 {
		t.Errorf("expected left snapped to 2, got %d", v.Left)
	}
}

func TestEnsureVisibleNoJitterWhenAlreadyVisible(t *testing.T) {
	v := NewViewport(10, 40)
	v.Top = 3

	v.EnsureVisible(buffer.NewPosition(12, 0))
	if v.Top != 3 {
		t.Errorf("expected no unnecessary scroll, got top=%d", v.Top)
	}
}

func TestViewportResetAndResize(t *testing.T) {
	v := NewViewport(5, 10)
	v.EnsureVisible(buffer.NewPosition(50, 50))

	v.Reset()
	if v.Top != 0 || v.Left != 0 {
		t.Errorf("expected origin after reset, got top=%d left=%d", v.Top, v.Left)
	}

	v.Resize(20, 80)
	if v.Height != 20 || v.Width != 80 {
		t.Errorf("expected 20x80, got %dx%d", v.Height, v.Width)
	}
}

func TestContains(t *testing.T) {
	v := NewViewport(10, 40)
	v.Top = 5

	if !v.Contains(buffer.NewPosition(5, 0)) {
		t.Error("top-left corner should be visible")
	}
	if v.Contains(buffer.NewPosition(15, 0)) {
		t.Error("row past the window should not be visible")
	}
}
