package cursor

import (
	"github.com/THAMIZH-ARASU/PyEdit-A-Vim-like-Terminal-Text-Editor/internal/engine/buffer"
)

// Viewport tracks the scroll offset mapping the buffer onto a logical
// window of the given height and width.
type Viewport struct {
	Top    int
	Left   int
	Height int
	Width  int
}

// NewViewport creates a viewport with the given dimensions.
func NewViewport(height, width int) *Viewport {
	return &Viewport{Height: height, Width: width}
}

// Resize updates the window dimensions.
func (v *Viewport) Resize(height, width int) {
	v.Height = height
	v.Width = width
}

// Reset scrolls back to the origin.
func (v *Viewport) Reset() {
	v.Top = 0
	v.Left = 0
}

// Contains reports whether the position is inside the visible window.
func (v *Viewport) Contains(pos buffer.Position) bool {
	return pos.Row >= v.Top && pos.Row < v.Top+v.Height &&
		pos.Col >= v.Left && pos.Col < v.Left+v.Width
}

// EnsureVisible adjusts the scroll offset minimally so the position stays
// within the window: moving above or left of the window snaps the offset to
// the position, moving below or right advances it by exactly the overflow.
func (v *Viewport) EnsureVisible(pos buffer.Position) {
	if v.Height > 0 {
		if pos.Row < v.Top {
			v.Top = pos.Row
		} else if pos.Row >= v.Top+v.Height {
			v.Top = pos.Row - v.Height + 1
		}
	}

	if v.Width > 0 {
		if pos.Col < v.Left {
			v.Left = pos.Col
		} else if pos.Col >= v.Left+v.Width {
			v.Left = pos.Col - v.Width + 1
		}
	}
}
