package cursor

import (
	"github.com/THAMIZH-ARASU/PyEdit-A-Vim-like-Terminal-Text-Editor/internal/engine/buffer"
)

// Selection is a visual-mode range: the anchor is fixed at mode entry and
// Live mirrors the cursor while the mode is active.
//
// Selections are single-line: delete and copy normalize the column span on
// the anchor's row only.
type Selection struct {
	Anchor buffer.Position
	Live   buffer.Position
}

// NewSelection creates a selection anchored (and starting) at pos.
func NewSelection(pos buffer.Position) Selection {
	return Selection{Anchor: pos, Live: pos}
}

// Track updates the live end to follow the cursor.
func (s *Selection) Track(pos buffer.Position) {
	s.Live = pos
}

// Normalized returns the anchor row and the ordered column span
// [startCol, endCol) of the selection on that row.
func (s Selection) Normalized() (row, startCol, endCol int) {
	row = s.Anchor.Row
	startCol, endCol = s.Anchor.Col, s.Live.Col
	if startCol > endCol {
		startCol, endCol = endCol, startCol
	}
	return row, startCol, endCol
}

// IsEmpty reports whether the selection spans no characters.
func (s Selection) IsEmpty() bool {
	_, start, end := s.Normalized()
	return start == end
}

// Text returns the selected text from the buffer.
func (s Selection) Text(buf *buffer.Buffer) string {
	row, start, end := s.Normalized()
	return buf.GetText(buffer.NewPosition(row, start), end-start)
}
