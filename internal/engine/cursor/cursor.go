package cursor

import (
	"github.com/THAMIZH-ARASU/PyEdit-A-Vim-like-Terminal-Text-Editor/internal/engine/buffer"
)

// Move shifts the buffer's cursor by (dx, dy) with bounds checking and
// returns the resulting position.
//
// The row is resolved before the column so the column is clamped against
// the destination line's length, not the source line's. The resulting row
// is always within [0, LineCount-1] and the column within [0, len(line)].
func Move(buf *buffer.Buffer, dx, dy int) buffer.Position {
	cur := buf.Cursor()

	row := cur.Row + dy
	if row < 0 {
		row = 0
	}
	if max := buf.LineCount() - 1; row > max {
		row = max
	}

	col := cur.Col + dx
	if col < 0 {
		col = 0
	}
	if max := len(buf.Line(row)); col > max {
		col = max
	}

	pos := buffer.NewPosition(row, col)
	buf.SetCursor(pos)
	return pos
}
