package buffer

import "fmt"

// Position is a row/column coordinate into a buffer. Both fields are
// 0-based and clamped to zero; a Position is never observed negative.
// Positions are value types and are copied freely.
type Position struct {
	Row int
	Col int
}

// NewPosition creates a Position with both coordinates clamped to zero.
func NewPosition(row, col int) Position {
	return Position{Row: row, Col: col}.Clamped()
}

// Clamped returns the position with negative coordinates raised to zero.
func (p Position) Clamped() Position {
	if p.Row < 0 {
		p.Row = 0
	}
	if p.Col < 0 {
		p.Col = 0
	}
	return p
}

// Add returns the position shifted by (dRow, dCol), clamped to zero.
func (p Position) Add(dRow, dCol int) Position {
	return NewPosition(p.Row+dRow, p.Col+dCol)
}

// Equal reports whether two positions address the same coordinate.
func (p Position) Equal(other Position) bool {
	return p.Row == other.Row && p.Col == other.Col
}

// String returns the position in "row,col" form.
func (p Position) String() string {
	return fmt.Sprintf("%d,%d", p.Row, p.Col)
}
