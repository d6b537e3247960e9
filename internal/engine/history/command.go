package history

import (
	"fmt"

	"github.com/THAMIZH-ARASU/PyEdit-A-Vim-like-Terminal-Text-Editor/internal/engine/buffer"
)

// Command is a reversible unit of buffer mutation.
type Command interface {
	// Execute applies the change to the buffer.
	Execute(buf *buffer.Buffer) error

	// Undo restores the buffer to its exact pre-Execute state using only
	// state captured at or after Execute time.
	Undo(buf *buffer.Buffer) error

	// Description returns a human-readable description of the command.
	Description() string
}

// InsertCommand inserts text (without line breaks) at a position.
type InsertCommand struct {
	Pos  buffer.Position
	Text string
}

// NewInsertCommand creates an insert command.
func NewInsertCommand(pos buffer.Position, text string) *InsertCommand {
	return &InsertCommand{Pos: pos, Text: text}
}

// Execute splices the text into the buffer.
func (c *InsertCommand) Execute(buf *buffer.Buffer) error {
	buf.InsertText(c.Pos, c.Text)
	return nil
}

// Undo removes the inserted text.
func (c *InsertCommand) Undo(buf *buffer.Buffer) error {
	buf.DeleteText(c.Pos, len(c.Text))
	return nil
}

// Description returns a human-readable description.
func (c *InsertCommand) Description() string {
	if len(c.Text) == 1 {
		return fmt.Sprintf("Type %q", c.Text)
	}
	if len(c.Text) <= 20 {
		return fmt.Sprintf("Insert %q", c.Text)
	}
	return fmt.Sprintf("Insert %d characters", len(c.Text))
}

// DeleteCommand removes a run of characters on a single line, capturing the
// removed text before deletion so the command can restore it.
type DeleteCommand struct {
	Pos    buffer.Position
	Length int

	deleted string
}

// NewDeleteCommand creates a delete command.
func NewDeleteCommand(pos buffer.Position, length int) *DeleteCommand {
	return &DeleteCommand{Pos: pos, Length: length}
}

// Execute snapshots then removes the addressed text. The snapshot must
// happen first: once the text is gone it cannot be recovered.
func (c *DeleteCommand) Execute(buf *buffer.Buffer) error {
	c.deleted = buf.GetText(c.Pos, c.Length)
	buf.DeleteText(c.Pos, c.Length)
	return nil
}

// Undo reinserts the captured text.
func (c *DeleteCommand) Undo(buf *buffer.Buffer) error {
	buf.InsertText(c.Pos, c.deleted)
	return nil
}

// Description returns a human-readable description.
func (c *DeleteCommand) Description() string {
	if c.Length == 1 {
		return "Delete character"
	}
	return fmt.Sprintf("Delete %d characters", c.Length)
}

// SplitLineCommand splits a line in two at a column, like pressing Enter.
// With AtLineEnd set the split column is resolved to the line's current
// length at execute time, which appends a fresh blank line below.
type SplitLineCommand struct {
	Pos       buffer.Position
	AtLineEnd bool
}

// NewSplitLineCommand creates a split command at a fixed column.
func NewSplitLineCommand(pos buffer.Position) *SplitLineCommand {
	return &SplitLineCommand{Pos: pos}
}

// NewSplitLineEndCommand creates a split command at the end of a row.
func NewSplitLineEndCommand(row int) *SplitLineCommand {
	return &SplitLineCommand{Pos: buffer.NewPosition(row, 0), AtLineEnd: true}
}

// Execute splits the line.
func (c *SplitLineCommand) Execute(buf *buffer.Buffer) error {
	col := c.Pos.Col
	if c.AtLineEnd {
		col = len(buf.Line(c.Pos.Row))
	}
	buf.InsertNewline(buffer.NewPosition(c.Pos.Row, col))
	return nil
}

// Undo joins the two halves back together.
func (c *SplitLineCommand) Undo(buf *buffer.Buffer) error {
	buf.JoinLines(c.Pos.Row)
	return nil
}

// Description returns a human-readable description.
func (c *SplitLineCommand) Description() string {
	return "Split line"
}

// JoinLinesCommand merges the line below a row into it, like backspacing at
// the start of a line. The join column is captured at execute time so Undo
// can split at exactly the seam.
type JoinLinesCommand struct {
	Row int

	joinCol int
}

// NewJoinLinesCommand creates a join command.
func NewJoinLinesCommand(row int) *JoinLinesCommand {
	return &JoinLinesCommand{Row: row}
}

// Execute merges row+1 into row.
func (c *JoinLinesCommand) Execute(buf *buffer.Buffer) error {
	c.joinCol = len(buf.Line(c.Row))
	buf.JoinLines(c.Row)
	return nil
}

// Undo re-splits at the captured seam.
func (c *JoinLinesCommand) Undo(buf *buffer.Buffer) error {
	buf.InsertNewline(buffer.NewPosition(c.Row, c.joinCol))
	return nil
}

// Description returns a human-readable description.
func (c *JoinLinesCommand) Description() string {
	return "Join lines"
}

// CompoundCommand groups multiple commands into one undo unit. Multi-line
// splices (AI suggestions) use it so a single undo reverts the whole edit.
type CompoundCommand struct {
	Name     string
	Commands []Command
}

// NewCompoundCommand creates a compound command.
func NewCompoundCommand(name string, commands ...Command) *CompoundCommand {
	return &CompoundCommand{Name: name, Commands: commands}
}

// Add appends a command to the group.
func (c *CompoundCommand) Add(cmd Command) {
	c.Commands = append(c.Commands, cmd)
}

// IsEmpty reports whether the group has no commands.
func (c *CompoundCommand) IsEmpty() bool {
	return len(c.Commands) == 0
}

// Execute runs all commands in order. On failure the already-executed
// prefix is undone so the buffer is never left half mutated.
func (c *CompoundCommand) Execute(buf *buffer.Buffer) error {
	for i, cmd := range c.Commands {
		if err := cmd.Execute(buf); err != nil {
			for j := i - 1; j >= 0; j-- {
				_ = c.Commands[j].Undo(buf)
			}
			return fmt.Errorf("compound command %q step %d: %w", c.Name, i, err)
		}
	}
	return nil
}

// Undo reverses all commands in reverse order.
func (c *CompoundCommand) Undo(buf *buffer.Buffer) error {
	for i := len(c.Commands) - 1; i >= 0; i-- {
		if err := c.Commands[i].Undo(buf); err != nil {
			return fmt.Errorf("undo compound command %q step %d: %w", c.Name, i, err)
		}
	}
	return nil
}

// Description returns the group's name, or a summary.
func (c *CompoundCommand) Description() string {
	if c.Name != "" {
		return c.Name
	}
	if len(c.Commands) == 1 {
		return c.Commands[0].Description()
	}
	return fmt.Sprintf("%d operations", len(c.Commands))
}
