package editor

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/THAMIZH-ARASU/PyEdit-A-Vim-like-Terminal-Text-Editor/internal/engine/buffer"
	"github.com/THAMIZH-ARASU/PyEdit-A-Vim-like-Terminal-Text-Editor/internal/engine/history"
	"github.com/THAMIZH-ARASU/PyEdit-A-Vim-like-Terminal-Text-Editor/internal/input/mode"
	"github.com/THAMIZH-ARASU/PyEdit-A-Vim-like-Terminal-Text-Editor/internal/project/explorer"
)

// DeleteChar removes the character under the cursor ("x"). Nothing
// happens past the end of the line.
func (e *Editor) DeleteChar() {
	pos := e.buf.Cursor()
	if pos.Col >= len(e.buf.Line(pos.Row)) {
		return
	}
	if err := e.hist.Execute(history.NewDeleteCommand(pos, 1), e.buf); err != nil {
		e.setStatus(err.Error())
	}
}

// OpenLineBelow inserts a blank line under the cursor's row and enters
// insert mode on it ("o").
func (e *Editor) OpenLineBelow() {
	row := e.buf.Cursor().Row
	if err := e.hist.Execute(history.NewSplitLineEndCommand(row), e.buf); err != nil {
		e.setStatus(err.Error())
		return
	}
	e.buf.SetCursor(buffer.NewPosition(row+1, 0))
	e.mode = mode.Insert
}

// OpenLineAbove inserts a blank line above the cursor's row and enters
// insert mode on it ("O").
func (e *Editor) OpenLineAbove() {
	row := e.buf.Cursor().Row
	if err := e.hist.Execute(history.NewSplitLineCommand(buffer.NewPosition(row, 0)), e.buf); err != nil {
		e.setStatus(err.Error())
		return
	}
	e.buf.SetCursor(buffer.NewPosition(row, 0))
	e.mode = mode.Insert
}

// Paste inserts the yank register at the cursor ("p").
func (e *Editor) Paste() {
	if e.clipboard == "" {
		return
	}
	pos := e.buf.Cursor()
	if err := e.hist.Execute(history.NewInsertCommand(pos, e.clipboard), e.buf); err != nil {
		e.setStatus(err.Error())
		return
	}
	e.buf.SetCursor(pos.Add(0, len(e.clipboard)))
}

// DeleteSelection removes the visual selection as one undo unit and
// returns to normal mode.
func (e *Editor) DeleteSelection() {
	row, start, end := e.sel.Normalized()
	if length := end - start; length > 0 {
		cmd := history.NewDeleteCommand(buffer.NewPosition(row, start), length)
		if err := e.hist.Execute(cmd, e.buf); err != nil {
			e.setStatus(err.Error())
			return
		}
	}
	e.buf.SetCursor(buffer.NewPosition(row, start))
	e.mode = mode.Normal
	e.setStatus("Selection deleted")
}

// CopySelection yanks the visual selection into the editor register and
// the system clipboard, then returns to normal mode.
func (e *Editor) CopySelection() {
	text := e.sel.Text(e.buf)
	if text != "" {
		e.clipboard = text
		// System clipboard is best effort; headless sessions lack one.
		_ = clipboard.WriteAll(text)
	}
	e.mode = mode.Normal
	e.setStatus("Selection copied")
}

// Undo reverts the most recent edit.
func (e *Editor) Undo() {
	if err := e.hist.Undo(e.buf); err != nil {
		e.setStatus("Nothing to undo")
		return
	}
	e.buf.SetCursor(e.buf.Cursor())
	e.setStatus("Undone")
}

// Redo reapplies the most recently undone edit.
func (e *Editor) Redo() {
	if err := e.hist.Redo(e.buf); err != nil {
		e.setStatus("Nothing to redo")
		return
	}
	e.buf.SetCursor(e.buf.Cursor())
	e.setStatus("Redone")
}

// LoadFile opens path into the buffer. A path that does not exist yet
// starts a new file.
func (e *Editor) LoadFile(path string) {
	if e.store.IsDir(path) {
		e.setStatus(fmt.Sprintf("%s is a directory", path))
		return
	}

	if err := e.buf.Load(e.store, path); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			e.setStatus(err.Error())
			e.log.Error("load %s: %v", path, err)
			return
		}
		e.buf = buffer.New(buffer.WithPath(path))
		e.setStatus("New file: " + filepath.Base(path))
	} else {
		e.setStatus("Loaded " + filepath.Base(path))
		e.log.Info("loaded %s (%d lines)", path, e.buf.LineCount())
	}

	// History entries refer to the previous document.
	e.hist.Clear()
	e.buf.SetCursor(buffer.NewPosition(0, 0))
	e.view.Reset()
	e.showHome = false
}

// SaveFile writes the buffer to path, or to its own path when empty.
func (e *Editor) SaveFile(path string) {
	if err := e.buf.Save(e.store, path); err != nil {
		if errors.Is(err, buffer.ErrNoPath) {
			e.setStatus("No file name (use :w <path>)")
		} else {
			e.setStatus(err.Error())
			e.log.Error("save: %v", err)
		}
		return
	}
	e.setStatus("Saved " + filepath.Base(e.buf.Path()))
	e.log.Info("saved %s (%d lines)", e.buf.Path(), e.buf.LineCount())
}

// performSearch finds pattern in the buffer and jumps to the first
// match.
func (e *Editor) performSearch(pattern string) {
	if pattern == "" {
		return
	}
	matches := e.searcher.FindAll(e.buf.Lines(), pattern)
	if len(matches) == 0 {
		e.setStatus("No matches found")
		return
	}

	first := matches[0]
	e.buf.SetCursor(buffer.NewPosition(first.Row, first.Col))
	e.view.EnsureVisible(e.buf.Cursor())
	if len(matches) == 1 {
		e.setStatus("Found 1 match")
	} else {
		e.setStatus(fmt.Sprintf("Found %d matches", len(matches)))
	}
}

// openExplorer enters file explorer mode rooted at the configured
// directory.
func (e *Editor) openExplorer() {
	if e.expl == nil {
		expl, err := explorer.New(e.explRoot)
		if err != nil {
			e.setStatus(err.Error())
			return
		}
		e.expl = expl
	} else if err := e.expl.Refresh(); err != nil {
		e.setStatus(err.Error())
		return
	}
	e.mode = mode.FileExplorer
}

// openSelected acts on the explorer's highlighted item: directories are
// entered, files are opened in the buffer.
func (e *Editor) openSelected() {
	path, ok := e.expl.SelectedPath()
	if !ok {
		return
	}
	if e.store.IsDir(path) {
		if err := e.expl.NavigateTo(path); err != nil {
			e.setStatus(err.Error())
		}
		return
	}
	e.LoadFile(path)
	e.mode = mode.Normal
}

// showPopup opens a scrollable popup with the given body.
func (e *Editor) showPopup(text string) {
	e.popup = strings.Split(strings.TrimRight(text, "\n"), "\n")
	e.popupOffset = 0
	e.popupActive = true
}
