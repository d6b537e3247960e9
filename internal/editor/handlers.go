package editor

import (
	"github.com/THAMIZH-ARASU/PyEdit-A-Vim-like-Terminal-Text-Editor/internal/engine/buffer"
	"github.com/THAMIZH-ARASU/PyEdit-A-Vim-like-Terminal-Text-Editor/internal/engine/cursor"
	"github.com/THAMIZH-ARASU/PyEdit-A-Vim-like-Terminal-Text-Editor/internal/engine/history"
	"github.com/THAMIZH-ARASU/PyEdit-A-Vim-like-Terminal-Text-Editor/internal/input/key"
	"github.com/THAMIZH-ARASU/PyEdit-A-Vim-like-Terminal-Text-Editor/internal/input/mode"
)

// HandleKey routes a key event to the active mode's handler. It returns
// false once the editor should exit.
func (e *Editor) HandleKey(ev key.Event) bool {
	if e.popupActive {
		e.handlePopup(ev)
		return !e.quit
	}

	// Any key dismisses the home page.
	e.showHome = false

	switch e.mode {
	case mode.Normal:
		e.handleNormal(ev)
	case mode.Insert:
		e.handleInsert(ev)
	case mode.Visual:
		e.handleVisual(ev)
	case mode.Command:
		e.handleCommand(ev)
	case mode.Search:
		e.handleSearch(ev)
	case mode.FileExplorer:
		e.handleExplorer(ev)
	}

	e.view.EnsureVisible(e.buf.Cursor())
	return !e.quit
}

func (e *Editor) handleNormal(ev key.Event) {
	if e.moveForKey(ev) {
		return
	}
	if ev.IsCtrl('r') {
		e.Redo()
		return
	}
	if !ev.IsChar() {
		return
	}

	switch ev.Rune {
	case 'i':
		e.mode = mode.Insert
	case 'v':
		e.sel = cursor.NewSelection(e.buf.Cursor())
		e.mode = mode.Visual
	case ':':
		e.commandBuf = ""
		e.mode = mode.Command
	case '/':
		e.searchBuf = ""
		e.mode = mode.Search
	case 'e':
		e.openExplorer()
	case 'x':
		e.DeleteChar()
	case 'o':
		e.OpenLineBelow()
	case 'O':
		e.OpenLineAbove()
	case 'p':
		e.Paste()
	case 'u':
		e.Undo()
	case 'q':
		e.quit = true
	}
}

func (e *Editor) handleInsert(ev key.Event) {
	switch {
	case ev.IsEscape():
		e.mode = mode.Normal
	case ev.IsBackspace():
		e.backspace()
	case ev.IsEnter():
		pos := e.buf.Cursor()
		if err := e.hist.Execute(history.NewSplitLineCommand(pos), e.buf); err == nil {
			e.buf.SetCursor(buffer.NewPosition(pos.Row+1, 0))
		}
	case ev.IsTab():
		e.autocomplete()
	case e.moveForKey(ev):
	case ev.IsChar():
		pos := e.buf.Cursor()
		if err := e.hist.Execute(history.NewInsertCommand(pos, string(ev.Rune)), e.buf); err == nil {
			e.buf.SetCursor(pos.Add(0, 1))
		}
	}
}

// backspace deletes the character before the cursor, joining with the
// previous line at column zero.
func (e *Editor) backspace() {
	pos := e.buf.Cursor()
	if pos.Col > 0 {
		target := pos.Add(0, -1)
		if err := e.hist.Execute(history.NewDeleteCommand(target, 1), e.buf); err == nil {
			e.buf.SetCursor(target)
		}
		return
	}
	if pos.Row == 0 {
		return
	}

	prevLen := len(e.buf.Line(pos.Row - 1))
	if err := e.hist.Execute(history.NewJoinLinesCommand(pos.Row-1), e.buf); err == nil {
		e.buf.SetCursor(buffer.NewPosition(pos.Row-1, prevLen))
	}
}

func (e *Editor) handleVisual(ev key.Event) {
	if ev.IsEscape() {
		e.mode = mode.Normal
		return
	}
	if e.moveForKey(ev) {
		e.sel.Track(e.buf.Cursor())
		return
	}
	if !ev.IsChar() {
		return
	}

	switch ev.Rune {
	case 'd':
		e.DeleteSelection()
	case 'y':
		e.CopySelection()
	}
}

func (e *Editor) handleCommand(ev key.Event) {
	switch {
	case ev.IsEscape():
		e.commandBuf = ""
		e.mode = mode.Normal
	case ev.IsEnter():
		line := e.commandBuf
		e.commandBuf = ""
		// Normal first so commands that set a mode (":explorer") win.
		e.mode = mode.Normal
		e.execCommandLine(line)
	case ev.IsBackspace():
		if len(e.commandBuf) > 0 {
			e.commandBuf = e.commandBuf[:len(e.commandBuf)-1]
		}
	case ev.IsChar():
		e.commandBuf += string(ev.Rune)
	}
}

func (e *Editor) handleSearch(ev key.Event) {
	switch {
	case ev.IsEscape():
		e.searchBuf = ""
		e.mode = mode.Normal
	case ev.IsEnter():
		pattern := e.searchBuf
		e.searchBuf = ""
		e.mode = mode.Normal
		e.performSearch(pattern)
	case ev.IsBackspace():
		if len(e.searchBuf) > 0 {
			e.searchBuf = e.searchBuf[:len(e.searchBuf)-1]
		}
	case ev.IsChar():
		e.searchBuf += string(ev.Rune)
	}
}

func (e *Editor) handleExplorer(ev key.Event) {
	if e.expl == nil {
		e.mode = mode.Normal
		return
	}

	switch {
	case ev.IsEscape() || ev.IsBackspace():
		// Cancel walks up the tree, leaving the mode only at the root.
		if e.expl.AtRoot() {
			e.mode = mode.Normal
			return
		}
		if err := e.expl.Up(); err != nil {
			e.setStatus(err.Error())
		}
	case ev.IsEnter():
		e.openSelected()
	case ev.Key == key.KeyDown || (ev.IsChar() && ev.Rune == 'j'):
		e.expl.MoveDown()
	case ev.Key == key.KeyUp || (ev.IsChar() && ev.Rune == 'k'):
		e.expl.MoveUp()
	case ev.IsChar() && ev.Rune == 'r':
		if err := e.expl.Refresh(); err != nil {
			e.setStatus(err.Error())
		}
	}
}

// moveForKey applies cursor motion for movement keys, returning whether
// the event was one.
func (e *Editor) moveForKey(ev key.Event) bool {
	dx, dy := 0, 0
	switch {
	case ev.Key == key.KeyLeft || (e.mode != mode.Insert && ev.IsChar() && ev.Rune == 'h'):
		dx = -1
	case ev.Key == key.KeyRight || (e.mode != mode.Insert && ev.IsChar() && ev.Rune == 'l'):
		dx = 1
	case ev.Key == key.KeyUp || (e.mode != mode.Insert && ev.IsChar() && ev.Rune == 'k'):
		dy = -1
	case ev.Key == key.KeyDown || (e.mode != mode.Insert && ev.IsChar() && ev.Rune == 'j'):
		dy = 1
	default:
		return false
	}
	cursor.Move(e.buf, dx, dy)
	return true
}

func (e *Editor) handlePopup(ev key.Event) {
	switch {
	case ev.IsEscape() || (ev.IsChar() && ev.Rune == 'q'):
		e.popupActive = false
		e.popup = nil
		e.popupOffset = 0
	case ev.Key == key.KeyDown || (ev.IsChar() && ev.Rune == 'j'):
		if e.popupOffset < len(e.popup)-1 {
			e.popupOffset++
		}
	case ev.Key == key.KeyUp || (ev.IsChar() && ev.Rune == 'k'):
		if e.popupOffset > 0 {
			e.popupOffset--
		}
	}
}
