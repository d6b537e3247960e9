package editor

import (
	"context"
	"strings"
	"time"

	"github.com/THAMIZH-ARASU/PyEdit-A-Vim-like-Terminal-Text-Editor/internal/ai"
	"github.com/THAMIZH-ARASU/PyEdit-A-Vim-like-Terminal-Text-Editor/internal/engine/buffer"
	"github.com/THAMIZH-ARASU/PyEdit-A-Vim-like-Terminal-Text-Editor/internal/engine/history"
)

// aiTimeout bounds a single AI request.
const aiTimeout = 60 * time.Second

// execCommandLine runs a ":" command. The caller has already reset the
// mode to normal; commands that enter a mode set it themselves.
func (e *Editor) execCommandLine(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}

	name, args, _ := strings.Cut(line, " ")
	args = strings.TrimSpace(args)

	switch name {
	case "q":
		if e.buf.IsModified() {
			e.setStatus("Unsaved changes (:q! to discard, :wq to save)")
			return
		}
		e.quit = true
	case "q!":
		e.quit = true
	case "w":
		e.SaveFile(args)
	case "wq":
		e.SaveFile(args)
		if !e.buf.IsModified() {
			e.quit = true
		}
	case "e":
		if args == "" {
			e.setStatus("Usage: :e <path>")
			return
		}
		e.LoadFile(args)
	case "explorer":
		e.openExplorer()
	case "help":
		e.showPopup(helpText)
	case "home":
		e.showHome = true
	case "ai":
		e.runAI(args)
	default:
		e.setStatus("Unknown command: " + name)
	}
}

// runAI dispatches an ":ai <action> [args]" command to the completer.
func (e *Editor) runAI(args string) {
	if e.ai == nil {
		e.setStatus("AI is not configured")
		return
	}
	if args == "" {
		e.setStatus("Usage: :ai <action> [args] (:ai status for providers)")
		return
	}
	action, rest, _ := strings.Cut(args, " ")
	rest = strings.TrimSpace(rest)

	ctx, cancel := context.WithTimeout(context.Background(), aiTimeout)
	defer cancel()

	result, err := e.ai.RunAction(ctx, action, rest, e.buf.Lines(), ai.DetectLanguage(e.buf.Path()))
	if err != nil {
		e.setStatus(err.Error())
		return
	}
	e.applyAIResult(result)
}

func (e *Editor) applyAIResult(result ai.ActionResult) {
	if result.ReplaceBuffer != nil {
		e.buf.SetLines(result.ReplaceBuffer)
		e.buf.SetCursor(buffer.NewPosition(0, 0))
		e.view.Reset()
		e.hist.Clear()
	}
	if result.Popup {
		e.showPopup(result.Text)
		return
	}
	if result.Text != "" {
		e.setStatus(result.Text)
	}
}

// autocomplete asks the AI for a completion at the cursor and splices
// it in as a single undoable edit.
func (e *Editor) autocomplete() {
	if e.ai == nil {
		e.setStatus("AI is not configured")
		return
	}

	pos := e.buf.Cursor()
	ctx, cancel := context.WithTimeout(context.Background(), aiTimeout)
	defer cancel()

	e.setStatus("Thinking...")
	suggestion, err := e.ai.Suggest(ctx, e.buf.Lines(), pos.Row, pos.Col, ai.DetectLanguage(e.buf.Path()))
	if err != nil {
		e.setStatus(err.Error())
		return
	}
	if suggestion == "" {
		e.setStatus("No suggestion")
		return
	}

	lines := strings.Split(suggestion, "\n")
	compound := history.NewCompoundCommand("AI completion",
		history.NewInsertCommand(pos, lines[0]))
	for i := 1; i < len(lines); i++ {
		compound.Add(history.NewSplitLineEndCommand(pos.Row + i - 1))
		compound.Add(history.NewInsertCommand(buffer.NewPosition(pos.Row+i, 0), lines[i]))
	}

	if err := e.hist.Execute(compound, e.buf); err != nil {
		e.setStatus(err.Error())
		return
	}

	if len(lines) == 1 {
		e.buf.SetCursor(pos.Add(0, len(lines[0])))
	} else {
		lastRow := pos.Row + len(lines) - 1
		e.buf.SetCursor(buffer.NewPosition(lastRow, len(lines[len(lines)-1])))
	}
	e.setStatus("Completion inserted (u to undo)")
}

const helpText = `PyEdit Help

NORMAL MODE
  h j k l / arrows   move cursor
  i                  insert mode
  v                  visual mode
  x                  delete character
  o / O              open line below / above
  p                  paste yanked text
  u / Ctrl+R         undo / redo
  :                  command line
  /                  search
  e                  file explorer
  q                  quit

INSERT MODE
  Esc                back to normal
  Tab                AI completion at cursor
  Backspace          delete left / join lines

VISUAL MODE
  d                  delete selection
  y                  yank selection

COMMANDS
  :w [path]          save
  :q  :q!  :wq       quit / force quit / save and quit
  :e <path>          open file
  :explorer          file explorer
  :help              this help
  :home              home page
  :ai status         show AI providers
  :ai model <name>   switch AI provider
  :ai chat <msg>     ask a question about the buffer
  :ai explain        explain the buffer
  :ai review         review the buffer
  :ai doc            generate documentation
  :ai refactor [goal]      rewrite the buffer
  :ai testgen        generate tests
  :ai nl2code <desc>       generate code from a description
  :ai translate <language> translate the buffer
  :ai snippet <desc>       generate a snippet
  :ai commitmsg      draft a commit message
  :ai search <query>       quick programming answer

FILE EXPLORER
  j / k              move selection
  Enter              open file or enter directory
  Esc / Backspace    parent directory (normal mode at root)
  r                  refresh

Press q or Esc to close this help.`
