// Package editor ties the buffer, history, cursor and mode handling
// together into the interactive editing core.
package editor

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/THAMIZH-ARASU/PyEdit-A-Vim-like-Terminal-Text-Editor/internal/ai"
	"github.com/THAMIZH-ARASU/PyEdit-A-Vim-like-Terminal-Text-Editor/internal/engine/buffer"
	"github.com/THAMIZH-ARASU/PyEdit-A-Vim-like-Terminal-Text-Editor/internal/engine/cursor"
	"github.com/THAMIZH-ARASU/PyEdit-A-Vim-like-Terminal-Text-Editor/internal/engine/history"
	"github.com/THAMIZH-ARASU/PyEdit-A-Vim-like-Terminal-Text-Editor/internal/input/mode"
	"github.com/THAMIZH-ARASU/PyEdit-A-Vim-like-Terminal-Text-Editor/internal/logging"
	"github.com/THAMIZH-ARASU/PyEdit-A-Vim-like-Terminal-Text-Editor/internal/project/explorer"
	"github.com/THAMIZH-ARASU/PyEdit-A-Vim-like-Terminal-Text-Editor/internal/project/filestore"
	"github.com/THAMIZH-ARASU/PyEdit-A-Vim-like-Terminal-Text-Editor/internal/project/search"
)

// statusTicks is how many redraw cycles a transient status message stays
// visible.
const statusTicks = 30

// Completer is the AI surface the editor uses. Implemented by
// *ai.Manager; tests substitute a stub.
type Completer interface {
	Suggest(ctx context.Context, lines []string, row, col int, language string) (string, error)
	RunAction(ctx context.Context, action, args string, lines []string, language string) (ai.ActionResult, error)
	Current() string
}

// Editor is the modal editing core. It owns the document, its history,
// the viewport and the active mode, and interprets key events.
type Editor struct {
	mode mode.Mode
	buf  *buffer.Buffer
	hist *history.History
	view *cursor.Viewport
	sel  cursor.Selection

	store    *filestore.Store
	searcher *search.Engine
	expl     *explorer.Explorer
	explRoot string
	ai       Completer

	clipboard  string
	commandBuf string
	searchBuf  string

	status     string
	statusLeft int

	showHome    bool
	popup       []string
	popupOffset int
	popupActive bool

	quit bool
	log  *logging.Logger
}

// Option configures an Editor.
type Option func(*Editor)

// WithAI wires an AI completer into the editor.
func WithAI(c Completer) Option {
	return func(e *Editor) { e.ai = c }
}

// WithLogger sets the editor's logger.
func WithLogger(log *logging.Logger) Option {
	return func(e *Editor) { e.log = log.WithComponent("editor") }
}

// WithExplorerRoot sets the directory the file explorer opens in.
func WithExplorerRoot(root string) Option {
	return func(e *Editor) { e.explRoot = root }
}

// New creates an editor showing the home page with an empty buffer.
func New(opts ...Option) *Editor {
	e := &Editor{
		buf:      buffer.New(),
		hist:     history.New(0),
		view:     cursor.NewViewport(24, 80),
		store:    filestore.New(),
		searcher: search.New(),
		explRoot: ".",
		showHome: true,
		log:      logging.Null,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Mode returns the active editing mode.
func (e *Editor) Mode() mode.Mode { return e.mode }

// Buffer returns the document buffer.
func (e *Editor) Buffer() *buffer.Buffer { return e.buf }

// View returns the scroll viewport.
func (e *Editor) View() *cursor.Viewport { return e.view }

// Selection returns the visual selection and whether it is active.
func (e *Editor) Selection() (cursor.Selection, bool) {
	return e.sel, e.mode == mode.Visual
}

// CommandBuffer returns the pending ":" command line text.
func (e *Editor) CommandBuffer() string { return e.commandBuf }

// SearchBuffer returns the pending "/" search pattern text.
func (e *Editor) SearchBuffer() string { return e.searchBuf }

// ShowHome reports whether the home page is displayed.
func (e *Editor) ShowHome() bool { return e.showHome }

// Quitting reports whether the editor has been asked to exit.
func (e *Editor) Quitting() bool { return e.quit }

// PopupActive reports whether a popup is open.
func (e *Editor) PopupActive() bool { return e.popupActive }

// PopupLines returns the popup body.
func (e *Editor) PopupLines() []string { return e.popup }

// PopupOffset returns the popup's scroll offset.
func (e *Editor) PopupOffset() int { return e.popupOffset }

// Explorer returns the file explorer, or nil when it has not been
// opened yet.
func (e *Editor) Explorer() *explorer.Explorer { return e.expl }

// PreviewLines returns a preview of the explorer's selected file, or
// nil when a directory is highlighted.
func (e *Editor) PreviewLines(maxLines int) []string {
	if e.expl == nil {
		return nil
	}
	path, ok := e.expl.SelectedPath()
	if !ok || !e.store.IsFile(path) {
		return nil
	}
	return e.store.Preview(path, maxLines)
}

// Resize updates the viewport dimensions and keeps the cursor visible.
func (e *Editor) Resize(height, width int) {
	e.view.Resize(height, width)
	e.view.EnsureVisible(e.buf.Cursor())
}

// setStatus shows a transient message in the status bar.
func (e *Editor) setStatus(msg string) {
	e.status = msg
	e.statusLeft = statusTicks
}

// Tick advances the status-message decay counter. The host loop calls
// it once per redraw cycle.
func (e *Editor) Tick() {
	if e.statusLeft > 0 {
		e.statusLeft--
	}
}

// StatusText builds the status bar line. It is a pure read; transient
// messages decay through Tick.
func (e *Editor) StatusText() string {
	name := e.buf.Path()
	if name == "" {
		name = "[No Name]"
	} else {
		name = filepath.Base(name)
	}
	if e.buf.IsModified() {
		name += " [+]"
	}

	pos := e.buf.Cursor()
	text := fmt.Sprintf("%s | %s | %d,%d", e.mode.DisplayName(), name, pos.Row+1, pos.Col+1)
	if e.ai != nil && e.ai.Current() != "" {
		text += " | AI: " + e.ai.Current()
	}

	if e.statusLeft > 0 {
		text += " | " + e.status
	}
	return text
}
