// Package renderer draws the editor state onto a tcell terminal screen.
package renderer

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/THAMIZH-ARASU/PyEdit-A-Vim-like-Terminal-Text-Editor/internal/editor"
	"github.com/THAMIZH-ARASU/PyEdit-A-Vim-like-Terminal-Text-Editor/internal/input/mode"
)

// explorerPaneWidth is the width of the navigation pane in file
// explorer mode.
const explorerPaneWidth = 30

// Renderer owns the tcell screen and knows how to draw every editor
// surface: text area, home page, explorer, status bar and popups.
type Renderer struct {
	screen tcell.Screen
	mu     sync.Mutex
}

// New creates a renderer with a fresh tcell screen.
func New() (*Renderer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return &Renderer{screen: screen}, nil
}

// NewWithScreen creates a renderer over an existing screen. Tests use
// it with tcell's simulation screen.
func NewWithScreen(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Init initializes the terminal.
func (r *Renderer) Init() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	return nil
}

// Close restores the terminal.
func (r *Renderer) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.screen.Fini()
}

// Size returns the terminal dimensions.
func (r *Renderer) Size() (width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.screen.Size()
}

// PollEvent blocks until the next terminal event.
func (r *Renderer) PollEvent() tcell.Event {
	return r.screen.PollEvent()
}

// Sync forces a full redraw, used after terminal resizes.
func (r *Renderer) Sync() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.screen.Sync()
}

// Draw renders the complete frame for the editor's current state.
func (r *Renderer) Draw(ed *editor.Editor) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.screen.Clear()
	width, height := r.screen.Size()
	if width <= 0 || height <= 0 {
		return
	}
	textHeight := height - 1

	switch {
	case ed.ShowHome():
		r.drawHome(width, textHeight)
	case ed.Mode() == mode.FileExplorer:
		r.drawExplorer(ed, width, textHeight)
	default:
		r.drawText(ed, width, textHeight)
	}

	r.drawStatusBar(ed, width, height)
	if ed.PopupActive() {
		r.drawPopup(ed, width, textHeight)
	}
	r.placeCursor(ed, width, height)
	r.screen.Show()
}

func (r *Renderer) drawText(ed *editor.Editor, width, height int) {
	buf := ed.Buffer()
	view := ed.View()
	style := tcell.StyleDefault
	selStyle := style.Reverse(true)

	sel, selActive := ed.Selection()
	selRow, selStart, selEnd := -1, 0, 0
	if selActive {
		selRow, selStart, selEnd = sel.Normalized()
	}

	for y := 0; y < height; y++ {
		row := view.Top + y
		if row >= buf.LineCount() {
			r.screen.SetContent(0, y, '~', nil, style.Dim(true))
			continue
		}

		line := buf.Line(row)
		for x := 0; x < width; x++ {
			col := view.Left + x
			if col >= len(line) {
				break
			}
			cellStyle := style
			if row == selRow && col >= selStart && col < selEnd {
				cellStyle = selStyle
			}
			r.screen.SetContent(x, y, rune(line[col]), nil, cellStyle)
		}
	}
}

func (r *Renderer) drawExplorer(ed *editor.Editor, width, height int) {
	expl := ed.Explorer()
	if expl == nil {
		return
	}
	style := tcell.StyleDefault
	selected := style.Reverse(true)

	r.putString(0, 0, truncate(expl.Current(), explorerPaneWidth-1), style.Bold(true))
	for i, item := range expl.Items() {
		y := i + 1
		if y >= height {
			break
		}
		name := item.Name
		if item.IsDir {
			name += "/"
		}
		itemStyle := style
		prefix := "  "
		if i == expl.Selected() {
			itemStyle = selected
			prefix = "> "
		}
		r.putString(0, y, truncate(prefix+name, explorerPaneWidth-1), itemStyle)
	}

	// Vertical divider and file preview.
	for y := 0; y < height; y++ {
		r.screen.SetContent(explorerPaneWidth, y, tcell.RuneVLine, nil, style)
	}
	previewX := explorerPaneWidth + 2
	for i, line := range ed.PreviewLines(height) {
		if i >= height {
			break
		}
		r.putString(previewX, i, truncate(line, width-previewX), style.Dim(true))
	}
}

func (r *Renderer) drawHome(width, height int) {
	style := tcell.StyleDefault
	top := (height - len(homeText)) / 2
	if top < 0 {
		top = 0
	}
	for i, line := range homeText {
		y := top + i
		if y >= height {
			break
		}
		x := (width - len(line)) / 2
		if x < 0 {
			x = 0
		}
		r.putString(x, y, line, style)
	}
}

func (r *Renderer) drawStatusBar(ed *editor.Editor, width, height int) {
	style := tcell.StyleDefault.Reverse(true)
	y := height - 1

	var text string
	switch ed.Mode() {
	case mode.Command:
		text = ":" + ed.CommandBuffer()
	case mode.Search:
		text = "/" + ed.SearchBuffer()
	default:
		text = ed.StatusText()
	}

	for x := 0; x < width; x++ {
		ch := ' '
		if x < len(text) {
			ch = rune(text[x])
		}
		r.screen.SetContent(x, y, ch, nil, style)
	}
}

func (r *Renderer) drawPopup(ed *editor.Editor, width, height int) {
	lines := ed.PopupLines()
	offset := ed.PopupOffset()

	boxWidth := width * 3 / 4
	boxHeight := height * 3 / 4
	if boxWidth < 20 {
		boxWidth = width
	}
	if boxHeight < 5 {
		boxHeight = height
	}
	left := (width - boxWidth) / 2
	top := (height - boxHeight) / 2
	style := tcell.StyleDefault

	for y := top; y < top+boxHeight; y++ {
		for x := left; x < left+boxWidth; x++ {
			ch := ' '
			switch {
			case (y == top || y == top+boxHeight-1) && (x == left || x == left+boxWidth-1):
				ch = '+'
			case y == top || y == top+boxHeight-1:
				ch = tcell.RuneHLine
			case x == left || x == left+boxWidth-1:
				ch = tcell.RuneVLine
			}
			r.screen.SetContent(x, y, ch, nil, style)
		}
	}

	inner := boxHeight - 2
	for i := 0; i < inner; i++ {
		idx := offset + i
		if idx >= len(lines) {
			break
		}
		r.putString(left+2, top+1+i, truncate(lines[idx], boxWidth-4), style)
	}
}

func (r *Renderer) placeCursor(ed *editor.Editor, width, height int) {
	if ed.PopupActive() || ed.ShowHome() || ed.Mode() == mode.FileExplorer {
		r.screen.HideCursor()
		return
	}

	switch ed.Mode() {
	case mode.Command:
		r.screen.ShowCursor(len(ed.CommandBuffer())+1, height-1)
	case mode.Search:
		r.screen.ShowCursor(len(ed.SearchBuffer())+1, height-1)
	default:
		pos := ed.Buffer().Cursor()
		view := ed.View()
		x := pos.Col - view.Left
		y := pos.Row - view.Top
		if x >= 0 && x < width && y >= 0 && y < height-1 {
			r.screen.ShowCursor(x, y)
		} else {
			r.screen.HideCursor()
		}
	}
}

func (r *Renderer) putString(x, y int, s string, style tcell.Style) {
	for i, ch := range s {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func truncate(s string, max int) string {
	if max < 0 {
		return ""
	}
	if len(s) > max {
		return s[:max]
	}
	return s
}

var homeText = []string{
	`  ____        _____    _ _ _   `,
	` |  _ \ _   _| ____|__| (_) |_ `,
	` | |_) | | | |  _| / _' | | __|`,
	` |  __/| |_| | |__| (_| | | |_ `,
	` |_|    \__, |_____\__,_|_|\__|`,
	`        |___/                  `,
	``,
	`A vim-like terminal text editor`,
	``,
	`i  insert mode    :e <file>  open`,
	`e  file explorer  :help      keys`,
	`q  quit`,
}
