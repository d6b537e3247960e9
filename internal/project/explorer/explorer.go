// Package explorer implements the directory listing used by the file
// explorer mode.
package explorer

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Item is a single entry in the explorer listing.
type Item struct {
	Name  string
	IsDir bool
}

// Explorer walks a directory tree below a fixed root. Navigation never
// escapes the root.
type Explorer struct {
	root     string
	current  string
	selected int
	items    []Item
}

// New creates an Explorer rooted at root and lists its contents.
func New(root string) (*Explorer, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve root: %w", err)
	}
	e := &Explorer{root: abs, current: abs}
	if err := e.Refresh(); err != nil {
		return nil, err
	}
	return e, nil
}

// Refresh re-reads the current directory. Dotfiles are skipped;
// directories sort before files, each group alphabetically. A ".."
// entry is prepended when the current directory is below the root.
func (e *Explorer) Refresh() error {
	entries, err := os.ReadDir(e.current)
	if err != nil {
		return fmt.Errorf("read dir %s: %w", e.current, err)
	}

	items := make([]Item, 0, len(entries)+1)
	if e.current != e.root {
		items = append(items, Item{Name: "..", IsDir: true})
	}
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		items = append(items, Item{Name: entry.Name(), IsDir: entry.IsDir()})
	}

	start := 0
	if len(items) > 0 && items[0].Name == ".." {
		start = 1
	}
	sort.Slice(items[start:], func(i, j int) bool {
		a, b := items[start+i], items[start+j]
		if a.IsDir != b.IsDir {
			return a.IsDir
		}
		return a.Name < b.Name
	})

	e.items = items
	if e.selected >= len(e.items) {
		e.selected = len(e.items) - 1
	}
	if e.selected < 0 {
		e.selected = 0
	}
	return nil
}

// Root returns the explorer's root directory.
func (e *Explorer) Root() string { return e.root }

// Current returns the directory being listed.
func (e *Explorer) Current() string { return e.current }

// Items returns the current listing.
func (e *Explorer) Items() []Item { return e.items }

// Selected returns the index of the highlighted item.
func (e *Explorer) Selected() int { return e.selected }

// SelectedItem returns the highlighted item, or a zero Item when the
// listing is empty.
func (e *Explorer) SelectedItem() (Item, bool) {
	if len(e.items) == 0 {
		return Item{}, false
	}
	return e.items[e.selected], true
}

// SelectedPath returns the absolute path of the highlighted item. The
// ".." entry resolves to the parent directory.
func (e *Explorer) SelectedPath() (string, bool) {
	item, ok := e.SelectedItem()
	if !ok {
		return "", false
	}
	if item.Name == ".." {
		return filepath.Dir(e.current), true
	}
	return filepath.Join(e.current, item.Name), true
}

// NavigateTo changes the current directory and refreshes the listing.
func (e *Explorer) NavigateTo(dir string) error {
	prev := e.current
	e.current = dir
	e.selected = 0
	if err := e.Refresh(); err != nil {
		e.current = prev
		_ = e.Refresh()
		return err
	}
	return nil
}

// Up navigates to the parent directory. It does nothing at the root.
func (e *Explorer) Up() error {
	if e.AtRoot() {
		return nil
	}
	return e.NavigateTo(filepath.Dir(e.current))
}

// AtRoot reports whether the current directory is the root.
func (e *Explorer) AtRoot() bool { return e.current == e.root }

// MoveUp moves the selection up one item.
func (e *Explorer) MoveUp() {
	if e.selected > 0 {
		e.selected--
	}
}

// MoveDown moves the selection down one item.
func (e *Explorer) MoveDown() {
	if e.selected < len(e.items)-1 {
		e.selected++
	}
}
