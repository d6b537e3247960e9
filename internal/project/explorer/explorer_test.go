package explorer

import (
	"os"
	"path/filepath"
	"testing"
)

func makeTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	for _, dir := range []string{"src", "docs"} {
		if err := os.Mkdir(filepath.Join(root, dir), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	for _, file := range []string{"main.go", "README.md", ".hidden"} {
		if err := os.WriteFile(filepath.Join(root, file), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(root, "src", "app.go"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	return root
}

func names(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}

func TestListingOrderAndDotfiles(t *testing.T) {
	e, err := New(makeTree(t))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got := names(e.Items())
	want := []string{"docs", "src", "README.md", "main.go"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestNoParentEntryAtRoot(t *testing.T) {
	e, err := New(makeTree(t))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for _, item := range e.Items() {
		if item.Name == ".." {
			t.Error("expected no .. entry at root")
		}
	}
	if !e.AtRoot() {
		t.Error("expected AtRoot at root")
	}
}

func TestNavigateIntoAndUp(t *testing.T) {
	root := makeTree(t)
	e, err := New(root)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := e.NavigateTo(filepath.Join(e.Root(), "src")); err != nil {
		t.Fatalf("NavigateTo: %v", err)
	}
	if e.AtRoot() {
		t.Error("expected not AtRoot in subdirectory")
	}
	got := names(e.Items())
	if len(got) != 2 || got[0] != ".." || got[1] != "app.go" {
		t.Errorf("expected [.. app.go], got %v", got)
	}

	if err := e.Up(); err != nil {
		t.Fatalf("Up: %v", err)
	}
	if !e.AtRoot() {
		t.Error("expected AtRoot after Up")
	}
}

func TestUpAtRootIsNoop(t *testing.T) {
	e, err := New(makeTree(t))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	before := e.Current()
	if err := e.Up(); err != nil {
		t.Fatalf("Up: %v", err)
	}
	if e.Current() != before {
		t.Error("expected Up at root to stay put")
	}
}

func TestSelectionMovementClamps(t *testing.T) {
	e, err := New(makeTree(t))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	e.MoveUp()
	if e.Selected() != 0 {
		t.Errorf("expected selection clamped at 0, got %d", e.Selected())
	}
	for i := 0; i < 20; i++ {
		e.MoveDown()
	}
	if e.Selected() != len(e.Items())-1 {
		t.Errorf("expected selection clamped at last item, got %d", e.Selected())
	}
}

func TestSelectedPathResolvesParent(t *testing.T) {
	root := makeTree(t)
	e, err := New(root)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := e.NavigateTo(filepath.Join(e.Root(), "src")); err != nil {
		t.Fatalf("NavigateTo: %v", err)
	}

	// First item in a subdirectory is "..".
	path, ok := e.SelectedPath()
	if !ok {
		t.Fatal("expected a selected path")
	}
	if path != e.Root() {
		t.Errorf("expected .. to resolve to root %s, got %s", e.Root(), path)
	}
}

func TestNavigateToInvalidDirRestores(t *testing.T) {
	e, err := New(makeTree(t))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	before := e.Current()
	if err := e.NavigateTo(filepath.Join(before, "does-not-exist")); err == nil {
		t.Error("expected error navigating to missing directory")
	}
	if e.Current() != before {
		t.Errorf("expected current dir restored to %s, got %s", before, e.Current())
	}
}
