package filestore

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSplitsLines(t *testing.T) {
	st := New()
	path := writeFile(t, "alpha\nbeta\ngamma")

	lines, err := st.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []string{"alpha", "beta", "gamma"}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("expected %v, got %v", want, lines)
	}
}

func TestLoadTrailingNewline(t *testing.T) {
	st := New()
	path := writeFile(t, "alpha\nbeta\n")

	lines, err := st.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []string{"alpha", "beta"}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("expected %v, got %v", want, lines)
	}
}

func TestLoadNormalizesCRLF(t *testing.T) {
	st := New()
	path := writeFile(t, "alpha\r\nbeta\r\n")

	lines, err := st.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []string{"alpha", "beta"}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("expected %v, got %v", want, lines)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	st := New()
	path := writeFile(t, "")

	lines, err := st.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(lines, []string{""}) {
		t.Errorf("expected single empty line, got %v", lines)
	}
}

func TestLoadMissingFile(t *testing.T) {
	st := New()
	if _, err := st.Load(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	st := New()
	path := filepath.Join(t.TempDir(), "out.txt")

	lines := []string{"one", "two"}
	if err := st.Save(path, lines); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := st.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, lines) {
		t.Errorf("expected %v, got %v", lines, got)
	}
}

func TestIsFileIsDir(t *testing.T) {
	st := New()
	dir := t.TempDir()
	file := writeFile(t, "x")

	if !st.IsFile(file) {
		t.Error("expected IsFile true for regular file")
	}
	if st.IsFile(dir) {
		t.Error("expected IsFile false for directory")
	}
	if !st.IsDir(dir) {
		t.Error("expected IsDir true for directory")
	}
	if st.IsDir(file) {
		t.Error("expected IsDir false for regular file")
	}
}

func TestPreviewTruncates(t *testing.T) {
	st := New()
	path := writeFile(t, "a\nb\nc\nd\ne")

	lines := st.Preview(path, 3)
	if len(lines) != 3 {
		t.Errorf("expected 3 preview lines, got %d", len(lines))
	}
	if lines[0] != "a" || lines[2] != "c" {
		t.Errorf("unexpected preview content: %v", lines)
	}
}

func TestPreviewUnreadable(t *testing.T) {
	st := New()
	lines := st.Preview(filepath.Join(t.TempDir(), "missing.txt"), 10)
	if len(lines) != 1 {
		t.Fatalf("expected single placeholder line, got %v", lines)
	}
}
