// Package filestore reads and writes buffer contents as line slices.
package filestore

import (
	"fmt"
	"os"
	"strings"
)

// Store loads and saves documents as slices of lines. It satisfies the
// buffer.Storage interface.
type Store struct{}

// New creates a Store.
func New() *Store {
	return &Store{}
}

// Load reads the file at path and returns its lines. Line endings are
// normalized and a single trailing newline does not produce an empty
// final line. An empty file loads as one empty line.
func (s *Store) Load(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return []string{""}, nil
	}
	return strings.Split(text, "\n"), nil
}

// Save writes lines to path joined with newlines.
func (s *Store) Save(path string, lines []string) error {
	content := strings.Join(lines, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// IsFile reports whether path exists and is a regular file.
func (s *Store) IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// IsDir reports whether path exists and is a directory.
func (s *Store) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// Preview returns up to maxLines lines of the file at path. Unreadable
// files yield a single explanatory line rather than an error.
func (s *Store) Preview(path string, maxLines int) []string {
	lines, err := s.Load(path)
	if err != nil {
		return []string{"[unable to read file]"}
	}
	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
