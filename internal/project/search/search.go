// Package search provides pattern matching over buffer lines and
// project files.
package search

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Match is one occurrence of a pattern within a set of lines.
type Match struct {
	Row int
	Col int
}

// FileMatch is one occurrence of a pattern within a project file.
type FileMatch struct {
	Path string
	Line int
	Text string
}

// sourceExtensions are the file types scanned by FindInFiles.
var sourceExtensions = map[string]bool{
	".go":   true,
	".py":   true,
	".js":   true,
	".ts":   true,
	".c":    true,
	".cpp":  true,
	".h":    true,
	".java": true,
	".rs":   true,
	".sh":   true,
	".md":   true,
	".txt":  true,
	".json": true,
	".yaml": true,
	".yml":  true,
	".toml": true,
}

// Engine performs regex searches. Patterns are case-insensitive.
type Engine struct{}

// New creates an Engine.
func New() *Engine {
	return &Engine{}
}

// compile builds the case-insensitive regexp for pattern. Empty or
// invalid patterns return nil.
func (e *Engine) compile(pattern string) *regexp.Regexp {
	if pattern == "" {
		return nil
	}
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil
	}
	return re
}

// FindAll returns every match of pattern in lines, in document order.
// An empty or invalid pattern yields no matches.
func (e *Engine) FindAll(lines []string, pattern string) []Match {
	re := e.compile(pattern)
	if re == nil {
		return nil
	}

	var matches []Match
	for row, line := range lines {
		for _, loc := range re.FindAllStringIndex(line, -1) {
			matches = append(matches, Match{Row: row, Col: loc[0]})
		}
	}
	return matches
}

// FindInFiles searches source files under dir for pattern. One
// FileMatch is reported per matching line.
func (e *Engine) FindInFiles(dir, pattern string) ([]FileMatch, error) {
	re := e.compile(pattern)
	if re == nil {
		return nil, fmt.Errorf("invalid search pattern %q", pattern)
	}

	var results []FileMatch
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != dir {
				return filepath.SkipDir
			}
			return nil
		}
		if !sourceExtensions[filepath.Ext(path)] {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		for i, line := range strings.Split(string(data), "\n") {
			if re.MatchString(line) {
				results = append(results, FileMatch{Path: path, Line: i + 1, Text: strings.TrimSpace(line)})
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", dir, err)
	}
	return results, nil
}
