package ai

import "path/filepath"

var languageByExt = map[string]string{
	".go":   "Go",
	".py":   "Python",
	".js":   "JavaScript",
	".ts":   "TypeScript",
	".c":    "C",
	".cpp":  "C++",
	".h":    "C",
	".java": "Java",
	".rs":   "Rust",
	".rb":   "Ruby",
	".sh":   "Shell",
	".html": "HTML",
	".css":  "CSS",
	".sql":  "SQL",
	".json": "JSON",
	".yaml": "YAML",
	".yml":  "YAML",
	".md":   "Markdown",
}

// DetectLanguage guesses the programming language from a file path's
// extension. Unknown extensions report "plain text".
func DetectLanguage(path string) string {
	if lang, ok := languageByExt[filepath.Ext(path)]; ok {
		return lang
	}
	return "plain text"
}
