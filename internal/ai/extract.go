package ai

import (
	"regexp"
	"strings"
)

var fenceRE = regexp.MustCompile("(?s)```[a-zA-Z0-9_+-]*\n?(.*?)```")

// ExtractCode pulls code out of a model response. Fenced code blocks
// are preferred; a response without fences is returned trimmed as-is.
func ExtractCode(response string) string {
	matches := fenceRE.FindAllStringSubmatch(response, -1)
	if len(matches) == 0 {
		return strings.TrimSpace(response)
	}

	parts := make([]string, 0, len(matches))
	for _, m := range matches {
		parts = append(parts, strings.Trim(m[1], "\n"))
	}
	return strings.Join(parts, "\n")
}
