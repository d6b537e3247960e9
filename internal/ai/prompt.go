package ai

import (
	"fmt"
	"strings"
)

// BuildCompletionPrompt assembles the completion prompt for a buffer.
// The cursor position is marked inline with |CURSOR| so the model knows
// exactly where to continue.
func BuildCompletionPrompt(lines []string, row, col int, language string) string {
	marked := make([]string, len(lines))
	copy(marked, lines)

	if row >= 0 && row < len(marked) {
		line := marked[row]
		if col < 0 {
			col = 0
		}
		if col > len(line) {
			col = len(line)
		}
		marked[row] = line[:col] + "|CURSOR|" + line[col:]
	}

	return fmt.Sprintf("Language: %s\n\n```\n%s\n```", language, strings.Join(marked, "\n"))
}
