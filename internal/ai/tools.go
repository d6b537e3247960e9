package ai

import (
	"context"
	"fmt"
	"strings"
)

// ActionResult is the outcome of an assistant action.
type ActionResult struct {
	// Text is a short status line, or the popup body when Popup is set.
	Text string
	// ReplaceBuffer holds new buffer lines when the action rewrites the
	// document.
	ReplaceBuffer []string
	// Popup indicates Text should be shown in a scrollable popup rather
	// than the status bar.
	Popup bool
}

// codeActions rewrite the buffer; everything else shows a popup.
var codeActions = map[string]bool{
	"refactor":  true,
	"nl2code":   true,
	"translate": true,
	"snippet":   true,
	"testgen":   true,
}

// RunAction executes an assistant action by name. args is the
// remainder of the command line after the action name. lines and
// language describe the current buffer.
func (m *Manager) RunAction(ctx context.Context, action, args string, lines []string, language string) (ActionResult, error) {
	switch action {
	case "status":
		return ActionResult{Text: m.statusText()}, nil
	case "models":
		if len(m.providers) == 0 {
			return ActionResult{Text: "No AI providers configured"}, nil
		}
		return ActionResult{Text: "Available: " + strings.Join(m.Available(), ", ")}, nil
	case "model":
		if args == "" {
			return ActionResult{Text: "Current model: " + m.currentOrNone()}, nil
		}
		if err := m.SetCurrent(args); err != nil {
			return ActionResult{}, err
		}
		return ActionResult{Text: "Switched to " + args}, nil
	}

	prompt, err := m.buildActionPrompt(action, args, lines, language)
	if err != nil {
		return ActionResult{}, err
	}

	m.log.Info("running action %q", action)
	var response string
	if action == "chat" || action == "explain" || action == "review" {
		response, err = m.Chat(ctx, prompt, strings.Join(lines, "\n"))
	} else {
		response, err = m.Ask(ctx, prompt)
	}
	if err != nil {
		return ActionResult{}, err
	}

	if codeActions[action] {
		code := ExtractCode(response)
		if code == "" {
			return ActionResult{}, fmt.Errorf("action %s: no code in response", action)
		}
		return ActionResult{
			Text:          fmt.Sprintf("Applied %s", action),
			ReplaceBuffer: strings.Split(code, "\n"),
		}, nil
	}
	return ActionResult{Text: response, Popup: true}, nil
}

func (m *Manager) buildActionPrompt(action, args string, lines []string, language string) (string, error) {
	code := strings.Join(lines, "\n")

	switch action {
	case "refactor":
		goal := args
		if goal == "" {
			goal = "improve readability and structure without changing behavior"
		}
		return fmt.Sprintf("Refactor this %s code to %s. Return the complete rewritten file in a code block.\n\n```\n%s\n```", language, goal, code), nil
	case "doc":
		return fmt.Sprintf("Write documentation for this %s code. Cover purpose, parameters and behavior.\n\n```\n%s\n```", language, code), nil
	case "explain":
		return "Explain what this code does, section by section.", nil
	case "review":
		return "Review this code for bugs, edge cases and style problems. List concrete findings.", nil
	case "testgen":
		return fmt.Sprintf("Write unit tests for this %s code. Return only the test file in a code block.\n\n```\n%s\n```", language, code), nil
	case "nl2code":
		if args == "" {
			return "", fmt.Errorf("nl2code: description required")
		}
		return fmt.Sprintf("Write %s code for the following description. Return only code in a code block.\n\n%s", language, args), nil
	case "translate":
		if args == "" {
			return "", fmt.Errorf("translate: target language required")
		}
		return fmt.Sprintf("Translate this %s code to %s. Return only code in a code block.\n\n```\n%s\n```", language, args, code), nil
	case "snippet":
		if args == "" {
			return "", fmt.Errorf("snippet: description required")
		}
		return fmt.Sprintf("Produce a %s snippet: %s. Return only code in a code block.", language, args), nil
	case "commitmsg":
		return fmt.Sprintf("Write a conventional commit message for these changes:\n\n```\n%s\n```", code), nil
	case "search":
		if args == "" {
			return "", fmt.Errorf("search: query required")
		}
		return fmt.Sprintf("Answer this programming question concisely: %s", args), nil
	case "chat":
		if args == "" {
			return "", fmt.Errorf("chat: message required")
		}
		return args, nil
	default:
		return "", fmt.Errorf("unknown AI action %q", action)
	}
}

func (m *Manager) statusText() string {
	if len(m.providers) == 0 {
		return "AI: no providers configured (set GROQ_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY or GEMINI_API_KEY)"
	}
	return fmt.Sprintf("AI: %s (available: %s)", m.currentOrNone(), strings.Join(m.Available(), ", "))
}

func (m *Manager) currentOrNone() string {
	if m.current == "" {
		return "none"
	}
	return m.current
}
