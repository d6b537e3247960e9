// Package ai integrates language-model providers for code completion
// and editor assistant actions.
package ai

import (
	"context"
	"errors"
)

// Sentinel errors for provider management.
var (
	// ErrNoProvider indicates no provider is configured or available.
	ErrNoProvider = errors.New("no AI provider available")
	// ErrMissingAPIKey indicates the provider's API key is not set.
	ErrMissingAPIKey = errors.New("missing API key")
	// ErrUnknownProvider indicates the named provider is not registered.
	ErrUnknownProvider = errors.New("unknown AI provider")
)

// Provider is a language-model backend.
type Provider interface {
	// Name returns the provider's registry name.
	Name() string
	// Complete returns raw completion text for a prompt.
	Complete(ctx context.Context, prompt string) (string, error)
	// Chat answers a question with the current buffer as context.
	Chat(ctx context.Context, question, codeContext string) (string, error)
}

const (
	completionSystem = "You are a code completion engine. Continue the code at the |CURSOR| marker. Respond with code only, inside a fenced code block, with no commentary."
	assistantSystem  = "You are a concise programming assistant embedded in a terminal text editor. Answer briefly and precisely."
)
