package ai

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/THAMIZH-ARASU/PyEdit-A-Vim-like-Terminal-Text-Editor/internal/logging"
)

// providerOrder is the preference order when picking an initial
// provider.
var providerOrder = []string{"groq", "openai", "anthropic", "gemini"}

// Manager owns the registered providers and dispatches requests to the
// current one.
type Manager struct {
	providers map[string]Provider
	current   string
	log       *logging.Logger
}

// NewManager builds a Manager from the API keys present in the
// environment. GROQ_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY and
// GEMINI_API_KEY each enable their provider. preferred selects the
// starting provider when its key is set.
func NewManager(preferred string, log *logging.Logger) *Manager {
	if log == nil {
		log = logging.Null
	}
	m := &Manager{
		providers: make(map[string]Provider),
		log:       log.WithComponent("ai"),
	}

	if key := os.Getenv("GROQ_API_KEY"); key != "" {
		if p, err := NewGroq(key); err == nil {
			m.providers[p.Name()] = p
		}
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		if p, err := NewOpenAI(key); err == nil {
			m.providers[p.Name()] = p
		}
	}
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		if p, err := NewAnthropic(key); err == nil {
			m.providers[p.Name()] = p
		}
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		if p, err := NewGemini(key); err == nil {
			m.providers[p.Name()] = p
		}
	}

	if _, ok := m.providers[preferred]; ok {
		m.current = preferred
	} else {
		for _, name := range providerOrder {
			if _, ok := m.providers[name]; ok {
				m.current = name
				break
			}
		}
	}

	m.log.Info("initialized with %d provider(s), current=%q", len(m.providers), m.current)
	return m
}

// Current returns the active provider's name, or "" when none is
// available.
func (m *Manager) Current() string { return m.current }

// Available returns the registered provider names, sorted.
func (m *Manager) Available() []string {
	names := make([]string, 0, len(m.providers))
	for name := range m.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetCurrent switches the active provider.
func (m *Manager) SetCurrent(name string) error {
	if _, ok := m.providers[name]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownProvider, name)
	}
	m.current = name
	m.log.Info("switched provider to %q", name)
	return nil
}

func (m *Manager) provider() (Provider, error) {
	if m.current == "" {
		return nil, ErrNoProvider
	}
	p, ok := m.providers[m.current]
	if !ok {
		return nil, ErrNoProvider
	}
	return p, nil
}

// Suggest asks the current provider to complete the buffer at the
// cursor and returns the extracted code.
func (m *Manager) Suggest(ctx context.Context, lines []string, row, col int, language string) (string, error) {
	p, err := m.provider()
	if err != nil {
		return "", err
	}

	prompt := BuildCompletionPrompt(lines, row, col, language)
	m.log.Debug("requesting completion from %q at %d,%d", p.Name(), row, col)

	raw, err := p.Complete(ctx, prompt)
	if err != nil {
		m.log.Error("completion failed: %v", err)
		return "", err
	}
	return ExtractCode(raw), nil
}

// Ask sends an arbitrary prompt to the current provider and returns
// the raw response.
func (m *Manager) Ask(ctx context.Context, prompt string) (string, error) {
	p, err := m.provider()
	if err != nil {
		return "", err
	}
	return p.Complete(ctx, prompt)
}

// Chat answers a question with the buffer as context.
func (m *Manager) Chat(ctx context.Context, question, codeContext string) (string, error) {
	p, err := m.provider()
	if err != nil {
		return "", err
	}
	return p.Chat(ctx, question, codeContext)
}
