package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const anthropicModel = anthropic.ModelClaudeSonnet4_20250514

// AnthropicProvider talks to the Anthropic Messages API.
type AnthropicProvider struct {
	client anthropic.Client
	model  anthropic.Model
}

// NewAnthropic creates an Anthropic provider with the given API key.
func NewAnthropic(apiKey string) (*AnthropicProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("anthropic: %w", ErrMissingAPIKey)
	}
	return &AnthropicProvider{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:  anthropicModel,
	}, nil
}

// Name returns the provider name.
func (p *AnthropicProvider) Name() string { return "anthropic" }

// Complete returns a completion for prompt.
func (p *AnthropicProvider) Complete(ctx context.Context, prompt string) (string, error) {
	return p.send(ctx, completionSystem, prompt)
}

// Chat answers question using codeContext.
func (p *AnthropicProvider) Chat(ctx context.Context, question, codeContext string) (string, error) {
	user := question
	if codeContext != "" {
		user = fmt.Sprintf("%s\n\nCurrent buffer:\n```\n%s\n```", question, codeContext)
	}
	return p.send(ctx, assistantSystem, user)
}

func (p *AnthropicProvider) send(ctx context.Context, system, user string) (string, error) {
	msg, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     p.model,
		MaxTokens: 1024,
		System: []anthropic.TextBlockParam{
			{Text: system},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(user)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic request: %w", err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	return sb.String(), nil
}
