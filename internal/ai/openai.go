package ai

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const (
	openaiModel = openai.ChatModelGPT4o
	groqBaseURL = "https://api.groq.com/openai/v1"
	groqModel   = "llama3-70b-8192"
)

// OpenAIProvider talks to an OpenAI-compatible chat completions API.
// Groq is served through the same provider with a different base URL.
type OpenAIProvider struct {
	client openai.Client
	name   string
	model  string
}

// NewOpenAI creates a provider for the OpenAI API.
func NewOpenAI(apiKey string) (*OpenAIProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai: %w", ErrMissingAPIKey)
	}
	return &OpenAIProvider{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		name:   "openai",
		model:  openaiModel,
	}, nil
}

// NewGroq creates a provider for Groq's OpenAI-compatible API.
func NewGroq(apiKey string) (*OpenAIProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("groq: %w", ErrMissingAPIKey)
	}
	return &OpenAIProvider{
		client: openai.NewClient(
			option.WithAPIKey(apiKey),
			option.WithBaseURL(groqBaseURL),
		),
		name:  "groq",
		model: groqModel,
	}, nil
}

// Name returns the provider name.
func (p *OpenAIProvider) Name() string { return p.name }

// Complete returns a completion for prompt.
func (p *OpenAIProvider) Complete(ctx context.Context, prompt string) (string, error) {
	return p.send(ctx, completionSystem, prompt)
}

// Chat answers question using codeContext.
func (p *OpenAIProvider) Chat(ctx context.Context, question, codeContext string) (string, error) {
	user := question
	if codeContext != "" {
		user = fmt.Sprintf("%s\n\nCurrent buffer:\n```\n%s\n```", question, codeContext)
	}
	return p.send(ctx, assistantSystem, user)
}

func (p *OpenAIProvider) send(ctx context.Context, system, user string) (string, error) {
	resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: p.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
		MaxTokens:   openai.Int(1024),
		Temperature: openai.Float(0.2),
	})
	if err != nil {
		return "", fmt.Errorf("%s request: %w", p.name, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%s request: empty response", p.name)
	}
	return resp.Choices[0].Message.Content, nil
}
