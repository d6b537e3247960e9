package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const geminiModel = "gemini-1.5-flash"

// GeminiProvider talks to Google's Gemini API.
type GeminiProvider struct {
	apiKey string
	model  string
}

// NewGemini creates a Gemini provider with the given API key.
func NewGemini(apiKey string) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: %w", ErrMissingAPIKey)
	}
	return &GeminiProvider{apiKey: apiKey, model: geminiModel}, nil
}

// Name returns the provider name.
func (p *GeminiProvider) Name() string { return "gemini" }

// Complete returns a completion for prompt.
func (p *GeminiProvider) Complete(ctx context.Context, prompt string) (string, error) {
	return p.send(ctx, completionSystem+"\n\n"+prompt)
}

// Chat answers question using codeContext.
func (p *GeminiProvider) Chat(ctx context.Context, question, codeContext string) (string, error) {
	user := question
	if codeContext != "" {
		user = fmt.Sprintf("%s\n\nCurrent buffer:\n```\n%s\n```", question, codeContext)
	}
	return p.send(ctx, assistantSystem+"\n\n"+user)
}

func (p *GeminiProvider) send(ctx context.Context, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(p.apiKey))
	if err != nil {
		return "", fmt.Errorf("gemini client: %w", err)
	}
	defer client.Close()

	resp, err := client.GenerativeModel(p.model).GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini request: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini request: empty response")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String(), nil
}
