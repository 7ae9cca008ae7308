// Package generator prompts a generative text model for brand design
// tokens: differentiation analysis, color palette, typography and a
// score breakdown. The model is an external collaborator — every
// exchange is JSON-shaped and a malformed response is a hard failure
// surfaced to the caller, never retried.
package generator

import (
	"context"
	"fmt"
	"os"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// CompletionRequest is one prompt for the model.
type CompletionRequest struct {
	System    string
	Prompt    string
	MaxTokens int
}

// CompletionResponse is the model's raw text reply.
type CompletionResponse struct {
	Text         string
	Model        string
	InputTokens  int
	OutputTokens int
}

// Provider abstracts the generative model behind a single
// request-response call. Implementations must not retry; the caller
// decides whether to re-invoke.
type Provider interface {
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
}

const defaultModel = "claude-sonnet-4-20250514"

// AnthropicProvider calls the Anthropic messages API.
type AnthropicProvider struct {
	client anthropic.Client
	model  string
}

// NewAnthropicProvider creates a provider. The API key falls back to
// ANTHROPIC_API_KEY; transport retries are disabled so each invocation
// is a single request-response unit.
func NewAnthropicProvider(apiKey, model string) (*AnthropicProvider, error) {
	if apiKey == "" {
		apiKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("anthropic API key not provided (set ANTHROPIC_API_KEY)")
	}
	if model == "" {
		model = defaultModel
	}
	client := anthropic.NewClient(
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	)
	return &AnthropicProvider{client: client, model: model}, nil
}

// Complete sends one prompt and returns the concatenated text blocks.
func (p *AnthropicProvider) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 4096
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: int64(maxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}

	resp, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("model request failed: %w", err)
	}

	var text string
	for _, block := range resp.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}
	if text == "" {
		return nil, fmt.Errorf("model returned no text content")
	}

	return &CompletionResponse{
		Text:         text,
		Model:        string(resp.Model),
		InputTokens:  int(resp.Usage.InputTokens),
		OutputTokens: int(resp.Usage.OutputTokens),
	}, nil
}
