package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const (
	anthropicModel     = "claude-sonnet-4-20250514"
	anthropicMaxTokens = 1024
)

// AnthropicExtractor extracts bulletin words using the Anthropic Messages API.
type AnthropicExtractor struct {
	messages anthropic.MessageService
}

// NewAnthropicExtractor creates an extractor from an API key.
func NewAnthropicExtractor(apiKey string) (*AnthropicExtractor, error) {
	if apiKey == "" {
		return nil, errors.New("anthropic API key not configured; add your key to the .env file")
	}

	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &AnthropicExtractor{
		messages: client.Messages,
	}, nil
}

// ExtractWords asks the model for bingo-worthy words and parses the JSON reply.
func (e *AnthropicExtractor) ExtractWords(ctx context.Context, bulletinText string) ([]string, error) {
	system, user := extractPrompts(bulletinText)

	message, err := e.messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(anthropicModel),
		MaxTokens: anthropicMaxTokens,
		System: []anthropic.TextBlockParam{
			{Text: system},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(user)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("anthropic messages: %w", err)
	}

	var text strings.Builder
	for _, block := range message.Content {
		if b, ok := block.AsAny().(anthropic.TextBlock); ok {
			text.WriteString(b.Text)
		}
	}
	if text.Len() == 0 {
		return nil, errors.New("empty anthropic response")
	}

	return parseWordList(text.String())
}
