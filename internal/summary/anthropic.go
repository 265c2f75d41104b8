package summary

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// implements Summarizer using Anthropic Claude
type AnthropicSummarizer struct {
	client  anthropic.Client
	model   anthropic.Model
	options Options
}

func NewAnthropicSummarizer(apiKey string, opts Options) (*AnthropicSummarizer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client := anthropic.NewClient(option.WithAPIKey(apiKey))

	model := anthropic.Model(opts.Model)
	if opts.Model == "" {
		model = anthropic.ModelClaudeHaiku4_5
	}

	return &AnthropicSummarizer{
		client:  client,
		model:   model,
		options: opts,
	}, nil
}

func (s *AnthropicSummarizer) Summarize(
	ctx context.Context,
	transcript string,
) (string, error) {
	if strings.TrimSpace(transcript) == "" {
		return "", fmt.Errorf("transcript is empty")
	}

	prompt := BuildPrompt(s.options, transcript)

	message, err := s.client.Messages.New(
		ctx,
		anthropic.MessageNewParams{
			Model:     s.model,
			MaxTokens: 1024,
			Messages: []anthropic.MessageParam{
				anthropic.NewUserMessage(
					anthropic.NewTextBlock(prompt),
				),
			},
		},
	)
	if err != nil {
		return "", fmt.Errorf("summarization failed: %w", err)
	}

	return parseResponse(message)
}

func parseResponse(message *anthropic.Message) (string, error) {
	if message == nil || len(message.Content) == 0 {
		return "", fmt.Errorf("empty response from Anthropic")
	}

	var responseText string
	for _, block := range message.Content {
		if block.Type == "text" {
			responseText += block.Text
		}
	}

	if responseText == "" {
		return "", fmt.Errorf("no text in Anthropic response")
	}

	return strings.TrimSpace(responseText), nil
}
