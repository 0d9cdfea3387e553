package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicClient implements Client using the Anthropic Messages API.
type AnthropicClient struct {
	client      anthropic.Client
	model       anthropic.Model
	temperature float64
	maxTokens   int64
	timeout     time.Duration
	log         *slog.Logger
}

// NewAnthropicClient creates an Anthropic-backed client.
func NewAnthropicClient(s Settings, logger *slog.Logger) *AnthropicClient {
	// WithRetry is the only retry policy.
	opts := []option.RequestOption{
		option.WithAPIKey(s.APIKey),
		option.WithMaxRetries(0),
	}
	if s.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(s.BaseURL))
	}
	model := s.Model
	if model == "" {
		model = DefaultAnthropicModel
	}
	maxTokens := s.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	return &AnthropicClient{
		client:      anthropic.NewClient(opts...),
		model:       anthropic.Model(model),
		temperature: s.Temperature,
		maxTokens:   maxTokens,
		timeout:     s.Timeout,
		log:         logger,
	}
}

// Complete sends prompt to Claude and returns the concatenated text blocks.
func (c *AnthropicClient) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	c.log.Debug("Anthropic API call starting", "model", c.model, "maxTokens", c.maxTokens, "promptLen", len(prompt))

	msg, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       c.model,
		MaxTokens:   c.maxTokens,
		Temperature: anthropic.Float(c.temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})

	duration := time.Since(start)
	if err != nil {
		c.log.Debug("Anthropic API call failed", "duration", duration, "error", err)
		return "", fmt.Errorf("anthropic API error: %w", err)
	}
	c.log.Debug("Anthropic API call completed", "duration", duration, "stopReason", msg.StopReason)

	var parts []string
	for _, block := range msg.Content {
		if block.Type == "text" && block.Text != "" {
			parts = append(parts, block.Text)
		}
	}
	text := strings.Join(parts, "\n")
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
