package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAIClient implements Client using the OpenAI chat completions API.
type OpenAIClient struct {
	client      openai.Client
	model       string
	temperature float64
	maxTokens   int64
	timeout     time.Duration
	log         *slog.Logger
}

// NewOpenAIClient creates an OpenAI-backed client. Zero-valued settings fall
// back to the package defaults.
func NewOpenAIClient(s Settings, logger *slog.Logger) *OpenAIClient {
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
		model = DefaultOpenAIModel
	}
	return &OpenAIClient{
		client:      openai.NewClient(opts...),
		model:       model,
		temperature: s.Temperature,
		maxTokens:   s.MaxTokens,
		timeout:     s.Timeout,
		log:         logger,
	}
}

// Complete sends prompt as a single user message and returns the first
// choice's content.
func (c *OpenAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(c.temperature),
	}
	if c.maxTokens > 0 {
		params.MaxTokens = openai.Int(c.maxTokens)
	}

	start := time.Now()
	c.log.Debug("OpenAI API call starting", "model", c.model, "promptLen", len(prompt))

	resp, err := c.client.Chat.Completions.New(ctx, params)
	duration := time.Since(start)
	if err != nil {
		c.log.Debug("OpenAI API call failed", "duration", duration, "error", err)
		return "", fmt.Errorf("openai API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	choice := resp.Choices[0]
	c.log.Debug("OpenAI API call completed", "duration", duration, "finishReason", choice.FinishReason)

	text := choice.Message.Content
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
