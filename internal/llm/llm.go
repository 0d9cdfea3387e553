package llm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"
)

// ErrEmptyResponse is returned when the provider answers with no text.
var ErrEmptyResponse = errors.New("llm: empty response")

// Client generates text for a single prompt.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Provider names a text-generation backend.
type Provider string

const (
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
)

// Defaults used when no model or sampling settings are configured.
const (
	DefaultOpenAIModel    = "gpt-3.5-turbo"
	DefaultAnthropicModel = "claude-sonnet-4-5"
	DefaultTemperature    = 0.7
	DefaultMaxTokens      = 2048
	DefaultTimeout        = 2 * time.Minute
)

// Settings configures a Client. It is built by the config package and passed
// in explicitly; nothing here reads the environment.
type Settings struct {
	Provider    Provider
	Model       string
	APIKey      string
	BaseURL     string
	Temperature float64
	MaxTokens   int64
	Timeout     time.Duration
	MaxTries    uint
}

// New returns a Client for s.Provider, wrapped with retries when
// s.MaxTries > 1.
func New(s Settings, logger *slog.Logger) (Client, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	var c Client
	switch s.Provider {
	case ProviderOpenAI, "":
		c = NewOpenAIClient(s, logger)
	case ProviderAnthropic:
		c = NewAnthropicClient(s, logger)
	default:
		return nil, fmt.Errorf("llm: unknown provider %q", s.Provider)
	}

	return WithRetry(c, s.MaxTries, logger), nil
}

// DefaultModel returns the model used for p when none is configured.
func DefaultModel(p Provider) string {
	if p == ProviderAnthropic {
		return DefaultAnthropicModel
	}
	return DefaultOpenAIModel
}

// MaxTemperature returns the highest sampling temperature p accepts.
func MaxTemperature(p Provider) float64 {
	if p == ProviderAnthropic {
		return 1.0
	}
	return 2.0
}

// withTimeout derives a per-call context when d is positive.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
