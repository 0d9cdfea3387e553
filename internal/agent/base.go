package agent

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/dusk-indust/brief/internal/llm"
)

// Compile-time interface checks.
var _ Agent = (*BaseAgent)(nil)

// PromptFunc builds the prompt for one stage from its input. It returns an
// error when the input lacks what the template needs.
type PromptFunc func(in Input) (string, error)

// BaseAgent provides the shared boilerplate for specialist agents: build the
// prompt, make one completion call, and classify the failure. Specialist
// agents embed BaseAgent and provide a PromptFunc.
type BaseAgent struct {
	role   Role
	client llm.Client
	prompt PromptFunc
	log    *slog.Logger
}

// NewBaseAgent creates a BaseAgent for role. A nil logger discards output.
func NewBaseAgent(role Role, client llm.Client, prompt PromptFunc, logger *slog.Logger) *BaseAgent {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &BaseAgent{
		role:   role,
		client: client,
		prompt: prompt,
		log:    logger.With("agent", string(role)),
	}
}

// Role returns the agent's role.
func (b *BaseAgent) Role() Role {
	return b.role
}

// Run builds the prompt and sends it to the text-generation service. Service
// failures and empty answers come back as *ServiceError.
func (b *BaseAgent) Run(ctx context.Context, in Input) (string, error) {
	prompt, err := b.prompt(in)
	if err != nil {
		return "", err
	}

	start := time.Now()
	b.log.Debug("Agent call starting", "promptLen", len(prompt))

	text, err := b.client.Complete(ctx, prompt)
	if err != nil {
		b.log.Debug("Agent call failed", "duration", time.Since(start), "error", err)
		return "", &ServiceError{Role: b.role, Err: err}
	}
	if strings.TrimSpace(text) == "" {
		return "", &ServiceError{Role: b.role, Err: llm.ErrEmptyResponse}
	}

	b.log.Debug("Agent call completed", "duration", time.Since(start), "outputLen", len(text))
	return text, nil
}
