package agent

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/dusk-indust/brief/internal/llm"
)

// SummaryAgent writes the final structured report. It always reads the
// analysis; it reads the research only when Input.Research is set.
type SummaryAgent struct {
	*BaseAgent
}

// NewSummaryAgent creates a SummaryAgent that calls client.
func NewSummaryAgent(client llm.Client, logger *slog.Logger) *SummaryAgent {
	return &SummaryAgent{
		BaseAgent: NewBaseAgent(RoleSummary, client, summaryPrompt, logger),
	}
}

func summaryPrompt(in Input) (string, error) {
	if strings.TrimSpace(in.Analysis) == "" {
		return "", fmt.Errorf("%s agent: analysis: %w", RoleSummary, ErrEmptyInput)
	}
	return SummaryPrompt(in.Topic, in.Research, in.Analysis), nil
}
