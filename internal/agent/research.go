package agent

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/dusk-indust/brief/internal/llm"
)

// ResearchAgent gathers background material on a topic. It is the first
// stage of the pipeline.
type ResearchAgent struct {
	*BaseAgent
}

// NewResearchAgent creates a ResearchAgent that calls client.
func NewResearchAgent(client llm.Client, logger *slog.Logger) *ResearchAgent {
	return &ResearchAgent{
		BaseAgent: NewBaseAgent(RoleResearch, client, researchPrompt, logger),
	}
}

func researchPrompt(in Input) (string, error) {
	if strings.TrimSpace(in.Topic) == "" {
		return "", fmt.Errorf("%s agent: topic: %w", RoleResearch, ErrEmptyInput)
	}
	return ResearchPrompt(in.Topic), nil
}
