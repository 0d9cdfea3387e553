package agent

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/dusk-indust/brief/internal/llm"
)

// AnalysisAgent extracts themes, insights and gaps from research text.
type AnalysisAgent struct {
	*BaseAgent
}

// NewAnalysisAgent creates an AnalysisAgent that calls client.
func NewAnalysisAgent(client llm.Client, logger *slog.Logger) *AnalysisAgent {
	return &AnalysisAgent{
		BaseAgent: NewBaseAgent(RoleAnalysis, client, analysisPrompt, logger),
	}
}

func analysisPrompt(in Input) (string, error) {
	if strings.TrimSpace(in.Research) == "" {
		return "", fmt.Errorf("%s agent: research: %w", RoleAnalysis, ErrEmptyInput)
	}
	return AnalysisPrompt(in.Topic, in.Research), nil
}
