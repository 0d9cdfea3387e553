package agent

import "context"

// Agent is one pipeline stage: it turns its input into text through a single
// text-generation call.
type Agent interface {
	// Role identifies which stage the agent serves.
	Role() Role

	// Run formats the agent's template with in and returns the generated text.
	Run(ctx context.Context, in Input) (string, error)
}

// Role identifies a specialist agent type.
type Role string

const (
	RoleResearch Role = "research"
	RoleAnalysis Role = "analysis"
	RoleSummary  Role = "summary"
)

// Input carries everything a stage may read. Each agent uses only the
// fields its template needs.
type Input struct {
	Topic    string
	Research string
	Analysis string
}
