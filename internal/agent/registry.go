package agent

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/dusk-indust/brief/internal/llm"
)

// AgentFactory is a constructor that creates an Agent bound to a client.
type AgentFactory func(client llm.Client, logger *slog.Logger) Agent

// Roles lists the pipeline roles in execution order.
var Roles = []Role{RoleResearch, RoleAnalysis, RoleSummary}

// Registry maps agent roles to their factory constructors. Every agent it
// spawns shares the registry's client and logger.
type Registry struct {
	mu        sync.Mutex
	client    llm.Client
	logger    *slog.Logger
	factories map[Role]AgentFactory
}

// NewRegistry creates a Registry pre-registered with all specialist agents.
func NewRegistry(client llm.Client, logger *slog.Logger) *Registry {
	r := &Registry{
		client:    client,
		logger:    logger,
		factories: make(map[Role]AgentFactory),
	}
	r.factories[RoleResearch] = func(c llm.Client, l *slog.Logger) Agent { return NewResearchAgent(c, l) }
	r.factories[RoleAnalysis] = func(c llm.Client, l *slog.Logger) Agent { return NewAnalysisAgent(c, l) }
	r.factories[RoleSummary] = func(c llm.Client, l *slog.Logger) Agent { return NewSummaryAgent(c, l) }
	return r
}

// Register replaces the factory for role.
func (r *Registry) Register(role Role, factory AgentFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[role] = factory
}

// Spawn creates a single agent by role using the registered factory.
func (r *Registry) Spawn(role Role) (Agent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	factory, ok := r.factories[role]
	if !ok {
		return nil, fmt.Errorf("no factory registered for role %q", role)
	}
	return factory(r.client, r.logger), nil
}

// SpawnAll creates one agent per role in Roles order.
func (r *Registry) SpawnAll() ([]Agent, error) {
	agents := make([]Agent, 0, len(Roles))
	for _, role := range Roles {
		ag, err := r.Spawn(role)
		if err != nil {
			return nil, err
		}
		agents = append(agents, ag)
	}
	return agents, nil
}
