package agent

import (
	"context"
	"log/slog"
	"testing"

	"github.com/dusk-indust/brief/internal/llm"
	"github.com/dusk-indust/brief/internal/llm/llmtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_SpawnEachRole(t *testing.T) {
	for _, role := range Roles {
		t.Run(string(role), func(t *testing.T) {
			reg := NewRegistry(llmtest.NewScripted(), nil)
			ag, err := reg.Spawn(role)
			require.NoError(t, err)
			require.NotNil(t, ag)
			assert.Equal(t, role, ag.Role())
		})
	}
}

func TestRegistry_SpawnUnknownRole(t *testing.T) {
	reg := NewRegistry(llmtest.NewScripted(), nil)
	ag, err := reg.Spawn(Role("nonexistent"))
	require.Error(t, err)
	assert.Nil(t, ag)
	assert.Contains(t, err.Error(), "nonexistent")
}

func TestRegistry_SpawnAll_Order(t *testing.T) {
	reg := NewRegistry(llmtest.NewScripted(), nil)
	agents, err := reg.SpawnAll()
	require.NoError(t, err)
	require.Len(t, agents, 3)
	assert.Equal(t, RoleResearch, agents[0].Role())
	assert.Equal(t, RoleAnalysis, agents[1].Role())
	assert.Equal(t, RoleSummary, agents[2].Role())
}

func TestRegistry_SharedClient(t *testing.T) {
	client := llmtest.NewScripted("a", "b")
	reg := NewRegistry(client, nil)

	research, err := reg.Spawn(RoleResearch)
	require.NoError(t, err)
	analysis, err := reg.Spawn(RoleAnalysis)
	require.NoError(t, err)

	_, err = research.Run(context.Background(), Input{Topic: "t"})
	require.NoError(t, err)
	_, err = analysis.Run(context.Background(), Input{Topic: "t", Research: "a"})
	require.NoError(t, err)

	assert.Equal(t, 2, client.Calls())
}

func TestRegistry_Register_Overrides(t *testing.T) {
	reg := NewRegistry(llmtest.NewScripted(), nil)
	custom := llmtest.NewScripted("custom")
	reg.Register(RoleSummary, func(_ llm.Client, l *slog.Logger) Agent {
		return NewSummaryAgent(custom, l)
	})

	ag, err := reg.Spawn(RoleSummary)
	require.NoError(t, err)
	got, err := ag.Run(context.Background(), Input{Topic: "t", Analysis: "x"})
	require.NoError(t, err)
	assert.Equal(t, "custom", got)
}
