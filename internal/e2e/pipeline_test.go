//go:build e2e

package e2e

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dusk-indust/brief/internal/agent"
	"github.com/dusk-indust/brief/internal/config"
	"github.com/dusk-indust/brief/internal/export"
	"github.com/dusk-indust/brief/internal/llm"
	"github.com/dusk-indust/brief/internal/orchestrator"
	"github.com/dusk-indust/brief/internal/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPipeline_E2E_AllFormats runs the pipeline on fixture outputs, saves
// the report in every format, and checks each file's structure.
func TestPipeline_E2E_AllFormats(t *testing.T) {
	client := fixtureClient(t)
	reg := agent.NewRegistry(client, nil)
	pipeline, err := orchestrator.NewPipelineFromRegistry(orchestrator.DefaultConfig(), reg, nil)
	require.NoError(t, err)
	defer pipeline.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	run, err := pipeline.Run(ctx, fixtureTopic)
	require.NoError(t, err)
	require.Len(t, run.Stages, 3)
	assert.Empty(t, orchestrator.CheckReport(run.FinalReport()), "fixture summary has every expected heading")

	// The summary prompt carries both earlier outputs by default.
	prompts := client.Prompts()
	require.Len(t, prompts, 3)
	assert.Contains(t, prompts[1], run.Research)
	assert.Contains(t, prompts[2], run.Research)
	assert.Contains(t, prompts[2], run.Analysis)

	outputDir := t.TempDir()
	for _, f := range []export.Format{export.FormatText, export.FormatJSON, export.FormatMarkdown} {
		path := filepath.Join(outputDir, export.DefaultFilename(run.Topic, f))
		require.NoError(t, export.Save(path, f, run), "save %s", f)
	}

	reports, err := status.ListReports(outputDir)
	require.NoError(t, err)
	require.Len(t, reports, 3)
	for _, r := range reports {
		assert.Equal(t, fixtureTopic, r.Topic)
		assert.Greater(t, r.Size, int64(0))
	}

	data, err := os.ReadFile(filepath.Join(outputDir, "research_report_renewable_energy.json"))
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, run.ID, decoded["id"])
	assert.Equal(t, run.Summary, decoded["finalSummary"])

	md, err := os.ReadFile(filepath.Join(outputDir, "research_report_renewable_energy.md"))
	require.NoError(t, err)
	for _, heading := range []string{"## Research Data", "## Analysis", "## Final Summary", "```mermaid"} {
		assert.Contains(t, string(md), heading)
	}
}

// TestPipeline_E2E_Live runs the real pipeline against the configured
// provider. It is skipped unless a credential is available.
func TestPipeline_E2E_Live(t *testing.T) {
	env, err := config.ProcessEnv(filepath.Join("..", "..", config.DefaultEnvFile))
	require.NoError(t, err)

	settings, err := config.Resolve(nil, env, config.Overrides{})
	require.NoError(t, err)
	if err := settings.Validate(); err != nil {
		t.Skipf("no live credential: %v", err)
	}

	client, err := llm.New(settings.LLM, nil)
	require.NoError(t, err)

	pipeline, err := orchestrator.NewPipelineFromRegistry(settings.PipelineConfig(), agent.NewRegistry(client, nil), nil)
	require.NoError(t, err)
	defer pipeline.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	run, err := pipeline.Run(ctx, "the history of the Go programming language")
	require.NoError(t, err)
	assert.NotEmpty(t, strings.TrimSpace(run.Research))
	assert.NotEmpty(t, strings.TrimSpace(run.Analysis))
	assert.NotEmpty(t, strings.TrimSpace(run.FinalReport()))

	for _, issue := range orchestrator.CheckReport(run.FinalReport()) {
		t.Logf("report check: %s: %s", issue.Section, issue.Description)
	}
}
