package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dusk-indust/brief/internal/orchestrator"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRun() *orchestrator.Run {
	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return &orchestrator.Run{
		ID:              "run-1",
		Topic:           "quantum computing",
		TemplateVersion: "v1",
		Research:        "research body",
		Analysis:        "analysis body",
		Summary:         "summary body",
		Stages: []orchestrator.StageResult{
			{Stage: orchestrator.StageResearch, Agent: "research", Duration: 1500 * time.Millisecond},
			{Stage: orchestrator.StageAnalysis, Agent: "analysis", Duration: 2 * time.Second},
			{Stage: orchestrator.StageSummary, Agent: "summary", Duration: 3 * time.Second},
		},
		StartedAt:  start,
		FinishedAt: start.Add(7 * time.Second),
	}
}

func TestRenderText_Layout(t *testing.T) {
	got, err := RenderText(testRun())
	require.NoError(t, err)

	rule := strings.Repeat("=", 50)
	want := "RESEARCH REPORT: quantum computing\n" +
		rule + "\n\n" +
		"RESEARCH DATA:\nresearch body" +
		"\n\n" + rule + "\n\n" +
		"ANALYSIS:\nanalysis body" +
		"\n\n" + rule + "\n\n" +
		"FINAL SUMMARY:\nsummary body"
	assert.Equal(t, want, got)
}

func TestRenderJSON(t *testing.T) {
	got, err := RenderJSON(testRun())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(got), &decoded))
	assert.Equal(t, "quantum computing", decoded["topic"])
	assert.Equal(t, "summary body", decoded["finalSummary"])
	assert.Equal(t, "research body", decoded["researchData"])
	assert.NotEmpty(t, decoded["exportedAt"])

	stages, ok := decoded["stages"].([]any)
	require.True(t, ok)
	require.Len(t, stages, 3)
	assert.Equal(t, "research", stages[0].(map[string]any)["stage"])
}

func TestRenderJSON_Clock(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC))

	first, err := RenderJSON(testRun(), WithClock(clock))
	require.NoError(t, err)
	second, err := Render(testRun(), FormatJSON, WithClock(clock))
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Contains(t, first, `"exportedAt": "2026-03-04T05:06:07Z"`)

	path := filepath.Join(t.TempDir(), "r.json")
	require.NoError(t, Save(path, FormatJSON, testRun(), WithClock(clock)))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, first, string(data))
}

func TestRenderMarkdown(t *testing.T) {
	got, err := RenderMarkdown(testRun())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(got, "# Research Report: quantum computing\n"))
	assert.Contains(t, got, "```mermaid\nflowchart LR\n")
	assert.Contains(t, got, `S0["research (1.5s)"]`)
	assert.Contains(t, got, "T --> S0")
	assert.Contains(t, got, "S1 --> S2")
	assert.Contains(t, got, "## Research Data\n\nresearch body\n")
	assert.Contains(t, got, "## Final Summary\n\nsummary body\n")
}

func TestRenderMarkdown_IncompleteRun(t *testing.T) {
	run := testRun()
	run.Stages = run.Stages[:1]
	_, err := RenderMarkdown(run)
	require.Error(t, err)
}

func TestDefaultFilename(t *testing.T) {
	tests := []struct {
		topic  string
		format Format
		want   string
	}{
		{topic: "quantum computing", format: FormatText, want: "research_report_quantum_computing.txt"},
		{topic: "AI/ML trends", format: FormatJSON, want: "research_report_AIML_trends.json"},
		{topic: "  go  ", format: FormatMarkdown, want: "research_report_go.md"},
		{topic: "..", format: FormatText, want: "research_report_untitled.txt"},
	}
	for _, tt := range tests {
		t.Run(tt.topic, func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultFilename(tt.topic, tt.format))
		})
	}
}

func TestParseFormatAndFromPath(t *testing.T) {
	f, err := ParseFormat("md")
	require.NoError(t, err)
	assert.Equal(t, FormatMarkdown, f)

	_, err = ParseFormat("pdf")
	assert.Error(t, err)

	assert.Equal(t, FormatJSON, FormatFromPath("out/report.json"))
	assert.Equal(t, FormatMarkdown, FormatFromPath("report.MD"))
	assert.Equal(t, FormatText, FormatFromPath("report.txt"))
	assert.Equal(t, FormatText, FormatFromPath("report.pdf"))
}

func TestSave_CreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "report.txt")
	require.NoError(t, Save(path, FormatText, testRun()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "RESEARCH REPORT: quantum computing"))
}

func TestSave_WriteError(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	// A regular file where a directory is expected makes MkdirAll fail.
	err := Save(filepath.Join(blocker, "report.txt"), FormatText, testRun())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mkdir")
}
