package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/dusk-indust/brief/internal/orchestrator"
)

// RenderMarkdown lays a run out as a markdown document: a title, a Mermaid
// flowchart of the stage handoff, then one section per stage.
func RenderMarkdown(run *orchestrator.Run) (string, error) {
	if len(run.Stages) != len(orchestrator.Stages) {
		return "", fmt.Errorf("markdown: run has %d of %d stages", len(run.Stages), len(orchestrator.Stages))
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# Research Report: %s\n\n", run.Topic)
	fmt.Fprintf(&sb, "_Run %s, templates %s._\n\n", run.ID, run.TemplateVersion)
	sb.WriteString("```mermaid\n")
	sb.WriteString(GenerateMermaid(run))
	sb.WriteString("```\n")

	for _, res := range run.Stages {
		fmt.Fprintf(&sb, "\n## %s\n\n%s\n", titleCase(res.Stage.Title()), strings.TrimSpace(run.Output(res.Stage)))
	}
	return sb.String(), nil
}

// GenerateMermaid produces a Mermaid flowchart LR diagram of the stage
// handoff. Each node is labeled with the stage name and how long it took.
func GenerateMermaid(run *orchestrator.Run) string {
	var sb strings.Builder
	sb.WriteString("flowchart LR\n")
	sb.WriteString("  T[\"topic\"]\n")

	prev := "T"
	for i, res := range run.Stages {
		id := fmt.Sprintf("S%d", i)
		fmt.Fprintf(&sb, "  %s[\"%s (%s)\"]\n", id, res.Stage, res.Duration.Round(time.Millisecond))
		fmt.Fprintf(&sb, "  %s --> %s\n", prev, id)
		prev = id
	}
	return sb.String()
}

// titleCase turns "RESEARCH DATA" into "Research Data".
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
