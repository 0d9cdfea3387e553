package orchestrator

import (
	"context"
	"fmt"
	"time"
)

// Stage identifies a pipeline stage (0–2).
type Stage int

const (
	StageResearch Stage = 0
	StageAnalysis Stage = 1
	StageSummary  Stage = 2
)

// Stages lists every stage in execution order.
var Stages = []Stage{StageResearch, StageAnalysis, StageSummary}

func (s Stage) String() string {
	names := [...]string{
		"research",
		"analysis",
		"summary",
	}
	if s >= 0 && int(s) < len(names) {
		return names[s]
	}
	return "unknown"
}

// Title is the section heading used when a stage's output is written out.
func (s Stage) Title() string {
	switch s {
	case StageResearch:
		return "RESEARCH DATA"
	case StageAnalysis:
		return "ANALYSIS"
	case StageSummary:
		return "FINAL SUMMARY"
	default:
		return "UNKNOWN"
	}
}

// MarshalText encodes the stage by name.
func (s Stage) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a stage name.
func (s *Stage) UnmarshalText(b []byte) error {
	for _, st := range Stages {
		if st.String() == string(b) {
			*s = st
			return nil
		}
	}
	return fmt.Errorf("unknown stage %q", string(b))
}

// StageResult holds the output of a completed stage.
type StageResult struct {
	Stage    Stage         `json:"stage"`
	Agent    string        `json:"agent"`
	Output   string        `json:"-"`
	Duration time.Duration `json:"durationNs"`
}

// Run is the record of one pipeline invocation. It is created by
// Pipeline.Run and never mutated afterwards.
type Run struct {
	ID              string        `json:"id"`
	Topic           string        `json:"topic"`
	TemplateVersion string        `json:"templateVersion"`
	Research        string        `json:"researchData"`
	Analysis        string        `json:"analysis"`
	Summary         string        `json:"finalSummary"`
	Stages          []StageResult `json:"stages"`
	StartedAt       time.Time     `json:"startedAt"`
	FinishedAt      time.Time     `json:"finishedAt"`
}

// FinalReport returns the text produced by the last stage.
func (r *Run) FinalReport() string {
	return r.Summary
}

// Output returns the text a stage produced, or "" if it did not run.
func (r *Run) Output(stage Stage) string {
	switch stage {
	case StageResearch:
		return r.Research
	case StageAnalysis:
		return r.Analysis
	case StageSummary:
		return r.Summary
	default:
		return ""
	}
}

// Section is a named chunk of report output.
type Section struct {
	Name    string // section identifier (e.g., "research")
	Content string
}

// ProgressEvent is emitted to the user during pipeline execution.
type ProgressEvent struct {
	RunID   string
	Topic   string
	Stage   Stage
	Status  ProgressStatus
	Message string
}

// ProgressStatus is the state of a stage within a run.
type ProgressStatus string

const (
	ProgressPending  ProgressStatus = "pending"
	ProgressWorking  ProgressStatus = "working"
	ProgressComplete ProgressStatus = "complete"
	ProgressFailed   ProgressStatus = "failed"
)

// Orchestrator coordinates the research pipeline.
type Orchestrator interface {
	// Run executes every stage in order for topic and returns the finished run.
	Run(ctx context.Context, topic string) (*Run, error)

	// Progress returns a channel that emits progress events.
	Progress() <-chan ProgressEvent
}
