package orchestrator

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/dusk-indust/brief/internal/agent"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// Compile-time interface checks.
var _ Orchestrator = (*Pipeline)(nil)

// Pipeline implements Orchestrator. It runs the research, analysis and
// summary agents strictly in that order, handing each stage's output to the
// next, and stops at the first failure.
//
// A Pipeline holds no per-run state and may run several topics at once.
type Pipeline struct {
	cfg      Config
	agents   map[Stage]agent.Agent
	progress *ProgressReporter
	log      *slog.Logger
	clock    clockwork.Clock
}

// NewPipeline creates a Pipeline from one agent per stage.
func NewPipeline(cfg Config, research, analysis, summary agent.Agent, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	clock := cfg.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Pipeline{
		cfg: cfg,
		agents: map[Stage]agent.Agent{
			StageResearch: research,
			StageAnalysis: analysis,
			StageSummary:  summary,
		},
		progress: NewProgressReporter(),
		log:      logger,
		clock:    clock,
	}
}

// NewPipelineFromRegistry spawns the three stage agents from reg.
func NewPipelineFromRegistry(cfg Config, reg *agent.Registry, logger *slog.Logger) (*Pipeline, error) {
	agents, err := reg.SpawnAll()
	if err != nil {
		return nil, fmt.Errorf("pipeline: spawn agents: %w", err)
	}
	return NewPipeline(cfg, agents[0], agents[1], agents[2], logger), nil
}

// ---------------------------------------------------------------------------
// Orchestrator interface
// ---------------------------------------------------------------------------

// Run executes all three stages for topic. A blank topic fails with
// ErrEmptyTopic before any stage runs. A stage failure is returned as a
// *StageError and no later stage is invoked.
func (p *Pipeline) Run(ctx context.Context, topic string) (*Run, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, ErrEmptyTopic
	}

	run := &Run{
		ID:              uuid.NewString(),
		Topic:           topic,
		TemplateVersion: agent.TemplateVersion,
		StartedAt:       p.clock.Now(),
	}
	log := p.log.With("runID", run.ID, "topic", topic)
	log.Info("Starting research pipeline")

	for _, stage := range Stages {
		p.emit(run, stage, ProgressPending, "")
	}

	for _, stage := range Stages {
		output, res, err := p.runStage(ctx, run, stage)
		if err != nil {
			log.Error("Stage failed", "stage", stage.String(), "error", err)
			return nil, &StageError{Stage: stage, Err: err}
		}
		run.Stages = append(run.Stages, res)
		switch stage {
		case StageResearch:
			run.Research = output
		case StageAnalysis:
			run.Analysis = output
		case StageSummary:
			run.Summary = output
		}
	}

	run.FinishedAt = p.clock.Now()
	log.Info("Pipeline completed", "duration", run.FinishedAt.Sub(run.StartedAt))

	if p.cfg.CheckReport {
		for _, issue := range CheckReport(run.Summary) {
			log.Warn("Final report issue", "issue", issue.Description)
		}
	}

	return run, nil
}

// Progress returns a channel that emits progress events.
func (p *Pipeline) Progress() <-chan ProgressEvent {
	return p.progress.Subscribe()
}

// Close shuts down the progress reporter. Callers should invoke this when the
// pipeline is no longer needed.
func (p *Pipeline) Close() {
	p.progress.Close()
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// runStage invokes the agent for stage with the outputs gathered so far.
func (p *Pipeline) runStage(ctx context.Context, run *Run, stage Stage) (string, StageResult, error) {
	if err := ctx.Err(); err != nil {
		p.emit(run, stage, ProgressFailed, err.Error())
		return "", StageResult{}, err
	}

	ag, ok := p.agents[stage]
	if !ok || ag == nil {
		err := fmt.Errorf("no agent for stage %s", stage)
		p.emit(run, stage, ProgressFailed, err.Error())
		return "", StageResult{}, err
	}

	p.emit(run, stage, ProgressWorking, "")
	start := p.clock.Now()

	output, err := ag.Run(ctx, p.inputFor(run, stage))
	if err != nil {
		p.emit(run, stage, ProgressFailed, err.Error())
		return "", StageResult{}, err
	}

	res := StageResult{
		Stage:    stage,
		Agent:    string(ag.Role()),
		Output:   output,
		Duration: p.clock.Since(start),
	}
	p.emit(run, stage, ProgressComplete, "")
	return output, res, nil
}

// inputFor builds a stage's input from the outputs of earlier stages. The
// analysis stage receives exactly the research output.
func (p *Pipeline) inputFor(run *Run, stage Stage) agent.Input {
	in := agent.Input{Topic: run.Topic}
	switch stage {
	case StageAnalysis:
		in.Research = run.Research
	case StageSummary:
		in.Analysis = run.Analysis
		if p.cfg.SummaryInputs == SummaryFromResearchAndAnalysis {
			in.Research = run.Research
		}
	}
	return in
}

func (p *Pipeline) emit(run *Run, stage Stage, status ProgressStatus, msg string) {
	p.progress.Emit(ProgressEvent{
		RunID:   run.ID,
		Topic:   run.Topic,
		Stage:   stage,
		Status:  status,
		Message: msg,
	})
}
