package mcptools

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/dusk-indust/brief/internal/export"
	"github.com/dusk-indust/brief/internal/orchestrator"
	"github.com/dusk-indust/brief/internal/status"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// BriefService handles MCP tool calls for the brief server mode.
// It wraps an Orchestrator to run the pipeline and list saved reports.
type BriefService struct {
	pipeline  orchestrator.Orchestrator
	outputDir string
}

// NewBriefService creates a BriefService that saves reports under outputDir.
func NewBriefService(pipeline orchestrator.Orchestrator, outputDir string) *BriefService {
	return &BriefService{
		pipeline:  pipeline,
		outputDir: outputDir,
	}
}

// RunResearch runs the full pipeline for a topic. Pipeline failures are
// reported in the output with status "failed"; only invalid input is
// returned as a tool error.
func (s *BriefService) RunResearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RunResearchInput,
) (*mcp.CallToolResult, RunResearchOutput, error) {
	topic := strings.TrimSpace(input.Topic)
	if topic == "" {
		return nil, RunResearchOutput{Status: "failed", Message: "topic is required"}, fmt.Errorf("invalid topic: empty")
	}
	format, err := export.ParseFormat(input.Format)
	if err != nil {
		return nil, RunResearchOutput{Status: "failed", Topic: topic, Message: err.Error()}, err
	}

	run, err := s.pipeline.Run(ctx, topic)
	if err != nil {
		out := RunResearchOutput{
			Status:  "failed",
			Topic:   topic,
			Message: err.Error(),
		}
		if stage, ok := orchestrator.FailedStage(err); ok {
			out.FailedStage = stage.String()
		}
		return nil, out, nil
	}

	out := RunResearchOutput{
		Status:      "completed",
		RunID:       run.ID,
		Topic:       run.Topic,
		FinalReport: run.FinalReport(),
	}

	if input.Save {
		path := filepath.Join(s.outputDir, export.DefaultFilename(run.Topic, format))
		if err := export.Save(path, format, run); err != nil {
			// The report is still returned; only the save failed.
			out.Message = fmt.Sprintf("save failed: %v", err)
		} else {
			out.SavedTo = path
		}
	}

	return nil, out, nil
}

// ListReports lists saved reports, newest first.
func (s *BriefService) ListReports(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ListReportsInput,
) (*mcp.CallToolResult, ListReportsOutput, error) {
	dir := input.Dir
	if dir == "" {
		dir = s.outputDir
	}

	reports, err := status.ListReports(dir)
	if err != nil {
		return nil, ListReportsOutput{}, fmt.Errorf("list reports in %s: %w", dir, err)
	}

	out := ListReportsOutput{Reports: make([]ReportSummary, 0, len(reports))}
	for _, r := range reports {
		out.Reports = append(out.Reports, ReportSummary{
			Topic:    r.Topic,
			Path:     r.Path,
			Format:   string(r.Format),
			Size:     r.Size,
			Modified: r.ModTime.UTC().Format(time.RFC3339),
		})
	}
	return nil, out, nil
}
