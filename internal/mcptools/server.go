package mcptools

import (
	"context"

	"github.com/dusk-indust/brief/internal/orchestrator"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// version is set by the linker at build time.
var version = "dev"

// NewBriefMCPServer creates an MCP server with the brief tools registered:
// run_research and list_reports.
func NewBriefMCPServer(pipeline orchestrator.Orchestrator, outputDir string) *mcp.Server {
	svc := NewBriefService(pipeline, outputDir)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "brief",
		Version: version,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "run_research",
		Description: "Research a topic with three chained agents (research, analysis, summary) and return the final report. Optionally saves the full report to disk.",
	}, svc.RunResearch)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_reports",
		Description: "List saved research reports, newest first.",
	}, svc.ListReports)

	return server
}

// RunMCPServerStdio runs the MCP server on stdio transport, blocking until
// stdin is closed or the context is cancelled.
func RunMCPServerStdio(ctx context.Context, server *mcp.Server) error {
	return server.Run(ctx, &mcp.StdioTransport{})
}
