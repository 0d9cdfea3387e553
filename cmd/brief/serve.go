package main

import (
	"context"
	"log/slog"

	"github.com/dusk-indust/brief/internal/config"
	"github.com/dusk-indust/brief/internal/mcptools"
	"github.com/dusk-indust/brief/internal/orchestrator"
)

// runServe exposes the pipeline as MCP tools on stdio until the client
// disconnects or ctx is cancelled.
func runServe(ctx context.Context, pipeline *orchestrator.Pipeline, s config.Settings, logger *slog.Logger) error {
	logger.Info("serving MCP on stdio", "outputDir", s.OutputDir)
	server := mcptools.NewBriefMCPServer(pipeline, s.OutputDir)
	return mcptools.RunMCPServerStdio(ctx, server)
}
