package main

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/dusk-indust/brief/internal/agent"
	"github.com/dusk-indust/brief/internal/config"
	"github.com/dusk-indust/brief/internal/llm"
	"github.com/dusk-indust/brief/internal/orchestrator"
	"github.com/lmittmann/tint"
)

// newClient builds the model client. Tests replace it.
var newClient = llm.New

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
}

// loadSettings reads brief.yml and the .env file and applies flag overrides.
func loadSettings(flags *cliFlags) (config.Settings, error) {
	project, err := config.Load(flags.ConfigDir)
	if err != nil {
		return config.Settings{}, fmt.Errorf("load config: %w", err)
	}

	env, err := projectEnv(flags.EnvFile, project)
	if err != nil {
		return config.Settings{}, err
	}

	ov := config.Overrides{
		Provider:      flags.Provider,
		Model:         flags.Model,
		BaseURL:       flags.BaseURL,
		MaxTokens:     flags.MaxTokens,
		Timeout:       flags.Timeout,
		OutputDir:     flags.OutputDir,
		Format:        flags.Format,
		SummaryInputs: flags.SummaryInputs,
		Verbose:       flags.Verbose,
	}
	if flags.set["temperature"] {
		ov.Temperature = &flags.Temperature
	}
	if flags.set["retries"] {
		ov.MaxTries = &flags.Retries
	}

	return config.Resolve(project, env, ov)
}

// projectEnv layers the process environment over the .env file named by
// the flag, then by brief.yml, then the default.
func projectEnv(envFile string, project *config.ProjectConfig) (config.Lookup, error) {
	if envFile == "" {
		envFile = project.EnvFile
	}
	if envFile == "" {
		envFile = config.DefaultEnvFile
	}
	return config.ProcessEnv(envFile)
}

func buildPipeline(s config.Settings, logger *slog.Logger) (*orchestrator.Pipeline, error) {
	client, err := newClient(s.LLM, logger)
	if err != nil {
		return nil, err
	}
	logger.Debug("model client ready",
		"provider", s.LLM.Provider,
		"model", s.LLM.Model,
		"summaryInputs", s.SummaryInputs.String(),
	)
	return orchestrator.NewPipelineFromRegistry(s.PipelineConfig(), agent.NewRegistry(client, logger), logger)
}
