package config

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dusk-indust/brief/internal/export"
	"github.com/dusk-indust/brief/internal/llm"
	"github.com/dusk-indust/brief/internal/orchestrator"
)

// ErrMissingCredential is returned by Validate when no API key is set for
// the selected provider.
var ErrMissingCredential = errors.New("missing API credential")

// Environment variables read by Resolve.
const (
	EnvProvider      = "BRIEF_PROVIDER"
	EnvModel         = "BRIEF_MODEL"
	EnvOutputDir     = "BRIEF_OUTPUT_DIR"
	EnvOpenAIKey     = "OPENAI_API_KEY"
	EnvOpenAIBaseURL = "OPENAI_BASE_URL"
	EnvAnthropicKey  = "ANTHROPIC_API_KEY"
	EnvAnthropicURL  = "ANTHROPIC_BASE_URL"
	EnvTemperature   = "BRIEF_TEMPERATURE"
	EnvSummaryInputs = "BRIEF_SUMMARY_INPUTS"
)

const defaultOutputDir = "."

// Settings is the fully resolved configuration for one invocation. It is
// passed explicitly to the components that need it.
type Settings struct {
	LLM           llm.Settings
	OutputDir     string
	Format        export.Format
	SummaryInputs orchestrator.SummaryInputs
	Verbose       bool
}

// Overrides are values set on the command line. Zero values mean "not set".
type Overrides struct {
	Provider      string
	Model         string
	BaseURL       string
	Temperature   *float64
	MaxTokens     int64
	Timeout       time.Duration
	MaxTries      *uint
	OutputDir     string
	Format        string
	SummaryInputs string
	Verbose       bool
}

// Resolve merges, from highest to lowest precedence, flag overrides, the
// environment (process then .env, via env), the project file, and defaults.
func Resolve(project *ProjectConfig, env Lookup, ov Overrides) (Settings, error) {
	if project == nil {
		project = &ProjectConfig{}
	}
	if env == nil {
		env = func(string) (string, bool) { return "", false }
	}
	get := func(key string) string {
		v, _ := env(key)
		return v
	}

	provider := llm.Provider(first(ov.Provider, get(EnvProvider), project.Provider, string(llm.ProviderOpenAI)))

	var apiKey, baseURL string
	switch provider {
	case llm.ProviderOpenAI:
		apiKey = get(EnvOpenAIKey)
		baseURL = first(ov.BaseURL, get(EnvOpenAIBaseURL), project.BaseURL)
	case llm.ProviderAnthropic:
		apiKey = get(EnvAnthropicKey)
		baseURL = first(ov.BaseURL, get(EnvAnthropicURL), project.BaseURL)
	default:
		return Settings{}, fmt.Errorf("config: unknown provider %q", provider)
	}

	temperature := llm.DefaultTemperature
	if project.Temperature != nil {
		temperature = *project.Temperature
	}
	if v := get(EnvTemperature); v != "" {
		t, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Settings{}, fmt.Errorf("config: %s: %w", EnvTemperature, err)
		}
		temperature = t
	}
	if ov.Temperature != nil {
		temperature = *ov.Temperature
	}

	maxTries := project.MaxTries
	if ov.MaxTries != nil {
		maxTries = *ov.MaxTries
	}

	format, err := export.ParseFormat(first(ov.Format, project.Format))
	if err != nil {
		return Settings{}, fmt.Errorf("config: %w", err)
	}

	inputs, err := orchestrator.ParseSummaryInputs(first(ov.SummaryInputs, get(EnvSummaryInputs), project.SummaryInputs))
	if err != nil {
		return Settings{}, fmt.Errorf("config: %w", err)
	}

	return Settings{
		LLM: llm.Settings{
			Provider:    provider,
			Model:       first(ov.Model, get(EnvModel), project.Model, llm.DefaultModel(provider)),
			APIKey:      apiKey,
			BaseURL:     baseURL,
			Temperature: temperature,
			MaxTokens:   firstPositive(ov.MaxTokens, project.MaxTokens, llm.DefaultMaxTokens),
			Timeout:     firstPositive(ov.Timeout, project.Timeout, llm.DefaultTimeout),
			MaxTries:    maxTries,
		},
		OutputDir:     first(ov.OutputDir, get(EnvOutputDir), project.OutputDir, defaultOutputDir),
		Format:        format,
		SummaryInputs: inputs,
		Verbose:       ov.Verbose || project.Verbose,
	}, nil
}

// Validate checks the settings before any stage runs.
func (s Settings) Validate() error {
	if s.LLM.APIKey == "" {
		return fmt.Errorf("%w: set %s in the environment or .env file", ErrMissingCredential, APIKeyEnv(s.LLM.Provider))
	}
	if limit := llm.MaxTemperature(s.LLM.Provider); s.LLM.Temperature < 0 || s.LLM.Temperature > limit {
		return fmt.Errorf("config: temperature %.2f out of range [0, %.0f] for %s", s.LLM.Temperature, limit, s.LLM.Provider)
	}
	return nil
}

// PipelineConfig derives the orchestrator configuration.
func (s Settings) PipelineConfig() orchestrator.Config {
	return orchestrator.Config{
		SummaryInputs: s.SummaryInputs,
		CheckReport:   true,
	}
}

// APIKeyEnv names the environment variable holding the key for p.
func APIKeyEnv(p llm.Provider) string {
	if p == llm.ProviderAnthropic {
		return EnvAnthropicKey
	}
	return EnvOpenAIKey
}

func first(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstPositive[T int64 | time.Duration](vals ...T) T {
	for _, v := range vals {
		if v > 0 {
			return v
		}
	}
	return 0
}
