package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// ProjectConfig holds project-level settings loaded from brief.yml.
type ProjectConfig struct {
	Provider      string        `yaml:"provider,omitempty"`
	Model         string        `yaml:"model,omitempty"`
	BaseURL       string        `yaml:"baseURL,omitempty"`
	Temperature   *float64      `yaml:"temperature,omitempty"`
	MaxTokens     int64         `yaml:"maxTokens,omitempty"`
	Timeout       time.Duration `yaml:"timeout,omitempty"`
	MaxTries      uint          `yaml:"maxTries,omitempty"`
	OutputDir     string        `yaml:"outputDir,omitempty"`
	Format        string        `yaml:"format,omitempty"`
	SummaryInputs string        `yaml:"summaryInputs,omitempty"`
	EnvFile       string        `yaml:"envFile,omitempty"`
	Verbose       bool          `yaml:"verbose,omitempty"`
}

// Load attempts to read brief.yml or brief.yaml from the given directory.
// Returns a zero-value config (not an error) if no config file exists.
func Load(dir string) (*ProjectConfig, error) {
	for _, name := range []string{"brief.yml", "brief.yaml"} {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var cfg ProjectConfig
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	}
	return &ProjectConfig{}, nil
}
