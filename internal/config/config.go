// Package config loads runtime configuration from an optional YAML file,
// with defaults suited to local inference.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"newsgraph/internal/graph"
	"newsgraph/internal/llm"
)

// Config selects the generation backend and pipeline paths. Flags and
// environment variables overlay these values in main.
type Config struct {
	// Provider is "ollama" or "openrouter".
	Provider string `yaml:"provider"`
	Model    string `yaml:"model"`
	BaseURL  string `yaml:"base_url"`
	APIKey   string `yaml:"api_key"`
	Snapshot string `yaml:"snapshot"`
	Stream   bool   `yaml:"stream"`
}

// Default returns the configuration for a local Ollama endpoint.
func Default() Config {
	return Config{
		Provider: "ollama",
		Model:    llm.DefaultModel,
		BaseURL:  llm.DefaultBaseURL,
		Snapshot: graph.DefaultSnapshotPath,
		Stream:   true,
	}
}

// Load reads a YAML config file over the defaults. Fields absent from the
// file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// NewProvider builds the configured generation backend.
func (c Config) NewProvider() (llm.Provider, error) {
	switch c.Provider {
	case "", "ollama":
		return llm.NewClient(c.BaseURL, c.Model), nil
	case "openrouter":
		if c.APIKey == "" {
			return nil, fmt.Errorf("openrouter provider requires an API key")
		}
		return llm.NewOpenRouter(c.APIKey, c.Model), nil
	default:
		return nil, fmt.Errorf("unknown provider: %s", c.Provider)
	}
}
