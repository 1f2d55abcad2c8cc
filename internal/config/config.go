package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigPath is the default config file location.
const ConfigPath = "config.yaml"

// FileConfig represents configuration loaded from YAML with environment
// variable overrides.
type FileConfig struct {
	Port                  string `yaml:"port"`
	LogLevel              string `yaml:"logLevel"`
	DatabaseURL           string `yaml:"databaseURL"`
	AllowedOrigin         string `yaml:"allowedOrigin"`
	Provider              string `yaml:"provider"`
	AnthropicAPIKey       string `yaml:"anthropicAPIKey"`
	AnthropicModel        string `yaml:"anthropicModel"`
	OpenAIAPIKey          string `yaml:"openaiAPIKey"`
	OpenAIBaseURL         string `yaml:"openaiBaseURL"`
	OpenAIModel           string `yaml:"openaiModel"`
	MaxTokens             int    `yaml:"maxTokens"`
	RequestTimeoutSeconds int    `yaml:"requestTimeoutSeconds"`
}

// Load reads config from path (defaults to config.yaml). A missing file is
// not an error: deployments driven purely by environment variables are
// supported. Environment variables always win over file values.
func Load(path string) (FileConfig, error) {
	cfg := FileConfig{
		Port:                  "8000",
		AllowedOrigin:         "http://localhost:5173",
		Provider:              "anthropic",
		MaxTokens:             1024,
		RequestTimeoutSeconds: 30,
	}
	if path == "" {
		path = ConfigPath
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	case os.IsNotExist(err):
		// env-only deployment
	default:
		return cfg, fmt.Errorf("read config: %w", err)
	}

	// Override with environment variables.
	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.DatabaseURL = v
	}
	if v := os.Getenv("ALLOWED_ORIGIN"); v != "" {
		cfg.AllowedOrigin = v
	}
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		cfg.Provider = v
	}
	if v := os.Getenv("ANTHROPIC_API_KEY"); v != "" {
		cfg.AnthropicAPIKey = v
	}
	if v := os.Getenv("ANTHROPIC_MODEL"); v != "" {
		cfg.AnthropicModel = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.OpenAIAPIKey = v
	}
	if v := os.Getenv("OPENAI_BASE_URL"); v != "" {
		cfg.OpenAIBaseURL = v
	}
	if v := os.Getenv("OPENAI_MODEL"); v != "" {
		cfg.OpenAIModel = v
	}
	if err := validateConfig(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func validateConfig(cfg FileConfig) error {
	if cfg.Port == "" {
		return errors.New("config: port is required (set in config.yaml or PORT)")
	}
	if cfg.DatabaseURL == "" {
		return errors.New("config: databaseURL is required (set in config.yaml or DATABASE_URL)")
	}
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "anthropic", "":
		if cfg.AnthropicAPIKey == "" {
			return errors.New("config: anthropicAPIKey is required (set in config.yaml or ANTHROPIC_API_KEY)")
		}
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			return errors.New("config: openaiAPIKey is required (set in config.yaml or OPENAI_API_KEY)")
		}
		if cfg.OpenAIModel == "" {
			return errors.New("config: openaiModel is required (set in config.yaml or OPENAI_MODEL)")
		}
	default:
		return fmt.Errorf("config: unknown provider %q (supported: anthropic, openai)", cfg.Provider)
	}
	return nil
}
