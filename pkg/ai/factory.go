package ai

import (
	"fmt"
	"strings"
	"time"
)

// FactoryConfig selects and parameterises the model provider.
type FactoryConfig struct {
	Provider        string
	AnthropicAPIKey string
	AnthropicModel  string
	OpenAIAPIKey    string
	OpenAIBaseURL   string
	OpenAIModel     string
	MaxTokens       int
	RequestTimeout  time.Duration
}

// NewTextGenerator builds the configured provider. The provider defaults to
// anthropic when unset.
func NewTextGenerator(cfg FactoryConfig) (TextGenerator, error) {
	provider := strings.ToLower(strings.TrimSpace(cfg.Provider))
	if provider == "" {
		provider = "anthropic"
	}
	switch provider {
	case "anthropic":
		return NewAnthropicGenerator(cfg.AnthropicAPIKey,
			WithAnthropicModel(cfg.AnthropicModel),
			WithAnthropicMaxTokens(cfg.MaxTokens),
			WithAnthropicTimeout(cfg.RequestTimeout),
		)
	case "openai":
		return NewOpenAIGenerator(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel, cfg.MaxTokens)
	default:
		return nil, fmt.Errorf("unknown model provider: %s", provider)
	}
}
