package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	defaultAnthropicBaseURL = "https://api.anthropic.com/v1"
	anthropicVersion        = "2023-06-01"

	// DefaultAnthropicModel is pinned so analysis behaviour stays
	// reproducible across calls and deployments.
	DefaultAnthropicModel = "claude-3-haiku-20240307"
)

// AnthropicGenerator calls the Anthropic Messages API.
type AnthropicGenerator struct {
	apiKey     string
	baseURL    string
	model      string
	maxTokens  int
	httpClient *http.Client
}

// AnthropicOption customises the generator.
type AnthropicOption func(*AnthropicGenerator)

// WithAnthropicBaseURL overrides the API endpoint. Used by tests.
func WithAnthropicBaseURL(baseURL string) AnthropicOption {
	return func(g *AnthropicGenerator) {
		g.baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	}
}

// WithAnthropicModel overrides the pinned model identifier.
func WithAnthropicModel(model string) AnthropicOption {
	return func(g *AnthropicGenerator) {
		if strings.TrimSpace(model) != "" {
			g.model = strings.TrimSpace(model)
		}
	}
}

// WithAnthropicMaxTokens bounds the output length of a single generation.
func WithAnthropicMaxTokens(maxTokens int) AnthropicOption {
	return func(g *AnthropicGenerator) {
		if maxTokens > 0 {
			g.maxTokens = maxTokens
		}
	}
}

// WithAnthropicTimeout bounds the full request round trip.
func WithAnthropicTimeout(timeout time.Duration) AnthropicOption {
	return func(g *AnthropicGenerator) {
		if timeout > 0 {
			g.httpClient.Timeout = timeout
		}
	}
}

// NewAnthropicGenerator constructs a generator with the provided API key.
func NewAnthropicGenerator(apiKey string, options ...AnthropicOption) (*AnthropicGenerator, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, fmt.Errorf("anthropic api key required")
	}
	g := &AnthropicGenerator{
		apiKey:     apiKey,
		baseURL:    defaultAnthropicBaseURL,
		model:      DefaultAnthropicModel,
		maxTokens:  1024,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, option := range options {
		if option != nil {
			option(g)
		}
	}
	return g, nil
}

// GenerateText sends one messages request and returns the first text block.
func (g *AnthropicGenerator) GenerateText(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	reqBody := anthropicRequest{
		Model:     g.model,
		MaxTokens: g.maxTokens,
		Messages: []anthropicMessage{
			{Role: "user", Content: userPrompt},
		},
	}
	if strings.TrimSpace(systemPrompt) != "" {
		reqBody.System = systemPrompt
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/messages", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", g.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("anthropic request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp anthropicErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&errResp)
		if errResp.Error.Message != "" {
			return "", fmt.Errorf("anthropic api error: %s", errResp.Error.Message)
		}
		return "", fmt.Errorf("anthropic api error: %s", resp.Status)
	}

	var msgResp anthropicResponse
	if err := json.NewDecoder(resp.Body).Decode(&msgResp); err != nil {
		return "", fmt.Errorf("anthropic decode: %w", err)
	}
	if len(msgResp.Content) == 0 {
		return "", fmt.Errorf("empty response from anthropic")
	}
	return msgResp.Content[0].Text, nil
}

// Anthropic Messages API request/response types.

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system,omitempty"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
}

type anthropicErrorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}
