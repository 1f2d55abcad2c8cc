package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"symptomcheck/pkg/ai"
	"symptomcheck/pkg/domain"
)

const (
	minConditions = 3
	maxConditions = 5
)

// Client turns raw symptom text into a validated AnalysisResult via one
// request to the configured model. Callers validate non-emptiness of the
// input before calling; no retry is performed here.
type Client struct {
	gen ai.TextGenerator
}

// NewClient constructs an analysis client over the given generator.
func NewClient(gen ai.TextGenerator) *Client {
	return &Client{gen: gen}
}

// Analyze sends the fixed instruction set plus the symptom text to the model
// and parses the reply strictly as a single JSON analysis document.
func (c *Client) Analyze(ctx context.Context, symptomText string) (domain.AnalysisResult, error) {
	raw, err := c.gen.GenerateText(ctx, SystemPrompt, userPromptPrefix+symptomText)
	if err != nil {
		return domain.AnalysisResult{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	// json.Unmarshal rejects surrounding prose or markup around the
	// document, which is exactly the strictness wanted here.
	var result domain.AnalysisResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		// Raw output goes to the log for offline diagnosis, never to the
		// caller.
		slog.Error("failed to decode model output", "err", err, "raw_output", raw)
		return domain.AnalysisResult{}, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}
	if err := validateResult(result); err != nil {
		slog.Error("model output failed validation", "err", err, "raw_output", raw)
		return domain.AnalysisResult{}, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}
	return result, nil
}

// validateResult enforces the shape the model was instructed to produce:
// condition cardinality, urgency enum membership, non-empty steps and
// disclaimer.
func validateResult(result domain.AnalysisResult) error {
	n := len(result.PotentialConditions)
	if n < minConditions || n > maxConditions {
		return fmt.Errorf("potential_conditions length %d outside [%d, %d]", n, minConditions, maxConditions)
	}
	for i, cond := range result.PotentialConditions {
		if strings.TrimSpace(cond.Name) == "" {
			return fmt.Errorf("potential_conditions[%d] has empty name", i)
		}
	}
	if !domain.ValidUrgencyLevel(result.RecommendedNextSteps.UrgencyLevel) {
		return fmt.Errorf("unknown urgency_level %q", result.RecommendedNextSteps.UrgencyLevel)
	}
	if len(result.RecommendedNextSteps.Steps) == 0 {
		return fmt.Errorf("recommended_next_steps.steps is empty")
	}
	if strings.TrimSpace(result.SafetyDisclaimer) == "" {
		return fmt.Errorf("safety_disclaimer is empty")
	}
	return nil
}
