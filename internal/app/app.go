package app

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"symptomcheck/internal/analysis"
	"symptomcheck/pkg/domain"
	"symptomcheck/pkg/store"
)

// App is the core application service wiring together storage and analysis.
type App struct {
	store    store.Store
	analyzer *analysis.Client
}

// New constructs the application over the given store and analysis client.
func New(dataStore store.Store, analyzer *analysis.Client) *App {
	return &App{store: dataStore, analyzer: analyzer}
}

// CheckSymptoms runs the full check flow: validate, analyze, persist, return.
// A record is written only after a successful analysis, and a failed write
// discards the analysis: persistence is mandatory before the result is
// handed back.
func (a *App) CheckSymptoms(ctx context.Context, rawInput string) (domain.AnalysisResult, error) {
	trimmed := strings.TrimSpace(rawInput)
	if trimmed == "" {
		return domain.AnalysisResult{}, ErrEmptySymptoms
	}

	result, err := a.analyzer.Analyze(ctx, trimmed)
	if err != nil {
		return domain.AnalysisResult{}, err
	}

	serialized, err := json.Marshal(result)
	if err != nil {
		return domain.AnalysisResult{}, fmt.Errorf("serialize analysis: %w", err)
	}
	// The record keeps the user's submission as received, not the trimmed
	// form used for the model call.
	if _, err := a.store.AppendCheck(ctx, rawInput, string(serialized)); err != nil {
		return domain.AnalysisResult{}, fmt.Errorf("save check: %w", err)
	}
	return result, nil
}

// History returns every recorded check, most recent first.
func (a *App) History(ctx context.Context) ([]domain.SymptomCheck, error) {
	checks, err := a.store.ListChecks(ctx)
	if err != nil {
		return nil, fmt.Errorf("list checks: %w", err)
	}
	return checks, nil
}
