package app

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"symptomcheck/internal/analysis"
	"symptomcheck/pkg/domain"
	"symptomcheck/pkg/store"
)

type fixedGenerator struct {
	output string
	err    error
	calls  int
}

func (f *fixedGenerator) GenerateText(context.Context, string, string) (string, error) {
	f.calls++
	return f.output, f.err
}

func selfCareOutput() string {
	raw, _ := json.Marshal(domain.AnalysisResult{
		PotentialConditions: []domain.Condition{
			{Name: "Common Cold", Description: "Viral infection.", Likelihood: "Possible"},
			{Name: "Tension Headache", Description: "Stress related.", Likelihood: "Possible"},
			{Name: "Allergic Rhinitis", Description: "Seasonal allergies.", Likelihood: "Less Likely"},
			{Name: "Sinusitis", Description: "Sinus inflammation.", Likelihood: "Less Likely"},
		},
		RecommendedNextSteps: domain.NextSteps{
			UrgencyLevel: domain.UrgencySelfCare,
			Steps:        []string{"Rest", "Drink fluids"},
		},
		SafetyDisclaimer: "IMPORTANT: This is not a medical diagnosis.",
	})
	return string(raw)
}

func TestCheckSymptomsPersistsAndReturnsResult(t *testing.T) {
	mem := store.NewMemoryStore()
	gen := &fixedGenerator{output: selfCareOutput()}
	a := New(mem, analysis.NewClient(gen))

	input := "I have a mild headache and runny nose"
	result, err := a.CheckSymptoms(context.Background(), input)
	if err != nil {
		t.Fatalf("check symptoms: %v", err)
	}
	if len(result.PotentialConditions) != 4 {
		t.Fatalf("conditions = %d, want 4", len(result.PotentialConditions))
	}
	if result.RecommendedNextSteps.UrgencyLevel != domain.UrgencySelfCare {
		t.Fatalf("urgency = %q, want %q", result.RecommendedNextSteps.UrgencyLevel, domain.UrgencySelfCare)
	}
	if mem.Count() != 1 {
		t.Fatalf("store count = %d, want 1", mem.Count())
	}

	checks, err := a.History(context.Background())
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if checks[0].Symptoms != input {
		t.Fatalf("stored symptoms = %q, want %q", checks[0].Symptoms, input)
	}
	// Round-trip law: the stored response deserializes back to the result
	// the caller received.
	var stored domain.AnalysisResult
	if err := json.Unmarshal([]byte(checks[0].Response), &stored); err != nil {
		t.Fatalf("unmarshal stored response: %v", err)
	}
	if !reflect.DeepEqual(stored, result) {
		t.Fatalf("stored response = %+v, want %+v", stored, result)
	}
}

func TestCheckSymptomsRejectsEmptyInputBeforeModelCall(t *testing.T) {
	mem := store.NewMemoryStore()
	gen := &fixedGenerator{output: selfCareOutput()}
	a := New(mem, analysis.NewClient(gen))

	for _, input := range []string{"", "   ", "\n\t"} {
		_, err := a.CheckSymptoms(context.Background(), input)
		if !errors.Is(err, ErrEmptySymptoms) {
			t.Fatalf("input %q: err = %v, want ErrEmptySymptoms", input, err)
		}
	}
	if gen.calls != 0 {
		t.Fatalf("model calls = %d, want 0 for empty input", gen.calls)
	}
	if mem.Count() != 0 {
		t.Fatalf("store count = %d, want 0", mem.Count())
	}
}

func TestCheckSymptomsDoesNotPersistFailedAnalyses(t *testing.T) {
	mem := store.NewMemoryStore()
	a := New(mem, analysis.NewClient(&fixedGenerator{output: "I cannot help"}))

	_, err := a.CheckSymptoms(context.Background(), "headache")
	if !errors.Is(err, analysis.ErrMalformedOutput) {
		t.Fatalf("err = %v, want ErrMalformedOutput", err)
	}
	if mem.Count() != 0 {
		t.Fatalf("store count = %d, want 0 after failed analysis", mem.Count())
	}
}

type failingStore struct{}

func (failingStore) AppendCheck(context.Context, string, string) (domain.SymptomCheck, error) {
	return domain.SymptomCheck{}, errors.New("disk full")
}

func (failingStore) ListChecks(context.Context) ([]domain.SymptomCheck, error) {
	return nil, errors.New("disk full")
}

func TestCheckSymptomsTreatsStorageFailureAsFullFailure(t *testing.T) {
	a := New(failingStore{}, analysis.NewClient(&fixedGenerator{output: selfCareOutput()}))

	_, err := a.CheckSymptoms(context.Background(), "headache")
	if err == nil {
		t.Fatalf("expected error when persistence fails")
	}
	if errors.Is(err, ErrEmptySymptoms) || errors.Is(err, analysis.ErrMalformedOutput) {
		t.Fatalf("storage failure misclassified: %v", err)
	}
}
