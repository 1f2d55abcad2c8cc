package domain

import "time"

// UrgencyLevel is the triage category attached to a recommendation.
type UrgencyLevel string

const (
	UrgencySelfCare      UrgencyLevel = "Self-Care"
	UrgencyConsultDoctor UrgencyLevel = "Consult a Doctor"
	UrgencyImmediate     UrgencyLevel = "Seek Immediate Medical Attention"
)

// ValidUrgencyLevel reports whether level is one of the three known categories.
func ValidUrgencyLevel(level UrgencyLevel) bool {
	switch level {
	case UrgencySelfCare, UrgencyConsultDoctor, UrgencyImmediate:
		return true
	}
	return false
}

// Condition is one candidate explanation for the described symptoms.
type Condition struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Likelihood  string `json:"likelihood"`
}

// NextSteps carries the triage level and the concrete recommendations.
type NextSteps struct {
	UrgencyLevel UrgencyLevel `json:"urgency_level"`
	Steps        []string     `json:"steps"`
}

// AnalysisResult is the structured output of a symptom analysis. Field names
// follow the wire format the model is instructed to produce.
type AnalysisResult struct {
	PotentialConditions  []Condition `json:"potential_conditions"`
	RecommendedNextSteps NextSteps   `json:"recommended_next_steps"`
	SafetyDisclaimer     string      `json:"safety_disclaimer"`
}

// SymptomCheck is one persisted request/response pair. Response holds the
// serialized AnalysisResult exactly as it was stored; callers that need the
// structured form unmarshal it themselves.
type SymptomCheck struct {
	ID        int64     `json:"id"`
	Symptoms  string    `json:"symptoms"`
	Response  string    `json:"response"`
	CreatedAt time.Time `json:"created_at"`
}
