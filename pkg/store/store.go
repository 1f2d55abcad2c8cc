package store

import (
	"context"

	"symptomcheck/pkg/domain"
)

// Store defines persistence operations for symptom checks. Records are
// append-only: there is no update or delete.
type Store interface {
	// AppendCheck inserts a new check. ID and CreatedAt are assigned by the
	// store and returned on the record.
	AppendCheck(ctx context.Context, symptoms, response string) (domain.SymptomCheck, error)
	// ListChecks returns every check, most recent first. An empty store
	// yields an empty slice.
	ListChecks(ctx context.Context) ([]domain.SymptomCheck, error)
}
