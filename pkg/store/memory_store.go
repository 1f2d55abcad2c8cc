package store

import (
	"context"
	"sync"
	"time"

	"symptomcheck/pkg/domain"
)

// MemoryStore keeps checks in-process. It honours the same ordering and
// id-assignment contract as GormStore and backs the unit tests.
type MemoryStore struct {
	mu     sync.RWMutex
	checks []domain.SymptomCheck
	nextID int64
}

// NewMemoryStore initializes an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1}
}

// AppendCheck records a check with a monotonically increasing id.
func (m *MemoryStore) AppendCheck(_ context.Context, symptoms, response string) (domain.SymptomCheck, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	check := domain.SymptomCheck{
		ID:        m.nextID,
		Symptoms:  symptoms,
		Response:  response,
		CreatedAt: time.Now().UTC(),
	}
	m.nextID++
	m.checks = append(m.checks, check)
	return check, nil
}

// ListChecks returns all checks newest first.
func (m *MemoryStore) ListChecks(_ context.Context) ([]domain.SymptomCheck, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res := make([]domain.SymptomCheck, 0, len(m.checks))
	for i := len(m.checks) - 1; i >= 0; i-- {
		res = append(res, m.checks[i])
	}
	return res, nil
}

// Count reports the number of stored checks. Test helper.
func (m *MemoryStore) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.checks)
}
