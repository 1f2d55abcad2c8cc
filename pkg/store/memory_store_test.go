package store

import (
	"context"
	"testing"
)

func TestMemoryStoreAssignsMonotonicIDs(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	first, err := s.AppendCheck(ctx, "headache", `{"a":1}`)
	if err != nil {
		t.Fatalf("append first: %v", err)
	}
	second, err := s.AppendCheck(ctx, "sore throat", `{"b":2}`)
	if err != nil {
		t.Fatalf("append second: %v", err)
	}
	if first.ID != 1 || second.ID != 2 {
		t.Fatalf("ids = %d, %d, want 1, 2", first.ID, second.ID)
	}
	if first.CreatedAt.IsZero() || second.CreatedAt.IsZero() {
		t.Fatalf("created_at must be assigned by the store")
	}
	if second.CreatedAt.Before(first.CreatedAt) {
		t.Fatalf("created_at must not go backwards")
	}
}

func TestMemoryStoreListsNewestFirst(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	inputs := []string{"fever", "cough", "rash"}
	for _, in := range inputs {
		if _, err := s.AppendCheck(ctx, in, "{}"); err != nil {
			t.Fatalf("append %q: %v", in, err)
		}
	}

	checks, err := s.ListChecks(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(checks) != len(inputs) {
		t.Fatalf("len = %d, want %d", len(checks), len(inputs))
	}
	if checks[0].Symptoms != "rash" {
		t.Fatalf("first listed = %q, want most recent %q", checks[0].Symptoms, "rash")
	}
	for i := 1; i < len(checks); i++ {
		if checks[i].ID > checks[i-1].ID {
			t.Fatalf("ids not descending at index %d", i)
		}
		if checks[i].CreatedAt.After(checks[i-1].CreatedAt) {
			t.Fatalf("created_at not non-increasing at index %d", i)
		}
	}
}

func TestMemoryStoreEmptyListIsNotAnError(t *testing.T) {
	s := NewMemoryStore()
	checks, err := s.ListChecks(context.Background())
	if err != nil {
		t.Fatalf("list empty store: %v", err)
	}
	if len(checks) != 0 {
		t.Fatalf("len = %d, want 0", len(checks))
	}
}
