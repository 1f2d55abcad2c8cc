package app

import "errors"

// ErrEmptySymptoms indicates the submitted symptom text was empty or
// whitespace-only. Mapped to a client error at the HTTP boundary.
var ErrEmptySymptoms = errors.New("symptoms cannot be empty")
