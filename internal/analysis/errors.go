package analysis

import "errors"

var (
	// ErrUpstream indicates the model call itself failed (network, status,
	// timeout, auth, quota). The cause is attached via wrapping.
	ErrUpstream = errors.New("analysis model call failed")
	// ErrMalformedOutput indicates the model responded but its output did not
	// parse or validate as an analysis result.
	ErrMalformedOutput = errors.New("model output is not a valid analysis")
)
