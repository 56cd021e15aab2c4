package analyze

import (
	"errors"
	"fmt"
)

// ErrEmptyResponse means the provider answered but carried no usable candidate text.
var ErrEmptyResponse = errors.New("upstream returned empty response")

// MissingCredentialError is returned before any upstream call when the selected
// engine's API key is not set. Var names the environment variable the operator
// needs to configure.
type MissingCredentialError struct {
	Var string
}

func (e *MissingCredentialError) Error() string {
	return "server missing " + e.Var
}

// UpstreamError wraps a failed request to the model provider (non-success status,
// network error, timeout).
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream request failed: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// RateLimitError is the provider signalling a quota/rate limit.
type RateLimitError struct {
	Detail string
}

func (e *RateLimitError) Error() string {
	return "upstream rate limit: " + e.Detail
}

// MalformedError means the candidate text was not strict JSON after fence
// stripping. Raw carries the offending text for diagnostics.
type MalformedError struct {
	Raw string
}

func (e *MalformedError) Error() string {
	return "upstream returned non-JSON"
}
