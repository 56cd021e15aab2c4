package analyze

import (
	"context"
	"fmt"
	"strings"
)

// Engine is the port a model provider implements. Analyze returns the raw
// candidate text; parsing and normalization happen on our side of the trust
// boundary.
type Engine interface {
	Name() string
	CredentialVar() string
	Configured() bool
	Analyze(ctx context.Context, language, code string) (string, error)
}

// Engines holds the wired providers.
type Engines struct {
	Gemini Engine
	OpenAI Engine
}

// Get selects a provider by name. The empty name means the default (Gemini).
func (e *Engines) Get(name string) (Engine, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "gemini":
		return e.Gemini, nil
	case "gpt", "openai":
		return e.OpenAI, nil
	default:
		return nil, fmt.Errorf("unknown engine %q; use 'gemini' or 'openai'", name)
	}
}
