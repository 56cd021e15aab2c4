package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"codelens/internal/analyze"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const credentialVar = "GEMINI_API_KEY"

type Engine struct {
	APIKey string
	Model  string
}

func New(apiKey, model string) *Engine {
	return &Engine{
		APIKey: strings.TrimSpace(apiKey),
		Model:  strings.TrimSpace(model),
	}
}

func (e *Engine) Name() string          { return "Gemini" }
func (e *Engine) CredentialVar() string { return credentialVar }
func (e *Engine) Configured() bool      { return e.APIKey != "" }

// Analyze sends one deterministic prompt and returns the first candidate text.
// The reply is not parsed here; the caller owns the trust boundary.
func (e *Engine) Analyze(ctx context.Context, language, code string) (string, error) {
	if e.APIKey == "" {
		return "", &analyze.MissingCredentialError{Var: credentialVar}
	}

	cl, err := genai.NewClient(ctx, option.WithAPIKey(e.APIKey))
	if err != nil {
		return "", &analyze.UpstreamError{Err: err}
	}
	defer cl.Close()

	m := cl.GenerativeModel(e.Model)
	if m == nil {
		return "", &analyze.UpstreamError{Err: fmt.Errorf("gemini: model is nil")}
	}
	m.GenerationConfig = genai.GenerationConfig{
		Temperature:      ptrFloat32(0),
		ResponseMIMEType: "application/json",
	}

	resp, err := m.GenerateContent(ctx, genai.Text(analyze.BuildPrompt(language, code)))
	if err != nil {
		if isRateLimited(err) {
			return "", &analyze.RateLimitError{Detail: err.Error()}
		}
		return "", &analyze.UpstreamError{Err: err}
	}

	txt := firstText(resp)
	if strings.TrimSpace(txt) == "" {
		return "", analyze.ErrEmptyResponse
	}
	return txt, nil
}

func isRateLimited(err error) bool {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code == 429
	}
	return false
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	for _, c := range resp.Candidates {
		if c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				return string(t)
			}
		}
	}
	return ""
}

func ptrFloat32(v float32) *float32 { return &v }
