package openai

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"codelens/internal/analyze"

	"github.com/sashabaranov/go-openai"
)

const credentialVar = "OPENAI_API_KEY"

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

func (e *Engine) Name() string          { return "OpenAI" }
func (e *Engine) CredentialVar() string { return credentialVar }
func (e *Engine) Configured() bool      { return e.APIKey != "" }

func (e *Engine) Analyze(ctx context.Context, language, code string) (string, error) {
	if e.APIKey == "" {
		return "", &analyze.MissingCredentialError{Var: credentialVar}
	}

	cl := openai.NewClient(e.APIKey)
	resp, err := cl.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       e.Model,
		Temperature: 0,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: analyze.BuildPrompt(language, code)},
		},
	})
	if err != nil {
		if isRateLimited(err) {
			return "", &analyze.RateLimitError{Detail: err.Error()}
		}
		return "", &analyze.UpstreamError{Err: err}
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", analyze.ErrEmptyResponse
	}
	return resp.Choices[0].Message.Content, nil
}

func isRateLimited(err error) bool {
	var aerr *openai.APIError
	if errors.As(err, &aerr) {
		return aerr.HTTPStatusCode == http.StatusTooManyRequests
	}
	return false
}
