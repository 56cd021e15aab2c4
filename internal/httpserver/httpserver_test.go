package httpserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codelens/internal/handle"
)

type nopEngine struct{}

func (nopEngine) Name() string          { return "Gemini" }
func (nopEngine) CredentialVar() string { return "GEMINI_API_KEY" }
func (nopEngine) Configured() bool      { return true }
func (nopEngine) Analyze(ctx context.Context, language, code string) (string, error) {
	return `{"hasError":false}`, nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	static := fstest.MapFS{
		"index.html": &fstest.MapFile{Data: []byte("<html>codelens</html>")},
	}
	h := handle.New(nopEngine{}, time.Second, 1<<20)
	return NewRouter(h, static, []string{"*"})
}

func TestHealthz(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestStaticIndexServed(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "codelens")
}

func TestAnalyzeRouted(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/analyze",
		strings.NewReader(`{"language":"go","code":"x := 1"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"hasError":false,"error":null,"correctedCode":null}`, rec.Body.String())
}

func TestAnalyzeValidationRouted(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(`{"code":"x"}`))
	rec := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Missing language")
}
