package handle

import (
	"encoding/json"
	"net/http"
	"time"

	"codelens/internal/analyze"
)

type Handle struct {
	engine  analyze.Engine
	timeout time.Duration
	maxBody int64
}

func New(engine analyze.Engine, timeout time.Duration, maxBody int64) *Handle {
	return &Handle{
		engine:  engine,
		timeout: timeout,
		maxBody: maxBody,
	}
}

// errorResponse is the structured body for every non-200 reply. Details carries
// raw diagnostic text; acceptable for a single-tenant developer tool.
type errorResponse struct {
	Error       string `json:"error"`
	Details     string `json:"details,omitempty"`
	IsRateLimit bool   `json:"isRateLimit,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, resp errorResponse) {
	writeJSON(w, code, resp)
}
