package handle

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"codelens/internal/analyze"
)

// Analyze relays one {language, code} submission to the model provider and
// returns the normalized result. Validation runs in order, first failure wins,
// and no upstream call happens unless all checks pass.
func (h *Handle) Analyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBody)

	var req analyze.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errorResponse{Error: "Invalid JSON body", Details: err.Error()})
		return
	}

	if strings.TrimSpace(req.Language) == "" {
		writeError(w, http.StatusBadRequest, errorResponse{Error: "Missing language"})
		return
	}
	if strings.TrimSpace(req.Code) == "" {
		writeError(w, http.StatusBadRequest, errorResponse{Error: "Missing code"})
		return
	}
	if !h.engine.Configured() {
		writeError(w, http.StatusInternalServerError, errorResponse{Error: "Server missing " + h.engine.CredentialVar()})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	raw, err := h.engine.Analyze(ctx, req.Language, req.Code)
	if err != nil {
		h.writeEngineError(w, err)
		return
	}

	logrus.WithField("engine", h.engine.Name()).Debugf("raw model reply: %s", raw)

	res, err := analyze.ParseReply(raw)
	if err != nil {
		var malformed *analyze.MalformedError
		if errors.As(err, &malformed) {
			logrus.WithField("engine", h.engine.Name()).Warnf("model reply is not JSON: %s", malformed.Raw)
			writeError(w, http.StatusBadGateway, errorResponse{
				Error:   h.engine.Name() + " returned non-JSON",
				Details: malformed.Raw,
			})
			return
		}
		writeError(w, http.StatusInternalServerError, errorResponse{Error: "Server error", Details: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, res)
}

func (h *Handle) writeEngineError(w http.ResponseWriter, err error) {
	name := h.engine.Name()

	var missing *analyze.MissingCredentialError
	if errors.As(err, &missing) {
		writeError(w, http.StatusInternalServerError, errorResponse{Error: "Server missing " + missing.Var})
		return
	}

	var limited *analyze.RateLimitError
	if errors.As(err, &limited) {
		writeError(w, http.StatusTooManyRequests, errorResponse{
			Error:       name + " rate limit reached, please wait a moment and try again",
			Details:     limited.Detail,
			IsRateLimit: true,
		})
		return
	}

	if errors.Is(err, analyze.ErrEmptyResponse) {
		writeError(w, http.StatusBadGateway, errorResponse{Error: name + " returned empty response"})
		return
	}

	var upstream *analyze.UpstreamError
	if errors.As(err, &upstream) {
		logrus.WithField("engine", name).Warnf("upstream request failed: %v", upstream.Err)
		writeError(w, http.StatusBadGateway, errorResponse{
			Error:   name + " request failed",
			Details: upstream.Err.Error(),
		})
		return
	}

	logrus.WithField("engine", name).Errorf("unexpected analyze error: %v", err)
	writeError(w, http.StatusInternalServerError, errorResponse{Error: "Server error", Details: err.Error()})
}
