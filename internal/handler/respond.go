package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/templui/lifecoach/internal/repository"
	"github.com/templui/lifecoach/internal/service"
)

const maxBodyBytes = 1 << 20

// writeJSON writes v with status. Payloads are wrapped by the callers in the
// {ok: true, ...} envelope.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeOK(w http.ResponseWriter, status int, payload map[string]any) {
	if payload == nil {
		payload = map[string]any{}
	}
	payload["ok"] = true
	writeJSON(w, status, payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"ok": false, "error": message})
}

// decodeJSON reads a size-limited JSON body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	err := json.NewDecoder(r.Body).Decode(dst)
	if err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// writeServiceError maps domain errors onto status codes. Anything unrecognized is
// logged and reported as a 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	switch {
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrInvalidGoal),
		errors.Is(err, service.ErrInvalidMessage),
		errors.Is(err, service.ErrInvalidSessionID),
		errors.Is(err, service.ErrEmptyAssessment):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrGoalLimitReached):
		writeError(w, http.StatusForbidden, "active goal limit reached for your plan, upgrade to add more")
	case errors.Is(err, repository.ErrGoalNotFound),
		errors.Is(err, repository.ErrLifeAreaNotFound),
		errors.Is(err, repository.ErrAssessmentNotFound),
		errors.Is(err, repository.ErrAssessmentProgressNotFound),
		errors.Is(err, repository.ErrProfileNotFound),
		errors.Is(err, service.ErrReportsDisabled):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		slog.Error(msg, "error", err, "path", r.URL.Path)
		writeError(w, http.StatusInternalServerError, msg)
	}
}
