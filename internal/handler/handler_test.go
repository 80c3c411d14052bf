package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/templui/lifecoach/internal/repository"
	"github.com/templui/lifecoach/internal/service"
)

func TestWriteServiceError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid goal", fmt.Errorf("%w: title is required", service.ErrInvalidGoal), http.StatusBadRequest},
		{"invalid input", fmt.Errorf("%w: bad style", service.ErrInvalidInput), http.StatusBadRequest},
		{"empty assessment", service.ErrEmptyAssessment, http.StatusBadRequest},
		{"goal limit", service.ErrGoalLimitReached, http.StatusForbidden},
		{"goal missing", repository.ErrGoalNotFound, http.StatusNotFound},
		{"progress missing", repository.ErrAssessmentProgressNotFound, http.StatusNotFound},
		{"reports disabled", service.ErrReportsDisabled, http.StatusNotFound},
		{"unexpected", errors.New("disk full"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeServiceError(rec, httptest.NewRequest(http.MethodGet, "/", nil), tt.err, "request failed")

			assert.Equal(t, tt.want, rec.Code)
			assert.Contains(t, rec.Body.String(), `"ok":false`)
		})
	}
}

func TestUnexpectedErrorsAreNotLeaked(t *testing.T) {
	rec := httptest.NewRecorder()
	writeServiceError(rec, httptest.NewRequest(http.MethodGet, "/", nil), errors.New("pq: password authentication failed"), "failed to load goals")

	assert.NotContains(t, rec.Body.String(), "password")
	assert.Contains(t, rec.Body.String(), "failed to load goals")
}

func TestDecodeJSONRejectsOversizedBody(t *testing.T) {
	body := `{"message":"` + strings.Repeat("a", maxBodyBytes) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))

	var dst chatRequest
	err := decodeJSON(httptest.NewRecorder(), req, &dst)
	assert.Error(t, err)
}

func TestWriteOK(t *testing.T) {
	rec := httptest.NewRecorder()
	writeOK(rec, http.StatusCreated, map[string]any{"id": "g1"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"ok":true,"id":"g1"}`, rec.Body.String())
}
