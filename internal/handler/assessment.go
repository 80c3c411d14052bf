package handler

import (
	"net/http"

	"github.com/templui/lifecoach/internal/coaching"
	"github.com/templui/lifecoach/internal/ctxkeys"
	"github.com/templui/lifecoach/internal/model"
	"github.com/templui/lifecoach/internal/service"
)

type AssessmentHandler struct {
	assessmentService *service.AssessmentService
}

func NewAssessmentHandler(assessmentService *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{
		assessmentService: assessmentService,
	}
}

func (h *AssessmentHandler) Questions(w http.ResponseWriter, r *http.Request) {
	writeOK(w, http.StatusOK, map[string]any{
		"steps":      coaching.Questionnaire,
		"step_count": coaching.StepCount(),
	})
}

func (h *AssessmentHandler) Progress(w http.ResponseWriter, r *http.Request) {
	progress, err := h.assessmentService.Progress(r.Context(), r.PathValue("session"))
	if err != nil {
		writeServiceError(w, r, err, "failed to load assessment progress")
		return
	}

	writeOK(w, http.StatusOK, map[string]any{"progress": progress})
}

func (h *AssessmentHandler) SaveProgress(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Answers     model.Answers `json:"answers"`
		CurrentStep int           `json:"current_step"`
	}
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx := r.Context()
	progress, err := h.assessmentService.SaveProgress(ctx, r.PathValue("session"), ctxkeys.User(ctx), req.Answers, req.CurrentStep)
	if err != nil {
		writeServiceError(w, r, err, "failed to save assessment progress")
		return
	}

	writeOK(w, http.StatusOK, map[string]any{"progress": progress})
}

// Submit scores the assessment. Anonymous sessions are allowed and can be claimed later.
func (h *AssessmentHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SessionID string        `json:"session_id"`
		Answers   model.Answers `json:"answers"`
	}
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx := r.Context()
	report, err := h.assessmentService.Submit(ctx, req.SessionID, ctxkeys.User(ctx), req.Answers)
	if err != nil {
		writeServiceError(w, r, err, "failed to submit assessment")
		return
	}

	writeOK(w, http.StatusCreated, map[string]any{"result": report.Result, "insights": report.Insights})
}

func (h *AssessmentHandler) Latest(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	report, err := h.assessmentService.Latest(r.Context(), user.ID)
	if err != nil {
		writeServiceError(w, r, err, "failed to load assessment")
		return
	}

	writeOK(w, http.StatusOK, map[string]any{"result": report.Result, "insights": report.Insights})
}

func (h *AssessmentHandler) Claim(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	err := h.assessmentService.Claim(r.Context(), r.PathValue("session"), user.ID)
	if err != nil {
		writeServiceError(w, r, err, "failed to claim assessment")
		return
	}

	writeOK(w, http.StatusOK, nil)
}

// Report returns a temporary link to the signed-in user's latest archived report.
func (h *AssessmentHandler) Report(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	url, err := h.assessmentService.ReportURL(ctx, ctxkeys.User(ctx).ID)
	if err != nil {
		writeServiceError(w, r, err, "failed to load assessment report")
		return
	}

	writeOK(w, http.StatusOK, map[string]any{"url": url})
}
