package handler

import (
	"net/http"
	"time"

	"github.com/templui/lifecoach/internal/coaching"
	"github.com/templui/lifecoach/internal/ctxkeys"
	"github.com/templui/lifecoach/internal/service"
)

type GoalHandler struct {
	goalService *service.GoalService
	now         func() time.Time
}

func NewGoalHandler(goalService *service.GoalService) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
		now:         time.Now,
	}
}

func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	sortBy := r.URL.Query().Get("sort")
	if sortBy == "" {
		sortBy = "recent"
	}

	goals, err := h.goalService.Goals(r.Context(), user.ID, sortBy)
	if err != nil {
		writeServiceError(w, r, err, "failed to load goals")
		return
	}

	writeOK(w, http.StatusOK, map[string]any{"goals": goals, "sort": sortBy})
}

// Tracker returns the active goals with their progress signals and deadlines.
func (h *GoalHandler) Tracker(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	goals, err := h.goalService.ActiveGoals(r.Context(), user.ID)
	if err != nil {
		writeServiceError(w, r, err, "failed to load goals")
		return
	}

	writeOK(w, http.StatusOK, map[string]any{"summary": coaching.Track(goals, h.now())})
}

func (h *GoalHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	goal, err := h.goalService.ByID(r.Context(), user.ID, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "failed to load goal")
		return
	}

	writeOK(w, http.StatusOK, map[string]any{"goal": goal})
}

func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var in service.GoalInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	goal, err := h.goalService.Create(r.Context(), user.ID, in)
	if err != nil {
		writeServiceError(w, r, err, "failed to create goal")
		return
	}

	writeOK(w, http.StatusCreated, map[string]any{"goal": goal})
}

func (h *GoalHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var in service.GoalInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	goal, err := h.goalService.Update(r.Context(), user.ID, r.PathValue("id"), in)
	if err != nil {
		writeServiceError(w, r, err, "failed to update goal")
		return
	}

	writeOK(w, http.StatusOK, map[string]any{"goal": goal})
}

func (h *GoalHandler) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req struct {
		ProgressPercentage *int `json:"progress_percentage"`
	}
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.ProgressPercentage == nil {
		writeError(w, http.StatusBadRequest, "progress_percentage is required")
		return
	}

	goal, err := h.goalService.UpdateProgress(r.Context(), user.ID, r.PathValue("id"), *req.ProgressPercentage)
	if err != nil {
		writeServiceError(w, r, err, "failed to update goal progress")
		return
	}

	writeOK(w, http.StatusOK, map[string]any{"goal": goal})
}

func (h *GoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	err := h.goalService.Delete(r.Context(), user.ID, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "failed to delete goal")
		return
	}

	writeOK(w, http.StatusOK, nil)
}
