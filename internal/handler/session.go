package handler

import (
	"net/http"
	"strconv"

	"github.com/templui/lifecoach/internal/ctxkeys"
	"github.com/templui/lifecoach/internal/service"
)

type SessionHandler struct {
	sessionService *service.CoachingSessionService
}

func NewSessionHandler(sessionService *service.CoachingSessionService) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
	}
}

func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	// Invalid or missing limits fall back to the service default
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	limit = min(limit, 50)

	sessions, err := h.sessionService.Recent(r.Context(), user.ID, limit)
	if err != nil {
		writeServiceError(w, r, err, "failed to load coaching sessions")
		return
	}

	writeOK(w, http.StatusOK, map[string]any{"sessions": sessions})
}

func (h *SessionHandler) Record(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var in service.SessionInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	session, err := h.sessionService.Record(r.Context(), user.ID, in)
	if err != nil {
		writeServiceError(w, r, err, "failed to record coaching session")
		return
	}

	writeOK(w, http.StatusCreated, map[string]any{"session": session})
}
