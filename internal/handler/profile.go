package handler

import (
	"net/http"

	"github.com/templui/lifecoach/internal/ctxkeys"
	"github.com/templui/lifecoach/internal/service"
)

type ProfileHandler struct {
	profileService *service.ProfileService
}

func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// Me returns the signed-in user with their profile and plan.
func (h *ProfileHandler) Me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	writeOK(w, http.StatusOK, map[string]any{
		"user":         ctxkeys.User(ctx),
		"profile":      ctxkeys.Profile(ctx),
		"subscription": ctxkeys.Subscription(ctx),
	})
}

func (h *ProfileHandler) UpdateName(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req struct {
		Name string `json:"name"`
	}
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	err := h.profileService.UpdateName(r.Context(), user.ID, req.Name)
	if err != nil {
		writeServiceError(w, r, err, "failed to update name")
		return
	}

	h.writeProfile(w, r, user.ID)
}

func (h *ProfileHandler) UpdateCoachingStyle(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req struct {
		CoachingStyle string `json:"coaching_style"`
	}
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	err := h.profileService.UpdateCoachingStyle(r.Context(), user.ID, req.CoachingStyle)
	if err != nil {
		writeServiceError(w, r, err, "failed to update coaching style")
		return
	}

	h.writeProfile(w, r, user.ID)
}

func (h *ProfileHandler) writeProfile(w http.ResponseWriter, r *http.Request, userID string) {
	profile, err := h.profileService.ByUserID(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "failed to load profile")
		return
	}

	writeOK(w, http.StatusOK, map[string]any{"profile": profile})
}
