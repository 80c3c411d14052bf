package handler

import (
	"net/http"

	"github.com/templui/lifecoach/internal/ctxkeys"
	"github.com/templui/lifecoach/internal/service"
)

type LifeAreaHandler struct {
	lifeAreaService *service.LifeAreaService
}

func NewLifeAreaHandler(lifeAreaService *service.LifeAreaService) *LifeAreaHandler {
	return &LifeAreaHandler{
		lifeAreaService: lifeAreaService,
	}
}

func (h *LifeAreaHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	areas, err := h.lifeAreaService.LifeAreas(r.Context(), user.ID)
	if err != nil {
		writeServiceError(w, r, err, "failed to load life areas")
		return
	}

	writeOK(w, http.StatusOK, map[string]any{"life_areas": areas})
}

func (h *LifeAreaHandler) Rate(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req struct {
		SatisfactionLevel int `json:"satisfaction_level"`
	}
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	area, err := h.lifeAreaService.Rate(r.Context(), user.ID, r.PathValue("area"), req.SatisfactionLevel)
	if err != nil {
		writeServiceError(w, r, err, "failed to rate life area")
		return
	}

	writeOK(w, http.StatusOK, map[string]any{"life_area": area})
}
