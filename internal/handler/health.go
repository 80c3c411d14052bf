package handler

import (
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/templui/lifecoach/internal/ctxkeys"
)

type HealthHandler struct {
	db       *sqlx.DB
	provider string
}

func NewHealthHandler(db *sqlx.DB, provider string) *HealthHandler {
	return &HealthHandler{
		db:       db,
		provider: provider,
	}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	payload := map[string]any{"provider": h.provider}
	if cfg := ctxkeys.Config(r.Context()); cfg != nil {
		payload["app"] = cfg.AppName
		payload["env"] = cfg.AppEnv
	}

	if h.db != nil {
		if err := h.db.PingContext(r.Context()); err != nil {
			writeError(w, http.StatusServiceUnavailable, "database unavailable")
			return
		}
	}

	writeOK(w, http.StatusOK, payload)
}
