package handler

import (
	"net/http"

	"github.com/templui/lifecoach/internal/coaching"
	"github.com/templui/lifecoach/internal/ctxkeys"
	"github.com/templui/lifecoach/internal/service"
)

type CoachingHandler struct {
	chatService *service.ChatService
}

func NewCoachingHandler(chatService *service.ChatService) *CoachingHandler {
	return &CoachingHandler{
		chatService: chatService,
	}
}

// Prompt previews the system prompt the coach would use for the caller right now.
func (h *CoachingHandler) Prompt(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	prompt := h.chatService.Prompt(ctx, coaching.Owner{
		User:         ctxkeys.User(ctx),
		Profile:      ctxkeys.Profile(ctx),
		Subscription: ctxkeys.Subscription(ctx),
	})

	writeOK(w, http.StatusOK, map[string]any{
		"provider": h.chatService.Provider(),
		"prompt":   prompt,
	})
}
