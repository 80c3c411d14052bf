package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/templui/lifecoach/internal/ctxkeys"
	"github.com/templui/lifecoach/internal/model"
	"github.com/templui/lifecoach/internal/service"
)

type ChatHandler struct {
	chatService *service.ChatService
}

func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

type chatRequest struct {
	Message             string          `json:"message"`
	ConversationHistory []model.Message `json:"conversationHistory"`
	CoachMode           bool            `json:"coachMode"`
}

type chatResponse struct {
	OK       bool   `json:"ok"`
	Provider string `json:"provider"`
	Text     string `json:"text"`
}

// Chat answers one message. Anonymous callers get the generic free-tier coach.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx := r.Context()
	out, err := h.chatService.Reply(ctx, service.ChatInput{
		Message:      req.Message,
		History:      req.ConversationHistory,
		CoachMode:    req.CoachMode,
		User:         ctxkeys.User(ctx),
		Profile:      ctxkeys.Profile(ctx),
		Subscription: ctxkeys.Subscription(ctx),
	})
	if errors.Is(err, service.ErrInvalidMessage) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		slog.Error("chat failed", "error", err, "request_id", ctxkeys.RequestID(ctx))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{
		OK:       true,
		Provider: out.Provider,
		Text:     out.Text,
	})
}
