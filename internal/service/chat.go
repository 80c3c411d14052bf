package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/samber/lo"
	"github.com/templui/lifecoach/internal/coaching"
	"github.com/templui/lifecoach/internal/llm"
	"github.com/templui/lifecoach/internal/logger"
	"github.com/templui/lifecoach/internal/model"
	"github.com/templui/lifecoach/internal/validation"
)

var ErrInvalidMessage = errors.New("invalid message")

// ChatInput is one inbound chat turn. User, Profile and Subscription are nil for
// anonymous callers.
type ChatInput struct {
	Message      string
	History      []model.Message
	CoachMode    bool
	User         *model.User
	Profile      *model.Profile
	Subscription *model.Subscription
}

type ChatOutput struct {
	Provider     string
	Text         string
	Personalized bool
	Nudge        coaching.NudgeKind
}

type ChatService struct {
	backend llm.Backend
	builder *coaching.ContextBuilder
	nudges  *coaching.NudgeEngine
	timeout time.Duration
	log     *slog.Logger
}

func NewChatService(backend llm.Backend, builder *coaching.ContextBuilder, nudges *coaching.NudgeEngine, timeout time.Duration) *ChatService {
	return &ChatService{
		backend: backend,
		builder: builder,
		nudges:  nudges,
		timeout: timeout,
		log:     logger.Component("chat"),
	}
}

func (s *ChatService) Provider() string {
	return s.backend.Name()
}

// Reply runs one turn: personalize the system prompt when the caller is entitled and asked
// for coach mode, ask the backend, then add an upgrade nudge for free-tier callers.
func (s *ChatService) Reply(ctx context.Context, in ChatInput) (*ChatOutput, error) {
	if err := validation.ValidateChatMessage(in.Message); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMessage, err)
	}

	entitled := in.Subscription.IsPaid()

	prompt := coaching.GeneratePrompt(nil, false)
	if in.CoachMode && entitled && in.User != nil {
		prompt = s.Prompt(ctx, coaching.Owner{User: in.User, Profile: in.Profile, Subscription: in.Subscription})
	}

	callCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	text, err := s.backend.Complete(callCtx, prompt.SystemPrompt, in.History, in.Message)
	if err != nil {
		s.log.Error("completion failed", "provider", s.backend.Name(), "personalized", prompt.Personalized, "error", err)
		return nil, fmt.Errorf("completion failed: %w", err)
	}

	turn := lo.CountBy(in.History, func(m model.Message) bool {
		return m.Role == model.RoleUser
	})
	nudge := s.nudges.Decide(turn, entitled, in.Message)

	s.log.Debug("chat reply",
		"provider", s.backend.Name(),
		"personalized", prompt.Personalized,
		"turn", turn,
		"nudge", nudge.Kind,
	)

	return &ChatOutput{
		Provider:     s.backend.Name(),
		Text:         text + nudge.Suffix,
		Personalized: prompt.Personalized,
		Nudge:        nudge.Kind,
	}, nil
}

// Prompt builds the owner's coaching context and renders it. The prompt is personalized
// only for paid subscribers with data on file.
func (s *ChatService) Prompt(ctx context.Context, owner coaching.Owner) coaching.PersonalityPrompt {
	cc := s.builder.Build(ctx, owner)
	return coaching.GeneratePrompt(&cc, owner.Subscription.IsPaid())
}
