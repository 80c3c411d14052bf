package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/templui/lifecoach/internal/model"
	"github.com/templui/lifecoach/internal/repository"
	"github.com/templui/lifecoach/internal/validation"
)

type SessionInput struct {
	Summary     string     `json:"summary"`
	ActionItems []string   `json:"action_items"`
	FollowUpAt  *time.Time `json:"follow_up_at"`
}

type CoachingSessionService struct {
	repo repository.CoachingSessionRepository
}

func NewCoachingSessionService(repo repository.CoachingSessionRepository) *CoachingSessionService {
	return &CoachingSessionService{repo: repo}
}

func (s *CoachingSessionService) Record(ctx context.Context, userID string, in SessionInput) (*model.CoachingSession, error) {
	summary := strings.TrimSpace(in.Summary)
	if err := validation.ValidateSessionSummary(summary); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	items := lo.FilterMap(in.ActionItems, func(item string, _ int) (string, bool) {
		item = strings.TrimSpace(item)
		return item, item != ""
	})

	session := &model.CoachingSession{
		ID:          uuid.New().String(),
		UserID:      userID,
		Summary:     summary,
		ActionItems: model.StringList(items),
		FollowUpAt:  in.FollowUpAt,
		CreatedAt:   time.Now(),
	}

	if err := s.repo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to record coaching session: %w", err)
	}

	return session, nil
}

func (s *CoachingSessionService) Recent(ctx context.Context, userID string, limit int) ([]*model.CoachingSession, error) {
	if limit <= 0 {
		limit = 5
	}
	return s.repo.Recent(ctx, userID, limit)
}
