package service

import (
	"context"
	"errors"

	"github.com/templui/lifecoach/internal/coaching"
	"github.com/templui/lifecoach/internal/model"
	"github.com/templui/lifecoach/internal/repository"
)

// coachingStore reads the coaching context collections straight from the repositories.
type coachingStore struct {
	goals       repository.GoalRepository
	lifeAreas   repository.LifeAreaRepository
	sessions    repository.CoachingSessionRepository
	assessments repository.AssessmentRepository
}

var _ coaching.ContextStore = (*coachingStore)(nil)

func NewCoachingStore(
	goals repository.GoalRepository,
	lifeAreas repository.LifeAreaRepository,
	sessions repository.CoachingSessionRepository,
	assessments repository.AssessmentRepository,
) coaching.ContextStore {
	return &coachingStore{
		goals:       goals,
		lifeAreas:   lifeAreas,
		sessions:    sessions,
		assessments: assessments,
	}
}

func (s *coachingStore) ActiveGoals(ctx context.Context, userID string) ([]*model.Goal, error) {
	return s.goals.ActiveGoals(ctx, userID)
}

func (s *coachingStore) LifeAreas(ctx context.Context, userID string) ([]*model.LifeArea, error) {
	return s.lifeAreas.ByUser(ctx, userID)
}

func (s *coachingStore) RecentSessions(ctx context.Context, userID string, limit int) ([]*model.CoachingSession, error) {
	return s.sessions.Recent(ctx, userID, limit)
}

func (s *coachingStore) LatestAssessment(ctx context.Context, userID string) (*model.AssessmentResult, error) {
	result, err := s.assessments.Latest(ctx, userID)
	if errors.Is(err, repository.ErrAssessmentNotFound) {
		return nil, nil
	}
	return result, err
}
