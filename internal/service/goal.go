package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/templui/lifecoach/internal/model"
	"github.com/templui/lifecoach/internal/repository"
	"github.com/templui/lifecoach/internal/validation"
)

var (
	ErrGoalLimitReached = errors.New("plan goal limit reached")
	ErrInvalidGoal      = errors.New("invalid goal")
)

// GoalInput carries the user-editable goal fields.
type GoalInput struct {
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	Category           string     `json:"category"`
	Priority           string     `json:"priority"`
	Status             string     `json:"status"`
	TargetDate         *time.Time `json:"target_date"`
	ProgressPercentage *int       `json:"progress_percentage"`
}

func (in GoalInput) validate() error {
	checks := []error{
		validation.ValidateGoalTitle(in.Title),
		validation.ValidateGoalDescription(in.Description),
		validation.ValidateGoalCategory(in.Category),
		validation.ValidateGoalPriority(in.Priority),
		validation.ValidateGoalStatus(in.Status),
	}
	for _, err := range checks {
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidGoal, err)
		}
	}
	return nil
}

type GoalService struct {
	repo                repository.GoalRepository
	subscriptionService *SubscriptionService
}

func NewGoalService(repo repository.GoalRepository, subscriptionService *SubscriptionService) *GoalService {
	return &GoalService{
		repo:                repo,
		subscriptionService: subscriptionService,
	}
}

func (s *GoalService) Create(ctx context.Context, userID string, in GoalInput) (*model.Goal, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	goal := &model.Goal{
		ID:          uuid.New().String(),
		UserID:      userID,
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Category:    in.Category,
		Priority:    in.Priority,
		Status:      in.Status,
		TargetDate:  in.TargetDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.ProgressPercentage != nil {
		goal.ProgressPercentage = *in.ProgressPercentage
	}
	goal.Normalize()

	if goal.IsActive() {
		if err := s.checkLimit(ctx, userID); err != nil {
			return nil, err
		}
	}

	err := s.repo.Create(ctx, goal)
	if err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return goal, nil
}

// checkLimit enforces the plan's active-goal limit.
func (s *GoalService) checkLimit(ctx context.Context, userID string) error {
	subscription, err := s.subscriptionService.Subscription(ctx, userID)
	if err != nil {
		return err
	}

	limit := subscription.GetGoalLimit()
	if limit == -1 { // -1 means unlimited
		return nil
	}

	count, err := s.repo.CountActive(ctx, userID)
	if err != nil {
		return err
	}

	if count >= limit {
		return ErrGoalLimitReached
	}
	return nil
}

func (s *GoalService) ByID(ctx context.Context, userID, goalID string) (*model.Goal, error) {
	return s.repo.ByID(ctx, userID, goalID)
}

func (s *GoalService) Goals(ctx context.Context, userID, sortBy string) ([]*model.Goal, error) {
	return s.repo.Goals(ctx, userID, sortBy)
}

func (s *GoalService) ActiveGoals(ctx context.Context, userID string) ([]*model.Goal, error) {
	return s.repo.ActiveGoals(ctx, userID)
}

func (s *GoalService) Update(ctx context.Context, userID, goalID string, in GoalInput) (*model.Goal, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	// Verify ownership
	goal, err := s.repo.ByID(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}
	wasActive := goal.IsActive()

	goal.Title = strings.TrimSpace(in.Title)
	goal.Description = strings.TrimSpace(in.Description)
	goal.Category = in.Category
	goal.TargetDate = in.TargetDate
	if in.Priority != "" {
		goal.Priority = in.Priority
	}
	if in.Status != "" {
		goal.Status = in.Status
	}
	if in.ProgressPercentage != nil {
		goal.ProgressPercentage = *in.ProgressPercentage
	}
	goal.Normalize()

	if goal.IsActive() && !wasActive {
		if err := s.checkLimit(ctx, userID); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	return goal, nil
}

// UpdateProgress clamps progress to [0,100]. Lowering the progress of a completed goal
// reopens it; reaching 100 does not complete a goal on its own.
func (s *GoalService) UpdateProgress(ctx context.Context, userID, goalID string, progress int) (*model.Goal, error) {
	goal, err := s.repo.ByID(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}

	progress = model.ClampProgress(progress)
	if goal.Status == model.GoalStatusCompleted && progress < 100 {
		goal.Status = model.GoalStatusActive
	}
	goal.ProgressPercentage = progress
	goal.Normalize()

	if err := s.repo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update goal progress: %w", err)
	}

	return goal, nil
}

func (s *GoalService) Delete(ctx context.Context, userID, goalID string) error {
	return s.repo.Delete(ctx, userID, goalID)
}
