package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/templui/lifecoach/internal/model"
	"github.com/templui/lifecoach/internal/repository"
)

type SubscriptionService struct {
	repo repository.SubscriptionRepository
}

func NewSubscriptionService(repo repository.SubscriptionRepository) *SubscriptionService {
	return &SubscriptionService{repo: repo}
}

func (s *SubscriptionService) CreateFreeSubscription(ctx context.Context, userID string) error {
	now := time.Now()
	subscription := &model.Subscription{
		ID:        uuid.New().String(),
		UserID:    userID,
		PlanID:    model.SubscriptionPlanFree,
		Status:    model.SubscriptionStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.repo.Create(ctx, subscription)
	if err != nil {
		return fmt.Errorf("failed to create free subscription: %w", err)
	}

	return nil
}

// Subscription returns the user's plan. Users without a record are on the free plan.
func (s *SubscriptionService) Subscription(ctx context.Context, userID string) (*model.Subscription, error) {
	sub, err := s.repo.ByUserID(ctx, userID)
	if errors.Is(err, repository.ErrSubscriptionNotFound) {
		return model.FreeSubscription(userID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	return sub, nil
}

// ChangePlan moves the user to planID, creating the record if needed.
func (s *SubscriptionService) ChangePlan(ctx context.Context, userID, planID string) (*model.Subscription, error) {
	now := time.Now()

	sub, err := s.repo.ByUserID(ctx, userID)
	if errors.Is(err, repository.ErrSubscriptionNotFound) {
		sub = &model.Subscription{
			ID:        uuid.New().String(),
			UserID:    userID,
			PlanID:    planID,
			Status:    model.SubscriptionStatusActive,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.repo.Create(ctx, sub); err != nil {
			return nil, fmt.Errorf("failed to create subscription: %w", err)
		}
		return sub, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	sub.PlanID = planID
	sub.Status = model.SubscriptionStatusActive
	sub.UpdatedAt = now

	if err := s.repo.Update(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to update subscription: %w", err)
	}

	return sub, nil
}
