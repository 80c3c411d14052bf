package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/templui/lifecoach/internal/model"
	"github.com/templui/lifecoach/internal/repository"
	"github.com/templui/lifecoach/internal/validation"
)

type LifeAreaService struct {
	repo repository.LifeAreaRepository
}

func NewLifeAreaService(repo repository.LifeAreaRepository) *LifeAreaService {
	return &LifeAreaService{repo: repo}
}

func (s *LifeAreaService) LifeAreas(ctx context.Context, userID string) ([]*model.LifeArea, error) {
	return s.repo.ByUser(ctx, userID)
}

// Rate records a 1-10 satisfaction rating, replacing any earlier rating of the area.
func (s *LifeAreaService) Rate(ctx context.Context, userID, area string, level int) (*model.LifeArea, error) {
	if err := validation.ValidateLifeArea(area); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if err := validation.ValidateSatisfaction(level); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	lifeArea := &model.LifeArea{
		ID:                uuid.New().String(),
		UserID:            userID,
		AreaName:          area,
		SatisfactionLevel: &level,
		LastUpdated:       time.Now(),
	}

	if err := s.repo.Upsert(ctx, lifeArea); err != nil {
		return nil, fmt.Errorf("failed to rate life area: %w", err)
	}

	return s.repo.ByName(ctx, userID, area)
}
