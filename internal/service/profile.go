package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/templui/lifecoach/internal/model"
	"github.com/templui/lifecoach/internal/repository"
	"github.com/templui/lifecoach/internal/validation"
)

// ErrInvalidInput marks errors caused by caller-supplied values.
var ErrInvalidInput = errors.New("invalid input")

type ProfileService struct {
	profileRepo repository.ProfileRepository
}

func NewProfileService(profileRepo repository.ProfileRepository) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
	}
}

func (s *ProfileService) ByUserID(ctx context.Context, userID string) (*model.Profile, error) {
	return s.profileRepo.ByUserID(ctx, userID)
}

func (s *ProfileService) Create(ctx context.Context, profile *model.Profile) error {
	return s.profileRepo.Create(ctx, profile)
}

func (s *ProfileService) UpdateName(ctx context.Context, userID, name string) error {
	name = strings.TrimSpace(name)

	err := validation.ValidateName(name)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return s.profileRepo.UpdateName(ctx, userID, name)
}

func (s *ProfileService) UpdateCoachingStyle(ctx context.Context, userID, style string) error {
	style = strings.ToLower(strings.TrimSpace(style))

	err := validation.ValidateCoachingStyle(style)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return s.profileRepo.UpdateCoachingStyle(ctx, userID, style)
}
