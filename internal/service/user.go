package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/templui/lifecoach/internal/model"
	"github.com/templui/lifecoach/internal/repository"
	"github.com/templui/lifecoach/internal/validation"
)

type UserService struct {
	userRepository      repository.UserRepository
	profileRepository   repository.ProfileRepository
	subscriptionService *SubscriptionService
}

func NewUserService(
	userRepository repository.UserRepository,
	profileRepository repository.ProfileRepository,
	subscriptionService *SubscriptionService,
) *UserService {
	return &UserService{
		userRepository:      userRepository,
		profileRepository:   profileRepository,
		subscriptionService: subscriptionService,
	}
}

func (s *UserService) ByID(ctx context.Context, id string) (*model.User, error) {
	return s.userRepository.ByID(ctx, id)
}

func (s *UserService) ByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.userRepository.ByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
}

// Create registers a user together with a profile and a free subscription.
// Login flows live outside this service; it is used by provisioning and the CLI.
func (s *UserService) Create(ctx context.Context, email, name string) (*model.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if err := validation.ValidateEmail(email); err != nil {
		return nil, err
	}

	user := &model.User{
		ID:        uuid.New().String(),
		Email:     email,
		CreatedAt: time.Now(),
	}

	if err := s.userRepository.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	profile := &model.Profile{
		UserID:        user.ID,
		Name:          strings.TrimSpace(name),
		CoachingStyle: model.CoachingStyleSupportive,
	}
	if err := s.profileRepository.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	if err := s.subscriptionService.CreateFreeSubscription(ctx, user.ID); err != nil {
		return nil, err
	}

	return user, nil
}
