package app

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/templui/lifecoach/internal/coaching"
	"github.com/templui/lifecoach/internal/config"
	"github.com/templui/lifecoach/internal/db"
	"github.com/templui/lifecoach/internal/llm"
	"github.com/templui/lifecoach/internal/repository"
	"github.com/templui/lifecoach/internal/service"
	"github.com/templui/lifecoach/internal/storage"
)

type App struct {
	Cfg                    *config.Config
	DB                     *sqlx.DB
	AuthService            *service.AuthService
	UserService            *service.UserService
	ProfileService         *service.ProfileService
	EmailService           *service.EmailService
	SubscriptionService    *service.SubscriptionService
	GoalService            *service.GoalService
	LifeAreaService        *service.LifeAreaService
	CoachingSessionService *service.CoachingSessionService
	AssessmentService      *service.AssessmentService
	ChatService            *service.ChatService
}

func New(ctx context.Context, cfg *config.Config) (*App, error) {
	// Initialize database and run migrations
	database, err := db.Open(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Completion backend selected once at startup
	backend, err := llm.NewBackend(ctx, cfg)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to initialize ai provider: %w", err)
	}

	// Optional report archive
	reports, err := storage.New(ctx, cfg)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	return build(cfg, database, backend, reports), nil
}

// build wires repositories and services around an open database.
func build(cfg *config.Config, database *sqlx.DB, backend llm.Backend, reports storage.Storage) *App {
	// Repositories
	userRepository := repository.NewUserRepository(database)
	profileRepository := repository.NewProfileRepository(database)
	subscriptionRepository := repository.NewSubscriptionRepository(database)
	goalRepository := repository.NewGoalRepository(database)
	lifeAreaRepository := repository.NewLifeAreaRepository(database)
	sessionRepository := repository.NewCoachingSessionRepository(database)
	assessmentRepository := repository.NewAssessmentRepository(database)

	// Services
	emailService := service.NewEmailService(
		cfg.ResendAPIKey,
		cfg.EmailFrom,
		cfg.AppURL,
		cfg.AppName,
		cfg.IsDevelopment(),
	)
	subscriptionService := service.NewSubscriptionService(subscriptionRepository)
	authService := service.NewAuthService(cfg.JWTSecret, cfg.JWTExpiry)
	userService := service.NewUserService(userRepository, profileRepository, subscriptionService)
	profileService := service.NewProfileService(profileRepository)
	goalService := service.NewGoalService(goalRepository, subscriptionService)
	lifeAreaService := service.NewLifeAreaService(lifeAreaRepository)
	sessionService := service.NewCoachingSessionService(sessionRepository)
	assessmentService := service.NewAssessmentService(
		assessmentRepository,
		profileRepository,
		emailService,
		reports,
		cfg.AppURL,
		cfg.AppName,
	)

	// Coaching engine
	store := service.NewCoachingStore(goalRepository, lifeAreaRepository, sessionRepository, assessmentRepository)
	builder := coaching.NewContextBuilder(store, cfg.CoachRecentSessions)
	chatService := service.NewChatService(backend, builder, coaching.NewNudgeEngine(nil), cfg.AITimeout)

	return &App{
		Cfg:                    cfg,
		DB:                     database,
		AuthService:            authService,
		UserService:            userService,
		ProfileService:         profileService,
		EmailService:           emailService,
		SubscriptionService:    subscriptionService,
		GoalService:            goalService,
		LifeAreaService:        lifeAreaService,
		CoachingSessionService: sessionService,
		AssessmentService:      assessmentService,
		ChatService:            chatService,
	}
}

// NewWithBackend wires the app around an existing database and backend. reports may be nil.
func NewWithBackend(cfg *config.Config, database *sqlx.DB, backend llm.Backend, reports storage.Storage) *App {
	return build(cfg, database, backend, reports)
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
