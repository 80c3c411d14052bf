package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"github.com/templui/lifecoach/internal/config"
	"github.com/templui/lifecoach/internal/db"
	"github.com/templui/lifecoach/internal/model"
	"github.com/templui/lifecoach/internal/repository"
	"github.com/templui/lifecoach/internal/service"
)

func SeedCmd() *cobra.Command {
	var email, plan string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create a demo user with goals, life-area ratings and a coaching session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(func(cfg *config.Config, database *sqlx.DB) error {
				if err := db.RunMigrations(database.DB, cfg.DBDriver); err != nil {
					return err
				}
				return runSeed(cmd.Context(), cmd.OutOrStdout(), cfg, database, email, plan)
			})
		},
	}

	cmd.Flags().StringVar(&email, "email", "demo@example.com", "demo user email")
	cmd.Flags().StringVar(&plan, "plan", model.SubscriptionPlanPro, "subscription plan (free, pro, enterprise)")
	return cmd
}

func runSeed(ctx context.Context, out io.Writer, cfg *config.Config, database *sqlx.DB, email, plan string) error {
	subscriptions := service.NewSubscriptionService(repository.NewSubscriptionRepository(database))
	users := service.NewUserService(repository.NewUserRepository(database), repository.NewProfileRepository(database), subscriptions)
	goals := service.NewGoalService(repository.NewGoalRepository(database), subscriptions)
	lifeAreas := service.NewLifeAreaService(repository.NewLifeAreaRepository(database))
	sessions := service.NewCoachingSessionService(repository.NewCoachingSessionRepository(database))

	user, err := users.Create(ctx, email, "Demo")
	if errors.Is(err, repository.ErrDuplicateEmail) {
		return fmt.Errorf("%s already exists, pick another --email", email)
	}
	if err != nil {
		return err
	}

	if _, err := subscriptions.ChangePlan(ctx, user.ID, plan); err != nil {
		return err
	}

	now := time.Now()
	marathon := now.AddDate(0, 2, 0)
	review := now.AddDate(0, 0, 14)
	progress := func(p int) *int { return &p }

	demoGoals := []service.GoalInput{
		{Title: "Run a half marathon", Category: model.CategoryHealth, Priority: model.GoalPriorityHigh, TargetDate: &marathon, ProgressPercentage: progress(35)},
		{Title: "Build a three month emergency fund", Category: model.CategoryFinancial, Priority: model.GoalPriorityMedium, ProgressPercentage: progress(10)},
		{Title: "Ask for a performance review", Category: model.CategoryCareer, Priority: model.GoalPriorityLow, TargetDate: &review, ProgressPercentage: progress(80)},
	}
	for _, in := range demoGoals {
		if _, err := goals.Create(ctx, user.ID, in); err != nil {
			return err
		}
	}

	ratings := map[string]int{
		model.CategoryHealth:        6,
		model.CategoryFinancial:     4,
		model.CategoryCareer:        7,
		model.CategoryRelationships: 8,
	}
	for area, level := range ratings {
		if _, err := lifeAreas.Rate(ctx, user.ID, area, level); err != nil {
			return err
		}
	}

	followUp := now.AddDate(0, 0, -1)
	_, err = sessions.Record(ctx, user.ID, service.SessionInput{
		Summary:     "Mapped out a weekly training plan and a savings target.",
		ActionItems: []string{"Schedule three runs this week", "Set up an automatic transfer"},
		FollowUpAt:  &followUp,
	})
	if err != nil {
		return err
	}

	token, err := service.NewAuthService(cfg.JWTSecret, cfg.JWTExpiry).GenerateJWT(user)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "user:  %s (%s, %s plan)\n", user.ID, user.Email, plan)
	fmt.Fprintf(out, "token: %s\n", token)
	return nil
}
