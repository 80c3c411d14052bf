package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/templui/lifecoach/internal/db"
	"github.com/templui/lifecoach/internal/model"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	database, err := db.Open("sqlite", filepath.Join(t.TempDir(), "test.db")+"?_pragma=foreign_keys(1)")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database
}

func createUser(t *testing.T, database *sqlx.DB, email string) *model.User {
	t.Helper()
	user := &model.User{ID: uuid.New().String(), Email: email, CreatedAt: time.Now()}
	require.NoError(t, NewUserRepository(database).Create(context.Background(), user))
	return user
}

func TestUserRepository(t *testing.T) {
	database := newTestDB(t)
	repo := NewUserRepository(database)
	ctx := context.Background()

	user := createUser(t, database, "ana@example.com")

	got, err := repo.ByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", got.Email)

	got, err = repo.ByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	err = repo.Create(ctx, &model.User{ID: uuid.New().String(), Email: "ana@example.com", CreatedAt: time.Now()})
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	_, err = repo.ByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)

	require.NoError(t, repo.Delete(ctx, user.ID))
	assert.ErrorIs(t, repo.Delete(ctx, user.ID), ErrUserNotFound)
}

func TestProfileRepository(t *testing.T) {
	database := newTestDB(t)
	repo := NewProfileRepository(database)
	ctx := context.Background()
	user := createUser(t, database, "ben@example.com")

	require.NoError(t, repo.Create(ctx, &model.Profile{UserID: user.ID, Name: "Ben"}))

	profile, err := repo.ByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ben", profile.Name)
	assert.Equal(t, model.CoachingStyleSupportive, profile.CoachingStyle)

	require.NoError(t, repo.UpdateCoachingStyle(ctx, user.ID, model.CoachingStyleAnalytical))
	require.NoError(t, repo.UpdateName(ctx, user.ID, "Benjamin"))

	profile, err = repo.ByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, model.CoachingStyleAnalytical, profile.CoachingStyle)
	assert.Equal(t, "Benjamin", profile.Name)

	assert.ErrorIs(t, repo.UpdateCoachingStyle(ctx, "missing", model.CoachingStyleDirect), ErrProfileNotFound)
	_, err = repo.ByUserID(ctx, "missing")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestSubscriptionRepository(t *testing.T) {
	database := newTestDB(t)
	repo := NewSubscriptionRepository(database)
	ctx := context.Background()
	user := createUser(t, database, "cai@example.com")

	_, err := repo.ByUserID(ctx, user.ID)
	assert.ErrorIs(t, err, ErrSubscriptionNotFound)

	now := time.Now()
	sub := &model.Subscription{
		ID: uuid.New().String(), UserID: user.ID, PlanID: model.SubscriptionPlanFree,
		Status: model.SubscriptionStatusActive, CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, repo.Create(ctx, sub))

	sub.PlanID = model.SubscriptionPlanPro
	require.NoError(t, repo.Update(ctx, sub))

	got, err := repo.ByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, got.IsPaid())
	assert.Nil(t, got.CurrentPeriodEnd)
}

func newGoal(userID, title string, progress int, priority string, created time.Time) *model.Goal {
	return &model.Goal{
		ID:                 uuid.New().String(),
		UserID:             userID,
		Title:              title,
		Category:           model.CategoryHealth,
		Status:             model.GoalStatusActive,
		ProgressPercentage: progress,
		Priority:           priority,
		CreatedAt:          created,
		UpdatedAt:          created,
	}
}

func TestGoalRepository(t *testing.T) {
	database := newTestDB(t)
	repo := NewGoalRepository(database)
	ctx := context.Background()
	user := createUser(t, database, "dee@example.com")
	other := createUser(t, database, "eve@example.com")

	base := time.Now().Add(-72 * time.Hour)
	target := time.Now().Add(10 * 24 * time.Hour)

	run := newGoal(user.ID, "Run 5k", 40, model.GoalPriorityHigh, base)
	run.TargetDate = &target
	read := newGoal(user.ID, "approach reading", 80, model.GoalPriorityLow, base.Add(time.Hour))
	done := newGoal(user.ID, "Quit soda", 100, model.GoalPriorityMedium, base.Add(2*time.Hour))
	done.Status = model.GoalStatusCompleted
	theirs := newGoal(other.ID, "Not mine", 0, model.GoalPriorityMedium, base)

	for _, g := range []*model.Goal{run, read, done, theirs} {
		require.NoError(t, repo.Create(ctx, g))
	}

	got, err := repo.ByID(ctx, user.ID, run.ID)
	require.NoError(t, err)
	assert.Equal(t, "Run 5k", got.Title)
	require.NotNil(t, got.TargetDate)
	assert.WithinDuration(t, target, *got.TargetDate, time.Second)

	_, err = repo.ByID(ctx, other.ID, run.ID)
	assert.ErrorIs(t, err, ErrGoalNotFound)

	active, err := repo.ActiveGoals(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, run.ID, active[0].ID)
	assert.Equal(t, read.ID, active[1].ID)

	count, err := repo.CountActive(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	byProgress, err := repo.Goals(ctx, user.ID, GoalSortProgress)
	require.NoError(t, err)
	require.Len(t, byProgress, 3)
	assert.Equal(t, done.ID, byProgress[0].ID)

	byTitle, err := repo.Goals(ctx, user.ID, GoalSortTitle)
	require.NoError(t, err)
	assert.Equal(t, read.ID, byTitle[0].ID)

	byDeadline, err := repo.Goals(ctx, user.ID, GoalSortDeadline)
	require.NoError(t, err)
	assert.Equal(t, run.ID, byDeadline[0].ID)

	run.ProgressPercentage = 55
	run.TargetDate = nil
	require.NoError(t, repo.Update(ctx, run))
	got, err = repo.ByID(ctx, user.ID, run.ID)
	require.NoError(t, err)
	assert.Equal(t, 55, got.ProgressPercentage)
	assert.Nil(t, got.TargetDate)

	theirs.UserID = user.ID
	assert.ErrorIs(t, repo.Update(ctx, theirs), ErrGoalNotFound)

	require.NoError(t, repo.Delete(ctx, user.ID, read.ID))
	assert.ErrorIs(t, repo.Delete(ctx, user.ID, read.ID), ErrGoalNotFound)
}

func TestLifeAreaRepositoryUpsert(t *testing.T) {
	database := newTestDB(t)
	repo := NewLifeAreaRepository(database)
	ctx := context.Background()
	user := createUser(t, database, "fay@example.com")

	level := 4
	require.NoError(t, repo.Upsert(ctx, &model.LifeArea{
		ID: uuid.New().String(), UserID: user.ID, AreaName: model.CategoryFinancial,
		SatisfactionLevel: &level, LastUpdated: time.Now(),
	}))

	level = 7
	require.NoError(t, repo.Upsert(ctx, &model.LifeArea{
		ID: uuid.New().String(), UserID: user.ID, AreaName: model.CategoryFinancial,
		SatisfactionLevel: &level, LastUpdated: time.Now(),
	}))
	require.NoError(t, repo.Upsert(ctx, &model.LifeArea{
		ID: uuid.New().String(), UserID: user.ID, AreaName: model.CategoryCareer, LastUpdated: time.Now(),
	}))

	areas, err := repo.ByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, areas, 2)
	assert.Equal(t, model.CategoryCareer, areas[0].AreaName)
	assert.False(t, areas[0].IsRated())
	require.True(t, areas[1].IsRated())
	assert.Equal(t, 7, *areas[1].SatisfactionLevel)

	_, err = repo.ByName(ctx, user.ID, model.CategoryHealth)
	assert.ErrorIs(t, err, ErrLifeAreaNotFound)
}

func TestCoachingSessionRepositoryRecent(t *testing.T) {
	database := newTestDB(t)
	repo := NewCoachingSessionRepository(database)
	ctx := context.Background()
	user := createUser(t, database, "gus@example.com")

	base := time.Now().Add(-10 * 24 * time.Hour)
	followUp := time.Now().Add(-time.Hour)
	for i := 0; i < 4; i++ {
		s := &model.CoachingSession{
			ID:        uuid.New().String(),
			UserID:    user.ID,
			Summary:   []string{"first", "second", "third", "fourth"}[i],
			CreatedAt: base.Add(time.Duration(i) * 24 * time.Hour),
		}
		if i == 3 {
			s.ActionItems = model.StringList{"Call mom"}
			s.FollowUpAt = &followUp
		}
		require.NoError(t, repo.Create(ctx, s))
	}

	sessions, err := repo.Recent(ctx, user.ID, 2)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "fourth", sessions[0].Summary)
	assert.Equal(t, "third", sessions[1].Summary)
	assert.Equal(t, model.StringList{"Call mom"}, sessions[0].ActionItems)
	assert.True(t, sessions[0].FollowUpDue(time.Now()))
	assert.Equal(t, model.StringList{}, sessions[1].ActionItems)
}

func TestAssessmentRepository(t *testing.T) {
	database := newTestDB(t)
	repo := NewAssessmentRepository(database)
	ctx := context.Background()
	user := createUser(t, database, "hal@example.com")

	_, err := repo.Latest(ctx, user.ID)
	assert.ErrorIs(t, err, ErrAssessmentNotFound)

	result := &model.AssessmentResult{
		ID:                       uuid.New().String(),
		SessionID:                "session-1",
		LifeScores:               model.ScoreMap{"career": 8, "health": 3},
		AIReadinessScore:         6,
		TopGoals:                 model.StringList{"Run a marathon"},
		PainPoints:               model.StringMap{"health": "no time"},
		ImprovementPriorities:    model.StringList{"health"},
		AccountabilityPreference: 7,
		AIComfortLevel:           5,
		UnansweredCategories:     model.StringList{"creativity"},
		CompletedAt:              time.Now(),
	}
	require.NoError(t, repo.Create(ctx, result))

	anon, err := repo.BySession(ctx, "session-1")
	require.NoError(t, err)
	assert.Nil(t, anon.UserID)
	assert.Equal(t, model.StringList{}, anon.BiggestObstacles)

	require.NoError(t, repo.ClaimSession(ctx, "session-1", user.ID))
	assert.ErrorIs(t, repo.ClaimSession(ctx, "session-1", user.ID), ErrAssessmentNotFound)

	latest, err := repo.Latest(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, result.ID, latest.ID)
	assert.Equal(t, model.ScoreMap{"career": 8, "health": 3}, latest.LifeScores)
	assert.Equal(t, "no time", latest.PainPoints["health"])
	assert.Equal(t, model.StringList{"creativity"}, latest.UnansweredCategories)
}

func TestAssessmentProgress(t *testing.T) {
	database := newTestDB(t)
	repo := NewAssessmentRepository(database)
	ctx := context.Background()

	_, err := repo.Progress(ctx, "s-1")
	assert.ErrorIs(t, err, ErrAssessmentProgressNotFound)

	require.NoError(t, repo.SaveProgress(ctx, &model.AssessmentProgress{
		SessionID: "s-1", Answers: model.Answers{"career_rating": 6}, CurrentStep: 1, UpdatedAt: time.Now(),
	}))
	require.NoError(t, repo.SaveProgress(ctx, &model.AssessmentProgress{
		SessionID: "s-1", Answers: model.Answers{"career_rating": 7, "top_goals": []any{"a"}}, CurrentStep: 3, UpdatedAt: time.Now(),
	}))

	progress, err := repo.Progress(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, 3, progress.CurrentStep)
	assert.EqualValues(t, 7, progress.Answers["career_rating"])
	assert.Len(t, progress.Answers, 2)

	require.NoError(t, repo.DeleteProgress(ctx, "s-1"))
	_, err = repo.Progress(ctx, "s-1")
	assert.ErrorIs(t, err, ErrAssessmentProgressNotFound)
}
