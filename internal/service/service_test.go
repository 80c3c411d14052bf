package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/templui/lifecoach/internal/coaching"
	"github.com/templui/lifecoach/internal/db"
	"github.com/templui/lifecoach/internal/model"
	"github.com/templui/lifecoach/internal/repository"
)

type testEnv struct {
	users         *UserService
	profiles      *ProfileService
	subscriptions *SubscriptionService
	goals         *GoalService
	lifeAreas     *LifeAreaService
	sessions      *CoachingSessionService
	assessments   *AssessmentService
	store         coaching.ContextStore
	reports       *memoryStorage
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database, err := db.Open("sqlite", filepath.Join(t.TempDir(), "test.db")+"?_pragma=foreign_keys(1)")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	userRepo := repository.NewUserRepository(database)
	profileRepo := repository.NewProfileRepository(database)
	subscriptionRepo := repository.NewSubscriptionRepository(database)
	goalRepo := repository.NewGoalRepository(database)
	lifeAreaRepo := repository.NewLifeAreaRepository(database)
	sessionRepo := repository.NewCoachingSessionRepository(database)
	assessmentRepo := repository.NewAssessmentRepository(database)

	subscriptions := NewSubscriptionService(subscriptionRepo)
	reports := newMemoryStorage()
	email := NewEmailService("", "coach@example.com", "http://localhost:8090", "Lifecoach", true)

	return &testEnv{
		users:         NewUserService(userRepo, profileRepo, subscriptions),
		profiles:      NewProfileService(profileRepo),
		subscriptions: subscriptions,
		goals:         NewGoalService(goalRepo, subscriptions),
		lifeAreas:     NewLifeAreaService(lifeAreaRepo),
		sessions:      NewCoachingSessionService(sessionRepo),
		assessments:   NewAssessmentService(assessmentRepo, profileRepo, email, reports, "https://coach.example.com", "Lifecoach"),
		store:         NewCoachingStore(goalRepo, lifeAreaRepo, sessionRepo, assessmentRepo),
		reports:       reports,
	}
}

type memoryStorage struct {
	objects map[string][]byte
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{objects: map[string][]byte{}}
}

func (m *memoryStorage) Save(ctx context.Context, key string, data []byte, contentType string) error {
	m.objects[key] = data
	return nil
}

func (m *memoryStorage) Delete(ctx context.Context, key string) error {
	delete(m.objects, key)
	return nil
}

func (m *memoryStorage) URL(ctx context.Context, key string) (string, error) {
	return "https://files.example.com/" + key, nil
}

func (e *testEnv) user(t *testing.T, email string) *model.User {
	t.Helper()
	user, err := e.users.Create(context.Background(), email, "Sam")
	require.NoError(t, err)
	return user
}

func goalInput(title string) GoalInput {
	return GoalInput{Title: title, Category: model.CategoryHealth}
}

func TestUserServiceCreate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user, err := env.users.Create(ctx, "  Sam@Example.com ", "Sam")
	require.NoError(t, err)
	assert.Equal(t, "sam@example.com", user.Email)

	profile, err := env.profiles.ByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, model.CoachingStyleSupportive, profile.CoachingStyle)

	sub, err := env.subscriptions.Subscription(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, model.SubscriptionPlanFree, sub.PlanID)
	assert.NotEmpty(t, sub.ID)

	_, err = env.users.Create(ctx, "sam@example.com", "Other")
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)

	_, err = env.users.Create(ctx, "nope", "x")
	assert.Error(t, err)

	found, err := env.users.ByEmail(ctx, "SAM@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
}

func TestSubscriptionServiceDefaultsToFree(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	sub, err := env.subscriptions.Subscription(ctx, "no-record")
	require.NoError(t, err)
	assert.False(t, sub.IsPaid())
	assert.Equal(t, 3, sub.GetGoalLimit())

	user := env.user(t, "pro@example.com")
	sub, err = env.subscriptions.ChangePlan(ctx, user.ID, model.SubscriptionPlanPro)
	require.NoError(t, err)
	assert.True(t, sub.IsPaid())

	sub, err = env.subscriptions.Subscription(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, model.SubscriptionPlanPro, sub.PlanID)
}

func TestProfileServiceCoachingStyle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.user(t, "style@example.com")

	require.NoError(t, env.profiles.UpdateCoachingStyle(ctx, user.ID, " Direct "))
	profile, err := env.profiles.ByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, model.CoachingStyleDirect, profile.CoachingStyle)

	assert.Error(t, env.profiles.UpdateCoachingStyle(ctx, user.ID, "drill-sergeant"))
	assert.Error(t, env.profiles.UpdateName(ctx, user.ID, " "))
	require.NoError(t, env.profiles.UpdateName(ctx, user.ID, "Samantha"))
}

func TestGoalServiceCreate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.user(t, "goals@example.com")

	goal, err := env.goals.Create(ctx, user.ID, GoalInput{Title: "  Run a 10k ", Category: model.CategoryHealth, Priority: model.GoalPriorityHigh})
	require.NoError(t, err)
	assert.Equal(t, "Run a 10k", goal.Title)
	assert.Equal(t, model.GoalStatusActive, goal.Status)

	_, err = env.goals.Create(ctx, user.ID, GoalInput{Title: "", Category: model.CategoryHealth})
	assert.ErrorIs(t, err, ErrInvalidGoal)

	_, err = env.goals.Create(ctx, user.ID, GoalInput{Title: "x", Category: "hobbies"})
	assert.ErrorIs(t, err, ErrInvalidGoal)

	done, err := env.goals.Create(ctx, user.ID, GoalInput{Title: "Old win", Category: model.CategoryCareer, Status: model.GoalStatusCompleted})
	require.NoError(t, err)
	assert.Equal(t, 100, done.ProgressPercentage)
}

func TestGoalServicePlanLimit(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.user(t, "limit@example.com")

	for _, title := range []string{"one", "two", "three"} {
		_, err := env.goals.Create(ctx, user.ID, goalInput(title))
		require.NoError(t, err)
	}

	_, err := env.goals.Create(ctx, user.ID, goalInput("four"))
	assert.ErrorIs(t, err, ErrGoalLimitReached)

	// Paused goals do not count against the limit
	paused, err := env.goals.Create(ctx, user.ID, GoalInput{Title: "later", Category: model.CategoryFamily, Status: model.GoalStatusPaused})
	require.NoError(t, err)

	_, err = env.goals.Update(ctx, user.ID, paused.ID, GoalInput{Title: "later", Category: model.CategoryFamily, Status: model.GoalStatusActive})
	assert.ErrorIs(t, err, ErrGoalLimitReached)

	_, err = env.subscriptions.ChangePlan(ctx, user.ID, model.SubscriptionPlanPro)
	require.NoError(t, err)

	_, err = env.goals.Create(ctx, user.ID, goalInput("four"))
	assert.NoError(t, err)
}

func TestGoalServiceUpdateProgress(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.user(t, "progress@example.com")

	goal, err := env.goals.Create(ctx, user.ID, goalInput("Read more"))
	require.NoError(t, err)

	goal, err = env.goals.UpdateProgress(ctx, user.ID, goal.ID, 150)
	require.NoError(t, err)
	assert.Equal(t, 100, goal.ProgressPercentage)
	assert.Equal(t, model.GoalStatusActive, goal.Status)

	goal, err = env.goals.UpdateProgress(ctx, user.ID, goal.ID, -5)
	require.NoError(t, err)
	assert.Equal(t, 0, goal.ProgressPercentage)

	progress := 30
	goal, err = env.goals.Update(ctx, user.ID, goal.ID, GoalInput{Title: "Read more", Category: model.CategoryEducation, Status: model.GoalStatusCompleted, ProgressPercentage: &progress})
	require.NoError(t, err)
	assert.Equal(t, 100, goal.ProgressPercentage)

	goal, err = env.goals.UpdateProgress(ctx, user.ID, goal.ID, 60)
	require.NoError(t, err)
	assert.Equal(t, model.GoalStatusActive, goal.Status)
	assert.Equal(t, 60, goal.ProgressPercentage)

	stored, err := env.goals.ByID(ctx, user.ID, goal.ID)
	require.NoError(t, err)
	assert.Equal(t, 60, stored.ProgressPercentage)
	assert.Equal(t, model.CategoryEducation, stored.Category)

	_, err = env.goals.UpdateProgress(ctx, "someone-else", goal.ID, 10)
	assert.ErrorIs(t, err, repository.ErrGoalNotFound)

	require.NoError(t, env.goals.Delete(ctx, user.ID, goal.ID))
	assert.ErrorIs(t, env.goals.Delete(ctx, user.ID, goal.ID), repository.ErrGoalNotFound)
}

func TestLifeAreaServiceRate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.user(t, "areas@example.com")

	area, err := env.lifeAreas.Rate(ctx, user.ID, model.CategoryFinancial, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, *area.SatisfactionLevel)

	area, err = env.lifeAreas.Rate(ctx, user.ID, model.CategoryFinancial, 6)
	require.NoError(t, err)
	assert.Equal(t, 6, *area.SatisfactionLevel)

	_, err = env.lifeAreas.Rate(ctx, user.ID, model.CategoryFinancial, 0)
	assert.Error(t, err)
	_, err = env.lifeAreas.Rate(ctx, user.ID, "astrology", 5)
	assert.Error(t, err)

	areas, err := env.lifeAreas.LifeAreas(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, areas, 1)
}

func TestCoachingSessionServiceRecord(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.user(t, "sessions@example.com")

	session, err := env.sessions.Record(ctx, user.ID, SessionInput{
		Summary:     " Planned the week ",
		ActionItems: []string{"Book gym", " ", "Call mentor"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Planned the week", session.Summary)
	assert.Equal(t, model.StringList{"Book gym", "Call mentor"}, session.ActionItems)

	recent, err := env.sessions.Recent(ctx, user.ID, 0)
	require.NoError(t, err)
	assert.Len(t, recent, 1)
}

func TestAssessmentServiceFlow(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.user(t, "assess@example.com")

	_, err := env.assessments.SaveProgress(ctx, "sess-1", nil, model.Answers{"career_rating": 8}, 1)
	require.NoError(t, err)

	progress, err := env.assessments.SaveProgress(ctx, "sess-1", user, model.Answers{"health_rating": 3}, 99)
	require.NoError(t, err)
	assert.Equal(t, coaching.StepCount(), progress.CurrentStep)
	assert.Len(t, progress.Answers, 2)

	report, err := env.assessments.Submit(ctx, "sess-1", user, model.Answers{"top_goals": []any{"Sleep 8h"}})
	require.NoError(t, err)
	assert.Equal(t, 8, report.Result.LifeScores["career"])
	assert.Equal(t, 3, report.Result.LifeScores["health"])
	assert.Equal(t, model.StringList{"relationships", "personal_development", "financial"}, report.Result.ImprovementPriorities)
	assert.Equal(t, model.StringList{"Sleep 8h"}, report.Result.TopGoals)
	assert.Equal(t, []string{"career"}, report.Insights.StrongestAreas)

	_, err = env.assessments.Progress(ctx, "sess-1")
	assert.ErrorIs(t, err, repository.ErrAssessmentProgressNotFound)

	latest, err := env.assessments.Latest(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, report.Result.ID, latest.Result.ID)
	assert.Equal(t, "sess-1", latest.Result.SessionID)

	// The store hands the assessment to the context builder
	stored, err := env.store.LatestAssessment(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
}

func TestAssessmentServiceEdgeCases(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.assessments.Submit(ctx, "empty", nil, nil)
	assert.ErrorIs(t, err, ErrEmptyAssessment)

	_, err = env.assessments.Submit(ctx, " ", nil, model.Answers{"career_rating": 1})
	assert.ErrorIs(t, err, ErrInvalidSessionID)

	report, err := env.assessments.Submit(ctx, "anon", nil, model.Answers{"career_rating": 5})
	require.NoError(t, err)
	assert.Nil(t, report.Result.UserID)

	user := env.user(t, "later@example.com")
	require.NoError(t, env.assessments.Claim(ctx, "anon", user.ID))

	latest, err := env.assessments.Latest(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, report.Result.ID, latest.Result.ID)

	stored, err := env.store.LatestAssessment(ctx, "nobody")
	assert.NoError(t, err)
	assert.Nil(t, stored)
}

func TestAuthServiceJWT(t *testing.T) {
	auth := NewAuthService("secret", time.Hour)
	user := &model.User{ID: "user-42", Email: "jwt@example.com"}

	token, err := auth.GenerateJWT(user)
	require.NoError(t, err)

	userID, err := auth.UserID(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", userID)

	_, err = NewAuthService("other", time.Hour).VerifyJWT(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired, err := NewAuthService("secret", -time.Minute).GenerateJWT(user)
	require.NoError(t, err)
	_, err = auth.UserID(expired)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestAssessmentReportTemplate(t *testing.T) {
	result := coaching.ScoreAssessment(map[string]any{"career_rating": 8, "top_goals": []any{"Ship the side project"}})
	subject, body := assessmentReportTemplate("Sam", "https://coach.example.com", "Lifecoach", result, coaching.Insights(result))

	assert.Equal(t, "Your Lifecoach life assessment results", subject)
	assert.Contains(t, body, "Hi Sam,")
	assert.Contains(t, body, "| Career | 8/10 |")
	assert.Contains(t, body, "| Health | not rated |")
	assert.Contains(t, body, "- Ship the side project")
	assert.Contains(t, body, "https://coach.example.com/coach")
}

func TestAssessmentReportArchive(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.user(t, "archive@example.com")

	report, err := env.assessments.Submit(ctx, "sess-archive", user, model.Answers{"career_rating": 7})
	require.NoError(t, err)

	page, ok := env.reports.objects["reports/"+report.Result.ID+".html"]
	require.True(t, ok)
	assert.Contains(t, string(page), "<title>Your Lifecoach life assessment results</title>")
	assert.Contains(t, string(page), "<table>")
	assert.Contains(t, string(page), "Hi Sam,")

	url, err := env.assessments.ReportURL(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://files.example.com/reports/"+report.Result.ID+".html", url)

	_, err = env.assessments.ReportURL(ctx, "no-results")
	assert.ErrorIs(t, err, repository.ErrAssessmentNotFound)

	disabled := NewAssessmentService(nil, nil, nil, nil, "", "")
	_, err = disabled.ReportURL(ctx, user.ID)
	assert.ErrorIs(t, err, ErrReportsDisabled)
}
