package coaching

import (
	"context"
	"log/slog"
	"time"

	"github.com/templui/lifecoach/internal/logger"
	"github.com/templui/lifecoach/internal/model"
)

// ContextStore is the record-store view the builder reads from.
// LatestAssessment returns nil, nil when the user has no assessment on file.
type ContextStore interface {
	ActiveGoals(ctx context.Context, userID string) ([]*model.Goal, error)
	LifeAreas(ctx context.Context, userID string) ([]*model.LifeArea, error)
	RecentSessions(ctx context.Context, userID string, limit int) ([]*model.CoachingSession, error)
	LatestAssessment(ctx context.Context, userID string) (*model.AssessmentResult, error)
}

// Owner identifies the user a context is built for.
type Owner struct {
	User         *model.User
	Profile      *model.Profile
	Subscription *model.Subscription
}

// ActionItem is an open follow-up from a past coaching session.
type ActionItem struct {
	Text      string
	SessionID string
	DueAt     time.Time
}

// CoachingContext is the per-turn snapshot used to personalize a reply. It is built fresh
// for every turn and never modified afterwards.
type CoachingContext struct {
	Owner             Owner
	ActiveGoals       []*model.Goal
	Goals             GoalSummary
	LifeAreas         map[string]int
	RecentSessions    []*model.CoachingSession
	UpcomingDeadlines []Deadline
	OverdueGoals      []Deadline
	ActionItemsDue    []ActionItem
	Assessment        *model.AssessmentResult
	AssessmentContext string
	BuiltAt           time.Time
}

// HasData reports whether anything personal was found for the owner.
func (c *CoachingContext) HasData() bool {
	return len(c.ActiveGoals) > 0 ||
		len(c.LifeAreas) > 0 ||
		len(c.RecentSessions) > 0 ||
		c.Assessment != nil
}

// CoachingStyle returns the owner's declared style, defaulting to supportive.
func (c *CoachingContext) CoachingStyle() string {
	if c.Owner.Profile != nil && model.IsCoachingStyle(c.Owner.Profile.CoachingStyle) {
		return c.Owner.Profile.CoachingStyle
	}
	return model.CoachingStyleSupportive
}

// DisplayName is the name the coach uses for the owner, empty if unknown.
func (c *CoachingContext) DisplayName() string {
	if c.Owner.Profile != nil {
		return c.Owner.Profile.Name
	}
	return ""
}

type ContextBuilder struct {
	store          ContextStore
	recentSessions int
	now            func() time.Time
	log            *slog.Logger
}

func NewContextBuilder(store ContextStore, recentSessions int) *ContextBuilder {
	if recentSessions <= 0 {
		recentSessions = 5
	}
	return &ContextBuilder{
		store:          store,
		recentSessions: recentSessions,
		now:            time.Now,
		log:            logger.Component("coaching_context"),
	}
}

// WithClock replaces the builder's time source.
func (b *ContextBuilder) WithClock(now func() time.Time) *ContextBuilder {
	b.now = now
	return b
}

// Build assembles the coaching context for owner. It never fails: a collection that
// cannot be read is logged and left empty, so callers fall back to a generic prompt.
func (b *ContextBuilder) Build(ctx context.Context, owner Owner) CoachingContext {
	now := b.now()
	cc := CoachingContext{
		Owner:     owner,
		LifeAreas: map[string]int{},
		BuiltAt:   now,
	}

	if owner.User == nil {
		return cc
	}
	userID := owner.User.ID

	goals, err := b.store.ActiveGoals(ctx, userID)
	if err != nil {
		b.log.Warn("coaching context degraded", "user_id", userID, "collection", "goals", "error", err)
		goals = nil
	}
	cc.ActiveGoals = goals
	cc.Goals = Track(goals, now)
	cc.UpcomingDeadlines = cc.Goals.UpcomingDeadlines
	cc.OverdueGoals = cc.Goals.Overdue

	areas, err := b.store.LifeAreas(ctx, userID)
	if err != nil {
		b.log.Warn("coaching context degraded", "user_id", userID, "collection", "life_areas", "error", err)
		areas = nil
	}
	for _, area := range areas {
		if area.IsRated() {
			cc.LifeAreas[area.AreaName] = *area.SatisfactionLevel
		}
	}

	sessions, err := b.store.RecentSessions(ctx, userID, b.recentSessions)
	if err != nil {
		b.log.Warn("coaching context degraded", "user_id", userID, "collection", "sessions", "error", err)
		sessions = nil
	}
	cc.RecentSessions = sessions
	cc.ActionItemsDue = actionItemsDue(sessions, now)

	assessment, err := b.store.LatestAssessment(ctx, userID)
	if err != nil {
		b.log.Warn("coaching context degraded", "user_id", userID, "collection", "assessment", "error", err)
		assessment = nil
	}
	cc.Assessment = assessment
	cc.AssessmentContext = AssessmentContext(assessment)

	b.log.Debug("coaching context built",
		"user_id", userID,
		"goals", len(cc.ActiveGoals),
		"life_areas", len(cc.LifeAreas),
		"sessions", len(cc.RecentSessions),
		"has_assessment", cc.Assessment != nil,
	)

	return cc
}

func actionItemsDue(sessions []*model.CoachingSession, now time.Time) []ActionItem {
	var items []ActionItem
	for _, s := range sessions {
		if !s.FollowUpDue(now) {
			continue
		}
		for _, text := range s.ActionItems {
			items = append(items, ActionItem{Text: text, SessionID: s.ID, DueAt: *s.FollowUpAt})
		}
	}
	return items
}
