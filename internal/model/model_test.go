package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoalProgressInvariants(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		progress int
		want     int
	}{
		{"negative clamps to zero", GoalStatusActive, -10, 0},
		{"over 100 clamps", GoalStatusActive, 140, 100},
		{"in range unchanged", GoalStatusPaused, 42, 42},
		{"completed always 100", GoalStatusCompleted, 10, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &Goal{Status: tt.status, ProgressPercentage: tt.progress}
			assert.Equal(t, tt.want, g.Progress())

			g.Normalize()
			assert.Equal(t, tt.want, g.ProgressPercentage)
		})
	}
}

func TestGoalNormalizeDefaults(t *testing.T) {
	g := &Goal{}
	g.Normalize()
	assert.Equal(t, GoalPriorityMedium, g.Priority)
	assert.Equal(t, GoalStatusActive, g.Status)
}

func TestEnumHelpers(t *testing.T) {
	assert.Len(t, GoalCategories, 12)
	assert.True(t, IsGoalCategory(CategoryFinancial))
	assert.False(t, IsGoalCategory("hobbies"))
	assert.True(t, IsGoalStatus(GoalStatusArchived))
	assert.True(t, IsGoalPriority(GoalPriorityHigh))
	assert.True(t, IsCoachingStyle(CoachingStyleAnalytical))
	assert.False(t, IsCoachingStyle("gentle"))
}

func TestSubscriptionEntitlement(t *testing.T) {
	var none *Subscription
	assert.False(t, none.IsPaid())

	free := FreeSubscription("u1")
	assert.False(t, free.IsPaid())
	assert.Equal(t, 3, free.GetGoalLimit())
	assert.False(t, free.HasFeature(FeaturePersonalCoaching))

	pro := &Subscription{PlanID: SubscriptionPlanPro, Status: SubscriptionStatusActive}
	assert.True(t, pro.IsPaid())
	assert.True(t, pro.HasFeature(FeaturePersonalCoaching))

	pro.Status = SubscriptionStatusCancelled
	assert.False(t, pro.IsPaid())
	assert.Equal(t, 3, pro.GetGoalLimit())
}

func TestJSONColumnsRoundTrip(t *testing.T) {
	var list StringList
	v, err := StringList(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)

	require.NoError(t, list.Scan([]byte(`["a","b"]`)))
	assert.Equal(t, StringList{"a", "b"}, list)

	var scores ScoreMap
	require.NoError(t, scores.Scan(`{"career":8}`))
	assert.Equal(t, 8, scores["career"])

	var answers Answers
	require.NoError(t, answers.Scan(nil))
	assert.Nil(t, answers)

	assert.Error(t, answers.Scan(42))
}

func TestFollowUpDue(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	assert.False(t, (&CoachingSession{}).FollowUpDue(now))
	assert.True(t, (&CoachingSession{FollowUpAt: &past}).FollowUpDue(now))
	assert.True(t, (&CoachingSession{FollowUpAt: &now}).FollowUpDue(now))
	assert.False(t, (&CoachingSession{FollowUpAt: &future}).FollowUpDue(now))
}
