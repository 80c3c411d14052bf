package coaching

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/templui/lifecoach/internal/model"
)

var trackerNow = time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

func daysAgo(n int) time.Time {
	return trackerNow.AddDate(0, 0, -n)
}

func dueIn(n int) *time.Time {
	t := trackerNow.AddDate(0, 0, n)
	return &t
}

func TestStatusLabel(t *testing.T) {
	tests := []struct {
		progress int
		want     string
	}{
		{0, LabelJustStarted},
		{24, LabelJustStarted},
		{25, LabelMakingProgress},
		{49, LabelMakingProgress},
		{50, LabelWellUnderway},
		{74, LabelWellUnderway},
		{75, LabelNearlyComplete},
		{100, LabelNearlyComplete},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusLabel(tt.progress), "progress %d", tt.progress)
	}
}

func TestIsStagnant(t *testing.T) {
	tests := []struct {
		name     string
		progress int
		age      int
		want     bool
	}{
		{"old and barely started", 20, 40, true},
		{"just under threshold", 24, 31, true},
		{"at progress threshold", 25, 40, false},
		{"exactly thirty days old", 10, 30, false},
		{"thirty one days old", 10, 31, true},
		{"new goal", 0, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &model.Goal{Status: model.GoalStatusActive, ProgressPercentage: tt.progress, CreatedAt: daysAgo(tt.age)}
			assert.Equal(t, tt.want, IsStagnant(g, trackerNow))
		})
	}
}

func TestIsHighProgress(t *testing.T) {
	assert.False(t, IsHighProgress(&model.Goal{ProgressPercentage: 75}))
	assert.True(t, IsHighProgress(&model.Goal{ProgressPercentage: 76}))
	assert.True(t, IsHighProgress(&model.Goal{Status: model.GoalStatusCompleted, ProgressPercentage: 10}))
}

func TestAgeDays(t *testing.T) {
	assert.Equal(t, 40, AgeDays(&model.Goal{CreatedAt: daysAgo(40)}, trackerNow))
	assert.Equal(t, 0, AgeDays(&model.Goal{CreatedAt: trackerNow.Add(time.Hour)}, trackerNow))
	assert.Equal(t, 0, AgeDays(&model.Goal{}, trackerNow))
}

func TestDaysUntil(t *testing.T) {
	assert.Equal(t, 0, DaysUntil(trackerNow.Add(5*time.Hour), trackerNow))
	assert.Equal(t, 1, DaysUntil(time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC), trackerNow))
	assert.Equal(t, -1, DaysUntil(time.Date(2025, 3, 14, 23, 59, 0, 0, time.UTC), trackerNow))
	assert.Equal(t, 30, DaysUntil(*dueIn(30), trackerNow))

	// Date-only targets are stored at UTC midnight; a server west of UTC keeps the day.
	pacific := time.FixedZone("PST", -8*60*60)
	evening := time.Date(2025, 3, 15, 18, 0, 0, 0, pacific)
	assert.Equal(t, 1, DaysUntil(time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC), evening))
	assert.Equal(t, 0, DaysUntil(time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), evening))

	// Spans the spring-forward change in New York.
	ny, err := time.LoadLocation("America/New_York")
	if err == nil {
		from := time.Date(2025, 3, 8, 12, 0, 0, 0, ny)
		to := time.Date(2025, 3, 10, 0, 0, 0, 0, ny)
		assert.Equal(t, 2, DaysUntil(to, from))
	}
}

func TestUpcomingDeadlines(t *testing.T) {
	goals := []*model.Goal{
		{ID: "far", TargetDate: dueIn(31)},
		{ID: "month", TargetDate: dueIn(30)},
		{ID: "soon", TargetDate: dueIn(3)},
		{ID: "today", TargetDate: dueIn(0)},
		{ID: "late", TargetDate: dueIn(-2)},
		{ID: "none"},
		{ID: "week", TargetDate: dueIn(7)},
	}

	deadlines := UpcomingDeadlines(goals, trackerNow)

	require.Len(t, deadlines, 3)
	assert.Equal(t, "soon", deadlines[0].Goal.ID)
	assert.Equal(t, 3, deadlines[0].DaysUntil)
	assert.Equal(t, "week", deadlines[1].Goal.ID)
	assert.Equal(t, "month", deadlines[2].Goal.ID)
	assert.Equal(t, 30, deadlines[2].DaysUntil)
}

func TestOverdueGoals(t *testing.T) {
	goals := []*model.Goal{
		{ID: "today", Status: model.GoalStatusActive, TargetDate: dueIn(0)},
		{ID: "late", Status: model.GoalStatusActive, TargetDate: dueIn(-5)},
		{ID: "done", Status: model.GoalStatusCompleted, TargetDate: dueIn(-10)},
		{ID: "future", Status: model.GoalStatusActive, TargetDate: dueIn(4)},
		{ID: "none", Status: model.GoalStatusActive},
	}

	overdue := OverdueGoals(goals, trackerNow)

	require.Len(t, overdue, 2)
	assert.Equal(t, "late", overdue[0].Goal.ID)
	assert.Equal(t, -5, overdue[0].DaysUntil)
	assert.Equal(t, "today", overdue[1].Goal.ID)
}

func TestTrack(t *testing.T) {
	stalled := &model.Goal{ID: "stalled", Title: "Meditate daily", Status: model.GoalStatusActive, ProgressPercentage: 20, CreatedAt: daysAgo(40)}
	almost := &model.Goal{ID: "almost", Title: "Read 12 books", Status: model.GoalStatusActive, ProgressPercentage: 80, CreatedAt: daysAgo(90), TargetDate: dueIn(10)}
	fresh := &model.Goal{ID: "fresh", Title: "Learn Spanish", Status: model.GoalStatusActive, CreatedAt: daysAgo(1)}

	summary := Track([]*model.Goal{stalled, almost, fresh}, trackerNow)

	require.Len(t, summary.Goals, 3)
	assert.Equal(t, LabelJustStarted, summary.Goals[0].Label)
	assert.True(t, summary.Goals[0].Stagnant)
	assert.Nil(t, summary.Goals[0].DaysUntil)
	assert.Equal(t, 40, summary.Goals[0].AgeDays)

	require.NotNil(t, summary.Goals[1].DaysUntil)
	assert.Equal(t, 10, *summary.Goals[1].DaysUntil)
	assert.Equal(t, LabelNearlyComplete, summary.Goals[1].Label)

	require.Len(t, summary.Stagnant, 1)
	assert.Equal(t, "stalled", summary.Stagnant[0].Goal.ID)
	require.Len(t, summary.HighProgress, 1)
	assert.Equal(t, "almost", summary.HighProgress[0].Goal.ID)
	assert.Len(t, summary.InProgress, 2)
	require.Len(t, summary.UpcomingDeadlines, 1)
	assert.Empty(t, summary.Overdue)
}

func TestTrackEmpty(t *testing.T) {
	summary := Track(nil, trackerNow)
	assert.Empty(t, summary.Goals)
	assert.Empty(t, summary.Stagnant)
	assert.Empty(t, summary.UpcomingDeadlines)
}
