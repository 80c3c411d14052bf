package coaching

import (
	"slices"
	"time"

	"github.com/samber/lo"
	"github.com/templui/lifecoach/internal/model"
)

const (
	stagnantProgress     = 25
	stagnantAfterDays    = 30
	highProgress         = 75
	upcomingDeadlineDays = 30
)

// Status labels by progress band.
const (
	LabelJustStarted    = "just started"
	LabelMakingProgress = "making progress"
	LabelWellUnderway   = "well underway"
	LabelNearlyComplete = "nearly complete"
)

// TrackedGoal is a goal annotated with its derived signals.
type TrackedGoal struct {
	Goal         *model.Goal `json:"goal"`
	Label        string      `json:"label"`
	Stagnant     bool        `json:"stagnant"`
	HighProgress bool        `json:"high_progress"`
	AgeDays      int         `json:"age_days"`
	// DaysUntil is nil when the goal has no target date.
	DaysUntil *int `json:"days_until,omitempty"`
}

// Deadline pairs a goal with the calendar days left until its target date.
type Deadline struct {
	Goal      *model.Goal `json:"goal"`
	DaysUntil int         `json:"days_until"`
}

// GoalSummary is the tracker output for a goal collection.
type GoalSummary struct {
	Goals             []TrackedGoal `json:"goals"`
	Stagnant          []TrackedGoal `json:"stagnant"`
	HighProgress      []TrackedGoal `json:"high_progress"`
	InProgress        []TrackedGoal `json:"in_progress"`
	UpcomingDeadlines []Deadline    `json:"upcoming_deadlines"`
	Overdue           []Deadline    `json:"overdue"`
}

// StatusLabel maps a progress percentage to its label.
func StatusLabel(progress int) string {
	switch {
	case progress < 25:
		return LabelJustStarted
	case progress < 50:
		return LabelMakingProgress
	case progress < 75:
		return LabelWellUnderway
	default:
		return LabelNearlyComplete
	}
}

// AgeDays is the number of whole days since the goal was created.
func AgeDays(g *model.Goal, now time.Time) int {
	if g.CreatedAt.IsZero() || now.Before(g.CreatedAt) {
		return 0
	}
	return int(now.Sub(g.CreatedAt).Hours() / 24)
}

// IsStagnant reports a goal under 25% that is more than 30 days old.
func IsStagnant(g *model.Goal, now time.Time) bool {
	return g.Progress() < stagnantProgress && AgeDays(g, now) > stagnantAfterDays
}

// IsHighProgress reports a goal past 75%.
func IsHighProgress(g *model.Goal) bool {
	return g.Progress() > highProgress
}

// DaysUntil counts calendar days from now's date to target's date. Each date is read in
// its own location, so a date-only target stored at UTC midnight keeps its day wherever
// the server runs. Due later today is 0, tomorrow is 1, yesterday is -1.
func DaysUntil(target, now time.Time) int {
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(target.Year(), target.Month(), target.Day(), 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}

// UpcomingDeadlines lists goals due within the next 30 days, soonest first.
func UpcomingDeadlines(goals []*model.Goal, now time.Time) []Deadline {
	deadlines := lo.FilterMap(goals, func(g *model.Goal, _ int) (Deadline, bool) {
		if g.TargetDate == nil {
			return Deadline{}, false
		}
		days := DaysUntil(*g.TargetDate, now)
		return Deadline{Goal: g, DaysUntil: days}, days > 0 && days <= upcomingDeadlineDays
	})

	slices.SortStableFunc(deadlines, func(a, b Deadline) int {
		return a.DaysUntil - b.DaysUntil
	})
	return deadlines
}

// OverdueGoals lists goals whose target date is today or already past, most overdue first.
func OverdueGoals(goals []*model.Goal, now time.Time) []Deadline {
	overdue := lo.FilterMap(goals, func(g *model.Goal, _ int) (Deadline, bool) {
		if g.TargetDate == nil || g.Status == model.GoalStatusCompleted {
			return Deadline{}, false
		}
		days := DaysUntil(*g.TargetDate, now)
		return Deadline{Goal: g, DaysUntil: days}, days <= 0
	})

	slices.SortStableFunc(overdue, func(a, b Deadline) int {
		return a.DaysUntil - b.DaysUntil
	})
	return overdue
}

// Track classifies every goal and collects the aggregate signals.
func Track(goals []*model.Goal, now time.Time) GoalSummary {
	summary := GoalSummary{
		Goals:             make([]TrackedGoal, 0, len(goals)),
		UpcomingDeadlines: UpcomingDeadlines(goals, now),
		Overdue:           OverdueGoals(goals, now),
	}

	for _, g := range goals {
		tg := TrackedGoal{
			Goal:         g,
			Label:        StatusLabel(g.Progress()),
			Stagnant:     IsStagnant(g, now),
			HighProgress: IsHighProgress(g),
			AgeDays:      AgeDays(g, now),
		}
		if g.TargetDate != nil {
			days := DaysUntil(*g.TargetDate, now)
			tg.DaysUntil = &days
		}

		summary.Goals = append(summary.Goals, tg)
		if tg.Stagnant {
			summary.Stagnant = append(summary.Stagnant, tg)
		}
		if tg.HighProgress {
			summary.HighProgress = append(summary.HighProgress, tg)
		}
		if g.Progress() > 0 {
			summary.InProgress = append(summary.InProgress, tg)
		}
	}

	return summary
}
