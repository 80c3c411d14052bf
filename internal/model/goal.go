package model

import (
	"slices"
	"time"
)

const (
	GoalStatusActive    = "active"
	GoalStatusCompleted = "completed"
	GoalStatusPaused    = "paused"
	GoalStatusArchived  = "archived"
)

const (
	GoalPriorityLow    = "low"
	GoalPriorityMedium = "medium"
	GoalPriorityHigh   = "high"
)

// Life domains a goal can belong to.
const (
	CategoryCareer              = "career"
	CategoryHealth              = "health"
	CategoryRelationships       = "relationships"
	CategoryPersonalDevelopment = "personal_development"
	CategoryFinancial           = "financial"
	CategoryProductivity        = "productivity"
	CategoryCreativity          = "creativity"
	CategorySpirituality        = "spirituality"
	CategoryFamily              = "family"
	CategoryEducation           = "education"
	CategoryRecreation          = "recreation"
	CategoryEnvironment         = "environment"
)

var GoalCategories = []string{
	CategoryCareer,
	CategoryHealth,
	CategoryRelationships,
	CategoryPersonalDevelopment,
	CategoryFinancial,
	CategoryProductivity,
	CategoryCreativity,
	CategorySpirituality,
	CategoryFamily,
	CategoryEducation,
	CategoryRecreation,
	CategoryEnvironment,
}

var GoalStatuses = []string{GoalStatusActive, GoalStatusCompleted, GoalStatusPaused, GoalStatusArchived}

var GoalPriorities = []string{GoalPriorityLow, GoalPriorityMedium, GoalPriorityHigh}

type Goal struct {
	ID                 string     `db:"id" json:"id"`
	UserID             string     `db:"user_id" json:"user_id"`
	Title              string     `db:"title" json:"title"`
	Description        string     `db:"description" json:"description"`
	Category           string     `db:"category" json:"category"`
	TargetDate         *time.Time `db:"target_date" json:"target_date,omitempty"`
	Status             string     `db:"status" json:"status"`
	ProgressPercentage int        `db:"progress_percentage" json:"progress_percentage"`
	Priority           string     `db:"priority" json:"priority"`
	CreatedAt          time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time  `db:"updated_at" json:"updated_at"`
}

// Progress returns the progress percentage honoring the goal invariants:
// clamped to [0,100], and 100 for completed goals.
func (g *Goal) Progress() int {
	if g.Status == GoalStatusCompleted {
		return 100
	}
	return ClampProgress(g.ProgressPercentage)
}

// Normalize applies the progress invariants to the stored fields.
func (g *Goal) Normalize() {
	g.ProgressPercentage = g.Progress()
	if g.Priority == "" {
		g.Priority = GoalPriorityMedium
	}
	if g.Status == "" {
		g.Status = GoalStatusActive
	}
}

func (g *Goal) IsActive() bool {
	return g.Status == GoalStatusActive
}

func ClampProgress(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

func IsGoalCategory(c string) bool {
	return slices.Contains(GoalCategories, c)
}

func IsGoalStatus(s string) bool {
	return slices.Contains(GoalStatuses, s)
}

func IsGoalPriority(p string) bool {
	return slices.Contains(GoalPriorities, p)
}
