package model

import "time"

// AssessmentCategories are the life categories scored by the intake assessment, in
// questionnaire order.
var AssessmentCategories = []string{
	CategoryCareer,
	CategoryHealth,
	CategoryRelationships,
	CategoryPersonalDevelopment,
	CategoryFinancial,
	CategoryProductivity,
	CategoryCreativity,
}

type AssessmentResult struct {
	ID                       string     `db:"id" json:"id"`
	UserID                   *string    `db:"user_id" json:"user_id,omitempty"`
	SessionID                string     `db:"session_id" json:"session_id"`
	LifeScores               ScoreMap   `db:"life_scores" json:"life_scores"`
	AIReadinessScore         int        `db:"ai_readiness_score" json:"ai_readiness_score"`
	TopGoals                 StringList `db:"top_goals" json:"top_goals"`
	BiggestObstacles         StringList `db:"biggest_obstacles" json:"biggest_obstacles"`
	PainPoints               StringMap  `db:"pain_points" json:"pain_points"`
	ImprovementPriorities    StringList `db:"improvement_priorities" json:"improvement_priorities"`
	AccountabilityPreference int        `db:"accountability_preference" json:"accountability_preference"`
	AIComfortLevel           int        `db:"ai_comfort_level" json:"ai_comfort_level"`
	TimeDrains               StringList `db:"time_drains" json:"time_drains"`
	UnansweredCategories     StringList `db:"unanswered_categories" json:"unanswered_categories"`
	CompletedAt              time.Time  `db:"completed_at" json:"completed_at"`
}

// AssessmentProgress holds a partially completed questionnaire, keyed by session id.
type AssessmentProgress struct {
	SessionID   string    `db:"session_id" json:"session_id"`
	UserID      *string   `db:"user_id" json:"user_id,omitempty"`
	Answers     Answers   `db:"answers" json:"answers"`
	CurrentStep int       `db:"current_step" json:"current_step"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// AssessmentInsights is the on-demand projection of an AssessmentResult.
type AssessmentInsights struct {
	OverallScore         float64  `json:"overall_score"`
	StrongestAreas       []string `json:"strongest_areas"`
	WeakestAreas         []string `json:"weakest_areas"`
	UnansweredCategories []string `json:"unanswered_categories"`
	ReadinessLabel       string   `json:"readiness_label"`
	AccountabilityStyle  string   `json:"accountability_style"`
	Summary              string   `json:"summary"`
}
