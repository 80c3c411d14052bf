package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/templui/lifecoach/internal/model"
)

var (
	ErrAssessmentNotFound         = errors.New("assessment not found")
	ErrAssessmentProgressNotFound = errors.New("assessment progress not found")
)

type AssessmentRepository interface {
	Create(ctx context.Context, result *model.AssessmentResult) error
	Latest(ctx context.Context, userID string) (*model.AssessmentResult, error)
	BySession(ctx context.Context, sessionID string) (*model.AssessmentResult, error)
	// ClaimSession attaches anonymous results of a session to userID.
	ClaimSession(ctx context.Context, sessionID, userID string) error

	SaveProgress(ctx context.Context, progress *model.AssessmentProgress) error
	Progress(ctx context.Context, sessionID string) (*model.AssessmentProgress, error)
	DeleteProgress(ctx context.Context, sessionID string) error
}

type assessmentRepository struct {
	db *sqlx.DB
}

func NewAssessmentRepository(db *sqlx.DB) AssessmentRepository {
	return &assessmentRepository{db: db}
}

func (r *assessmentRepository) Create(ctx context.Context, result *model.AssessmentResult) error {
	query := `
		INSERT INTO assessment_results (
			id, user_id, session_id, life_scores, ai_readiness_score, top_goals,
			biggest_obstacles, pain_points, improvement_priorities, accountability_preference,
			ai_comfort_level, time_drains, unanswered_categories, completed_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := r.db.ExecContext(ctx,
		query,
		result.ID,
		result.UserID,
		result.SessionID,
		result.LifeScores,
		result.AIReadinessScore,
		result.TopGoals,
		result.BiggestObstacles,
		result.PainPoints,
		result.ImprovementPriorities,
		result.AccountabilityPreference,
		result.AIComfortLevel,
		result.TimeDrains,
		result.UnansweredCategories,
		result.CompletedAt,
	)

	return err
}

func (r *assessmentRepository) Latest(ctx context.Context, userID string) (*model.AssessmentResult, error) {
	result := &model.AssessmentResult{}
	query := `SELECT * FROM assessment_results WHERE user_id = $1 ORDER BY completed_at DESC LIMIT 1`

	err := r.db.GetContext(ctx, result, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAssessmentNotFound
	}
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *assessmentRepository) BySession(ctx context.Context, sessionID string) (*model.AssessmentResult, error) {
	result := &model.AssessmentResult{}
	query := `SELECT * FROM assessment_results WHERE session_id = $1 ORDER BY completed_at DESC LIMIT 1`

	err := r.db.GetContext(ctx, result, query, sessionID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAssessmentNotFound
	}
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *assessmentRepository) ClaimSession(ctx context.Context, sessionID, userID string) error {
	query := `UPDATE assessment_results SET user_id = $1 WHERE session_id = $2 AND user_id IS NULL`

	result, err := r.db.ExecContext(ctx, query, userID, sessionID)
	if err != nil {
		return err
	}

	return expectRows(result, ErrAssessmentNotFound)
}

func (r *assessmentRepository) SaveProgress(ctx context.Context, progress *model.AssessmentProgress) error {
	if progress.Answers == nil {
		progress.Answers = model.Answers{}
	}

	query := `INSERT INTO assessment_progress (session_id, user_id, answers, current_step, updated_at)
	          VALUES ($1, $2, $3, $4, $5)
	          ON CONFLICT (session_id)
	          DO UPDATE SET user_id = COALESCE(excluded.user_id, assessment_progress.user_id),
	                        answers = excluded.answers,
	                        current_step = excluded.current_step,
	                        updated_at = excluded.updated_at`

	_, err := r.db.ExecContext(ctx, query,
		progress.SessionID,
		progress.UserID,
		progress.Answers,
		progress.CurrentStep,
		progress.UpdatedAt,
	)

	return err
}

func (r *assessmentRepository) Progress(ctx context.Context, sessionID string) (*model.AssessmentProgress, error) {
	progress := &model.AssessmentProgress{}
	query := `SELECT * FROM assessment_progress WHERE session_id = $1`

	err := r.db.GetContext(ctx, progress, query, sessionID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAssessmentProgressNotFound
	}
	if err != nil {
		return nil, err
	}

	return progress, nil
}

func (r *assessmentRepository) DeleteProgress(ctx context.Context, sessionID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM assessment_progress WHERE session_id = $1`, sessionID)
	return err
}
