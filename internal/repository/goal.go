package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/templui/lifecoach/internal/model"
)

const (
	GoalSortRecent   = "recent"
	GoalSortProgress = "progress"
	GoalSortTitle    = "title"
	GoalSortDeadline = "deadline"
)

var (
	ErrGoalNotFound = errors.New("goal not found")
)

type GoalRepository interface {
	Create(ctx context.Context, goal *model.Goal) error
	ByID(ctx context.Context, userID, goalID string) (*model.Goal, error)
	Goals(ctx context.Context, userID, sortBy string) ([]*model.Goal, error)
	ActiveGoals(ctx context.Context, userID string) ([]*model.Goal, error)
	CountActive(ctx context.Context, userID string) (int, error)
	Update(ctx context.Context, goal *model.Goal) error
	Delete(ctx context.Context, userID, goalID string) error
}

type goalRepository struct {
	db *sqlx.DB
}

func NewGoalRepository(db *sqlx.DB) GoalRepository {
	return &goalRepository{db: db}
}

func (r *goalRepository) Create(ctx context.Context, goal *model.Goal) error {
	query := `INSERT INTO goals (id, user_id, title, description, category, target_date, status,
	                             progress_percentage, priority, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.ExecContext(ctx, query,
		goal.ID,
		goal.UserID,
		goal.Title,
		goal.Description,
		goal.Category,
		goal.TargetDate,
		goal.Status,
		goal.ProgressPercentage,
		goal.Priority,
		goal.CreatedAt,
		goal.UpdatedAt,
	)

	return err
}

func (r *goalRepository) ByID(ctx context.Context, userID, goalID string) (*model.Goal, error) {
	goal := &model.Goal{}
	query := `SELECT * FROM goals WHERE id = $1 AND user_id = $2`

	err := r.db.GetContext(ctx, goal, query, goalID, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrGoalNotFound
	}
	if err != nil {
		return nil, err
	}

	return goal, nil
}

func (r *goalRepository) Goals(ctx context.Context, userID, sortBy string) ([]*model.Goal, error) {
	var goals []*model.Goal

	// Validate and build ORDER BY clause
	var orderBy string
	switch sortBy {
	case GoalSortProgress:
		orderBy = "ORDER BY progress_percentage DESC, updated_at DESC"
	case GoalSortTitle:
		orderBy = "ORDER BY LOWER(title) ASC"
	case GoalSortDeadline:
		orderBy = "ORDER BY target_date IS NULL, target_date ASC"
	default: // GoalSortRecent or empty
		orderBy = "ORDER BY updated_at DESC"
	}

	query := `SELECT * FROM goals WHERE user_id = $1 ` + orderBy

	if err := r.db.SelectContext(ctx, &goals, query, userID); err != nil {
		return nil, err
	}

	return goals, nil
}

// ActiveGoals returns the goals the coach should know about, oldest first.
func (r *goalRepository) ActiveGoals(ctx context.Context, userID string) ([]*model.Goal, error) {
	var goals []*model.Goal
	query := `SELECT * FROM goals WHERE user_id = $1 AND status = $2 ORDER BY created_at ASC`

	if err := r.db.SelectContext(ctx, &goals, query, userID, model.GoalStatusActive); err != nil {
		return nil, err
	}

	return goals, nil
}

func (r *goalRepository) CountActive(ctx context.Context, userID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM goals WHERE user_id = $1 AND status = $2`
	err := r.db.GetContext(ctx, &count, query, userID, model.GoalStatusActive)
	return count, err
}

func (r *goalRepository) Update(ctx context.Context, goal *model.Goal) error {
	goal.UpdatedAt = time.Now()

	query := `UPDATE goals
	          SET title = $1, description = $2, category = $3, target_date = $4, status = $5,
	              progress_percentage = $6, priority = $7, updated_at = $8
	          WHERE id = $9 AND user_id = $10`

	result, err := r.db.ExecContext(ctx, query,
		goal.Title,
		goal.Description,
		goal.Category,
		goal.TargetDate,
		goal.Status,
		goal.ProgressPercentage,
		goal.Priority,
		goal.UpdatedAt,
		goal.ID,
		goal.UserID,
	)
	if err != nil {
		return err
	}

	return expectRows(result, ErrGoalNotFound)
}

func (r *goalRepository) Delete(ctx context.Context, userID, goalID string) error {
	query := `DELETE FROM goals WHERE id = $1 AND user_id = $2`
	result, err := r.db.ExecContext(ctx, query, goalID, userID)
	if err != nil {
		return err
	}

	return expectRows(result, ErrGoalNotFound)
}
