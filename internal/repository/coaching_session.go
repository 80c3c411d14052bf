package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/templui/lifecoach/internal/model"
)

type CoachingSessionRepository interface {
	Create(ctx context.Context, session *model.CoachingSession) error
	Recent(ctx context.Context, userID string, limit int) ([]*model.CoachingSession, error)
}

type coachingSessionRepository struct {
	db *sqlx.DB
}

func NewCoachingSessionRepository(db *sqlx.DB) CoachingSessionRepository {
	return &coachingSessionRepository{db: db}
}

func (r *coachingSessionRepository) Create(ctx context.Context, session *model.CoachingSession) error {
	if session.ActionItems == nil {
		session.ActionItems = model.StringList{}
	}

	query := `INSERT INTO coaching_sessions (id, user_id, summary, action_items, follow_up_at, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, query,
		session.ID,
		session.UserID,
		session.Summary,
		session.ActionItems,
		session.FollowUpAt,
		session.CreatedAt,
	)

	return err
}

// Recent returns up to limit sessions, newest first.
func (r *coachingSessionRepository) Recent(ctx context.Context, userID string, limit int) ([]*model.CoachingSession, error) {
	var sessions []*model.CoachingSession
	query := `SELECT * FROM coaching_sessions WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`

	if err := r.db.SelectContext(ctx, &sessions, query, userID, limit); err != nil {
		return nil, err
	}

	return sessions, nil
}
