package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/templui/lifecoach/internal/model"
)

type ProfileRepository interface {
	ByUserID(ctx context.Context, userID string) (*model.Profile, error)
	Create(ctx context.Context, profile *model.Profile) error
	UpdateName(ctx context.Context, userID, name string) error
	UpdateCoachingStyle(ctx context.Context, userID, style string) error
}

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) ByUserID(ctx context.Context, userID string) (*model.Profile, error) {
	var profile model.Profile
	err := r.db.GetContext(ctx, &profile, `SELECT * FROM profiles WHERE user_id = $1`, userID)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}

	return &profile, nil
}

func (r *profileRepository) Create(ctx context.Context, profile *model.Profile) error {
	if profile.ID == "" {
		profile.ID = uuid.New().String()
	}
	if profile.CoachingStyle == "" {
		profile.CoachingStyle = model.CoachingStyleSupportive
	}
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = time.Now()
	}
	if profile.UpdatedAt.IsZero() {
		profile.UpdatedAt = profile.CreatedAt
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO profiles (id, user_id, name, coaching_style, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, profile.ID, profile.UserID, profile.Name, profile.CoachingStyle, profile.CreatedAt, profile.UpdatedAt)

	return err
}

func (r *profileRepository) UpdateName(ctx context.Context, userID, name string) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE profiles
		SET name = $1, updated_at = $2
		WHERE user_id = $3
	`, name, time.Now(), userID)
	if err != nil {
		return err
	}

	return expectRows(result, ErrProfileNotFound)
}

func (r *profileRepository) UpdateCoachingStyle(ctx context.Context, userID, style string) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE profiles
		SET coaching_style = $1, updated_at = $2
		WHERE user_id = $3
	`, style, time.Now(), userID)
	if err != nil {
		return err
	}

	return expectRows(result, ErrProfileNotFound)
}
