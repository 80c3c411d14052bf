package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/templui/lifecoach/internal/model"
)

var (
	ErrLifeAreaNotFound = errors.New("life area not found")
)

type LifeAreaRepository interface {
	// Upsert inserts the area or replaces the rating of the existing (user, area) row.
	Upsert(ctx context.Context, area *model.LifeArea) error
	ByName(ctx context.Context, userID, areaName string) (*model.LifeArea, error)
	ByUser(ctx context.Context, userID string) ([]*model.LifeArea, error)
}

type lifeAreaRepository struct {
	db *sqlx.DB
}

func NewLifeAreaRepository(db *sqlx.DB) LifeAreaRepository {
	return &lifeAreaRepository{db: db}
}

func (r *lifeAreaRepository) Upsert(ctx context.Context, area *model.LifeArea) error {
	query := `INSERT INTO life_areas (id, user_id, area_name, satisfaction_level, last_updated)
	          VALUES ($1, $2, $3, $4, $5)
	          ON CONFLICT (user_id, area_name)
	          DO UPDATE SET satisfaction_level = excluded.satisfaction_level, last_updated = excluded.last_updated`

	_, err := r.db.ExecContext(ctx, query,
		area.ID,
		area.UserID,
		area.AreaName,
		area.SatisfactionLevel,
		area.LastUpdated,
	)

	return err
}

func (r *lifeAreaRepository) ByName(ctx context.Context, userID, areaName string) (*model.LifeArea, error) {
	area := &model.LifeArea{}
	query := `SELECT * FROM life_areas WHERE user_id = $1 AND area_name = $2`

	err := r.db.GetContext(ctx, area, query, userID, areaName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrLifeAreaNotFound
	}
	if err != nil {
		return nil, err
	}

	return area, nil
}

func (r *lifeAreaRepository) ByUser(ctx context.Context, userID string) ([]*model.LifeArea, error) {
	var areas []*model.LifeArea
	query := `SELECT * FROM life_areas WHERE user_id = $1 ORDER BY area_name ASC`

	if err := r.db.SelectContext(ctx, &areas, query, userID); err != nil {
		return nil, err
	}

	return areas, nil
}
