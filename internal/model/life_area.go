package model

import "time"

type LifeArea struct {
	ID                string    `db:"id" json:"id"`
	UserID            string    `db:"user_id" json:"user_id"`
	AreaName          string    `db:"area_name" json:"area_name"`
	SatisfactionLevel *int      `db:"satisfaction_level" json:"satisfaction_level"`
	LastUpdated       time.Time `db:"last_updated" json:"last_updated"`
}

// IsRated reports whether the user has rated this area at least once.
func (a *LifeArea) IsRated() bool {
	return a.SatisfactionLevel != nil
}
