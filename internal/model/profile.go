package model

import (
	"slices"
	"time"
)

const (
	CoachingStyleSupportive   = "supportive"
	CoachingStyleDirect       = "direct"
	CoachingStyleAnalytical   = "analytical"
	CoachingStyleMotivational = "motivational"
)

var CoachingStyles = []string{
	CoachingStyleSupportive,
	CoachingStyleDirect,
	CoachingStyleAnalytical,
	CoachingStyleMotivational,
}

type Profile struct {
	ID            string    `db:"id" json:"id"`
	UserID        string    `db:"user_id" json:"user_id"`
	Name          string    `db:"name" json:"name"`
	CoachingStyle string    `db:"coaching_style" json:"coaching_style"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

func IsCoachingStyle(style string) bool {
	return slices.Contains(CoachingStyles, style)
}
