package model

import "time"

type CoachingSession struct {
	ID          string     `db:"id" json:"id"`
	UserID      string     `db:"user_id" json:"user_id"`
	Summary     string     `db:"summary" json:"summary"`
	ActionItems StringList `db:"action_items" json:"action_items"`
	FollowUpAt  *time.Time `db:"follow_up_at" json:"follow_up_at,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
}

// FollowUpDue reports whether the session's action items are due at now.
func (s *CoachingSession) FollowUpDue(now time.Time) bool {
	return s.FollowUpAt != nil && !s.FollowUpAt.After(now)
}
