package model

import (
	"time"
)

type Subscription struct {
	ID               string     `db:"id" json:"id"`
	UserID           string     `db:"user_id" json:"user_id"`
	PlanID           string     `db:"plan_id" json:"plan_id"`
	Status           string     `db:"status" json:"status"`
	CurrentPeriodEnd *time.Time `db:"current_period_end" json:"current_period_end,omitempty"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at" json:"updated_at"`
}

const (
	SubscriptionStatusActive    = "active"
	SubscriptionStatusCancelled = "cancelled"
)

const (
	SubscriptionPlanFree       = "free"
	SubscriptionPlanPro        = "pro"
	SubscriptionPlanEnterprise = "enterprise"
)

const (
	FeaturePersonalCoaching = "personal_coaching"
	FeatureAssessmentReport = "assessment_report"
)

// FreeSubscription is the implicit plan of users without a subscription record.
func FreeSubscription(userID string) *Subscription {
	return &Subscription{
		UserID: userID,
		PlanID: SubscriptionPlanFree,
		Status: SubscriptionStatusActive,
	}
}

func (s *Subscription) IsActive() bool {
	return s.Status == SubscriptionStatusActive
}

// IsPaid reports whether the user is entitled to the premium coach.
func (s *Subscription) IsPaid() bool {
	return s != nil && s.PlanID != SubscriptionPlanFree && s.IsActive()
}

// GetGoalLimit returns the maximum number of active goals allowed for this plan
// Returns -1 for unlimited
func (s *Subscription) GetGoalLimit() int {
	if !s.IsActive() {
		return 3 // Free tier default
	}

	switch s.PlanID {
	case SubscriptionPlanFree:
		return 3
	case SubscriptionPlanPro:
		return 25
	case SubscriptionPlanEnterprise:
		return -1 // unlimited
	default:
		return 3
	}
}

// HasFeature checks if the subscription has access to a specific feature
func (s *Subscription) HasFeature(feature string) bool {
	if !s.IsActive() {
		return false
	}

	features := map[string][]string{
		SubscriptionPlanFree: {
			FeatureAssessmentReport,
		},
		SubscriptionPlanPro: {
			FeaturePersonalCoaching,
			FeatureAssessmentReport,
		},
		SubscriptionPlanEnterprise: {
			FeaturePersonalCoaching,
			FeatureAssessmentReport,
		},
	}

	planFeatures, exists := features[s.PlanID]
	if !exists {
		return false
	}

	for _, f := range planFeatures {
		if f == feature {
			return true
		}
	}

	return false
}
