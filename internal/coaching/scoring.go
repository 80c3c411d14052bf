package coaching

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/templui/lifecoach/internal/model"
)

const (
	maxTopGoals              = 3
	maxImprovementPriorities = 3
	improvementThreshold     = 7
	defaultPreference        = 5
)

// ScoreAssessment turns a raw answer map into an AssessmentResult.
//
// Malformed input never fails: unknown question ids are ignored, missing ratings score 0
// and wrong-typed values fall back to their defaults. Categories without a usable rating
// are listed in UnansweredCategories so a 0 can be told apart from "not answered".
func ScoreAssessment(answers map[string]any) *model.AssessmentResult {
	result := &model.AssessmentResult{
		ID:                       uuid.New().String(),
		LifeScores:               make(model.ScoreMap, len(model.AssessmentCategories)),
		TopGoals:                 model.StringList{},
		BiggestObstacles:         model.StringList{},
		PainPoints:               model.StringMap{},
		ImprovementPriorities:    model.StringList{},
		TimeDrains:               model.StringList{},
		UnansweredCategories:     model.StringList{},
		AIComfortLevel:           defaultPreference,
		AccountabilityPreference: defaultPreference,
		CompletedAt:              time.Now(),
	}

	for _, category := range model.AssessmentCategories {
		result.LifeScores[category] = 0
	}
	rated := make(map[string]bool)

	// Walk the questionnaire rather than the map so list fields keep question order
	for _, step := range Questionnaire {
		for _, q := range step.Questions {
			value, ok := answers[q.ID]
			if !ok || value == nil {
				continue
			}

			switch q.Role {
			case RoleRating:
				if n, ok := toNumber(value); ok {
					result.LifeScores[q.Category] = clampScore(n, 0, 10)
					rated[q.Category] = true
				}
			case RolePainPoint:
				if text := toText(value); text != "" {
					result.PainPoints[q.Category] = text
				}
			case RoleGoals:
				result.TopGoals = append(result.TopGoals, toList(value)...)
			case RoleObstacles:
				result.BiggestObstacles = append(result.BiggestObstacles, toStrings(value)...)
			case RoleTimeDrains:
				result.TimeDrains = append(result.TimeDrains, toStrings(value)...)
			case RoleAIComfort:
				result.AIComfortLevel = preference(value)
			case RoleAccountability:
				result.AccountabilityPreference = preference(value)
			}
		}
	}

	if len(result.TopGoals) > maxTopGoals {
		result.TopGoals = result.TopGoals[:maxTopGoals]
	}

	for _, category := range model.AssessmentCategories {
		if !rated[category] {
			result.UnansweredCategories = append(result.UnansweredCategories, category)
		}
	}

	avg := float64(result.AIComfortLevel+result.AccountabilityPreference) / 2
	result.AIReadinessScore = clampScore(avg, 1, 10)
	result.ImprovementPriorities = ImprovementPriorities(result.LifeScores)

	return result
}

// ImprovementPriorities returns up to three categories scoring below 7, lowest first.
// Ties keep questionnaire order.
func ImprovementPriorities(scores map[string]int) model.StringList {
	var low []string
	for _, category := range model.AssessmentCategories {
		if scores[category] < improvementThreshold {
			low = append(low, category)
		}
	}

	slices.SortStableFunc(low, func(a, b string) int {
		return scores[a] - scores[b]
	})

	if len(low) > maxImprovementPriorities {
		low = low[:maxImprovementPriorities]
	}
	return model.StringList(append([]string{}, low...))
}

func preference(value any) int {
	n, ok := toNumber(value)
	if !ok {
		return defaultPreference
	}
	return clampScore(n, 1, 10)
}

func toNumber(value any) (float64, bool) {
	var n float64
	switch v := value.(type) {
	case float64:
		n = v
	case float32:
		n = float64(v)
	case int:
		n = float64(v)
	case int64:
		n = float64(v)
	case int32:
		n = float64(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		n = f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		n = f
	default:
		return 0, false
	}

	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

func toStrings(value any) []string {
	var out []string
	switch v := value.(type) {
	case string:
		if s := strings.TrimSpace(v); s != "" {
			out = append(out, s)
		}
	case []string:
		for _, item := range v {
			if s := strings.TrimSpace(item); s != "" {
				out = append(out, s)
			}
		}
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, strings.TrimSpace(s))
			}
		}
	}
	return out
}

// toList is toStrings restricted to array answers.
func toList(value any) []string {
	switch value.(type) {
	case []string, []any:
		return toStrings(value)
	default:
		return nil
	}
}

func toText(value any) string {
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	case []any, []string:
		return strings.Join(toStrings(v), ", ")
	case float64, int, json.Number:
		return fmt.Sprint(v)
	default:
		return ""
	}
}

// clampScore bounds n before rounding; converting an out-of-range float to int is
// implementation-defined.
func clampScore(n float64, lo, hi int) int {
	return int(math.Round(min(max(n, float64(lo)), float64(hi))))
}
