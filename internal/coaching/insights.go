package coaching

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/samber/lo"
	"github.com/templui/lifecoach/internal/model"
)

const (
	strongScore = 7
	weakScore   = 5
	maxAreas    = 3
)

// Insights projects an assessment result into the summary shown to the user and used
// when emailing the report. Unanswered categories never count as strong or weak.
func Insights(result *model.AssessmentResult) model.AssessmentInsights {
	if result == nil {
		return model.AssessmentInsights{
			StrongestAreas:       []string{},
			WeakestAreas:         []string{},
			UnansweredCategories: []string{},
		}
	}

	answered := lo.Filter(model.AssessmentCategories, func(c string, _ int) bool {
		return !slices.Contains(result.UnansweredCategories, c)
	})

	insights := model.AssessmentInsights{
		StrongestAreas:       rankAreas(result.LifeScores, answered, true),
		WeakestAreas:         rankAreas(result.LifeScores, answered, false),
		UnansweredCategories: append([]string{}, result.UnansweredCategories...),
		ReadinessLabel:       readinessLabel(result.AIReadinessScore),
		AccountabilityStyle:  accountabilityStyle(result.AccountabilityPreference),
	}

	if len(answered) > 0 {
		total := lo.SumBy(answered, func(c string) int { return result.LifeScores[c] })
		insights.OverallScore = math.Round(float64(total)/float64(len(answered))*10) / 10
	}

	insights.Summary = insightsSummary(result, insights)
	return insights
}

// rankAreas returns up to three answered categories at or above strongScore (strong=true,
// highest first) or below weakScore (lowest first).
func rankAreas(scores map[string]int, answered []string, strong bool) []string {
	areas := lo.Filter(answered, func(c string, _ int) bool {
		if strong {
			return scores[c] >= strongScore
		}
		return scores[c] < weakScore
	})

	slices.SortStableFunc(areas, func(a, b string) int {
		if strong {
			return scores[b] - scores[a]
		}
		return scores[a] - scores[b]
	})

	if len(areas) > maxAreas {
		areas = areas[:maxAreas]
	}
	return areas
}

func readinessLabel(score int) string {
	switch {
	case score >= 8:
		return "eager"
	case score >= 5:
		return "open"
	default:
		return "cautious"
	}
}

func accountabilityStyle(pref int) string {
	switch {
	case pref >= 8:
		return "high-touch"
	case pref >= 5:
		return "balanced"
	default:
		return "self-directed"
	}
}

func insightsSummary(result *model.AssessmentResult, in model.AssessmentInsights) string {
	var parts []string

	if len(in.UnansweredCategories) == len(model.AssessmentCategories) {
		parts = append(parts, "No life areas were rated yet.")
	} else {
		parts = append(parts, fmt.Sprintf("Average life satisfaction is %.1f/10.", in.OverallScore))
	}
	if len(in.StrongestAreas) > 0 {
		parts = append(parts, "Strongest areas: "+strings.Join(categoryNames(in.StrongestAreas), ", ")+".")
	}
	if len(in.WeakestAreas) > 0 {
		parts = append(parts, "Areas needing the most care: "+strings.Join(categoryNames(in.WeakestAreas), ", ")+".")
	}
	if len(result.ImprovementPriorities) > 0 {
		parts = append(parts, "Suggested focus: "+strings.Join(categoryNames(result.ImprovementPriorities), ", ")+".")
	}
	parts = append(parts, fmt.Sprintf("AI readiness is %s (%d/10) with a %s accountability preference.",
		in.ReadinessLabel, result.AIReadinessScore, in.AccountabilityStyle))

	return strings.Join(parts, " ")
}

// AssessmentContext renders an assessment result as a prompt block. Empty for nil.
func AssessmentContext(result *model.AssessmentResult) string {
	if result == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("ASSESSMENT INSIGHTS (from the user's intake assessment):\n")

	b.WriteString("Life satisfaction scores:\n")
	for _, category := range model.AssessmentCategories {
		if slices.Contains(result.UnansweredCategories, category) {
			fmt.Fprintf(&b, "- %s: not rated\n", CategoryName(category))
			continue
		}
		fmt.Fprintf(&b, "- %s: %d/10\n", CategoryName(category), result.LifeScores[category])
	}

	if len(result.ImprovementPriorities) > 0 {
		fmt.Fprintf(&b, "Improvement priorities: %s\n", strings.Join(categoryNames(result.ImprovementPriorities), ", "))
	}
	if len(result.TopGoals) > 0 {
		fmt.Fprintf(&b, "Top goals: %s\n", strings.Join(result.TopGoals, "; "))
	}
	if len(result.BiggestObstacles) > 0 {
		fmt.Fprintf(&b, "Biggest obstacles: %s\n", strings.Join(result.BiggestObstacles, "; "))
	}
	for _, category := range model.AssessmentCategories {
		if pain, ok := result.PainPoints[category]; ok {
			fmt.Fprintf(&b, "Struggle with %s: %s\n", CategoryName(category), pain)
		}
	}
	if len(result.TimeDrains) > 0 {
		fmt.Fprintf(&b, "Time drains: %s\n", strings.Join(result.TimeDrains, "; "))
	}

	fmt.Fprintf(&b, "AI readiness: %d/10 (%s). Accountability preference: %d/10 (%s).\n",
		result.AIReadinessScore, readinessLabel(result.AIReadinessScore),
		result.AccountabilityPreference, accountabilityStyle(result.AccountabilityPreference))

	return b.String()
}
