package service

import (
	"fmt"
	"slices"
	"strings"

	"github.com/templui/lifecoach/internal/coaching"
	"github.com/templui/lifecoach/internal/model"
)

// assessmentReportTemplate returns the subject and a markdown body.
func assessmentReportTemplate(name, appURL, appName string, result *model.AssessmentResult, insights model.AssessmentInsights) (string, string) {
	subject := fmt.Sprintf("Your %s life assessment results", appName)

	greeting := "Hi there,"
	if name != "" {
		greeting = fmt.Sprintf("Hi %s,", name)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\nThanks for completing your life assessment. Here is what we learned.\n\n", greeting)
	fmt.Fprintf(&b, "%s\n\n", insights.Summary)

	b.WriteString("## Your life scores\n\n")
	b.WriteString("| Area | Score |\n|---|---|\n")
	for _, category := range model.AssessmentCategories {
		score := fmt.Sprintf("%d/10", result.LifeScores[category])
		if slices.Contains(insights.UnansweredCategories, category) {
			score = "not rated"
		}
		fmt.Fprintf(&b, "| %s | %s |\n", coaching.CategoryName(category), score)
	}

	if len(result.ImprovementPriorities) > 0 {
		b.WriteString("\n## Where to focus first\n\n")
		for i, category := range result.ImprovementPriorities {
			fmt.Fprintf(&b, "%d. %s\n", i+1, coaching.CategoryName(category))
		}
	}

	if len(result.TopGoals) > 0 {
		b.WriteString("\n## Your top goals\n\n")
		for _, goal := range result.TopGoals {
			fmt.Fprintf(&b, "- %s\n", goal)
		}
	}

	fmt.Fprintf(&b, "\nReady to turn this into a plan? Continue with your coach: %s/coach\n\nBest,\nThe %s Team\n", appURL, appName)

	return subject, b.String()
}
