package coaching

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
	"github.com/templui/lifecoach/internal/model"
)

// GenericSystemPrompt is used whenever the reply cannot or should not be personalized.
const GenericSystemPrompt = `You are a friendly, practical AI life coach.
You help people get clear on what they want, turn goals into small concrete steps, build habits that stick, and stay accountable over time.
Ask one thoughtful question at a time, keep answers short and actionable, and never pretend to know details about the user that they have not shared in this conversation.
You are not a therapist or a doctor; if someone describes a crisis or a medical issue, encourage them to reach out to a qualified professional.`

const coachingGuidelines = `GUIDELINES:
- Refer to the user's goals and deadlines by name when relevant, but do not list everything at once.
- Celebrate real progress and be honest about stalled goals.
- Keep replies under 200 words unless the user asks for detail.
- End with a question or a concrete next step.`

type PersonalityPrompt struct {
	SystemPrompt              string   `json:"system_prompt"`
	Personalized              bool     `json:"personalized"`
	ContextSummary            string   `json:"context_summary"`
	GoalAwareness             string   `json:"goal_awareness"`
	RecentProgress            string   `json:"recent_progress"`
	CoachingStyleInstructions string   `json:"coaching_style_instructions"`
	CurrentFocusAreas         []string `json:"current_focus_areas"`
}

// GeneratePrompt renders cc into a system prompt. The reply is generic when cc is nil,
// holds no personal data, or personalized is false (the requester is not entitled).
func GeneratePrompt(cc *CoachingContext, personalized bool) PersonalityPrompt {
	switch {
	case cc == nil:
		return genericPrompt("no coaching context")
	case !personalized:
		return genericPrompt("personalization not enabled for requester")
	case !cc.HasData():
		return genericPrompt("no personal data on file")
	}

	p := PersonalityPrompt{
		Personalized:              true,
		GoalAwareness:             goalAwareness(cc),
		RecentProgress:            recentProgress(cc),
		CoachingStyleInstructions: StyleInstructions(cc.CoachingStyle()),
		CurrentFocusAreas:         focusAreas(cc),
	}
	p.ContextSummary = contextSummary(cc)

	var b strings.Builder
	b.WriteString("You are a personal AI life coach with memory of this user's goals and progress.\n")
	if name := cc.DisplayName(); name != "" {
		fmt.Fprintf(&b, "You are coaching %s.\n", name)
	}
	b.WriteString("\n")

	if cc.AssessmentContext != "" {
		b.WriteString(cc.AssessmentContext)
		b.WriteString("\n")
	}

	b.WriteString(p.GoalAwareness)
	b.WriteString("\n")
	b.WriteString(p.RecentProgress)
	b.WriteString("\n")
	b.WriteString("COACHING STYLE:\n")
	b.WriteString(p.CoachingStyleInstructions)
	b.WriteString("\n\n")

	b.WriteString("CURRENT FOCUS AREAS:\n")
	if len(p.CurrentFocusAreas) == 0 {
		b.WriteString("- Nothing urgent. Follow the user's lead.\n")
	}
	for _, area := range p.CurrentFocusAreas {
		fmt.Fprintf(&b, "- %s\n", area)
	}
	b.WriteString("\n")
	b.WriteString(coachingGuidelines)

	p.SystemPrompt = b.String()
	return p
}

func genericPrompt(reason string) PersonalityPrompt {
	return PersonalityPrompt{
		SystemPrompt:      GenericSystemPrompt,
		ContextSummary:    "generic prompt: " + reason,
		CurrentFocusAreas: []string{},
	}
}

var priorityOrder = []string{model.GoalPriorityHigh, model.GoalPriorityMedium, model.GoalPriorityLow}

func goalAwareness(cc *CoachingContext) string {
	var b strings.Builder
	b.WriteString("GOALS THE USER IS WORKING ON:\n")

	if len(cc.Goals.Goals) == 0 {
		b.WriteString("The user has no active goals yet. Help them define one when it fits the conversation.\n")
		return b.String()
	}

	byPriority := lo.GroupBy(cc.Goals.Goals, func(tg TrackedGoal) string {
		if model.IsGoalPriority(tg.Goal.Priority) {
			return tg.Goal.Priority
		}
		return model.GoalPriorityMedium
	})

	for _, priority := range priorityOrder {
		goals := byPriority[priority]
		if len(goals) == 0 {
			continue
		}
		fmt.Fprintf(&b, "%s priority:\n", CategoryName(priority))
		for _, tg := range goals {
			fmt.Fprintf(&b, "- %s\n", goalLine(tg))
			if tg.DaysUntil != nil {
				fmt.Fprintf(&b, "  Deadline: %s\n", deadlineText(*tg.DaysUntil))
			}
		}
	}

	return b.String()
}

func goalLine(tg TrackedGoal) string {
	return fmt.Sprintf("%s (%s) — %d%% complete, %s",
		tg.Goal.Title, CategoryName(tg.Goal.Category), tg.Goal.Progress(), tg.Label)
}

func deadlineText(days int) string {
	switch {
	case days < 0:
		return "overdue"
	case days == 0:
		return "due today"
	case days == 1:
		return "1 day remaining"
	default:
		return fmt.Sprintf("%d days remaining", days)
	}
}

func recentProgress(cc *CoachingContext) string {
	var b strings.Builder
	b.WriteString("RECENT PROGRESS:\n")

	inProgress := cc.Goals.InProgress
	if len(inProgress) == 0 {
		b.WriteString("No measurable progress recorded yet.\n")
	} else {
		fmt.Fprintf(&b, "The user is making progress on %d goals:\n", len(inProgress))
		for _, tg := range inProgress {
			fmt.Fprintf(&b, "- %s: %d%% (%s)\n", tg.Goal.Title, tg.Goal.Progress(), tg.Label)
		}
	}

	if len(cc.Goals.HighProgress) > 0 {
		b.WriteString("Worth celebrating:\n")
		for _, tg := range cc.Goals.HighProgress {
			fmt.Fprintf(&b, "- %s is at %d%%\n", tg.Goal.Title, tg.Goal.Progress())
		}
	}

	if len(cc.Goals.Stagnant) > 0 {
		b.WriteString("Needs attention:\n")
		for _, tg := range cc.Goals.Stagnant {
			fmt.Fprintf(&b, "- %s has been at %d%% for %d days\n", tg.Goal.Title, tg.Goal.Progress(), tg.AgeDays)
		}
	}

	if len(cc.RecentSessions) > 0 {
		b.WriteString("From recent coaching sessions:\n")
		for _, s := range cc.RecentSessions {
			if s.Summary == "" {
				continue
			}
			fmt.Fprintf(&b, "- %s: %s\n", s.CreatedAt.Format("Jan 2"), s.Summary)
		}
	}

	return b.String()
}

func focusAreas(cc *CoachingContext) []string {
	areas := []string{}

	for _, d := range cc.UpcomingDeadlines {
		areas = append(areas, fmt.Sprintf("Deadline in %s: %s", pluralDays(d.DaysUntil), d.Goal.Title))
	}

	for _, d := range cc.OverdueGoals {
		areas = append(areas, fmt.Sprintf("Overdue: %s", d.Goal.Title))
	}

	lowAreas := lo.Filter(lo.Keys(cc.LifeAreas), func(area string, _ int) bool {
		return cc.LifeAreas[area] < 6
	})
	slices.SortFunc(lowAreas, func(a, b string) int {
		if d := cc.LifeAreas[a] - cc.LifeAreas[b]; d != 0 {
			return d
		}
		return strings.Compare(a, b)
	})
	for _, area := range lowAreas {
		areas = append(areas, fmt.Sprintf("Low satisfaction in %s (%d/10)", CategoryName(area), cc.LifeAreas[area]))
	}

	for _, g := range cc.ActiveGoals {
		if g.Priority == model.GoalPriorityHigh {
			areas = append(areas, fmt.Sprintf("High priority: %s", g.Title))
		}
	}

	for _, item := range cc.ActionItemsDue {
		areas = append(areas, fmt.Sprintf("Follow up on: %s", item.Text))
	}

	return areas
}

func pluralDays(days int) string {
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}

func contextSummary(cc *CoachingContext) string {
	who := cc.DisplayName()
	if who == "" && cc.Owner.User != nil {
		who = cc.Owner.User.ID
	}

	high := lo.CountBy(cc.ActiveGoals, func(g *model.Goal) bool {
		return g.Priority == model.GoalPriorityHigh
	})

	assessment := "no assessment"
	if cc.Assessment != nil {
		assessment = "assessment on file"
	}

	return fmt.Sprintf("personalized for %s: %d active goals (%d high priority, %d stagnant, %d due soon), %d life areas rated, %d recent sessions, %s, style %s",
		who, len(cc.ActiveGoals), high, len(cc.Goals.Stagnant), len(cc.UpcomingDeadlines),
		len(cc.LifeAreas), len(cc.RecentSessions), assessment, cc.CoachingStyle())
}
