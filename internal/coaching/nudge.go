package coaching

import (
	"math/rand/v2"
	"regexp"
)

// NudgeKind names the rule that produced a nudge.
type NudgeKind string

const (
	NudgeNone       NudgeKind = ""
	NudgePreview    NudgeKind = "premium_preview"
	NudgeGoal       NudgeKind = "goal"
	NudgeMemory     NudgeKind = "memory"
	NudgeComparison NudgeKind = "comparison"
)

type Nudge struct {
	Kind   NudgeKind
	Suffix string
}

var goalTopicPattern = regexp.MustCompile(`(?i)\b(goals?|achiev\w*|accomplish\w*|habits?|routines?|milestones?|progress\w*|resolutions?|targets?|streaks?)\b`)

const previewSuffix = "\n\n---\n✨ Premium preview: with Coach Pro I would remember your goals, deadlines and life-area scores " +
	"between conversations, and tailor every answer to where you are right now. Upgrade to unlock your personal coach."

var goalSuffixes = []string{
	"\n\n---\n🎯 Want a coach that tracks this goal with you? Coach Pro keeps your progress, deadlines and check-ins in one place.",
	"\n\n---\n📈 Building a habit is easier with accountability. Upgrade to Coach Pro and I'll follow up on your progress every week.",
	"\n\n---\n🏆 Goals stick when someone remembers them. Coach Pro remembers yours and notices when you start to stall.",
}

const memorySuffix = "\n\n---\n🧠 On the free plan I forget this conversation when you leave. Coach Pro remembers your story, " +
	"so you never have to start from scratch."

const comparisonSuffix = "\n\n---\n⚖️ Free coach: general advice. Coach Pro: advice built on your goals, your assessment " +
	"and your past sessions. See what changes when your coach knows you."

// NudgeEngine decides whether a free-tier reply gets an upgrade message.
type NudgeEngine struct {
	pick func(n int) int
}

// NewNudgeEngine returns an engine choosing goal variants with pick, which must return a
// value in [0, n). A nil pick uses math/rand/v2.
func NewNudgeEngine(pick func(n int) int) *NudgeEngine {
	if pick == nil {
		pick = rand.IntN
	}
	return &NudgeEngine{pick: pick}
}

// Decide applies the nudge rules for the 0-based turn index. The first matching rule wins
// and entitled users never get a nudge.
func (e *NudgeEngine) Decide(turn int, entitled bool, userMessage string) Nudge {
	switch {
	case entitled:
		return Nudge{}
	case turn < 2:
		return Nudge{}
	case turn >= 5 && turn%5 == 0:
		return Nudge{Kind: NudgePreview, Suffix: previewSuffix}
	case turn >= 3 && goalTopicPattern.MatchString(userMessage):
		pick := e.pick
		if pick == nil {
			pick = rand.IntN
		}
		i := pick(len(goalSuffixes))
		if i < 0 || i >= len(goalSuffixes) {
			i = 0
		}
		return Nudge{Kind: NudgeGoal, Suffix: goalSuffixes[i]}
	case turn >= 4 && turn%7 == 0:
		return Nudge{Kind: NudgeMemory, Suffix: memorySuffix}
	case turn >= 6 && turn%8 == 0:
		return Nudge{Kind: NudgeComparison, Suffix: comparisonSuffix}
	default:
		return Nudge{}
	}
}

// Apply returns reply with the nudge suffix appended, if any.
func (e *NudgeEngine) Apply(reply string, turn int, entitled bool, userMessage string) string {
	return reply + e.Decide(turn, entitled, userMessage).Suffix
}
