package coaching

import (
	"github.com/templui/lifecoach/internal/model"
)

// Role is what a question contributes to the scored assessment.
type Role string

const (
	RoleRating         Role = "rating"
	RolePainPoint      Role = "pain_point"
	RoleGoals          Role = "goals"
	RoleObstacles      Role = "obstacles"
	RoleAIComfort      Role = "ai_comfort"
	RoleAccountability Role = "accountability"
	RoleTimeDrains     Role = "time_drains"
)

// Input kinds understood by the questionnaire widget.
const (
	KindScale = "scale"
	KindText  = "text"
	KindList  = "list"
)

type Question struct {
	ID       string `json:"id"`
	Prompt   string `json:"prompt"`
	Kind     string `json:"kind"`
	Role     Role   `json:"role"`
	Category string `json:"category,omitempty"`
}

type Step struct {
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

// Questionnaire is the intake assessment, in the order steps are shown.
var Questionnaire = buildQuestionnaire()

// questions maps a question id to its definition. Scoring only looks at ids listed here.
var questions = indexQuestions(Questionnaire)

// LookupQuestion returns the definition for a question id.
func LookupQuestion(id string) (Question, bool) {
	q, ok := questions[id]
	return q, ok
}

// StepCount is the number of questionnaire steps.
func StepCount() int {
	return len(Questionnaire)
}

func buildQuestionnaire() []Step {
	ratings := Step{Title: "How satisfied are you with each area of your life?"}
	frustrations := Step{Title: "What is frustrating you right now?"}

	for _, category := range model.AssessmentCategories {
		name := CategoryName(category)
		ratings.Questions = append(ratings.Questions, Question{
			ID:       category + "_rating",
			Prompt:   "Rate your " + name + " from 0 to 10",
			Kind:     KindScale,
			Role:     RoleRating,
			Category: category,
		})
		frustrations.Questions = append(frustrations.Questions, Question{
			ID:       category + "_frustration",
			Prompt:   "What is your biggest struggle with " + name + "?",
			Kind:     KindText,
			Role:     RolePainPoint,
			Category: category,
		})
	}

	return []Step{
		ratings,
		frustrations,
		{
			Title: "Where do you want to be?",
			Questions: []Question{
				{ID: "top_goals", Prompt: "List up to three goals that matter most this year", Kind: KindList, Role: RoleGoals},
			},
		},
		{
			Title: "What has held you back?",
			Questions: []Question{
				{ID: "biggest_obstacles", Prompt: "What obstacles keep getting in the way?", Kind: KindList, Role: RoleObstacles},
				{ID: "what_stopped_you", Prompt: "What stopped you the last time you tried?", Kind: KindText, Role: RoleObstacles},
			},
		},
		{
			Title: "How do you like to work?",
			Questions: []Question{
				{ID: "time_drains", Prompt: "What eats most of your time?", Kind: KindList, Role: RoleTimeDrains},
				{ID: "accountability_preference", Prompt: "How much accountability do you want from your coach? (1-10)", Kind: KindScale, Role: RoleAccountability},
				{ID: "ai_comfort_level", Prompt: "How comfortable are you working with an AI coach? (1-10)", Kind: KindScale, Role: RoleAIComfort},
			},
		},
	}
}

func indexQuestions(steps []Step) map[string]Question {
	index := make(map[string]Question)
	for _, step := range steps {
		for _, q := range step.Questions {
			index[q.ID] = q
		}
	}
	return index
}
