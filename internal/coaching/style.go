package coaching

import "github.com/templui/lifecoach/internal/model"

var styleInstructions = map[string]string{
	model.CoachingStyleSupportive: "Be warm, encouraging and patient. Acknowledge effort before suggesting changes, " +
		"treat setbacks as normal, and offer one small next step at a time.",
	model.CoachingStyleDirect: "Be concise and candid. Point out the gap between what the user says they want and " +
		"what they are doing, skip the pleasantries, and end with one specific action.",
	model.CoachingStyleAnalytical: "Be structured and evidence-driven. Break problems into parts, refer to the user's " +
		"numbers and deadlines, and compare options by their trade-offs.",
	model.CoachingStyleMotivational: "Be energetic and forward-looking. Tie today's actions to the user's bigger vision, " +
		"celebrate wins out loud, and challenge them to stretch a little further.",
}

// StyleInstructions returns the instruction paragraph for a coaching style.
// Unknown styles get the supportive paragraph.
func StyleInstructions(style string) string {
	if text, ok := styleInstructions[style]; ok {
		return text
	}
	return styleInstructions[model.CoachingStyleSupportive]
}
