package coach

import (
	"encoding/json"
	"strings"
)

// Temperature is the sampling temperature for coach replies. Slightly
// higher than plan generation to keep messages conversational.
const Temperature = 0.35

// BuildPrompt renders the coach-chat instruction string. The user's
// message and context are appended verbatim; the context is serialized
// JSON so the model sees exactly what the client sent.
func BuildPrompt(uid, message string, context json.RawMessage) string {
	if len(context) == 0 {
		context = json.RawMessage("{}")
	}
	return strings.Join([]string{
		"You are SkillMax AI Coach.",
		"You must provide practical coaching guidance and optionally return structured plan/workout edits.",
		"Return ONLY valid JSON with this shape:",
		`{"message":"string","proposedPlanDiff":{"action":"adapt_week|keep_schedule|none","before":"string","after":"string","notes":"string"},"proposedWorkoutEdits":{"action":"swap_today|ease_today|none","summary":"string","edits":[{"exercise":"string","change":"string"}]}}`,
		"Rules:",
		"- If user missed a day and asks for adjustment, set proposedPlanDiff.action to adapt_week.",
		"- If user reports pain/injury, propose safer exercise edits.",
		"- Keep message concise, supportive, and specific to user context.",
		`- If no change needed, set actions to "none".`,
		"User ID: " + uid,
		"User message: " + message,
		"Context: " + string(context),
	}, "\n")
}
