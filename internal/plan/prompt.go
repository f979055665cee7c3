package plan

import (
	"encoding/json"
	"strings"
)

// Temperature is the sampling temperature for plan generation. Low on
// purpose: the output must track the requested JSON shape.
const Temperature = 0.2

// BuildPrompt renders the plan-generation instruction string: persona,
// task, required JSON shape, constraint bullets, then the caller's
// identity and profile serialized verbatim. Deterministic for identical
// inputs, so prompt text is reproducible in tests.
func BuildPrompt(uid string, profile json.RawMessage) string {
	return strings.Join([]string{
		"You are a calisthenics programming coach for SkillMax.",
		"Create a safe beginner-to-advanced personalized weekly plan.",
		"Return ONLY valid JSON with the shape:",
		`{"plan":{"id":"string","userId":"string","createdAt":"ISO-8601 string","daysPerWeek":number,"workoutLength":"string","weeklySplit":["string"],"skillTrack":["string"],"blocks":["string"],"generator":"ai"}}`,
		"Constraints:",
		"- weeklySplit length must equal daysPerWeek.",
		"- Respect user equipment and level.",
		"- Max 6 workout days.",
		"- Include mobility and recovery in blocks.",
		"- Keep responses concise in field values.",
		"User ID: " + uid,
		"Profile: " + string(profile),
	}, "\n")
}
