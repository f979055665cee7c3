// Package coach normalizes model output for the coaching-chat endpoint.
// Unlike plan normalization this path never fails: malformed output is
// absorbed into a safe fallback reply.
package coach

import (
	"strings"

	"github.com/SkillMax00/SkillMax/internal/models"
)

// FallbackMessage is returned whenever the model produced nothing usable.
const FallbackMessage = "I can adjust your plan and swap exercises. Tell me what feels off today."

// Normalize converts an arbitrary candidate JSON value into a CoachReply.
// Non-object candidates yield the fallback reply with both proposals
// absent. Proposals pass through unchanged when they are objects; their
// contents are not validated beyond that.
func Normalize(candidate any) models.CoachReply {
	obj, ok := candidate.(map[string]any)
	if !ok {
		return models.CoachReply{Message: FallbackMessage}
	}

	message := FallbackMessage
	if s, ok := obj["message"].(string); ok && strings.TrimSpace(s) != "" {
		message = strings.TrimSpace(s)
	}

	reply := models.CoachReply{Message: message}
	if diff, ok := obj["proposedPlanDiff"].(map[string]any); ok {
		reply.ProposedPlanDiff = diff
	}
	if edits, ok := obj["proposedWorkoutEdits"].(map[string]any); ok {
		reply.ProposedWorkoutEdits = edits
	}
	return reply
}
