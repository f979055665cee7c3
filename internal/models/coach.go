package models

// CoachReply is the normalized coaching-chat response. Message is never
// empty. Proposals pass through from the model untyped: downstream
// consumers must tolerate partially-shaped objects, and both are null
// when the model output was malformed or omitted them.
type CoachReply struct {
	Message              string         `json:"message"`
	ProposedPlanDiff     map[string]any `json:"proposedPlanDiff"`
	ProposedWorkoutEdits map[string]any `json:"proposedWorkoutEdits"`
}
