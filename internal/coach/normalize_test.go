package coach

import (
	"reflect"
	"testing"
)

func TestNormalizeFallbacks(t *testing.T) {
	tests := []struct {
		name      string
		candidate any
	}{
		{"nil", nil},
		{"string", "hello"},
		{"array", []any{"a"}},
		{"empty object", map[string]any{}},
		{"blank message", map[string]any{"message": "   "}},
		{"non-string message", map[string]any{"message": float64(7)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.candidate)
			if got.Message != FallbackMessage {
				t.Errorf("message = %q, want fallback", got.Message)
			}
			if got.ProposedPlanDiff != nil || got.ProposedWorkoutEdits != nil {
				t.Errorf("proposals should be absent, got %+v", got)
			}
		})
	}
}

func TestNormalizeMessage(t *testing.T) {
	got := Normalize(map[string]any{"message": "  Ease off dips today.  "})
	if got.Message != "Ease off dips today." {
		t.Errorf("message = %q, want trimmed text", got.Message)
	}
}

func TestNormalizeProposals(t *testing.T) {
	diff := map[string]any{"action": "adapt_week"}
	edits := map[string]any{"action": "swap_today"}
	got := Normalize(map[string]any{
		"message":              "Swapping dips for push-ups.",
		"proposedPlanDiff":     diff,
		"proposedWorkoutEdits": edits,
	})
	if !reflect.DeepEqual(got.ProposedPlanDiff, diff) {
		t.Errorf("planDiff = %v, want %v", got.ProposedPlanDiff, diff)
	}
	if !reflect.DeepEqual(got.ProposedWorkoutEdits, edits) {
		t.Errorf("workoutEdits = %v, want %v", got.ProposedWorkoutEdits, edits)
	}

	// Non-object proposals are dropped, message kept.
	got = Normalize(map[string]any{
		"message":          "Fine as is.",
		"proposedPlanDiff": "not an object",
	})
	if got.Message != "Fine as is." || got.ProposedPlanDiff != nil {
		t.Errorf("got %+v, want message kept and diff dropped", got)
	}
}
