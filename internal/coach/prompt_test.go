package coach

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestBuildPrompt(t *testing.T) {
	got := BuildPrompt("u1", "my shoulder hurts", json.RawMessage(`{"activePlan":{}}`))

	for _, want := range []string{
		"You are SkillMax AI Coach.",
		"User ID: u1",
		"User message: my shoulder hurts",
		`Context: {"activePlan":{}}`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildPromptEmptyContext(t *testing.T) {
	got := BuildPrompt("u1", "hi", nil)
	if !strings.Contains(got, "Context: {}") {
		t.Error("empty context should serialize as {}")
	}
}
