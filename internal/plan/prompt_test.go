package plan

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestBuildPrompt(t *testing.T) {
	profile := json.RawMessage(`{"userId":"u1","daysPerWeek":3}`)
	got := BuildPrompt("u1", profile)

	for _, want := range []string{
		"You are a calisthenics programming coach for SkillMax.",
		"Return ONLY valid JSON with the shape:",
		"- weeklySplit length must equal daysPerWeek.",
		"User ID: u1",
		`Profile: {"userId":"u1","daysPerWeek":3}`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt missing %q", want)
		}
	}

	if got != BuildPrompt("u1", profile) {
		t.Error("prompt is not deterministic for identical inputs")
	}
}
