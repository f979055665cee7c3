package plan

import "testing"

func TestDefaultSplitLengths(t *testing.T) {
	for days := 2; days <= 6; days++ {
		if got := defaultSplit(days); len(got) != days {
			t.Errorf("defaultSplit(%d) has %d entries: %v", days, len(got), got)
		}
	}
}

func TestMinutesForLength(t *testing.T) {
	tests := []struct {
		bucket string
		want   int
	}{
		{"15-20", 20},
		{"25-35", 32},
		{"60+", 60},
		{"about 25-35 minutes", 32},
		{"45-60", 48},
		{"", 48},
		{"whatever", 48},
	}

	for _, tt := range tests {
		if got := minutesForLength(tt.bucket); got != tt.want {
			t.Errorf("minutesForLength(%q) = %d, want %d", tt.bucket, got, tt.want)
		}
	}
}

func TestExercisesForTypeKeywords(t *testing.T) {
	tests := []struct {
		name      string
		dayType   string
		profile   Profile
		wantFirst string
		wantCat   string
	}{
		{"pull default", "Pull", Profile{}, "Strict Pull-Up", "pull"},
		{"pull no equipment", "Pull", Profile{"equipment": []any{"none"}}, "Band-Assisted Row", "pull"},
		{"pull zero baseline", "Pull", Profile{"baselinePull": "0 reps"}, "Band-Assisted Row", "pull"},
		{"legs", "Legs + Core", Profile{}, "Bulgarian Split Squat", "legs"},
		{"skill default", "Skill Focus", Profile{}, "Handstand Progression", "skill"},
		{"skill from profile", "Skill Focus", Profile{"skills": []any{"Planche"}}, "Planche Progression", "skill"},
		{"mobility", "Conditioning + Mobility", Profile{}, "Shoulder CARs", "mobility"},
		{"push default", "Push", Profile{}, "Ring Dip", "push"},
		{"push no equipment", "Push", Profile{"equipment": []any{"none"}}, "Deficit Push-Up", "push"},
		{"unknown falls to push", "Volume Strength", Profile{}, "Ring Dip", "push"},
		// Keyword priority: "pull" wins before "skill".
		{"pull plus skill", "Pull + Skill", Profile{}, "Strict Pull-Up", "pull"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := exercisesForType(tt.dayType, tt.profile)
			if len(got) != 2 {
				t.Fatalf("got %d exercises, want 2", len(got))
			}
			if got[0].Name != tt.wantFirst {
				t.Errorf("first exercise = %q, want %q", got[0].Name, tt.wantFirst)
			}
			if got[0].Category != tt.wantCat {
				t.Errorf("category = %q, want %q", got[0].Category, tt.wantCat)
			}
		})
	}
}

func TestExercisesForTypePullZeroAdjustments(t *testing.T) {
	got := exercisesForType("Pull", Profile{"baselinePull": "0"})
	focus := got[0]
	if focus.ProgressionLevel != 1 || focus.Reps != "6-8" {
		t.Errorf("pull-zero focus = level %d reps %q, want level 1 reps 6-8", focus.ProgressionLevel, focus.Reps)
	}

	got = exercisesForType("Pull", Profile{"equipment": []any{"none"}})
	focus = got[0]
	if focus.ProgressionLevel != 3 || focus.Reps != "5-7" {
		t.Errorf("no-equipment focus = level %d reps %q, want level 3 reps 5-7", focus.ProgressionLevel, focus.Reps)
	}
}

func TestAsInt(t *testing.T) {
	tests := []struct {
		in     any
		want   int
		wantOK bool
	}{
		{float64(4), 4, true},
		{float64(3.9), 3, true},
		{"5", 5, true},
		{"4 days", 4, true},
		{" -2 ", -2, true},
		{"soon", 0, false},
		{nil, 0, false},
		{true, 0, false},
	}

	for _, tt := range tests {
		got, ok := asInt(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("asInt(%v) = (%d, %v), want (%d, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestCoerceString(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{"plain", "plain"},
		{float64(3), "3"},
		{float64(2.5), "2.5"},
		{true, "true"},
		{nil, "null"},
		{map[string]any{"a": float64(1)}, `{"a":1}`},
	}

	for _, tt := range tests {
		if got := coerceString(tt.in); got != tt.want {
			t.Errorf("coerceString(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
