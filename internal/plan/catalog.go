package plan

import (
	"strings"

	"github.com/SkillMax00/SkillMax/internal/models"
)

// Static defaulting tables. These are the domain's source of truth when
// the model omits or mangles a field: split templates keyed by day
// count, volume-target tables keyed by goal, and the exercise catalog
// keyed by day-type keyword.

// splitTemplates maps daysPerWeek (2-6) to a fixed weekly split that
// balances push/pull/leg volume across the week.
var splitTemplates = map[int][]string{
	2: {"Full Body + Skills", "Full Body + Mobility"},
	3: {"Push + Skill", "Pull + Skill", "Legs + Core"},
	4: {"Push", "Pull", "Legs + Core", "Skill Focus"},
	5: {"Push", "Pull", "Legs + Core", "Skill Focus", "Conditioning + Mobility"},
	6: {"Push", "Pull", "Legs + Core", "Skill Focus", "Volume Strength", "Mobility + Recovery"},
}

// defaultSplit returns the built-in split template for a day count.
// The count must already be clamped to [2,6].
func defaultSplit(days int) []string {
	if tpl, ok := splitTemplates[days]; ok {
		return append([]string(nil), tpl...)
	}
	return append([]string(nil), splitTemplates[4]...)
}

// defaultBlocks is the fallback block list covering strength, skill,
// mobility, and recovery.
var defaultBlocks = []string{
	"Strength block",
	"Skill progression",
	"Mobility / prehab",
	"Recovery targets",
}

// progressionRules encodes the fixed autoregulation policy. Not derived
// from input.
var progressionRules = []string{
	"If all prescribed reps are met for 2 sessions, increase progression by 1 step.",
	"If RPE > 9 for 2 sessions, deload by reducing one set.",
	"If workout day is missed and adaptation is enabled, reshuffle remaining sessions.",
}

// mobilityVolumeTargets is used when the profile goal mentions mobility.
var mobilityVolumeTargets = []models.VolumeTarget{
	{Category: "Mobility", Target: 5, Unit: "sessions"},
	{Category: "Skill practice", Target: 3, Unit: "sessions"},
	{Category: "Core", Target: 6, Unit: "sets"},
}

// strengthVolumeTargets is the general table for all other goals.
var strengthVolumeTargets = []models.VolumeTarget{
	{Category: "Push", Target: 12, Unit: "sets"},
	{Category: "Pull", Target: 12, Unit: "sets"},
	{Category: "Legs", Target: 10, Unit: "sets"},
	{Category: "Core", Target: 10, Unit: "sets"},
	{Category: "Skill practice", Target: 4, Unit: "sessions"},
	{Category: "Mobility", Target: 3, Unit: "sessions"},
}

// volumeTargets picks a target table by goal text. Completed always
// starts at 0.
func volumeTargets(goal string) []models.VolumeTarget {
	table := strengthVolumeTargets
	if strings.Contains(strings.ToLower(goal), "mobility") {
		table = mobilityVolumeTargets
	}
	out := make([]models.VolumeTarget, len(table))
	copy(out, table)
	return out
}

// ladderSteps expands a skill name into its fixed 4-step progression.
func ladderSteps(name string) []string {
	return []string{
		name + " Foundation",
		name + " Capacity",
		name + " Strength",
		name + " Control",
	}
}

// minutesForLength maps a workout-length descriptor to an estimated
// session duration in minutes via bucket lookup.
func minutesForLength(bucket string) int {
	switch {
	case strings.Contains(bucket, "15-20"):
		return 20
	case strings.Contains(bucket, "25-35"):
		return 32
	case strings.Contains(bucket, "60+"):
		return 60
	default:
		return 48
	}
}

// exercisesForType selects the fixed exercise pair for a day-type label.
// Matching is case-insensitive keyword search, first match wins:
// pull, legs, skill, mobility, then push as the default branch. The
// pull and push branches condition on equipment/baseline-pull flags,
// the skill branch on the profile's first listed skill.
func exercisesForType(dayType string, p Profile) []models.Exercise {
	lower := strings.ToLower(dayType)
	noEquipment := p.hasNoEquipment()
	pullZero := strings.Contains(strings.ToLower(p.BaselinePull()), "0")

	switch {
	case strings.Contains(lower, "pull"):
		name := "Strict Pull-Up"
		level := 3
		reps := "5-7"
		if pullZero || noEquipment {
			name = "Band-Assisted Row"
		}
		if pullZero {
			level = 1
			reps = "6-8"
		}
		return []models.Exercise{
			{
				ID:               "pull_focus",
				Name:             name,
				Category:         "pull",
				ProgressionLevel: level,
				Sets:             4,
				Reps:             reps,
				RestSeconds:      120,
				AltExercises:     []string{"Ring Row", "Inverted Row"},
			},
			{
				ID:               "pull_accessory",
				Name:             "Scapular Pull-Up",
				Category:         "pull",
				ProgressionLevel: 2,
				Sets:             3,
				Reps:             "10",
				RestSeconds:      90,
				AltExercises:     []string{"Band Pulldown"},
			},
		}

	case strings.Contains(lower, "legs"):
		return []models.Exercise{
			{
				ID:               "leg_focus",
				Name:             "Bulgarian Split Squat",
				Category:         "legs",
				ProgressionLevel: 3,
				Sets:             4,
				Reps:             "8/side",
				RestSeconds:      90,
				AltExercises:     []string{"Reverse Lunge"},
			},
			{
				ID:               "core_finish",
				Name:             "Hollow Hold",
				Category:         "core",
				ProgressionLevel: 2,
				Sets:             4,
				Reps:             "25s",
				RestSeconds:      60,
				AltExercises:     []string{"Dead Bug"},
			},
		}

	case strings.Contains(lower, "skill"):
		skill := "Handstand"
		if skills := p.Skills(); len(skills) > 0 {
			skill = skills[0]
		}
		return []models.Exercise{
			{
				ID:               "skill_focus",
				Name:             skill + " Progression",
				Category:         "skill",
				ProgressionLevel: 2,
				Sets:             5,
				Reps:             "20s",
				RestSeconds:      75,
				AltExercises:     []string{"Wall Drill"},
			},
			{
				ID:               "skill_support",
				Name:             "Scapular Stability Drill",
				Category:         "skill",
				ProgressionLevel: 2,
				Sets:             3,
				Reps:             "10",
				RestSeconds:      60,
				AltExercises:     []string{"Band Pull-Apart"},
			},
		}

	case strings.Contains(lower, "mobility"):
		return []models.Exercise{
			{
				ID:               "mobility_flow",
				Name:             "Shoulder CARs",
				Category:         "mobility",
				ProgressionLevel: 2,
				Sets:             3,
				Reps:             "8",
				RestSeconds:      40,
				AltExercises:     []string{"Wall Slides"},
			},
			{
				ID:               "spine_flow",
				Name:             "Thoracic Rotation Flow",
				Category:         "mobility",
				ProgressionLevel: 2,
				Sets:             3,
				Reps:             "8/side",
				RestSeconds:      40,
				AltExercises:     []string{"Open Book"},
			},
		}

	default: // push
		name := "Ring Dip"
		if noEquipment {
			name = "Deficit Push-Up"
		}
		return []models.Exercise{
			{
				ID:               "push_focus",
				Name:             name,
				Category:         "push",
				ProgressionLevel: 3,
				Sets:             4,
				Reps:             "6-8",
				RestSeconds:      105,
				AltExercises:     []string{"Bench Dip", "Elevated Push-Up"},
			},
			{
				ID:               "push_accessory",
				Name:             "Pseudo Planche Push-Up",
				Category:         "push",
				ProgressionLevel: 3,
				Sets:             3,
				Reps:             "8",
				RestSeconds:      90,
				AltExercises:     []string{"Incline Push-Up"},
			},
		}
	}
}
