// Package plan normalizes untyped model output into complete, internally
// consistent weekly workout plans. Every missing or invalid field is
// replaced with a deterministic default derived from the catalog tables,
// so a schema-valid plan comes out even when the model returns an empty
// object.
package plan

import (
	"errors"
	"fmt"
	"time"

	"github.com/SkillMax00/SkillMax/internal/models"
)

// ErrNotObject is returned when the extracted candidate is not a JSON
// object (null, string, array) and no plan can be normalized from it.
var ErrNotObject = errors.New("model did not return a valid plan object")

// Candidate unwraps a top-level {"plan": {...}} envelope when present,
// mirroring the shape the prompt asks for. Any other value passes
// through unchanged.
func Candidate(parsed any) any {
	m, ok := parsed.(map[string]any)
	if !ok {
		return parsed
	}
	if inner, ok := m["plan"].(map[string]any); ok {
		return inner
	}
	return parsed
}

// Normalize converts an arbitrary candidate JSON value plus the caller's
// profile into a fully-populated WorkoutPlan. It fails only when the
// candidate is not an object at all; an empty object normalizes fine.
// Defaulting order matters: daysPerWeek resolves first because the
// split, schedule, and workout lists all derive from it.
func Normalize(candidate any, profile Profile, uid string, now time.Time) (*models.WorkoutPlan, error) {
	obj, ok := candidate.(map[string]any)
	if !ok {
		return nil, ErrNotObject
	}

	days := resolveDays(obj, profile)
	split := resolveSplit(obj, days)
	weekStart := startOfWeek(now)
	length := resolveLength(obj, profile)

	schedule := make([]models.ScheduleDay, len(split))
	for i, dayType := range split {
		schedule[i] = models.ScheduleDay{
			Date:   weekStart.AddDate(0, 0, i),
			Type:   dayType,
			Status: "scheduled",
		}
	}

	minutes := minutesForLength(length)
	workouts := make([]models.WorkoutDay, len(schedule))
	for i, day := range schedule {
		workouts[i] = models.WorkoutDay{
			Date:             day.Date,
			Type:             day.Type,
			EstimatedMinutes: minutes,
			Status:           "scheduled",
			Exercises:        exercisesForType(day.Type, profile),
		}
	}

	skills := stringSlice(obj["skillTrack"])
	if len(skills) > 3 {
		skills = skills[:3]
	}
	ladders := make([]models.SkillLadder, len(skills))
	for i, name := range skills {
		ladders[i] = models.SkillLadder{
			Name:        name,
			CurrentStep: 1,
			LadderSteps: ladderSteps(name),
		}
	}

	blocks := stringSlice(obj["blocks"])
	if len(blocks) == 0 {
		blocks = append([]string(nil), defaultBlocks...)
	}

	id, ok := nonBlankString(obj["id"])
	if !ok {
		id = fmt.Sprintf("plan_%d", now.UnixMilli())
	}
	createdAt, ok := nonBlankString(obj["createdAt"])
	if !ok {
		createdAt = now.Format(time.RFC3339)
	}

	return &models.WorkoutPlan{
		ID:                  id,
		UserID:              uid,
		CreatedAt:           createdAt,
		DaysPerWeek:         days,
		WorkoutLength:       length,
		WeeklySplit:         split,
		SkillTrack:          skills,
		Blocks:              blocks,
		ActiveWeekStartDate: weekStart,
		ScheduleDays:        schedule,
		SkillTracks:         ladders,
		VolumeTargets:       volumeTargets(profile.Goal()),
		ProgressionRules:    append([]string(nil), progressionRules...),
		WorkoutDays:         workouts,
		Generator:           "ai",
	}, nil
}

// resolveDays picks daysPerWeek from the candidate, then the profile,
// then 4, and clamps the result to [2,6]. Zero counts as absent.
func resolveDays(obj map[string]any, profile Profile) int {
	days, ok := asInt(obj["daysPerWeek"])
	if !ok || days == 0 {
		days = profile.DaysPerWeek()
	}
	if days == 0 {
		days = 4
	}
	return clamp(days, 2, 6)
}

// resolveSplit keeps the candidate's split only when its length matches
// the resolved day count; any mismatch replaces it wholesale with the
// built-in template. Mismatched lists are never truncated or padded.
func resolveSplit(obj map[string]any, days int) []string {
	split := stringSlice(obj["weeklySplit"])
	if len(split) == days {
		return split
	}
	return defaultSplit(days)
}

// resolveLength picks the workout-length descriptor from the candidate,
// then the profile, then "25-35".
func resolveLength(obj map[string]any, profile Profile) string {
	if s, ok := nonBlankString(obj["workoutLength"]); ok {
		return s
	}
	if s := profile.WorkoutLength(); s != "" {
		return s
	}
	return "25-35"
}

// startOfWeek returns the most recent Monday at local midnight.
func startOfWeek(now time.Time) time.Time {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	diff := 1 - int(now.Weekday())
	if now.Weekday() == time.Sunday {
		diff = -6
	}
	return midnight.AddDate(0, 0, diff)
}
