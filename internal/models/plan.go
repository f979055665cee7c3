package models

import "time"

// WorkoutPlan is a fully-populated weekly training plan. Every field is
// guaranteed non-nil after normalization; derived lists (ScheduleDays,
// WorkoutDays) always have exactly DaysPerWeek entries.
type WorkoutPlan struct {
	ID                  string         `json:"id"`
	UserID              string         `json:"userId"`
	CreatedAt           string         `json:"createdAt"`
	DaysPerWeek         int            `json:"daysPerWeek"`
	WorkoutLength       string         `json:"workoutLength"`
	WeeklySplit         []string       `json:"weeklySplit"`
	SkillTrack          []string       `json:"skillTrack"`
	Blocks              []string       `json:"blocks"`
	ActiveWeekStartDate time.Time      `json:"activeWeekStartDate"`
	ScheduleDays        []ScheduleDay  `json:"scheduleDays"`
	SkillTracks         []SkillLadder  `json:"skillTracks"`
	VolumeTargets       []VolumeTarget `json:"volumeTargets"`
	ProgressionRules    []string       `json:"progressionRules"`
	WorkoutDays         []WorkoutDay   `json:"workoutDays"`
	Generator           string         `json:"generator"`
}

// ScheduleDay is one slot in the weekly schedule.
type ScheduleDay struct {
	Date   time.Time `json:"date"`
	Type   string    `json:"type"`
	Status string    `json:"status"`
}

// WorkoutDay is one scheduled workout with its concrete exercise list.
type WorkoutDay struct {
	Date             time.Time  `json:"date"`
	Type             string     `json:"type"`
	EstimatedMinutes int        `json:"estimatedMinutes"`
	Status           string     `json:"status"`
	Exercises        []Exercise `json:"exercises"`
}

// Exercise is a single catalog entry assigned to a workout day.
type Exercise struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Category         string   `json:"category"`
	ProgressionLevel int      `json:"progressionLevel"`
	Sets             int      `json:"sets"`
	Reps             string   `json:"reps"`
	RestSeconds      int      `json:"restSeconds"`
	AltExercises     []string `json:"altExercises"`
}

// SkillLadder is a named skill with its fixed 4-step progression path.
type SkillLadder struct {
	Name        string   `json:"name"`
	CurrentStep int      `json:"currentStep"`
	LadderSteps []string `json:"ladderSteps"`
}

// VolumeTarget is a weekly quota for one training category.
type VolumeTarget struct {
	Category  string `json:"category"`
	Target    int    `json:"target"`
	Completed int    `json:"completed"`
	Unit      string `json:"unit"`
}
