package entity

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// UserID identifies an account. It is a distinct type so a date or any other
// string can never be passed where a user is expected.
type UserID uuid.UUID

func ParseUserID(s string) (UserID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UserID{}, err
	}
	return UserID(id), nil
}

func (id UserID) UUID() uuid.UUID {
	return uuid.UUID(id)
}

func (id UserID) String() string {
	return uuid.UUID(id).String()
}

func (id UserID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *UserID) UnmarshalText(text []byte) error {
	parsed, err := ParseUserID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

type WorkoutType string

const (
	WorkoutPush WorkoutType = "Push"
	WorkoutPull WorkoutType = "Pull"
	WorkoutRest WorkoutType = "Rest"
)

func (t WorkoutType) Valid() bool {
	switch t {
	case WorkoutPush, WorkoutPull, WorkoutRest:
		return true
	}
	return false
}

type LogStatus string

const (
	// Persisted in the daily log
	StatusCompleted LogStatus = "completed"
	StatusMissed    LogStatus = "missed"
	// Derived only, never written
	StatusScheduled LogStatus = "scheduled"
	StatusCatchUp   LogStatus = "catch_up"
)

type Profile struct {
	UserID       UserID       `json:"uid"`
	ProgramStart CalendarDate `json:"program_start_date"`
	Timezone     string       `json:"timezone"`
	CreatedAt    time.Time    `json:"created_at"`
}

// Loaded zones by IANA name
var locations sync.Map

// Location resolves the profile timezone, falling back to UTC for unknown names.
func (p *Profile) Location() *time.Location {
	if p == nil || p.Timezone == "" {
		return time.UTC
	}
	if loc, ok := locations.Load(p.Timezone); ok {
		return loc.(*time.Location)
	}
	loc, err := time.LoadLocation(p.Timezone)
	if err != nil {
		return time.UTC
	}
	locations.Store(p.Timezone, loc)
	return loc
}

type ExerciseLogEntry struct {
	ID           int64       `json:"id"`
	UserID       UserID      `json:"uid"`
	ExerciseName string      `json:"exercise_name"`
	BandColor    string      `json:"band_color"`
	FullReps     int         `json:"full_reps"`
	PartialReps  int         `json:"partial_reps"`
	Notes        string      `json:"notes,omitempty"`
	WorkoutType  WorkoutType `json:"workout_type"`
	WeekNumber   int         `json:"week_number"`
	PerformedAt  time.Time   `json:"performed_at"`
	CreatedAt    time.Time   `json:"created_at"`
}

type DailyLogEntry struct {
	ID          int64        `json:"id"`
	UserID      UserID       `json:"uid"`
	Date        CalendarDate `json:"date"`
	WorkoutType WorkoutType  `json:"workout_type"`
	Status      LogStatus    `json:"status"`
	WeekNumber  int          `json:"week_number"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// Protected entries are manual corrections the audit never overwrites.
func (e *DailyLogEntry) Protected() bool {
	return e.Status == StatusMissed || e.WorkoutType == WorkoutRest
}

type WorkoutPosition struct {
	Week        int         `json:"week"`
	DayInWeek   int         `json:"day_in_week"`
	WorkoutType WorkoutType `json:"workout_type"`
}

type WorkoutStatus struct {
	Date CalendarDate `json:"date"`
	WorkoutPosition
	Status LogStatus `json:"status"`
}

type StreakResult struct {
	Current int `json:"current_streak"`
	Longest int `json:"longest_streak"`
}

type Stats struct {
	TotalWorkouts     int                 `json:"total_workouts"`
	CurrentWeek       int                 `json:"current_week"`
	CurrentStreak     int                 `json:"current_streak"`
	LongestStreak     int                 `json:"longest_streak"`
	CompletedThisWeek int                 `json:"completed_this_week"`
	WorkoutsByType    map[WorkoutType]int `json:"workouts_by_type"`
}

type RepairKind string

const (
	RepairInsertCompleted RepairKind = "insert_completed"
	RepairCorrectWorkout  RepairKind = "correct_workout"
	RepairMarkMissed      RepairKind = "mark_missed"
	RepairCoerceRest      RepairKind = "coerce_rest"
)

// DailyLogRepair is one change the audit wants to make to the daily log.
// PreviousType is the workout type the row must still have for the change to apply.
type DailyLogRepair struct {
	Kind         RepairKind   `json:"kind"`
	Date         CalendarDate `json:"date"`
	WorkoutType  WorkoutType  `json:"workout_type"`
	WeekNumber   int          `json:"week_number"`
	PreviousType WorkoutType  `json:"previous_type,omitempty"`
}

type AuditReport struct {
	Inserted      int              `json:"inserted"`
	Corrected     int              `json:"corrected"`
	MarkedMissed  int              `json:"marked_missed"`
	CoercedToRest int              `json:"coerced_to_rest"`
	Skipped       int              `json:"skipped"`
	Repairs       []DailyLogRepair `json:"repairs"`
}
