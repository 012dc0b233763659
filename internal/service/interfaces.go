package service

import (
	"context"
	"time"

	"github.com/limbo/x3momentum/pkg/entity"
)

type UpdateTimezoneRequest struct {
	Timezone string `validate:"required,timezone"`
}

type SaveExerciseRequest struct {
	ExerciseName string    `validate:"required,max=100"`
	BandColor    string    `validate:"required,max=32"`
	FullReps     int       `validate:"min=0,max=1000"`
	PartialReps  int       `validate:"min=0,max=1000"`
	Notes        string    `validate:"max=1000"`
	WorkoutType  string    `validate:"required,workout_type"`
	PerformedAt  time.Time `validate:"required"`
}

// CompleteRestDayRequest with an empty Date means today.
type CompleteRestDayRequest struct {
	Date string `validate:"omitempty,calendar_date"`
}

// ExerciseQuery bounds are inclusive local dates of the user.
type ExerciseQuery struct {
	From        *entity.CalendarDate
	To          *entity.CalendarDate
	WorkoutType *entity.WorkoutType
}

type ProfileServiceI interface {
	// Returns user's profile, creating it with program start today when user is new
	GetOrCreate(ctx context.Context, uid entity.UserID) (*entity.Profile, error)
	// Validates IANA name and stores it
	UpdateTimezone(ctx context.Context, uid entity.UserID, timezone string) (*entity.Profile, error)
}

type WorkoutServiceI interface {
	WorkoutForToday(ctx context.Context, uid entity.UserID) (*entity.WorkoutStatus, error)
	StatusForDate(ctx context.Context, uid entity.UserID, date entity.CalendarDate) (*entity.WorkoutStatus, error)
	CompleteWorkout(ctx context.Context, uid entity.UserID, date entity.CalendarDate, workoutType entity.WorkoutType) (*entity.DailyLogEntry, error)
	// Nil date means today in user's timezone
	CompleteRestDay(ctx context.Context, uid entity.UserID, req *CompleteRestDayRequest) (*entity.DailyLogEntry, error)
	// Reports whether the missed mark was written; existing entries are never overwritten
	MarkMissed(ctx context.Context, uid entity.UserID, date entity.CalendarDate) (bool, error)
	// Never fails: storage errors give zero streaks
	Streaks(ctx context.Context, uid entity.UserID) entity.StreakResult
	GetStats(ctx context.Context, uid entity.UserID) (*entity.Stats, error)
	SaveExercise(ctx context.Context, uid entity.UserID, req *SaveExerciseRequest) (*entity.ExerciseLogEntry, error)
	ListExercises(ctx context.Context, uid entity.UserID, query ExerciseQuery) ([]entity.ExerciseLogEntry, error)
	AuditAndRepair(ctx context.Context, uid entity.UserID) (*entity.AuditReport, error)
	// Dry run of the audit. Returns ErrDataInconsistency together with the planned repairs
	VerifyConsistency(ctx context.Context, uid entity.UserID) (*entity.AuditReport, error)
}
