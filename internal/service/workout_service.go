package service

import (
	"context"
	"fmt"
	"log"

	errorvalues "github.com/limbo/x3momentum/internal/error_values"
	"github.com/limbo/x3momentum/internal/repository"
	"github.com/limbo/x3momentum/internal/schedule"
	"github.com/limbo/x3momentum/pkg/entity"
)

type WorkoutService struct {
	profiles  ProfileServiceI
	exercises repository.ExercisesRepositoryI
	dailyLog  repository.DailyLogRepositoryI
	opts      options
}

func NewWorkoutService(profiles ProfileServiceI, exercisesRepo repository.ExercisesRepositoryI, dailyLogRepo repository.DailyLogRepositoryI, opts ...Option) *WorkoutService {
	if profiles == nil || exercisesRepo == nil || dailyLogRepo == nil {
		log.Fatal("on workout service provided nil dependencies")
	}
	InitValidator()
	return &WorkoutService{
		profiles:  profiles,
		exercises: exercisesRepo,
		dailyLog:  dailyLogRepo,
		opts:      buildOptions(opts),
	}
}

func (ws *WorkoutService) today(profile *entity.Profile) entity.CalendarDate {
	return entity.DateIn(ws.opts.now(), profile.Location())
}

func (ws *WorkoutService) WorkoutForToday(ctx context.Context, uid entity.UserID) (*entity.WorkoutStatus, error) {
	profile, err := ws.profiles.GetOrCreate(ctx, uid)
	if err != nil {
		return nil, err
	}
	return ws.statusFor(ctx, profile, ws.today(profile))
}

func (ws *WorkoutService) StatusForDate(ctx context.Context, uid entity.UserID, date entity.CalendarDate) (*entity.WorkoutStatus, error) {
	profile, err := ws.profiles.GetOrCreate(ctx, uid)
	if err != nil {
		return nil, err
	}
	return ws.statusFor(ctx, profile, date)
}

// statusFor never writes. An explicit daily log entry of the date wins over
// the projection.
func (ws *WorkoutService) statusFor(ctx context.Context, profile *entity.Profile, date entity.CalendarDate) (*entity.WorkoutStatus, error) {
	if date.Before(profile.ProgramStart) {
		return nil, errorvalues.ErrInvalidDateRange
	}
	history, err := ws.dailyLog.List(ctx, profile.UserID, repository.DailyLogFilter{To: &date})
	if err != nil {
		return nil, fmt.Errorf("repository listing error: %w", err)
	}
	pos, err := schedule.Project(history, profile.ProgramStart, date)
	if err != nil {
		return nil, err
	}
	for _, e := range history {
		if !e.Date.Equal(date) {
			continue
		}
		if e.Status != entity.StatusCompleted && e.Status != entity.StatusMissed {
			break
		}
		pos.WorkoutType = e.WorkoutType
		if e.WeekNumber >= 1 {
			pos.Week = e.WeekNumber
		}
		return &entity.WorkoutStatus{Date: date, WorkoutPosition: pos, Status: e.Status}, nil
	}

	status := entity.StatusScheduled
	today := ws.today(profile)
	if date.Before(today) {
		status = entity.StatusMissed
	} else {
		behind, err := schedule.Behind(history, profile.ProgramStart, date, pos)
		if err != nil {
			return nil, err
		}
		if behind {
			status = entity.StatusCatchUp
		}
	}
	return &entity.WorkoutStatus{Date: date, WorkoutPosition: pos, Status: status}, nil
}

// checkWritable rejects dates no writer may touch.
func (ws *WorkoutService) checkWritable(profile *entity.Profile, date entity.CalendarDate) error {
	if date.After(ws.today(profile)) {
		return errorvalues.ErrDateNotAllowed
	}
	if date.Before(profile.ProgramStart) {
		return errorvalues.ErrInvalidDateRange
	}
	return nil
}

func (ws *WorkoutService) CompleteWorkout(ctx context.Context, uid entity.UserID, date entity.CalendarDate, workoutType entity.WorkoutType) (*entity.DailyLogEntry, error) {
	if err := validateWorkoutType(workoutType); err != nil {
		return nil, err
	}
	profile, err := ws.profiles.GetOrCreate(ctx, uid)
	if err != nil {
		return nil, err
	}
	if err = ws.checkWritable(profile, date); err != nil {
		return nil, err
	}
	return ws.complete(ctx, profile, date, workoutType)
}

func (ws *WorkoutService) CompleteRestDay(ctx context.Context, uid entity.UserID, req *CompleteRestDayRequest) (*entity.DailyLogEntry, error) {
	if req == nil {
		req = &CompleteRestDayRequest{}
	}
	if err := validate.Struct(req); err != nil {
		return nil, validationError(err)
	}
	profile, err := ws.profiles.GetOrCreate(ctx, uid)
	if err != nil {
		return nil, err
	}
	target := ws.today(profile)
	if req.Date != "" {
		if target, err = entity.ParseDate(req.Date); err != nil {
			return nil, fmt.Errorf("%w: %w", errorvalues.ErrValidation, err)
		}
	}
	if err = ws.checkWritable(profile, target); err != nil {
		return nil, err
	}
	return ws.complete(ctx, profile, target, entity.WorkoutRest)
}

func (ws *WorkoutService) complete(ctx context.Context, profile *entity.Profile, date entity.CalendarDate, workoutType entity.WorkoutType) (*entity.DailyLogEntry, error) {
	status, err := ws.statusFor(ctx, profile, date)
	if err != nil {
		return nil, err
	}
	entry := &entity.DailyLogEntry{
		UserID:      profile.UserID,
		Date:        date,
		WorkoutType: workoutType,
		Status:      entity.StatusCompleted,
		WeekNumber:  status.Week,
	}
	if err = ws.dailyLog.Upsert(ctx, entry); err != nil {
		return nil, fmt.Errorf("repository upserting error: %w", err)
	}
	ws.opts.recorder.WorkoutCompleted(workoutType)
	ws.opts.logger.Info("workout completed",
		"uid", profile.UserID.String(),
		"date", date.String(),
		"workout_type", string(workoutType),
		"week", status.Week,
	)
	return entry, nil
}

func (ws *WorkoutService) MarkMissed(ctx context.Context, uid entity.UserID, date entity.CalendarDate) (bool, error) {
	profile, err := ws.profiles.GetOrCreate(ctx, uid)
	if err != nil {
		return false, err
	}
	if err = ws.checkWritable(profile, date); err != nil {
		return false, err
	}
	status, err := ws.statusFor(ctx, profile, date)
	if err != nil {
		return false, err
	}
	inserted, err := ws.dailyLog.InsertIfAbsent(ctx, &entity.DailyLogEntry{
		UserID:      uid,
		Date:        date,
		WorkoutType: status.WorkoutType,
		Status:      entity.StatusMissed,
		WeekNumber:  status.Week,
	})
	if err != nil {
		return false, fmt.Errorf("repository inserting error: %w", err)
	}
	return inserted, nil
}

// sessions loads the exercise log grouped into workout days.
func (ws *WorkoutService) sessions(ctx context.Context, profile *entity.Profile) ([]schedule.Session, error) {
	entries, err := ws.exercises.List(ctx, profile.UserID, repository.ExerciseFilter{})
	if err != nil {
		return nil, fmt.Errorf("repository listing error: %w", err)
	}
	return schedule.Sessions(entries, profile.Location(), profile.ProgramStart), nil
}
