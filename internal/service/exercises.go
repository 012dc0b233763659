package service

import (
	"context"
	"errors"
	"fmt"

	errorvalues "github.com/limbo/x3momentum/internal/error_values"
	"github.com/limbo/x3momentum/internal/repository"
	"github.com/limbo/x3momentum/pkg/entity"
)

// SaveExercise stores one exercise row and makes sure the daily log has a
// completed entry for its local date.
func (ws *WorkoutService) SaveExercise(ctx context.Context, uid entity.UserID, req *SaveExerciseRequest) (*entity.ExerciseLogEntry, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: empty request", errorvalues.ErrValidation)
	}
	if err := validate.Struct(req); err != nil {
		return nil, validationError(err)
	}
	profile, err := ws.profiles.GetOrCreate(ctx, uid)
	if err != nil {
		return nil, err
	}
	date := entity.DateIn(req.PerformedAt, profile.Location())
	if err = ws.checkWritable(profile, date); err != nil {
		return nil, err
	}
	status, err := ws.statusFor(ctx, profile, date)
	if err != nil {
		return nil, err
	}
	entry := &entity.ExerciseLogEntry{
		UserID:       uid,
		ExerciseName: req.ExerciseName,
		BandColor:    req.BandColor,
		FullReps:     req.FullReps,
		PartialReps:  req.PartialReps,
		Notes:        req.Notes,
		WorkoutType:  entity.WorkoutType(req.WorkoutType),
		WeekNumber:   status.Week,
		PerformedAt:  req.PerformedAt,
		CreatedAt:    ws.opts.now(),
	}
	entry.ID, err = ws.exercises.Create(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("repository creating error: %w", err)
	}
	if err = ws.ensureCompleted(ctx, uid, date, entry.WorkoutType, status.Week); err != nil {
		return nil, err
	}
	return entry, nil
}

// ensureCompleted inserts the day's entry when absent and upgrades a missed
// workout day. Completed and Rest entries stay as they are.
func (ws *WorkoutService) ensureCompleted(ctx context.Context, uid entity.UserID, date entity.CalendarDate, workoutType entity.WorkoutType, week int) error {
	daily := &entity.DailyLogEntry{
		UserID:      uid,
		Date:        date,
		WorkoutType: workoutType,
		Status:      entity.StatusCompleted,
		WeekNumber:  week,
	}
	existing, err := ws.dailyLog.GetByDate(ctx, uid, date)
	if err != nil {
		if !errors.Is(err, errorvalues.ErrLogEntryNotFound) {
			return fmt.Errorf("repository searching error: %w", err)
		}
		inserted, err := ws.dailyLog.InsertIfAbsent(ctx, daily)
		if err != nil {
			return fmt.Errorf("repository inserting error: %w", err)
		}
		if inserted {
			ws.opts.recorder.WorkoutCompleted(workoutType)
		}
		return nil
	}
	if existing.Status != entity.StatusMissed || existing.WorkoutType == entity.WorkoutRest {
		return nil
	}
	if err = ws.dailyLog.Upsert(ctx, daily); err != nil {
		return fmt.Errorf("repository upserting error: %w", err)
	}
	ws.opts.recorder.WorkoutCompleted(workoutType)
	return nil
}

func (ws *WorkoutService) ListExercises(ctx context.Context, uid entity.UserID, query ExerciseQuery) ([]entity.ExerciseLogEntry, error) {
	if query.From != nil && query.To != nil && query.To.Before(*query.From) {
		return nil, fmt.Errorf("%w: 'to' is before 'from'", errorvalues.ErrValidation)
	}
	if query.WorkoutType != nil {
		if err := validateWorkoutType(*query.WorkoutType); err != nil {
			return nil, err
		}
	}
	profile, err := ws.profiles.GetOrCreate(ctx, uid)
	if err != nil {
		return nil, err
	}
	loc := profile.Location()
	filter := repository.ExerciseFilter{WorkoutType: query.WorkoutType}
	if query.From != nil {
		from := query.From.StartIn(loc)
		filter.From = &from
	}
	if query.To != nil {
		to := query.To.AddDays(1).StartIn(loc)
		filter.To = &to
	}
	entries, err := ws.exercises.List(ctx, uid, filter)
	if err != nil {
		return nil, fmt.Errorf("repository listing error: %w", err)
	}
	return entries, nil
}
