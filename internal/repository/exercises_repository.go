package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/x3momentum/internal/error_values"
	"github.com/limbo/x3momentum/pkg/entity"
)

type ExercisesRepository struct {
	conn PgConnection
}

func NewExercisesRepo(conn PgConnection) *ExercisesRepository {
	return &ExercisesRepository{
		conn: conn,
	}
}

func (er *ExercisesRepository) Create(ctx context.Context, entry *entity.ExerciseLogEntry) (int64, error) {
	if entry == nil {
		return 0, errors.New("exercise entry is nil")
	}
	var id int64
	row := er.conn.QueryRow(ctx,
		`INSERT INTO exercises (user_id, exercise_name, band_color, full_reps, partial_reps, notes, workout_type, week_number, performed_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id;`,
		entry.UserID.UUID(),
		entry.ExerciseName,
		entry.BandColor,
		entry.FullReps,
		entry.PartialReps,
		entry.Notes,
		string(entry.WorkoutType),
		entry.WeekNumber,
		entry.PerformedAt,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return 0, errorvalues.ErrProfileNotFound
		}
		return 0, storageError("creating exercise", err)
	}
	return id, nil
}

func (er *ExercisesRepository) List(ctx context.Context, uid entity.UserID, filter ExerciseFilter) ([]entity.ExerciseLogEntry, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT id, user_id, exercise_name, band_color, full_reps, partial_reps, notes, workout_type, week_number, performed_at, created_at FROM exercises WHERE user_id = $1`)
	args := []any{uid.UUID()}
	if filter.From != nil {
		args = append(args, *filter.From)
		sb.WriteString(" AND performed_at >= $" + strconv.Itoa(len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		sb.WriteString(" AND performed_at < $" + strconv.Itoa(len(args)))
	}
	if filter.WorkoutType != nil {
		args = append(args, string(*filter.WorkoutType))
		sb.WriteString(" AND workout_type = $" + strconv.Itoa(len(args)))
	}
	sb.WriteString(" ORDER BY performed_at;")

	rows, err := er.conn.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, storageError("listing exercises", err)
	}
	defer rows.Close()
	result := make([]entity.ExerciseLogEntry, 0, 8)
	for rows.Next() {
		var (
			entry       entity.ExerciseLogEntry
			id          uuid.UUID
			workoutType string
		)
		err = rows.Scan(&entry.ID, &id, &entry.ExerciseName, &entry.BandColor, &entry.FullReps, &entry.PartialReps,
			&entry.Notes, &workoutType, &entry.WeekNumber, &entry.PerformedAt, &entry.CreatedAt)
		if err != nil {
			return nil, storageError("exercise row parsing", err)
		}
		entry.UserID = entity.UserID(id)
		entry.WorkoutType = entity.WorkoutType(workoutType)
		result = append(result, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, storageError("unexpected exercise rows", err)
	}
	return result, nil
}
