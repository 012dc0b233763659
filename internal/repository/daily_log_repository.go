package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/x3momentum/internal/error_values"
	"github.com/limbo/x3momentum/pkg/entity"
)

const dailyLogColumns = `id, user_id, log_date, workout_type, status, week_number, created_at, updated_at`

type DailyLogRepository struct {
	conn PgConnection
}

func NewDailyLogRepo(conn PgConnection) *DailyLogRepository {
	return &DailyLogRepository{
		conn: conn,
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDailyLogEntry(row scanner) (entity.DailyLogEntry, error) {
	var (
		entry       entity.DailyLogEntry
		id          uuid.UUID
		logDate     time.Time
		workoutType string
		status      string
	)
	err := row.Scan(&entry.ID, &id, &logDate, &workoutType, &status, &entry.WeekNumber, &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		return entity.DailyLogEntry{}, err
	}
	entry.UserID = entity.UserID(id)
	entry.Date = entity.DateOf(logDate)
	entry.WorkoutType = entity.WorkoutType(workoutType)
	entry.Status = entity.LogStatus(status)
	return entry, nil
}

func (dr *DailyLogRepository) GetByDate(ctx context.Context, uid entity.UserID, date entity.CalendarDate) (*entity.DailyLogEntry, error) {
	row := dr.conn.QueryRow(ctx,
		`SELECT `+dailyLogColumns+` FROM daily_workout_log WHERE user_id = $1 AND log_date = $2;`,
		uid.UUID(),
		date.Time(),
	)
	entry, err := scanDailyLogEntry(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrLogEntryNotFound
		}
		return nil, storageError("getting daily log entry", err)
	}
	return &entry, nil
}

func (dr *DailyLogRepository) List(ctx context.Context, uid entity.UserID, filter DailyLogFilter) ([]entity.DailyLogEntry, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + dailyLogColumns + ` FROM daily_workout_log WHERE user_id = $1`)
	args := []any{uid.UUID()}
	if filter.From != nil {
		args = append(args, filter.From.Time())
		sb.WriteString(" AND log_date >= $" + strconv.Itoa(len(args)))
	}
	if filter.To != nil {
		args = append(args, filter.To.Time())
		sb.WriteString(" AND log_date <= $" + strconv.Itoa(len(args)))
	}
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		sb.WriteString(" AND status = $" + strconv.Itoa(len(args)))
	}
	sb.WriteString(" ORDER BY log_date;")

	rows, err := dr.conn.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, storageError("listing daily log", err)
	}
	defer rows.Close()
	result := make([]entity.DailyLogEntry, 0, 8)
	for rows.Next() {
		entry, err := scanDailyLogEntry(rows)
		if err != nil {
			return nil, storageError("daily log row parsing", err)
		}
		result = append(result, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, storageError("unexpected daily log rows", err)
	}
	return result, nil
}

func (dr *DailyLogRepository) Upsert(ctx context.Context, entry *entity.DailyLogEntry) error {
	if entry == nil {
		return errors.New("daily log entry is nil")
	}
	_, err := dr.conn.Exec(ctx,
		`INSERT INTO daily_workout_log (user_id, log_date, workout_type, status, week_number) VALUES ($1, $2, $3, $4, $5) ON CONFLICT (user_id, log_date) DO UPDATE SET workout_type = EXCLUDED.workout_type, status = EXCLUDED.status, week_number = EXCLUDED.week_number, updated_at = now();`,
		entry.UserID.UUID(),
		entry.Date.Time(),
		string(entry.WorkoutType),
		string(entry.Status),
		entry.WeekNumber,
	)
	if err != nil {
		return dailyLogWriteError("upserting daily log entry", err)
	}
	return nil
}

func (dr *DailyLogRepository) InsertIfAbsent(ctx context.Context, entry *entity.DailyLogEntry) (bool, error) {
	if entry == nil {
		return false, errors.New("daily log entry is nil")
	}
	ct, err := dr.conn.Exec(ctx,
		`INSERT INTO daily_workout_log (user_id, log_date, workout_type, status, week_number) VALUES ($1, $2, $3, $4, $5) ON CONFLICT (user_id, log_date) DO NOTHING;`,
		entry.UserID.UUID(),
		entry.Date.Time(),
		string(entry.WorkoutType),
		string(entry.Status),
		entry.WeekNumber,
	)
	if err != nil {
		return false, dailyLogWriteError("inserting daily log entry", err)
	}
	return ct.RowsAffected() > 0, nil
}

// ApplyRepair only touches rows that are still completed and still carry the
// type the audit saw, so manual Rest and Missed marks made meanwhile survive.
func (dr *DailyLogRepository) ApplyRepair(ctx context.Context, uid entity.UserID, repair entity.DailyLogRepair) (bool, error) {
	var (
		ct  pgconn.CommandTag
		err error
	)
	switch repair.Kind {
	case entity.RepairInsertCompleted:
		ct, err = dr.conn.Exec(ctx,
			`INSERT INTO daily_workout_log (user_id, log_date, workout_type, status, week_number) VALUES ($1, $2, $3, 'completed', $4) ON CONFLICT (user_id, log_date) DO NOTHING;`,
			uid.UUID(), repair.Date.Time(), string(repair.WorkoutType), repair.WeekNumber,
		)
	case entity.RepairCorrectWorkout:
		ct, err = dr.conn.Exec(ctx,
			`UPDATE daily_workout_log SET workout_type = $1, week_number = $2, updated_at = now() WHERE user_id = $3 AND log_date = $4 AND status = 'completed' AND workout_type = $5 AND workout_type <> 'Rest';`,
			string(repair.WorkoutType), repair.WeekNumber, uid.UUID(), repair.Date.Time(), string(repair.PreviousType),
		)
	case entity.RepairMarkMissed:
		ct, err = dr.conn.Exec(ctx,
			`UPDATE daily_workout_log SET status = 'missed', updated_at = now() WHERE user_id = $1 AND log_date = $2 AND status = 'completed' AND workout_type = $3 AND workout_type <> 'Rest';`,
			uid.UUID(), repair.Date.Time(), string(repair.PreviousType),
		)
	case entity.RepairCoerceRest:
		ct, err = dr.conn.Exec(ctx,
			`UPDATE daily_workout_log SET workout_type = 'Rest', updated_at = now() WHERE user_id = $1 AND log_date = $2 AND status = 'completed' AND workout_type = $3;`,
			uid.UUID(), repair.Date.Time(), string(repair.PreviousType),
		)
	default:
		return false, errors.New("unknown repair kind: " + string(repair.Kind))
	}
	if err != nil {
		return false, dailyLogWriteError("applying "+string(repair.Kind)+" repair", err)
	}
	return ct.RowsAffected() > 0, nil
}

func dailyLogWriteError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return errorvalues.ErrProfileNotFound
	}
	return storageError(op, err)
}
