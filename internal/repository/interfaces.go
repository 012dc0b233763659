package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/x3momentum/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type ProfilesRepositoryI interface {
	// Looks up profile of the user. Returns ErrProfileNotFound if user has none yet
	FindByUserID(ctx context.Context, uid entity.UserID) (*entity.Profile, error)
	// Creates profile. Returns ErrProfileExists on duplicate
	Create(ctx context.Context, profile *entity.Profile) error
	// Changes IANA timezone of the profile
	UpdateTimezone(ctx context.Context, uid entity.UserID, timezone string) error
}

type ExercisesRepositoryI interface {
	// Saves exercise row and returns its id
	Create(ctx context.Context, entry *entity.ExerciseLogEntry) (int64, error)
	// Lists user's exercise rows ordered by performed_at
	List(ctx context.Context, uid entity.UserID, filter ExerciseFilter) ([]entity.ExerciseLogEntry, error)
}

type DailyLogRepositoryI interface {
	// Returns entry of the date or ErrLogEntryNotFound
	GetByDate(ctx context.Context, uid entity.UserID, date entity.CalendarDate) (*entity.DailyLogEntry, error)
	// Lists entries ordered by date
	List(ctx context.Context, uid entity.UserID, filter DailyLogFilter) ([]entity.DailyLogEntry, error)
	// Inserts entry or overwrites the existing one of the same date
	Upsert(ctx context.Context, entry *entity.DailyLogEntry) error
	// Inserts entry only if the date has none. Reports whether row was written
	InsertIfAbsent(ctx context.Context, entry *entity.DailyLogEntry) (bool, error)
	// Applies audit repair guarded against protected rows. Reports whether row was changed
	ApplyRepair(ctx context.Context, uid entity.UserID, repair entity.DailyLogRepair) (bool, error)
}

// ExerciseFilter bounds are instants: From inclusive, To exclusive.
type ExerciseFilter struct {
	From        *time.Time
	To          *time.Time
	WorkoutType *entity.WorkoutType
}

// DailyLogFilter bounds are inclusive dates.
type DailyLogFilter struct {
	From   *entity.CalendarDate
	To     *entity.CalendarDate
	Status *entity.LogStatus
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
