package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/x3momentum/internal/error_values"
	"github.com/limbo/x3momentum/pkg/entity"
)

type ProfilesRepository struct {
	conn PgConnection
}

func NewProfilesRepo(conn PgConnection) *ProfilesRepository {
	return &ProfilesRepository{
		conn: conn,
	}
}

func (pr *ProfilesRepository) FindByUserID(ctx context.Context, uid entity.UserID) (*entity.Profile, error) {
	var (
		id        uuid.UUID
		startDate time.Time
		profile   entity.Profile
	)
	row := pr.conn.QueryRow(ctx,
		`SELECT user_id, program_start_date, timezone, created_at FROM profiles WHERE user_id = $1;`,
		uid.UUID(),
	)
	if err := row.Scan(&id, &startDate, &profile.Timezone, &profile.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrProfileNotFound
		}
		return nil, storageError("searching profile", err)
	}
	profile.UserID = entity.UserID(id)
	profile.ProgramStart = entity.DateOf(startDate)
	return &profile, nil
}

func (pr *ProfilesRepository) Create(ctx context.Context, profile *entity.Profile) error {
	if profile == nil {
		return errors.New("profile is nil")
	}
	_, err := pr.conn.Exec(ctx,
		`INSERT INTO profiles (user_id, program_start_date, timezone) VALUES ($1, $2, $3);`,
		profile.UserID.UUID(),
		profile.ProgramStart.Time(),
		profile.Timezone,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return errorvalues.ErrProfileExists
		}
		return storageError("creating profile", err)
	}
	return nil
}

func (pr *ProfilesRepository) UpdateTimezone(ctx context.Context, uid entity.UserID, timezone string) error {
	ct, err := pr.conn.Exec(ctx,
		`UPDATE profiles SET timezone = $1 WHERE user_id = $2;`,
		timezone,
		uid.UUID(),
	)
	if err != nil {
		return storageError("updating timezone", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrProfileNotFound
	}
	return nil
}
