package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/x3momentum/internal/error_values"
	"github.com/limbo/x3momentum/internal/repository"
	"github.com/limbo/x3momentum/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindProfileByUserID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewProfilesRepo(mock)
	query := regexp.QuoteMeta(`SELECT user_id, program_start_date, timezone, created_at FROM profiles WHERE user_id = $1;`)
	uid := entity.UserID(uuid.New())
	startDate := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	createdAt := time.Now()
	testCases := []struct {
		Desc            string
		Error           error
		Expected        *entity.Profile
		MockPrepareFunc func()
	}{
		{
			Desc: "successful",
			Expected: &entity.Profile{
				UserID:       uid,
				ProgramStart: entity.NewDate(2024, time.January, 1),
				Timezone:     "Europe/Berlin",
				CreatedAt:    createdAt,
			},
			MockPrepareFunc: func() {
				mock.ExpectQuery(query).WithArgs(uid.UUID()).WillReturnRows(
					pgxmock.NewRows([]string{"user_id", "program_start_date", "timezone", "created_at"}).
						AddRow(uid.UUID(), startDate, "Europe/Berlin", createdAt),
				)
			},
		},
		{
			Desc:  "not found",
			Error: errorvalues.ErrProfileNotFound,
			MockPrepareFunc: func() {
				mock.ExpectQuery(query).WithArgs(uid.UUID()).WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			Desc:  "db error",
			Error: errorvalues.ErrStorageUnavailable,
			MockPrepareFunc: func() {
				mock.ExpectQuery(query).WithArgs(uid.UUID()).WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepareFunc()
			profile, err := repo.FindByUserID(ctx, uid)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.Expected, profile)
			}
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateProfile(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewProfilesRepo(mock)
	query := regexp.QuoteMeta(`INSERT INTO profiles (user_id, program_start_date, timezone) VALUES ($1, $2, $3);`)
	profile := &entity.Profile{
		UserID:       entity.UserID(uuid.New()),
		ProgramStart: entity.NewDate(2024, time.January, 1),
		Timezone:     "UTC",
	}
	testCases := []struct {
		Desc            string
		Error           error
		MockPrepareFunc func()
	}{
		{
			Desc: "successful",
			MockPrepareFunc: func() {
				mock.ExpectExec(query).
					WithArgs(profile.UserID.UUID(), profile.ProgramStart.Time(), "UTC").
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			Desc:  "unique violation",
			Error: errorvalues.ErrProfileExists,
			MockPrepareFunc: func() {
				mock.ExpectExec(query).
					WithArgs(profile.UserID.UUID(), profile.ProgramStart.Time(), "UTC").
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("creating profile error: storage unavailable: db error"),
			MockPrepareFunc: func() {
				mock.ExpectExec(query).
					WithArgs(profile.UserID.UUID(), profile.ProgramStart.Time(), "UTC").
					WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepareFunc()
			err := repo.Create(ctx, profile)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateTimezone(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewProfilesRepo(mock)
	query := regexp.QuoteMeta(`UPDATE profiles SET timezone = $1 WHERE user_id = $2;`)
	uid := entity.UserID(uuid.New())
	testCases := []struct {
		Desc            string
		Error           error
		MockPrepareFunc func()
	}{
		{
			Desc: "successful",
			MockPrepareFunc: func() {
				mock.ExpectExec(query).WithArgs("Asia/Tokyo", uid.UUID()).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			Desc:  "not found",
			Error: errorvalues.ErrProfileNotFound,
			MockPrepareFunc: func() {
				mock.ExpectExec(query).WithArgs("Asia/Tokyo", uid.UUID()).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("updating timezone error: storage unavailable: db error"),
			MockPrepareFunc: func() {
				mock.ExpectExec(query).WithArgs("Asia/Tokyo", uid.UUID()).WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepareFunc()
			err := repo.UpdateTimezone(ctx, uid, "Asia/Tokyo")
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}
