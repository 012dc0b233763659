package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/x3momentum/internal/error_values"
	"github.com/limbo/x3momentum/internal/repository/mocks"
	"github.com/limbo/x3momentum/internal/service"
	"github.com/limbo/x3momentum/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditAndRepair(t *testing.T) {
	t.Parallel()
	env := newTestEnv(time.Date(2024, time.January, 10, 12, 0, 0, 0, time.UTC), "UTC",
		// logged as Pull but exercises say Push
		completedEntry(entity.NewDate(2024, time.January, 1), entity.WorkoutPull, 1),
		// completed without any exercise
		completedEntry(entity.NewDate(2024, time.January, 4), entity.WorkoutPush, 1),
		// manual marks are never touched
		missedEntry(entity.NewDate(2024, time.January, 5), entity.WorkoutPull, 1),
		completedEntry(entity.NewDate(2024, time.January, 6), entity.WorkoutRest, 1),
	)
	env.logExercises(t, entity.WorkoutPush, 0)
	env.logExercises(t, entity.WorkoutPull, 1, 4)
	ctx := context.Background()

	report, err := env.serv.VerifyConsistency(ctx, env.uid)
	assert.ErrorIs(t, err, errorvalues.ErrDataInconsistency)
	require.NotNil(t, report)
	assert.Len(t, report.Repairs, 3)
	assert.Len(t, env.dailyLog.entries, 4)

	report, err = env.serv.AuditAndRepair(ctx, env.uid)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Inserted)
	assert.Equal(t, 1, report.Corrected)
	assert.Equal(t, 1, report.MarkedMissed)
	assert.Zero(t, report.CoercedToRest)
	assert.Zero(t, report.Skipped)

	expected := map[entity.CalendarDate]struct {
		WorkoutType entity.WorkoutType
		Status      entity.LogStatus
	}{
		entity.NewDate(2024, time.January, 1): {entity.WorkoutPush, entity.StatusCompleted},
		entity.NewDate(2024, time.January, 2): {entity.WorkoutPull, entity.StatusCompleted},
		entity.NewDate(2024, time.January, 4): {entity.WorkoutPush, entity.StatusMissed},
		entity.NewDate(2024, time.January, 5): {entity.WorkoutPull, entity.StatusMissed},
		entity.NewDate(2024, time.January, 6): {entity.WorkoutRest, entity.StatusCompleted},
	}
	for date, want := range expected {
		got, err := env.dailyLog.GetByDate(ctx, env.uid, date)
		require.NoError(t, err, date.String())
		assert.Equal(t, want.WorkoutType, got.WorkoutType, date.String())
		assert.Equal(t, want.Status, got.Status, date.String())
	}
	assert.Equal(t, 1, env.recorder.repairs[entity.RepairInsertCompleted])

	// Fixed point
	report, err = env.serv.AuditAndRepair(ctx, env.uid)
	require.NoError(t, err)
	assert.Empty(t, report.Repairs)
	_, err = env.serv.VerifyConsistency(ctx, env.uid)
	assert.NoError(t, err)
}

func TestAuditCoercesDoubleLogging(t *testing.T) {
	t.Parallel()
	env := newTestEnv(time.Date(2024, time.February, 5, 12, 0, 0, 0, time.UTC), "UTC")
	// Four Push sessions in week 5, only three are allowed
	for day := 28; day < 32; day++ {
		env.logExercises(t, entity.WorkoutPush, day)
	}
	ctx := context.Background()

	report, err := env.serv.AuditAndRepair(ctx, env.uid)
	require.NoError(t, err)
	assert.Equal(t, 4, report.Inserted)
	assert.Equal(t, 1, report.CoercedToRest)

	fourth, err := env.dailyLog.GetByDate(ctx, env.uid, entity.NewDate(2024, time.February, 1))
	require.NoError(t, err)
	assert.Equal(t, entity.WorkoutRest, fourth.WorkoutType)

	report, err = env.serv.AuditAndRepair(ctx, env.uid)
	require.NoError(t, err)
	assert.Empty(t, report.Repairs)
}

func TestAuditSkipsChangedRows(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	dailyLog := mocks.NewMockDailyLogRepositoryI(ctrl)
	exercises := mocks.NewMockExercisesRepositoryI(ctrl)
	uid := entity.UserID(uuid.New())
	clock := service.WithClock(fixedClock(time.Date(2024, time.January, 3, 12, 0, 0, 0, time.UTC)))
	profiles := service.NewProfileService(
		newFakeProfiles(entity.Profile{UserID: uid, ProgramStart: programStart, Timezone: "UTC"}), "UTC", clock,
	)
	serv := service.NewWorkoutService(profiles, exercises, dailyLog, clock)

	exercises.EXPECT().List(gomock.Any(), uid, gomock.Any()).Return([]entity.ExerciseLogEntry{{
		UserID: uid, WorkoutType: entity.WorkoutPush, WeekNumber: 1,
		PerformedAt: time.Date(2024, time.January, 1, 7, 0, 0, 0, time.UTC),
	}}, nil)
	dailyLog.EXPECT().List(gomock.Any(), uid, gomock.Any()).Return(nil, nil)
	// A manual mark landed between planning and applying
	dailyLog.EXPECT().ApplyRepair(gomock.Any(), uid, entity.DailyLogRepair{
		Kind:        entity.RepairInsertCompleted,
		Date:        programStart,
		WorkoutType: entity.WorkoutPush,
		WeekNumber:  1,
	}).Return(false, nil)

	report, err := serv.AuditAndRepair(context.Background(), uid)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Skipped)
	assert.Zero(t, report.Inserted)
	assert.Empty(t, report.Repairs)
}
