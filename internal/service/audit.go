package service

import (
	"context"
	"fmt"

	errorvalues "github.com/limbo/x3momentum/internal/error_values"
	"github.com/limbo/x3momentum/internal/repository"
	"github.com/limbo/x3momentum/internal/schedule"
	"github.com/limbo/x3momentum/pkg/entity"
)

func (ws *WorkoutService) planAudit(ctx context.Context, uid entity.UserID) (*entity.AuditReport, error) {
	profile, err := ws.profiles.GetOrCreate(ctx, uid)
	if err != nil {
		return nil, err
	}
	sessions, err := ws.sessions(ctx, profile)
	if err != nil {
		return nil, err
	}
	dailyLog, err := ws.dailyLog.List(ctx, uid, repository.DailyLogFilter{})
	if err != nil {
		return nil, fmt.Errorf("repository listing error: %w", err)
	}
	repairs := schedule.PlanRepairs(schedule.AuditInput{
		Today:    ws.today(profile),
		Sessions: sessions,
		DailyLog: dailyLog,
	})
	return &entity.AuditReport{Repairs: repairs}, nil
}

// AuditAndRepair applies planned repairs one by one. A repair whose guard no
// longer matches (the row changed meanwhile) is counted as skipped.
func (ws *WorkoutService) AuditAndRepair(ctx context.Context, uid entity.UserID) (*entity.AuditReport, error) {
	report, err := ws.planAudit(ctx, uid)
	if err != nil {
		return nil, err
	}
	applied := make([]entity.DailyLogRepair, 0, len(report.Repairs))
	for _, repair := range report.Repairs {
		ok, err := ws.dailyLog.ApplyRepair(ctx, uid, repair)
		if err != nil {
			return nil, fmt.Errorf("repository repairing error: %w", err)
		}
		if !ok {
			report.Skipped++
			continue
		}
		applied = append(applied, repair)
		ws.opts.recorder.RepairApplied(repair.Kind)
		countRepair(report, repair.Kind)
	}
	report.Repairs = applied
	if len(applied) > 0 || report.Skipped > 0 {
		ws.opts.logger.Info("daily log repaired",
			"uid", uid.String(),
			"applied", len(applied),
			"skipped", report.Skipped,
		)
	}
	return report, nil
}

func (ws *WorkoutService) VerifyConsistency(ctx context.Context, uid entity.UserID) (*entity.AuditReport, error) {
	report, err := ws.planAudit(ctx, uid)
	if err != nil {
		return nil, err
	}
	for _, repair := range report.Repairs {
		countRepair(report, repair.Kind)
	}
	if len(report.Repairs) > 0 {
		return report, errorvalues.ErrDataInconsistency
	}
	return report, nil
}

func countRepair(report *entity.AuditReport, kind entity.RepairKind) {
	switch kind {
	case entity.RepairInsertCompleted:
		report.Inserted++
	case entity.RepairCorrectWorkout:
		report.Corrected++
	case entity.RepairMarkMissed:
		report.MarkedMissed++
	case entity.RepairCoerceRest:
		report.CoercedToRest++
	}
}
