package service

import (
	"context"

	"github.com/limbo/x3momentum/internal/schedule"
	"github.com/limbo/x3momentum/pkg/entity"
)

// Streaks is recomputed from exercise rows on each call. Failures are logged
// and give a zero result so dashboards keep rendering.
func (ws *WorkoutService) Streaks(ctx context.Context, uid entity.UserID) entity.StreakResult {
	profile, err := ws.profiles.GetOrCreate(ctx, uid)
	if err != nil {
		ws.opts.logger.Warn("streaks: loading profile failed", "uid", uid.String(), "error", err.Error())
		return entity.StreakResult{}
	}
	sessions, err := ws.sessions(ctx, profile)
	if err != nil {
		ws.opts.logger.Warn("streaks: loading exercises failed", "uid", uid.String(), "error", err.Error())
		return entity.StreakResult{}
	}
	return schedule.Streaks(profile.ProgramStart, ws.today(profile), schedule.CompletedDates(sessions))
}

func (ws *WorkoutService) CurrentStreak(ctx context.Context, uid entity.UserID) int {
	return ws.Streaks(ctx, uid).Current
}

func (ws *WorkoutService) LongestStreak(ctx context.Context, uid entity.UserID) int {
	return ws.Streaks(ctx, uid).Longest
}

func (ws *WorkoutService) GetStats(ctx context.Context, uid entity.UserID) (*entity.Stats, error) {
	profile, err := ws.profiles.GetOrCreate(ctx, uid)
	if err != nil {
		return nil, err
	}
	sessions, err := ws.sessions(ctx, profile)
	if err != nil {
		return nil, err
	}
	today := ws.today(profile)
	current, err := ws.statusFor(ctx, profile, today)
	if err != nil {
		return nil, err
	}
	streaks := schedule.Streaks(profile.ProgramStart, today, schedule.CompletedDates(sessions))

	stats := &entity.Stats{
		TotalWorkouts:  len(sessions),
		CurrentWeek:    current.Week,
		CurrentStreak:  streaks.Current,
		LongestStreak:  streaks.Longest,
		WorkoutsByType: make(map[entity.WorkoutType]int, 3),
	}
	for _, s := range sessions {
		stats.WorkoutsByType[s.WorkoutType]++
		if s.WeekNumber == current.Week {
			stats.CompletedThisWeek++
		}
	}
	return stats, nil
}
