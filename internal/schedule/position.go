package schedule

import (
	errorvalues "github.com/limbo/x3momentum/internal/error_values"
	"github.com/limbo/x3momentum/pkg/entity"
)

// CalendarPosition places target on the program calendar counted from start.
// Dates before start are rejected with ErrInvalidDateRange.
func CalendarPosition(start, target entity.CalendarDate) (entity.WorkoutPosition, error) {
	days := target.DaysSince(start)
	if days < 0 {
		return entity.WorkoutPosition{}, errorvalues.ErrInvalidDateRange
	}
	week := days/DaysPerWeek + 1
	day := mod(days, DaysPerWeek)
	return entity.WorkoutPosition{
		Week:        week,
		DayInWeek:   day,
		WorkoutType: TypeAt(week, day),
	}, nil
}

// Project computes the slot due on target by walking forward from the latest
// completed daily log entry dated before target. Missed days therefore push the
// schedule back instead of being skipped. Without such an entry the calendar
// position is used. A completed Rest always opens the next program week, so
// logging the mid-week rests of the foundation template moves a user up to
// three program weeks per calendar week and reaches week 5 early.
func Project(history []entity.DailyLogEntry, start, target entity.CalendarDate) (entity.WorkoutPosition, error) {
	if target.Before(start) {
		return entity.WorkoutPosition{}, errorvalues.ErrInvalidDateRange
	}
	last, ok := lastCompletedBefore(history, target)
	if !ok {
		return CalendarPosition(start, target)
	}
	lastWeek := last.WeekNumber
	if lastWeek < 1 {
		pos, err := CalendarPosition(start, last.Date)
		if err != nil {
			// Entry older than the program start: nothing sensible to walk from
			return CalendarPosition(start, target)
		}
		lastWeek = pos.Week
	}
	daysDiff := target.DaysSince(last.Date)

	var week, position int
	if last.WorkoutType == entity.WorkoutRest {
		week = lastWeek + 1
		position = mod(daysDiff-1, DaysPerWeek)
	} else {
		next := positionInWeek(history, last, lastWeek) + daysDiff
		week = lastWeek + next/DaysPerWeek
		position = next % DaysPerWeek
	}
	return entity.WorkoutPosition{
		Week:        week,
		DayInWeek:   position,
		WorkoutType: TypeAt(week, position),
	}, nil
}

// Behind reports whether pos, the slot projected for target, is an earlier slot
// than the calendar one because required days before target went without a
// workout. Rest days nobody logged do not make a user behind.
func Behind(history []entity.DailyLogEntry, start, target entity.CalendarDate, pos entity.WorkoutPosition) (bool, error) {
	calendar, err := CalendarPosition(start, target)
	if err != nil {
		return false, err
	}
	if ordinal(pos) >= ordinal(calendar) {
		return false, nil
	}
	required := 0
	for d := start; d.Before(target); d = d.AddDays(1) {
		cp, err := CalendarPosition(start, d)
		if err != nil {
			return false, err
		}
		if cp.WorkoutType != entity.WorkoutRest {
			required++
		}
	}
	done := 0
	for _, e := range history {
		if e.Status == entity.StatusCompleted && e.WorkoutType != entity.WorkoutRest &&
			!e.Date.Before(start) && e.Date.Before(target) {
			done++
		}
	}
	return done < required, nil
}

func ordinal(pos entity.WorkoutPosition) int {
	return (pos.Week-1)*DaysPerWeek + pos.DayInWeek
}

func lastCompletedBefore(history []entity.DailyLogEntry, target entity.CalendarDate) (entity.DailyLogEntry, bool) {
	var (
		last  entity.DailyLogEntry
		found bool
	)
	for _, e := range history {
		if e.Status != entity.StatusCompleted || !e.Date.Before(target) {
			continue
		}
		if !found || e.Date.After(last.Date) {
			last = e
			found = true
		}
	}
	return last, found
}

// positionInWeek counts completed entries of the same week up to and including
// last. Counting instead of using calendar arithmetic tolerates irregular gaps.
func positionInWeek(history []entity.DailyLogEntry, last entity.DailyLogEntry, week int) int {
	count := 0
	for _, e := range history {
		if e.Status != entity.StatusCompleted || e.Date.After(last.Date) {
			continue
		}
		if e.WeekNumber == week || (e.Date.Equal(last.Date) && e.WeekNumber < 1) {
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return count - 1
}
