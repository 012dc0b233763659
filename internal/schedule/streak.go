package schedule

import "github.com/limbo/x3momentum/pkg/entity"

// Streaks walks every day from start to today. Rest days of the calendar
// template neither break nor extend a run; a required day counts when a workout
// was logged on it.
func Streaks(start, today entity.CalendarDate, completed map[entity.CalendarDate]bool) entity.StreakResult {
	total := today.DaysSince(start) + 1
	if total <= 0 {
		return entity.StreakResult{}
	}
	type dayState struct {
		required  bool
		satisfied bool
	}
	days := make([]dayState, total)
	for i := range days {
		week := i/DaysPerWeek + 1
		required := TypeAt(week, i%DaysPerWeek) != entity.WorkoutRest
		days[i] = dayState{
			required:  required,
			satisfied: !required || completed[start.AddDays(i)],
		}
	}

	var result entity.StreakResult
	run := 0
	for _, d := range days {
		switch {
		case !d.satisfied:
			run = 0
		case d.required:
			run++
		}
		result.Longest = max(result.Longest, run)
	}
	for i := len(days) - 1; i >= 0; i-- {
		if !days[i].satisfied {
			break
		}
		if days[i].required {
			result.Current++
		}
	}
	return result
}
