package schedule

import (
	"sort"
	"time"

	"github.com/limbo/x3momentum/pkg/entity"
)

// Max completions of Push and of Pull in one intensification week
const maxPerTypeInWeek = 3

// Session is what the exercise log says happened on one date.
type Session struct {
	Date          entity.CalendarDate
	WorkoutType   entity.WorkoutType
	WeekNumber    int
	ExerciseCount int
}

// Sessions groups exercise rows by their local date in loc. The type and week
// of a session come from its earliest row.
func Sessions(entries []entity.ExerciseLogEntry, loc *time.Location, start entity.CalendarDate) []Session {
	byDate := make(map[entity.CalendarDate]*Session)
	first := make(map[entity.CalendarDate]time.Time)
	for _, e := range entries {
		date := entity.DateIn(e.PerformedAt, loc)
		s, ok := byDate[date]
		if !ok {
			s = &Session{Date: date}
			byDate[date] = s
		}
		s.ExerciseCount++
		if t, seen := first[date]; !seen || e.PerformedAt.Before(t) {
			first[date] = e.PerformedAt
			s.WorkoutType = e.WorkoutType
			s.WeekNumber = e.WeekNumber
		}
	}
	result := make([]Session, 0, len(byDate))
	for _, s := range byDate {
		if s.WeekNumber < 1 || !s.WorkoutType.Valid() {
			if pos, err := CalendarPosition(start, s.Date); err == nil {
				if s.WeekNumber < 1 {
					s.WeekNumber = pos.Week
				}
				if !s.WorkoutType.Valid() {
					s.WorkoutType = pos.WorkoutType
				}
			}
		}
		result = append(result, *s)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.Before(result[j].Date)
	})
	return result
}

// CompletedDates is the set of dates with at least one exercise.
func CompletedDates(sessions []Session) map[entity.CalendarDate]bool {
	dates := make(map[entity.CalendarDate]bool, len(sessions))
	for _, s := range sessions {
		dates[s.Date] = true
	}
	return dates
}

type AuditInput struct {
	Today    entity.CalendarDate
	Sessions []Session
	DailyLog []entity.DailyLogEntry
}

// PlanRepairs lists the changes that bring the daily log in line with the
// exercise log. Applying the plan and planning again yields nothing.
func PlanRepairs(in AuditInput) []entity.DailyLogRepair {
	state := make(map[entity.CalendarDate]entity.DailyLogEntry, len(in.DailyLog))
	for _, e := range in.DailyLog {
		state[e.Date] = e
	}
	var repairs []entity.DailyLogRepair

	// Every session needs a completed entry
	hasSession := make(map[entity.CalendarDate]bool, len(in.Sessions))
	for _, s := range in.Sessions {
		hasSession[s.Date] = true
		e, ok := state[s.Date]
		if !ok {
			state[s.Date] = entity.DailyLogEntry{
				Date:        s.Date,
				WorkoutType: s.WorkoutType,
				Status:      entity.StatusCompleted,
				WeekNumber:  s.WeekNumber,
			}
			repairs = append(repairs, entity.DailyLogRepair{
				Kind:        entity.RepairInsertCompleted,
				Date:        s.Date,
				WorkoutType: s.WorkoutType,
				WeekNumber:  s.WeekNumber,
			})
			continue
		}
		if e.Protected() {
			continue
		}
		if e.WorkoutType != s.WorkoutType || e.WeekNumber != s.WeekNumber {
			repairs = append(repairs, entity.DailyLogRepair{
				Kind:         entity.RepairCorrectWorkout,
				Date:         s.Date,
				WorkoutType:  s.WorkoutType,
				WeekNumber:   s.WeekNumber,
				PreviousType: e.WorkoutType,
			})
			e.WorkoutType = s.WorkoutType
			e.WeekNumber = s.WeekNumber
			state[s.Date] = e
		}
	}

	dates := make([]entity.CalendarDate, 0, len(state))
	for d := range state {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	// Past completions without exercises did not happen
	for _, d := range dates {
		e := state[d]
		if !d.Before(in.Today) || hasSession[d] || e.Protected() || e.Status != entity.StatusCompleted {
			continue
		}
		repairs = append(repairs, entity.DailyLogRepair{
			Kind:         entity.RepairMarkMissed,
			Date:         d,
			WorkoutType:  e.WorkoutType,
			WeekNumber:   e.WeekNumber,
			PreviousType: e.WorkoutType,
		})
		e.Status = entity.StatusMissed
		state[d] = e
	}

	// Double logging in intensification weeks
	counts := make(map[int]map[entity.WorkoutType]int)
	for _, d := range dates {
		e := state[d]
		if e.Status != entity.StatusCompleted || e.WeekNumber <= FoundationWeeks {
			continue
		}
		if e.WorkoutType != entity.WorkoutPush && e.WorkoutType != entity.WorkoutPull {
			continue
		}
		if counts[e.WeekNumber] == nil {
			counts[e.WeekNumber] = make(map[entity.WorkoutType]int)
		}
		counts[e.WeekNumber][e.WorkoutType]++
		if counts[e.WeekNumber][e.WorkoutType] <= maxPerTypeInWeek {
			continue
		}
		repairs = append(repairs, entity.DailyLogRepair{
			Kind:         entity.RepairCoerceRest,
			Date:         d,
			WorkoutType:  entity.WorkoutRest,
			WeekNumber:   e.WeekNumber,
			PreviousType: e.WorkoutType,
		})
		e.WorkoutType = entity.WorkoutRest
		state[d] = e
	}
	return repairs
}
