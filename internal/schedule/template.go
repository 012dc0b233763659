// Package schedule holds the pure calendar logic of the 12-week program:
// weekly templates, date positioning, streaks and daily log repair planning.
// Nothing here touches storage.
package schedule

import "github.com/limbo/x3momentum/pkg/entity"

const (
	DaysPerWeek = 7
	// Last week that uses the foundation template
	FoundationWeeks = 4
)

type Template [DaysPerWeek]entity.WorkoutType

var (
	foundation = Template{
		entity.WorkoutPush, entity.WorkoutPull, entity.WorkoutRest,
		entity.WorkoutPush, entity.WorkoutPull, entity.WorkoutRest,
		entity.WorkoutRest,
	}
	intensification = Template{
		entity.WorkoutPush, entity.WorkoutPull, entity.WorkoutPush,
		entity.WorkoutPull, entity.WorkoutPush, entity.WorkoutPull,
		entity.WorkoutRest,
	}
)

// ForWeek returns the template for a 1-based week number. Values below 1 get the foundation template.
func ForWeek(week int) Template {
	if week <= FoundationWeeks {
		return foundation
	}
	return intensification
}

// TypeAt is the workout type of a slot in the given week.
func TypeAt(week, day int) entity.WorkoutType {
	return ForWeek(week)[mod(day, DaysPerWeek)]
}

// mod is modulo with a non-negative result.
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
