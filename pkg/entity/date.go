package entity

import (
	"errors"
	"time"
)

const (
	DateLayout    = "2006-01-02"
	secondsPerDay = 24 * 60 * 60
)

// CalendarDate is a day on the calendar without time of day or zone.
// Internally it is always midnight UTC, so two dates of the same day compare equal with ==.
type CalendarDate struct {
	t time.Time
}

func NewDate(year int, month time.Month, day int) CalendarDate {
	return CalendarDate{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf takes the wall-clock date of t in t's own location.
func DateOf(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// DateIn returns the date t falls on in loc.
func DateIn(t time.Time, loc *time.Location) CalendarDate {
	if loc == nil {
		loc = time.UTC
	}
	return DateOf(t.In(loc))
}

func ParseDate(s string) (CalendarDate, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return CalendarDate{}, errors.New("invalid calendar date: " + s)
	}
	return DateOf(t), nil
}

func (d CalendarDate) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

func (d CalendarDate) IsZero() bool {
	return d.t.IsZero()
}

// Time returns midnight UTC of the date, suitable for DATE columns.
func (d CalendarDate) Time() time.Time {
	return d.t
}

// StartIn returns the first instant of the date in loc.
func (d CalendarDate) StartIn(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, day := d.t.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, loc)
}

func (d CalendarDate) AddDays(n int) CalendarDate {
	return CalendarDate{t: d.t.AddDate(0, 0, n)}
}

// DaysSince returns the number of whole days from other to d, negative when d is earlier.
func (d CalendarDate) DaysSince(other CalendarDate) int {
	// Both values are UTC midnights, so the difference is a whole number of days.
	return int((d.t.Unix() - other.t.Unix()) / secondsPerDay)
}

func (d CalendarDate) Before(other CalendarDate) bool {
	return d.t.Before(other.t)
}

func (d CalendarDate) After(other CalendarDate) bool {
	return d.t.After(other.t)
}

func (d CalendarDate) Equal(other CalendarDate) bool {
	return d.t.Equal(other.t)
}

func (d CalendarDate) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *CalendarDate) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*d = CalendarDate{}
		return nil
	}
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
