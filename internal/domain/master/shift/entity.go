package shift

import (
	"fmt"
	"time"
)

// WorkShift defines when a workday starts and ends. Check-in/out times are
// local clock times in "HH:MM"; the attendance aggregator compares actual
// check-in/out timestamps against them to derive late and early-leave minutes.
type WorkShift struct {
	ID           string
	Name         string
	CheckInTime  string // "08:00"
	CheckOutTime string // "17:00"
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CheckInOn anchors the shift's check-in clock time onto a calendar date,
// in the supplied location.
func (s WorkShift) CheckInOn(date time.Time, loc *time.Location) (time.Time, error) {
	return clockOn(s.CheckInTime, date, loc)
}

// CheckOutOn anchors the shift's check-out clock time onto a calendar date.
func (s WorkShift) CheckOutOn(date time.Time, loc *time.Location) (time.Time, error) {
	return clockOn(s.CheckOutTime, date, loc)
}

func clockOn(clock string, date time.Time, loc *time.Location) (time.Time, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid shift clock time %q: %w", clock, err)
	}
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, loc), nil
}
