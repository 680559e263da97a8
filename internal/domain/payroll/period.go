package payroll

import (
	"fmt"
	"time"
)

// Period is one payroll cycle: a contiguous date range keyed by a "2006-01"
// label, bounded by two consecutive salary payment dates. Consecutive periods
// never overlap and always have positive length.
type Period struct {
	Key   string
	Start time.Time
	End   time.Time
}

// ResolvePeriod derives the date range for a period key from the configured
// payment day: the day after last month's payment date through this month's
// payment date. paymentDay is capped at 28 so the range is well defined in
// February as well.
func ResolvePeriod(key string, paymentDay int) (Period, error) {
	if paymentDay < 1 || paymentDay > 28 {
		return Period{}, fmt.Errorf("%w: salary_payment_date %d out of range", ErrMissingSettings, paymentDay)
	}

	month, err := time.Parse("2006-01", key)
	if err != nil {
		return Period{}, fmt.Errorf("%w: unparseable period key %q", ErrInvalidPeriod, key)
	}

	end := time.Date(month.Year(), month.Month(), paymentDay, 0, 0, 0, 0, time.UTC)
	start := end.AddDate(0, -1, 0).AddDate(0, 0, 1)

	return Period{Key: key, Start: start, End: end}, nil
}

// Contains reports whether a date falls within [Start, End], by calendar date.
func (p Period) Contains(t time.Time) bool {
	d := DateOnly(t)
	return !d.Before(p.Start) && !d.After(p.End)
}

// Validate checks the range invariant.
func (p Period) Validate() error {
	if p.End.Before(p.Start) {
		return fmt.Errorf("%w: end %s precedes start %s", ErrInvalidPeriod,
			p.End.Format("2006-01-02"), p.Start.Format("2006-01-02"))
	}
	return nil
}

func (p Period) String() string {
	return fmt.Sprintf("%s [%s, %s]", p.Key, p.Start.Format("2006-01-02"), p.End.Format("2006-01-02"))
}

// DateOnly truncates a timestamp to its calendar date in UTC.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
