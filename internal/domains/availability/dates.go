package availability

import (
	"hotel/shared/constant"
	"hotel/shared/timezone"
	"time"
)

type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return timezone.Now()
}

// SystemClock reads the wall clock in the application timezone.
func SystemClock() Clock {
	return systemClock{}
}

// Day keeps the calendar date of t and drops the time of day. The result is midnight UTC so
// day arithmetic never crosses a DST shift.
func Day(t time.Time) time.Time {
	year, month, day := t.Date()

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func DaysBetween(from, to time.Time) int {
	return int(Day(to).Sub(Day(from)) / constant.DayDuration)
}

func AddDays(t time.Time, days int) time.Time {
	return Day(t).AddDate(0, 0, days)
}
