package dateutil

import (
	"fmt"
	"time"
)

// LayoutRU is the DD.MM.YYYY layout used in reports and exports
const LayoutRU = "02.01.2006"

// Date returns a naive calendar date (midnight UTC)
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DateOf strips the clock and location from t, keeping its calendar date
func DateOf(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day())
}

// ISOWeekday returns the day of week with Monday = 0 .. Sunday = 6
func ISOWeekday(date time.Time) int {
	weekday := int(date.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday = 7
	}
	return weekday - 1
}

// StartOfWeek returns the Monday of the week for the given date
func StartOfWeek(date time.Time) time.Time {
	return AddDays(DateOf(date), -ISOWeekday(date))
}

// EndOfWeek returns the Sunday of the week for the given date
func EndOfWeek(date time.Time) time.Time {
	return AddDays(StartOfWeek(date), 6)
}

// AddDays shifts a date by n calendar days
func AddDays(date time.Time, n int) time.Time {
	return date.AddDate(0, 0, n)
}

// InRange reports whether date falls within [start, end], compared by calendar day
func InRange(date, start, end time.Time) bool {
	d := DateOf(date)
	return !d.Before(DateOf(start)) && !d.After(DateOf(end))
}

// FormatRU formats date as DD.MM.YYYY
func FormatRU(date time.Time) string {
	return date.Format(LayoutRU)
}

// ParseDate parses date string in various formats
func ParseDate(dateStr string) (time.Time, error) {
	formats := []string{
		LayoutRU,
		"2006-01-02",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return DateOf(t), nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q", dateStr)
}

// Today returns today's local calendar date as a naive date
func Today() time.Time {
	return DateOf(time.Now())
}
