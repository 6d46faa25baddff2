package academic

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidWeeks is returned for a week count outside [1, max]
	ErrInvalidWeeks = errors.New("invalid number of weeks")
	// ErrYearOutOfRange is returned when a year fails the configured bounds
	ErrYearOutOfRange = errors.New("year out of range")
)

// ValidateYear checks minYear <= year <= today.Year()+yearsAhead
func ValidateYear(year int, today time.Time, minYear, yearsAhead int) error {
	maxYear := today.Year() + yearsAhead
	if year < minYear || year > maxYear {
		return fmt.Errorf("%w: year must be between %d and %d, got %d",
			ErrYearOutOfRange, minYear, maxYear, year)
	}
	return nil
}

// ValidateWeeks checks 1 <= weeks <= maxWeeks. maxWeeks <= 0 disables the upper bound.
func ValidateWeeks(weeks, maxWeeks int) error {
	if weeks < 1 {
		return fmt.Errorf("%w: must be positive, got %d", ErrInvalidWeeks, weeks)
	}
	if maxWeeks > 0 && weeks > maxWeeks {
		return fmt.Errorf("%w: must be at most %d, got %d", ErrInvalidWeeks, maxWeeks, weeks)
	}
	return nil
}
