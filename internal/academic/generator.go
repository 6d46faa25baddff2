package academic

import (
	"fmt"
	"time"

	"github.com/username/week-parity/pkg/dateutil"
)

const (
	daysPerWeek = 7
	sundayIndex = 6 // ISO weekday of Sunday, Monday = 0
)

// Anchor describes where week numbering starts for an academic year
type Anchor struct {
	Year       int
	September1 time.Time
	// Weekday of September 1st, Monday = 0 .. Sunday = 6
	Weekday int
	// Start is the Monday of week 1
	Start time.Time
	// SpecialCase is set when September 1st falls on a Sunday
	SpecialCase bool
}

// FirstParity returns the parity of week 1.
// A year whose September 1st is a Sunday starts with an even week; every other year starts odd.
func (a Anchor) FirstParity() Parity {
	if a.SpecialCase {
		return Even
	}
	return Odd
}

// ComputeAnchor finds the Monday week 1 starts on.
// When September 1st is a Sunday the year starts on the following Monday,
// otherwise on the Monday of the week containing September 1st.
func ComputeAnchor(year int) Anchor {
	sept1 := dateutil.Date(year, time.September, 1)
	weekday := dateutil.ISOWeekday(sept1)

	anchor := Anchor{
		Year:       year,
		September1: sept1,
		Weekday:    weekday,
	}

	if weekday == sundayIndex {
		anchor.Start = dateutil.AddDays(sept1, 1)
		anchor.SpecialCase = true
	} else {
		anchor.Start = dateutil.AddDays(sept1, -weekday)
	}

	return anchor
}

// Calendar is the result of a single generation run. It is never mutated after Generate returns.
type Calendar struct {
	Year   int
	Anchor Anchor
	Today  time.Time
	Weeks  []Week
}

// Generate builds totalWeeks consecutive weeks for the academic year starting in year.
// today decides which week (if any) is flagged current.
func Generate(year, totalWeeks int, today time.Time) (*Calendar, error) {
	if totalWeeks < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWeeks, totalWeeks)
	}

	anchor := ComputeAnchor(year)
	today = dateutil.DateOf(today)

	weeks := make([]Week, 0, totalWeeks)
	parity := anchor.FirstParity()

	for number := 1; number <= totalWeeks; number++ {
		start := dateutil.AddDays(anchor.Start, (number-1)*daysPerWeek)
		end := dateutil.EndOfWeek(start)

		weeks = append(weeks, Week{
			Number:             number,
			Start:              start,
			End:                end,
			Parity:             parity,
			IsCurrent:          dateutil.InRange(today, start, end),
			ContainsSeptember1: dateutil.InRange(anchor.September1, start, end),
		})

		parity = parity.Next()
	}

	return &Calendar{
		Year:   year,
		Anchor: anchor,
		Today:  today,
		Weeks:  weeks,
	}, nil
}

// FirstWeek returns week 1
func (c *Calendar) FirstWeek() (Week, bool) {
	if c == nil || len(c.Weeks) == 0 {
		return Week{}, false
	}
	return c.Weeks[0], true
}

// CurrentWeek returns the week containing the generation date
func (c *Calendar) CurrentWeek() (Week, bool) {
	if c == nil {
		return Week{}, false
	}
	return CurrentWeek(c.Weeks)
}

// Statistics aggregates the generated weeks
func (c *Calendar) Statistics() Statistics {
	if c == nil {
		return Statistics{}
	}
	return Summarize(c.Weeks)
}

// Label returns the academic year as "2026-2027"
func (c *Calendar) Label() string {
	return YearLabel(c.Year)
}

// YearLabel formats an academic year as "2026-2027"
func YearLabel(year int) string {
	return fmt.Sprintf("%d-%d", year, year+1)
}
